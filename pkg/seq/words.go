package seq

import (
	"encoding/binary"
	"io"

	"hacspec/internal/util/memzero"
	"hacspec/pkg/secret"
)

// RandomWords fills an array with elements read from src. Each element
// consumes its width in bytes, little-endian, so a U32 array of length 4
// reads 16 bytes.
func RandomWords[N Size, T Element](src io.Reader) (Array[N, T], error) {
	width := byteWidth[T]()
	out := make([]T, sizeOf[N]())
	raw, err := readRandom(src, width*len(out))
	if err != nil {
		return Array[N, T]{}, err
	}
	defer memzero.Zero(raw)
	for i := range out {
		out[i] = elemFromLE[T](raw[i*width : (i+1)*width])
	}
	return Array[N, T]{b: out}, nil
}

func byteWidth[T Element]() int {
	var x T
	switch any(x).(type) {
	case uint8, secret.U8:
		return 1
	case uint16, secret.U16:
		return 2
	case uint32, secret.U32:
		return 4
	case uint64, secret.U64:
		return 8
	default:
		return 16
	}
}

// elemFromLE decodes one element from exactly byteWidth[T]() bytes.
func elemFromLE[T Element](b []byte) T {
	var x T
	le := binary.LittleEndian
	switch p := any(&x).(type) {
	case *uint8:
		*p = b[0]
	case *uint16:
		*p = le.Uint16(b)
	case *uint32:
		*p = le.Uint32(b)
	case *uint64:
		*p = le.Uint64(b)
	case *secret.Uint128:
		*p = secret.Uint128{Lo: le.Uint64(b), Hi: le.Uint64(b[8:])}
	case *secret.U8:
		*p = secret.Classify(b[0])
	case *secret.U16:
		*p = secret.Classify(le.Uint16(b))
	case *secret.U32:
		*p = secret.Classify(le.Uint32(b))
	case *secret.U64:
		*p = secret.Classify(le.Uint64(b))
	case *secret.U128:
		*p = secret.ClassifyU128(secret.Uint128{Lo: le.Uint64(b), Hi: le.Uint64(b[8:])})
	}
	return x
}
