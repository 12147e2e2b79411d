package seq

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"hacspec/internal/util/memzero"
	"hacspec/pkg/secret"
)

// Bytes is a sequence of secret bytes.
type Bytes = Seq[secret.U8]

// FromHex decodes a hex string into secret bytes. The string must have an
// even number of hex digits; upper and lower case are accepted.
func FromHex(s string) (Bytes, error) {
	raw, err := decodeHex(s)
	if err != nil {
		return Bytes{}, err
	}
	defer memzero.Zero(raw)
	return Bytes{b: classifyBytes(raw)}, nil
}

// MustFromHex is FromHex for literals; it panics on malformed input.
func MustFromHex(s string) Bytes {
	b, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return b
}

// ToHex declassifies c and encodes it as lowercase hex, two digits per byte.
func ToHex(c Container[secret.U8]) string {
	raw := make([]byte, c.Len())
	defer memzero.Zero(raw)
	for i, x := range c.All() {
		raw[i] = x.Declassify()
	}
	return hex.EncodeToString(raw)
}

// Random reads l bytes from src and classifies them.
func Random(src io.Reader, l int) (Bytes, error) {
	if l < 0 {
		failLength("negative length %d", l)
	}
	raw, err := readRandom(src, l)
	if err != nil {
		return Bytes{}, err
	}
	defer memzero.Zero(raw)
	return Bytes{b: classifyBytes(raw)}, nil
}

// ArrayFromHex decodes s into an array; the decoded length must be N.Len().
func ArrayFromHex[N Size](s string) (Array[N, secret.U8], error) {
	raw, err := decodeHex(s)
	if err != nil {
		return Array[N, secret.U8]{}, err
	}
	defer memzero.Zero(raw)
	if l := sizeOf[N](); len(raw) != l {
		return Array[N, secret.U8]{}, fmt.Errorf("%w: hex decodes to %d bytes, want %d", ErrLength, len(raw), l)
	}
	return Array[N, secret.U8]{b: classifyBytes(raw)}, nil
}

// MustArrayFromHex is ArrayFromHex for literals; it panics on any error.
func MustArrayFromHex[N Size](s string) Array[N, secret.U8] {
	a, err := ArrayFromHex[N](s)
	if err != nil {
		panic(err)
	}
	return a
}

// RandomArray fills a byte array with bytes read from src.
func RandomArray[N Size](src io.Reader) (Array[N, secret.U8], error) {
	return RandomWords[N, secret.U8](src)
}

// PublicBytes is a sequence of plain bytes.
type PublicBytes = Seq[uint8]

// PublicFromHex decodes a hex string into plain bytes, with the same rules
// as FromHex.
func PublicFromHex(s string) (PublicBytes, error) {
	raw, err := decodeHex(s)
	if err != nil {
		return PublicBytes{}, err
	}
	return PublicBytes{b: raw}, nil
}

// MustPublicFromHex is PublicFromHex for literals; it panics on malformed
// input.
func MustPublicFromHex(s string) PublicBytes {
	b, err := PublicFromHex(s)
	if err != nil {
		panic(err)
	}
	return b
}

// PublicToHex encodes plain bytes as lowercase hex.
func PublicToHex(c Container[uint8]) string {
	return hex.EncodeToString(c.Raw())
}

// PublicArrayFromHex decodes s into a plain byte array; the decoded length
// must be N.Len().
func PublicArrayFromHex[N Size](s string) (Array[N, uint8], error) {
	raw, err := decodeHex(s)
	if err != nil {
		return Array[N, uint8]{}, err
	}
	if l := sizeOf[N](); len(raw) != l {
		return Array[N, uint8]{}, fmt.Errorf("%w: hex decodes to %d bytes, want %d", ErrLength, len(raw), l)
	}
	return Array[N, uint8]{b: raw}, nil
}

func decodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %d digits", ErrOddLength, len(s))
	}
	raw := make([]byte, len(s)/2)
	if _, err := hex.Decode(raw, []byte(s)); err != nil {
		memzero.Zero(raw)
		var bad hex.InvalidByteError
		if errors.As(err, &bad) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHex, byte(bad))
		}
		return nil, err
	}
	return raw, nil
}

func readRandom(src io.Reader, l int) ([]byte, error) {
	raw := make([]byte, l)
	if _, err := io.ReadFull(src, raw); err != nil {
		return nil, fmt.Errorf("read %d random bytes: %w", l, err)
	}
	return raw, nil
}

func classifyBytes(raw []byte) []secret.U8 {
	return secret.ClassifySlice(raw...)
}
