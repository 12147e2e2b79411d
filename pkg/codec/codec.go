package codec

//go:generate go run hacspec/cmd/hacspec gen -m words.yaml -o words_gen.go

import (
	"fmt"

	"hacspec/pkg/secret"
	"hacspec/pkg/seq"
)

func U32ToLEBytes(x secret.U32) U32Word { return seq.ArrayOf[u32WordSize](toLE(x)...) }
func U32ToBEBytes(x secret.U32) U32Word { return seq.ArrayOf[u32WordSize](toBE(x)...) }

func U32FromLEBytes(w U32Word) secret.U32 { return fromLE[uint32](w.Raw()) }
func U32FromBEBytes(w U32Word) secret.U32 { return fromBE[uint32](w.Raw()) }

func U64ToLEBytes(x secret.U64) U64Word { return seq.ArrayOf[u64WordSize](toLE(x)...) }
func U64ToBEBytes(x secret.U64) U64Word { return seq.ArrayOf[u64WordSize](toBE(x)...) }

func U64FromLEBytes(w U64Word) secret.U64 { return fromLE[uint64](w.Raw()) }
func U64FromBEBytes(w U64Word) secret.U64 { return fromBE[uint64](w.Raw()) }

// U128ToLEBytes returns the 16 little-endian bytes of x.
func U128ToLEBytes(x secret.U128) U128Word {
	out := make([]secret.U8, 16)
	for i := range out {
		out[i] = secret.Narrow128[uint8](x.Shr(uint(8 * i)))
	}
	return seq.ArrayOf[u128WordSize](out...)
}

// U128ToBEBytes returns the 16 big-endian bytes of x.
func U128ToBEBytes(x secret.U128) U128Word {
	le := U128ToLEBytes(x).Raw()
	return seq.ArrayOf[u128WordSize](reversed(le)...)
}

func U128FromLEBytes(w U128Word) secret.U128 {
	var x secret.U128
	for i, b := range w.All() {
		x = x.Or(secret.Widen128(b).Shl(uint(8 * i)))
	}
	return x
}

func U128FromBEBytes(w U128Word) secret.U128 {
	return U128FromLEBytes(seq.ArrayOf[u128WordSize](reversed(w.Raw())...))
}

// U64SliceToLEBytes lays out the little-endian bytes of every element of x
// back to back: element i occupies bytes [8i, 8i+8).
func U64SliceToLEBytes(x seq.Container[secret.U64]) seq.Bytes {
	raw := x.Raw()
	out := make([]secret.U8, 8*len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		copy(out[8*i:8*i+8], toLE(raw[i]))
	}
	return seq.FromSlice(out)
}

// U32SliceToLEBytes is U64SliceToLEBytes for 32-bit elements.
func U32SliceToLEBytes(x seq.Container[secret.U32]) seq.Bytes {
	raw := x.Raw()
	out := make([]secret.U8, 0, 4*len(raw))
	for _, v := range raw {
		out = append(out, toLE(v)...)
	}
	return seq.FromSlice(out)
}

// U32SliceFromLEBytes reads consecutive little-endian 32-bit words. It
// panics unless b.Len() is a multiple of 4.
func U32SliceFromLEBytes(b seq.Container[secret.U8]) seq.Seq[secret.U32] {
	return seq.FromSlice(sliceFromLE[uint32](b.Raw()))
}

// U64SliceFromLEBytes reads consecutive little-endian 64-bit words. It
// panics unless b.Len() is a multiple of 8.
func U64SliceFromLEBytes(b seq.Container[secret.U8]) seq.Seq[secret.U64] {
	return seq.FromSlice(sliceFromLE[uint64](b.Raw()))
}

func toLE[W secret.Word](x secret.Int[W]) []secret.U8 {
	out := make([]secret.U8, x.Bits()/8)
	for i := range out {
		out[i] = secret.Cast[uint8](x.Shr(uint(8 * i)))
	}
	return out
}

func toBE[W secret.Word](x secret.Int[W]) []secret.U8 {
	return reversed(toLE(x))
}

func fromLE[W secret.Word](b []secret.U8) secret.Int[W] {
	var x secret.Int[W]
	for i, v := range b {
		x = x.Or(secret.Cast[W](v).Shl(uint(8 * i)))
	}
	return x
}

func fromBE[W secret.Word](b []secret.U8) secret.Int[W] {
	return fromLE[W](reversed(b))
}

func sliceFromLE[W secret.Word](b []secret.U8) []secret.Int[W] {
	width := secret.Int[W]{}.Bits() / 8
	if len(b)%width != 0 {
		panic(fmt.Errorf("%w: %d bytes is not a multiple of %d", seq.ErrLength, len(b), width))
	}
	out := make([]secret.Int[W], len(b)/width)
	for i := range out {
		out[i] = fromLE[W](b[i*width : (i+1)*width])
	}
	return out
}

func reversed(b []secret.U8) []secret.U8 {
	out := make([]secret.U8, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
