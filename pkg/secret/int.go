package secret

import (
	"fmt"
	"math/bits"
	"strconv"
)

// Word is the set of public integer types that have a classified counterpart.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Int is a classified integer of width W. The zero value is a secret zero.
type Int[W Word] struct {
	v W
}

type (
	U8  = Int[uint8]
	U16 = Int[uint16]
	U32 = Int[uint32]
	U64 = Int[uint64]
)

// Integer is the element contract shared by every classified width. The
// containers in package seq compare and print elements only through it.
type Integer[T any] interface {
	// Bits returns the static width of the integer.
	Bits() int
	// DeclassifyEq reports whether both values are equal once declassified.
	DeclassifyEq(T) bool
	// DeclassifyString returns the decimal form of the declassified value.
	DeclassifyString() string
}

var (
	_ Integer[U8]   = U8{}
	_ Integer[U16]  = U16{}
	_ Integer[U32]  = U32{}
	_ Integer[U64]  = U64{}
	_ Integer[U128] = U128{}
)

// Classify turns a public integer into a secret one.
func Classify[W Word](x W) Int[W] { return Int[W]{v: x} }

// Declassify returns the public value of x.
func (x Int[W]) Declassify() W { return x.v }

// ClassifySlice classifies every element of xs.
func ClassifySlice[W Word](xs ...W) []Int[W] {
	out := make([]Int[W], len(xs))
	for i, x := range xs {
		out[i] = Classify(x)
	}
	return out
}

// DeclassifySlice declassifies every element of xs.
func DeclassifySlice[W Word](xs []Int[W]) []W {
	out := make([]W, len(xs))
	for i, x := range xs {
		out[i] = x.Declassify()
	}
	return out
}

// Bits returns 8, 16, 32 or 64.
func (Int[W]) Bits() int { return bits.OnesCount64(uint64(^W(0))) }

func (x Int[W]) DeclassifyEq(y Int[W]) bool { return x.Declassify() == y.Declassify() }

func (x Int[W]) DeclassifyString() string {
	return strconv.FormatUint(uint64(x.Declassify()), 10)
}

// Format implements fmt.Formatter so that no verb can leak the value.
func (x Int[W]) Format(f fmt.State, _ rune) {
	fmt.Fprintf(f, "U%d(<secret>)", x.Bits())
}

func (x Int[W]) Add(y Int[W]) Int[W] { return Int[W]{v: x.v + y.v} }
func (x Int[W]) Sub(y Int[W]) Int[W] { return Int[W]{v: x.v - y.v} }
func (x Int[W]) Mul(y Int[W]) Int[W] { return Int[W]{v: x.v * y.v} }
func (x Int[W]) And(y Int[W]) Int[W] { return Int[W]{v: x.v & y.v} }
func (x Int[W]) Or(y Int[W]) Int[W]  { return Int[W]{v: x.v | y.v} }
func (x Int[W]) Xor(y Int[W]) Int[W] { return Int[W]{v: x.v ^ y.v} }
func (x Int[W]) Not() Int[W]         { return Int[W]{v: ^x.v} }

// Shl shifts left by n. Shifting by the width or more yields zero.
func (x Int[W]) Shl(n uint) Int[W] { return Int[W]{v: x.v << n} }

// Shr shifts right by n. Shifting by the width or more yields zero.
func (x Int[W]) Shr(n uint) Int[W] { return Int[W]{v: x.v >> n} }

// RotateLeft rotates by k bits; negative k rotates right.
func (x Int[W]) RotateLeft(k int) Int[W] {
	w := x.Bits()
	s := uint(((k % w) + w) % w)
	return Int[W]{v: x.v<<s | x.v>>(uint(w)-s)}
}

func (x Int[W]) RotateRight(k int) Int[W] { return x.RotateLeft(-k) }

// EqMask returns all ones when x == y and zero otherwise, in constant time.
func (x Int[W]) EqMask(y Int[W]) Int[W] {
	q := uint64(x.v ^ y.v)
	// q|-q has its top bit set for every q != 0.
	eq := 1 ^ (q|-q)>>63
	return Int[W]{v: -W(eq)}
}

// LtMask returns all ones when x < y and zero otherwise, in constant time.
func (x Int[W]) LtMask(y Int[W]) Int[W] {
	_, borrow := bits.Sub64(uint64(x.v), uint64(y.v), 0)
	return Int[W]{v: -W(borrow)}
}

func (x Int[W]) GtMask(y Int[W]) Int[W] { return y.LtMask(x) }
func (x Int[W]) LeMask(y Int[W]) Int[W] { return y.LtMask(x).Not() }
func (x Int[W]) GeMask(y Int[W]) Int[W] { return x.LtMask(y).Not() }

// Select returns x where mask bits are set and y elsewhere. With a mask from
// EqMask or LtMask it is a constant-time conditional.
func Select[W Word](mask, x, y Int[W]) Int[W] {
	return Int[W]{v: y.v ^ (mask.v & (y.v ^ x.v))}
}

// Cast converts between native widths, truncating or zero-extending.
func Cast[To, From Word](x Int[From]) Int[To] { return Int[To]{v: To(x.v)} }
