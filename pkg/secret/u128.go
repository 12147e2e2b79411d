package secret

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Uint128 is the public form of a U128.
type Uint128 struct {
	Hi, Lo uint64
}

// String returns the decimal representation of u.
func (u Uint128) String() string {
	n := new(big.Int).SetUint64(u.Hi)
	n.Lsh(n, 64)
	n.Or(n, new(big.Int).SetUint64(u.Lo))
	return n.String()
}

// U128 is a classified 128-bit integer.
type U128 struct {
	hi, lo uint64
}

// ClassifyU128 turns a public 128-bit integer into a secret one.
func ClassifyU128(x Uint128) U128 { return U128{hi: x.Hi, lo: x.Lo} }

// Declassify returns the public value of x.
func (x U128) Declassify() Uint128 { return Uint128{Hi: x.hi, Lo: x.lo} }

func (U128) Bits() int { return 128 }

func (x U128) DeclassifyEq(y U128) bool { return x.Declassify() == y.Declassify() }

func (x U128) DeclassifyString() string { return x.Declassify().String() }

// Format implements fmt.Formatter so that no verb can leak the value.
func (x U128) Format(f fmt.State, _ rune) { fmt.Fprint(f, "U128(<secret>)") }

func (x U128) Add(y U128) U128 {
	lo, c := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, c)
	return U128{hi: hi, lo: lo}
}

func (x U128) Sub(y U128) U128 {
	lo, b := bits.Sub64(x.lo, y.lo, 0)
	hi, _ := bits.Sub64(x.hi, y.hi, b)
	return U128{hi: hi, lo: lo}
}

// Mul returns the low 128 bits of x*y.
func (x U128) Mul(y U128) U128 {
	hi, lo := bits.Mul64(x.lo, y.lo)
	hi += x.hi*y.lo + x.lo*y.hi
	return U128{hi: hi, lo: lo}
}

func (x U128) And(y U128) U128 { return U128{hi: x.hi & y.hi, lo: x.lo & y.lo} }
func (x U128) Or(y U128) U128  { return U128{hi: x.hi | y.hi, lo: x.lo | y.lo} }
func (x U128) Xor(y U128) U128 { return U128{hi: x.hi ^ y.hi, lo: x.lo ^ y.lo} }
func (x U128) Not() U128       { return U128{hi: ^x.hi, lo: ^x.lo} }

// Shl shifts left by n. Shifting by 128 or more yields zero.
func (x U128) Shl(n uint) U128 {
	switch {
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{hi: x.lo << (n - 64)}
	default:
		return U128{hi: x.hi<<n | x.lo>>(64-n), lo: x.lo << n}
	}
}

// Shr shifts right by n. Shifting by 128 or more yields zero.
func (x U128) Shr(n uint) U128 {
	switch {
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{lo: x.hi >> (n - 64)}
	default:
		return U128{hi: x.hi >> n, lo: x.lo>>n | x.hi<<(64-n)}
	}
}

// RotateLeft rotates by k bits; negative k rotates right.
func (x U128) RotateLeft(k int) U128 {
	s := uint(((k % 128) + 128) % 128)
	return x.Shl(s).Or(x.Shr(128 - s))
}

func (x U128) RotateRight(k int) U128 { return x.RotateLeft(-k) }

// EqMask returns all ones when x == y and zero otherwise, in constant time.
func (x U128) EqMask(y U128) U128 {
	q := (x.hi ^ y.hi) | (x.lo ^ y.lo)
	m := -(1 ^ (q|-q)>>63)
	return U128{hi: m, lo: m}
}

// LtMask returns all ones when x < y and zero otherwise, in constant time.
func (x U128) LtMask(y U128) U128 {
	_, b := bits.Sub64(x.lo, y.lo, 0)
	_, b = bits.Sub64(x.hi, y.hi, b)
	return U128{hi: -b, lo: -b}
}

func (x U128) GtMask(y U128) U128 { return y.LtMask(x) }
func (x U128) LeMask(y U128) U128 { return y.LtMask(x).Not() }
func (x U128) GeMask(y U128) U128 { return x.LtMask(y).Not() }

// Select128 is Select for U128.
func Select128(mask, x, y U128) U128 {
	return y.Xor(mask.And(y.Xor(x)))
}

// Widen128 zero-extends a native-width classified integer to 128 bits.
func Widen128[From Word](x Int[From]) U128 { return U128{lo: uint64(x.v)} }

// Narrow128 truncates x to a native width.
func Narrow128[To Word](x U128) Int[To] { return Int[To]{v: To(x.lo)} }
