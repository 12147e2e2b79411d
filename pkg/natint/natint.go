package natint

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"

	"hacspec/internal/util/memzero"
	"hacspec/pkg/secret"
	"hacspec/pkg/seq"
)

var (
	// ErrModulus is returned for a modulus smaller than 2 or malformed hex.
	ErrModulus = errors.New("natint: invalid modulus")
	// ErrModulusMismatch marks arithmetic between values of different rings.
	ErrModulusMismatch = errors.New("natint: modulus mismatch")
)

// Modulus fixes the ring Z/mZ a Nat lives in. The zero value is not usable.
type Modulus struct {
	m    *big.Int
	size int
}

// NewModulus returns the ring modulo m. m is copied.
func NewModulus(m *big.Int) (Modulus, error) {
	if m == nil || m.Cmp(big.NewInt(2)) < 0 {
		return Modulus{}, fmt.Errorf("%w: %v", ErrModulus, m)
	}
	top := new(big.Int).Sub(m, big.NewInt(1))
	return Modulus{m: new(big.Int).Set(m), size: (top.BitLen() + 7) / 8}, nil
}

// ModulusFromHex parses a big-endian hex modulus such as
// "03fffffffffffffffffffffffffffffffb" (2^130-5).
func ModulusFromHex(s string) (Modulus, error) {
	m, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return Modulus{}, fmt.Errorf("%w: bad hex %q", ErrModulus, s)
	}
	return NewModulus(m)
}

// MustModulusFromHex is ModulusFromHex for literals; it panics on error.
func MustModulusFromHex(s string) Modulus {
	m, err := ModulusFromHex(s)
	if err != nil {
		panic(err)
	}
	return m
}

// BN254Scalar is the scalar field of the BN254 curve.
func BN254Scalar() Modulus {
	m, err := NewModulus(ecc.BN254.ScalarField())
	if err != nil {
		panic(err)
	}
	return m
}

// ByteLen is the length of every byte encoding produced by the ring.
func (m Modulus) ByteLen() int { return m.size }

// Int returns a copy of the modulus.
func (m Modulus) Int() *big.Int { return new(big.Int).Set(m.m) }

func (m Modulus) reduce(v *big.Int) Nat {
	return Nat{mod: m, v: v.Mod(v, m.m)}
}

// Zero returns 0 in the ring.
func (m Modulus) Zero() Nat { return Nat{mod: m, v: new(big.Int)} }

// FromLiteral returns x mod m.
func (m Modulus) FromLiteral(x uint64) Nat {
	return m.reduce(new(big.Int).SetUint64(x))
}

// FromSecretLiteral returns x mod m. x is declassified: the result is only
// as secret as the big.Int arithmetic allows.
func (m Modulus) FromSecretLiteral(x secret.U128) Nat {
	u := x.Declassify()
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(u.Lo))
	return m.reduce(v)
}

// FromBytesLE reads b as a little-endian natural number and reduces it.
// b may have any length.
func (m Modulus) FromBytesLE(b seq.Container[secret.U8]) Nat {
	le := declassifyBytes(b)
	be := make([]byte, len(le))
	for i, x := range le {
		be[len(le)-1-i] = x
	}
	defer memzero.ZeroAll(le, be)
	return m.reduce(new(big.Int).SetBytes(be))
}

// FromBytesBE reads b as a big-endian natural number and reduces it.
func (m Modulus) FromBytesBE(b seq.Container[secret.U8]) Nat {
	be := declassifyBytes(b)
	defer memzero.Zero(be)
	return m.reduce(new(big.Int).SetBytes(be))
}

// Nat is an element of Z/mZ. Values are immutable; every operation returns
// a new Nat. The zero value is not usable; build values from a Modulus.
type Nat struct {
	mod Modulus
	v   *big.Int
}

// Modulus returns the ring x belongs to.
func (x Nat) Modulus() Modulus { return x.mod }

func (x Nat) check(y Nat) {
	if x.mod.m == nil || y.mod.m == nil || x.mod.m.Cmp(y.mod.m) != 0 {
		panic(fmt.Errorf("%w: %v and %v", ErrModulusMismatch, x.mod.m, y.mod.m))
	}
}

func (x Nat) Add(y Nat) Nat {
	x.check(y)
	return x.mod.reduce(new(big.Int).Add(x.v, y.v))
}

func (x Nat) Sub(y Nat) Nat {
	x.check(y)
	return x.mod.reduce(new(big.Int).Sub(x.v, y.v))
}

func (x Nat) Mul(y Nat) Nat {
	x.check(y)
	return x.mod.reduce(new(big.Int).Mul(x.v, y.v))
}

// Exp returns x^e.
func (x Nat) Exp(e uint64) Nat {
	return Nat{mod: x.mod, v: new(big.Int).Exp(x.v, new(big.Int).SetUint64(e), x.mod.m)}
}

// ToBytesLE returns x as ByteLen() little-endian secret bytes.
func (x Nat) ToBytesLE() seq.Bytes {
	be := x.v.FillBytes(make([]byte, x.mod.size))
	defer memzero.Zero(be)
	out := make([]secret.U8, len(be))
	for i, b := range be {
		out[len(be)-1-i] = secret.Classify(b)
	}
	return seq.FromSlice(out)
}

// ToBytesBE returns x as ByteLen() big-endian secret bytes.
func (x Nat) ToBytesBE() seq.Bytes {
	be := x.v.FillBytes(make([]byte, x.mod.size))
	defer memzero.Zero(be)
	return seq.FromSlice(secret.ClassifySlice(be...))
}

// Declassify returns a copy of the value of x.
func (x Nat) Declassify() *big.Int { return new(big.Int).Set(x.v) }

// DeclassifyEq reports whether x and y are the same element of the same ring.
func (x Nat) DeclassifyEq(y Nat) bool {
	return x.mod.m != nil && y.mod.m != nil && x.mod.m.Cmp(y.mod.m) == 0 && x.v.Cmp(y.v) == 0
}

// DeclassifyString returns x in lowercase hex without a prefix.
func (x Nat) DeclassifyString() string { return x.v.Text(16) }

// Format implements fmt.Formatter so that no verb can leak the value.
func (x Nat) Format(f fmt.State, _ rune) { fmt.Fprint(f, "Nat(<secret>)") }

func declassifyBytes(b seq.Container[secret.U8]) []byte {
	out := make([]byte, 0, b.Len())
	for _, x := range b.All() {
		out = append(out, x.Declassify())
	}
	return out
}
