// Package natint provides natural integers modulo a fixed modulus and the
// bridge between them and secret byte sequences.
//
// Contents
//
//   - Modulus: NewModulus, ModulusFromHex, MustModulusFromHex and the
//     BN254Scalar preset
//   - Nat: Add, Sub, Mul, Exp, DeclassifyEq, DeclassifyString
//   - FromBytesLE / FromBytesBE, ToBytesLE / ToBytesBE and FromSecretLiteral,
//     which move values between seq.Bytes, secret.U128 and Nat
//
// # Notes
//
// Arithmetic is backed by math/big and is not constant time. It is meant
// for writing specifications (Poly1305-style accumulators, field
// arithmetic), not for production implementations. Like the classified
// integers, a Nat never prints its value through fmt.
//
// Byte encodings have a fixed length: the number of bytes needed for
// modulus-1, so every value of the ring fits.
package natint
