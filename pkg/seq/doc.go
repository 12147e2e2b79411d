// Package seq implements the containers cryptographic specifications are
// written against: the variable-length Seq, the fixed-length Array family and
// the read-only Container contract they share.
//
// Contents
//
//   - Element: the classified integers of package secret and the plain
//     uint8..uint64 and secret.Uint128 types
//   - Container: Raw, Len and All, implemented by every container
//   - Seq[T]: length chosen at construction (New, FromSlice, Of, FromSub)
//   - Array[N, T]: length fixed by the size marker N (NewArray, ArrayOf,
//     Copy, CopyPad, ArrayFromSub, ArrayFromSubPad)
//   - Update, UpdateSub and UpdateElement, which return a new container and
//     never change its length; Get and Set for any integer index width
//   - Byte helpers for secret.U8 elements: FromHex, ToHex, Random and their
//     Array forms; PublicFromHex and PublicToHex for plain bytes
//   - RandomWords, filling an array of any element width
//
// # Failure policy
//
// Length and bounds violations are defects in the calling specification, so
// they panic with an error wrapping ErrBounds or ErrLength. Malformed hex is
// input, so FromHex and ArrayFromHex return an error; the Must variants keep
// the panicking behaviour.
//
// # Equality and printing
//
// Equal and String declassify secret elements through DeclassifyEq and
// DeclassifyString. Plain elements are compared with == and printed in
// decimal.
//
// # Ownership
//
// Containers are values. Every update copies the backing storage before
// writing, so two containers never observe each other's changes through the
// API. Raw is the exception: it exposes the backing slice, which plain copies
// of a container share. Writing through it breaks value semantics:
//
//	a := seq.MustFromHex("0102")
//	b := a                                   // shares a's storage
//	a.Raw()[0] = secret.Classify(uint8(9))   // b now reads [9 2] too
//
// Treat slices returned by Raw as read-only; use Update or UpdateElement to
// change an element.
package seq
