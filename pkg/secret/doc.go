// Package secret provides classified integers: fixed-width scalars whose value
// can only be observed through an explicit Declassify call.
//
// Contents
//
//   - Int[W], with the aliases U8, U16, U32 and U64, for native widths
//   - U128, a 128-bit classified integer built from two 64-bit limbs, and
//     Uint128, its public counterpart
//   - Classify / Declassify, the one-directional public<->secret boundary
//   - Wrapping arithmetic, bitwise operations, shifts and rotations
//   - Constant-time comparison masks (EqMask, LtMask, ...) and Select
//   - Width conversion (Cast, Widen128, Narrow128) that never declassifies
//
// # Notes
//
// A classified value never prints itself: every fmt verb renders a
// placeholder such as "U32(<secret>)". Equality and formatting of containers
// go through DeclassifyEq and DeclassifyString, which keeps the point where a
// secret becomes public visible at the call site.
package secret
