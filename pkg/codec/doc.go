// Package codec converts classified integers to and from their big- and
// little-endian byte representations.
//
// Contents
//
//   - U32, U64 and U128 to and from LE/BE word arrays (U32ToLEBytes,
//     U128FromBEBytes, ...)
//   - U32Word, U64Word and U128Word, generated from words.yaml
//   - Bulk forms: U64SliceToLEBytes, U32SliceToLEBytes and the matching
//     FromLEBytes readers
//
// # Notes
//
// Every function works on classified values only: bytes are extracted with
// shifts and truncation, never by declassifying. Scalar decoders take word
// arrays, so their input length is enforced by the type. The bulk readers
// panic with seq.ErrLength unless the input is a whole number of words.
package codec
