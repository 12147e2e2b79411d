// Package entropy provides the random sources accepted by seq.Random,
// seq.RandomArray and seq.RandomWords.
//
// Contents
//
//   - System: the operating system's CSPRNG
//   - Deterministic: a reproducible ChaCha20 keystream keyed by HKDF-SHA256
//     from a seed and a label
//
// # Notes
//
// Deterministic output is for test vectors and fixtures only; anyone who
// knows the seed can reproduce it. Its readers are not safe for concurrent
// use.
package entropy
