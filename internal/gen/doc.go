// Package gen renders families of named fixed-length array types from a YAML
// manifest.
//
// Each manifest entry becomes an unexported size marker and an exported alias
// of seq.Array over the chosen secret integer width:
//
//	type keySize struct{}
//
//	func (keySize) Len() int { return 32 }
//
//	// Key is a fixed array of 32 secret.U8 values.
//	type Key = seq.Array[keySize, secret.U8]
//
// The output is gofmt-formatted and starts with a "Code generated" header.
package gen
