// Package seqtest provides testify assertions for seq containers. Elements are
// declassified before comparison, so failure output shows the public values.
package seqtest

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hacspec/pkg/secret"
	"hacspec/pkg/seq"
)

type tHelper interface {
	Helper()
}

// AssertEqual asserts that want and got hold the same elements, comparing
// secret elements after declassification.
func AssertEqual[T seq.Element](t assert.TestingT, want, got seq.Container[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.Equal(t, seq.DeclassifyStrings(want), seq.DeclassifyStrings(got), msgAndArgs...)
}

// RequireEqual is AssertEqual that stops the test on failure.
func RequireEqual[T seq.Element](t require.TestingT, want, got seq.Container[T], msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	require.Equal(t, seq.DeclassifyStrings(want), seq.DeclassifyStrings(got), msgAndArgs...)
}

// AssertBytesEqual compares two byte containers by their hex encoding.
func AssertBytesEqual(t assert.TestingT, want, got seq.Container[secret.U8], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.Equal(t, seq.ToHex(want), seq.ToHex(got), msgAndArgs...)
}

// AssertHex asserts that got encodes to the hex string want.
func AssertHex(t assert.TestingT, want string, got seq.Container[secret.U8], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.Equal(t, want, seq.ToHex(got), msgAndArgs...)
}
