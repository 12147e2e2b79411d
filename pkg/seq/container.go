package seq

import (
	"fmt"
	"iter"
	"strings"

	"hacspec/pkg/secret"
)

// Element is the set of types a container can hold: the classified integers
// of package secret and their plain counterparts.
type Element interface {
	secret.U8 | secret.U16 | secret.U32 | secret.U64 | secret.U128 |
		uint8 | uint16 | uint32 | uint64 | secret.Uint128
}

// Container is the read-only view every sequence and array provides.
type Container[T any] interface {
	// Raw returns the backing storage, shared with every copy of the
	// container. Callers must not write through it.
	Raw() []T
	// Len returns the number of elements.
	Len() int
	// All iterates over index/element pairs in order.
	All() iter.Seq2[int, T]
}

// Get returns element i of c. Any integer width is accepted; negative and
// out of range indices panic.
func Get[T any, I Index](c Container[T], i I) T {
	raw := c.Raw()
	return raw[checkIndex(i, len(raw))]
}

// ElementUpdater is a container that can return a copy of itself with one
// element replaced. Seq and every Array implement it.
type ElementUpdater[C, T any] interface {
	Container[T]
	UpdateElement(i int, v T) C
}

// Set returns a copy of c with element i replaced by v. Like Get, it accepts
// any integer width for i.
func Set[C ElementUpdater[C, T], T any, I Index](c C, i I, v T) C {
	return c.UpdateElement(checkIndex(i, c.Len()), v)
}

// Equal reports whether a and b have the same length and equal elements.
// Classified elements are compared through DeclassifyEq.
func Equal[T Element](a, b Container[T]) bool {
	x, y := a.Raw(), b.Raw()
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !elemEqual(x[i], y[i]) {
			return false
		}
	}
	return true
}

// DeclassifyStrings returns the decimal form of every element of c,
// declassifying secret elements.
func DeclassifyStrings[T Element](c Container[T]) []string {
	out := make([]string, 0, c.Len())
	for _, x := range c.All() {
		out = append(out, elemString(x))
	}
	return out
}

func elemEqual[T Element](x, y T) bool {
	if s, ok := any(x).(secret.Integer[T]); ok {
		return s.DeclassifyEq(y)
	}
	return x == y
}

func elemString[T Element](x T) string {
	if s, ok := any(x).(secret.Integer[T]); ok {
		return s.DeclassifyString()
	}
	return fmt.Sprint(x)
}

func format[T Element](raw []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range raw {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(elemString(x))
	}
	sb.WriteByte(']')
	return sb.String()
}

// update writes all of v into dst at start.
func update[T any](dst []T, start int, v Container[T]) {
	src := v.Raw()
	checkRange("update", start, len(src), len(dst))
	copy(dst[start:], src)
}

// updateSub writes v[startIn:startIn+n] into dst at startOut.
func updateSub[T any](dst []T, startOut int, v Container[T], startIn, n int) {
	src := v.Raw()
	checkRange("update_sub output", startOut, n, len(dst))
	checkRange("update_sub input", startIn, n, len(src))
	copy(dst[startOut:startOut+n], src[startIn:startIn+n])
}
