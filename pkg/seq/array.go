package seq

import (
	"iter"
	"slices"
)

// Size fixes the length of an Array. Implementations are empty marker types:
//
//	type key32 struct{}
//
//	func (key32) Len() int { return 32 }
//
//	type Key = seq.Array[key32, secret.U8]
//
// Each marker yields a distinct array type; internal/gen writes them from a
// manifest.
type Size interface {
	Len() int
}

func sizeOf[N Size]() int {
	var n N
	return n.Len()
}

// Array is a container whose length is N.Len(). The zero value is a
// zero-filled array.
type Array[N Size, T Element] struct {
	b []T
}

// NewArray returns a zero-filled array.
func NewArray[N Size, T Element]() Array[N, T] {
	return Array[N, T]{b: make([]T, sizeOf[N]())}
}

// ArrayOf builds an array from exactly N.Len() values.
func ArrayOf[N Size, T Element](vals ...T) Array[N, T] {
	if l := sizeOf[N](); len(vals) != l {
		failLength("array of %d elements from %d values", l, len(vals))
	}
	return Array[N, T]{b: slices.Clone(vals)}
}

// Copy builds an array from v, which must have exactly N.Len() elements.
func Copy[N Size, T Element](v Container[T]) Array[N, T] {
	if l := sizeOf[N](); v.Len() != l {
		failLength("copy into array of %d from container of %d", l, v.Len())
	}
	return Array[N, T]{b: slices.Clone(v.Raw())}
}

// CopyPad builds an array from the leading elements of v and zero-fills the
// rest. It never fails: elements past N.Len() are ignored.
func CopyPad[N Size, T Element](v Container[T]) Array[N, T] {
	out := make([]T, sizeOf[N]())
	copy(out, v.Raw())
	return Array[N, T]{b: out}
}

// ArrayFromSub builds an array from input[start:end]; the range must have
// exactly N.Len() elements.
func ArrayFromSub[N Size, T Element](input Container[T], start, end int) Array[N, T] {
	if l := sizeOf[N](); end-start != l {
		failLength("sub range [%d, %d) is not the length of the array (%d)", start, end, l)
	}
	return ArrayFromSubPad[N](input, start, end)
}

// ArrayFromSubPad writes input[i] to index i-start for every i in
// [start, end) that both input and the array have. The rest stays zero.
func ArrayFromSubPad[N Size, T Element](input Container[T], start, end int) Array[N, T] {
	if start < 0 || end < start {
		failBounds("from_sub: range [%d, %d)", start, end)
	}
	out := make([]T, sizeOf[N]())
	src := input.Raw()
	for i := start; i < end && i < len(src) && i-start < len(out); i++ {
		out[i-start] = src[i]
	}
	return Array[N, T]{b: out}
}

func (a Array[N, T]) slots() []T {
	if a.b == nil {
		return make([]T, sizeOf[N]())
	}
	return a.b
}

// Raw returns the backing storage. See Container.Raw.
func (a Array[N, T]) Raw() []T {
	s := a.slots()
	return s[:len(s):len(s)]
}

func (a Array[N, T]) Len() int { return sizeOf[N]() }

func (a Array[N, T]) All() iter.Seq2[int, T] { return slices.All(a.slots()) }

// At returns element i.
func (a Array[N, T]) At(i int) T {
	s := a.slots()
	return s[checkIndex(i, len(s))]
}

// Update returns a copy of a with v written at start.
// It panics if start+v.Len() > N.Len().
func (a Array[N, T]) Update(start int, v Container[T]) Array[N, T] {
	out := slices.Clone(a.slots())
	update(out, start, v)
	return Array[N, T]{b: out}
}

// UpdateSub returns a copy of a with n elements of v, read from startIn,
// written at startOut.
func (a Array[N, T]) UpdateSub(startOut int, v Container[T], startIn, n int) Array[N, T] {
	out := slices.Clone(a.slots())
	updateSub(out, startOut, v, startIn, n)
	return Array[N, T]{b: out}
}

// UpdateElement returns a copy of a with element i replaced by v.
func (a Array[N, T]) UpdateElement(i int, v T) Array[N, T] {
	out := slices.Clone(a.slots())
	out[checkIndex(i, len(out))] = v
	return Array[N, T]{b: out}
}

// Seq returns the elements of a as a variable-length sequence.
func (a Array[N, T]) Seq() Seq[T] { return FromSlice(a.slots()) }

func (a Array[N, T]) Equal(o Container[T]) bool { return Equal[T](a, o) }

func (a Array[N, T]) String() string { return format(a.slots()) }
