package seq

import (
	"iter"
	"slices"

	"hacspec/pkg/secret"
)

// Seq is a variable-length sequence. Its length is fixed when it is built;
// updates return a new Seq of the same length.
type Seq[T Element] struct {
	b []T
}

var _ Container[secret.U8] = Seq[secret.U8]{}

// New returns a zero-filled sequence of length l.
func New[T Element](l int) Seq[T] {
	if l < 0 {
		failLength("negative length %d", l)
	}
	return Seq[T]{b: make([]T, l)}
}

// FromSlice copies v into a new sequence.
func FromSlice[T Element](v []T) Seq[T] {
	return Seq[T]{b: slices.Clone(v)}
}

// Of is the variadic form of FromSlice.
func Of[T Element](vals ...T) Seq[T] { return FromSlice(vals) }

// FromSub returns a sequence of length end whose indices [start, end) hold
// the elements of input at the same indices. Elements input does not have
// are left zero; this is not an error.
func FromSub[T Element](input Container[T], start, end int) Seq[T] {
	if start < 0 || end < start {
		failBounds("from_sub: range [%d, %d)", start, end)
	}
	out := make([]T, end)
	src := input.Raw()
	for i := start; i < end && i < len(src); i++ {
		out[i] = src[i]
	}
	return Seq[T]{b: out}
}

// Raw returns the backing storage. See Container.Raw.
func (s Seq[T]) Raw() []T { return s.b[:len(s.b):len(s.b)] }

func (s Seq[T]) Len() int { return len(s.b) }

func (s Seq[T]) All() iter.Seq2[int, T] { return slices.All(s.b) }

// IsEmpty reports whether s has no elements.
func (s Seq[T]) IsEmpty() bool { return len(s.b) == 0 }

// At returns element i.
func (s Seq[T]) At(i int) T { return s.b[checkIndex(i, len(s.b))] }

// Update returns a copy of s with v written at start.
// It panics if start+v.Len() > s.Len().
func (s Seq[T]) Update(start int, v Container[T]) Seq[T] {
	out := slices.Clone(s.b)
	update(out, start, v)
	return Seq[T]{b: out}
}

// UpdateSub returns a copy of s with n elements of v, read from startIn,
// written at startOut. It panics if either range is out of bounds.
func (s Seq[T]) UpdateSub(startOut int, v Container[T], startIn, n int) Seq[T] {
	out := slices.Clone(s.b)
	updateSub(out, startOut, v, startIn, n)
	return Seq[T]{b: out}
}

// UpdateElement returns a copy of s with element i replaced by v.
func (s Seq[T]) UpdateElement(i int, v T) Seq[T] {
	out := slices.Clone(s.b)
	out[checkIndex(i, len(out))] = v
	return Seq[T]{b: out}
}

// Sub returns the n elements starting at start.
func (s Seq[T]) Sub(start, n int) Seq[T] {
	checkRange("sub", start, n, len(s.b))
	return Seq[T]{b: s.b[start : start+n : start+n]}
}

// Chunks iterates over consecutive sub-sequences of size elements. The last
// chunk is shorter when size does not divide s.Len().
func (s Seq[T]) Chunks(size int) iter.Seq2[int, Seq[T]] {
	return s.chunks(size, false)
}

// ChunksExact is like Chunks but drops a trailing partial chunk.
func (s Seq[T]) ChunksExact(size int) iter.Seq2[int, Seq[T]] {
	return s.chunks(size, true)
}

// NumChunks returns how many chunks Chunks(size) yields.
func (s Seq[T]) NumChunks(size int) int {
	if size <= 0 {
		failLength("chunk size %d", size)
	}
	n := len(s.b) / size
	if len(s.b)%size != 0 {
		n++
	}
	return n
}

func (s Seq[T]) chunks(size int, exact bool) iter.Seq2[int, Seq[T]] {
	if size <= 0 {
		failLength("chunk size %d", size)
	}
	return func(yield func(int, Seq[T]) bool) {
		for i, off := 0, 0; off < len(s.b); i, off = i+1, off+size {
			end := min(off+size, len(s.b))
			if exact && end-off < size {
				return
			}
			if !yield(i, Seq[T]{b: s.b[off:end:end]}) {
				return
			}
		}
	}
}

// Equal compares declassified elements; containers of different length are
// never equal.
func (s Seq[T]) Equal(o Container[T]) bool { return Equal[T](s, o) }

// String formats the declassified elements, e.g. "[0 0 2 3 0]".
func (s Seq[T]) String() string { return format(s.b) }
