package seq_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hacspec/pkg/secret"
	"hacspec/pkg/seq"
	"hacspec/pkg/seq/seqtest"
)

type U8 = secret.U8

func bs(vals ...uint8) seq.Bytes { return seq.Of(secret.ClassifySlice(vals...)...) }

// requirePanicsWith runs f and requires a panic whose error wraps target.
func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	f()
}

func TestNew_ZeroFilled(t *testing.T) {
	s := seq.New[U8](5)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, "[0 0 0 0 0]", s.String())
	assert.True(t, seq.New[U8](0).IsEmpty())
}

func TestFromSlice_Copies(t *testing.T) {
	in := secret.ClassifySlice[uint8](1, 2, 3)
	s := seq.FromSlice(in)
	in[0] = secret.Classify(uint8(9))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "[1 2 3]", s.String())
}

func TestUpdate(t *testing.T) {
	s := seq.New[U8](5).Update(2, bs(2, 3))
	seqtest.AssertEqual[U8](t, bs(0, 0, 2, 3, 0), s)
}

func TestUpdateSub(t *testing.T) {
	s := seq.New[U8](5).UpdateSub(2, bs(2, 3), 1, 1)
	seqtest.AssertEqual[U8](t, bs(0, 0, 3, 0, 0), s)
}

func TestUpdate_PreservesLength(t *testing.T) {
	for l := 0; l <= 8; l++ {
		for start := 0; start <= l; start++ {
			for n := 0; start+n <= l; n++ {
				s := seq.New[U8](l)
				v := seq.New[U8](n)
				assert.Equal(t, l, s.Update(start, v).Len())
				assert.Equal(t, l, s.UpdateSub(start, v, 0, n).Len())
			}
		}
	}
}

func TestUpdate_DoesNotAlias(t *testing.T) {
	orig := bs(1, 2, 3)
	updated := orig.Update(0, bs(9))

	assert.Equal(t, "[1 2 3]", orig.String())
	assert.Equal(t, "[9 2 3]", updated.String())

	sub := orig.Sub(1, 2)
	_ = sub.UpdateElement(0, secret.Classify(uint8(7)))
	assert.Equal(t, "[1 2 3]", orig.String())
}

func TestUpdate_OutOfBoundsPanics(t *testing.T) {
	requirePanicsWith(t, seq.ErrBounds, func() {
		seq.New[U8](3).Update(2, bs(1, 2))
	})
	requirePanicsWith(t, seq.ErrBounds, func() {
		seq.New[U8](3).Update(-1, bs(1))
	})
}

func TestUpdateSub_OutOfBoundsPanics(t *testing.T) {
	// Output range too long.
	requirePanicsWith(t, seq.ErrBounds, func() {
		seq.New[U8](3).UpdateSub(2, bs(1, 2, 3), 0, 2)
	})
	// Input range too long.
	requirePanicsWith(t, seq.ErrBounds, func() {
		seq.New[U8](5).UpdateSub(0, bs(1, 2), 1, 2)
	})
}

func TestUpdateElement(t *testing.T) {
	s := seq.New[U8](5).UpdateElement(4, secret.Classify(uint8(7)))
	seqtest.AssertEqual[U8](t, bs(0, 0, 0, 0, 7), s)

	requirePanicsWith(t, seq.ErrBounds, func() {
		s.UpdateElement(5, secret.Classify(uint8(1)))
	})
}

func TestFromSub(t *testing.T) {
	input := bs(1, 2, 3, 4, 5)

	s := seq.FromSub[U8](input, 1, 3)
	assert.Equal(t, "[0 2 3]", s.String())
}

func TestFromSub_ShortInputCopiesOverlap(t *testing.T) {
	s := seq.FromSub[U8](bs(1, 2, 3), 1, 6)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, "[0 2 3 0 0 0]", s.String())

	requirePanicsWith(t, seq.ErrBounds, func() {
		seq.FromSub[U8](bs(1), 3, 2)
	})
}

func TestSub(t *testing.T) {
	s := bs(1, 2, 3, 4, 5)
	assert.Equal(t, "[2 3 4]", s.Sub(1, 3).String())
	assert.Equal(t, "[]", s.Sub(5, 0).String())

	requirePanicsWith(t, seq.ErrBounds, func() { s.Sub(4, 2) })
}

func TestChunks(t *testing.T) {
	s := bs(1, 2, 3, 4, 5, 6, 7)

	var got []string
	for i, c := range s.Chunks(3) {
		assert.Len(t, got, i)
		got = append(got, c.String())
	}
	assert.Equal(t, []string{"[1 2 3]", "[4 5 6]", "[7]"}, got)
	assert.Equal(t, 3, s.NumChunks(3))
}

func TestChunksExact_DropsPartial(t *testing.T) {
	s := bs(1, 2, 3, 4, 5, 6, 7)

	var got []string
	for _, c := range s.ChunksExact(3) {
		got = append(got, c.String())
	}
	assert.Equal(t, []string{"[1 2 3]", "[4 5 6]"}, got)
}

func TestChunks_EarlyBreak(t *testing.T) {
	count := 0
	for range bs(1, 2, 3, 4).Chunks(1) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestChunks_ZeroSizePanics(t *testing.T) {
	requirePanicsWith(t, seq.ErrLength, func() { bs(1).Chunks(0) })
	requirePanicsWith(t, seq.ErrLength, func() { bs(1).ChunksExact(0) })
}

func TestGet_AnyIndexWidth(t *testing.T) {
	s := bs(10, 20, 30)

	assert.Equal(t, uint8(30), seq.Get[U8](s, uint8(2)).Declassify())
	assert.Equal(t, uint8(20), seq.Get[U8](s, int32(1)).Declassify())
	assert.Equal(t, uint8(10), seq.Get[U8](s, uint64(0)).Declassify())
	assert.Equal(t, uint8(20), s.At(1).Declassify())

	requirePanicsWith(t, seq.ErrBounds, func() { seq.Get[U8](s, int32(-1)) })
	requirePanicsWith(t, seq.ErrBounds, func() { seq.Get[U8](s, uint32(3)) })
	requirePanicsWith(t, seq.ErrBounds, func() { s.At(3) })
}

func TestAll_ForwardOrder(t *testing.T) {
	var idx []int
	var vals []uint8
	for i, x := range bs(5, 6, 7).All() {
		idx = append(idx, i)
		vals = append(vals, x.Declassify())
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []uint8{5, 6, 7}, vals)
}

func TestEqual_IgnoresConstructionPath(t *testing.T) {
	a := seq.New[U8](4).Update(0, bs(1, 2)).Update(2, bs(3, 4))
	b := bs(1, 2, 3, 4)
	c := seq.MustFromHex("01020304")
	d := seq.New[U8](4).UpdateSub(0, bs(9, 1, 2, 3, 4), 1, 4)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(c))
	assert.True(t, c.Equal(d))
	assert.False(t, a.Equal(bs(1, 2, 3)))
	assert.False(t, a.Equal(bs(1, 2, 3, 5)))
}

func TestHex_RoundTrip(t *testing.T) {
	all := make([]uint8, 256)
	for i := range all {
		all[i] = uint8(i)
	}
	inputs := [][]uint8{nil, {0}, {0xff}, {0xde, 0xad, 0xbe, 0xef}, all}
	for _, in := range inputs {
		b := bs(in...)
		got, err := seq.FromHex(seq.ToHex(b))
		require.NoError(t, err)
		seqtest.AssertBytesEqual(t, b, got)
	}
}

func TestToHex_Lowercase(t *testing.T) {
	assert.Equal(t, "00abcdef", seq.ToHex(bs(0x00, 0xab, 0xcd, 0xef)))
	assert.Equal(t, "", seq.ToHex(seq.New[U8](0)))
}

func TestFromHex_AcceptsUppercase(t *testing.T) {
	b, err := seq.FromHex("ABcd")
	require.NoError(t, err)
	seqtest.AssertHex(t, "abcd", b)
}

func TestFromHex_Errors(t *testing.T) {
	_, err := seq.FromHex("abc")
	assert.ErrorIs(t, err, seq.ErrOddLength)

	_, err = seq.FromHex("zz")
	assert.ErrorIs(t, err, seq.ErrInvalidHex)

	_, err = seq.FromHex("0g")
	assert.ErrorIs(t, err, seq.ErrInvalidHex)

	assert.Panics(t, func() { seq.MustFromHex("abc") })
}

func TestRandom(t *testing.T) {
	src := bytes.NewReader([]byte{1, 2, 3, 4, 5})

	b, err := seq.Random(src, 3)
	require.NoError(t, err)
	seqtest.AssertHex(t, "010203", b)

	_, err = seq.Random(src, 3)
	assert.Error(t, err)
}
