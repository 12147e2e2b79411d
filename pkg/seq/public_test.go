package seq_test

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hacspec/pkg/entropy"
	"hacspec/pkg/secret"
	"hacspec/pkg/seq"
	"hacspec/pkg/seq/seqtest"
)

type counterSize struct{}

func (counterSize) Len() int { return 2 }

type Counter = seq.Array[counterSize, uint64]

func TestPublicSeq_Update(t *testing.T) {
	s := seq.New[uint8](3).Update(1, seq.Of[uint8](7))

	assert.Equal(t, "[0 7 0]", s.String())
	assert.Equal(t, []uint8{0, 7, 0}, s.Raw())
	assert.True(t, s.Equal(seq.Of[uint8](0, 7, 0)))
	assert.False(t, s.Equal(seq.Of[uint8](0, 7, 1)))

	requirePanicsWith(t, seq.ErrBounds, func() { s.Update(3, seq.Of[uint8](1)) })
}

func TestPublicArray_Counter(t *testing.T) {
	var c Counter
	c = c.UpdateElement(1, 42)
	c = seq.Set[Counter, uint64](c, uint8(0), math.MaxUint64)

	assert.Equal(t, "[18446744073709551615 42]", c.String())
	assert.Equal(t, uint64(42), seq.Get[uint64](c, int16(1)))
	seqtest.AssertEqual[uint64](t, seq.Of[uint64](math.MaxUint64, 42), c)
}

func TestPublicHex(t *testing.T) {
	b, err := seq.PublicFromHex("00FFa0")
	require.NoError(t, err)
	assert.Equal(t, []uint8{0x00, 0xff, 0xa0}, b.Raw())
	assert.Equal(t, "00ffa0", seq.PublicToHex(b))

	_, err = seq.PublicFromHex("0")
	assert.ErrorIs(t, err, seq.ErrOddLength)
	_, err = seq.PublicFromHex("x0")
	assert.ErrorIs(t, err, seq.ErrInvalidHex)
	assert.Panics(t, func() { seq.MustPublicFromHex("abc") })

	a, err := seq.PublicArrayFromHex[four]("01020304")
	require.NoError(t, err)
	assert.Equal(t, "[1 2 3 4]", a.String())
	_, err = seq.PublicArrayFromHex[four]("0102")
	assert.ErrorIs(t, err, seq.ErrLength)
}

func TestPublicUint128Elements(t *testing.T) {
	s := seq.Of(secret.Uint128{Hi: 1}, secret.Uint128{Lo: 5})
	assert.Equal(t, "[18446744073709551616 5]", s.String())
}

func TestSecretU128Elements(t *testing.T) {
	x := secret.ClassifyU128(secret.Uint128{Hi: 1})
	s := seq.Of(x, secret.U128{})

	assert.Equal(t, "[18446744073709551616 0]", s.String())
	assert.True(t, s.Equal(seq.New[secret.U128](2).UpdateElement(0, x)))
}

func TestRandomWords_LittleEndianPerElement(t *testing.T) {
	src := bytes.NewReader([]byte{
		0x01, 0x02, 0x03, 0x04,
		0x05, 0x06, 0x07, 0x08,
		0xff,
	})

	a, err := seq.RandomWords[two, secret.U32](src)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), a.At(0).Declassify())
	assert.Equal(t, uint32(0x08070605), a.At(1).Declassify())

	_, err = seq.RandomWords[two, secret.U32](src)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestRandomWords_AllWidths(t *testing.T) {
	src := bytes.NewReader(bytes.Repeat([]byte{0xab}, 1024))

	u8, err := seq.RandomWords[two, secret.U8](src)
	require.NoError(t, err)
	assert.Equal(t, "[171 171]", u8.String())

	u16, err := seq.RandomWords[two, uint16](src)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xabab), u16.At(1))

	u64, err := seq.RandomWords[two, secret.U64](src)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xabababababababab), u64.At(0).Declassify())

	u128, err := seq.RandomWords[two, secret.U128](src)
	require.NoError(t, err)
	want := secret.Uint128{Hi: 0xabababababababab, Lo: 0xabababababababab}
	assert.Equal(t, want, u128.At(1).Declassify())
}

func TestRandomWords_DeterministicSource(t *testing.T) {
	draw := func() seq.Array[four, secret.U64] {
		r, err := entropy.Deterministic([]byte("state"), "words")
		require.NoError(t, err)
		a, err := seq.RandomWords[four, secret.U64](r)
		require.NoError(t, err)
		return a
	}

	a, b := draw(), draw()
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(seq.NewArray[four, secret.U64]()))
}

func TestNumChunks_HugeSize(t *testing.T) {
	s := bs(1, 2, 3)
	assert.Equal(t, 1, s.NumChunks(math.MaxInt))
	assert.Equal(t, 0, seq.New[U8](0).NumChunks(math.MaxInt))
	assert.Equal(t, 2, s.NumChunks(2))
	assert.Equal(t, 3, s.NumChunks(1))

	n := 0
	for range s.Chunks(math.MaxInt) {
		n++
	}
	assert.Equal(t, 1, n)
}

func TestRaw_UpdateResultDoesNotShareStorage(t *testing.T) {
	orig := bs(1, 2, 3)
	updated := orig.UpdateElement(2, secret.Classify(uint8(4)))
	updated.Raw()[0] = secret.Classify(uint8(9))
	assert.Equal(t, "[1 2 3]", orig.String())

	arr := seq.Copy[four, U8](bs(1, 2, 3, 4))
	next := arr.Update(0, bs(5))
	next.Raw()[1] = secret.Classify(uint8(9))
	assert.Equal(t, "[1 2 3 4]", arr.String())

	// A plain copy shares storage, so a write through Raw is visible in both.
	alias := orig
	orig.Raw()[0] = secret.Classify(uint8(7))
	assert.Equal(t, "[7 2 3]", alias.String())
}
