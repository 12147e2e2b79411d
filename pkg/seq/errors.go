package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrBounds marks an index or range outside a container.
	ErrBounds = errors.New("seq: out of bounds")
	// ErrLength marks a container whose length differs from the one required.
	ErrLength = errors.New("seq: length mismatch")
	// ErrOddLength is returned for hex strings with an odd number of digits.
	ErrOddLength = errors.New("seq: odd length hex string")
	// ErrInvalidHex is returned for hex strings containing a non-hex character.
	ErrInvalidHex = errors.New("seq: invalid hex character")
)

func failBounds(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrBounds}, args...)...))
}

func failLength(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrLength}, args...)...))
}

// Index is the set of integer types accepted by Get.
type Index interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func checkIndex[I Index](i I, n int) int {
	if i < 0 || uint64(i) >= uint64(n) {
		failBounds("index %d, length %d", i, n)
	}
	return int(i)
}

func checkRange(op string, start, n, length int) {
	if start < 0 || n < 0 || start > length || n > length-start {
		failBounds("%s: %d + %d > %d", op, start, n, length)
	}
}
