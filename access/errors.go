package access

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedCombination = errors.New("unsupported access combination")
	ErrIndexOutOfRange        = errors.New("index out of range")
	ErrBufferBounds           = errors.New("buffer bounds exceeded")
)

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}
	return nil
}

func checkRange(i, length, n int) error {
	if i < 0 || length < 0 || i > n-length {
		return fmt.Errorf("%w: [%d, %d) not in [0, %d)", ErrIndexOutOfRange, i, i+length, n)
	}
	return nil
}
