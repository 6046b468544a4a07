package arrayimg

import "errors"

var (
	ErrSizeExceeded       = errors.New("image exceeds flat array size")
	ErrInvalidDimensions  = errors.New("invalid dimensions")
	ErrAccessSize         = errors.New("access size does not match image")
	ErrPositionOutOfRange = errors.New("position out of range")
)
