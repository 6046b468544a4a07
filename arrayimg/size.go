package arrayimg

import (
	"fmt"
	"math"
	"math/bits"

	"nativeimg/fraction"
)

// MaxFlatSize is the largest number of storage units a single flat access
// can hold. Larger images need a chunked layout.
const MaxFlatSize = math.MaxInt32

// NumPixels returns the product of dims. All extents must be positive.
func NumPixels(dims []int64) (int64, error) {
	if len(dims) == 0 {
		return 0, fmt.Errorf("%w: no dimensions", ErrInvalidDimensions)
	}
	total := uint64(1)
	for d, n := range dims {
		if n <= 0 {
			return 0, fmt.Errorf("%w: dimension %d is %d", ErrInvalidDimensions, d, n)
		}
		hi, lo := bits.Mul64(total, uint64(n))
		if hi != 0 || lo > math.MaxInt64 {
			return 0, fmt.Errorf("%w: pixel count of %v overflows int64", ErrSizeExceeded, dims)
		}
		total = lo
	}
	return int64(total), nil
}

// NumEntities returns the number of storage units needed for an image of
// the given dimensions, ceil(NumPixels(dims) * epp).
func NumEntities(dims []int64, epp fraction.Fraction) (int, error) {
	pixels, err := NumPixels(dims)
	if err != nil {
		return 0, err
	}
	units, err := epp.MulCeil(pixels)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSizeExceeded, err)
	}
	if units > MaxFlatSize {
		return 0, fmt.Errorf("%w: %v at %s units per pixel needs %d units, limit is %d",
			ErrSizeExceeded, dims, epp, units, MaxFlatSize)
	}
	return int(units), nil
}
