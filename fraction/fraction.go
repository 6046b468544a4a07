// Package fraction implements the reduced rational numbers that describe
// how many storage units a single pixel occupies.
//
// A 12-bit pixel packed into 64-bit words takes 12/64 = 3/16 of a word,
// a byte pixel in a byte array takes 1/1, a 128-bit pixel in 64-bit words
// takes 2/1. All index translation between pixels and storage units goes
// through MulFloor and MulCeil, which use 128-bit intermediates so that
// products of large pixel counts never wrap silently.
package fraction

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var (
	ErrZeroTerm = errors.New("fraction term must be positive")
	ErrOverflow = errors.New("fraction product overflows int64")
	ErrNegative = errors.New("negative count")
)

// Fraction is a reduced numerator/denominator pair. The zero value is not a
// valid Fraction; use New or MustNew.
type Fraction struct {
	num uint64
	den uint64
}

// One is the fraction of word-aligned pixel types.
var One = Fraction{num: 1, den: 1}

func New(num, den uint64) (Fraction, error) {
	if num == 0 || den == 0 {
		return Fraction{}, fmt.Errorf("%w: %d/%d", ErrZeroTerm, num, den)
	}
	g := gcd(num, den)
	return Fraction{num: num / g, den: den / g}, nil
}

func MustNew(num, den uint64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func (f Fraction) Numerator() uint64   { return f.num }
func (f Fraction) Denominator() uint64 { return f.den }

// IsInteger reports whether a pixel occupies a whole number of units.
func (f Fraction) IsInteger() bool { return f.den == 1 }

// Span is the number of consecutive pixels that together fill a whole run
// of storage units. Pixels in different spans never share a unit.
func (f Fraction) Span() int64 { return int64(f.den) }

func (f Fraction) Ratio() float64 { return float64(f.num) / float64(f.den) }

func (f Fraction) String() string { return fmt.Sprintf("%d/%d", f.num, f.den) }

// Mul returns the reduced product f*o. It panics if the reduced product
// does not fit in 64-bit terms.
func (f Fraction) Mul(o Fraction) Fraction {
	g1, g2 := gcd(f.num, o.den), gcd(o.num, f.den)
	n1, d2 := f.num/g1, o.den/g1
	n2, d1 := o.num/g2, f.den/g2
	hn, num := bits.Mul64(n1, n2)
	hd, den := bits.Mul64(d1, d2)
	if hn != 0 || hd != 0 {
		panic(fmt.Errorf("%w: %s * %s", ErrOverflow, f, o))
	}
	return Fraction{num: num, den: den}
}

// MulCeil returns ceil(count * num / den), the number of storage units
// needed for count pixels.
func (f Fraction) MulCeil(count int64) (int64, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegative, count)
	}
	hi, lo := bits.Mul64(uint64(count), f.num)
	if hi >= f.den {
		return 0, fmt.Errorf("%w: %d * %s", ErrOverflow, count, f)
	}
	q, r := bits.Div64(hi, lo, f.den)
	if r != 0 {
		q++
	}
	if q > math.MaxInt64 || q == 0 && count != 0 {
		return 0, fmt.Errorf("%w: %d * %s", ErrOverflow, count, f)
	}
	return int64(q), nil
}

// MulFloor returns floor(index * num / den), the storage unit holding the
// first bit of the pixel at index. index must be non-negative and small
// enough that the result fits; both hold for any index below a pixel count
// accepted by MulCeil.
func (f Fraction) MulFloor(index int64) int64 {
	hi, lo := bits.Mul64(uint64(index), f.num)
	q, _ := bits.Div64(hi, lo, f.den)
	return int64(q)
}
