package fraction

import (
	"errors"
	"math"
	"testing"
)

func TestNewReduces(t *testing.T) {
	tests := []struct {
		num, den uint64
		wantNum  uint64
		wantDen  uint64
	}{
		{1, 1, 1, 1},
		{12, 64, 3, 16},
		{1, 64, 1, 64},
		{2, 1, 2, 1},
		{64, 64, 1, 1},
		{7, 64, 7, 64},
		{128, 64, 2, 1},
	}

	for _, tt := range tests {
		f, err := New(tt.num, tt.den)
		if err != nil {
			t.Fatalf("New(%d, %d): %v", tt.num, tt.den, err)
		}
		if f.Numerator() != tt.wantNum || f.Denominator() != tt.wantDen {
			t.Errorf("New(%d, %d) = %s, want %d/%d", tt.num, tt.den, f, tt.wantNum, tt.wantDen)
		}
		if gcd(f.Numerator(), f.Denominator()) != 1 {
			t.Errorf("New(%d, %d) = %s is not reduced", tt.num, tt.den, f)
		}
	}
}

func TestNewZero(t *testing.T) {
	for _, tt := range [][2]uint64{{0, 1}, {1, 0}, {0, 0}} {
		if _, err := New(tt[0], tt[1]); !errors.Is(err, ErrZeroTerm) {
			t.Errorf("New(%d, %d): got %v, want ErrZeroTerm", tt[0], tt[1], err)
		}
	}
}

func TestMulCeil(t *testing.T) {
	tests := []struct {
		f     Fraction
		count int64
		want  int64
	}{
		{MustNew(1, 64), 1_000_000, 15_625},
		{MustNew(1, 64), 1, 1},
		{MustNew(1, 64), 65, 2},
		{MustNew(12, 64), 16, 3},
		{MustNew(12, 64), 17, 4},
		{MustNew(2, 1), 10, 20},
		{One, 0, 0},
		{One, math.MaxInt64, math.MaxInt64},
		{MustNew(1, 64), math.MaxInt64, math.MaxInt64/64 + 1},
	}

	for _, tt := range tests {
		got, err := tt.f.MulCeil(tt.count)
		if err != nil {
			t.Errorf("%s.MulCeil(%d): %v", tt.f, tt.count, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s.MulCeil(%d): got %d, want %d", tt.f, tt.count, got, tt.want)
		}
	}
}

func TestMulCeilOverflow(t *testing.T) {
	if _, err := MustNew(2, 1).MulCeil(math.MaxInt64); !errors.Is(err, ErrOverflow) {
		t.Errorf("got %v, want ErrOverflow", err)
	}
	if _, err := One.MulCeil(-1); !errors.Is(err, ErrNegative) {
		t.Errorf("got %v, want ErrNegative", err)
	}
}

func TestMulFloor(t *testing.T) {
	f := MustNew(12, 64)
	for p := int64(0); p < 64; p++ {
		want := p * 12 / 64
		if got := f.MulFloor(p); got != want {
			t.Errorf("MulFloor(%d): got %d, want %d", p, got, want)
		}
	}
	if got := MustNew(2, 1).MulFloor(5); got != 10 {
		t.Errorf("MulFloor(5) for 2/1: got %d, want 10", got)
	}
}

func TestMul(t *testing.T) {
	got := MustNew(3, 16).Mul(MustNew(16, 3))
	if got != One {
		t.Errorf("3/16 * 16/3: got %s, want 1/1", got)
	}
	got = MustNew(1, 8).Mul(MustNew(2, 1))
	if got != MustNew(1, 4) {
		t.Errorf("1/8 * 2/1: got %s, want 1/4", got)
	}
}

func TestSpan(t *testing.T) {
	if s := MustNew(12, 64).Span(); s != 16 {
		t.Errorf("span of 12/64: got %d, want 16", s)
	}
	if s := MustNew(2, 1).Span(); s != 1 {
		t.Errorf("span of 2/1: got %d, want 1", s)
	}
}
