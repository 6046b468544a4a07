package parallel

import (
	"sync/atomic"
	"testing"
)

// span is a half-open range [lo, hi) that splits at its midpoint.
type span struct {
	lo, hi int64
}

func (s *span) EstimateSize() int64 { return s.hi - s.lo }

func (s *span) TrySplit() (*span, bool) {
	mid := (s.lo + s.hi) / 2
	if mid == s.lo {
		return nil, false
	}
	left := &span{s.lo, mid}
	s.lo = mid
	return left, true
}

func TestPoolRunsAll(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		p := Start(workers)
		var n atomic.Int64
		for range 100 {
			p.Go(func() { n.Add(1) })
		}
		p.Wait()
		if n.Load() != 100 {
			t.Errorf("%d workers: ran %d, want 100", workers, n.Load())
		}
		p.Close()
	}
}

func TestPartitionCovers(t *testing.T) {
	for _, minSize := range []int64{0, 1, 7, 100, 5000} {
		parts := Partition(&span{0, 1000}, minSize)
		next := int64(0)
		for _, s := range parts {
			if s.lo != next {
				t.Fatalf("minSize %d: part starts at %d, want %d", minSize, s.lo, next)
			}
			if s.EstimateSize() > max(minSize, 1) && s.EstimateSize() > 1 {
				t.Errorf("minSize %d: part [%d, %d) too large", minSize, s.lo, s.hi)
			}
			next = s.hi
		}
		if next != 1000 {
			t.Errorf("minSize %d: parts end at %d, want 1000", minSize, next)
		}
	}
}

func TestMapOrder(t *testing.T) {
	p := Start(3)
	defer p.Wait()

	res := Map(p, &span{0, 64}, 8, func(s *span) int64 { return s.lo })
	if len(res) != 8 {
		t.Fatalf("got %d parts, want 8", len(res))
	}
	for i, lo := range res {
		if lo != int64(i)*8 {
			t.Errorf("part %d starts at %d, want %d", i, lo, i*8)
		}
	}

	var sum atomic.Int64
	ForEach(p, &span{0, 100}, 10, func(s *span) { sum.Add(s.hi - s.lo) })
	if sum.Load() != 100 {
		t.Errorf("ForEach covered %d elements, want 100", sum.Load())
	}
}
