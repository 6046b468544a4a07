package probe

import (
	"fmt"
	"math/rand/v2"

	"nativeimg/arrayimg"
	"nativeimg/parallel"
	"nativeimg/pixel"
)

const checkerSize = 8

// Fill writes a pattern to every pixel of img, one spliterator part per
// pool task. Parts of at most grain pixels are filled sequentially.
func Fill(pool *parallel.Pool, img *arrayimg.Img[uint64], pattern string, seed uint64, grain int64) error {
	peak := pixel.MaxValue(img.Type())

	var fill func(s *arrayimg.Spliterator[uint64])
	switch pattern {
	case "ramp":
		fill = func(s *arrayimg.Spliterator[uint64]) {
			s.ForEachRemaining(func(c *arrayimg.Cursor[uint64]) {
				c.Set(uint64(c.Index()) & peak)
			})
		}
	case "random":
		fill = func(s *arrayimg.Spliterator[uint64]) {
			from, _ := s.Range()
			rng := rand.New(rand.NewPCG(seed, uint64(from)))
			s.ForEachRemaining(func(c *arrayimg.Cursor[uint64]) {
				c.Set(rng.Uint64() & peak)
			})
		}
	case "checker":
		fill = func(s *arrayimg.Spliterator[uint64]) {
			pos := make([]int64, img.NumDimensions())
			s.ForEachRemaining(func(c *arrayimg.Cursor[uint64]) {
				c.Localize(pos)
				var sum int64
				for _, p := range pos {
					sum += p / checkerSize
				}
				if sum%2 == 1 {
					c.Set(peak)
				} else {
					c.Set(0)
				}
			})
		}
	default:
		return fmt.Errorf("unsupported fill pattern: %s", pattern)
	}

	parallel.ForEach(pool, img.Spliterator(), grain, fill)
	return nil
}

// Stats summarise pixel values.
type Stats struct {
	Sum     uint64
	NonZero int64
}

// Checksum sums all pixel values in parallel. The sum wraps modulo 2^64.
func Checksum(pool *parallel.Pool, img *arrayimg.Img[uint64], grain int64) Stats {
	parts := parallel.Map(pool, img.Spliterator(), grain, func(s *arrayimg.Spliterator[uint64]) (st Stats) {
		s.ForEachRemaining(func(c *arrayimg.Cursor[uint64]) {
			st.add(c.Get())
		})
		return st
	})
	var total Stats
	for _, st := range parts {
		total.Sum += st.Sum
		total.NonZero += st.NonZero
	}
	return total
}

func (st *Stats) add(v uint64) {
	st.Sum += v
	if v != 0 {
		st.NonZero++
	}
}

// SequentialChecksum is Checksum on a single cursor walk.
func SequentialChecksum(img *arrayimg.Img[uint64]) Stats {
	var st Stats
	c := img.Cursor()
	for c.HasNext() {
		st.add(c.Next())
	}
	return st
}
