package parallel

import (
	"sync"

	"nativeimg/logging"
)

// Splitter is a range that can hand off part of itself. TrySplit returns
// the split-off part and true, or false when the range is too small.
type Splitter[S any] interface {
	TrySplit() (S, bool)
	EstimateSize() int64
}

// Partition splits root until every part holds at most minSize elements or
// refuses to split. Parts are returned in ascending range order; root
// itself becomes the last part.
func Partition[S Splitter[S]](root S, minSize int64) []S {
	minSize = max(minSize, 1)
	var parts []S
	var split func(s S)
	split = func(s S) {
		if s.EstimateSize() > minSize {
			if left, ok := s.TrySplit(); ok {
				split(left)
				split(s)
				return
			}
		}
		parts = append(parts, s)
	}
	split(root)
	return parts
}

// ForEach partitions root and runs fn on every part using the pool. It
// returns once all parts are done.
func ForEach[S Splitter[S]](p *Pool, root S, minSize int64, fn func(S)) {
	Map(p, root, minSize, func(s S) struct{} {
		fn(s)
		return struct{}{}
	})
}

// Map partitions root, runs fn on every part using the pool and returns the
// results in part order.
func Map[S Splitter[S], R any](p *Pool, root S, minSize int64, fn func(S) R) []R {
	parts := Partition(root, minSize)
	logging.Logger().Debug("partitioned range", "parts", len(parts), "workers", p.Workers())

	res := make([]R, len(parts))
	var wg sync.WaitGroup
	for i, part := range parts {
		wg.Add(1)
		p.Go(func() {
			defer wg.Done()
			res[i] = fn(part)
		})
	}
	wg.Wait()
	return res
}
