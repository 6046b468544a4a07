package arrayimg

// Characteristics describe the guarantees of a Spliterator.
type Characteristics uint16

const (
	// Ordered: elements are visited in ascending index order.
	Ordered Characteristics = 1 << iota
	// Sized: the element count is known before traversal.
	Sized
	// Subsized: split parts are Sized and their counts sum to the parent's.
	Subsized
	// NonNull: every element is a valid pixel.
	NonNull
	// Immutable: no element is removed or added during traversal.
	Immutable
)

func (c Characteristics) Has(o Characteristics) bool { return c&o == o }

// Spliterator traverses a range of pixels and can split off the lower part
// of its remaining range for another goroutine.
//
// Split points are aligned so that every part after the first starts on a
// multiple of max(2, span) pixels, where span is the denominator of the
// entities-per-pixel fraction. Parts therefore never share a storage unit,
// and packed pixels can be written concurrently without tearing their
// neighbours.
type Spliterator[V any] struct {
	c     Cursor[V]
	align int64
}

func newSpliterator[V any](img *Img[V], offset, size int64) *Spliterator[V] {
	return &Spliterator[V]{
		c:     *newCursor(img, offset, size),
		align: max(2, img.epp.Span()),
	}
}

// TryAdvance moves to the next pixel and hands the cursor to action. It
// reports false once the range is exhausted.
func (s *Spliterator[V]) TryAdvance(action func(*Cursor[V])) bool {
	if !s.c.HasNext() {
		return false
	}
	s.c.Fwd()
	action(&s.c)
	return true
}

// ForEachRemaining hands the cursor to action once per remaining pixel.
func (s *Spliterator[V]) ForEachRemaining(action func(*Cursor[V])) {
	for remaining := s.c.last - s.c.index; remaining > 0; remaining-- {
		s.c.Fwd()
		action(&s.c)
	}
}

// TrySplit splits off the lower half of the remaining range and returns it.
// s keeps the upper half. It reports false when the range is too small to
// split.
func (s *Spliterator[V]) TrySplit() (*Spliterator[V], bool) {
	lo, fence := s.c.index, s.c.last
	mid := (lo + fence) >> 1
	mid = alignDown(mid+1, s.align) - 1
	if lo >= mid {
		return nil, false
	}
	left := newSpliterator(s.c.img, lo+1, mid-lo)
	s.c.offset = mid + 1
	s.c.index = mid
	return left, true
}

func alignDown(x, align int64) int64 {
	r := x % align
	if r < 0 {
		r += align
	}
	return x - r
}

// EstimateSize is the exact number of remaining pixels.
func (s *Spliterator[V]) EstimateSize() int64 { return s.c.last - s.c.index }

func (s *Spliterator[V]) Characteristics() Characteristics {
	return Immutable | NonNull | Ordered | Sized | Subsized
}

// Range returns the remaining index range [from, to).
func (s *Spliterator[V]) Range() (from, to int64) {
	return s.c.index + 1, s.c.last + 1
}

// Copy returns an independent spliterator at the same position.
func (s *Spliterator[V]) Copy() *Spliterator[V] {
	d := *s
	return &d
}
