package arrayimg

// Cursor walks a range of pixel indices. It uses the pre-increment
// convention: a fresh or reset cursor sits one before its first pixel, and
// the first Fwd or Next lands on it.
//
// Get and Set are not range checked against the cursor's range; reading at
// a position outside the image panics or returns unspecified values.
type Cursor[V any] struct {
	img    *Img[V]
	index  int64
	offset int64
	// last index of the range, inclusive
	last int64
}

func newCursor[V any](img *Img[V], offset, size int64) *Cursor[V] {
	return &Cursor[V]{img: img, index: offset - 1, offset: offset, last: offset + size - 1}
}

func (c *Cursor[V]) Fwd()                  { c.index++ }
func (c *Cursor[V]) Bck()                  { c.index-- }
func (c *Cursor[V]) Advance(n int64)       { c.index += n }
func (c *Cursor[V]) Retreat(n int64)       { c.index -= n }
func (c *Cursor[V]) JumpTo(i int64)        { c.index = i }
func (c *Cursor[V]) Index() int64          { return c.index }
func (c *Cursor[V]) Reset()                { c.index = c.offset - 1 }
func (c *Cursor[V]) HasNext() bool         { return c.index < c.last }
func (c *Cursor[V]) Get() V                { return c.img.linked.Get(c.index) }
func (c *Cursor[V]) Set(v V)               { c.img.linked.Set(c.index, v) }
func (c *Cursor[V]) Img() *Img[V]          { return c.img }
func (c *Cursor[V]) Duplicate() *Cursor[V] { d := *c; return &d }

// Next moves to the next pixel and reads it.
func (c *Cursor[V]) Next() V {
	c.index++
	return c.img.linked.Get(c.index)
}

// Localize writes the coordinates of the current pixel to pos, which must
// hold at least NumDimensions values.
func (c *Cursor[V]) Localize(pos []int64) {
	c.img.localize(c.index, pos)
}

// Position returns the coordinate of the current pixel in dimension d.
func (c *Cursor[V]) Position(d int) int64 {
	return c.index / c.img.steps[d] % c.img.dims[d]
}
