// Package arrayimg implements images backed by a single flat access.
//
// An Img owns its access, its dimensions and the binding that translates
// pixel indices to storage units. Pixels are laid out with the first
// dimension varying fastest. Cursors and spliterators each own a private
// position over the shared access; writers on disjoint index ranges never
// touch the same storage unit when the ranges come from TrySplit.
package arrayimg

import (
	"fmt"
	"iter"
	"slices"

	"nativeimg/access"
	"nativeimg/fraction"
	"nativeimg/pixel"
)

type Img[V any] struct {
	factory *Factory[V]
	access  access.Access
	dims    []int64
	steps   []int64
	size    int64
	epp     fraction.Fraction
	linked  pixel.Binding[V]
}

func (img *Img[V]) Dimensions() []int64                 { return slices.Clone(img.dims) }
func (img *Img[V]) Dimension(d int) int64               { return img.dims[d] }
func (img *Img[V]) NumDimensions() int                  { return len(img.dims) }
func (img *Img[V]) Size() int64                         { return img.size }
func (img *Img[V]) EntitiesPerPixel() fraction.Fraction { return img.epp }
func (img *Img[V]) Type() pixel.Type[V]                 { return img.factory.typ }

// Factory returns a factory producing images like this one.
func (img *Img[V]) Factory() *Factory[V] { return img.factory }

// Access hands out the storage for bulk external I/O.
func (img *Img[V]) Access() access.Access { return img.access }

// Valid reports whether the storage is ready to be read. Non-volatile
// storage is always valid.
func (img *Img[V]) Valid() bool {
	if v, ok := img.access.(access.VolatileAccess); ok {
		return v.IsValid()
	}
	return true
}

// Dirty reports whether dirty-tracking storage has been written since it
// was last cleared. Storage without tracking never reports dirty.
func (img *Img[V]) Dirty() bool {
	if d, ok := img.access.(access.DirtyAccess); ok {
		return d.IsDirty()
	}
	return false
}

func (img *Img[V]) String() string {
	return fmt.Sprintf("ArrayImg[%s %v %s]", img.factory.typ.Name(), img.dims, img.access.Flags())
}

// Cursor returns a cursor over all pixels, positioned before the first.
func (img *Img[V]) Cursor() *Cursor[V] {
	return newCursor(img, 0, img.size)
}

// CursorRange returns a cursor over size pixels starting at offset.
func (img *Img[V]) CursorRange(offset, size int64) (*Cursor[V], error) {
	if offset < 0 || size < 0 || offset > img.size-size {
		return nil, fmt.Errorf("%w: range [%d, %d) in %d pixels", ErrPositionOutOfRange, offset, offset+size, img.size)
	}
	return newCursor(img, offset, size), nil
}

func (img *Img[V]) Spliterator() *Spliterator[V] {
	return newSpliterator(img, 0, img.size)
}

// All iterates over (index, value) pairs in index order.
func (img *Img[V]) All() iter.Seq2[int64, V] {
	return func(yield func(int64, V) bool) {
		for i := range img.size {
			if !yield(i, img.linked.Get(i)) {
				return
			}
		}
	}
}

func (img *Img[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range img.size {
			if !yield(img.linked.Get(i)) {
				return
			}
		}
	}
}

// Index returns the flat index of a position.
func (img *Img[V]) Index(pos ...int64) (int64, error) {
	if len(pos) != len(img.dims) {
		return 0, fmt.Errorf("%w: %d coordinates for %d dimensions", ErrPositionOutOfRange, len(pos), len(img.dims))
	}
	var i int64
	for d, p := range pos {
		if p < 0 || p >= img.dims[d] {
			return 0, fmt.Errorf("%w: %v in %v", ErrPositionOutOfRange, pos, img.dims)
		}
		i += p * img.steps[d]
	}
	return i, nil
}

// At reads the pixel at a position.
func (img *Img[V]) At(pos ...int64) (V, error) {
	i, err := img.Index(pos...)
	if err != nil {
		var zero V
		return zero, err
	}
	return img.linked.Get(i), nil
}

// SetAt writes the pixel at a position.
func (img *Img[V]) SetAt(v V, pos ...int64) error {
	i, err := img.Index(pos...)
	if err != nil {
		return err
	}
	img.linked.Set(i, v)
	return nil
}

func (img *Img[V]) localize(index int64, pos []int64) {
	last := len(img.dims) - 1
	for d := range last {
		pos[d] = index % img.dims[d]
		index /= img.dims[d]
	}
	pos[last] = index
}
