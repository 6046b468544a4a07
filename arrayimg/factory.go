package arrayimg

import (
	"fmt"
	"slices"

	"nativeimg/access"
	"nativeimg/logging"
	"nativeimg/pixel"
)

// Factory builds images of one pixel type with accesses from one registry
// and capability set.
type Factory[V any] struct {
	typ      pixel.Type[V]
	registry *access.Registry
	flags    access.Flags
}

// NewFactory returns a factory for plain array-backed images.
func NewFactory[V any](t pixel.Type[V]) *Factory[V] {
	return FromFlags(t, access.Arrays, 0)
}

func FromFlags[V any](t pixel.Type[V], registry *access.Registry, flags access.Flags) *Factory[V] {
	return &Factory[V]{typ: t, registry: registry, flags: flags}
}

// Create builds a plain array-backed image.
func Create[V any](t pixel.Type[V], dims ...int64) (*Img[V], error) {
	return NewFactory(t).Create(dims...)
}

func (f *Factory[V]) Type() pixel.Type[V]        { return f.typ }
func (f *Factory[V]) Registry() *access.Registry { return f.registry }
func (f *Factory[V]) Flags() access.Flags        { return f.flags }

// Create allocates a zeroed access of the required size and builds an
// image over it. On error no image is returned.
func (f *Factory[V]) Create(dims ...int64) (*Img[V], error) {
	n, err := NumEntities(dims, f.typ.EntitiesPerPixel())
	if err != nil {
		return nil, fmt.Errorf("could not size %s image: %w", f.typ.Name(), err)
	}
	a, err := f.registry.Create(f.typ.Kind(), f.flags, n)
	if err != nil {
		return nil, fmt.Errorf("could not allocate %s image: %w", f.typ.Name(), err)
	}
	return f.build(a, dims, n)
}

// CreateWith builds an image over an existing access, which must hold
// exactly the number of units the dimensions require.
func (f *Factory[V]) CreateWith(a access.Access, dims ...int64) (*Img[V], error) {
	n, err := NumEntities(dims, f.typ.EntitiesPerPixel())
	if err != nil {
		return nil, fmt.Errorf("could not size %s image: %w", f.typ.Name(), err)
	}
	if a == nil || a.Len() != n {
		length := 0
		if a != nil {
			length = a.Len()
		}
		return nil, fmt.Errorf("%w: %v %s needs %d units, access has %d",
			ErrAccessSize, dims, f.typ.Name(), n, length)
	}
	return f.build(a, dims, n)
}

func (f *Factory[V]) build(a access.Access, dims []int64, units int) (*Img[V], error) {
	linked, err := f.typ.Bind(a)
	if err != nil {
		return nil, fmt.Errorf("could not bind %s image: %w", f.typ.Name(), err)
	}

	img := &Img[V]{
		factory: f,
		access:  a,
		dims:    slices.Clone(dims),
		steps:   make([]int64, len(dims)),
		epp:     f.typ.EntitiesPerPixel(),
		linked:  linked,
	}
	img.size = 1
	for d, n := range dims {
		img.steps[d] = img.size
		img.size *= n
	}

	logging.Logger().Debug("created image", "type", f.typ.Name(), "dims", dims,
		"pixels", img.size, "units", units, "fraction", img.epp.String(),
		"kind", a.Kind().String(), "flags", a.Flags().String())
	return img, nil
}
