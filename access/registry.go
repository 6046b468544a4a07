package access

import (
	"encoding/binary"
	"fmt"
	"sync"
)

// Constructor allocates an access of n zeroed units.
type Constructor func(n int) Access

type registryKey struct {
	kind  Kind
	flags Flags
}

// Registry resolves (Kind, Flags) pairs to constructors. Lookup is exact:
// a pair that was never registered is an error, there is no fallback to a
// variant with fewer or more capabilities.
type Registry struct {
	name  string
	mu    sync.RWMutex
	ctors map[registryKey]Constructor
}

func NewRegistry(name string) *Registry {
	return &Registry{name: name, ctors: make(map[registryKey]Constructor)}
}

var (
	// Arrays holds slice-backed variants for every kind and capability set.
	Arrays = newArrays()
	// Buffers holds big-endian buffer-backed variants for every kind.
	// Buffer accesses are volatile only.
	Buffers = newBuffers(binary.BigEndian)
)

func newArrays() *Registry {
	r := NewRegistry("array")
	RegisterArrays[int8](r)
	RegisterArrays[int16](r)
	RegisterArrays[uint16](r)
	RegisterArrays[int32](r)
	RegisterArrays[int64](r)
	RegisterArrays[float32](r)
	RegisterArrays[float64](r)
	return r
}

func newBuffers(order binary.ByteOrder) *Registry {
	r := NewRegistry("buffer")
	RegisterBuffers[int8](r, order)
	RegisterBuffers[int16](r, order)
	RegisterBuffers[uint16](r, order)
	RegisterBuffers[int32](r, order)
	RegisterBuffers[int64](r, order)
	RegisterBuffers[float32](r, order)
	RegisterBuffers[float64](r, order)
	return r
}

func (r *Registry) Name() string { return r.name }

func (r *Registry) Register(kind Kind, flags Flags, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[registryKey{kind, flags}] = ctor
}

func (r *Registry) Lookup(kind Kind, flags Flags) (Constructor, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[registryKey{kind, flags}]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s registry has no %s %s access", ErrUnsupportedCombination, r.name, flags, kind)
	}
	return ctor, nil
}

func (r *Registry) Supports(kind Kind, flags Flags) bool {
	_, err := r.Lookup(kind, flags)
	return err == nil
}

// Create looks up the constructor for (kind, flags) and allocates n units.
func (r *Registry) Create(kind Kind, flags Flags, n int) (Access, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrIndexOutOfRange, n)
	}
	ctor, err := r.Lookup(kind, flags)
	if err != nil {
		return nil, err
	}
	return ctor(n), nil
}

// RegisterArrays registers the slice-backed variants of W for the given
// capability sets, or for all four when none are given.
func RegisterArrays[W Word](r *Registry, flags ...Flags) {
	if len(flags) == 0 {
		flags = AllFlags
	}
	for _, f := range flags {
		r.Register(KindOf[W](), f, arrayConstructor[W](f))
	}
}

func arrayConstructor[W Word](f Flags) Constructor {
	switch f {
	case Dirty:
		return func(n int) Access { return NewDirtyArray[W](n) }
	case Volatile:
		return func(n int) Access { return NewVolatileArray[W](n, true) }
	case Dirty | Volatile:
		return func(n int) Access { return NewDirtyVolatileArray[W](n, true) }
	default:
		return func(n int) Access { return NewArray[W](n) }
	}
}

// RegisterBuffers registers the buffer-backed variant of W.
func RegisterBuffers[W Word](r *Registry, order binary.ByteOrder) {
	r.Register(KindOf[W](), Volatile, func(n int) Access {
		return AllocateBufferAccess[W](n, order, true)
	})
}
