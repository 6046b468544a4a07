package access

import "sync/atomic"

// Array is the plain slice-backed access.
type Array[W Word] struct {
	data []W
}

func NewArray[W Word](n int) *Array[W] {
	return &Array[W]{data: make([]W, n)}
}

// WrapArray uses data as storage without copying.
func WrapArray[W Word](data []W) *Array[W] {
	return &Array[W]{data: data}
}

func (a *Array[W]) Kind() Kind   { return KindOf[W]() }
func (a *Array[W]) Flags() Flags { return 0 }
func (a *Array[W]) Len() int     { return len(a.data) }

// Data returns the backing slice.
func (a *Array[W]) Data() []W { return a.data }

func (a *Array[W]) CreateArray(n int) Access { return NewArray[W](n) }

func (a *Array[W]) Value(i int) W       { return a.data[i] }
func (a *Array[W]) SetValue(i int, v W) { a.data[i] = v }

func (a *Array[W]) Get(i int) (W, error) {
	if err := checkIndex(i, len(a.data)); err != nil {
		var zero W
		return zero, err
	}
	return a.data[i], nil
}

func (a *Array[W]) Set(i int, v W) error {
	if err := checkIndex(i, len(a.data)); err != nil {
		return err
	}
	a.data[i] = v
	return nil
}

// DirtyArray is an Array that is marked dirty by every write. The flag is
// atomic so that writers on disjoint partitions may set it concurrently.
type DirtyArray[W Word] struct {
	Array[W]
	dirty atomic.Bool
}

func NewDirtyArray[W Word](n int) *DirtyArray[W] {
	return &DirtyArray[W]{Array: Array[W]{data: make([]W, n)}}
}

func (a *DirtyArray[W]) Flags() Flags             { return Dirty }
func (a *DirtyArray[W]) CreateArray(n int) Access { return NewDirtyArray[W](n) }
func (a *DirtyArray[W]) IsDirty() bool            { return a.dirty.Load() }
func (a *DirtyArray[W]) SetDirty(dirty bool)      { a.dirty.Store(dirty) }

func (a *DirtyArray[W]) SetValue(i int, v W) {
	a.data[i] = v
	a.dirty.Store(true)
}

func (a *DirtyArray[W]) Set(i int, v W) error {
	if err := a.Array.Set(i, v); err != nil {
		return err
	}
	a.dirty.Store(true)
	return nil
}

// VolatileArray is an Array with an advisory valid flag.
type VolatileArray[W Word] struct {
	Array[W]
	valid bool
}

func NewVolatileArray[W Word](n int, valid bool) *VolatileArray[W] {
	return &VolatileArray[W]{Array: Array[W]{data: make([]W, n)}, valid: valid}
}

// WrapVolatileArray uses data as storage without copying.
func WrapVolatileArray[W Word](data []W, valid bool) *VolatileArray[W] {
	return &VolatileArray[W]{Array: Array[W]{data: data}, valid: valid}
}

func (a *VolatileArray[W]) Flags() Flags             { return Volatile }
func (a *VolatileArray[W]) IsValid() bool            { return a.valid }
func (a *VolatileArray[W]) CreateArray(n int) Access { return NewVolatileArray[W](n, true) }

type DirtyVolatileArray[W Word] struct {
	DirtyArray[W]
	valid bool
}

func NewDirtyVolatileArray[W Word](n int, valid bool) *DirtyVolatileArray[W] {
	return &DirtyVolatileArray[W]{
		DirtyArray: DirtyArray[W]{Array: Array[W]{data: make([]W, n)}},
		valid:      valid,
	}
}

func (a *DirtyVolatileArray[W]) Flags() Flags  { return Dirty | Volatile }
func (a *DirtyVolatileArray[W]) IsValid() bool { return a.valid }

func (a *DirtyVolatileArray[W]) CreateArray(n int) Access {
	return NewDirtyVolatileArray[W](n, true)
}
