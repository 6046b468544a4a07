// Package access provides uniform get/set of raw storage units over
// several backing media.
//
// An Access is a fixed-length run of storage units of one primitive Kind.
// It knows nothing about pixels or dimensions. Variants differ in their
// capabilities:
//
//   - Array: a plain Go slice.
//   - DirtyArray: marks itself dirty on every write until cleared.
//   - VolatileArray: carries an advisory valid flag for data that is
//     populated asynchronously.
//   - DirtyVolatileArray: both of the above.
//   - BufferAccess: a view over a Buffer, a byte store with its own
//     position and limit.
//
// A Registry maps a (Kind, Flags) pair to the constructor of exactly that
// variant. Arrays and Buffers are the registries for the two media.
//
// Access values are not locked. Concurrent writers must target disjoint
// units.
package access

// Access is the untyped handle held by containers.
type Access interface {
	Kind() Kind
	Flags() Flags
	// Len is the number of storage units.
	Len() int
	// CreateArray allocates a fresh, zeroed access of the same variant
	// holding n units.
	CreateArray(n int) Access
}

// Typed is an Access whose units are words of type W.
//
// Value and SetValue are the unchecked fast path: an index outside
// [0, Len()) panics. Get and Set report ErrIndexOutOfRange instead.
type Typed[W Word] interface {
	Access
	Value(i int) W
	SetValue(i int, v W)
	Get(i int) (W, error)
	Set(i int, v W) error
}

// DirtyAccess is implemented by variants that track modification.
type DirtyAccess interface {
	IsDirty() bool
	SetDirty(dirty bool)
}

// VolatileAccess is implemented by variants whose contents may not be
// ready yet. Reading an invalid access is permitted and yields
// unspecified values.
type VolatileAccess interface {
	IsValid() bool
}

var (
	_ Typed[int64]   = (*Array[int64])(nil)
	_ Typed[int8]    = (*DirtyArray[int8])(nil)
	_ Typed[float32] = (*VolatileArray[float32])(nil)
	_ Typed[uint16]  = (*DirtyVolatileArray[uint16])(nil)
	_ Typed[float64] = (*BufferAccess[float64])(nil)

	_ DirtyAccess    = (*DirtyArray[int8])(nil)
	_ DirtyAccess    = (*DirtyVolatileArray[int8])(nil)
	_ VolatileAccess = (*VolatileArray[int8])(nil)
	_ VolatileAccess = (*DirtyVolatileArray[int8])(nil)
	_ VolatileAccess = (*BufferAccess[int8])(nil)
)
