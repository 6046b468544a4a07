package pixel

import (
	"nativeimg/access"
	"nativeimg/fraction"
)

// Word is a pixel type that occupies exactly one storage unit of type W
// and is seen as a value of type V.
type Word[W access.Word, V any] struct {
	name string
	from func(W) V
	to   func(V) W
}

var (
	Byte  = &Word[int8, int64]{"i8", func(w int8) int64 { return int64(w) }, func(v int64) int8 { return int8(v) }}
	Short = &Word[int16, int64]{"i16", func(w int16) int64 { return int64(w) }, func(v int64) int16 { return int16(v) }}
	Int   = &Word[int32, int64]{"i32", func(w int32) int64 { return int64(w) }, func(v int64) int32 { return int32(v) }}
	Long  = &Word[int64, int64]{"i64", func(w int64) int64 { return w }, func(v int64) int64 { return v }}

	UnsignedByte = &Word[int8, uint64]{"u8",
		func(w int8) uint64 { return uint64(uint8(w)) },
		func(v uint64) int8 { return int8(uint8(v)) }}
	UnsignedShort = &Word[int16, uint64]{"u16",
		func(w int16) uint64 { return uint64(uint16(w)) },
		func(v uint64) int16 { return int16(uint16(v)) }}
	UnsignedInt = &Word[int32, uint64]{"u32",
		func(w int32) uint64 { return uint64(uint32(w)) },
		func(v uint64) int32 { return int32(uint32(v)) }}
	UnsignedLong = &Word[int64, uint64]{"u64",
		func(w int64) uint64 { return uint64(w) },
		func(v uint64) int64 { return int64(v) }}

	Char   = &Word[uint16, rune]{"char", func(w uint16) rune { return rune(w) }, func(v rune) uint16 { return uint16(v) }}
	Float  = &Word[float32, float32]{"f32", func(w float32) float32 { return w }, func(v float32) float32 { return v }}
	Double = &Word[float64, float64]{"f64", func(w float64) float64 { return w }, func(v float64) float64 { return v }}
)

func (t *Word[W, V]) Name() string                        { return t.name }
func (t *Word[W, V]) Kind() access.Kind                   { return access.KindOf[W]() }
func (t *Word[W, V]) Bits() int                           { return access.KindOf[W]().Bits() }
func (t *Word[W, V]) EntitiesPerPixel() fraction.Fraction { return fraction.One }

func (t *Word[W, V]) Bind(a access.Access) (Binding[V], error) {
	units, err := typed[W](t.name, a)
	if err != nil {
		return nil, err
	}
	return wordBinding[W, V]{units: units, from: t.from, to: t.to}, nil
}

type wordBinding[W access.Word, V any] struct {
	units access.Typed[W]
	from  func(W) V
	to    func(V) W
}

func (b wordBinding[W, V]) Get(index int64) V    { return b.from(b.units.Value(int(index))) }
func (b wordBinding[W, V]) Set(index int64, v V) { b.units.SetValue(int(index), b.to(v)) }
