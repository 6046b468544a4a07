package access

import (
	"encoding/binary"
	"math"
)

type codec[W Word] struct {
	size int
	get  func(o binary.ByteOrder, b []byte) W
	put  func(o binary.ByteOrder, b []byte, v W)
}

func codecFor[W Word]() codec[W] {
	var c any
	switch KindOf[W]() {
	case Byte:
		c = codec[int8]{
			size: 1,
			get:  func(_ binary.ByteOrder, b []byte) int8 { return int8(b[0]) },
			put:  func(_ binary.ByteOrder, b []byte, v int8) { b[0] = byte(v) },
		}
	case Short:
		c = codec[int16]{
			size: 2,
			get:  func(o binary.ByteOrder, b []byte) int16 { return int16(o.Uint16(b)) },
			put:  func(o binary.ByteOrder, b []byte, v int16) { o.PutUint16(b, uint16(v)) },
		}
	case Char:
		c = codec[uint16]{
			size: 2,
			get:  func(o binary.ByteOrder, b []byte) uint16 { return o.Uint16(b) },
			put:  func(o binary.ByteOrder, b []byte, v uint16) { o.PutUint16(b, v) },
		}
	case Int:
		c = codec[int32]{
			size: 4,
			get:  func(o binary.ByteOrder, b []byte) int32 { return int32(o.Uint32(b)) },
			put:  func(o binary.ByteOrder, b []byte, v int32) { o.PutUint32(b, uint32(v)) },
		}
	case Long:
		c = codec[int64]{
			size: 8,
			get:  func(o binary.ByteOrder, b []byte) int64 { return int64(o.Uint64(b)) },
			put:  func(o binary.ByteOrder, b []byte, v int64) { o.PutUint64(b, uint64(v)) },
		}
	case Float:
		c = codec[float32]{
			size: 4,
			get:  func(o binary.ByteOrder, b []byte) float32 { return math.Float32frombits(o.Uint32(b)) },
			put:  func(o binary.ByteOrder, b []byte, v float32) { o.PutUint32(b, math.Float32bits(v)) },
		}
	case Double:
		c = codec[float64]{
			size: 8,
			get:  func(o binary.ByteOrder, b []byte) float64 { return math.Float64frombits(o.Uint64(b)) },
			put:  func(o binary.ByteOrder, b []byte, v float64) { o.PutUint64(b, math.Float64bits(v)) },
		}
	}
	return c.(codec[W])
}
