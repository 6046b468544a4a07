package access

import "fmt"

// Kind is the primitive storage type of an Access.
type Kind uint8

const (
	Byte Kind = iota + 1
	Short
	Char
	Int
	Long
	Float
	Double
)

// Kinds lists every storage kind in declaration order.
var Kinds = []Kind{Byte, Short, Char, Int, Long, Float, Double}

// Word is the set of Go types backing the storage kinds.
type Word interface {
	int8 | int16 | uint16 | int32 | int64 | float32 | float64
}

// KindOf returns the storage kind held in words of type W.
func KindOf[W Word]() Kind {
	var w W
	switch any(w).(type) {
	case int8:
		return Byte
	case int16:
		return Short
	case uint16:
		return Char
	case int32:
		return Int
	case int64:
		return Long
	case float32:
		return Float
	default:
		return Double
	}
}

// Bytes is the width of one storage unit.
func (k Kind) Bytes() int {
	switch k {
	case Byte:
		return 1
	case Short, Char:
		return 2
	case Int, Float:
		return 4
	case Long, Double:
		return 8
	}
	return 0
}

func (k Kind) Bits() int { return k.Bytes() * 8 }

func (k Kind) String() string {
	switch k {
	case Byte:
		return "byte"
	case Short:
		return "short"
	case Char:
		return "char"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Flags is a set of access capabilities. The zero value is the plain
// capability set.
type Flags uint8

const (
	Dirty Flags = 1 << iota
	Volatile
)

// AllFlags lists the four capability sets.
var AllFlags = []Flags{0, Dirty, Volatile, Dirty | Volatile}

func FlagsOf(fs ...Flags) Flags {
	var res Flags
	for _, f := range fs {
		res |= f
	}
	return res
}

func (f Flags) Has(o Flags) bool { return f&o == o }

func (f Flags) String() string {
	switch f {
	case 0:
		return "plain"
	case Dirty:
		return "dirty"
	case Volatile:
		return "volatile"
	case Dirty | Volatile:
		return "dirty|volatile"
	}
	return fmt.Sprintf("flags(%#x)", uint8(f))
}
