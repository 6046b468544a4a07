package pixel

import (
	"fmt"
	"strconv"
	"strings"
)

// Names lists the unsigned types known to Lookup besides the generic uN.
var Names = []string{"bit", "u2", "u4", "u12", "u8", "u16", "u32", "u64"}

// Lookup resolves an unsigned integer type by name. "u8" to "u64" are the
// word-aligned types; "bit" and any other "uN" with N in 1..64 are packed.
func Lookup(name string) (Type[uint64], error) {
	switch name {
	case "bit":
		return MustUnsigned(1), nil
	case "u8":
		return UnsignedByte, nil
	case "u16":
		return UnsignedShort, nil
	case "u32":
		return UnsignedInt, nil
	case "u64":
		return UnsignedLong, nil
	}

	digits, ok := strings.CutPrefix(name, "u")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	bits, err := strconv.Atoi(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	t, err := NewUnsigned(bits)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// MaxValue is the largest value a pixel of type t can hold.
func MaxValue[V any](t Type[V]) uint64 {
	bits := t.Kind().Bits()
	if b, ok := t.(interface{ Bits() int }); ok {
		bits = b.Bits()
	}
	if bits >= 64 {
		return ^uint64(0)
	}
	return 1<<bits - 1
}
