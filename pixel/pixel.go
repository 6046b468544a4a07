// Package pixel describes pixel types by the two facts a container needs:
// the storage Kind of their units and how many units one pixel occupies.
//
// A Type resolves an untyped access.Access into a Binding once, when a
// container is built. Bindings translate a pixel index into unit reads and
// writes:
//
//   - word types map pixel p to unit p.
//   - packed types share 64-bit words between pixels. Pixel p with
//     fraction n/d starts in word floor(p*n/d) at bit ((p*n) mod d)*(64/d).
//     Fields that cross a word boundary are split over two words and
//     written with read-modify-write so neighbours keep their bits.
//   - multi-word types occupy n consecutive units starting at p*n.
//
// Values returned by a Binding are plain copies and never alias storage.
package pixel

import (
	"errors"
	"fmt"

	"nativeimg/access"
	"nativeimg/fraction"
)

var (
	ErrAccessMismatch = errors.New("access does not match pixel type")
	ErrUnknownType    = errors.New("unknown pixel type")
)

// Type is a pixel type with values of type V.
type Type[V any] interface {
	Name() string
	Kind() access.Kind
	EntitiesPerPixel() fraction.Fraction
	Bind(a access.Access) (Binding[V], error)
}

// Binding reads and writes pixels by index. A Binding holds no position
// and may be shared by any number of cursors.
type Binding[V any] interface {
	Get(index int64) V
	Set(index int64, v V)
}

func typed[W access.Word](name string, a access.Access) (access.Typed[W], error) {
	if a == nil {
		return nil, fmt.Errorf("%w: %s bound to nil access", ErrAccessMismatch, name)
	}
	ta, ok := a.(access.Typed[W])
	if !ok {
		return nil, fmt.Errorf("%w: %s needs %s units, got %s", ErrAccessMismatch, name, access.KindOf[W](), a.Kind())
	}
	return ta, nil
}
