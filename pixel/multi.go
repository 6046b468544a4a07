package pixel

import (
	"math/big"

	"nativeimg/access"
	"nativeimg/fraction"
)

// Uint128 is an unsigned 128-bit value.
type Uint128 struct {
	Lo, Hi uint64
}

func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string { return u.Big().String() }

type uint128Type struct{}

// Unsigned128 stores each pixel in two consecutive 64-bit words, low word
// first.
var Unsigned128 uint128Type

func (uint128Type) Name() string                        { return "u128" }
func (uint128Type) Kind() access.Kind                   { return access.Long }
func (uint128Type) Bits() int                           { return 128 }
func (uint128Type) EntitiesPerPixel() fraction.Fraction { return fraction.MustNew(2, 1) }

func (uint128Type) Bind(a access.Access) (Binding[Uint128], error) {
	words, err := typed[int64]("u128", a)
	if err != nil {
		return nil, err
	}
	return uint128Binding{words}, nil
}

type uint128Binding struct {
	words access.Typed[int64]
}

func (b uint128Binding) Get(index int64) Uint128 {
	i := int(index) * 2
	return Uint128{Lo: uint64(b.words.Value(i)), Hi: uint64(b.words.Value(i + 1))}
}

func (b uint128Binding) Set(index int64, v Uint128) {
	i := int(index) * 2
	b.words.SetValue(i, int64(v.Lo))
	b.words.SetValue(i+1, int64(v.Hi))
}

// Complex stores the real and imaginary parts of a pixel in two
// consecutive units of type W.
type Complex[W float32 | float64, V complex64 | complex128] struct {
	name string
}

var (
	ComplexFloat  = &Complex[float32, complex64]{"c64"}
	ComplexDouble = &Complex[float64, complex128]{"c128"}
)

func (t *Complex[W, V]) Name() string                        { return t.name }
func (t *Complex[W, V]) Kind() access.Kind                   { return access.KindOf[W]() }
func (t *Complex[W, V]) EntitiesPerPixel() fraction.Fraction { return fraction.MustNew(2, 1) }

func (t *Complex[W, V]) Bind(a access.Access) (Binding[V], error) {
	units, err := typed[W](t.name, a)
	if err != nil {
		return nil, err
	}
	return complexBinding[W, V]{units}, nil
}

type complexBinding[W float32 | float64, V complex64 | complex128] struct {
	units access.Typed[W]
}

func (b complexBinding[W, V]) Get(index int64) V {
	i := int(index) * 2
	return V(complex(float64(b.units.Value(i)), float64(b.units.Value(i+1))))
}

func (b complexBinding[W, V]) Set(index int64, v V) {
	i := int(index) * 2
	c := complex128(v)
	b.units.SetValue(i, W(real(c)))
	b.units.SetValue(i+1, W(imag(c)))
}
