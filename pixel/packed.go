package pixel

import (
	"fmt"

	"nativeimg/access"
	"nativeimg/fraction"
)

const wordBits = 64

// Packed is an unsigned integer type of 1 to 64 bits stored densely in
// 64-bit words.
type Packed struct {
	name string
	bits uint64
}

var (
	Unsigned2  = MustUnsigned(2)
	Unsigned4  = MustUnsigned(4)
	Unsigned12 = MustUnsigned(12)
)

// NewUnsigned returns the packed type of the given bit width.
func NewUnsigned(bits int) (*Packed, error) {
	if bits < 1 || bits > wordBits {
		return nil, fmt.Errorf("%w: %d-bit unsigned", ErrUnknownType, bits)
	}
	return &Packed{name: fmt.Sprintf("u%d", bits), bits: uint64(bits)}, nil
}

func MustUnsigned(bits int) *Packed {
	t, err := NewUnsigned(bits)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Packed) Name() string      { return t.name }
func (t *Packed) Kind() access.Kind { return access.Long }
func (t *Packed) Bits() int         { return int(t.bits) }

func (t *Packed) EntitiesPerPixel() fraction.Fraction {
	return fraction.MustNew(t.bits, wordBits)
}

func (t *Packed) Bind(a access.Access) (Binding[uint64], error) {
	words, err := typed[int64](t.name, a)
	if err != nil {
		return nil, err
	}
	return newPacked(words, t.bits), nil
}

type packed struct {
	words access.Typed[int64]
	bits  uint64
	mask  uint64
	num   uint64
	den   uint64
	// bits per 1/den of a word
	step uint64
}

func newPacked(words access.Typed[int64], bits uint64) *packed {
	f := fraction.MustNew(bits, wordBits)
	mask := ^uint64(0)
	if bits < wordBits {
		mask = 1<<bits - 1
	}
	return &packed{
		words: words,
		bits:  bits,
		mask:  mask,
		num:   f.Numerator(),
		den:   f.Denominator(),
		step:  wordBits / f.Denominator(),
	}
}

func (p *packed) locate(index int64) (int, uint64) {
	n := uint64(index) * p.num
	return int(n / p.den), (n % p.den) * p.step
}

func (p *packed) Get(index int64) uint64 {
	w, shift := p.locate(index)
	v := uint64(p.words.Value(w)) >> shift
	if shift+p.bits > wordBits {
		v |= uint64(p.words.Value(w+1)) << (wordBits - shift)
	}
	return v & p.mask
}

func (p *packed) Set(index int64, v uint64) {
	w, shift := p.locate(index)
	v &= p.mask
	lo := uint64(p.words.Value(w))
	p.words.SetValue(w, int64(lo&^(p.mask<<shift)|v<<shift))
	if shift+p.bits > wordBits {
		spill := wordBits - shift
		hiMask := p.mask >> spill
		hi := uint64(p.words.Value(w + 1))
		p.words.SetValue(w+1, int64(hi&^hiMask|v>>spill))
	}
}

// BitType is a boolean pixel, one bit per pixel.
type BitType struct{}

// Bit is the single-bit boolean pixel type.
var Bit BitType

func (BitType) Name() string                        { return "bit" }
func (BitType) Kind() access.Kind                   { return access.Long }
func (BitType) Bits() int                           { return 1 }
func (BitType) EntitiesPerPixel() fraction.Fraction { return fraction.MustNew(1, wordBits) }

func (BitType) Bind(a access.Access) (Binding[bool], error) {
	words, err := typed[int64]("bit", a)
	if err != nil {
		return nil, err
	}
	return bitBinding{newPacked(words, 1)}, nil
}

type bitBinding struct {
	p *packed
}

func (b bitBinding) Get(index int64) bool { return b.p.Get(index) != 0 }

func (b bitBinding) Set(index int64, v bool) {
	var u uint64
	if v {
		u = 1
	}
	b.p.Set(index, u)
}
