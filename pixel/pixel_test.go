package pixel

import (
	"errors"
	"math/rand/v2"
	"testing"

	"nativeimg/access"
)

func bindPacked(t *testing.T, typ *Packed, pixels int64) (Binding[uint64], *access.Array[int64]) {
	t.Helper()
	n, err := typ.EntitiesPerPixel().MulCeil(pixels)
	if err != nil {
		t.Fatal(err)
	}
	words := access.NewArray[int64](int(n))
	b, err := typ.Bind(words)
	if err != nil {
		t.Fatal(err)
	}
	return b, words
}

func TestPackedRoundTrip(t *testing.T) {
	for _, bits := range []int{1, 2, 3, 4, 7, 12, 13, 31, 33, 63, 64} {
		typ := MustUnsigned(bits)
		const pixels = 301
		b, _ := bindPacked(t, typ, pixels)
		max := MaxValue[uint64](typ)
		rng := rand.New(rand.NewPCG(uint64(bits), 7))

		want := make([]uint64, pixels)
		for i := range want {
			want[i] = rng.Uint64() & max
			b.Set(int64(i), want[i])
		}
		for i := range want {
			if got := b.Get(int64(i)); got != want[i] {
				t.Errorf("u%d pixel %d: got %#x, want %#x", bits, i, got, want[i])
			}
		}
	}
}

func TestPackedNoBleed(t *testing.T) {
	for _, typ := range []*Packed{Unsigned2, Unsigned4, Unsigned12, MustUnsigned(5)} {
		const pixels = 200
		b, words := bindPacked(t, typ, pixels)
		max := MaxValue[uint64](typ)

		// all ones everywhere, then clear one pixel at a time
		for i := range int64(pixels) {
			b.Set(i, max)
		}
		for target := range int64(pixels) {
			b.Set(target, 0)
			for i := range int64(pixels) {
				want := max
				if i == target {
					want = 0
				}
				if got := b.Get(i); got != want {
					t.Fatalf("%s: after clearing %d, pixel %d = %#x, want %#x", typ.Name(), target, i, got, want)
				}
			}
			b.Set(target, max)
		}

		// values wider than the type are truncated, not spilled
		b.Set(1, ^uint64(0))
		b.Set(0, 0)
		b.Set(2, 0)
		b.Set(0, max+1)
		if b.Get(1) != max || b.Get(0) != 0 || b.Get(2) != 0 {
			t.Errorf("%s: wide value spilled: %#x %#x %#x", typ.Name(), b.Get(0), b.Get(1), b.Get(2))
		}
		if len(words.Data()) == 0 {
			t.Fatal("no storage")
		}
	}
}

func TestPackedStraddle(t *testing.T) {
	b, words := bindPacked(t, Unsigned12, 16)
	// pixel 5 covers bits 60..71: four bits in word 0, eight in word 1
	b.Set(5, 0xABC)
	if got := uint64(words.Value(0)) >> 60; got != 0xC {
		t.Errorf("low nibble in word 0: got %#x, want 0xc", got)
	}
	if got := uint64(words.Value(1)) & 0xFF; got != 0xAB {
		t.Errorf("high byte in word 1: got %#x, want 0xab", got)
	}
	if b.Get(4) != 0 || b.Get(6) != 0 {
		t.Errorf("neighbours changed: %#x %#x", b.Get(4), b.Get(6))
	}
	if got := b.Get(5); got != 0xABC {
		t.Errorf("Get(5): got %#x, want 0xabc", got)
	}
	if len(words.Data()) != 3 {
		t.Errorf("16 pixels of 12 bits: got %d words, want 3", len(words.Data()))
	}
}

func TestBit(t *testing.T) {
	words := access.NewArray[int64](2)
	b, err := Bit.Bind(words)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(63, true)
	b.Set(64, true)
	if words.Value(0) != -1<<63 || words.Value(1) != 1 {
		t.Errorf("words: got %#x %#x", words.Value(0), words.Value(1))
	}
	b.Set(63, false)
	if b.Get(63) || !b.Get(64) || b.Get(0) {
		t.Errorf("bits: 63=%v 64=%v 0=%v", b.Get(63), b.Get(64), b.Get(0))
	}
}

func TestWordTypes(t *testing.T) {
	ub, err := UnsignedByte.Bind(access.NewArray[int8](2))
	if err != nil {
		t.Fatal(err)
	}
	ub.Set(0, 200)
	ub.Set(1, 300)
	if ub.Get(0) != 200 || ub.Get(1) != 300&0xFF {
		t.Errorf("u8: got %d %d", ub.Get(0), ub.Get(1))
	}

	sb, err := Byte.Bind(access.NewArray[int8](1))
	if err != nil {
		t.Fatal(err)
	}
	sb.Set(0, -5)
	if sb.Get(0) != -5 {
		t.Errorf("i8: got %d, want -5", sb.Get(0))
	}

	us, err := UnsignedShort.Bind(access.AllocateBufferAccess[int16](1, nil, true))
	if err != nil {
		t.Fatal(err)
	}
	us.Set(0, 65535)
	if us.Get(0) != 65535 {
		t.Errorf("u16 over buffer: got %d", us.Get(0))
	}

	d, err := Double.Bind(access.NewDirtyArray[float64](1))
	if err != nil {
		t.Fatal(err)
	}
	d.Set(0, 2.5)
	if d.Get(0) != 2.5 {
		t.Errorf("f64: got %v", d.Get(0))
	}
}

func TestMultiWord(t *testing.T) {
	words := access.NewArray[int64](6)
	b, err := Unsigned128.Bind(words)
	if err != nil {
		t.Fatal(err)
	}
	v := Uint128{Lo: 0xFFFF_FFFF_FFFF_FFFF, Hi: 1}
	b.Set(1, v)
	if words.Value(2) != -1 || words.Value(3) != 1 {
		t.Errorf("u128 words: got %#x %#x", words.Value(2), words.Value(3))
	}
	if got := b.Get(1); got != v {
		t.Errorf("u128: got %v, want %v", got, v)
	}
	if s := v.String(); s != "36893488147419103231" {
		t.Errorf("u128 string: got %s", s)
	}
	if b.Get(0) != (Uint128{}) || b.Get(2) != (Uint128{}) {
		t.Error("u128 neighbours modified")
	}

	c, err := ComplexFloat.Bind(access.NewArray[float32](4))
	if err != nil {
		t.Fatal(err)
	}
	c.Set(1, complex(1.5, -2))
	if got := c.Get(1); got != complex(1.5, -2) {
		t.Errorf("c64: got %v", got)
	}
}

func TestBindMismatch(t *testing.T) {
	if _, err := UnsignedByte.Bind(access.NewArray[int64](1)); !errors.Is(err, ErrAccessMismatch) {
		t.Errorf("u8 on long access: got %v, want ErrAccessMismatch", err)
	}
	if _, err := Unsigned4.Bind(access.NewArray[int32](1)); !errors.Is(err, ErrAccessMismatch) {
		t.Errorf("u4 on int access: got %v, want ErrAccessMismatch", err)
	}
	if _, err := Bit.Bind(nil); !errors.Is(err, ErrAccessMismatch) {
		t.Errorf("bit on nil access: got %v, want ErrAccessMismatch", err)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		kind access.Kind
		frac string
		max  uint64
	}{
		{"bit", access.Long, "1/64", 1},
		{"u2", access.Long, "1/32", 3},
		{"u12", access.Long, "3/16", 0xFFF},
		{"u7", access.Long, "7/64", 127},
		{"u8", access.Byte, "1/1", 255},
		{"u16", access.Short, "1/1", 0xFFFF},
		{"u32", access.Int, "1/1", 0xFFFF_FFFF},
		{"u64", access.Long, "1/1", ^uint64(0)},
	}
	for _, tt := range tests {
		typ, err := Lookup(tt.name)
		if err != nil {
			t.Errorf("Lookup(%q): %v", tt.name, err)
			continue
		}
		if typ.Kind() != tt.kind || typ.EntitiesPerPixel().String() != tt.frac || MaxValue(typ) != tt.max {
			t.Errorf("Lookup(%q): got %s %s max %#x, want %s %s max %#x", tt.name,
				typ.Kind(), typ.EntitiesPerPixel(), MaxValue(typ), tt.kind, tt.frac, tt.max)
		}
	}

	for _, name := range []string{"", "x8", "u0", "u65", "uabc"} {
		if _, err := Lookup(name); !errors.Is(err, ErrUnknownType) {
			t.Errorf("Lookup(%q): got %v, want ErrUnknownType", name, err)
		}
	}
}
