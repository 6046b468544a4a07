package arrayimg

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"nativeimg/access"
	"nativeimg/parallel"
	"nativeimg/pixel"
)

func TestBitCube(t *testing.T) {
	img, err := Create(pixel.Bit, 100, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if img.Size() != 1_000_000 {
		t.Errorf("Size: got %d, want 1000000", img.Size())
	}
	if n := img.Access().Len(); n != 15_625 {
		t.Errorf("units: got %d, want 15625", n)
	}

	c := img.Cursor()
	c.JumpTo(999_999)
	c.Set(true)

	var found []int64
	fresh := img.Cursor()
	for fresh.HasNext() {
		if fresh.Next() {
			found = append(found, fresh.Index())
		}
	}
	if len(found) != 1 || found[0] != 999_999 {
		t.Errorf("true pixels: got %v, want [999999]", found)
	}
	if v, err := img.At(99, 99, 99); err != nil || !v {
		t.Errorf("At(99, 99, 99): got %v, %v", v, err)
	}
}

func TestTraversalOrder(t *testing.T) {
	for _, dims := range [][]int64{{1}, {7}, {3, 4}, {2, 3, 5}} {
		img, err := Create(pixel.UnsignedShort, dims...)
		if err != nil {
			t.Fatal(err)
		}
		var visited []int64
		c := img.Cursor()
		for c.HasNext() {
			c.Fwd()
			visited = append(visited, c.Index())
		}
		if int64(len(visited)) != img.Size() {
			t.Errorf("%v: visited %d, want %d", dims, len(visited), img.Size())
		}
		for i, idx := range visited {
			if idx != int64(i) {
				t.Errorf("%v: step %d at index %d", dims, i, idx)
				break
			}
		}
	}
}

func TestRoundTripDuplicate(t *testing.T) {
	types := []pixel.Type[uint64]{
		pixel.MustUnsigned(1), pixel.Unsigned2, pixel.Unsigned4, pixel.Unsigned12,
		pixel.UnsignedByte, pixel.UnsignedShort, pixel.UnsignedInt, pixel.UnsignedLong,
	}
	for _, typ := range types {
		img, err := Create(typ, 13, 11)
		if err != nil {
			t.Fatal(err)
		}
		max := pixel.MaxValue(typ)
		c := img.Cursor()
		for c.HasNext() {
			c.Fwd()
			v := uint64(c.Index()*2654435761) & max
			c.Set(v)

			d := c.Duplicate()
			if got := d.Get(); got != v {
				t.Errorf("%s pixel %d: got %d, want %d", typ.Name(), c.Index(), got, v)
			}
		}
		for i, v := range img.All() {
			if want := uint64(i*2654435761) & max; v != want {
				t.Errorf("%s pixel %d after fill: got %d, want %d", typ.Name(), i, v, want)
			}
		}
	}
}

func TestCursorMoves(t *testing.T) {
	img, err := Create(pixel.Int, 10)
	if err != nil {
		t.Fatal(err)
	}
	c := img.Cursor()
	if c.Index() != -1 {
		t.Errorf("fresh cursor at %d, want -1", c.Index())
	}
	c.Fwd()
	if c.Index() != 0 {
		t.Errorf("first Fwd at %d, want 0", c.Index())
	}
	c.Advance(3)
	c.Retreat(2)
	c.Bck()
	if c.Index() != 0 {
		t.Errorf("after +3 -2 -1: %d, want 0", c.Index())
	}

	c.JumpTo(7)
	c.Set(-7)
	d := c.Duplicate()
	d.Fwd()
	d.Set(8)
	if c.Index() != 7 || d.Index() != 8 {
		t.Errorf("duplicate shares position: %d %d", c.Index(), d.Index())
	}
	if c.Get() != -7 {
		t.Errorf("Get: got %d, want -7", c.Get())
	}

	c.Reset()
	if c.Index() != -1 || c.Next() != 0 {
		t.Errorf("Reset: index %d", c.Index())
	}

	r, err := img.CursorRange(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	var got []int64
	for r.HasNext() {
		got = append(got, r.Next())
	}
	if !slices.Equal(got, []int64{0, 0, 0}) || r.Index() != 6 {
		t.Errorf("range cursor: got %v ending at %d", got, r.Index())
	}
	if _, err := img.CursorRange(8, 3); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("CursorRange past end: got %v", err)
	}
}

func TestLocalize(t *testing.T) {
	img, err := Create(pixel.Float, 4, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	pos := make([]int64, 3)
	c := img.Cursor()
	for c.HasNext() {
		c.Fwd()
		c.Localize(pos)
		idx, err := img.Index(pos...)
		if err != nil || idx != c.Index() {
			t.Errorf("index %d localized to %v, back to %d (%v)", c.Index(), pos, idx, err)
		}
		for d := range pos {
			if c.Position(d) != pos[d] {
				t.Errorf("index %d: Position(%d) = %d, want %d", c.Index(), d, c.Position(d), pos[d])
			}
		}
	}

	if err := img.SetAt(2.5, 3, 2, 1); err != nil {
		t.Fatal(err)
	}
	if v, _ := img.At(3, 2, 1); v != 2.5 {
		t.Errorf("At: got %v", v)
	}
	if _, err := img.At(4, 0, 0); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("At outside: got %v", err)
	}
	if _, err := img.At(0, 0); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("At with wrong rank: got %v", err)
	}
}

func TestFactoryErrors(t *testing.T) {
	r := access.NewRegistry("plain bytes")
	access.RegisterArrays[int8](r, 0)

	img, err := FromFlags(pixel.UnsignedByte, r, access.Volatile).Create(10)
	if !errors.Is(err, access.ErrUnsupportedCombination) || img != nil {
		t.Errorf("volatile bytes: got %v, %v, want nil, ErrUnsupportedCombination", img, err)
	}

	f := NewFactory(pixel.Unsigned4)
	if _, err := f.CreateWith(access.NewArray[int64](3), 100); !errors.Is(err, ErrAccessSize) {
		t.Errorf("short access: got %v, want ErrAccessSize", err)
	}
	if _, err := f.CreateWith(access.NewArray[int32](7), 100); !errors.Is(err, pixel.ErrAccessMismatch) {
		t.Errorf("int access for u4: got %v, want ErrAccessMismatch", err)
	}
	if _, err := f.CreateWith(nil, 100); !errors.Is(err, ErrAccessSize) {
		t.Errorf("nil access: got %v, want ErrAccessSize", err)
	}

	data := access.NewArray[int64](7)
	img2, err := f.CreateWith(data, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if err := img2.SetAt(9, 9, 9); err != nil {
		t.Fatal(err)
	}
	if data.Value(6) == 0 {
		t.Error("CreateWith did not use the given access")
	}
	if _, err := f.Create(10, 0); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero extent: got %v", err)
	}
}

func TestFlagsReported(t *testing.T) {
	plain, err := Create(pixel.Double, 4)
	if err != nil {
		t.Fatal(err)
	}
	if plain.Dirty() || !plain.Valid() {
		t.Errorf("plain: dirty=%v valid=%v", plain.Dirty(), plain.Valid())
	}

	img, err := FromFlags(pixel.Double, access.Arrays, access.Dirty|access.Volatile).Create(4)
	if err != nil {
		t.Fatal(err)
	}
	if img.Dirty() {
		t.Error("new image is dirty")
	}
	c := img.Cursor()
	c.Fwd()
	c.Set(1)
	if !img.Dirty() || !img.Valid() {
		t.Errorf("after write: dirty=%v valid=%v", img.Dirty(), img.Valid())
	}
	img.Access().(access.DirtyAccess).SetDirty(false)
	if img.Dirty() {
		t.Error("dirty flag not cleared")
	}

	buf, err := FromFlags(pixel.UnsignedLong, access.Buffers, access.Volatile).Create(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := buf.SetAt(1<<63, 2, 2); err != nil {
		t.Fatal(err)
	}
	if v, _ := buf.At(2, 2); v != 1<<63 {
		t.Errorf("buffer-backed u64: got %d", v)
	}
	if _, ok := buf.Access().(*access.BufferAccess[int64]); !ok {
		t.Errorf("buffer image access is %T", buf.Access())
	}
	if _, err := FromFlags(pixel.UnsignedLong, access.Buffers, access.Dirty).Create(3); !errors.Is(err, access.ErrUnsupportedCombination) {
		t.Errorf("dirty buffer image: got %v", err)
	}
}

func TestIterators(t *testing.T) {
	img, err := Create(pixel.Byte, 5)
	if err != nil {
		t.Fatal(err)
	}
	for i := range int64(5) {
		if err := img.SetAt(i-2, i); err != nil {
			t.Fatal(err)
		}
	}
	got := slices.Collect(img.Values())
	if !slices.Equal(got, []int64{-2, -1, 0, 1, 2}) {
		t.Errorf("Values: got %v", got)
	}
	n := 0
	for range img.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("All did not stop: %d", n)
	}
}

func TestBitCount(t *testing.T) {
	img, err := Create(pixel.Bit, 100, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(12, 12))
	expected := 0
	c := img.Cursor()
	for c.HasNext() {
		c.Fwd()
		b := rng.IntN(2) == 1
		c.Set(b)
		if b {
			expected++
		}
	}

	loop := 0
	for v := range img.Values() {
		if v {
			loop++
		}
	}
	if loop != expected {
		t.Errorf("sequential count: got %d, want %d", loop, expected)
	}

	p := parallel.Start(4)
	defer p.Wait()
	counts := parallel.Map(p, img.Spliterator(), 10_000, func(s *Spliterator[bool]) int {
		n := 0
		s.ForEachRemaining(func(c *Cursor[bool]) {
			if c.Get() {
				n++
			}
		})
		return n
	})
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != expected {
		t.Errorf("parallel count: got %d, want %d", total, expected)
	}
}
