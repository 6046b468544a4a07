package access

import (
	"encoding/binary"
	"fmt"
	"io"
)

// BufferAccess reads and writes words of type W in a Buffer using the
// buffer's byte order. Indexing is absolute from the start of the buffer
// and ignores its position. Buffer accesses are always volatile.
type BufferAccess[W Word] struct {
	buf   *Buffer
	codec codec[W]
	n     int
	valid bool
}

// NewBufferAccess views buf as Capacity()/size words.
func NewBufferAccess[W Word](buf *Buffer, valid bool) *BufferAccess[W] {
	c := codecFor[W]()
	return &BufferAccess[W]{buf: buf, codec: c, n: buf.Capacity() / c.size, valid: valid}
}

// AllocateBufferAccess creates a zeroed buffer holding n words.
func AllocateBufferAccess[W Word](n int, order binary.ByteOrder, valid bool) *BufferAccess[W] {
	return NewBufferAccess[W](AllocateBuffer(n*KindOf[W]().Bytes(), order), valid)
}

func (a *BufferAccess[W]) Kind() Kind      { return KindOf[W]() }
func (a *BufferAccess[W]) Flags() Flags    { return Volatile }
func (a *BufferAccess[W]) Len() int        { return a.n }
func (a *BufferAccess[W]) IsValid() bool   { return a.valid }
func (a *BufferAccess[W]) Buffer() *Buffer { return a.buf }

func (a *BufferAccess[W]) CreateArray(n int) Access {
	return AllocateBufferAccess[W](n, a.buf.Order(), true)
}

func (a *BufferAccess[W]) Value(i int) W {
	off := i * a.codec.size
	return a.codec.get(a.buf.order, a.buf.data[off:off+a.codec.size])
}

func (a *BufferAccess[W]) SetValue(i int, v W) {
	off := i * a.codec.size
	a.codec.put(a.buf.order, a.buf.data[off:off+a.codec.size], v)
}

func (a *BufferAccess[W]) Get(i int) (W, error) {
	if err := checkIndex(i, a.n); err != nil {
		var zero W
		return zero, err
	}
	return a.Value(i), nil
}

func (a *BufferAccess[W]) Set(i int, v W) error {
	if err := checkIndex(i, a.n); err != nil {
		return err
	}
	a.SetValue(i, v)
	return nil
}

// view returns a private duplicate of the buffer positioned at word index
// with room for length words.
func (a *BufferAccess[W]) view(index, length int) (*Buffer, error) {
	if err := checkRange(index, length, a.n); err != nil {
		return nil, err
	}
	dup := a.buf.Duplicate()
	if err := dup.SetLimit(dup.Capacity()); err != nil {
		return nil, err
	}
	if err := dup.SetPosition(index * a.codec.size); err != nil {
		return nil, err
	}
	return dup, nil
}

// GetValues copies len(dst) words starting at index into dst.
func (a *BufferAccess[W]) GetValues(dst []W, index int) error {
	dup, err := a.view(index, len(dst))
	if err != nil {
		return err
	}
	raw := make([]byte, len(dst)*a.codec.size)
	if _, err := io.ReadFull(dup, raw); err != nil {
		return fmt.Errorf("could not read %d words at %d: %w", len(dst), index, err)
	}
	for i := range dst {
		dst[i] = a.codec.get(a.buf.order, raw[i*a.codec.size:])
	}
	return nil
}

// SetValues copies src into the words starting at index.
func (a *BufferAccess[W]) SetValues(src []W, index int) error {
	dup, err := a.view(index, len(src))
	if err != nil {
		return err
	}
	raw := make([]byte, len(src)*a.codec.size)
	for i, v := range src {
		a.codec.put(a.buf.order, raw[i*a.codec.size:], v)
	}
	if _, err := dup.Write(raw); err != nil {
		return fmt.Errorf("could not write %d words at %d: %w", len(src), index, err)
	}
	return nil
}

// CopyFrom overwrites the leading words of a with all words of src.
func (a *BufferAccess[W]) CopyFrom(src *BufferAccess[W]) error {
	dst, err := a.view(0, src.n)
	if err != nil {
		return err
	}
	if src.buf.order == a.buf.order {
		in, err := src.view(0, src.n)
		if err != nil {
			return err
		}
		if _, err := io.CopyN(dst, in, int64(src.n*src.codec.size)); err != nil {
			return fmt.Errorf("could not copy %d words: %w", src.n, err)
		}
		return nil
	}
	words := make([]W, src.n)
	if err := src.GetValues(words, 0); err != nil {
		return err
	}
	return a.SetValues(words, 0)
}
