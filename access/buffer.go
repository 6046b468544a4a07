package access

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Buffer is a byte store with a mutable position and limit, shared by
// every holder of the same *Buffer. Relative reads and writes move the
// position. Code that must not disturb other holders works on a
// Duplicate, which shares the bytes but owns its position and limit.
type Buffer struct {
	data  []byte
	order binary.ByteOrder
	pos   int
	lim   int
}

// NewBuffer wraps data. A nil order defaults to big endian.
func NewBuffer(data []byte, order binary.ByteOrder) *Buffer {
	if order == nil {
		order = binary.BigEndian
	}
	return &Buffer{data: data, order: order, lim: len(data)}
}

func AllocateBuffer(n int, order binary.ByteOrder) *Buffer {
	return NewBuffer(make([]byte, n), order)
}

func (b *Buffer) Capacity() int           { return len(b.data) }
func (b *Buffer) Position() int           { return b.pos }
func (b *Buffer) Limit() int              { return b.lim }
func (b *Buffer) Remaining() int          { return b.lim - b.pos }
func (b *Buffer) Order() binary.ByteOrder { return b.order }
func (b *Buffer) Bytes() []byte           { return b.data }
func (b *Buffer) Rewind()                 { b.pos = 0 }
func (b *Buffer) Duplicate() *Buffer      { d := *b; return &d }
func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer[pos=%d lim=%d cap=%d]", b.pos, b.lim, len(b.data))
}

func (b *Buffer) SetPosition(pos int) error {
	if pos < 0 || pos > b.lim {
		return fmt.Errorf("%w: position %d not in [0, %d]", ErrBufferBounds, pos, b.lim)
	}
	b.pos = pos
	return nil
}

// SetLimit moves the limit, pulling the position back if it lies beyond.
func (b *Buffer) SetLimit(lim int) error {
	if lim < 0 || lim > len(b.data) {
		return fmt.Errorf("%w: limit %d not in [0, %d]", ErrBufferBounds, lim, len(b.data))
	}
	b.lim = lim
	b.pos = min(b.pos, lim)
	return nil
}

// Read copies from the position up to the limit.
func (b *Buffer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if b.pos >= b.lim {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:b.lim])
	b.pos += n
	return n, nil
}

// Write copies all of p at the position or nothing at all.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) > b.lim-b.pos {
		return 0, fmt.Errorf("%w: writing %d bytes with %d remaining", ErrBufferBounds, len(p), b.lim-b.pos)
	}
	n := copy(b.data[b.pos:b.lim], p)
	b.pos += n
	return n, nil
}
