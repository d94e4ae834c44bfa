package chunk

import (
	"go.uber.org/atomic"
)

type buffer[T any] struct {
	data []T
	refs atomic.Int32
}

func newBuffer[T any](data []T) *buffer[T] {
	b := &buffer[T]{data: data}
	b.refs.Store(1)
	return b
}

// Chunk is a handle to a fixed-capacity buffer. Several handles may share
// one buffer; Append clones the buffer first when it is shared, so a handle
// never observes appends made through another one.
//
// Duplicate a handle with Share, never by assignment: a plain copy does not
// count as a reference, so releasing it would let Append write in place
// under another live handle.
//
// The zero Chunk is an empty, zero-capacity chunk.
type Chunk[T any] struct {
	buf *buffer[T]
}

// New allocates an empty chunk able to hold capacity elements.
func New[T any](capacity int) Chunk[T] {
	return Chunk[T]{buf: newBuffer(make([]T, 0, capacity))}
}

// FromSlice returns an exclusively owned chunk holding a copy of items.
// Its capacity equals len(items).
func FromSlice[T any](items []T) Chunk[T] {
	data := make([]T, len(items))
	copy(data, items)
	return Chunk[T]{buf: newBuffer(data)}
}

// Len returns the number of elements stored in the chunk.
func (c Chunk[T]) Len() int {
	if c.buf == nil {
		return 0
	}
	return len(c.buf.data)
}

// Cap returns the fixed capacity of the chunk.
func (c Chunk[T]) Cap() int {
	if c.buf == nil {
		return 0
	}
	return cap(c.buf.data)
}

// Full reports whether no more elements fit into the chunk.
func (c Chunk[T]) Full() bool {
	return c.Len() == c.Cap()
}

// At returns the i-th element. It panics if i is out of range.
func (c Chunk[T]) At(i int) T {
	return c.buf.data[i]
}

// Items returns the stored elements. The slice aliases the shared buffer
// and must not be modified.
func (c Chunk[T]) Items() []T {
	if c.buf == nil {
		return nil
	}
	n := len(c.buf.data)
	return c.buf.data[:n:n]
}

// Refs returns the number of live handles to the underlying buffer.
func (c Chunk[T]) Refs() int {
	if c.buf == nil {
		return 0
	}
	return int(c.buf.refs.Load())
}

// Shared reports whether another handle holds the same buffer.
func (c Chunk[T]) Shared() bool {
	return c.Refs() > 1
}

// Share returns another handle to the same buffer without copying data.
func (c Chunk[T]) Share() Chunk[T] {
	if c.buf != nil {
		c.buf.refs.Inc()
	}
	return c
}

// Release drops the handle's reference. The handle is empty afterwards.
func (c *Chunk[T]) Release() {
	if c.buf == nil {
		return
	}
	c.buf.refs.Dec()
	c.buf = nil
}

// Append adds v to the end of the chunk and reports whether it fit.
// A shared buffer is cloned before the write and the handle moves to the clone.
func (c *Chunk[T]) Append(v T) bool {
	if c.buf == nil || c.Full() {
		return false
	}

	if c.buf.refs.Load() > 1 {
		old := c.buf
		data := make([]T, len(old.data), cap(old.data))
		copy(data, old.data)
		c.buf = newBuffer(data)
		old.refs.Dec()
	}

	c.buf.data = append(c.buf.data, v)
	return true
}
