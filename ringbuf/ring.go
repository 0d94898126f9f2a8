// File: ringbuf/ring.go
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity FIFO ring buffer with power-of-two size and unbounded
// cursors. Single-threaded; see spsc for the cross-goroutine variant.

package ringbuf

import (
	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// RingBuffer is a bounded FIFO over a fixed backing array.
//
// head and tail are monotonically increasing cursors; only their difference
// and their masked values are meaningful. At one operation per nanosecond a
// uint64 cursor takes centuries to wrap, so cursor overflow is never observed.
type RingBuffer[T any] struct {
	data []T
	mask uint64
	head uint64 // read cursor
	tail uint64 // write cursor
}

// New allocates a ring buffer with size slots. size must be a power of two;
// anything else is a construction contract violation and panics.
func New[T any](size uint64) *RingBuffer[T] {
	if size == 0 || (size&(size-1)) != 0 {
		panic(api.NewError(api.ErrCodeInvalidCapacity, api.ErrInvalidCapacity.Error()).
			WithContext("size", size))
	}
	return &RingBuffer[T]{
		data: make([]T, size),
		mask: size - 1,
	}
}

// Write appends val; returns false if the buffer is full.
func (r *RingBuffer[T]) Write(val T) bool {
	if r.IsFull() {
		return false
	}
	r.data[r.tail&r.mask] = val
	r.tail++
	return true
}

// Read removes and returns the oldest element; ok==false if empty.
func (r *RingBuffer[T]) Read() (res T, ok bool) {
	if r.IsEmpty() {
		return res, false
	}
	res = r.data[r.head&r.mask]
	r.head++
	return res, true
}

// ReadInto removes the oldest element into dst; returns false if empty.
// Same operation as Read in out-parameter form.
func (r *RingBuffer[T]) ReadInto(dst *T) bool {
	if r.IsEmpty() {
		return false
	}
	*dst = r.data[r.head&r.mask]
	r.head++
	return true
}

// WriteSlice appends all of src in order. Fails atomically, leaving the
// buffer untouched, when src is empty or free space is short of len(src).
func (r *RingBuffer[T]) WriteSlice(src []T) bool {
	if len(src) == 0 || len(r.data)-int(r.tail-r.head) < len(src) {
		return false
	}
	for _, v := range src {
		r.data[r.tail&r.mask] = v
		r.tail++
	}
	return true
}

// Push appends val, discarding the success flag, and returns the receiver
// for chaining. Use Write when capacity overflow must be detected.
func (r *RingBuffer[T]) Push(val T) *RingBuffer[T] {
	r.Write(val)
	return r
}

// IsFull reports whether the buffer holds Cap elements. Fullness is tested
// on the unmasked cursor difference: full and empty both mask to a zero
// count, but only a full buffer has difference bits outside the mask.
func (r *RingBuffer[T]) IsFull() bool {
	return (r.tail-r.head)&^r.mask != 0
}

// IsEmpty reports whether the buffer holds no elements.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.tail == r.head
}

// Len returns the masked element count. It is 0 both when the buffer is
// empty and when it is exactly full; IsEmpty and IsFull disambiguate.
func (r *RingBuffer[T]) Len() int {
	return int((r.tail - r.head) & r.mask)
}

// Cap returns the fixed buffer capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data)
}

// At returns a pointer to the i-th logical element, oldest first, valid for
// 0 <= i < occupied count. The element may be mutated in place. Out-of-range
// access is a programmer error and panics.
func (r *RingBuffer[T]) At(i int) *T {
	if i < 0 || uint64(i) >= r.tail-r.head {
		panic(api.NewError(api.ErrCodeIndexOutOfRange, api.ErrIndexOutOfRange.Error()).
			WithContext("index", i).
			WithContext("count", r.tail-r.head))
	}
	return &r.data[(r.head+uint64(i))&r.mask]
}

// First returns a pointer to the oldest element without consuming it.
// Panics if the buffer is empty.
func (r *RingBuffer[T]) First() *T {
	return r.At(0)
}

// Last returns a pointer to the newest element without consuming it.
// Panics if the buffer is empty.
func (r *RingBuffer[T]) Last() *T {
	return r.At(int(r.tail-r.head) - 1)
}

// Clear resets both cursors, emptying the buffer in O(1). Stored values are
// not erased, only made unreachable through the logical window.
func (r *RingBuffer[T]) Clear() {
	r.head, r.tail = 0, 0
}

// Raw exposes the backing storage for interop with code needing direct
// memory access. The slice is in storage order, not FIFO order: once the
// write cursor has wrapped it does not begin at the oldest element, and
// slots outside the logical window hold stale values.
func (r *RingBuffer[T]) Raw() []T {
	return r.data
}

// Clone returns an independent deep copy of the buffer: storage and cursors
// are duplicated, nothing is shared.
func (r *RingBuffer[T]) Clone() *RingBuffer[T] {
	data := make([]T, len(r.data))
	copy(data, r.data)
	return &RingBuffer[T]{
		data: data,
		mask: r.mask,
		head: r.head,
		tail: r.tail,
	}
}
