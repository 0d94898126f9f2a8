// File: spsc/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-producer single-consumer ring buffer with atomic cursors,
// padded to prevent false sharing between the two sides.

package spsc

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring is a lock-free fixed-capacity ring buffer for exactly one producer
// goroutine and one consumer goroutine. Write must only be called by the
// producer and Read only by the consumer; with more than one goroutine on
// either side the contract is void.
type Ring[T any] struct {
	head atomic.Uint64 // consumer cursor
	_    cpu.CacheLinePad
	tail atomic.Uint64 // producer cursor
	_    cpu.CacheLinePad
	mask uint64
	data []T
}

// New allocates a ring of size slots (must be power of two, panics otherwise).
func New[T any](size uint64) *Ring[T] {
	if size == 0 || (size&(size-1)) != 0 {
		panic(api.NewError(api.ErrCodeInvalidCapacity, api.ErrInvalidCapacity.Error()).
			WithContext("size", size))
	}
	return &Ring[T]{
		mask: size - 1,
		data: make([]T, size),
	}
}

// Write appends item; returns false if full. Producer side only.
func (r *Ring[T]) Write(item T) bool {
	tail := r.tail.Load()
	head := r.head.Load()
	if tail-head == uint64(len(r.data)) {
		return false
	}
	r.data[tail&r.mask] = item
	r.tail.Store(tail + 1)
	return true
}

// Read removes and returns the oldest item; ok==false if empty.
// Consumer side only.
func (r *Ring[T]) Read() (res T, ok bool) {
	head := r.head.Load()
	tail := r.tail.Load()
	if head == tail {
		return res, false
	}
	res = r.data[head&r.mask]
	r.head.Store(head + 1)
	return res, true
}

// Len returns the number of items currently buffered.
func (r *Ring[T]) Len() int {
	return int(r.tail.Load() - r.head.Load())
}

// Cap returns the fixed buffer capacity.
func (r *Ring[T]) Cap() int {
	return len(r.data)
}

// IsEmpty reports whether the ring holds no items.
func (r *Ring[T]) IsEmpty() bool {
	return r.tail.Load() == r.head.Load()
}

// IsFull reports whether the ring is at capacity.
func (r *Ring[T]) IsFull() bool {
	return r.tail.Load()-r.head.Load() == uint64(len(r.data))
}
