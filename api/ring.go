// Package api
// Author: momentics@gmail.com
//
// Fixed-capacity FIFO ring buffer contracts for hioload-ring.

package api

// Ring is the bounded FIFO contract shared by all ring variants.
type Ring[T any] interface {
	// Write appends an item, returns false if full.
	Write(item T) bool
	// Read removes the oldest item, ok==false if empty.
	Read() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns fixed buffer capacity.
	Cap() int
}
