// File: ringbuf/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ringbuf implements the single-threaded fixed-capacity ring buffer
// at the heart of hioload-ring. Capacity is a power of two; read and write
// cursors grow without bound and are masked only when touching storage, so
// the full and empty states stay distinguishable without sacrificing a slot.
//
// Nothing here is synchronized. Callers sharing a buffer across goroutines
// must supply their own exclusion, or use the spsc package instead.
package ringbuf
