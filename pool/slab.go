// File: pool/slab.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ringbuf"
)

// SlabPool recycles fixed-size byte slabs through a bounded ring free list.
// Not synchronized; confine a pool to one goroutine or guard it externally.
type SlabPool struct {
	free     *ringbuf.RingBuffer[[]byte]
	slabSize int
	stats    SlabPoolStats
}

// SlabPoolStats aggregates allocation/reuse accounting.
type SlabPoolStats struct {
	Allocated int64 // slabs created fresh
	Reused    int64 // slabs served from the free list
	Dropped   int64 // returned slabs rejected (free list full or wrong size)
}

// NewSlabPool creates a pool of slabSize-byte slabs, keeping at most
// capacity of them on the free list. capacity must be a power of two.
func NewSlabPool(slabSize int, capacity uint64) *SlabPool {
	if slabSize <= 0 {
		panic(api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument.Error()).
			WithContext("slabSize", slabSize))
	}
	return &SlabPool{
		free:     ringbuf.New[[]byte](capacity),
		slabSize: slabSize,
	}
}

// Get returns a slab of exactly slabSize bytes, recycled when possible.
// Contents of a recycled slab are stale; callers overwrite before use.
func (p *SlabPool) Get() []byte {
	if buf, ok := p.free.Read(); ok {
		p.stats.Reused++
		return buf
	}
	p.stats.Allocated++
	return make([]byte, p.slabSize)
}

// Put returns a slab to the free list. Slabs of the wrong size, or arriving
// when the free list is full, are dropped for the GC to collect.
func (p *SlabPool) Put(buf []byte) {
	if cap(buf) != p.slabSize || !p.free.Write(buf[:p.slabSize]) {
		p.stats.Dropped++
		return
	}
}

// Stats returns a snapshot of the pool counters.
func (p *SlabPool) Stats() SlabPoolStats {
	return p.stats
}
