// File: ringbuf/bytes.go
// Author: momentics <momentics@gmail.com>
//
// Byte-specialized layer over RingBuffer for span-oriented producers and
// consumers. Bulk transfers move data in at most two copies around the
// wrap seam instead of one element at a time.

package ringbuf

// ByteRing adapts a RingBuffer[byte] for contiguous byte spans.
type ByteRing struct {
	rb *RingBuffer[byte]
}

// NewByteRing allocates a byte ring with size slots. size must be a power
// of two and panics otherwise, same contract as New.
func NewByteRing(size uint64) *ByteRing {
	return &ByteRing{rb: New[byte](size)}
}

// Write copies up to len(p) bytes into the ring and returns the number of
// bytes written. Non-blocking: a full ring accepts zero bytes.
func (b *ByteRing) Write(p []byte) int {
	r := b.rb
	n := uint64(len(p))
	if free := uint64(len(r.data)) - (r.tail - r.head); n > free {
		n = free
	}
	if n == 0 {
		return 0
	}
	pos := r.tail & r.mask
	first := uint64(len(r.data)) - pos
	if first >= n {
		copy(r.data[pos:pos+n], p[:n])
	} else {
		copy(r.data[pos:], p[:first])
		copy(r.data[:n-first], p[first:n])
	}
	r.tail += n
	return int(n)
}

// WriteAll copies all of p or nothing. Returns false, with the ring
// untouched, when p is empty or free space is short of len(p).
func (b *ByteRing) WriteAll(p []byte) bool {
	if len(p) == 0 || b.Free() < len(p) {
		return false
	}
	b.Write(p)
	return true
}

// Read copies up to len(p) bytes out of the ring and returns the number of
// bytes read. Non-blocking: an empty ring yields zero bytes.
func (b *ByteRing) Read(p []byte) int {
	r := b.rb
	n := uint64(len(p))
	if avail := r.tail - r.head; n > avail {
		n = avail
	}
	if n == 0 {
		return 0
	}
	pos := r.head & r.mask
	first := uint64(len(r.data)) - pos
	if first >= n {
		copy(p[:n], r.data[pos:pos+n])
	} else {
		copy(p[:first], r.data[pos:])
		copy(p[first:n], r.data[:n-first])
	}
	r.head += n
	return int(n)
}

// WriteByte appends a single byte; returns false if full.
func (b *ByteRing) WriteByte(c byte) bool {
	return b.rb.Write(c)
}

// ReadByte removes the oldest byte; ok==false if empty.
func (b *ByteRing) ReadByte() (byte, bool) {
	return b.rb.Read()
}

// Free returns the number of bytes that can be written without loss.
func (b *ByteRing) Free() int {
	return len(b.rb.data) - int(b.rb.tail-b.rb.head)
}

// Len returns the number of unread bytes. Unlike RingBuffer.Len this is the
// full-precision count, never ambiguous at the full boundary.
func (b *ByteRing) Len() int {
	return int(b.rb.tail - b.rb.head)
}

// Cap returns the fixed ring capacity.
func (b *ByteRing) Cap() int {
	return len(b.rb.data)
}

// IsEmpty reports whether no unread bytes remain.
func (b *ByteRing) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// IsFull reports whether the ring is at capacity.
func (b *ByteRing) IsFull() bool {
	return b.rb.IsFull()
}

// Clear drops all unread bytes in O(1).
func (b *ByteRing) Clear() {
	b.rb.Clear()
}
