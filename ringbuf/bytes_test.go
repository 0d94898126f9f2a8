// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// bytes_test.go — Span copy tests for the byte-specialized ring.
package ringbuf

import (
	"bytes"
	"testing"
)

// TestByteRing_SpanRoundTrip moves a span through the ring without wrap.
func TestByteRing_SpanRoundTrip(t *testing.T) {
	b := NewByteRing(16)
	n := b.Write([]byte("hello"))
	if n != 5 {
		t.Fatalf("Write = %d, want 5", n)
	}
	if b.Len() != 5 || b.Free() != 11 {
		t.Fatalf("Len=%d Free=%d, want 5/11", b.Len(), b.Free())
	}
	out := make([]byte, 16)
	n = b.Read(out)
	if n != 5 || !bytes.Equal(out[:5], []byte("hello")) {
		t.Fatalf("Read = %d %q", n, out[:n])
	}
	if !b.IsEmpty() {
		t.Error("expected empty after full drain")
	}
}

// TestByteRing_WrapSeam forces a two-segment copy on both sides.
func TestByteRing_WrapSeam(t *testing.T) {
	b := NewByteRing(8)
	if b.Write([]byte("abcdef")) != 6 {
		t.Fatal("priming write failed")
	}
	out := make([]byte, 4)
	if b.Read(out) != 4 || string(out) != "abcd" {
		t.Fatalf("priming read got %q", out)
	}
	// Cursors at 6/4; a 5-byte span now crosses the storage seam.
	if b.Write([]byte("ghijk")) != 5 {
		t.Fatal("seam write failed")
	}
	big := make([]byte, 8)
	n := b.Read(big)
	if n != 7 || string(big[:7]) != "efghijk" {
		t.Fatalf("seam read = %d %q, want 7 %q", n, big[:n], "efghijk")
	}
}

// TestByteRing_PartialWrite truncates at free space instead of failing.
func TestByteRing_PartialWrite(t *testing.T) {
	b := NewByteRing(4)
	n := b.Write([]byte("abcdef"))
	if n != 4 {
		t.Fatalf("Write = %d, want 4", n)
	}
	if !b.IsFull() {
		t.Error("expected full")
	}
	if b.Write([]byte("x")) != 0 {
		t.Error("write into full ring must report 0")
	}
	out := make([]byte, 8)
	if got := b.Read(out); got != 4 || string(out[:4]) != "abcd" {
		t.Fatalf("Read = %d %q", got, out[:got])
	}
	if b.Read(out) != 0 {
		t.Error("read from empty ring must report 0")
	}
}

// TestByteRing_WriteAllAtomic verifies the all-or-nothing span write.
func TestByteRing_WriteAllAtomic(t *testing.T) {
	b := NewByteRing(8)
	if b.WriteAll(nil) {
		t.Error("empty WriteAll must fail")
	}
	if !b.WriteAll([]byte("abcdef")) {
		t.Fatal("WriteAll within capacity failed")
	}
	if b.WriteAll([]byte("ghi")) {
		t.Error("oversized WriteAll must fail")
	}
	if b.Len() != 6 {
		t.Errorf("failed WriteAll changed Len to %d", b.Len())
	}
	if !b.WriteAll([]byte("gh")) {
		t.Fatal("WriteAll into exact free space failed")
	}
	out := make([]byte, 8)
	if n := b.Read(out); string(out[:n]) != "abcdefgh" {
		t.Fatalf("drained %q", out[:n])
	}
}

// TestByteRing_SingleBytes covers the per-byte helpers and Clear.
func TestByteRing_SingleBytes(t *testing.T) {
	b := NewByteRing(2)
	if !b.WriteByte('a') || !b.WriteByte('b') {
		t.Fatal("byte writes failed")
	}
	if b.WriteByte('c') {
		t.Error("byte write into full ring must fail")
	}
	c, ok := b.ReadByte()
	if !ok || c != 'a' {
		t.Fatalf("ReadByte = %q (ok=%v)", c, ok)
	}
	b.Clear()
	if _, ok := b.ReadByte(); ok {
		t.Error("ReadByte after Clear must fail")
	}
	if b.Cap() != 2 {
		t.Errorf("Cap = %d, want 2", b.Cap())
	}
}
