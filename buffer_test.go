// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfeed

import (
	"bytes"
	"errors"
	"testing"
)

func TestBufferAppend(t *testing.T) {
	var b buffer
	var want []byte
	for i := 0; i < 200; i++ {
		chunk := bytes.Repeat([]byte{byte(i)}, i)
		b.append(chunk)
		want = append(want, chunk...)
	}
	if !bytes.Equal(b.data, want) {
		t.Errorf("After append: got %d bytes, want %d; contents differ", len(b.data), len(want))
	}

	if c, err := b.byteAt(0); err != nil || c != want[0] {
		t.Errorf("byteAt(0): got %v, %v; want %v, nil", c, err, want[0])
	}
	if _, err := b.byteAt(len(want)); !errors.Is(err, errSuspend) {
		t.Errorf("byteAt(len): got error %v, want errSuspend", err)
	}
	if _, err := b.slice(0, len(want)+1); !errors.Is(err, errSuspend) {
		t.Errorf("slice past end: got error %v, want errSuspend", err)
	}
	if s, err := b.slice(1, 3); err != nil || s != string(want[1:3]) {
		t.Errorf("slice(1, 3): got %q, %v", s, err)
	}
}

func TestBufferAtEOF(t *testing.T) {
	var b buffer
	b.append([]byte("abc"))
	if b.atEOF(3) {
		t.Error("atEOF(3): got true before done")
	}
	b.done = true
	if b.atEOF(2) {
		t.Error("atEOF(2): got true with bytes remaining")
	}
	if !b.atEOF(3) {
		t.Error("atEOF(3): got false after done")
	}
}

func TestBufferCompact(t *testing.T) {
	var b buffer
	head := bytes.Repeat([]byte{'h'}, compactLimit)
	tail := []byte("tail data")
	b.append(head)
	b.append(tail)

	// Below the threshold, compact is a no-op.
	if got := b.compact(compactLimit - 1); got != compactLimit-1 {
		t.Errorf("compact below threshold: got %d, want %d", got, compactLimit-1)
	}
	if len(b.data) != compactLimit+len(tail) {
		t.Errorf("Buffer length changed: got %d", len(b.data))
	}

	// At the threshold, the consumed prefix is discarded.
	if got := b.compact(compactLimit + 3); got != 3 {
		t.Errorf("compact at threshold: got %d, want 3", got)
	}
	if !bytes.Equal(b.data, tail) {
		t.Errorf("After compact: got %q, want %q", b.data, tail)
	}
}
