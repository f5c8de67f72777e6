// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfeed

// compactLimit is the consumed-prefix size beyond which the buffer shifts
// its remaining contents toward index 0.
const compactLimit = 1 << 20

// growLimit caps how much additional capacity a single growth step may
// reserve beyond what is immediately needed.
const growLimit = 1 << 26

// A buffer is an append-only byte store for raw input, with periodic
// compaction of its consumed prefix. Reads past the logical end report
// errSuspend so the grammar machine can unwind to its last checkpoint;
// whether that means "wait for more input" or "input was truncated" is
// decided by the drive loop using the done flag.
type buffer struct {
	data []byte
	done bool // no further input will arrive
}

// append adds p to the end of the buffer, doubling the backing store as
// needed up to growLimit per step.
func (b *buffer) append(p []byte) {
	if need := len(b.data) + len(p); need > cap(b.data) {
		size := max(need, min(2*cap(b.data), cap(b.data)+growLimit))
		data := make([]byte, len(b.data), size)
		copy(data, b.data)
		b.data = data
	}
	b.data = append(b.data, p...)
}

// byteAt returns the byte at offset i, or errSuspend if i is past the end
// of the available input.
func (b *buffer) byteAt(i int) (byte, error) {
	if i >= len(b.data) {
		return 0, errSuspend
	}
	return b.data[i], nil
}

// slice returns the text of data[i:k), or errSuspend if k is past the end
// of the available input. The caller must ensure i and k lie on UTF-8 code
// point boundaries; slice does not check this.
func (b *buffer) slice(i, k int) (string, error) {
	if k > len(b.data) {
		return "", errSuspend
	}
	return string(b.data[i:k]), nil
}

// atEOF reports whether offset i is at or past the end of a finished input.
func (b *buffer) atEOF(i int) bool { return b.done && i >= len(b.data) }

// compact discards the first compactLimit bytes of the buffer once the read
// offset i has moved past them, shifting the remainder toward index 0, and
// returns the adjusted offset. All other offsets held by the caller must be
// reduced by the same amount.
func (b *buffer) compact(i int) int {
	if i < compactLimit {
		return i
	}
	n := copy(b.data, b.data[compactLimit:])
	b.data = b.data[:n]
	return i - compactLimit
}
