// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfeed

import (
	"errors"
	"strings"
	"testing"
)

// A discardBuilder retains nothing, to drive the parser internals without
// a value representation.
type discardBuilder struct{}

func (discardBuilder) Null() int               { return 0 }
func (discardBuilder) Bool(bool) int           { return 0 }
func (discardBuilder) String(string) int       { return 0 }
func (discardBuilder) Number(string, bool) int { return 0 }
func (discardBuilder) BeginArray() Frame[int]  { return discardFrame{} }
func (discardBuilder) BeginObject() Frame[int] { return discardFrame{} }

type discardFrame struct{}

func (discardFrame) Key(string)        {}
func (discardFrame) Value(int)         {}
func (discardFrame) Finish() int       { return 0 }
func (discardFrame) Clone() Frame[int] { return discardFrame{} }

func TestCompactMidValue(t *testing.T) {
	// A single top-level array much larger than the compaction threshold,
	// fed in chunks: the buffer must compact while the value is still
	// open, and line/column tracking must survive the shifts.
	const numRows = 3100
	row := `"` + strings.Repeat("x", 1024) + `",` + "\n"

	var sb strings.Builder
	sb.WriteString("[\n")
	for i := 0; i < numRows; i++ {
		sb.WriteString(row)
	}
	sb.WriteString("?") // not a JSON value
	input := sb.String()
	if len(input) <= 3*compactLimit {
		t.Fatalf("Test input is only %d bytes; too small to compact twice", len(input))
	}

	const chunkSize = 1 << 16
	p := New[int](discardBuilder{}, SingleValue)
	var maxBuf int
	var perr error
	for i := 0; i < len(input) && perr == nil; i += chunkSize {
		_, perr = p.Absorb([]byte(input[i:min(i+chunkSize, len(input))]))
		maxBuf = max(maxBuf, len(p.buf.data))
	}

	if bound := compactLimit + 2*chunkSize; maxBuf > bound {
		t.Errorf("Buffer reached %d bytes, want at most %d", maxBuf, bound)
	}

	var serr *SyntaxError
	if !errors.As(perr, &serr) {
		t.Fatalf("Got error %v, want *SyntaxError", perr)
	}
	if serr.Message != "expected json value" {
		t.Errorf("Got message %q, want %q", serr.Message, "expected json value")
	}
	if wantLine := numRows + 2; serr.Line != wantLine || serr.Column != 0 {
		t.Errorf("Got position %v, want %d:0", serr.LineCol, wantLine)
	}
}
