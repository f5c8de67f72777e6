// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfeed

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text. A value of -1 means the location is not known.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string {
	if lc.Line < 0 {
		return "?:?"
	}
	return fmt.Sprintf("%d:%d", lc.Line, lc.Column)
}
