// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfeed

import (
	"errors"

	"github.com/creachadair/jfeed/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	buf := escape.Quote(mem.S(src))
	return `"` + string(buf) + `"`
}

// Unquote decodes a JSON string value. Double quotation marks are removed,
// escape sequences are replaced with their unescaped equivalents, and
// surrogate pairs are combined into single code points.
//
// Unquote reports an error for an invalid or incomplete escape sequence
// and for an unpaired surrogate.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
