// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var hexDigit = []byte("0123456789abcdef")

// Quote encodes a string to escape characters for inclusion in a JSON
// string. The enclosing quotation marks are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		if r < utf8.RuneSelf {
			switch {
			case r == '"' || r == '\\':
				buf = append(buf, '\\', byte(r))
			case r >= ' ':
				buf = append(buf, byte(r))
			case r == '\b':
				buf = append(buf, '\\', 'b')
			case r == '\f':
				buf = append(buf, '\\', 'f')
			case r == '\n':
				buf = append(buf, '\\', 'n')
			case r == '\r':
				buf = append(buf, '\\', 'r')
			case r == '\t':
				buf = append(buf, '\\', 't')
			default:
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
			continue
		}

		switch r {
		case '\ufffd': // replacement rune
			buf = append(buf, `\ufffd`...)
		case '\u2028': // line separator
			buf = append(buf, `\u2028`...)
		case '\u2029': // paragraph separator
			buf = append(buf, `\u2029`...)
		default:
			var rb [utf8.UTFMax]byte
			buf = append(buf, rb[:utf8.EncodeRune(rb[:], r)]...)
		}
	}
	return buf
}
