// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"fmt"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// An Error reports an invalid escape sequence and its byte offset within
// the input passed to Unquote.
type Error struct {
	Off int    // offset of the backslash or offending byte
	Msg string
}

func (e *Error) Error() string { return fmt.Sprintf("%s (offset %d)", e.Msg, e.Off) }

// Unquote decodes a byte slice containing the JSON encoding of a string.
// The input must have the enclosing double quotation marks already
// removed.
//
// Escape sequences are replaced with their unescaped equivalents, and a
// surrogate pair is combined into a single code point. An invalid or
// incomplete escape, or an unpaired surrogate, is reported as an *Error
// whose offset is relative to the start of src.
func Unquote(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}

	dec := mem.Append(make([]byte, 0, src.Len()), src.SliceTo(i))
	for i < src.Len() {
		// Invariant: src[i] is a backslash.
		if i+1 >= src.Len() {
			return nil, &Error{Off: i, Msg: "incomplete escape sequence"}
		}
		c := src.At(i + 1)
		switch c {
		case '"', '\\', '/':
			dec = append(dec, c)
			i += 2
		case 'b':
			dec = append(dec, '\b')
			i += 2
		case 'f':
			dec = append(dec, '\f')
			i += 2
		case 'n':
			dec = append(dec, '\n')
			i += 2
		case 'r':
			dec = append(dec, '\r')
			i += 2
		case 't':
			dec = append(dec, '\t')
			i += 2
		case 'u':
			r, n, err := decodeHexRune(src, i)
			if err != nil {
				return nil, err
			}
			var rb [utf8.UTFMax]byte
			dec = append(dec, rb[:utf8.EncodeRune(rb[:], r)]...)
			i += n
		default:
			return nil, &Error{Off: i, Msg: "invalid escape code"}
		}

		// Copy plain text up to the next escape sequence, if any.
		rest := src.SliceFrom(i)
		j := mem.IndexByte(rest, '\\')
		if j < 0 {
			dec = mem.Append(dec, rest)
			break
		}
		dec = mem.Append(dec, rest.SliceTo(j))
		i += j
	}
	return dec, nil
}

// decodeHexRune decodes the Unicode escape beginning at src[i], which must
// be a backslash followed by 'u'. A high surrogate must be followed by a
// second Unicode escape carrying the low surrogate; the pair is combined
// into one code point. It returns the rune and the number of source bytes
// consumed.
func decodeHexRune(src mem.RO, i int) (rune, int, error) {
	v, err := parseHex(src, i+2)
	if err != nil {
		return 0, 0, err
	}
	r := rune(v)
	if !utf16.IsSurrogate(r) {
		return r, 6, nil
	}
	if r >= 0xDC00 {
		// A low surrogate with no preceding high surrogate.
		return 0, 0, &Error{Off: i, Msg: "invalid surrogate pair"}
	}
	if i+12 > src.Len() || src.At(i+6) != '\\' || src.At(i+7) != 'u' {
		return 0, 0, &Error{Off: i, Msg: "invalid surrogate pair"}
	}
	w, err := parseHex(src, i+8)
	if err != nil {
		return 0, 0, err
	}
	c := utf16.DecodeRune(r, rune(w))
	if c == unicode.ReplacementChar {
		return 0, 0, &Error{Off: i, Msg: "invalid surrogate pair"}
	}
	return c, 12, nil
}

// parseHex decodes exactly four hexadecimal digits beginning at src[i].
func parseHex(src mem.RO, i int) (int64, error) {
	if i+4 > src.Len() {
		return 0, &Error{Off: i - 2, Msg: "incomplete Unicode escape"}
	}
	var v int64
	for k := i; k < i+4; k++ {
		b := src.At(k)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += int64(b - '0')
		case 'a' <= b && b <= 'f':
			v += int64(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += int64(b - 'A' + 10)
		default:
			return 0, &Error{Off: k, Msg: fmt.Sprintf("invalid hex digit %q", b)}
		}
	}
	return v, nil
}
