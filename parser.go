// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfeed

import (
	"go4.org/mem"

	"github.com/creachadair/jfeed/internal/escape"
)

// Grammar states of the synchronous machine. The values are positive so
// they remain distinct from the outer driver states in stream.go, and 0 is
// reserved to mean "start a fresh value".
const (
	gData   = 1 // expecting a value inside a container
	gKey    = 2 // expecting an object key
	gSep    = 3 // expecting ':' between a key and its value
	gArrEnd = 4 // expecting ',' or ']' after an array element
	gObjEnd = 5 // expecting ',' or '}' after an object member
	gArrBeg = 6 // just after '[': expecting a value or ']'
	gObjBeg = 7 // just after '{': expecting a key or '}'
)

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

// newline records a newline byte at offset i.
func (p *Parser[V]) newline(i int) { p.line++; p.lastPos = i + 1 }

// lineCol translates absolute offset i into a (line, column) pair using
// the newlines observed so far. Columns are 0-based byte offsets from the
// most recent newline.
func (p *Parser[V]) lineCol(i int) LineCol {
	return LineCol{Line: p.line + 1, Column: i - p.lastPos}
}

// fail reports a grammar error detected at absolute offset i.
func (p *Parser[V]) fail(i int, msg string) *SyntaxError {
	return &SyntaxError{Message: msg, Offset: i, LineCol: p.lineCol(i)}
}

// checkpoint records the grammar machine's resume point. After a suspend,
// the machine restarts from exactly this state; the machine itself keeps
// no other state across a suspend.
func (p *Parser[V]) checkpoint(state, i int, frames []openFrame[V]) {
	p.state, p.curr, p.frames = state, i, frames
}

// reset compacts the buffer once the live scan position j has passed the
// compaction threshold, adjusting the other absolute offsets by the amount
// discarded, and returns the adjusted position. Discarded bytes are never
// re-read: a resume re-scans at most from the checkpoint, which is always
// at or past j when reset is called.
func (p *Parser[V]) reset(j int) int {
	if i := p.buf.compact(j); i != j {
		p.offset -= compactLimit
		p.curr -= compactLimit
		p.lastPos -= compactLimit
		return i
	}
	return j
}

// parse parses one complete JSON value whose first byte is at offset i,
// returning the value and the offset just past it. Containers are handed
// off to the grammar machine; primitives may be terminated by the end of a
// finished input, since at top level no delimiter need follow.
func (p *Parser[V]) parse(i int) (V, int, error) {
	var zero V
	c, err := p.buf.byteAt(i)
	if err != nil {
		return zero, 0, err
	}
	switch {
	case c == '[':
		return p.machine(gArrBeg, i+1, []openFrame[V]{{p.b.BeginArray(), false}})
	case c == '{':
		return p.machine(gObjBeg, i+1, []openFrame[V]{{p.b.BeginObject(), true}})
	case c == '-' || isDigit(c):
		text, isFloat, k, err := p.scanNumber(i, true)
		if err != nil {
			return zero, 0, err
		}
		return p.b.Number(text, isFloat), k, nil
	case c == '"':
		text, k, err := p.scanString(i)
		if err != nil {
			return zero, 0, err
		}
		return p.b.String(text), k, nil
	case c == 't':
		k, err := p.scanLiteral(i, litTrue)
		if err != nil {
			return zero, 0, err
		}
		return p.b.Bool(true), k, nil
	case c == 'f':
		k, err := p.scanLiteral(i, litFalse)
		if err != nil {
			return zero, 0, err
		}
		return p.b.Bool(false), k, nil
	case c == 'n':
		k, err := p.scanLiteral(i, litNull)
		if err != nil {
			return zero, 0, err
		}
		return p.b.Null(), k, nil
	default:
		return zero, 0, p.fail(i, "expected json value")
	}
}

// machine runs the grammar machine from the given state at offset j with
// the given open frames, until the outermost frame closes. It returns the
// finished value and the offset just past its closing bracket. At every
// recoverable position the machine checkpoints (state, offset, frames) on
// p, so that after a suspend a later call can resume from the checkpoint.
func (p *Parser[V]) machine(state, j int, frames []openFrame[V]) (V, int, error) {
	var zero V
	for {
		i := p.reset(j)
		p.checkpoint(state, i, frames)
		c, err := p.buf.byteAt(i)
		if err != nil {
			return zero, 0, err
		}

		switch {
		case c == '\n':
			p.newline(i)
			j = i + 1

		case c == ' ' || c == '\t' || c == '\r':
			j = i + 1

		case state == gData:
			top := frames[len(frames)-1]
			switch {
			case c == '[':
				frames = append(frames, openFrame[V]{p.b.BeginArray(), false})
				state, j = gArrBeg, i+1
			case c == '{':
				frames = append(frames, openFrame[V]{p.b.BeginObject(), true})
				state, j = gObjBeg, i+1
			case c == '-' || isDigit(c):
				text, isFloat, k, err := p.scanNumber(i, false)
				if err != nil {
					return zero, 0, err
				}
				top.f.Value(p.b.Number(text, isFloat))
				state, j = afterValue(top), k
			case c == '"':
				text, k, err := p.scanString(i)
				if err != nil {
					return zero, 0, err
				}
				top.f.Value(p.b.String(text))
				state, j = afterValue(top), k
			case c == 't':
				k, err := p.scanLiteral(i, litTrue)
				if err != nil {
					return zero, 0, err
				}
				top.f.Value(p.b.Bool(true))
				state, j = afterValue(top), k
			case c == 'f':
				k, err := p.scanLiteral(i, litFalse)
				if err != nil {
					return zero, 0, err
				}
				top.f.Value(p.b.Bool(false))
				state, j = afterValue(top), k
			case c == 'n':
				k, err := p.scanLiteral(i, litNull)
				if err != nil {
					return zero, 0, err
				}
				top.f.Value(p.b.Null())
				state, j = afterValue(top), k
			default:
				return zero, 0, p.fail(i, "expected json value")
			}

		case c == ']' && (state == gArrBeg || state == gArrEnd),
			c == '}' && (state == gObjBeg || state == gObjEnd):
			// Close the innermost container and hand its value to the
			// enclosing frame, or return it if this was the outermost.
			top := frames[len(frames)-1]
			frames = frames[:len(frames)-1]
			v := top.f.Finish()
			if len(frames) == 0 {
				return v, i + 1, nil
			}
			outer := frames[len(frames)-1]
			outer.f.Value(v)
			state, j = afterValue(outer), i+1

		case state == gKey || state == gObjBeg:
			if c != '"' {
				return zero, 0, p.fail(i, `expected '"'`)
			}
			text, k, err := p.scanString(i)
			if err != nil {
				return zero, 0, err
			}
			frames[len(frames)-1].f.Key(text)
			state, j = gSep, k

		case state == gSep:
			if c != ':' {
				return zero, 0, p.fail(i, "expected ':'")
			}
			state, j = gData, i+1

		case state == gArrEnd:
			if c != ',' {
				return zero, 0, p.fail(i, "expected ] or ,")
			}
			state, j = gData, i+1

		case state == gObjEnd:
			if c != ',' {
				return zero, 0, p.fail(i, "expected } or ,")
			}
			state, j = gKey, i+1

		default: // gArrBeg with a value following: same as gData
			state, j = gData, i
		}
	}
}

// afterValue returns the state that follows a completed element of the
// given container.
func afterValue[V any](f openFrame[V]) int {
	if f.isObj {
		return gObjEnd
	}
	return gArrEnd
}

// scanNumber scans the number literal beginning at offset i per RFC 8259,
// returning its text, whether it has a fraction or exponent part, and the
// offset just past it. When top is true the literal may be terminated by
// the end of a finished input; otherwise running out of buffer reports
// errSuspend and the caller's checkpoint re-scans the literal on resume.
func (p *Parser[V]) scanNumber(i int, top bool) (text string, isFloat bool, end int, err error) {
	// peek reads the byte at j, translating end-of-input on a finished
	// top-level literal into eof rather than a suspend.
	peek := func(j int) (byte, bool, error) {
		c, err := p.buf.byteAt(j)
		if err != nil && top && p.buf.atEOF(j) {
			return 0, true, nil
		}
		return c, false, err
	}
	digits := func(j int) (int, byte, bool, error) {
		for {
			c, eof, err := peek(j)
			if err != nil || eof || !isDigit(c) {
				return j, c, eof, err
			}
			j++
		}
	}

	j := i
	c, eof, err := peek(j)
	if err != nil {
		return "", false, 0, err
	}
	if c == '-' {
		j++
		if c, eof, err = peek(j); err != nil {
			return "", false, 0, err
		}
	}
	switch {
	case eof || !isDigit(c):
		return "", false, 0, p.fail(j, "expected digit")
	case c == '0':
		// A leading zero is a complete integer part.
		j++
		if c, eof, err = peek(j); err != nil {
			return "", false, 0, err
		}
	default:
		if j, c, eof, err = digits(j); err != nil {
			return "", false, 0, err
		}
	}

	if !eof && c == '.' {
		isFloat = true
		j++
		if c, eof, err = peek(j); err != nil {
			return "", false, 0, err
		}
		if eof || !isDigit(c) {
			return "", false, 0, p.fail(j, "expected digit")
		}
		if j, c, eof, err = digits(j); err != nil {
			return "", false, 0, err
		}
	}
	if !eof && (c == 'e' || c == 'E') {
		isFloat = true
		j++
		if c, eof, err = peek(j); err != nil {
			return "", false, 0, err
		}
		if !eof && (c == '+' || c == '-') {
			j++
			if c, eof, err = peek(j); err != nil {
				return "", false, 0, err
			}
		}
		if eof || !isDigit(c) {
			return "", false, 0, p.fail(j, "expected digit")
		}
		if j, _, _, err = digits(j); err != nil {
			return "", false, 0, err
		}
	}

	text, err = p.buf.slice(i, j)
	if err != nil {
		return "", false, 0, err
	}
	return text, isFloat, j, nil
}

// scanString scans the string literal whose opening quote is at offset i
// and returns its decoded text and the offset just past the closing quote.
// Escape sequences are undone and surrogate pairs combined; an invalid
// escape or unpaired surrogate is a syntax error at the escape's position.
func (p *Parser[V]) scanString(i int) (string, int, error) {
	j, esc := i+1, false
	for {
		c, err := p.buf.byteAt(j)
		if err != nil {
			return "", 0, err // resume re-scans from the opening quote
		}
		if c < ' ' {
			return "", 0, p.fail(j, "control character in string")
		}
		if esc {
			esc = false
		} else if c == '\\' {
			esc = true
		} else if c == '"' {
			break
		}
		j++
	}
	raw, err := p.buf.slice(i+1, j)
	if err != nil {
		return "", 0, err
	}
	dec, err := escape.Unquote(mem.S(raw))
	if err != nil {
		if ee, ok := err.(*escape.Error); ok {
			return "", 0, p.fail(i+1+ee.Off, ee.Msg)
		}
		return "", 0, p.fail(i, err.Error())
	}
	return string(dec), j + 1, nil
}

// scanLiteral matches the literal lit (true, false, or null) beginning at
// offset i, byte for byte.
func (p *Parser[V]) scanLiteral(i int, lit mem.RO) (int, error) {
	for k := 0; k < lit.Len(); k++ {
		c, err := p.buf.byteAt(i + k)
		if err != nil {
			return 0, err
		}
		if c != lit.At(k) {
			return 0, p.fail(i, "expected "+lit.StringCopy())
		}
	}
	return i + lit.Len(), nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
