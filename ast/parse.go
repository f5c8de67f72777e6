// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"io"

	"github.com/creachadair/jfeed"
)

// Parse parses and returns the JSON values from r as a whitespace
// separated stream. In case of error, any complete values already parsed
// are returned along with the error.
func Parse(r io.Reader) ([]Value, error) { return drain(r, jfeed.ValueStream) }

// ParseSingle parses a single JSON value from r. It is an error if the
// input contains no value, or anything but whitespace after the value.
func ParseSingle(r io.Reader) (Value, error) {
	vs, err := drain(r, jfeed.SingleValue)
	if err != nil {
		return nil, err
	} else if len(vs) == 0 {
		return nil, errors.New("no JSON value found")
	}
	return vs[0], nil
}

// ParseElements parses r as a single outer JSON array and returns its
// elements as separate values. If the outermost value of r is not an
// array, it is returned whole as the only element.
func ParseElements(r io.Reader) ([]Value, error) { return drain(r, jfeed.UnwrapArray) }

func drain(r io.Reader, mode jfeed.Mode) ([]Value, error) {
	p := jfeed.New[Value](Builder{}, mode)
	var out []Value
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			vs, perr := p.Absorb(buf[:n])
			out = append(out, vs...)
			if perr != nil {
				return out, perr
			}
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return out, err
		}
	}
	vs, perr := p.Finish()
	return append(out, vs...), perr
}
