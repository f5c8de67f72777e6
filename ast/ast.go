// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a concrete representation for JSON values produced
// by the jfeed parser, and convenience functions that parse whole inputs
// from an io.Reader.
package ast

import (
	"strconv"
	"strings"

	"github.com/creachadair/jfeed"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON renders the value as JSON source text.
	JSON() string
}

// An Object is a collection of key-value members. Members are kept in the
// order they appeared in the source, including duplicate keys.
type Object struct {
	Members []*Member
}

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// JSON satisfies the Value interface.
func (o *Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(jfeed.Quote(m.Key))
		sb.WriteByte(':')
		sb.WriteString(m.Value.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// A Member is a single key-value pair belonging to an Object. The key is
// the decoded text of the member's key string.
type Member struct {
	Key   string
	Value Value
}

// An Array is a sequence of values.
type Array struct {
	Values []Value
}

// JSON satisfies the Value interface.
func (a *Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.Values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// A String is a string value. Its content is the decoded text of the
// string, with escape sequences undone.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return jfeed.Quote(string(s)) }

// An Integer is a number written without a fraction or exponent. Its
// content is the literal text from the source.
type Integer string

// Int64 returns the value of z as an int64. It panics if the text of z
// does not fit.
func (z Integer) Int64() int64 {
	v, err := strconv.ParseInt(string(z), 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// JSON satisfies the Value interface.
func (z Integer) JSON() string { return string(z) }

// A Number is a number written with a fraction and/or exponent. Its
// content is the literal text from the source.
type Number string

// Float64 returns the value of n as a float64.
func (n Number) Float64() float64 {
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		panic(err)
	}
	return v
}

// JSON satisfies the Value interface.
func (n Number) JSON() string { return string(n) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }
