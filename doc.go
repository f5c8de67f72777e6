// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jfeed implements an incremental, resumable JSON parser.
//
// # Parsing
//
// A [Parser] accepts JSON input as a sequence of byte chunks of arbitrary
// size, and emits each top-level value as soon as all of its bytes have
// been seen. Construct a parser with [New], feed it input with Absorb, and
// mark the end of the input with Finish:
//
//	p := jfeed.New[ast.Value](ast.Builder{}, jfeed.ValueStream)
//	for chunk := range chunks {
//	   vs, err := p.Absorb(chunk)
//	   ...
//	}
//	vs, err := p.Finish()
//
// Each call returns the values completed by that call, in input order; the
// concatenation of the returned lists equals the result of parsing the
// whole input at once, regardless of how it was split into chunks. When a
// chunk ends in the middle of a value the parser saves its position and
// resumes when more bytes arrive.
//
// # Modes
//
// A [Mode] selects how multiple top-level values are treated:
//
//	Mode        | Input                          | Emits
//	----------- | ------------------------------ | --------------------
//	SingleValue | one JSON value                 | that value
//	ValueStream | whitespace-separated values    | each value in order
//	UnwrapArray | one outer JSON array           | each element in order
//
// Under UnwrapArray, if the first non-whitespace byte of the input is not
// "[" the parser downgrades to SingleValue and emits the outer value
// whole.
//
// # Builders
//
// The parser does not construct JSON values itself: it is parameterized by
// a [Builder], which supplies primitive values and a [Frame] for each
// array or object under construction. Any builder implementation yields a
// parser producing that builder's value type. The ast subpackage provides
// a ready-made builder and a concrete value representation.
//
// # Errors
//
// Invalid input is reported as a [*SyntaxError] carrying a diagnostic
// message and the offset, line, and column at which the problem was
// detected. An input that ends in the middle of a value is an error only
// at Finish; before that, the parser simply waits for more bytes.
package jfeed
