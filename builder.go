// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfeed

// A Builder constructs values of type V from parse events. The parser
// never constructs JSON values itself: it feeds primitives to the builder,
// opens a Frame for each array or object, and reports the frame's finished
// value to its enclosing container. Any type satisfying this interface can
// be used; the parser imposes no representation of its own.
type Builder[V any] interface {
	// Null returns the value for the null constant.
	Null() V

	// Bool returns the value for the true or false constant.
	Bool(value bool) V

	// String returns the value for a string. The text has already been
	// unescaped; surrogate pairs are combined into single code points.
	String(text string) V

	// Number returns the value for a number. The text is the raw literal
	// as written in the input, and isFloat reports whether it contains a
	// fraction or exponent part. Numeric interpretation is entirely up to
	// the builder; the parser only checks the lexical grammar.
	Number(text string, isFloat bool) V

	// BeginArray opens a frame for an array value.
	BeginArray() Frame[V]

	// BeginObject opens a frame for an object value.
	BeginObject() Frame[V]
}

// A Frame is an open array or object under construction. The parser owns a
// frame from BeginArray or BeginObject until Finish, and guarantees that on
// an object frame each Value call is preceded by exactly one Key call.
// Duplicate keys are reported as seen; the frame decides how to treat them.
type Frame[V any] interface {
	// Key supplies the key for the next Value. It is called only on
	// object frames.
	Key(text string)

	// Value appends a completed value to the container.
	Value(v V)

	// Finish finalizes the container into a single value. The frame is
	// not used again after Finish.
	Finish() V

	// Clone returns an independent copy of the frame, such that further
	// Key and Value calls on either copy do not affect the other. The
	// parser uses this to fork an in-flight parse (see Parser.Snapshot).
	Clone() Frame[V]
}

// An openFrame pairs a builder frame with its container kind, so the
// grammar machine knows which state follows a completed element.
type openFrame[V any] struct {
	f     Frame[V]
	isObj bool
}
