// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"slices"

	"github.com/creachadair/jfeed"
)

// Builder is a jfeed.Builder that produces ast.Value results.
type Builder struct{}

func (Builder) Null() Value              { return Null{} }
func (Builder) Bool(value bool) Value    { return Bool(value) }
func (Builder) String(text string) Value { return String(text) }

func (Builder) Number(text string, isFloat bool) Value {
	if isFloat {
		return Number(text)
	}
	return Integer(text)
}

func (Builder) BeginArray() jfeed.Frame[Value]  { return new(arrayFrame) }
func (Builder) BeginObject() jfeed.Frame[Value] { return new(objectFrame) }

// An arrayFrame accumulates the elements of an array under construction.
type arrayFrame struct {
	vals []Value
}

func (f *arrayFrame) Key(string)    { panic("key in array frame") }
func (f *arrayFrame) Value(v Value) { f.vals = append(f.vals, v) }
func (f *arrayFrame) Finish() Value { return &Array{Values: f.vals} }

func (f *arrayFrame) Clone() jfeed.Frame[Value] {
	return &arrayFrame{vals: slices.Clone(f.vals)}
}

// An objectFrame accumulates the members of an object under construction.
// Duplicate keys are preserved in source order.
type objectFrame struct {
	members []*Member
	key     string
	hasKey  bool
}

func (f *objectFrame) Key(text string) { f.key, f.hasKey = text, true }

func (f *objectFrame) Value(v Value) {
	if !f.hasKey {
		panic("value without key in object frame")
	}
	f.members = append(f.members, &Member{Key: f.key, Value: v})
	f.hasKey = false
}

func (f *objectFrame) Finish() Value { return &Object{Members: f.members} }

func (f *objectFrame) Clone() jfeed.Frame[Value] {
	return &objectFrame{members: slices.Clone(f.members), key: f.key, hasKey: f.hasKey}
}
