// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package rjson

import "go4.org/mem"

// Kind is the type of the value held by a Key.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindInvalid Kind = iota // not a valid key
	KindString              // quoted string
	KindObject              // object or array
	KindNumber              // number
	KindBool                // constant: true or false
	KindNull                // constant: null
)

var kindStr = [...]string{
	KindInvalid: "invalid",
	KindString:  "string",
	KindObject:  "object",
	KindNumber:  "number",
	KindBool:    "boolean",
	KindNull:    "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[KindInvalid]
	}
	return kindStr[k]
}

// A Value is the value of a Key. The concrete type is one of StringValue,
// NumberValue, BoolValue, NullValue, or Object.
type Value interface {
	// Kind reports the kind of the value.
	Kind() Kind
}

// A StringValue is the decoded text of a string. Text is a view of the arena
// and is valid for the lifetime of the parser that produced it.
type StringValue struct{ Text mem.RO }

// Kind satisfies the Value interface.
func (StringValue) Kind() Kind { return KindString }

// A NumberValue is a numeric value.
type NumberValue float64

// Kind satisfies the Value interface.
func (NumberValue) Kind() Kind { return KindNumber }

// A BoolValue is the constant true or false.
type BoolValue bool

// Kind satisfies the Value interface.
func (BoolValue) Kind() Kind { return KindBool }

// NullValue represents the null constant.
type NullValue struct{}

// Kind satisfies the Value interface.
func (NullValue) Kind() Kind { return KindNull }

// Kind satisfies the Value interface. An invalid Object reports KindInvalid.
func (o Object) Kind() Kind {
	if !o.IsValid() {
		return KindInvalid
	}
	return KindObject
}
