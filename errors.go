// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is the class of errors for input that does not match the
	// accepted grammar.
	ErrSyntax = errors.New("syntax error")

	// ErrOutOfMemory is the class of errors for a document that does not fit
	// in the remaining space of the parser's block.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrTooDeep is the class of errors for a document whose objects and
	// arrays nest more than MaxDepth levels.
	ErrTooDeep = errors.New("nesting too deep")

	// ErrTruncated is the class of errors for a string or number longer than
	// MaxStringSize bytes, when truncation is not allowed.
	ErrTruncated = errors.New("string too long")

	// ErrNoBlock is reported by New and Init for a missing memory block.
	ErrNoBlock = errors.New("no memory block")
)

// ParseError is the concrete type of errors reported by Parse.
//
// A *ParseError returned by Parse refers to storage inside the Parser, and is
// only valid until the next call to Parse or Reset.
type ParseError struct {
	Err      error   // one of ErrSyntax, ErrOutOfMemory, ErrTooDeep, ErrTruncated
	Offset   int     // byte offset of the input position, 0-based
	Location LineCol // line and column of the input position

	text []byte // the diagnostic message
}

// Error satisfies the error interface. The text is the diagnostic message of
// the parser, for example "Expected colon. Line: 3".
func (e *ParseError) Error() string { return string(e.text) }

// Unwrap supports error wrapping. It returns the class of the error.
func (e *ParseError) Unwrap() error { return e.Err }

// KindError is the concrete type of errors reported by the typed accessors
// of a Key when the key does not hold a value of the requested kind.
type KindError struct {
	Want, Got Kind
}

// Error satisfies the error interface.
func (e *KindError) Error() string {
	return fmt.Sprintf("value is %v, not %v", e.Got, e.Want)
}
