// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package rjson implements a JSON parser that stores its results in a fixed
// block of memory supplied by the caller, and does not allocate while parsing.
//
// # Parsing
//
// Construct a Parser from a block, and call its Parse method. Every object,
// key, name, and string value of the document is copied into the block:
//
//	p, err := rjson.New(make([]byte, 1<<20))
//	if err != nil {
//	   log.Fatalf("New: %v", err)
//	}
//	if err := p.Parse(input); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	root := p.Root()
//
// The input must be a single object. Arrays, strings, numbers, and the
// constants true, false, and null are accepted as values within it. String
// escapes are limited to \" \\ \/ \b \f \n \r \t; \u escapes are rejected.
// Numbers are stored as float64, and an exponent sign, if present, must be
// "-".
//
// # Errors
//
// In case of error, Parse returns a *ParseError. Its Err field is one of the
// sentinel errors ErrSyntax, ErrOutOfMemory, ErrTooDeep, or ErrTruncated, so
// the class of error can be checked with errors.Is:
//
//	if errors.Is(err, rjson.ErrOutOfMemory) {
//	   log.Print("The block is too small")
//	}
//
// The text of the error, also available from the Message method of the
// parser, has the form "Expected colon. Line: 3".
//
// # Objects and Keys
//
// The results of a parse are read-only handles into the block. An Object is
// a JSON object or array; a Key is one entry of an Object, holding an
// optional name and a value. Keys are kept in the order of the input:
//
//	k, ok := root.Find("name")     // first key with this name
//	v, ok := root.Index(2)         // third key of the object
//	for i, k := range root.Keys() {
//	   // ...
//	}
//
// The Value method of a Key returns one of StringValue, NumberValue,
// BoolValue, NullValue, or Object. The typed getters AsString, AsText,
// AsNumber, AsBool, and AsObject report a *KindError if the key holds a value
// of a different kind.
//
// # Memory
//
// A Parser never rewinds its block implicitly. Each call to Parse allocates
// after the space used by earlier documents, and the handles from those
// documents remain valid. To reuse the block from the beginning, call Rewind,
// which invalidates all handles previously returned. Usage reports how much
// of the block is in use.
package rjson
