// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the object graph of a parsed JSON
// document.
package cursor

import (
	"fmt"
	"math"

	"github.com/creachadair/rjson"
)

// Path traverses a sequential path into the structure of obj where path
// elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its value.
func Path[T rjson.Value](obj rjson.Object, path ...any) (T, error) {
	c := New(obj).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	v, ok := c.Value().(T)
	if !ok {
		return result, fmt.Errorf("wrong value type %T", c.Value())
	}
	return v, nil
}

// Native is the set of Go types that As can convert a value to.
type Native interface {
	string | float64 | int | bool
}

// As returns the value of k converted to T. It reports an error if k does not
// hold a value of the corresponding kind. An int is accepted only for a number
// with no fractional part that fits in an int.
func As[T Native](k rjson.Key) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *string:
		*p, err = k.AsString()
	case *float64:
		*p, err = k.AsNumber()
	case *bool:
		*p, err = k.AsBool()
	case *int:
		var f float64
		if f, err = k.AsNumber(); err == nil {
			if f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
				return out, fmt.Errorf("number %v is not an int", f)
			}
			*p = int(f)
		}
	}
	return out, err
}

// A Cursor is a pointer that navigates into the structure of an rjson.Object.
type Cursor struct {
	org rjson.Object
	stk []rjson.Key
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
// It panics if origin is not valid.
func New(origin rjson.Object) *Cursor {
	if !origin.IsValid() {
		panic("cursor: invalid origin")
	}
	return &Cursor{org: origin}
}

// Origin returns the origin object of c.
func (c *Cursor) Origin() rjson.Object { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Key reports the key under the cursor. At the origin the key is invalid.
func (c *Cursor) Key() rjson.Key {
	if c.AtOrigin() {
		return rjson.Key{}
	}
	return c.stk[len(c.stk)-1]
}

// Value reports the value under the cursor: the origin, or the value of the
// current key.
func (c *Cursor) Value() rjson.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.Key().Value()
}

// Path reports the complete sequence of keys from the origin to the current
// location in c.
func (c *Cursor) Path() []rjson.Key { return append([]rjson.Key(nil), c.stk...) }

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are either strings (denoting object
// keys), integers (denoting offsets into arrays or objects), or functions
// (see below). If the path is valid, the cursor ends on the key reached. If
// the path cannot be completely consumed, traversal stops and an error is
// recorded. Use Err to recover the error.
//
// If a path element is a string, the current value must be an object, and the
// string resolves the first key with that name.
//
// If a path element is an integer, the current value must be an array or
// object, and the integer resolves to an index in the array or object.
// Negative indices count backward from the end (-1 is last, -2 second last).
// An error is reported if the index is out of bounds.
//
// If a path element is a function, the current value must be an array or
// object, and the function is executed on it. Its result becomes the next
// key in the sequence. The function must have a signature
//
//	func(rjson.Object) (rjson.Key, error)
//
// If the function reports an error, traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	for _, elt := range path {
		obj, ok := c.Value().(rjson.Object)
		if !ok {
			return c.setErrorf("cannot traverse %v with %v", c.Key().Kind(), elt)
		}

		switch t := elt.(type) {
		case string:
			if obj.IsArray() {
				return c.setErrorf("cannot traverse array with %q", t)
			}
			k, ok := obj.Find(t)
			if !ok {
				return c.setErrorf("key %q not found", t)
			}
			c.push(k)

		case int:
			n := obj.Len()
			i, ok := fixArrayBound(n, t)
			if !ok {
				return c.setErrorf("index %d out of bounds (n=%d)", t, n)
			}
			k, _ := obj.Index(i)
			c.push(k)

		case func(rjson.Object) (rjson.Key, error):
			k, err := t(obj)
			if err != nil {
				c.err = err
				return c
			} else if !k.IsValid() {
				return c.setErrorf("path function returned an invalid key")
			}
			c.push(k)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(k rjson.Key) { c.stk = append(c.stk, k) }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
