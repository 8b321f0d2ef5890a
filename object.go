// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"fmt"
	"iter"
	"math"

	"github.com/creachadair/rjson/internal/arena"
	"github.com/creachadair/rjson/internal/escape"
	"github.com/creachadair/rjson/internal/lex"
	"go4.org/mem"
)

// Layout of an object record in the arena.
//
//	first uint32 | last uint32 | flags uint32
const (
	objFirst = 0
	objLast  = 4
	objFlags = 8
	objSize  = 12

	flagArray = 1
)

// Layout of a key record in the arena. The payload depends on the kind:
// string (off, len uint32), object (off uint32), number (float64 bits),
// boolean (byte 0 or 1), null (unused).
//
//	name uint32 | nameLen uint32 | next uint32 | kind byte, pad [3] | payload [8]
const (
	keyName    = 0
	keyNameLen = 4
	keyNext    = 8
	keyKind    = 12
	keyData    = 16
	keySize    = 24
)

// nilRef marks an absent reference in a record.
const nilRef = arena.Nil

// An Object is a read-only handle to a JSON object or array stored in the
// arena of a Parser. The zero Object is invalid.
//
// The keys of an object are kept in declaration order. The keys of an array
// have no names.
type Object struct {
	a   *arena.Arena
	off uint32
}

func objectAt(a *arena.Arena, off uint32) Object {
	if off == nilRef {
		return Object{}
	}
	return Object{a: a, off: off}
}

// IsValid reports whether o refers to an object.
func (o Object) IsValid() bool { return o.a != nil }

// IsArray reports whether o is an array.
func (o Object) IsArray() bool {
	return o.IsValid() && o.a.Uint32(o.off+objFlags)&flagArray != 0
}

func (o Object) first() Key {
	if !o.IsValid() {
		return Key{}
	}
	return keyAt(o.a, o.a.Uint32(o.off+objFirst))
}

// Find returns the first key of o with the given name, and reports whether
// it was found. Later keys with the same name are shadowed. Array entries
// have no names, so Find never matches in an array.
func (o Object) Find(name string) (Key, bool) {
	for k := o.first(); k.IsValid(); k = k.next() {
		if nm, ok := k.rawName(); ok && lex.Equal(nm, name) {
			return k, true
		}
	}
	return Key{}, false
}

// Index returns the key at offset i of o (0-based), and reports whether it
// exists.
func (o Object) Index(i int) (Key, bool) {
	if i < 0 {
		return Key{}, false
	}
	for k := o.first(); k.IsValid(); k = k.next() {
		if i == 0 {
			return k, true
		}
		i--
	}
	return Key{}, false
}

// Len returns the number of keys in o. It takes time proportional to the
// result.
func (o Object) Len() int {
	var n int
	for k := o.first(); k.IsValid(); k = k.next() {
		n++
	}
	return n
}

// Keys returns an iterator over the offsets and keys of o, in order.
func (o Object) Keys() iter.Seq2[int, Key] {
	return func(yield func(int, Key) bool) {
		var i int
		for k := o.first(); k.IsValid(); k = k.next() {
			if !yield(i, k) {
				return
			}
			i++
		}
	}
}

// A Key is a read-only handle to a single entry of an Object. An entry has a
// name (unless it belongs to an array) and a value. The zero Key is invalid.
type Key struct {
	a   *arena.Arena
	off uint32
}

func keyAt(a *arena.Arena, off uint32) Key {
	if off == nilRef {
		return Key{}
	}
	return Key{a: a, off: off}
}

// IsValid reports whether k refers to a key.
func (k Key) IsValid() bool { return k.a != nil }

func (k Key) next() Key { return keyAt(k.a, k.a.Uint32(k.off+keyNext)) }

func (k Key) rawName() ([]byte, bool) {
	off := k.a.Uint32(k.off + keyName)
	if off == nilRef {
		return nil, false
	}
	return k.a.Bytes(off, k.a.Uint32(k.off+keyNameLen)), true
}

// Name returns the name of k and reports whether k has one. Keys of an array
// have no name. The result is a view of the arena.
func (k Key) Name() (mem.RO, bool) {
	if !k.IsValid() {
		return mem.RO{}, false
	}
	nm, ok := k.rawName()
	return mem.B(nm), ok
}

// Kind reports the kind of the value of k. An invalid key reports
// KindInvalid.
func (k Key) Kind() Kind {
	if !k.IsValid() {
		return KindInvalid
	}
	return Kind(k.a.Byte(k.off + keyKind))
}

// Is reports whether k is valid and its value has the given kind.
func (k Key) Is(kind Kind) bool { return k.IsValid() && k.Kind() == kind }

// Value returns the value of k. Use a type switch to distinguish the
// concrete types. An invalid key has a nil value.
func (k Key) Value() Value {
	switch k.Kind() {
	case KindString:
		return StringValue{Text: k.text()}
	case KindObject:
		return k.object()
	case KindNumber:
		return NumberValue(k.number())
	case KindBool:
		return BoolValue(k.boolean())
	case KindNull:
		return NullValue{}
	default:
		return nil
	}
}

func (k Key) text() mem.RO {
	off, n := k.a.Uint32(k.off+keyData), k.a.Uint32(k.off+keyData+4)
	return mem.B(k.a.Bytes(off, n))
}

func (k Key) object() Object  { return objectAt(k.a, k.a.Uint32(k.off+keyData)) }
func (k Key) number() float64 { return math.Float64frombits(k.a.Uint64(k.off + keyData)) }
func (k Key) boolean() bool   { return k.a.Byte(k.off+keyData) != 0 }

// AsText returns a view of the string value of k, or a *KindError if k does
// not hold a string.
func (k Key) AsText() (mem.RO, error) {
	if err := k.check(KindString); err != nil {
		return mem.RO{}, err
	}
	return k.text(), nil
}

// AsString returns a copy of the string value of k, or a *KindError if k does
// not hold a string.
func (k Key) AsString() (string, error) {
	t, err := k.AsText()
	if err != nil {
		return "", err
	}
	return t.StringCopy(), nil
}

// AsNumber returns the numeric value of k, or a *KindError if k does not hold
// a number.
func (k Key) AsNumber() (float64, error) {
	if err := k.check(KindNumber); err != nil {
		return 0, err
	}
	return k.number(), nil
}

// AsBool returns the Boolean value of k, or a *KindError if k does not hold a
// Boolean.
func (k Key) AsBool() (bool, error) {
	if err := k.check(KindBool); err != nil {
		return false, err
	}
	return k.boolean(), nil
}

// AsObject returns the object or array value of k, or a *KindError if k does
// not hold one.
func (k Key) AsObject() (Object, error) {
	if err := k.check(KindObject); err != nil {
		return Object{}, err
	}
	return k.object(), nil
}

func (k Key) check(want Kind) error {
	if got := k.Kind(); got != want {
		return &KindError{Want: want, Got: got}
	}
	return nil
}

// String renders k for debugging, as its quoted name (if any) and the kind
// of its value.
func (k Key) String() string {
	if !k.IsValid() {
		return "<invalid key>"
	}
	if nm, ok := k.Name(); ok {
		return fmt.Sprintf("%s: %v", escape.AppendQuote(nil, nm), k.Kind())
	}
	return k.Kind().String()
}
