// Package testutil defines support code for unit tests.
package testutil

import (
	"testing"

	"github.com/creachadair/rjson"
)

// BlockSize is the size of the memory block allocated by MustParse.
const BlockSize = 1 << 16

// MustParse parses input with a new parser and a fresh block of BlockSize
// bytes, and returns the root object. It fails the test if parsing fails.
func MustParse(t testing.TB, input string) rjson.Object {
	t.Helper()
	p, err := rjson.New(make([]byte, BlockSize))
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	if err := p.ParseString(input); err != nil {
		t.Fatalf("Parse %#q: unexpected error: %v", input, err)
	}
	return p.Root()
}

// MustFind returns the key of obj with the given name, or fails the test.
func MustFind(t testing.TB, obj rjson.Object, name string) rjson.Key {
	t.Helper()
	k, ok := obj.Find(name)
	if !ok {
		t.Fatalf("Find %q: key not found", name)
	}
	return k
}
