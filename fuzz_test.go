// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package rjson_test

import (
	"errors"
	"testing"

	"github.com/creachadair/rjson"
)

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		`{}`,
		`{"a":1}`,
		`{"a":[1,2.5e-3,"x\n",true,false,null,{"b":[]}]}`,
		`{"x":}`,
		`{"a":01}`,
		"{\n\"k\":\"\\t\"\n}",
	} {
		f.Add([]byte(seed))
	}
	f.Fuzz(func(t *testing.T, input []byte) {
		p, err := rjson.New(make([]byte, 1<<12))
		if err != nil {
			t.Fatalf("New: unexpected error: %v", err)
		}
		err = p.Parse(input)
		if err == nil {
			if !p.Root().IsValid() {
				t.Fatalf("Parse %#q: succeeded with invalid root", input)
			}
			walk(p.Root())
			return
		}
		var perr *rjson.ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("Parse %#q: got error %T, want *ParseError", input, err)
		}
		if p.Root().IsValid() {
			t.Fatalf("Parse %#q: failed with valid root", input)
		}
		if len(p.Message()) > rjson.MaxStringSize {
			t.Fatalf("Message too long: %d bytes", len(p.Message()))
		}
	})
}

// walk visits every key reachable from obj.
func walk(obj rjson.Object) {
	for _, k := range obj.Keys() {
		k.Name()
		if sub, ok := k.Value().(rjson.Object); ok {
			walk(sub)
		}
	}
}
