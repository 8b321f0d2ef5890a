// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package rjson

// state is a state of the parsing state machine.
type state byte

const (
	searchOpenBracket      state = iota // before the root object
	searchTokenString                   // member name or close brace
	searchColon                         // after a member name
	searchValue                         // any value, or close bracket of an empty array
	readValueString                     // inside a quoted name or value
	readValueStringControl              // after a backslash in a string
	readValueNumber                     // inside a number
	searchEnd                           // comma or close bracket; after the root, only space
)

var stateStr = [...]string{
	searchOpenBracket:      "SearchOpenBracket",
	searchTokenString:      "SearchTokenString",
	searchColon:            "SearchColon",
	searchValue:            "SearchValue",
	readValueString:        "ReadValueString",
	readValueStringControl: "ReadValueStringControl",
	readValueNumber:        "ReadValueNumber",
	searchEnd:              "SearchEnd",
}

func (s state) String() string {
	if int(s) >= len(stateStr) {
		return "Invalid"
	}
	return stateStr[s]
}

// inString reports whether s is inside a quoted string.
func (s state) inString() bool {
	return s == readValueString || s == readValueStringControl
}

// mode selects which scratch buffer receives the text of a string.
type mode byte

const (
	readName  mode = iota // member name
	readValue             // string or number value
)

// A scratch is a bounded staging buffer for the text of a name or value.
type scratch struct {
	buf [MaxStringSize]byte
	n   int
}

func (s *scratch) reset() { s.n = 0 }

// add appends c to s, and reports false if s was already full.
func (s *scratch) add(c byte) bool {
	if s.n == len(s.buf) {
		return false
	}
	s.buf[s.n] = c
	s.n++
	return true
}

func (s *scratch) bytes() []byte { return s.buf[:s.n] }
