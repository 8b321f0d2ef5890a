// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the backslash escapes of JSON strings.
package escape

// controlDec maps the byte after a backslash to the byte it denotes.
// A zero entry marks an unsupported escape.
var controlDec = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Control returns the byte denoted by the escape sequence `\c`, and reports
// whether c names a supported escape. Unicode escapes (`\u`) are not
// supported.
func Control(c byte) (byte, bool) {
	b := controlDec[c]
	return b, b != 0
}
