// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package lex provides the character classes, comparisons, and number
// conversion used by the rjson parser. None of the functions in this package
// allocate.
package lex

import "go4.org/mem"

// IsSpace reports whether c is JSON whitespace.
func IsSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

// IsNumStart reports whether c may begin a number.
func IsNumStart(c byte) bool { return c == '-' || IsDigit(c) }

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// HasLiteral reports whether src begins with the len(lit) bytes of lit.
// Only that many bytes of src are examined.
func HasLiteral(src []byte, lit string) bool {
	return mem.HasPrefix(mem.B(src), mem.S(lit))
}

// Equal reports whether a and b contain exactly the same bytes.
func Equal(a []byte, b string) bool { return mem.B(a).EqualString(b) }
