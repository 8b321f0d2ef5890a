// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package rjson

// Diagnostic descriptions. The line number is appended when they are logged.
const (
	msgOpenBracket  = "Expected open bracket."
	msgQuote        = "Expected quote."
	msgColon        = "Expected colon."
	msgValue        = "Expected value: number, array, object, boolean or null."
	msgControl      = "Expected control character."
	msgNumber       = "Error while parsing number."
	msgSquare       = "Expected square bracket."
	msgCloseBracket = "Expected close bracket."
	msgCloseOrComma = "Expected close bracket or comma character."
	msgUnterminated = "Unterminated string."
	msgTrailing     = "Unexpected text after object."
	msgTooLong      = "String too long."
	msgTooDeep      = "Maximum nesting depth exceeded."
	msgOutOfMemory  = "Out of memory."
)

const lineSep = " Line: "

// log records msg followed by the current line number in the diagnostic
// buffer. Text that does not fit is silently dropped.
func (p *Parser) log(msg string) {
	n := copy(p.diag[:], msg)
	n += copy(p.diag[n:], lineSep)
	p.ndiag = putDecimal(p.diag[:], n, p.loc.Line)
}

// putDecimal writes v in decimal at buf[n:], dropping digits that do not fit,
// and returns the new length. Digits are produced by division against
// descending powers of ten; zeros are skipped until the first nonzero digit.
func putDecimal(buf []byte, n, v int) int {
	var seen bool
	for div := 1_000_000_000; div != 0 && n < len(buf); div /= 10 {
		d := v / div
		v %= div
		if d == 0 && !seen && div != 1 {
			continue
		}
		seen = true
		buf[n] = byte('0' + d)
		n++
	}
	return n
}

// fail records a diagnostic for msg in class err, and returns the resulting
// error. The parse must be abandoned.
func (p *Parser) fail(err error, msg string) error {
	p.log(msg)
	p.err = ParseError{
		Err:      err,
		Offset:   p.offset,
		Location: p.loc,
		text:     p.diag[:p.ndiag],
	}
	return &p.err
}

func (p *Parser) outOfMemory() error {
	p.oom = true
	return p.fail(ErrOutOfMemory, msgOutOfMemory)
}
