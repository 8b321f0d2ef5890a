// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package lex

// Pow returns base raised to the integer power exp. A negative exponent is
// handled by taking the reciprocal of base first.
func Pow(base float64, exp int) float64 {
	switch exp {
	case 0:
		return 1
	case 1:
		return base
	case -1:
		return 1 / base
	}
	if exp < 0 {
		base = 1 / base
		exp = -exp
	}
	result := 1.0
	for exp != 0 {
		if exp%2 == 1 {
			result *= base
		}
		base *= base
		exp /= 2
	}
	return result
}

// maxExponent bounds the accumulated exponent; beyond it every float64
// underflows to zero or overflows to infinity anyway.
const maxExponent = 1 << 16

// numState is the sub-state of ParseNumber.
type numState byte

const (
	readInteger numState = iota
	readFraction
	readExponent
)

// ParseNumber converts text to a float64 according to the grammar
//
//	['-'] digits ['.' digits] [('e'|'E') ['-'] digits]
//
// Digits accumulate left to right; the fractional digits are scaled once at
// the end, and the exponent is applied with Pow. A multi-digit integer part
// with a leading zero is rejected, and so is a "+" in the exponent.
// ParseNumber reports false if text does not match the grammar.
func ParseNumber(text []byte) (float64, bool) {
	if len(text) == 0 {
		return 0, false
	}
	pos, sign := 0, 1.0
	if text[0] == '-' {
		pos, sign = 1, -1
	}
	if hasExtraLeadingZeroes(text[pos:]) {
		return 0, false
	}

	var (
		state    = readInteger
		value    float64
		fraction float64
		scale    = 1.0
		exp      int
		expSign  = 1
		nd       int // digits seen in the current part
	)
	for ; pos < len(text); pos++ {
		c := text[pos]
		switch state {
		case readInteger:
			if IsDigit(c) {
				value = float64(c-'0') + value*10
				nd++
			} else if c == '.' && nd != 0 {
				state, nd = readFraction, 0
			} else if (c == 'e' || c == 'E') && nd != 0 {
				state, nd = readExponent, 0
			} else {
				return 0, false
			}

		case readFraction:
			if IsDigit(c) {
				fraction = float64(c-'0') + fraction*10
				scale /= 10
				nd++
			} else if (c == 'e' || c == 'E') && nd != 0 {
				state, nd = readExponent, 0
			} else {
				return 0, false
			}

		case readExponent:
			if c == '-' && nd == 0 && expSign == 1 {
				expSign = -1
			} else if IsDigit(c) {
				if exp < maxExponent {
					exp = int(c-'0') + exp*10
				}
				nd++
			} else {
				return 0, false
			}
		}
	}
	if nd == 0 {
		return 0, false // "-", "1.", "1e", "1e-"
	}

	result := (value + fraction*scale) * sign
	// A zero mantissa stays zero even when the scale overflows.
	if state == readExponent && result != 0 {
		result *= Pow(10, exp*expSign)
	}
	return result, true
}

// hasExtraLeadingZeroes reports whether the digits at the front of buf have a
// redundant leading zero.
//
// OK: 0, 0.1, 0e5. Bad: 01, 00.1.
func hasExtraLeadingZeroes(buf []byte) bool {
	return len(buf) > 1 && buf[0] == '0' && IsDigit(buf[1])
}
