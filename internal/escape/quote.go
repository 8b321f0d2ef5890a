// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// AppendQuote appends src to dst enclosed in double quotation marks, with
// quotes, backslashes, and control bytes escaped, and returns the extended
// slice. Bytes at or above 0x80 are copied unchanged.
//
// Control bytes without a short escape are written as \u00XX. The parser
// does not accept that form; AppendQuote is meant for display.
func AppendQuote(dst []byte, src mem.RO) []byte {
	dst = append(dst, '"')
	for i := 0; i < src.Len(); i++ {
		switch b := src.At(i); {
		case b == '"' || b == '\\':
			dst = append(dst, '\\', b)
		case b < ' ':
			if e := controlEsc[b]; e != 0 {
				dst = append(dst, '\\', e)
			} else {
				dst = append(dst, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
			}
		default:
			dst = append(dst, b)
		}
	}
	return append(dst, '"')
}
