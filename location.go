// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rjson

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// advance updates the position of p to account for consuming src.
// Each newline is counted once, when it is consumed.
func (p *Parser) advance(src []byte) {
	for _, c := range src {
		if c == '\n' {
			p.loc.Line++
			p.loc.Column = 0
		} else {
			p.loc.Column++
		}
	}
	p.offset += len(src)
}
