// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"fmt"

	"github.com/creachadair/rjson/internal/arena"
	"github.com/creachadair/rjson/internal/escape"
	"github.com/creachadair/rjson/internal/lex"
)

const (
	// MaxStringSize is the capacity in bytes of the buffers for pending names,
	// pending values, and diagnostic messages.
	MaxStringSize = 256

	// MaxDepth is the maximum nesting depth of objects and arrays, counting
	// the root object.
	MaxDepth = 256
)

// Metrics reports the usage of the memory block of a Parser.
type Metrics = arena.Metrics

// A Parser parses JSON documents into an object graph stored in a memory
// block supplied by the caller. The parser does not allocate while parsing.
//
// The block is never rewound implicitly: each call to Parse allocates after
// the documents parsed before it, so the objects of earlier documents remain
// valid. Call Rewind to reclaim the whole block.
//
// A Parser is not safe for concurrent use. Once Parse returns, the resulting
// graph may be read concurrently until the next call to Parse.
type Parser struct {
	arena arena.Arena
	lossy bool // silently drop text past MaxStringSize

	state   state
	mode    mode
	name    scratch // pending member name
	value   scratch // pending string or number value
	stack   [MaxDepth]uint32
	depth   int
	pending uint32 // root object of the current parse
	done    bool   // the root object has been closed
	oom     bool

	root   Object // root of the last successful parse
	loc    LineCol
	offset int

	diag  [MaxStringSize]byte
	ndiag int
	err   ParseError
}

// New constructs a Parser that stores its results in block. It reports an
// error if block is nil or too large to address.
func New(block []byte) (*Parser, error) {
	p := new(Parser)
	if err := p.Init(block); err != nil {
		return nil, err
	}
	return p, nil
}

// Init binds p to block, discarding all previous state and settings.
func (p *Parser) Init(block []byte) error {
	if block == nil {
		return ErrNoBlock
	} else if uint64(len(block)) > arena.MaxSize {
		return fmt.Errorf("block size %d exceeds maximum %d", len(block), uint64(arena.MaxSize))
	}
	*p = Parser{}
	p.arena.Init(block)
	p.Reset()
	return nil
}

// AllowTruncation configures the parser to silently truncate (true) or reject
// (false) names and values longer than MaxStringSize bytes. The default is to
// reject them with an error of class ErrTruncated.
func (p *Parser) AllowTruncation(ok bool) { p.lossy = ok }

// Reset clears the transient state of the parser, including the root and the
// last diagnostic. It does not reclaim any space in the block; objects from
// earlier parses remain valid. Parse calls Reset automatically.
func (p *Parser) Reset() {
	p.state = searchOpenBracket
	p.mode = readName
	p.name.reset()
	p.value.reset()
	p.depth = 0
	p.pending = nilRef
	p.done = false
	p.oom = false
	p.root = Object{}
	p.loc = LineCol{Line: 1}
	p.offset = 0
	p.ndiag = 0
	p.err = ParseError{}
}

// Rewind resets p and reclaims the whole block. All objects and keys from
// earlier parses are invalidated and must not be used after Rewind.
func (p *Parser) Rewind() {
	p.Reset()
	p.arena.Rewind()
}

// Usage reports the current usage of the memory block.
func (p *Parser) Usage() Metrics { return p.arena.Metrics() }

// Root returns the root object of the last successful parse. It is invalid if
// the last parse failed, or no parse has been done.
func (p *Parser) Root() Object { return p.root }

// Message returns the diagnostic message of the last failed parse, or "" if
// the last parse succeeded.
func (p *Parser) Message() string { return string(p.diag[:p.ndiag]) }

// ParseString is a convenience wrapper for Parse.
func (p *Parser) ParseString(text string) error {
	return p.Parse([]byte(text))
}

// Parse parses text, which must consist of a single JSON object surrounded by
// optional whitespace. Any other text after the object is a syntax error.
// On success, the resulting graph is available from Root. In case of error,
// the concrete type of the error is *ParseError, which remains valid until
// the next call to Parse or Reset.
//
// Parse does not retain text; all names and values are copied into the block.
func (p *Parser) Parse(text []byte) error {
	p.Reset()
	for len(text) > 0 {
		n, err := p.step(text)
		if err != nil {
			return err
		} else if p.oom {
			return p.outOfMemory()
		}
		p.advance(text[:n])
		text = text[n:]
	}
	if !p.done {
		switch {
		case p.state.inString():
			return p.fail(ErrSyntax, msgUnterminated)
		case p.state == searchOpenBracket:
			return p.fail(ErrSyntax, msgOpenBracket)
		default:
			return p.fail(ErrSyntax, msgCloseOrComma)
		}
	}
	p.root = objectAt(&p.arena, p.pending)
	return nil
}

// step performs a single transition of the state machine for the input at
// the front of src, which is not empty. It returns the number of bytes of src
// consumed. A transition may consume nothing, leaving the byte for the next.
func (p *Parser) step(src []byte) (int, error) {
	c := src[0]
	switch p.state {
	case searchOpenBracket:
		if lex.IsSpace(c) {
			return 1, nil
		} else if c != '{' {
			return 0, p.fail(ErrSyntax, msgOpenBracket)
		}
		if err := p.open(false); err != nil {
			return 0, err
		}
		p.state = searchTokenString

	case searchTokenString:
		if lex.IsSpace(c) {
			return 1, nil
		} else if c == '"' {
			p.mode = readName
			p.name.reset()
			p.state = readValueString
		} else if c == '}' && p.isEmpty() {
			p.pop()
		} else {
			return 0, p.fail(ErrSyntax, msgQuote)
		}

	case searchColon:
		if lex.IsSpace(c) {
			return 1, nil
		} else if c != ':' {
			return 0, p.fail(ErrSyntax, msgColon)
		}
		p.state = searchValue

	case searchValue:
		return p.searchValue(src)

	case readValueString:
		switch c {
		case '"':
			if p.mode == readName {
				p.state = searchColon
			} else if err := p.pushString(); err != nil {
				return 0, err
			} else {
				p.state = searchEnd
			}
		case '\\':
			p.state = readValueStringControl
		default:
			if err := p.addByte(c); err != nil {
				return 0, err
			}
		}

	case readValueStringControl:
		d, ok := escape.Control(c)
		if !ok {
			return 0, p.fail(ErrSyntax, msgControl)
		} else if err := p.addByte(d); err != nil {
			return 0, err
		}
		p.state = readValueString

	case readValueNumber:
		if lex.IsSpace(c) || c == ',' || c == '}' || c == ']' {
			if err := p.pushNumber(); err != nil {
				return 0, err
			}
			p.state = searchEnd
			return 0, nil
		} else if err := p.addByte(c); err != nil {
			return 0, err
		}

	case searchEnd:
		return p.searchEnd(c)

	default:
		panic(fmt.Sprintf("invalid parser state %v", p.state))
	}
	return 1, nil
}

func (p *Parser) searchValue(src []byte) (int, error) {
	c := src[0]
	switch {
	case lex.IsSpace(c):
		return 1, nil

	case c == '"':
		p.mode = readValue
		p.value.reset()
		p.state = readValueString

	case lex.IsNumStart(c):
		p.mode = readValue
		p.value.reset()
		p.value.add(c)
		p.state = readValueNumber

	case c == '{':
		if err := p.open(false); err != nil {
			return 0, err
		}
		p.state = searchTokenString

	case c == '[':
		if err := p.open(true); err != nil {
			return 0, err
		}
		p.state = searchValue

	case c == ']' && p.isArray() && p.isEmpty():
		p.pop()

	case lex.HasLiteral(src, "true"):
		return 4, p.literal(p.pushBool(true))
	case lex.HasLiteral(src, "false"):
		return 5, p.literal(p.pushBool(false))
	case lex.HasLiteral(src, "null"):
		return 4, p.literal(p.pushNull())

	default:
		return 0, p.fail(ErrSyntax, msgValue)
	}
	return 1, nil
}

func (p *Parser) literal(err error) error {
	if err == nil {
		p.state = searchEnd
	}
	return err
}

func (p *Parser) searchEnd(c byte) (int, error) {
	if lex.IsSpace(c) {
		return 1, nil
	} else if p.done {
		return 0, p.fail(ErrSyntax, msgTrailing)
	}
	switch c {
	case ',':
		if p.isArray() {
			p.state = searchValue
		} else {
			p.state = searchTokenString
		}
	case '}':
		if p.isArray() {
			return 0, p.fail(ErrSyntax, msgSquare)
		}
		p.pop()
	case ']':
		if !p.isArray() {
			return 0, p.fail(ErrSyntax, msgCloseBracket)
		}
		p.pop()
	default:
		return 0, p.fail(ErrSyntax, msgCloseOrComma)
	}
	return 1, nil
}

// addByte adds c to the active scratch buffer.
func (p *Parser) addByte(c byte) error {
	buf := &p.name
	if p.mode == readValue {
		buf = &p.value
	}
	if !buf.add(c) && !p.lossy {
		return p.fail(ErrTruncated, msgTooLong)
	}
	return nil
}

// top returns the offset of the innermost open container.
func (p *Parser) top() uint32 { return p.stack[p.depth-1] }

// pop closes the innermost open container. Closing the root ends the parse.
func (p *Parser) pop() {
	p.depth--
	p.state = searchEnd
	if p.depth == 0 {
		p.done = true
	}
}

func (p *Parser) isArray() bool {
	return p.depth > 0 && p.arena.Uint32(p.top()+objFlags)&flagArray != 0
}

func (p *Parser) isEmpty() bool {
	return p.arena.Uint32(p.top()+objFirst) == nilRef
}
