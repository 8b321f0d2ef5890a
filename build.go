// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"math"

	"github.com/creachadair/rjson/internal/lex"
)

// This file constructs the records of the object graph in the arena. Every
// constructor writes all the fields of the records it allocates. On an
// allocation failure the parser is marked out of memory and the constructor
// reports an error of class ErrOutOfMemory.

func (p *Parser) alloc(n int) (uint32, bool) {
	off, ok := p.arena.Alloc(n)
	if !ok {
		p.oom = true
	}
	return off, ok
}

func (p *Parser) allocText(src []byte) (uint32, bool) {
	off, ok := p.arena.AllocText(src)
	if !ok {
		p.oom = true
	}
	return off, ok
}

// newObject allocates an empty object record.
func (p *Parser) newObject(array bool) (uint32, error) {
	off, ok := p.alloc(objSize)
	if !ok {
		return 0, p.outOfMemory()
	}
	var flags uint32
	if array {
		flags = flagArray
	}
	p.arena.PutUint32(off+objFirst, nilRef)
	p.arena.PutUint32(off+objLast, nilRef)
	p.arena.PutUint32(off+objFlags, flags)
	return off, nil
}

// appendKey attaches key at the end of the key list of obj.
func (p *Parser) appendKey(obj, key uint32) {
	if last := p.arena.Uint32(obj + objLast); last == nilRef {
		p.arena.PutUint32(obj+objFirst, key)
	} else {
		p.arena.PutUint32(last+keyNext, key)
	}
	p.arena.PutUint32(obj+objLast, key)
}

// newKey allocates a key record of the given kind, named by the pending name
// unless the current container is an array, and appends it to the current
// container. The caller must fill in the payload.
func (p *Parser) newKey(kind Kind) (uint32, error) {
	off, ok := p.alloc(keySize)
	if !ok {
		return 0, p.outOfMemory()
	}
	name, nlen := uint32(nilRef), uint32(0)
	if !p.isArray() {
		nm := p.name.bytes()
		if name, ok = p.allocText(nm); !ok {
			return 0, p.outOfMemory()
		}
		nlen = uint32(len(nm))
	}
	p.arena.PutUint32(off+keyName, name)
	p.arena.PutUint32(off+keyNameLen, nlen)
	p.arena.PutUint32(off+keyNext, nilRef)
	p.arena.PutUint32(off+keyKind, uint32(kind))
	p.arena.PutUint64(off+keyData, 0)
	p.appendKey(p.top(), off)
	return off, nil
}

func (p *Parser) pushString() error {
	key, err := p.newKey(KindString)
	if err != nil {
		return err
	}
	val := p.value.bytes()
	off, ok := p.allocText(val)
	if !ok {
		return p.outOfMemory()
	}
	p.arena.PutUint32(key+keyData, off)
	p.arena.PutUint32(key+keyData+4, uint32(len(val)))
	return nil
}

func (p *Parser) pushNumber() error {
	v, ok := lex.ParseNumber(p.value.bytes())
	if !ok {
		return p.fail(ErrSyntax, msgNumber)
	}
	key, err := p.newKey(KindNumber)
	if err != nil {
		return err
	}
	p.arena.PutUint64(key+keyData, math.Float64bits(v))
	return nil
}

func (p *Parser) pushBool(v bool) error {
	key, err := p.newKey(KindBool)
	if err != nil {
		return err
	}
	if v {
		p.arena.PutByte(key+keyData, 1)
	}
	return nil
}

func (p *Parser) pushNull() error {
	_, err := p.newKey(KindNull)
	return err
}

// pushObject allocates a new object or array, attaches it to the current
// container, and returns its offset.
func (p *Parser) pushObject(array bool) (uint32, error) {
	key, err := p.newKey(KindObject)
	if err != nil {
		return 0, err
	}
	obj, err := p.newObject(array)
	if err != nil {
		return 0, err
	}
	p.arena.PutUint32(key+keyData, obj)
	return obj, nil
}

// open begins a new object or array and pushes it on the nesting stack. At
// the outermost level the new object becomes the root.
func (p *Parser) open(array bool) error {
	if p.depth == MaxDepth {
		return p.fail(ErrTooDeep, msgTooDeep)
	}
	var obj uint32
	var err error
	if p.depth == 0 {
		obj, err = p.newObject(array)
		p.pending = obj
	} else {
		obj, err = p.pushObject(array)
	}
	if err != nil {
		return err
	}
	p.stack[p.depth] = obj
	p.depth++
	return nil
}
