// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package arena implements a bump allocator over a fixed, caller-owned block
// of memory. Allocations are addressed by byte offset rather than by pointer,
// so the records stored in a block contain no Go pointers and the block can
// be an ordinary []byte.
//
// An Arena never frees individual allocations, and it never grows. A request
// that does not fit reports failure and leaves the arena unchanged.
package arena

import (
	"encoding/binary"
	"math"
)

// Align is the alignment of every offset returned by Alloc and AllocText,
// provided all requested sizes are multiples of Align.
const Align = 4

// Nil is an offset that no allocation ever returns. Records stored in a block
// may use it to mark an absent reference.
const Nil = math.MaxUint32

// MaxSize is the largest block an Arena can address. It is one less than Nil
// so that even an empty allocation at the very end has an offset below Nil.
const MaxSize = Nil - 1

// An Arena is a bump allocator over a fixed block. The zero value has no
// capacity; call Init to bind it to a block.
type Arena struct {
	block []byte
	top   uint32
}

// Init binds a to block and sets its high-water mark to zero. Init panics if
// block is longer than MaxSize.
func (a *Arena) Init(block []byte) {
	if uint64(len(block)) > MaxSize {
		panic("arena: block too large")
	}
	a.block = block
	a.top = 0
}

// Alloc reserves n bytes and returns the offset of the reserved region. It
// reports false if the block has fewer than n unreserved bytes. The contents
// of the region are not cleared. Alloc panics if n < 0.
func (a *Arena) Alloc(n int) (uint32, bool) {
	if n < 0 {
		panic("arena: negative allocation size")
	}
	if uint64(a.top)+uint64(n) > uint64(len(a.block)) {
		return 0, false
	}
	off := a.top
	a.top += uint32(n)
	return off, true
}

// AllocText reserves space for a copy of src, padded up to a multiple of
// Align, copies src into it, and returns its offset. The padding bytes are
// not part of the text.
func (a *Arena) AllocText(src []byte) (uint32, bool) {
	off, ok := a.Alloc(padded(len(src)))
	if !ok {
		return 0, false
	}
	copy(a.block[off:], src)
	return off, true
}

// padded rounds n up to a multiple of Align. Empty text reserves no space, and
// its offset is the current top.
func padded(n int) int { return (n + Align - 1) &^ (Align - 1) }

// Bytes returns a view of n bytes of the block starting at off. The capacity
// of the view is clipped so that appending to it cannot clobber the block.
func (a *Arena) Bytes(off, n uint32) []byte {
	end := off + n
	return a.block[off:end:end]
}

// Uint32 reads a little-endian uint32 at off.
func (a *Arena) Uint32(off uint32) uint32 { return binary.LittleEndian.Uint32(a.block[off:]) }

// PutUint32 writes v as a little-endian uint32 at off.
func (a *Arena) PutUint32(off, v uint32) { binary.LittleEndian.PutUint32(a.block[off:], v) }

// Uint64 reads a little-endian uint64 at off.
func (a *Arena) Uint64(off uint32) uint64 { return binary.LittleEndian.Uint64(a.block[off:]) }

// PutUint64 writes v as a little-endian uint64 at off.
func (a *Arena) PutUint64(off uint32, v uint64) { binary.LittleEndian.PutUint64(a.block[off:], v) }

// Byte reads the byte at off.
func (a *Arena) Byte(off uint32) byte { return a.block[off] }

// PutByte writes b at off.
func (a *Arena) PutByte(off uint32, b byte) { a.block[off] = b }

// Top returns the current high-water mark, the offset of the next allocation.
func (a *Arena) Top() int { return int(a.top) }

// Rewind resets the high-water mark to zero. Any offsets handed out before
// the call refer to memory that later allocations will overwrite.
func (a *Arena) Rewind() { a.top = 0 }
