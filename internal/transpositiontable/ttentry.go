//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package transpositiontable

import (
	. "github.com/mjansen/corvid/internal/types"
)

// TtEntry is one slot of a bucket. Only the high 32 bits of the zobrist key
// are kept (Tag) instead of the full key, which is what lets a 4-way bucket
// fit into a single cache line together with its siblings.
type TtEntry struct {
	Tag   uint32    // high 32 bits of the zobrist key
	Move  Move      // best move found for this position, for move ordering
	Value int16     // search value as seen at Ply, needs mate-distance correction when read
	Eval  int16     // static evaluation, cached independently of Value
	Depth int8      // depth this entry was searched to
	Ply   int8      // search ply this entry was stored at
	Type  ValueType // Vnone (no search bound) / EXACT / ALPHA / BETA
	Age   uint8     // generations since last store or probe hit, reset to 0 on both
}

// TtEntrySize is the size in bytes of a single TtEntry. Four of these make
// up one bucket, which is sized to fit a typical 64-byte cache line.
const TtEntrySize = 16

// BucketSize is the number of TtEntry slots probed and replaced together.
const BucketSize = 4

// ttBucket is the unit of storage and replacement in the table.
type ttBucket [BucketSize]TtEntry

// emptyDepth marks a slot that has never been written or was evicted. A
// store may legitimately carry Type == Vnone (a pure eval-cache write with
// no search bound), so depth rather than type is used as the empty marker.
const emptyDepth = int8(-1)

// empty reports whether this slot has never been written or was evicted.
func (e *TtEntry) empty() bool {
	return e.Depth == emptyDepth
}

func (e *TtEntry) clear() {
	*e = TtEntry{Depth: emptyDepth}
}

// newTtBucket returns a bucket with every slot marked empty.
func newTtBucket() ttBucket {
	var b ttBucket
	for i := range b {
		b[i].Depth = emptyDepth
	}
	return b
}
