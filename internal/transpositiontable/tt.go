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

// Package transpositiontable implements a 4-way bucketed transposition table
// (cache) for a chess engine search. The TtTable type is not thread safe and
// needs to be synchronized externally if used from multiple goroutines. This
// is especially relevant for Resize and Clear, which must not be called
// concurrently with a running search.
package transpositiontable

import (
	"math"
	"math/rand"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/mjansen/corvid/internal/logging"
	"github.com/mjansen/corvid/internal/position"
	. "github.com/mjansen/corvid/internal/types"
	"github.com/mjansen/corvid/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB is the maximal memory usage of the tt.
	MaxSizeInMB = 65_536

	// maxAge is the number of root searches an entry survives without being
	// refreshed before it is evicted during AgeEntries.
	maxAge = 31
)

// TtTable is the actual transposition table object holding data and state.
// Create with NewTtTable().
type TtTable struct {
	log                *logging.Logger
	data               []ttBucket
	sizeInByte         uint64
	hashKeyMask        uint64 // mask selecting the bucket index from a key's low bits
	maxNumberOfBuckets uint64
	maxNumberOfEntries uint64 // maxNumberOfBuckets * BucketSize
	numberOfEntries    uint64
	rng                *rand.Rand
	Stats              TtStats
}

// TtStats holds statistical data on tt usage.
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable with the given number of megabytes as a
// maximum memory budget. The actual bucket count is the largest power of 2
// that fits, since bit-mask addressing needs a power-of-2 table size.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{
		log: myLogging.GetLog(),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the tt table. All entries will be cleared.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	bucketSizeInByte := uint64(BucketSize * TtEntrySize)
	tt.sizeInByte = uint64(sizeInMByte) * MB
	if tt.sizeInByte < bucketSizeInByte {
		tt.maxNumberOfBuckets = 0
	} else {
		tt.maxNumberOfBuckets = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/bucketSizeInByte))))
	}
	tt.hashKeyMask = tt.maxNumberOfBuckets - 1
	tt.maxNumberOfEntries = tt.maxNumberOfBuckets * BucketSize
	tt.sizeInByte = tt.maxNumberOfBuckets * bucketSizeInByte

	tt.data = make([]ttBucket, tt.maxNumberOfBuckets)
	for i := range tt.data {
		tt.data[i] = newTtBucket()
	}
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}

	tt.log.Info(out.Sprintf("TT Size %d MByte, %d buckets of %d entries (%d Byte each) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfBuckets, BucketSize, unsafe.Sizeof(TtEntry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// bucketIndex returns the index of the bucket a key maps to.
func (tt *TtTable) bucketIndex(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}

// tagOf returns the 32-bit verification tag for a key.
func tagOf(key position.Key) uint32 {
	return uint32(uint64(key) >> 32)
}

// findSlot scans a bucket for a slot matching tag, returning nil if none is
// found. Does not touch statistics.
func findSlot(bucket *ttBucket, tag uint32) *TtEntry {
	for i := range bucket {
		if !bucket[i].empty() && bucket[i].Tag == tag {
			return &bucket[i]
		}
	}
	return nil
}

// GetEntry returns a pointer to the entry matching key's tag in its bucket,
// or nil if no slot in the bucket carries a matching tag. Does not change
// statistics or age.
func (tt *TtTable) GetEntry(key position.Key) *TtEntry {
	if tt.maxNumberOfBuckets == 0 {
		return nil
	}
	bucket := &tt.data[tt.bucketIndex(key)]
	return findSlot(bucket, tagOf(key))
}

// Probe returns a pointer to the entry matching key's tag, or nil on a miss.
// On a hit the entry's age is reset to 0, since it is about to be used.
func (tt *TtTable) Probe(key position.Key) *TtEntry {
	tt.Stats.numberOfProbes++
	if tt.maxNumberOfBuckets == 0 {
		tt.Stats.numberOfMisses++
		return nil
	}
	bucket := &tt.data[tt.bucketIndex(key)]
	e := findSlot(bucket, tagOf(key))
	if e == nil {
		tt.Stats.numberOfMisses++
		return nil
	}
	tt.Stats.numberOfHits++
	e.Age = 0
	return e
}

// Put stores an entry into the bucket selected by key. Per slot, in order:
// a slot with a matching tag is updated in place; otherwise an empty slot is
// used; otherwise a pseudo-randomly chosen slot in the bucket is evicted.
// Age is reset to 0 on every store. ValueNA preserves an existing Eval or
// Value when updating an entry in place; MoveNone preserves an existing Move.
func (tt *TtTable) Put(key position.Key, move Move, depth int8, value Value, valueType ValueType, eval Value, ply int) {
	if tt.maxNumberOfBuckets == 0 {
		return
	}

	tt.Stats.numberOfPuts++
	tag := tagOf(key)
	bucket := &tt.data[tt.bucketIndex(key)]

	if e := findSlot(bucket, tag); e != nil {
		tt.Stats.numberOfUpdates++
		if move != MoveNone {
			e.Move = move
		}
		if eval != ValueNA {
			e.Eval = int16(eval)
		}
		if value != ValueNA {
			e.Value = int16(value)
			e.Depth = depth
			e.Ply = int8(ply)
			e.Type = valueType
		}
		e.Age = 0
		return
	}

	var target *TtEntry
	for i := range bucket {
		if bucket[i].empty() {
			target = &bucket[i]
			break
		}
	}
	if target == nil {
		tt.Stats.numberOfCollisions++
		target = &bucket[tt.rng.Intn(BucketSize)]
		tt.Stats.numberOfOverwrites++
	} else {
		tt.numberOfEntries++
	}

	target.Tag = tag
	target.Move = move
	if eval == ValueNA {
		eval = 0
	}
	target.Eval = int16(eval)
	target.Value = int16(value)
	target.Depth = depth
	target.Ply = int8(ply)
	target.Type = valueType
	target.Age = 0
}

// Clear clears all entries of the tt.
func (tt *TtTable) Clear() {
	tt.data = make([]ttBucket, tt.maxNumberOfBuckets)
	for i := range tt.data {
		tt.data[i] = newTtBucket()
	}
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the transposition table is in permill as per UCI.
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// String returns a string representation of this TtTable instance.
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of non-empty entries in the tt.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// AgeEntries ages every occupied entry by one generation and evicts entries
// that have gone stale across too many root searches. This keeps the table
// fresh across successive positions of a game without a full Clear.
// Work is split across goroutines, one per slice of buckets, since this can
// run concurrently with nothing else touching the table.
func (tt *TtTable) AgeEntries() {
	startTime := time.Now()
	if tt.numberOfEntries > 0 {
		numberOfGoroutines := uint64(32)
		if numberOfGoroutines > tt.maxNumberOfBuckets {
			numberOfGoroutines = tt.maxNumberOfBuckets
		}
		if numberOfGoroutines == 0 {
			return
		}
		var wg sync.WaitGroup
		var evicted uint64
		var evictedMu sync.Mutex
		wg.Add(int(numberOfGoroutines))
		slice := tt.maxNumberOfBuckets / numberOfGoroutines
		for i := uint64(0); i < numberOfGoroutines; i++ {
			go func(i uint64) {
				defer wg.Done()
				start := i * slice
				end := start + slice
				if i == numberOfGoroutines-1 {
					end = tt.maxNumberOfBuckets
				}
				localEvicted := uint64(0)
				for n := start; n < end; n++ {
					bucket := &tt.data[n]
					for s := range bucket {
						e := &bucket[s]
						if e.empty() {
							continue
						}
						if e.Age >= maxAge {
							e.clear()
							localEvicted++
							continue
						}
						e.Age++
					}
				}
				if localEvicted > 0 {
					evictedMu.Lock()
					evicted += localEvicted
					evictedMu.Unlock()
				}
			}(i)
		}
		wg.Wait()
		tt.numberOfEntries -= evicted
	}
	elapsed := time.Since(startTime)
	tt.log.Debug(out.Sprintf("Aged %d entries of %d buckets in %d ms\n", tt.numberOfEntries, len(tt.data), elapsed.Milliseconds()))
}
