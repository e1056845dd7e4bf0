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
	"os"
	"path"
	"runtime"
	"testing"
	"unsafe"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/mjansen/corvid/internal/config"
	"github.com/mjansen/corvid/internal/logging"
	"github.com/mjansen/corvid/internal/position"
	. "github.com/mjansen/corvid/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestEntrySize(t *testing.T) {
	e := TtEntry{}
	assert.EqualValues(t, 16, unsafe.Sizeof(e))
	assert.True(t, e.empty())
	logTest.Debugf("Size of Entry %d bytes, bucket %d bytes", unsafe.Sizeof(e), unsafe.Sizeof(ttBucket{}))
}

func TestNew(t *testing.T) {
	tt := NewTtTable(2)
	assert.True(t, tt.maxNumberOfBuckets > 0)
	assert.Equal(t, int(tt.maxNumberOfBuckets), cap(tt.data))
	assert.Equal(t, tt.maxNumberOfBuckets*BucketSize, tt.maxNumberOfEntries)
	logTest.Debug(tt.String())

	// bucket count must be a power of 2 for mask addressing to work
	assert.EqualValues(t, 0, tt.maxNumberOfBuckets&(tt.maxNumberOfBuckets-1))

	tt2 := NewTtTable(64)
	assert.True(t, tt2.maxNumberOfBuckets > tt.maxNumberOfBuckets)
}

func TestGetAndProbe(t *testing.T) {
	tt := NewTtTable(64)

	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	tt.Put(pos.ZobristKey(), move, 5, Value(123), EXACT, Value(45), 3)

	// unaltered read
	e := tt.GetEntry(pos.ZobristKey())
	assert.NotNil(t, e)
	assert.Equal(t, move, e.Move)
	assert.EqualValues(t, 5, e.Depth)
	assert.EqualValues(t, 123, e.Value)
	assert.EqualValues(t, 45, e.Eval)
	assert.EqualValues(t, 3, e.Ply)
	assert.Equal(t, EXACT, e.Type)
	assert.EqualValues(t, 0, e.Age)

	// probing resets age
	e = tt.Probe(pos.ZobristKey())
	assert.NotNil(t, e)
	assert.EqualValues(t, 0, e.Age)

	// not in tt
	pos.DoMove(move)
	e = tt.Probe(pos.ZobristKey())
	assert.Nil(t, e)
}

func TestClear(t *testing.T) {
	tt := NewTtTable(1)

	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	tt.Put(pos.ZobristKey(), move, 5, Value(1), EXACT, ValueNA, 0)
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()

	e := tt.Probe(pos.ZobristKey())
	assert.Nil(t, e)
	assert.EqualValues(t, 0, tt.Len())
}

func TestPutUpdateInPlace(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	key := position.Key(111)

	tt.Put(key, move, 4, Value(111), ALPHA, Value(9), 1)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)

	e := tt.Probe(key)
	assert.EqualValues(t, move, e.Move)
	assert.EqualValues(t, 111, e.Value)
	assert.EqualValues(t, 9, e.Eval)
	assert.EqualValues(t, 4, e.Depth)
	assert.Equal(t, ALPHA, e.Type)

	// same key -> update in place, not a new entry
	tt.Put(key, move, 5, Value(112), BETA, Value(10), 2)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfUpdates)
	e = tt.Probe(key)
	assert.EqualValues(t, 112, e.Value)
	assert.EqualValues(t, 10, e.Eval)
	assert.EqualValues(t, 5, e.Depth)
	assert.Equal(t, BETA, e.Type)

	// ValueNA/MoveNone preserve the existing field on update
	tt.Put(key, MoveNone, 5, ValueNA, BETA, ValueNA, 2)
	e = tt.Probe(key)
	assert.EqualValues(t, move, e.Move)
	assert.EqualValues(t, 112, e.Value)
	assert.EqualValues(t, 10, e.Eval)
}

func TestPutFillsBucketBeforeEviction(t *testing.T) {
	tt := NewTtTable(1)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	// four keys that hash to the same bucket but carry distinct tags
	base := position.Key(7)
	var keys [BucketSize]position.Key
	for i := range keys {
		keys[i] = base | (position.Key(i+1) << 32)
	}

	for i, k := range keys {
		tt.Put(k, move, int8(i+1), Value(i), EXACT, ValueNA, 0)
	}
	assert.EqualValues(t, BucketSize, tt.Len())
	assert.EqualValues(t, 0, tt.Stats.numberOfCollisions)

	for i, k := range keys {
		e := tt.GetEntry(k)
		assert.NotNil(t, e)
		assert.EqualValues(t, i+1, e.Depth)
	}

	// a fifth distinct tag in the same bucket must evict one of the four
	fifth := base | (position.Key(99) << 32)
	tt.Put(fifth, move, 9, Value(9), EXACT, ValueNA, 0)
	assert.EqualValues(t, BucketSize, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 1, tt.Stats.numberOfOverwrites)
	assert.NotNil(t, tt.GetEntry(fifth))
}

func TestAgeEntriesEvictsStale(t *testing.T) {
	tt := NewTtTable(1)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	key := position.Key(42)

	tt.Put(key, move, 3, Value(1), EXACT, ValueNA, 0)
	e := tt.GetEntry(key)
	assert.EqualValues(t, 0, e.Age)

	for i := 0; i < maxAge; i++ {
		tt.AgeEntries()
	}
	assert.NotNil(t, tt.GetEntry(key))

	tt.AgeEntries()
	assert.Nil(t, tt.GetEntry(key))
	assert.EqualValues(t, 0, tt.Len())
}

func TestHashfull(t *testing.T) {
	tt := NewTtTable(1)
	assert.EqualValues(t, 0, tt.Hashfull())
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	// 1 MB holds 65,536 entries and Hashfull is integer permill, so a single
	// entry still reads 0; 100 entries in distinct buckets read 1 permill
	for i := 1; i <= 100; i++ {
		tt.Put(position.Key(i), move, 1, Value(1), EXACT, ValueNA, 0)
	}
	assert.EqualValues(t, 1, tt.Hashfull())
}
