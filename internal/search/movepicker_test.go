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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mjansen/corvid/internal/history"
	"github.com/mjansen/corvid/internal/movegen"
	"github.com/mjansen/corvid/internal/position"
	. "github.com/mjansen/corvid/internal/types"
)

func TestMovePickerHashMoveFirst(t *testing.T) {
	p, _ := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	mg := movegen.NewMoveGen()
	pseudo := mg.GeneratePseudoLegalMoves(p, movegen.GenAll)
	assert.True(t, pseudo.Len() > 0)
	hash := pseudo.At(0).MoveOf()

	mp := NewMovePicker(mg)
	mp.Init(hash, [2][2]Move{}, history.NewHistory(), p.NextPlayer())

	first := mp.Next(p, movegen.GenAll)
	assert.EqualValues(t, hash, first)
}

func TestMovePickerExhaustsAllMovesExactlyOnce(t *testing.T) {
	p, _ := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	mg := movegen.NewMoveGen()
	pseudo := mg.GeneratePseudoLegalMoves(p, movegen.GenAll)
	want := pseudo.Len()

	mp := NewMovePicker(mg)
	mp.Init(MoveNone, [2][2]Move{}, history.NewHistory(), p.NextPlayer())

	seen := map[Move]bool{}
	count := 0
	for m := mp.Next(p, movegen.GenAll); m != MoveNone; m = mp.Next(p, movegen.GenAll) {
		assert.False(t, seen[m], "move %s returned more than once", m.StringUci())
		seen[m] = true
		count++
	}
	assert.EqualValues(t, want, count)
}

func TestMovePickerGoodCaptureOutranksQuiet(t *testing.T) {
	// White queen can capture a hanging black rook on d8.
	p, _ := position.NewPositionFen("3r1k2/8/8/8/8/8/3Q4/4K3 w - -")
	mg := movegen.NewMoveGen()
	mg.GeneratePseudoLegalMoves(p, movegen.GenAll)

	mp := NewMovePicker(mg)
	mp.Init(MoveNone, [2][2]Move{}, history.NewHistory(), p.NextPlayer())

	first := mp.Next(p, movegen.GenAll)
	assert.Equal(t, SqD2, first.From())
	assert.Equal(t, SqD8, first.To())
}

func TestMovePickerKillerOutranksOrdinaryQuiet(t *testing.T) {
	p, _ := position.NewPositionFen("4k3/8/8/8/8/8/4P3/4K3 w - -")
	mg := movegen.NewMoveGen()
	pseudo := mg.GeneratePseudoLegalMoves(p, movegen.GenAll)
	assert.True(t, pseudo.Len() > 1)

	// pick some quiet move that is not the first one generated to act as a killer
	var killer Move
	pseudo.ForEach(func(i int) {
		if killer == MoveNone && i > 0 {
			killer = pseudo.At(i).MoveOf()
		}
	})
	assert.NotEqual(t, MoveNone, killer)

	mp := NewMovePicker(mg)
	mp.Init(MoveNone, [2][2]Move{{killer, MoveNone}, {}}, history.NewHistory(), p.NextPlayer())

	first := mp.Next(p, movegen.GenAll)
	assert.EqualValues(t, killer, first)
}
