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
	"math"

	"github.com/mjansen/corvid/internal/history"
	"github.com/mjansen/corvid/internal/movegen"
	"github.com/mjansen/corvid/internal/position"
	. "github.com/mjansen/corvid/internal/types"
)

// attackerIndex is a value-ordered ordinal (pawn cheapest, king dearest)
// used by the capture formula below. It is deliberately distinct from
// PieceType's own bit-pattern values, which are not ordered by worth.
var attackerIndex = [PtLength]int32{
	PtNone: -1,
	King:   5,
	Pawn:   0,
	Knight: 1,
	Bishop: 2,
	Rook:   3,
	Queen:  4,
}

// Sentinel scores sort the hash move first and a losing capture (confirmed
// bad by SEE) dead last, below even the worst quiet move.
const (
	scoreHash       int32 = math.MaxInt32 - 1
	scoreBadCapture int32 = math.MinInt32 + 1
)

// pickerStage is the state of the staged move generator below.
type pickerStage int8

const (
	pickerTT pickerStage = iota
	pickerGenerate
	pickerPick
	pickerDone
)

type scoredMove struct {
	move  Move
	score int32
}

// MovePicker yields the pseudo-legal moves of one search node in a single
// pass: the transposition table's hash move first, then every other move
// sorted once by score (SEE-gated MVV-LVA for captures and promotions,
// killer tiers for quiets that caused a cutoff nearby, history count for
// everything else). Reused across nodes at the same ply like Movegen.
type MovePicker struct {
	mg   *movegen.Movegen
	hist *history.History

	stage pickerStage
	hash  Move
	us    Color

	// killers[0] is this node's killer pair, killers[1] the pair from two
	// plies back - the spec's four ordering tiers below the hash move.
	killers [2][2]Move

	list  []scoredMove
	index int
}

// NewMovePicker creates a move picker bound to a move generator; one
// instance is kept per ply, mirroring Search's per-ply Movegen slice.
func NewMovePicker(mg *movegen.Movegen) *MovePicker {
	return &MovePicker{
		mg:   mg,
		list: make([]scoredMove, 0, MaxMoves),
	}
}

// Init prepares the picker for a new node. killers holds this node's killer
// pair and the killer pair from two plies back, in that order.
func (mp *MovePicker) Init(hash Move, killers [2][2]Move, hist *history.History, us Color) {
	mp.hash = hash.MoveOf()
	mp.killers = killers
	mp.hist = hist
	mp.us = us
	mp.stage = pickerTT
	mp.list = mp.list[:0]
	mp.index = 0
}

// Next returns the next move in staged order, or MoveNone once exhausted.
// p and mode are only needed to generate the pseudo-legal move list once;
// legality itself is still filtered by the caller after DoMove, per the
// engine's make-then-check-legality convention.
func (mp *MovePicker) Next(p *position.Position, mode movegen.GenMode) Move {
	for {
		switch mp.stage {
		case pickerTT:
			mp.generate(p, mode)
			mp.stage = pickerPick
			if mp.hash != MoveNone {
				for _, sm := range mp.list {
					if sm.move == mp.hash {
						return mp.hash
					}
				}
			}
		case pickerPick:
			if mp.index >= len(mp.list) {
				mp.stage = pickerDone
				continue
			}
			sm := mp.list[mp.index]
			mp.index++
			if sm.move == mp.hash {
				continue
			}
			return sm.move
		default:
			return MoveNone
		}
	}
}

// generate builds and sorts the scored move list for this node exactly
// once, in the spirit of GEN->PICK: generation happens on the first call
// to Next, before the hash move is returned, because the hash move is
// only returned after it has been found in the generated list.
func (mp *MovePicker) generate(p *position.Position, mode movegen.GenMode) {
	mp.list = mp.list[:0]
	pseudo := mp.mg.GeneratePseudoLegalMoves(p, mode)
	pseudo.ForEach(func(i int) {
		m := pseudo.At(i).MoveOf()
		mp.list = append(mp.list, scoredMove{move: m, score: mp.score(p, m)})
	})
	// stable insertion sort, descending by score - moveslice.Sort uses the
	// same technique for its embedded-value sort, but our score range
	// (MVV-LVA differences scaled by 100, INT_MAX/MIN sentinels) does not fit
	// in a Move's 16-bit embedded value, so we keep our own list here.
	l := len(mp.list)
	for i := 1; i < l; i++ {
		tmp := mp.list[i]
		j := i
		for j > 0 && tmp.score > mp.list[j-1].score {
			mp.list[j] = mp.list[j-1]
			j--
		}
		mp.list[j] = tmp
	}
}

// score implements the move ordering formula: hash move first, then
// SEE-gated MVV-LVA for captures and promotions (losing captures sink to
// the very bottom rather than mixing in with quiets), then killer tiers,
// then history count.
func (mp *MovePicker) score(p *position.Position, m Move) int32 {
	if m == mp.hash {
		return scoreHash
	}

	moveType := m.MoveType()
	captured := p.GetPiece(m.To())
	isEnPassant := moveType == EnPassant
	isCapture := captured != PieceNone || isEnPassant
	isPromotion := moveType == Promotion

	if isCapture || isPromotion {
		var victimValue int32
		switch {
		case isEnPassant:
			victimValue = int32(Pawn.ValueOf())
		case isCapture:
			victimValue = int32(captured.TypeOf().ValueOf())
		}
		attacker := p.GetPiece(m.From()).TypeOf()
		if see(p, m) >= 0 {
			promoBonus := int32(0)
			if isPromotion {
				promoBonus = int32(m.PromotionType().ValueOf())
			}
			return (victimValue-attackerIndex[attacker])*100 + promoBonus
		}
		return scoreBadCapture
	}

	if m == mp.killers[0][0].MoveOf() {
		return -1
	}
	if m == mp.killers[0][1].MoveOf() {
		return -2
	}
	if m == mp.killers[1][0].MoveOf() {
		return -3
	}
	if m == mp.killers[1][1].MoveOf() {
		return -4
	}

	pt := p.GetPiece(m.From()).TypeOf()
	return -mp.hist.Max(mp.us) - 5 + mp.hist.Get(mp.us, pt, m.To())
}
