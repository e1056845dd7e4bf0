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

// Package history provides data structures and functionality to manage
// history driven move tables (e.g. history counter, counter moves, etc.)
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/mjansen/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// gravityDivisor bounds how large a single HistoryCount entry can grow:
// Update moves the entry toward delta by an amount that shrinks as the
// entry's own magnitude approaches this bound, so no sequence of cutoffs
// at one [color][pieceType][square] slot can overflow int32.
const gravityDivisor = 1 << 14

// History is a data structure updated during search to provide the move
// picker with move ordering information. HistoryCount is a butterfly table
// indexed by the moving side, the moving piece's type and the destination
// square - not by from/to squares, so history learned for a knight landing
// on e5 applies regardless of which square it came from. CounterMoves
// records, for an opponent piece type and destination square, the reply
// that most recently caused a beta cutoff.
type History struct {
	HistoryCount [ColorLength][PtLength][SqLength]int32
	CounterMoves [PtLength][SqLength]Move
	historyMax   [ColorLength]int32
}

// NewHistory creates a new History instance.
func NewHistory() *History {
	return &History{}
}

// Update nudges the history entry for (c, pt, to) toward delta, scaled down
// as the entry's own magnitude grows - the same decay-toward-bonus formula
// search engines call "history gravity". Called with delta = +depth*depth
// for the move that caused a beta cutoff and delta = -depth*depth/2 for
// every other quiet move already tried at that node, so a single deep
// cutoff can't be undone by one shallow failure and vice versa.
func (h *History) Update(c Color, pt PieceType, to Square, delta int32) {
	entry := &h.HistoryCount[c][pt][to]
	*entry += delta - *entry*abs32(delta)/gravityDivisor
	if *entry > h.historyMax[c] {
		h.historyMax[c] = *entry
	}
}

// Get returns the current history count for (c, pt, to).
func (h *History) Get(c Color, pt PieceType, to Square) int32 {
	return h.HistoryCount[c][pt][to]
}

// Max returns the highest history count ever recorded for color c. The move
// picker subtracts this from every quiet move's score so quiets always sort
// below the killer tiers.
func (h *History) Max(c Color) int32 {
	return h.historyMax[c]
}

// SetCounterMove records m as the reply to an opponent move identified by
// the moved piece's type and destination square.
func (h *History) SetCounterMove(prevPieceType PieceType, prevTo Square, m Move) {
	h.CounterMoves[prevPieceType][prevTo] = m
}

// CounterMove returns the recorded reply to an opponent move identified by
// piece type and destination square, or MoveNone if none is recorded.
func (h *History) CounterMove(prevPieceType PieceType, prevTo Square) Move {
	return h.CounterMoves[prevPieceType][prevTo]
}

// Clear resets all history and counter-move data. Search only calls this on
// ucinewgame; within a game the table is dampened by Update's gravity term
// rather than cleared between moves.
func (h *History) Clear() {
	*h = History{}
}

func (h History) String() string {
	sb := strings.Builder{}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := SqA1; sq < SqNone; sq++ {
				count := h.HistoryCount[c][pt][sq]
				if count == 0 {
					continue
				}
				sb.WriteString(out.Sprintf("%s %s->%s: %-7d\n", c.String(), pt.String(), sq.String(), count))
			}
		}
	}
	return sb.String()
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
