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

package types

import (
	"fmt"
	"strings"
)

// MoveType distinguishes the handful of special move-application paths
// from an ordinary piece move.
type MoveType uint32

const (
	Normal    MoveType = 0
	Promotion MoveType = 1
	EnPassant MoveType = 2
	Castling  MoveType = 3
)

// Move packs a move plus an optional sort key into a single 32-bit word.
// The low 16 bits are the canonical move (what gets stored, compared and
// played): 6 bits "to", 6 bits "from", 2 bits promotion-type-minus-knight,
// 2 bits move type. The high 16 bits optionally carry a signed sort value
// used to order a move list without a second allocation; two moves with
// the same low 16 bits compare equal as moves regardless of their sort
// value, see MoveOf.
type Move uint32

// MoveNone is the zero value, never a legal move.
const MoveNone Move = 0

const (
	squareMask    Move = 0b111111
	fromShift          = 6
	promTypeShift      = 12
	typeShift          = 14
	valueShift         = 16

	toMask       = squareMask
	fromMask     = squareMask << fromShift
	promTypeMask = Move(0b11) << promTypeShift
	moveTypeMask = Move(0b11) << typeShift
	moveMask     = Move(0xFFFF)
	valueMask    = Move(0xFFFF) << valueShift
)

// CreateMove builds a Move with no embedded sort value.
func CreateMove(from Square, to Square, t MoveType, promType PieceType) Move {
	var pt Move
	if promType >= Knight {
		pt = Move(promType-Knight) << promTypeShift
	}
	return Move(to) | Move(from)<<fromShift | pt | Move(t)<<typeShift
}

// CreateMoveValue builds a Move with an embedded sort value. The value is
// shifted into an unsigned range so natural integer ordering of the raw
// 32-bit word matches descending move-ordering by value.
func CreateMoveValue(from Square, to Square, t MoveType, promType PieceType, value Value) Move {
	m := CreateMove(from, to, t, promType)
	return m.SetValue(value)
}

// MoveType returns the move's special-case classification.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the piece type a pawn promotes to. Meaningless
// unless MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & toMask)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// MoveOf strips the embedded sort value, leaving only the canonical move.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the embedded sort value, or ValueNA if none was set.
func (m Move) ValueOf() Value {
	if m&valueMask == 0 {
		return ValueNA
	}
	return Value((m&valueMask)>>valueShift) + ValueNA
}

// SetValue embeds a sort value into the move and returns the updated Move.
func (m Move) SetValue(v Value) Move {
	return m.MoveOf() | (Move(v-ValueNA) << valueShift)
}

// IsValid reports whether m has a valid from/to/promotion encoding. Does
// not check legality against any position.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() &&
		(m.MoveType() != Promotion || (m.PromotionType() >= Knight && m.PromotionType() <= Queen))
}

// String renders long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == MoveNone {
		return "no move"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += strings.ToLower(m.PromotionType().Char())
	}
	return s
}

// StringUci is an alias for String kept for readability at UCI call sites.
func (m Move) StringUci() string {
	return m.String()
}

// StringBits renders the raw 32-bit encoding, useful when debugging move
// ordering issues.
func (m Move) StringBits() string {
	return fmt.Sprintf("%032b", uint32(m))
}
