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

// Package types holds every fundamental chess data type shared by the rest
// of the engine: Square, File, Rank, Color, Piece, PieceType, CastlingRights,
// Direction, Bitboard, Move, Value and Score. None of these types know
// anything about a Position or a search; they are the alphabet the rest of
// the engine is written in.
package types

import (
	"github.com/mjansen/corvid/internal/logging"
)

var log = logging.GetLog()

var initialized = false

// init precomputes every lookup table the package needs (bitboards, magic
// attack tables, zobrist-independent positional value tables). Safe to run
// more than once; only does work the first time.
func init() {
	if initialized {
		return
	}
	log.Debug("initializing chess primitive data types")
	initBb()
	initPosValues()
	initialized = true
}

const (
	// SqLength is the number of squares on a board.
	SqLength int = 64

	// MaxDepth is the largest ply depth the search will ever reach.
	MaxDepth = 128

	// MaxMoves bounds the number of moves in any single position's move
	// list and the number of plies tracked in a game's repetition history.
	MaxMoves = 512

	// KB is 1024 bytes.
	KB uint64 = 1024
	// MB is KB*KB bytes.
	MB uint64 = KB * KB
	// GB is KB*MB bytes.
	GB uint64 = KB * MB

	// GamePhaseMax is the maximum game phase value, reached with a full
	// complement of officers on the board (2*1 + 2*1 + 2*2 + 4 = 12 per side).
	GamePhaseMax = 24
)
