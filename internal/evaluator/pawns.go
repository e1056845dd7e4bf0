/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package evaluator

import (
	"github.com/mjansen/corvid/internal/config"
	. "github.com/mjansen/corvid/internal/types"
)

// evaluatePawns scores pawn structure for both sides: isolated, doubled,
// passed, blocked, phalanx and supported pawns. Keyed and cached by the
// pawn bitboards alone (pawnCache), since none of these terms depend on
// anything else in the position.
func (e *Evaluator) evaluatePawns() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	if config.Settings.Eval.UsePawnCache {
		entry := e.pawnCache.getEntry(e.position.PawnKey())
		if entry != nil {
			tmpScore.MidGameValue += entry.score.MidGameValue
			tmpScore.EndGameValue += entry.score.EndGameValue
			return &tmpScore
		}
	}

	wMg, wEg := e.pawnStructureScore(White)
	bMg, bEg := e.pawnStructureScore(Black)
	tmpScore.MidGameValue = wMg - bMg
	tmpScore.EndGameValue = wEg - bEg

	if config.Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &tmpScore)
	}

	return &tmpScore
}

// pawnStructureScore walks one color's pawns once and returns the midgame
// and endgame totals of the structural terms (isolated, doubled, blocked,
// phalanx, supported, passed); the caller combines both colors.
func (e *Evaluator) pawnStructureScore(us Color) (mg int16, eg int16) {
	them := us.Flip()
	ourPawns := e.position.PiecesBb(us, Pawn)
	theirPawns := e.position.PiecesBb(them, Pawn)
	pushDir := North
	if us == Black {
		pushDir = South
	}

	pawns := ourPawns
	for pawns != BbZero {
		sq := pawns.PopLsb()
		file := sq.FileOf()

		if ourPawns&sq.NeighbourFilesMask() == BbZero {
			mg += config.Settings.Eval.PawnIsolatedMidMalus
			eg += config.Settings.Eval.PawnIsolatedEndMalus
		}

		if ourPawns&file.Bb() != sq.Bb() {
			// another one of our pawns shares this file
			mg += config.Settings.Eval.PawnDoubledMidMalus
			eg += config.Settings.Eval.PawnDoubledEndMalus
		}

		if ShiftBitboard(sq.Bb(), pushDir)&(ourPawns|theirPawns) != BbZero {
			mg += config.Settings.Eval.PawnBlockedMidMalus
			eg += config.Settings.Eval.PawnBlockedEndMalus
		}

		if ourPawns&sq.NeighbourFilesMask()&sq.RankOf().Bb() != BbZero {
			mg += config.Settings.Eval.PawnPhalanxMidBonus
			eg += config.Settings.Eval.PawnPhalanxEndBonus
		}

		if GetPawnAttacks(them, sq)&ourPawns != BbZero {
			mg += config.Settings.Eval.PawnSupportedMidBonus
			eg += config.Settings.Eval.PawnSupportedEndBonus
		}

		if theirPawns&sq.PassedPawnMask(us) == BbZero {
			mg += config.Settings.Eval.PawnPassedMidBonus
			eg += config.Settings.Eval.PawnPassedEndBonus
		}
	}
	return mg, eg
}
