/*
 * Kestrel - UCI chess engine in GO for learning purposes
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

// Package evaluator contains structures and functions to calculate
// the value of a chess position to be used in a chess engine search.
//
// The heuristic is computed once per color from that color's own
// point of view (mirrored to White's perspective for Black, the same
// color-relative-view technique movegen uses), then combined as
// White's score minus Black's score.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/kestrel-chess/kestrel/board"
	myLogging "github.com/kestrel-chess/kestrel/logging"
	. "github.com/kestrel-chess/kestrel/types"
)

// Evaluator represents a data structure and functionality for
// evaluating chess positions by using various evaluation heuristics
// like material, positional values, pawn structure, etc.
// Create a new instance with NewEvaluator().
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog(),
	}
}

// Evaluate returns a static value for b in centipawns, positive when
// White stands better. It does not look at any move; it scores the
// position as it stands.
func (e *Evaluator) Evaluate(b board.Board) Value {
	endgame := isEndgame(&b)
	return e.evalColor(&b, White, endgame) - e.evalColor(&b, Black, endgame)
}

// evalColor scores b from c's point of view: castling bonus, pawn
// structure, material plus piece-square placement, and (middlegame
// only) a king pawn-shield bonus.
func (e *Evaluator) evalColor(b *board.Board, c Color, endgame bool) Value {
	var score Value

	if b.Castling.Has(c, false) {
		score += 50 // long castle right
	}
	if b.Castling.Has(c, true) {
		score += 75 // short castle right
	}

	score += pawnStructureValue(b.Pieces[c][Pawn])
	score += materialAndPlacement(b, c, endgame)

	if !endgame {
		score += kingShieldValue(b, c)
	}

	return score
}

// pawnStructureValue penalizes doubled/tripled pawns and pawn
// islands. File membership is unaffected by the color-relative
// vertical mirror, so the raw (non-mirrored) bitboard can be used
// directly for either color.
func pawnStructureValue(pawns Bitboard) Value {
	var score Value
	islands := 0
	inIsland := false
	for f := FileA; f <= FileH; f++ {
		count := (pawns & FileBitboard(f)).PopCount()
		if count == 0 {
			inIsland = false
			continue
		}
		if !inIsland {
			islands++
			inIsland = true
		}
		score -= Value(40 * (count - 1))
	}
	score -= Value(30 * islands)
	return score
}

// isEndgame decides the game phase as a single board-wide switch: if
// both sides have major-plus-half-minor material at or below 2, the
// position counts as Endgame for piece-square lookups; otherwise
// Middlegame. No interpolation between the two table sets.
func isEndgame(b *board.Board) bool {
	return phasePoints(b, White) <= 2 && phasePoints(b, Black) <= 2
}

func phasePoints(b *board.Board, c Color) int {
	minor := b.Pieces[c][Bishop].PopCount() + b.Pieces[c][Knight].PopCount()
	major := b.Pieces[c][Rook].PopCount() + b.Pieces[c][Queen].PopCount()
	return major + minor/2
}

// materialAndPlacement sums each of c's pieces' material value plus
// its piece-square bonus for the given game phase.
func materialAndPlacement(b *board.Board, c Color, endgame bool) Value {
	var score Value
	for pt := King; pt <= Queen; pt++ {
		bb := b.Pieces[c][pt]
		for bb != BbZero {
			sq := bb.PopLsb()
			score += Value(pt.ValueOf())
			score += pstValue(pt, c, sq, endgame)
		}
	}
	return score
}

// kingShieldValue rewards a castled king for pawns still covering it:
// own pawns one step diagonally forward are worth more than ones two
// steps forward, and a pawn directly ahead is worth more than one two
// steps ahead. Mirrors the king and pawn bitboards to White's view so
// "forward" always means toward higher ranks.
func kingShieldValue(b *board.Board, c Color) Value {
	kingBb := relBitboard(b.Pieces[c][King], c)
	if kingBb&castledKingBb == BbZero {
		return 0
	}

	pawnsBb := relBitboard(b.Pieces[c][Pawn], c)

	diag1 := ShiftBitboard(kingBb, Northwest) | ShiftBitboard(kingBb, Northeast)
	diag2 := ShiftBitboard(ShiftBitboard(kingBb, Northwest), Northwest) |
		ShiftBitboard(ShiftBitboard(kingBb, Northeast), Northeast)

	var score Value
	score += Value(35 * (diag1 & pawnsBb).PopCount())
	score += Value(20 * (diag2 & pawnsBb).PopCount())

	oneAhead := ShiftBitboard(kingBb, North)
	if oneAhead&pawnsBb != BbZero {
		score += 50
	}
	twoAhead := ShiftBitboard(oneAhead, North)
	if twoAhead&pawnsBb != BbZero {
		score += 30
	}
	return score
}

// castledKingBb holds the squares a castled king typically sits on:
// both flanks of the back rank, excluding the center files the king
// starts and usually only passes through.
var castledKingBb = SqA1.Bitboard() | SqB1.Bitboard() | SqC1.Bitboard() | SqG1.Bitboard() | SqH1.Bitboard()

// relBitboard mirrors bb vertically for Black so the rest of the
// evaluator can always reason as if it is scoring White's pieces.
func relBitboard(bb Bitboard, c Color) Bitboard {
	if c == White {
		return bb
	}
	return FlipBitboard(bb)
}

// pstValue looks up the piece-square bonus for a piece of type pt and
// color c standing on sq, for the given game phase. The tables are
// authored so their last row (array indices 56-63) is the back-rank
// bonus row: White's back rank (squares 0-7) reaches it via the
// rank-only mirror sq^56 (same vertical flip as FlipBitboard, keeping
// the file), while Black's back rank (56-63) already sits there, so
// Black indexes the table directly.
func pstValue(pt PieceType, c Color, sq Square, endgame bool) Value {
	table := pstMid[pt]
	if endgame {
		table = pstEnd[pt]
	}
	if c == White {
		return table[sq^56]
	}
	return table[sq]
}
