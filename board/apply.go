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

package board

import (
	myLogging "github.com/kestrel-chess/kestrel/logging"
	. "github.com/kestrel-chess/kestrel/types"
)

// clearSquare removes sq from every piece-type bitboard of both
// colors. At most one of the twelve bitboards actually has sq set.
func (b *Board) clearSquare(sq Square) {
	for c := White; c <= Black; c++ {
		for pt := King; pt <= Queen; pt++ {
			b.Pieces[c][pt].PopSquare(sq)
		}
	}
}

// ApplyNullMove flips the side to move and leaves every other field
// unchanged. Used by the move generator to probe check/attack status
// from the opponent's perspective without actually moving a piece.
func (b Board) ApplyNullMove() Board {
	b.SideToMove = b.SideToMove.Flip()
	return b
}

// ApplyMove returns the board resulting from playing m, assumed to be
// at least pseudo-legal for the side to move. If the source square is
// empty — an internal invariant violation that a correct call site
// never triggers — an error naming the square and move is logged and
// the board is returned unchanged.
func (b Board) ApplyMove(m Move) Board {
	mover := b.SideToMove
	opp := mover.Flip()
	from, to := m.From(), m.To()

	pt := b.Pieces[mover].TypeAt(from)
	if pt == PtNone {
		myLogging.GetLog().Errorf("apply_move: no piece on %s for move %s", from.String(), m.String())
		return b
	}

	// 2. En-passant capture: clear the pawn one square behind the
	// destination if the destination file is the live en-passant file
	// and the destination rank is the opponent's capture rank.
	if pt == Pawn && b.EnPassant.Has(to.FileOf()) {
		captureRank := Rank6
		behind := Rank5
		if mover == Black {
			captureRank, behind = Rank3, Rank4
		}
		if to.RankOf() == captureRank {
			b.clearSquare(SquareOf(to.FileOf(), behind))
		}
	}

	// 3. En-passant flag update.
	b.EnPassant = NoEnPassantFile
	if pt == Pawn {
		if mover == White && from.RankOf() == Rank2 && to.RankOf() == Rank4 {
			b.EnPassant = EnPassantFileOf(from.FileOf())
		} else if mover == Black && from.RankOf() == Rank7 && to.RankOf() == Rank5 {
			b.EnPassant = EnPassantFileOf(from.FileOf())
		}
	}

	// 4. Castling-right loss from a rook being captured on its home square.
	if b.Pieces[opp][Rook].Has(to) {
		b.Castling.RemoveRookSide(to)
	}

	// 5. Castling-right loss from the mover's own king/rook move.
	switch pt {
	case King:
		b.Castling.RemoveColor(mover)
	case Rook:
		b.Castling.RemoveRookSide(from)
	}

	// 6. Clear origin and destination on every bitboard.
	b.clearSquare(from)
	b.clearSquare(to)

	// 7. Place the piece, promoting a pawn if requested.
	placed := pt
	if pt == Pawn && m.IsPromotion() {
		placed = m.PromotionType()
	}
	b.Pieces[mover][placed].PushSquare(to)

	// 8. Castling rook shift, done as a direct relocation. A recursive
	// ApplyMove for the rook would flip the side to move a second time.
	if pt == King {
		switch {
		case from == SqE1 && to == SqG1:
			b.clearSquare(SqH1)
			b.Pieces[White][Rook].PushSquare(SqF1)
		case from == SqE1 && to == SqC1:
			b.clearSquare(SqA1)
			b.Pieces[White][Rook].PushSquare(SqD1)
		case from == SqE8 && to == SqG8:
			b.clearSquare(SqH8)
			b.Pieces[Black][Rook].PushSquare(SqF8)
		case from == SqE8 && to == SqC8:
			b.clearSquare(SqA8)
			b.Pieces[Black][Rook].PushSquare(SqD8)
		}
	}

	// 9. Occupancy history.
	b.pushHistory(b.Occupied(White) | b.Occupied(Black))

	// 10. Flip side to move.
	b.SideToMove = opp

	return b
}
