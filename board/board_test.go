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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kestrel-chess/kestrel/types"
)

func TestStartPosition(t *testing.T) {
	b := StartPosition()
	assert.Equal(t, White, b.SideToMove)
	assert.Equal(t, CastlingAny, b.Castling)
	assert.True(t, b.EnPassant.IsNone())
	assert.Equal(t, 32, b.AllOccupied().PopCount())
	assert.Equal(t, SqE1, b.KingSquare(White))
	assert.Equal(t, SqE8, b.KingSquare(Black))
	assert.Equal(t, Pawn, b.PieceTypeAt(White, SqE2))
	assert.Equal(t, PtNone, b.PieceTypeAt(White, SqE4))
}

func TestApplyMoveNormal(t *testing.T) {
	b := StartPosition()
	nb := b.ApplyMove(NewMove(SqE2, SqE4, PtNone))

	assert.Equal(t, Black, nb.SideToMove)
	assert.Equal(t, PtNone, nb.PieceTypeAt(White, SqE2))
	assert.Equal(t, Pawn, nb.PieceTypeAt(White, SqE4))
	assert.Equal(t, EnPassantFileOf(FileE), nb.EnPassant)

	// original board is untouched
	assert.Equal(t, White, b.SideToMove)
	assert.Equal(t, Pawn, b.PieceTypeAt(White, SqE2))
}

func TestApplyMoveEnPassantFlagClearsAfterQuietMove(t *testing.T) {
	b := StartPosition()
	b = b.ApplyMove(NewMove(SqE2, SqE4, PtNone))
	assert.False(t, b.EnPassant.IsNone())
	b = b.ApplyMove(NewMove(SqB8, SqC6, PtNone))
	assert.True(t, b.EnPassant.IsNone())
}

func TestApplyMoveEnPassantCapture(t *testing.T) {
	b := StartPosition()
	b = b.ApplyMove(NewMove(SqE2, SqE4, PtNone))
	b = b.ApplyMove(NewMove(SqA7, SqA6, PtNone))
	b = b.ApplyMove(NewMove(SqE4, SqE5, PtNone))
	b = b.ApplyMove(NewMove(SqD7, SqD5, PtNone))

	assert.Equal(t, EnPassantFileOf(FileD), b.EnPassant)

	b = b.ApplyMove(NewMove(SqE5, SqD6, PtNone))
	assert.Equal(t, Pawn, b.PieceTypeAt(White, SqD6))
	assert.Equal(t, PtNone, b.PieceTypeAt(Black, SqD5))
	assert.Equal(t, PtNone, b.PieceTypeAt(White, SqE5))
}

func TestApplyMoveCastlingKingside(t *testing.T) {
	b := StartPosition()
	b.Pieces[White][Bishop] = SqC1.Bitboard()
	b.Pieces[White][Knight] = SqB1.Bitboard()

	b = b.ApplyMove(NewMove(SqE1, SqG1, PtNone))

	assert.Equal(t, King, b.PieceTypeAt(White, SqG1))
	assert.Equal(t, Rook, b.PieceTypeAt(White, SqF1))
	assert.Equal(t, PtNone, b.PieceTypeAt(White, SqH1))
	assert.Equal(t, PtNone, b.PieceTypeAt(White, SqE1))
	assert.False(t, b.Castling.Has(White, true))
	assert.False(t, b.Castling.Has(White, false))
}

func TestApplyMoveCastlingRightsLostOnKingMove(t *testing.T) {
	b := StartPosition()
	b = b.ApplyMove(NewMove(SqE1, SqE2, PtNone))
	assert.False(t, b.Castling.Has(White, true))
	assert.False(t, b.Castling.Has(White, false))
	assert.True(t, b.Castling.Has(Black, true))
	assert.True(t, b.Castling.Has(Black, false))
}

func TestApplyMoveCastlingRightsLostOnRookMove(t *testing.T) {
	b := StartPosition()
	b = b.ApplyMove(NewMove(SqA1, SqB1, PtNone))
	assert.False(t, b.Castling.Has(White, false))
	assert.True(t, b.Castling.Has(White, true))
}

func TestApplyMoveCastlingRightsLostOnRookCapture(t *testing.T) {
	b := StartPosition()
	b.SideToMove = Black
	b.Pieces[Black][Knight] = SqB3.Bitboard()

	// black knight b3 captures the white rook on its a1 home square
	b = b.ApplyMove(NewMove(SqB3, SqA1, PtNone))
	assert.False(t, b.Castling.Has(White, false))
	assert.True(t, b.Castling.Has(White, true))
}

func TestApplyMovePromotion(t *testing.T) {
	b := StartPosition()
	b.Pieces[White][Pawn] = SqA7.Bitboard()
	b.Pieces[Black][Pawn] = BbZero

	b = b.ApplyMove(NewMove(SqA7, SqA8, Queen))
	assert.Equal(t, Queen, b.PieceTypeAt(White, SqA8))
	assert.Equal(t, PtNone, b.PieceTypeAt(White, SqA7))
}

func TestApplyMoveInvalidSourceIsNoop(t *testing.T) {
	b := StartPosition()
	nb := b.ApplyMove(NewMove(SqE4, SqE5, PtNone))
	assert.Equal(t, b, nb)
}

func TestApplyNullMove(t *testing.T) {
	b := StartPosition()
	nb := b.ApplyNullMove()
	assert.Equal(t, Black, nb.SideToMove)
	assert.Equal(t, b.Pieces, nb.Pieces)
	assert.Equal(t, b.Castling, nb.Castling)
	assert.Equal(t, b.EnPassant, nb.EnPassant)
}

func TestOccupancyHistoryRingBuffer(t *testing.T) {
	b := StartPosition()
	assert.Equal(t, b.AllOccupied(), b.History()[0])

	nb := b.ApplyMove(NewMove(SqE2, SqE4, PtNone))
	assert.Equal(t, nb.AllOccupied(), nb.History()[1])
}

func TestPieceAt(t *testing.T) {
	b := StartPosition()
	assert.Equal(t, MakePiece(White, King), b.PieceAt(SqE1))
	assert.Equal(t, MakePiece(Black, Pawn), b.PieceAt(SqD7))
	assert.Equal(t, PieceNone, b.PieceAt(SqE4))
}
