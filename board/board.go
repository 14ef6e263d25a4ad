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

// Package board holds the composite chess position: per-color piece
// bitboards, side to move, castling rights, en-passant state and a
// short occupancy history. Boards are value types; every mutation
// (ApplyMove, ApplyNullMove) returns a new Board rather than mutating
// the receiver in place, so a search tree can hold one Board per node
// without any undo bookkeeping.
package board

import (
	"strings"

	. "github.com/kestrel-chess/kestrel/types"
)

// Pieces holds the six piece-type bitboards for one color, indexed by
// PieceType (index 0, PtNone, is unused). The six bitboards are
// pairwise disjoint.
type Pieces [PtLength]Bitboard

// All returns the union of every piece-type bitboard.
func (p Pieces) All() Bitboard {
	var bb Bitboard
	for pt := King; pt <= Queen; pt++ {
		bb |= p[pt]
	}
	return bb
}

// TypeAt returns the piece type occupying sq, or PtNone if none of the
// six bitboards has sq set.
func (p Pieces) TypeAt(sq Square) PieceType {
	for pt := King; pt <= Queen; pt++ {
		if p[pt].Has(sq) {
			return pt
		}
	}
	return PtNone
}

// HistorySize is the number of past occupancy snapshots retained by a
// Board. Reserved for future repetition detection; the current search
// does not consult it.
const HistorySize = 16

// Board is the aggregate chess position: both sides' piece sets, whose
// turn it is, castling rights, the en-passant file mask and a ring
// buffer of recent full-occupancy snapshots.
type Board struct {
	Pieces     [2]Pieces
	SideToMove Color
	Castling   CastlingRights
	EnPassant  EnPassantFiles

	history     [HistorySize]Bitboard
	historyHead int
}

// StartPosition returns the standard chess starting position, White
// to move with full castling rights and no en-passant target.
func StartPosition() Board {
	var b Board
	b.SideToMove = White
	b.Castling = CastlingAny

	b.Pieces[White][Pawn] = Rank2Bb
	b.Pieces[White][Rook] = SqA1.Bitboard() | SqH1.Bitboard()
	b.Pieces[White][Knight] = SqB1.Bitboard() | SqG1.Bitboard()
	b.Pieces[White][Bishop] = SqC1.Bitboard() | SqF1.Bitboard()
	b.Pieces[White][Queen] = SqD1.Bitboard()
	b.Pieces[White][King] = SqE1.Bitboard()

	b.Pieces[Black][Pawn] = Rank7Bb
	b.Pieces[Black][Rook] = SqA8.Bitboard() | SqH8.Bitboard()
	b.Pieces[Black][Knight] = SqB8.Bitboard() | SqG8.Bitboard()
	b.Pieces[Black][Bishop] = SqC8.Bitboard() | SqF8.Bitboard()
	b.Pieces[Black][Queen] = SqD8.Bitboard()
	b.Pieces[Black][King] = SqE8.Bitboard()

	b.pushHistory(b.Occupied(White) | b.Occupied(Black))
	return b
}

// Occupied returns the union of all of c's pieces.
func (b *Board) Occupied(c Color) Bitboard {
	return b.Pieces[c].All()
}

// AllOccupied returns the union of every piece on the board.
func (b *Board) AllOccupied() Bitboard {
	return b.Occupied(White) | b.Occupied(Black)
}

// PieceTypeAt returns the piece type belonging to c occupying sq, or
// PtNone.
func (b *Board) PieceTypeAt(c Color, sq Square) PieceType {
	return b.Pieces[c].TypeAt(sq)
}

// PieceAt returns the piece occupying sq from either side, or
// PieceNone if sq is empty.
func (b *Board) PieceAt(sq Square) Piece {
	if pt := b.Pieces[White].TypeAt(sq); pt != PtNone {
		return MakePiece(White, pt)
	}
	if pt := b.Pieces[Black].TypeAt(sq); pt != PtNone {
		return MakePiece(Black, pt)
	}
	return PieceNone
}

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c Color) Square {
	return b.Pieces[c][King].Lsb()
}

func (b *Board) pushHistory(occ Bitboard) {
	b.history[b.historyHead] = occ
	b.historyHead = (b.historyHead + 1) % HistorySize
}

// History returns the occupancy ring buffer in slot order; once the
// buffer has wrapped, the oldest snapshot is not at index 0. It is
// retained for a future repetition-detection extension and is not
// consulted by the current search.
func (b *Board) History() [HistorySize]Bitboard {
	return b.history
}

// StringBoard renders the board as an 8x8 ASCII matrix, rank 8 on top.
func (b *Board) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			sb.WriteString("| ")
			sb.WriteString(b.PieceAt(SquareOf(f, r)).String())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}

// String returns a human-readable dump of the board and its state.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(b.StringBoard())
	sb.WriteString("Side to move   : ")
	sb.WriteString(b.SideToMove.String())
	sb.WriteString("\nCastling       : ")
	sb.WriteString(b.Castling.String())
	sb.WriteString("\nEn passant file: ")
	sb.WriteString(b.EnPassant.File().String())
	sb.WriteString("\n")
	return sb.String()
}
