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

package types

import (
	"fmt"
	"strings"
)

// Move packs a from-square, to-square and an optional promotion piece
// type into a single unsigned integer.
//
//	BITMAP
//	1 1 1 1 1
//	4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//	-----------------------------
//	                  1 1 1 1 1 1  to
//	      1 1 1 1 1 1              from
//	1 1 1                          promotion piece type (pt-Knight+1 in 0..4)
type Move uint32

// MoveNone is the zero value, not a valid move.
const MoveNone Move = 0

const (
	fromShift     uint = 6
	promTypeShift uint = 12

	squareMask   Move = 0x3F
	toMask            = squareMask
	fromMask          = squareMask << fromShift
	promTypeMask Move = 7 << promTypeShift
)

// NewMove encodes a move from from to to. If promType is a valid
// promotion piece type (Knight..Queen) it is packed in as well;
// otherwise the move carries no promotion.
func NewMove(from, to Square, promType PieceType) Move {
	p := PieceType(0)
	if promType >= Knight && promType <= Queen {
		p = promType - Knight + 1
	}
	return Move(to) | Move(from)<<fromShift | Move(p)<<promTypeShift
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square(m & toMask)
}

// PromotionType returns the piece type a pawn promotes to, or PtNone if
// this move carries no promotion.
func (m Move) PromotionType() PieceType {
	p := PieceType((m & promTypeMask) >> promTypeShift)
	if p == 0 {
		return PtNone
	}
	return p + Knight - 1
}

// IsPromotion reports whether m carries a promotion piece type.
func (m Move) IsPromotion() bool {
	return m.PromotionType() != PtNone
}

// IsValid reports whether m has well-formed squares and, when present,
// a well-formed promotion type. MoveNone is not valid.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() &&
		(m.PromotionType() == PtNone || m.PromotionType().IsValid())
}

// String returns a UCI-compatible string such as "e2e4" or "a7a8q".
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return sb.String()
}

// StringUci is an alias for String, kept for call sites (moveslice,
// uci) that spell out the UCI-format accessor explicitly.
func (m Move) StringUci() string {
	return m.String()
}

// StringBits returns a string with the decoded fields of m, useful for
// debugging move encoding.
func (m Move) StringBits() string {
	return fmt.Sprintf("Move{from:%s to:%s prom:%s (%d)}",
		m.From().String(), m.To().String(), m.PromotionType().Char(), uint32(m))
}
