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

// CastlingRights tracks which castling moves are still available for
// each side. Rights only ever get removed during a game, never added
// back, so this state is monotonically weakening.
type CastlingRights struct {
	WhiteOO  bool
	WhiteOOO bool
	BlackOO  bool
	BlackOOO bool
}

// CastlingAny is the starting position's full set of castling rights.
var CastlingAny = CastlingRights{WhiteOO: true, WhiteOOO: true, BlackOO: true, BlackOOO: true}

// CastlingNone is the empty set of castling rights.
var CastlingNone = CastlingRights{}

// Has reports whether c still holds the kingside (kingside == true) or
// queenside (kingside == false) castling right.
func (cr CastlingRights) Has(c Color, kingside bool) bool {
	switch {
	case c == White && kingside:
		return cr.WhiteOO
	case c == White && !kingside:
		return cr.WhiteOOO
	case c == Black && kingside:
		return cr.BlackOO
	default:
		return cr.BlackOOO
	}
}

// RemoveColor clears both castling rights for c, as happens once c's
// king has moved.
func (cr *CastlingRights) RemoveColor(c Color) {
	if c == White {
		cr.WhiteOO = false
		cr.WhiteOOO = false
	} else {
		cr.BlackOO = false
		cr.BlackOOO = false
	}
}

// RemoveRookSide clears the single castling right associated with the
// rook starting on the given square, as happens once that rook has
// moved or been captured.
func (cr *CastlingRights) RemoveRookSide(sq Square) {
	switch sq {
	case SqA1:
		cr.WhiteOOO = false
	case SqH1:
		cr.WhiteOO = false
	case SqA8:
		cr.BlackOOO = false
	case SqH8:
		cr.BlackOO = false
	}
}

// String returns the FEN-style castling availability string, e.g.
// "KQkq", or "-" if no rights remain.
func (cr CastlingRights) String() string {
	s := ""
	if cr.WhiteOO {
		s += "K"
	}
	if cr.WhiteOOO {
		s += "Q"
	}
	if cr.BlackOO {
		s += "k"
	}
	if cr.BlackOOO {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
