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

// PieceType is one of the six chess piece kinds, independent of color.
type PieceType int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	PtNone   PieceType = 0
	King     PieceType = 1 // Non sliding
	Pawn     PieceType = 2 // Non sliding
	Knight   PieceType = 3 // Non sliding
	Bishop   PieceType = 4 // Sliding
	Rook     PieceType = 5 // Sliding
	Queen    PieceType = 6 // Sliding
	PtLength PieceType = 7
)

var pieceTypeToString = [PtLength]string{"NoPiece", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// String returns a word name for pt.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

const pieceTypeToChar = "-KPNBRQ"

// Char returns the single-character UCI/FEN letter for pt.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

var pieceTypeValue = [PtLength]int{0, 2000, 100, 320, 330, 500, 900}

// ValueOf returns the material value of pt in centipawns.
func (pt PieceType) ValueOf() int {
	return pieceTypeValue[pt]
}

// IsValid reports whether pt is one of King..Queen.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}
