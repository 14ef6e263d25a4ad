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
	"math/bits"
	"strings"

	"github.com/kestrel-chess/kestrel/util"
)

// Bitboard is a 64-bit set of squares, one bit per Square.
type Bitboard uint64

//noinspection ALL
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = 1

	FileABb Bitboard = 0x0101010101010101
	FileBBb Bitboard = FileABb << 1
	FileCBb Bitboard = FileABb << 2
	FileDBb Bitboard = FileABb << 3
	FileEBb Bitboard = FileABb << 4
	FileFBb Bitboard = FileABb << 5
	FileGBb Bitboard = FileABb << 6
	FileHBb Bitboard = FileABb << 7

	Rank1Bb Bitboard = 0xFF
	Rank2Bb Bitboard = Rank1Bb << (8 * 1)
	Rank3Bb Bitboard = Rank1Bb << (8 * 2)
	Rank4Bb Bitboard = Rank1Bb << (8 * 3)
	Rank5Bb Bitboard = Rank1Bb << (8 * 4)
	Rank6Bb Bitboard = Rank1Bb << (8 * 5)
	Rank7Bb Bitboard = Rank1Bb << (8 * 6)
	Rank8Bb Bitboard = Rank1Bb << (8 * 7)

	notFileABb Bitboard = ^FileABb
	notFileHBb Bitboard = ^FileHBb
	notRank1Bb Bitboard = ^Rank1Bb
	notRank8Bb Bitboard = ^Rank8Bb
)

// PushSquare returns b with sq added.
func PushSquare(b Bitboard, sq Square) Bitboard {
	return b | sq.Bitboard()
}

// PushSquare adds sq to *b in place.
func (b *Bitboard) PushSquare(sq Square) {
	*b |= sq.Bitboard()
}

// PopSquare returns b with sq removed.
func PopSquare(b Bitboard, sq Square) Bitboard {
	return b &^ sq.Bitboard()
}

// PopSquare removes sq from *b in place.
func (b *Bitboard) PopSquare(sq Square) {
	*b &^= sq.Bitboard()
}

// ShiftBitboard slides every bit of b one square in direction d,
// clearing bits that would wrap around a board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (b & notRank8Bb) << 8
	case South:
		return (b & notRank1Bb) >> 8
	case East:
		return (b & notFileHBb) << 1
	case West:
		return (b & notFileABb) >> 1
	case Northeast:
		return (b & notRank8Bb & notFileHBb) << 9
	case Southeast:
		return (b & notRank1Bb & notFileHBb) >> 7
	case Southwest:
		return (b & notRank1Bb & notFileABb) >> 9
	case Northwest:
		return (b & notRank8Bb & notFileABb) << 7
	}
	return BbZero
}

// ShiftKnightHop slides every bit of b by one knight hop, clearing bits
// that would wrap around a board edge.
func ShiftKnightHop(b Bitboard, h KnightHop) Bitboard {
	switch h {
	case NorthNorthEast:
		return (b & notRank8Bb & notRank7Bb & notFileHBb) << 17
	case NorthEastEast:
		return (b & notRank8Bb & notFileHBb & notFileGBb) << 10
	case SouthEastEast:
		return (b & notRank1Bb & notFileHBb & notFileGBb) >> 6
	case SouthSouthEast:
		return (b & notRank1Bb & notRank2Bb & notFileHBb) >> 15
	case SouthSouthWest:
		return (b & notRank1Bb & notRank2Bb & notFileABb) >> 17
	case SouthWestWest:
		return (b & notRank1Bb & notFileABb & notFileBBb) >> 10
	case NorthWestWest:
		return (b & notRank8Bb & notFileABb & notFileBBb) << 6
	case NorthNorthWest:
		return (b & notRank8Bb & notRank7Bb & notFileABb) << 15
	}
	return BbZero
}

const (
	notRank2Bb Bitboard = ^Rank2Bb
	notRank7Bb Bitboard = ^Rank7Bb
	notFileBBb Bitboard = ^FileBBb
	notFileGBb Bitboard = ^FileGBb
)

// Lsb returns the least significant occupied square, or SqNone if b is
// empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant occupied square, or SqNone if b is
// empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb removes and returns the least significant occupied square, or
// SqNone if *b is empty.
func (b *Bitboard) PopLsb() Square {
	lsb := b.Lsb()
	if lsb == SqNone {
		return SqNone
	}
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of occupied squares in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bitboard() != 0
}

// FlipBitboard mirrors b vertically (rank 1 <-> rank 8), reinterpreting
// a black-to-move position as if it were white to move, or back. It is
// its own inverse.
func FlipBitboard(b Bitboard) Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// String returns the raw 64-bit binary representation of b.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StrBoard renders b as an 8x8 ASCII board, rank 8 at the top.
func (b Bitboard) StrBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b&SquareOf(f, r).Bitboard() != 0 {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}

var fileBbByIndex = [8]Bitboard{FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb}

// FileBitboard returns the full-file bitboard for f.
func FileBitboard(f File) Bitboard {
	return fileBbByIndex[f]
}

// FileDistance returns the absolute file distance between f1 and f2.
func FileDistance(f1, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute rank distance between r1 and r2.
func RankDistance(r1, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}
