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

// EnPassantFiles is a one-bit-per-file mask recording which file, if
// any, just saw a double pawn push and is therefore eligible for an
// en-passant capture on the very next move. At most one bit is ever
// set.
type EnPassantFiles uint8

// NoEnPassantFile means no en-passant capture is available.
const NoEnPassantFile EnPassantFiles = 0

// EnPassantFileOf returns the single-file mask for f.
func EnPassantFileOf(f File) EnPassantFiles {
	return EnPassantFiles(1) << f
}

// IsNone reports whether no en-passant capture is available.
func (e EnPassantFiles) IsNone() bool {
	return e == NoEnPassantFile
}

// Has reports whether f is the file eligible for en-passant capture.
func (e EnPassantFiles) Has(f File) bool {
	return e&EnPassantFileOf(f) != 0
}

// File returns the single file eligible for en-passant capture, or
// FileNone if there is none.
func (e EnPassantFiles) File() File {
	if e == NoEnPassantFile {
		return FileNone
	}
	for f := FileA; f <= FileH; f++ {
		if e.Has(f) {
			return f
		}
	}
	return FileNone
}
