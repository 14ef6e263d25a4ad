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

// Package moveslice provides a slice type for chess moves, used to
// carry pseudo-legal and legal move lists through the generator and
// search. New preallocates capacity; PushBack still grows the slice
// past it like append.
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/kestrel-chess/kestrel/types"
)

// MoveSlice represents a data structure (go slice) for Move.
type MoveSlice []Move

// New creates a new move slice with the given capacity and 0 elements.
// Identical to MoveSlice(make([]Move, 0, cap)).
func New(cap int) MoveSlice {
	return make([]Move, 0, cap)
}

// PushBack appends an element at the end of the slice.
func (ma *MoveSlice) PushBack(m Move) {
	*ma = append(*ma, m)
}

// PopBack removes and returns the move from the back of the slice.
// If the slice is empty, the call panics.
func (ma *MoveSlice) PopBack() Move {
	if len(*ma) <= 0 {
		panic("MoveSlice: PopBack() called on empty slice")
	}
	backMove := (*ma)[len(*ma)-1]
	*ma = (*ma)[:len(*ma)-1]
	return backMove
}

// Len returns the number of moves currently stored.
func (ma MoveSlice) Len() int {
	return len(ma)
}

// At returns the move at index i in the slice without removing it.
// Index will not be checked against bounds.
func (ma MoveSlice) At(i int) Move {
	return ma[i]
}

// Clear removes all moves from the slice, but retains the current
// capacity. Useful when a slice is reused per ply to avoid
// reallocating at every node of the search tree.
func (ma *MoveSlice) Clear() {
	*ma = (*ma)[:0]
}

// Data allows access to the underlying slice which is good for range
// loops. Use with care!
func (ma MoveSlice) Data() []Move {
	return ma
}

// String returns a string representation of a move list.
func (ma MoveSlice) String() string {
	var sb strings.Builder
	size := len(ma)
	sb.WriteString(fmt.Sprintf("MoveSlice: [%d] { ", size))
	for i := 0; i < size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ma[i].String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// StringUci returns a string with a space separated list of all moves
// in the slice in UCI protocol format.
func (ma MoveSlice) StringUci() string {
	var sb strings.Builder
	size := len(ma)
	for i := 0; i < size; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(ma[i].StringUci())
	}
	return sb.String()
}
