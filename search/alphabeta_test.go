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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-chess/kestrel/board"
	"github.com/kestrel-chess/kestrel/movegen"
	. "github.com/kestrel-chess/kestrel/types"
)

// TestEvaluateMove_SideSwitch checks that EvaluateMove dispatches to
// negamaxMin for a white mover and to the negated negamaxMax for a
// black mover.
func TestEvaluateMove_SideSwitch(t *testing.T) {
	s := NewSearch()
	b := board.StartPosition()
	m, ok := movegen.MoveFromUCI(b, "e2e4")
	assert.True(t, ok)

	want := s.negamaxMin(b, m, 1, -infinity, infinity)
	got := s.EvaluateMove(b, m, 2)
	assert.Equal(t, want, got)

	bb := b.ApplyMove(m)
	mb, ok := movegen.MoveFromUCI(bb, "e7e5")
	assert.True(t, ok)

	want = -s.negamaxMax(bb, mb, 1, -infinity, infinity)
	got = s.EvaluateMove(bb, mb, 2)
	assert.Equal(t, want, got)
}

// TestNegamaxMax_HorizonCallsEvaluate checks that at remDepth 0,
// negamaxMax returns the static evaluation of the position after m
// rather than recursing further.
func TestNegamaxMax_HorizonCallsEvaluate(t *testing.T) {
	s := NewSearch()
	b := board.StartPosition()
	m, ok := movegen.MoveFromUCI(b, "e2e4")
	assert.True(t, ok)

	next := b.ApplyMove(m)
	want := s.eval.Evaluate(next)
	got := s.negamaxMax(b, m, 0, -infinity, infinity)
	assert.Equal(t, want, got)
}

// TestNegamaxMax_CheckmateScore exercises the mated branch. b is black
// to move, matching the calling discipline EvaluateMove uses to reach
// negamaxMax (b.SideToMove == Black). Playing Qh4# leaves white with
// no legal replies while in check, so negamaxMax must return the
// negative EvalMate-biased mate score.
func TestNegamaxMax_CheckmateScore(t *testing.T) {
	b := board.StartPosition()
	for _, uciMove := range []string{"f2f3", "e7e5", "g2g4"} {
		m, ok := movegen.MoveFromUCI(b, uciMove)
		assert.True(t, ok)
		b = b.ApplyMove(m)
	}
	// b is now black to move, about to play Qh4#.
	m, ok := movegen.MoveFromUCI(b, "d8h4")
	assert.True(t, ok)

	mated := b.ApplyMove(m)
	assert.Equal(t, 0, movegen.LegalMoves(mated).Len())
	assert.False(t, movegen.IsPositionLegal(mated.ApplyNullMove()))

	s := NewSearch()
	v := s.negamaxMax(b, m, 1, -infinity, infinity)
	assert.Equal(t, -(EvalMate + Value(1)), v)
}

// TestAlphaBetaCutoff checks the structural contract of negamaxMax: the
// returned value never exceeds beta. negamaxMax is called the way
// EvaluateMove calls it - on a position where it is black to move, so
// the reply it searches is white's turn.
func TestAlphaBetaCutoff(t *testing.T) {
	s := NewSearch()
	b0 := board.StartPosition()
	m0, ok := movegen.MoveFromUCI(b0, "e2e4")
	assert.True(t, ok)
	b1 := b0.ApplyMove(m0)

	m1, ok := movegen.MoveFromUCI(b1, "e7e5")
	assert.True(t, ok)

	v := s.negamaxMax(b1, m1, 2, -infinity, ValueZero)
	assert.LessOrEqual(t, int(v), int(ValueZero))
}
