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

func TestNewSearch(t *testing.T) {
	s := NewSearch()
	assert.NotNil(t, s.eval)
}

func TestRun_StartPosition(t *testing.T) {
	s := NewSearch()
	b := board.StartPosition()
	results := s.Run(b)
	assert.Equal(t, movegen.LegalMoves(b).Len(), len(results))
	assert.Greater(t, s.statistics.NodesVisited, uint64(0))
}

func TestBestMove_StartPosition(t *testing.T) {
	s := NewSearch()
	b := board.StartPosition()
	m, v := s.BestMove(b)
	assert.True(t, m.IsValid())
	assert.NotEqual(t, ValueNA, v)
}

// TestFoolsMate: after "f2f3 e7e5 g2g4" it is black to move and Qh4#
// is forced; the search must find it and score it as mate.
func TestFoolsMate(t *testing.T) {
	b := board.StartPosition()
	for _, uciMove := range []string{"f2f3", "e7e5", "g2g4"} {
		m, ok := movegen.MoveFromUCI(b, uciMove)
		assert.True(t, ok, "move %s should parse", uciMove)
		b = b.ApplyMove(m)
	}

	s := NewSearch()
	best, value := s.BestMove(b)
	assert.Equal(t, "d8h4", best.StringUci())
	assert.GreaterOrEqual(t, int(value), int(EvalMate))
}

// preStalematePosition is one white queen move away from the textbook
// stalemate (black king a8, white king c7, white queen b6, black to
// move): white king c7, white queen b5, black king a8, white to move.
// Playing b5b6 delivers stalemate.
func preStalematePosition() board.Board {
	b := board.Board{SideToMove: White}
	b.Pieces[White][King].PushSquare(SquareOf(FileC, Rank7))
	b.Pieces[White][Queen].PushSquare(SquareOf(FileB, Rank5))
	b.Pieces[Black][King].PushSquare(SquareOf(FileA, Rank8))
	return b
}

// TestStalemateReturnsDraw: a position with no legal moves and a safe
// king must score exactly 0, never a mate score.
func TestStalemateReturnsDraw(t *testing.T) {
	pre := preStalematePosition()
	m, ok := movegen.MoveFromUCI(pre, "b5b6")
	assert.True(t, ok)

	stalemated := pre.ApplyMove(m)
	assert.Equal(t, 0, movegen.LegalMoves(stalemated).Len())
	assert.True(t, movegen.IsPositionLegal(stalemated.ApplyNullMove()))

	s := NewSearch()
	v := s.negamaxMin(pre, m, 1, -infinity, infinity)
	assert.Equal(t, ValueDraw, v)
}

func TestStatisticsResetBetweenRuns(t *testing.T) {
	s := NewSearch()
	b := board.StartPosition()
	s.Run(b)
	first := s.statistics.NodesVisited
	assert.Greater(t, first, uint64(0))
	s.Run(b)
	second := s.statistics.NodesVisited
	assert.Equal(t, first, second)
}
