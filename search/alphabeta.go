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
	"github.com/kestrel-chess/kestrel/board"
	"github.com/kestrel-chess/kestrel/movegen"
	. "github.com/kestrel-chess/kestrel/types"
)

// EvaluateMove scores playing m on b, depth plies deep, from the
// perspective of the side to move on b (higher is always better for
// that side, regardless of color - this is the convention Run/BestMove
// rely on to pick the last element of a score-sorted list).
//
// The sign flip only happens for the Black branch: White's root moves
// are scored by the plain minimizing continuation (negamaxMin, since
// after White moves it is Black's turn to minimize White's score), so
// the returned value is already "higher is better for White". Black's
// root moves are scored by negamaxMax (White moves next and
// maximizes), whose return value is White's-perspective - negating it
// turns "higher is better for White" into "higher is better for
// Black". Run's ascending sort and pick-the-last-element depend on
// this asymmetry; change both together or neither.
func (s *Search) EvaluateMove(b board.Board, m Move, depth int) Value {
	if b.SideToMove == White {
		return s.negamaxMin(b, m, depth-1, -infinity, infinity)
	}
	return -s.negamaxMax(b, m, depth-1, -infinity, infinity)
}

// negamaxMax applies m to b and searches the resulting position, where
// it is White's turn to maximize White's score. Values returned are
// always from White's perspective.
func (s *Search) negamaxMax(b board.Board, m Move, remDepth int, alpha, beta Value) Value {
	next := b.ApplyMove(m)
	s.statistics.NodesVisited++

	if trace {
		s.statistics.CurrentVariation.PushBack(m)
		defer s.statistics.CurrentVariation.PopBack()
		s.log.Debugf("max depth=%-2.d a=%-8.d b=%-8.d %s", remDepth, alpha, beta, s.statistics.CurrentVariation.StringUci())
	}

	if remDepth == 0 {
		return s.eval.Evaluate(next)
	}

	legal := movegen.LegalMoves(next)
	if legal.Len() == 0 {
		if movegen.IsPositionLegal(next.ApplyNullMove()) {
			return ValueDraw
		}
		return -(EvalMate + Value(remDepth))
	}

	for _, cm := range legal.Data() {
		value := s.negamaxMin(next, cm, remDepth-1, alpha, beta)
		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}
	return alpha
}

// negamaxMin applies m to b and searches the resulting position, where
// it is Black's turn to minimize White's score. Values returned are
// always from White's perspective.
func (s *Search) negamaxMin(b board.Board, m Move, remDepth int, alpha, beta Value) Value {
	next := b.ApplyMove(m)
	s.statistics.NodesVisited++

	if trace {
		s.statistics.CurrentVariation.PushBack(m)
		defer s.statistics.CurrentVariation.PopBack()
		s.log.Debugf("min depth=%-2.d a=%-8.d b=%-8.d %s", remDepth, alpha, beta, s.statistics.CurrentVariation.StringUci())
	}

	if remDepth == 0 {
		return s.eval.Evaluate(next)
	}

	legal := movegen.LegalMoves(next)
	if legal.Len() == 0 {
		if movegen.IsPositionLegal(next.ApplyNullMove()) {
			return ValueDraw
		}
		return EvalMate + Value(remDepth)
	}

	for _, cm := range legal.Data() {
		value := s.negamaxMax(next, cm, remDepth-1, alpha, beta)
		if value <= alpha {
			return alpha
		}
		if value < beta {
			beta = value
		}
	}
	return beta
}
