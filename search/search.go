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

// Package search implements the fixed-depth alpha-beta search: given a
// board, it scores every legal root move and recommends the
// highest-scoring one. There is no iterative deepening, no time
// management, no transposition table and no quiescence search - the
// search always runs to exactly config.Settings.Search.Depth plies,
// blocking the caller until it completes.
package search

import (
	"sort"

	"github.com/op/go-logging"

	"github.com/kestrel-chess/kestrel/board"
	"github.com/kestrel-chess/kestrel/config"
	"github.com/kestrel-chess/kestrel/evaluator"
	myLogging "github.com/kestrel-chess/kestrel/logging"
	"github.com/kestrel-chess/kestrel/movegen"
	. "github.com/kestrel-chess/kestrel/types"
)

// trace, when true, makes the search log every node entered/left at
// Debug level. Expensive - leave off outside of interactive debugging.
var trace = false

// infinity bounds the initial alpha-beta window, comfortably larger
// than any EvalMate-biased score.
const infinity Value = 1_000_000_000

// Statistics collects counters from the most recent Run. CurrentVariation
// holds the line currently being searched; it is only filled, and only
// written to the search log, when trace is on.
type Statistics struct {
	NodesVisited     uint64
	CurrentVariation Variation
}

// RootResult pairs a root move with the score Search computed for it.
type RootResult struct {
	Move  Move
	Value Value
}

// Search holds the state for one fixed-depth search: an evaluator
// instance and run statistics. Create one with NewSearch() and reuse
// it across searches; it carries no board state of its own.
type Search struct {
	log        *logging.Logger
	eval       *evaluator.Evaluator
	statistics Statistics
}

// NewSearch creates a ready-to-use Search.
func NewSearch() *Search {
	return &Search{
		log:  myLogging.GetSearchLog(),
		eval: evaluator.NewEvaluator(),
	}
}

// Statistics returns the counters from the most recently completed Run.
func (s *Search) Statistics() Statistics {
	return s.statistics
}

// Run searches every legal move for b's side to move at the
// configured fixed depth and returns the results sorted ascending by
// score - the recommended move is the last element (see EvaluateMove's
// doc comment for why "highest score" is always correct here
// regardless of which side is to move). Returns nil if b has no
// legal moves; the caller determines mate/stalemate in that case.
func (s *Search) Run(b board.Board) []RootResult {
	s.statistics = Statistics{}

	depth := config.Settings.Search.Depth
	rootMoves := movegen.LegalMoves(b)
	if rootMoves.Len() == 0 {
		return nil
	}

	results := make([]RootResult, 0, rootMoves.Len())
	for _, m := range rootMoves.Data() {
		if trace {
			s.log.Debugf("root move %s", m.StringUci())
		}
		value := s.EvaluateMove(b, m, depth)
		results = append(results, RootResult{Move: m, Value: value})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Value < results[j].Value
	})
	return results
}

// BestMove runs the search and returns the highest-scoring root move
// and its score, or MoveNone if b has no legal moves.
func (s *Search) BestMove(b board.Board) (Move, Value) {
	results := s.Run(b)
	if len(results) == 0 {
		return MoveNone, ValueZero
	}
	best := results[len(results)-1]
	return best.Move, best.Value
}
