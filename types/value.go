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
	"strconv"
	"strings"

	"github.com/kestrel-chess/kestrel/util"
)

// Value is a centipawn evaluation, positive favoring the side being
// scored for.
type Value int32

// Constants for values. EvalMate matches the mate score used throughout
// the search, biased by remaining depth so that faster mates score
// higher than slower ones (see search.EvaluateMove).
const (
	ValueZero     Value = 0
	ValueDraw     Value = 0
	ValueNA       Value = -1_000_000_000
	EvalMate      Value = 1_000_000
	MateThreshold Value = EvalMate - 1_000
)

// FixedSearchDepth is the default search depth (the default of
// config.Settings.Search.Depth). A mate score's remaining-depth bias
// (EvalMate + remDepth) is only convertible to a human "plies to mate"
// count relative to the total depth the search ran at; String always
// uses this constant, not the configured depth, so its mate count is
// off when the search runs at any other depth.
const FixedSearchDepth = 6

// IsMateValue reports whether v is within mate-scoring range, i.e. a
// forced mate was found rather than a plain material/positional score.
func (v Value) IsMateValue() bool {
	return util.Abs(int(v)) > int(MateThreshold) && util.Abs(int(v)) <= int(EvalMate)+1_000
}

// String formats v the way a UCI "info score" line would: "cp N" for a
// plain score or "mate N" (N negative when losing) for a forced mate.
// Mate scores are converted to a moves-to-mate count by reversing the
// remaining-depth bias alphabeta.go applies, against FixedSearchDepth:
// remDepth = |v| - EvalMate is how much depth was left when the mate
// was scored, so FixedSearchDepth - remDepth plies were used reaching it.
func (v Value) String() string {
	var sb strings.Builder
	switch {
	case v.IsMateValue():
		sb.WriteString("mate ")
		remDepth := util.Abs(int(v)) - int(EvalMate)
		pliesUsed := FixedSearchDepth - remDepth
		mateIn := (pliesUsed + 1) / 2
		if v < ValueZero {
			sb.WriteString("-")
		}
		sb.WriteString(strconv.Itoa(mateIn))
	case v == ValueNA:
		sb.WriteString("N/A")
	default:
		sb.WriteString("cp ")
		sb.WriteString(strconv.Itoa(int(v)))
	}
	return sb.String()
}
