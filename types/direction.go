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

// Direction is one of the eight compass steps a sliding piece or king
// can move along.
type Direction int8

//noinspection ALL
const (
	North     Direction = 8
	East      Direction = 1
	South     Direction = -North
	West      Direction = -East
	Northeast Direction = North + East
	Southeast Direction = South + East
	Southwest Direction = South + West
	Northwest Direction = North + West
)

// String returns a short label for d.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	case Northeast:
		return "NE"
	case Southeast:
		return "SE"
	case Southwest:
		return "SW"
	case Northwest:
		return "NW"
	default:
		return "-"
	}
}

// KnightHop is one of the eight L-shaped knight moves.
type KnightHop int8

//noinspection ALL
const (
	NorthNorthEast KnightHop = KnightHop(North + North + East)
	NorthEastEast  KnightHop = KnightHop(North + East + East)
	SouthEastEast  KnightHop = KnightHop(South + East + East)
	SouthSouthEast KnightHop = KnightHop(South + South + East)
	SouthSouthWest KnightHop = KnightHop(South + South + West)
	SouthWestWest  KnightHop = KnightHop(South + West + West)
	NorthWestWest  KnightHop = KnightHop(North + West + West)
	NorthNorthWest KnightHop = KnightHop(North + North + West)
)

// String returns a short label for h.
func (h KnightHop) String() string {
	switch h {
	case NorthNorthEast:
		return "NNE"
	case NorthEastEast:
		return "NEE"
	case SouthEastEast:
		return "SEE"
	case SouthSouthEast:
		return "SSE"
	case SouthSouthWest:
		return "SSW"
	case SouthWestWest:
		return "SWW"
	case NorthWestWest:
		return "NWW"
	case NorthNorthWest:
		return "NNW"
	default:
		return "-"
	}
}
