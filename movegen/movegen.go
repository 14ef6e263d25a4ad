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

// Package movegen generates pseudo-legal and legal moves for a board.
// Generation always happens in the color-relative view: black's
// bitboards are byte-reversed (the types.FlipBitboard involution)
// so that the mover's back rank is always rank 1 and "forward" is
// always north, letting every piece-type generator be written once
// and reused for both colors.
package movegen

import (
	"github.com/kestrel-chess/kestrel/assert"
	"github.com/kestrel-chess/kestrel/board"
	"github.com/kestrel-chess/kestrel/moveslice"
	. "github.com/kestrel-chess/kestrel/types"
)

var diagonalDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}
var orthogonalDirs = [4]Direction{North, South, East, West}
var kingDirs = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}
var knightHops = [8]KnightHop{
	NorthNorthEast, NorthEastEast, SouthEastEast, SouthSouthEast,
	SouthSouthWest, SouthWestWest, NorthWestWest, NorthNorthWest,
}

// mirrorSquare returns sq unchanged for White, or its vertical mirror
// (rank 1 <-> rank 8) for Black — the single-square equivalent of
// FlipBitboard, used to translate relative-view squares produced by
// the generator back into absolute board squares.
func mirrorSquare(sq Square, c Color) Square {
	if c == White || sq == SqNone {
		return sq
	}
	return Square(uint8(sq) ^ 56)
}

// relBitboard returns bb unchanged for White, or vertically flipped
// for Black, putting it into the mover's relative view.
func relBitboard(bb Bitboard, c Color) Bitboard {
	if c == White {
		return bb
	}
	return FlipBitboard(bb)
}

// emitOffset decodes every set bit of bb (destinations in the mover's
// relative view) into a Move with the implied origin square
// (destination - offset, still in relative view) and appends it to
// list. promote controls whether a destination on relative rank 8 is
// tagged as a promotion; promotions are always to a queen.
func emitOffset(bb Bitboard, offset int8, mover Color, promote bool, list *moveslice.MoveSlice) {
	for bb != BbZero {
		toRel := bb.PopLsb()
		fromRel := Square(int8(toRel) - offset)
		promo := PtNone
		if promote && toRel.RankOf() == Rank8 {
			promo = Queen
		}
		list.PushBack(NewMove(mirrorSquare(fromRel, mover), mirrorSquare(toRel, mover), promo))
	}
}

// PseudoMoves generates every pseudo-legal move for b's side to move:
// moves that obey piece-movement rules but may leave the mover's own
// king in check. Captures and castles are emitted before quiet moves
// so the natural move order seeds alpha-beta pruning.
func PseudoMoves(b board.Board) moveslice.MoveSlice {
	mover := b.SideToMove
	opp := mover.Flip()

	friendlyAll := relBitboard(b.Occupied(mover), mover)
	enemyAll := relBitboard(b.Occupied(opp), mover)
	allOccupied := friendlyAll | enemyAll

	tactical := moveslice.New(MaxMoves)
	quiet := moveslice.New(MaxMoves)

	genPawnMoves(&b, mover, enemyAll, allOccupied, &tactical, &quiet)
	genKnightMoves(&b, mover, enemyAll, allOccupied, &tactical, &quiet)
	genSliderMoves(&b, mover, Bishop, diagonalDirs[:], enemyAll, allOccupied, &tactical, &quiet)
	genSliderMoves(&b, mover, Rook, orthogonalDirs[:], enemyAll, allOccupied, &tactical, &quiet)
	genQueenMoves(&b, mover, enemyAll, allOccupied, &tactical, &quiet)
	genKingMoves(&b, mover, enemyAll, allOccupied, &tactical, &quiet)
	genCastling(&b, mover, &tactical)

	if assert.DEBUG {
		assert.Assert(tactical.Len()+quiet.Len() <= MaxMoves, "PseudoMoves: generated more than MaxMoves moves")
	}

	for _, m := range quiet.Data() {
		tactical.PushBack(m)
	}
	return tactical
}

func genPawnMoves(b *board.Board, mover Color, enemyAll, allOccupied Bitboard, tactical, quiet *moveslice.MoveSlice) {
	pawnsRel := relBitboard(b.Pieces[mover][Pawn], mover)

	epSynth := BbZero
	if !b.EnPassant.IsNone() {
		epSynth = FileBitboard(b.EnPassant.File()) & Rank6Bb
	}
	captureTargets := enemyAll | epSynth

	singlePush := ShiftBitboard(pawnsRel, North) &^ allOccupied
	emitOffset(singlePush, int8(North), mover, true, quiet)

	doublePush := ShiftBitboard(singlePush&Rank3Bb, North) &^ allOccupied
	emitOffset(doublePush, int8(North)*2, mover, false, quiet)

	captureNW := ShiftBitboard(pawnsRel, Northwest) & captureTargets
	emitOffset(captureNW, int8(Northwest), mover, true, tactical)

	captureNE := ShiftBitboard(pawnsRel, Northeast) & captureTargets
	emitOffset(captureNE, int8(Northeast), mover, true, tactical)
}

func genKnightMoves(b *board.Board, mover Color, enemyAll, allOccupied Bitboard, tactical, quiet *moveslice.MoveSlice) {
	knightsRel := relBitboard(b.Pieces[mover][Knight], mover)
	for _, kh := range knightHops {
		reach := ShiftKnightHop(knightsRel, kh)
		emitOffset(reach&enemyAll, int8(kh), mover, false, tactical)
		emitOffset(reach&^allOccupied, int8(kh), mover, false, quiet)
	}
}

// genSliderMoves generates moves for a single sliding piece type
// (Bishop or Rook) along dirs. Queens are handled by genQueenMoves so
// their moves aren't emitted twice.
func genSliderMoves(b *board.Board, mover Color, pt PieceType, dirs []Direction, enemyAll, allOccupied Bitboard, tactical, quiet *moveslice.MoveSlice) {
	sliders := relBitboard(b.Pieces[mover][pt], mover)
	genRays(sliders, dirs, mover, enemyAll, allOccupied, tactical, quiet)
}

func genQueenMoves(b *board.Board, mover Color, enemyAll, allOccupied Bitboard, tactical, quiet *moveslice.MoveSlice) {
	queens := relBitboard(b.Pieces[mover][Queen], mover)
	genRays(queens, diagonalDirs[:], mover, enemyAll, allOccupied, tactical, quiet)
	genRays(queens, orthogonalDirs[:], mover, enemyAll, allOccupied, tactical, quiet)
}

// genRays slides sliders one square at a time along each direction in
// dirs, up to seven iterations, emitting a capture when the ray first
// meets an enemy piece and an open (quiet) destination otherwise. A
// ray stops the moment it meets any piece.
func genRays(sliders Bitboard, dirs []Direction, mover Color, enemyAll, allOccupied Bitboard, tactical, quiet *moveslice.MoveSlice) {
	for _, dir := range dirs {
		ray := sliders
		for step := 1; step <= 7; step++ {
			ray = ShiftBitboard(ray, dir)
			if ray == BbZero {
				break
			}
			captures := ray & enemyAll
			if captures != BbZero {
				emitOffset(captures, int8(dir)*int8(step), mover, false, tactical)
			}
			open := ray &^ allOccupied
			if open != BbZero {
				emitOffset(open, int8(dir)*int8(step), mover, false, quiet)
			}
			ray = open
			if open == BbZero {
				break
			}
		}
	}
}

func genKingMoves(b *board.Board, mover Color, enemyAll, allOccupied Bitboard, tactical, quiet *moveslice.MoveSlice) {
	kingRel := relBitboard(b.Pieces[mover][King], mover)
	for _, dir := range kingDirs {
		step := ShiftBitboard(kingRel, dir)
		emitOffset(step&enemyAll, int8(dir), mover, false, tactical)
		emitOffset(step&^allOccupied, int8(dir), mover, false, quiet)
	}
}

// genCastling emits the two-square king move for each castling side
// still available, provided the intervening squares are empty, the
// mover is not currently in check, and the square the king passes
// through is not attacked. The final destination square's safety is
// left to the legal-move filter (IsPositionLegal applied to the
// resulting board).
func genCastling(b *board.Board, mover Color, tactical *moveslice.MoveSlice) {
	kingFrom := mirrorSquare(SqE1, mover)

	tryCastle := func(kingside bool, transitAbs, destAbs Square, emptyAbs []Square) {
		if !b.Castling.Has(mover, kingside) {
			return
		}
		for _, sq := range emptyAbs {
			if b.AllOccupied().Has(sq) {
				return
			}
		}
		if !IsPositionLegal(b.ApplyNullMove()) {
			return
		}
		stepped := b.ApplyMove(NewMove(kingFrom, transitAbs, PtNone))
		if !IsPositionLegal(stepped) {
			return
		}
		tactical.PushBack(NewMove(kingFrom, destAbs, PtNone))
	}

	tryCastle(true, mirrorSquare(SqF1, mover), mirrorSquare(SqG1, mover), []Square{
		mirrorSquare(SqF1, mover), mirrorSquare(SqG1, mover),
	})
	tryCastle(false, mirrorSquare(SqD1, mover), mirrorSquare(SqC1, mover), []Square{
		mirrorSquare(SqB1, mover), mirrorSquare(SqC1, mover), mirrorSquare(SqD1, mover),
	})
}

// LegalMoves filters PseudoMoves(b) down to moves that don't leave the
// mover's own king attacked.
func LegalMoves(b board.Board) moveslice.MoveSlice {
	pseudo := PseudoMoves(b)
	legal := moveslice.New(pseudo.Len())
	for _, m := range pseudo.Data() {
		next := b.ApplyMove(m)
		if IsPositionLegal(next) {
			legal.PushBack(m)
		}
	}
	return legal
}

// IsPositionLegal reports whether b's side to move, viewed as the
// attacker, does not attack the opposing king — i.e. whether the
// position is legal from the perspective of the side that just moved.
// Attacks are computed directly from attack bitboards (knight hops,
// sliding-piece ray unions, pawn capture diagonals, king adjacency)
// rather than by regenerating pseudo-moves.
func IsPositionLegal(b board.Board) bool {
	attacker := b.SideToMove
	defender := attacker.Flip()
	defenderKing := b.KingSquare(defender)
	if defenderKing == SqNone {
		return true
	}
	return attackBitboard(&b, attacker)&defenderKing.Bitboard() == BbZero
}

// attackBitboard returns every square attacked by attacker's pieces on
// b, in absolute board coordinates. Sliding-piece rays are computed
// over "all occupied squares except both kings" so that a king cannot
// block an attack along the very line it would still be exposed to
// after stepping aside — the property the castling transit-square
// check and check-evasion search both rely on.
func attackBitboard(b *board.Board, attacker Color) Bitboard {
	kingsBb := b.Pieces[White][King] | b.Pieces[Black][King]
	blockers := b.AllOccupied() &^ kingsBb

	var attacks Bitboard

	for _, kh := range knightHops {
		attacks |= ShiftKnightHop(b.Pieces[attacker][Knight], kh)
	}
	for _, dir := range kingDirs {
		attacks |= ShiftBitboard(b.Pieces[attacker][King], dir)
	}

	pawnDirs := [2]Direction{Northeast, Northwest}
	if attacker == Black {
		pawnDirs = [2]Direction{Southeast, Southwest}
	}
	for _, dir := range pawnDirs {
		attacks |= ShiftBitboard(b.Pieces[attacker][Pawn], dir)
	}

	attacks |= rayAttacks(b.Pieces[attacker][Bishop]|b.Pieces[attacker][Queen], blockers, diagonalDirs[:])
	attacks |= rayAttacks(b.Pieces[attacker][Rook]|b.Pieces[attacker][Queen], blockers, orthogonalDirs[:])

	return attacks
}

func rayAttacks(sliders, blockers Bitboard, dirs []Direction) Bitboard {
	var attacks Bitboard
	for _, dir := range dirs {
		ray := sliders
		for i := 0; i < 7; i++ {
			ray = ShiftBitboard(ray, dir)
			if ray == BbZero {
				break
			}
			attacks |= ray
			// a blocked square is attacked, but the ray ends there; only
			// the unblocked bits keep sliding
			ray &^= blockers
		}
	}
	return attacks
}

// MoveFromUCI parses a UCI long-algebraic move string against b's
// current legal moves, returning the matching generated Move (which
// carries the correct promotion encoding) and true, or MoveNone and
// false if s is malformed or names no legal move.
func MoveFromUCI(b board.Board, s string) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return MoveNone, false
	}
	from := MakeSquare(s[0:2])
	to := MakeSquare(s[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone, false
	}
	promo := PtNone
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return MoveNone, false
		}
	}
	for _, legal := range LegalMoves(b).Data() {
		if legal.From() == from && legal.To() == to && legal.PromotionType() == promo {
			return legal, true
		}
	}
	return MoveNone, false
}
