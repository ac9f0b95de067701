//
// Talon - UCI chess engine in GO
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package attacks computes and caches per-position attack bitboards so move
// generation and evaluation don't each recompute the same ray and leaper
// tables for a position they've already visited this node.
package attacks

import (
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/talonchess/talon/internal/logging"
	"github.com/talonchess/talon/internal/position"
	. "github.com/talonchess/talon/internal/types"
)

var out = message.NewPrinter(language.German)

// leapers are the piece types whose attack set depends only on the square
// they stand on (king, knight). sliders are the piece types whose attack
// set also depends on the occupancy blocking their rays (bishop, rook,
// queen). Splitting the two keeps the per-piece-type loop below from
// branching on "does this piece slide" for every piece on the board.
var leapers = [2]PieceType{King, Knight}
var sliders = [3]PieceType{Bishop, Rook, Queen}

// Board is a cache of attack information for a single position, keyed by
// the position's Zobrist hash so repeated lookups for an unchanged
// position are free.
type Board struct {
	log *logging.Logger

	// Zobrist is the position key for which the attacks were computed.
	Zobrist position.Key
	// From holds, for each color and origin square, the squares that piece
	// attacks or defends (intersect with own pieces for defenders, with
	// &^ own pieces for pure attackers).
	From [ColorLength][SqLength]Bitboard
	// To holds, for each color and destination square, the origin squares
	// of pieces that attack or defend it.
	To [ColorLength][SqLength]Bitboard
	// All holds, for each color, the union of every attacked/defended square.
	All [ColorLength]Bitboard
	// Piece holds, for each color and piece type, the union of that piece
	// type's attacked/defended squares.
	Piece [ColorLength][PtLength]Bitboard
	// Mobility counts, for each color, the number of attacked squares not
	// occupied by that color's own pieces.
	Mobility [ColorLength]int
	// Pawns holds, for each color, the squares attacked by at least one pawn.
	Pawns [ColorLength]Bitboard
	// PawnsDouble holds, for each color, the squares attacked by two pawns.
	PawnsDouble [ColorLength]Bitboard
}

// New allocates an empty attack cache.
func New() *Board {
	return &Board{
		log: myLogging.GetLog(),
	}
}

// Reset zeroes every field in place rather than reallocating, which is
// measurably cheaper when a Board is reused across millions of search nodes.
func (b *Board) Reset() {
	b.Zobrist = 0
	for sq := 0; sq < SqLength; sq++ {
		b.From[White][sq] = BbZero
		b.From[Black][sq] = BbZero
		b.To[White][sq] = BbZero
		b.To[Black][sq] = BbZero
	}
	for pt := PtNone; pt < PtLength; pt++ {
		b.Piece[White][pt] = BbZero
		b.Piece[Black][pt] = BbZero
	}
	b.All[White] = BbZero
	b.All[Black] = BbZero
	b.Mobility[White] = 0
	b.Mobility[Black] = 0
	b.Pawns[White] = 0
	b.Pawns[Black] = 0
	b.PawnsDouble[White] = 0
	b.PawnsDouble[Black] = 0
}

// Refresh recomputes the cache for p, unless p is the same position (by
// Zobrist key) already cached, in which case it's a no-op.
func (b *Board) Refresh(p *position.Position) {
	if p.ZobristKey() == b.Zobrist {
		b.log.Debugf("attacks: position %d already cached, skipping recompute", b.Zobrist)
		return
	}
	b.Zobrist = p.ZobristKey()
	for c := White; c <= Black; c++ {
		b.computeLeapers(p, c)
		b.computeSliders(p, c)
		b.computePawns(p, c)
	}
}

// computeLeapers accumulates king and knight attacks for color c.
func (b *Board) computeLeapers(p *position.Position, c Color) {
	occupied := p.OccupiedAll()
	myPieces := p.OccupiedBb(c)
	for _, pt := range leapers {
		for pieces := p.PiecesBb(c, pt); pieces != BbZero; {
			from := pieces.PopLsb()
			b.record(c, pt, from, GetAttacksBb(pt, from, occupied), myPieces)
		}
	}
}

// computeSliders accumulates bishop, rook and queen attacks for color c,
// respecting full board occupancy for ray blocking.
func (b *Board) computeSliders(p *position.Position, c Color) {
	occupied := p.OccupiedAll()
	myPieces := p.OccupiedBb(c)
	for _, pt := range sliders {
		for pieces := p.PiecesBb(c, pt); pieces != BbZero; {
			from := pieces.PopLsb()
			b.record(c, pt, from, GetAttacksBb(pt, from, occupied), myPieces)
		}
	}
}

// record folds one piece's attack set into every aggregate the cache keeps.
func (b *Board) record(c Color, pt PieceType, from Square, reach Bitboard, myPieces Bitboard) {
	b.From[c][from] = reach
	b.Piece[c][pt] |= reach
	b.All[c] |= reach
	for targets := reach; targets != BbZero; {
		to := targets.PopLsb()
		b.To[c][to].PushSquare(from)
	}
	b.Mobility[c] += (reach &^ myPieces).PopCount()
}

// computePawns fills in the pawn attack and double-attack sets for color c.
// Pawns are handled apart from computeLeapers/computeSliders since their
// attack shape comes from a directional shift rather than GetAttacksBb.
func (b *Board) computePawns(p *position.Position, c Color) {
	pawns := p.PiecesBb(c, Pawn)
	left, right := ShiftBitboard(pawns, Northwest), ShiftBitboard(pawns, Northeast)
	if c == Black {
		left, right = ShiftBitboard(pawns, Southwest), ShiftBitboard(pawns, Southeast)
	}
	b.Pawns[c] = left | right
	b.PawnsDouble[c] = left & right
}

// AttackersOf returns every square occupied by a piece of color attacker
// that attacks square. When square is the current en passant square and a
// pawn of color attacker can capture en passant onto it, the result also
// contains the square of the opponent pawn that made the double step.
func AttackersOf(p *position.Position, square Square, attacker Color) Bitboard {
	occupied := p.OccupiedAll()
	attackers := (GetPawnAttacks(attacker.Flip(), square) & p.PiecesBb(attacker, Pawn)) |
		(GetAttacksBb(Knight, square, occupied) & p.PiecesBb(attacker, Knight)) |
		(GetAttacksBb(King, square, occupied) & p.PiecesBb(attacker, King)) |
		(GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(attacker, Rook) | p.PiecesBb(attacker, Queen))) |
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(attacker, Bishop) | p.PiecesBb(attacker, Queen)))
	return attackers | enPassantAttacker(p, square, attacker)
}

// enPassantAttacker returns the square of the opponent pawn that just made
// a double step when square is the en passant square and a pawn of the
// given color stands beside that pawn, or BbZero if none applies.
func enPassantAttacker(p *position.Position, square Square, attacker Color) Bitboard {
	epSquare := p.GetEnPassantSquare()
	if epSquare == SqNone || epSquare != square {
		return BbZero
	}
	pawnSquare := epSquare.To(attacker.Flip().MoveDirection())
	candidates := pawnSquare.NeighbourFilesMask() & pawnSquare.RankOf().Bb() & p.PiecesBb(attacker, Pawn)
	if candidates == BbZero {
		return BbZero
	}
	return pawnSquare.Bb()
}

// RevealedAttacks returns the slider attacks onto square that exist once
// occupied reflects a piece having been removed from the board, restricted
// to pieces still present in occupied. Only sliders can have their attacks
// revealed by removing a blocker.
func RevealedAttacks(p *position.Position, square Square, occupied Bitboard, attacker Color) Bitboard {
	return (GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(attacker, Rook) | p.PiecesBb(attacker, Queen)) & occupied) |
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(attacker, Bishop) | p.PiecesBb(attacker, Queen)) & occupied)
}
