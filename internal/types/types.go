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

// Package types contains the board representation primitives (bitboards,
// squares, pieces, moves, magic attack tables) shared by every other
// package in the engine.
package types

import (
	myLogging "github.com/talonchess/talon/internal/logging"
)

var log = myLogging.GetLog()

var initialized = false

// init precomputes the tables every other function in this package assumes
// are already populated: magic/pseudo attack bitboards and the piece-square
// value tables. Both are expensive to build and cheap to reuse, so they run
// once per process rather than lazily per call.
func init() {
	if initialized {
		return
	}
	log.Debug("initializing board representation tables")
	initBb()
	initPosValues()
	initialized = true
}

// Board and search-wide size limits shared across packages.
const (
	// SqLength is the number of squares on the board.
	SqLength int = 64

	// MaxDepth is the deepest ply the search will recurse to.
	MaxDepth = 128

	// MaxMoves bounds how many moves a single position or game can produce,
	// sized to cover the highest known legal-move counts with headroom.
	MaxMoves = 512

	// KB is 1024 bytes.
	KB uint64 = 1024
	// MB is KB*KB bytes.
	MB uint64 = KB * KB
	// GB is KB*MB bytes.
	GB uint64 = KB * MB

	// GamePhaseMax is the game-phase value of a position with every minor
	// and major piece still on the board (see PosValue's phase interpolation).
	GamePhaseMax = 24
)
