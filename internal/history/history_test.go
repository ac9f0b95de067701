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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/talonchess/talon/internal/types"
)

func TestBonusClampedToHistoryCap(t *testing.T) {
	assert.Equal(t, int64(1), Bonus(1))
	assert.Equal(t, int64(400), Bonus(20))
	// depth 1025 is the first whose square passes historyCap (1<<20 = 1024*1024); must clamp, not overflow.
	assert.Equal(t, int64(historyCap), Bonus(1024))
	assert.Equal(t, int64(historyCap), Bonus(1025))
	assert.Equal(t, int64(historyCap), Bonus(4000))
}

func TestUpdateStaysWithinHistoryCap(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 1000; i++ {
		h.Update(White, SqE2, SqE4, Bonus(40))
	}
	count := h.HistoryCount[White][SqE2][SqE4]
	assert.LessOrEqual(t, count, int64(historyCap))
	assert.GreaterOrEqual(t, count, int64(-historyCap))
}

func TestUpdateMalusStaysWithinHistoryCap(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 1000; i++ {
		h.Update(Black, SqD7, SqD5, -Bonus(40))
	}
	count := h.HistoryCount[Black][SqD7][SqD5]
	assert.LessOrEqual(t, count, int64(historyCap))
	assert.GreaterOrEqual(t, count, int64(-historyCap))
}
