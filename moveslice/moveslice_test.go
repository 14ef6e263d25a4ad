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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kestrel-chess/kestrel/types"
)

var (
	e2e4 = NewMove(SqE2, SqE4, PtNone)
	d7d5 = NewMove(SqD7, SqD5, PtNone)
	e4d5 = NewMove(SqE4, SqD5, PtNone)
	d8d5 = NewMove(SqD8, SqD5, PtNone)
	b1c3 = NewMove(SqB1, SqC3, PtNone)
)

func TestNew(t *testing.T) {
	ma := New(MaxMoves)
	assert.Equal(t, 0, len(ma))
	assert.Equal(t, MaxMoves, cap(ma))
}

func TestPushBack(t *testing.T) {
	ma := New(MaxMoves)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(d8d5)
	ma.PushBack(b1c3)

	assert.Equal(t, 5, ma.Len())
	assert.Equal(t, e2e4, ma.At(0))
	assert.Equal(t, b1c3, ma.At(4))
}

func TestPopBack(t *testing.T) {
	ma := New(MaxMoves)
	assert.Panics(t, func() { ma.PopBack() })

	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(d8d5)
	ma.PushBack(b1c3)

	m1 := ma.PopBack()
	assert.Equal(t, b1c3, m1)
	m2 := ma.PopBack()
	assert.Equal(t, d8d5, m2)
	assert.Equal(t, 3, ma.Len())
}

func TestClear(t *testing.T) {
	ma := New(MaxMoves)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	assert.Equal(t, 2, ma.Len())
	ma.Clear()
	assert.Equal(t, 0, ma.Len())
	assert.Equal(t, MaxMoves, cap(ma))
}

func TestString(t *testing.T) {
	ma := New(MaxMoves)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(d8d5)
	ma.PushBack(b1c3)
	assert.Equal(t, "e2e4 d7d5 e4d5 d8d5 b1c3", ma.StringUci())
	assert.Contains(t, ma.String(), "MoveSlice: [5]")
}

func TestData(t *testing.T) {
	ma := New(MaxMoves)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	sum := 0
	for range ma.Data() {
		sum++
	}
	assert.Equal(t, 2, sum)
}
