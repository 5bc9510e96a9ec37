// This file is part of drambench.
//
// drambench is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// drambench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with drambench.  If not, see <https://www.gnu.org/licenses/>.

package soak_test

import (
	"testing"
	"time"

	"github.com/hexbench/drambench/soak"
	"github.com/hexbench/drambench/test"
)

func TestBoundaries(t *testing.T) {
	const total = 3072
	const maxPause = 50 * time.Millisecond

	test.ExpectEquality(t, soak.Pause(0, total, maxPause), time.Duration(0))
	test.ExpectEquality(t, soak.Pause(total-1, total, maxPause), maxPause)

	// values outside the valid range clamp to the boundaries
	test.ExpectEquality(t, soak.Pause(-1, total, maxPause), time.Duration(0))
	test.ExpectEquality(t, soak.Pause(total+100, total, maxPause), maxPause)
}

func TestMonotonicity(t *testing.T) {
	const total = 3072
	const maxPause = 50 * time.Millisecond

	prev := time.Duration(-1)
	for col := 0; col < total; col++ {
		p := soak.Pause(col, total, maxPause)
		if p < prev {
			t.Fatalf("pause shrank at column %d: %v < %v", col, p, prev)
		}
		if p > maxPause {
			t.Fatalf("pause exceeded maximum at column %d: %v", col, p)
		}
		prev = p
	}
}

func TestQuadraticShape(t *testing.T) {
	const total = 1001
	const maxPause = 40 * time.Millisecond

	// at the halfway point a quadratic curve has reached a quarter of the
	// maximum
	mid := soak.Pause((total-1)/2, total, maxPause)
	test.ExpectEquality(t, mid, maxPause/4)
}

func TestDegenerateSuite(t *testing.T) {
	// a suite with a single column must not divide by zero
	test.ExpectEquality(t, soak.Pause(0, 1, time.Second), time.Duration(0))
	test.ExpectEquality(t, soak.Pause(0, 0, time.Second), time.Duration(0))
}

func TestCounterSaturation(t *testing.T) {
	c := soak.NewCounter(4)
	test.ExpectEquality(t, c.Column(), 0)

	c.Advance()
	c.Advance()
	c.Advance()
	test.ExpectEquality(t, c.Column(), 3)

	// advancing past the final column has no effect
	c.Advance()
	c.Advance()
	test.ExpectEquality(t, c.Column(), 3)
}
