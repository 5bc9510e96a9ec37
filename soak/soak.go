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

// Package soak computes the per-column stress pause. The pause grows with
// a quadratic curve over the life of the whole suite: early passes stay
// fast while stress concentrates near the end. Only the total number of
// columns in the suite and the maximum pause need to be known up front.
package soak

import "time"

// Pause returns the stress delay for the given global column. The curve is
//
//	maxPause * (globalColumn² / (totalColumns-1)²)
//
// so the pause is zero at the first column and exactly maxPause at the
// last. globalColumn is clamped to the valid range before use.
func Pause(globalColumn int, totalColumns int, maxPause time.Duration) time.Duration {
	denom := totalColumns - 1
	if denom < 1 {
		denom = 1
	}

	p := globalColumn
	if p < 0 {
		p = 0
	}
	if p > denom {
		p = denom
	}

	// float64 has enough precision for the magnitudes involved (pauses of
	// tens of milliseconds, suites of a few thousand columns)
	r := float64(p) / float64(denom)
	d := time.Duration(float64(maxPause) * r * r)

	if d > maxPause {
		d = maxPause
	}

	return d
}

// Counter is the global progress counter for a suite. It is owned by the
// orchestrator and advanced exactly once per column processed, whatever
// the pattern or run number. It never wraps and never exceeds the final
// column index.
type Counter struct {
	column int
	total  int
}

// NewCounter is the preferred method of initialisation for the Counter
// type.
func NewCounter(totalColumns int) *Counter {
	return &Counter{total: totalColumns}
}

// Advance the counter by one column, saturating at the final column index.
func (c *Counter) Advance() {
	if c.column < c.total-1 {
		c.column++
	}
}

// Column returns the current global column.
func (c *Counter) Column() int {
	return c.column
}

// Total returns the column count the counter was created with.
func (c *Counter) Total() int {
	return c.total
}
