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

// Package patterns produces the expected bit value for every cell visited
// during a verification pass. A pattern is a pure function of the cell's
// position in the traversal; no pattern carries state of its own.
package patterns

import "github.com/hexbench/drambench/hardware/pins"

// Kind enumerates the test patterns.
type Kind int

// The four patterns.
const (
	CheckerboardFromZero Kind = iota
	CheckerboardFromOne
	SolidZero
	SolidOne
)

func (k Kind) String() string {
	switch k {
	case CheckerboardFromZero:
		return "checkerboard (from 0)"
	case CheckerboardFromOne:
		return "checkerboard (from 1)"
	case SolidZero:
		return "solid 0"
	case SolidOne:
		return "solid 1"
	}
	return "unknown pattern"
}

// Order is the fixed sequence in which the patterns are applied during a
// run. The order affects timing reports and failure attribution and must
// not be permuted.
var Order = []Kind{
	CheckerboardFromZero,
	CheckerboardFromOne,
	SolidZero,
	SolidOne,
}

// Expected returns the bit the cell should hold under the given pattern.
// ordinal is the cell's position in the column-major traversal of the
// pass.
//
// For the checkerboard patterns the value toggles once per cell visited
// and the toggle carries across column boundaries; it is not reset at the
// top of each column. The row/column phase relationship that results is
// part of the device coverage contract, so the ordinal (not the row and
// column) decides the value.
func Expected(kind Kind, row uint8, col uint8, ordinal int) pins.Bit {
	switch kind {
	case CheckerboardFromZero:
		return pins.Bit(ordinal & 1)
	case CheckerboardFromOne:
		return pins.Bit(ordinal & 1).Flip()
	case SolidZero:
		return pins.Low
	case SolidOne:
		return pins.High
	}
	return pins.Low
}
