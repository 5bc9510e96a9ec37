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

package patterns_test

import (
	"testing"

	"github.com/hexbench/drambench/hardware/dram"
	"github.com/hexbench/drambench/hardware/pins"
	"github.com/hexbench/drambench/patterns"
	"github.com/hexbench/drambench/test"
)

func TestCheckerboard(t *testing.T) {
	geom := dram.Geometry{AddressBits: dram.DefaultAddressBits}

	// first cell of the traversal
	test.ExpectEquality(t, patterns.Expected(patterns.CheckerboardFromZero, 0, 0, 0), pins.Low)
	test.ExpectEquality(t, patterns.Expected(patterns.CheckerboardFromOne, 0, 0, 0), pins.High)

	// the expected value at traversal ordinal k is k mod 2, with the
	// toggle carrying across column boundaries. CheckerboardFromOne is
	// the complement at every ordinal
	ordinal := 0
	for col := 0; col < geom.Cols(); col++ {
		for row := 0; row < geom.Rows(); row++ {
			z := patterns.Expected(patterns.CheckerboardFromZero, uint8(row), uint8(col), ordinal)
			o := patterns.Expected(patterns.CheckerboardFromOne, uint8(row), uint8(col), ordinal)

			if z != pins.Bit(ordinal%2) {
				t.Fatalf("ordinal %d: expected %d, got %s", ordinal, ordinal%2, z)
			}
			if o != z.Flip() {
				t.Fatalf("ordinal %d: patterns are not complementary", ordinal)
			}

			ordinal++
		}
	}
}

func TestSolid(t *testing.T) {
	geom := dram.Geometry{AddressBits: dram.DefaultAddressBits}

	ordinal := 0
	for col := 0; col < geom.Cols(); col++ {
		for row := 0; row < geom.Rows(); row++ {
			test.ExpectEquality(t, patterns.Expected(patterns.SolidZero, uint8(row), uint8(col), ordinal), pins.Low)
			test.ExpectEquality(t, patterns.Expected(patterns.SolidOne, uint8(row), uint8(col), ordinal), pins.High)
			ordinal++
		}
	}
}

func TestOrder(t *testing.T) {
	// the pass order is part of the observable contract
	test.DemandEquality(t, len(patterns.Order), 4)
	test.ExpectEquality(t, patterns.Order[0], patterns.CheckerboardFromZero)
	test.ExpectEquality(t, patterns.Order[1], patterns.CheckerboardFromOne)
	test.ExpectEquality(t, patterns.Order[2], patterns.SolidZero)
	test.ExpectEquality(t, patterns.Order[3], patterns.SolidOne)
}
