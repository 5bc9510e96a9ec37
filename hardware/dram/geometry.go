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

package dram

import "fmt"

// DefaultAddressBits describes the 4096x1 part the fixture was built for.
// Row and column addresses share one six bit bus.
const DefaultAddressBits = 6

// Geometry fixes the shape of the address space for the device under test.
// Row and column addresses are always the same width because they are
// multiplexed onto the same bus.
type Geometry struct {
	AddressBits int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%dx1", g.Rows(), g.Cols())
}

// Rows in the address space.
func (g Geometry) Rows() int {
	return 1 << g.AddressBits
}

// Cols in the address space.
func (g Geometry) Cols() int {
	return 1 << g.AddressBits
}

// Cells is the total number of addressable cells.
func (g Geometry) Cells() int {
	return g.Rows() * g.Cols()
}

// AddressMask for the valid bits of a row or column address.
func (g Geometry) AddressMask() uint8 {
	return uint8(1<<g.AddressBits) - 1
}
