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

package simulated_test

import (
	"testing"

	"github.com/hexbench/drambench/hardware/dram"
	"github.com/hexbench/drambench/hardware/pins"
	"github.com/hexbench/drambench/hardware/simulated"
	"github.com/hexbench/drambench/test"
)

func TestStuckCell(t *testing.T) {
	geom := dram.Geometry{AddressBits: dram.DefaultAddressBits}
	dev := simulated.NewDevice(geom)
	drv := dram.NewDriver(dev, geom)

	dev.StickAt(7, 9, pins.Low)

	drv.WriteCell(7, 9, pins.High)
	test.ExpectEquality(t, drv.ReadCell(7, 9), pins.Low)

	// neighbouring cells are unaffected
	drv.WriteCell(7, 10, pins.High)
	test.ExpectEquality(t, drv.ReadCell(7, 10), pins.High)
}

func TestSampleRequiresStrobes(t *testing.T) {
	geom := dram.Geometry{AddressBits: dram.DefaultAddressBits}
	dev := simulated.NewDevice(geom)
	drv := dram.NewDriver(dev, geom)

	drv.WriteCell(0, 0, pins.High)

	// data-out floats low when the strobes are not held
	test.ExpectEquality(t, dev.Sample(pins.DataOut), pins.Low)

	// but the cell still holds the value
	test.ExpectEquality(t, dev.Peek(0, 0), pins.High)
}

func TestHistory(t *testing.T) {
	geom := dram.Geometry{AddressBits: dram.DefaultAddressBits}
	dev := simulated.NewDevice(geom)
	drv := dram.NewDriver(dev, geom)

	dev.RecordHistory()

	drv.WriteCell(1, 2, pins.High)
	_ = drv.ReadCell(1, 2)

	h := dev.History()
	test.DemandEquality(t, len(h), 2)
	test.ExpectEquality(t, h[0], simulated.Access{Row: 1, Col: 2, Write: true, Value: pins.High})
	test.ExpectEquality(t, h[1], simulated.Access{Row: 1, Col: 2, Write: false, Value: pins.High})
}
