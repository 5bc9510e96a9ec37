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

// Package dram sequences the row/column multiplexed addressing protocol of
// the device under test. A single cell is accessed by presenting the row
// address on the shared bus, strobing it in with RAS, then presenting the
// column address and strobing it in with CAS. The device requires strict
// program order between bus drive, strobe assertion and data sampling; the
// driver encodes that order and nothing else reorders it.
package dram

import "github.com/hexbench/drambench/hardware/pins"

// Driver performs single-cell reads and writes through a pins.Bus.
type Driver struct {
	bus  pins.Bus
	geom Geometry
}

// NewDriver is the preferred method of initialisation for the Driver type.
//
// Chip-select is asserted here and held for the lifetime of the session.
// The device variant targeted by the fixture treats CS as a static enable,
// not a per-operation strobe.
func NewDriver(bus pins.Bus, geom Geometry) *Driver {
	drv := &Driver{
		bus:  bus,
		geom: geom,
	}

	drv.bus.Deassert(pins.RowStrobe)
	drv.bus.Deassert(pins.ColumnStrobe)
	drv.bus.Deassert(pins.WriteEnable)
	drv.bus.Assert(pins.ChipSelect)

	return drv
}

// Geometry of the device the driver was created for.
func (drv *Driver) Geometry() Geometry {
	return drv.geom
}

// selectRow presents the row address and latches it with the row strobe.
// the strobe remains asserted on return.
func (drv *Driver) selectRow(row uint8) {
	drv.bus.DriveAddress(row & drv.geom.AddressMask())
	drv.bus.Assert(pins.RowStrobe)
}

// selectColumn presents the column address and latches it with the column
// strobe. if write is non-nil the data-in line and write-enable are set up
// before the strobe so the device latches the value on the strobe edge.
// the strobe (and write-enable, if used) remain asserted on return.
func (drv *Driver) selectColumn(col uint8, write *pins.Bit) {
	drv.bus.DriveAddress(col & drv.geom.AddressMask())

	if write != nil {
		drv.bus.Assert(pins.WriteEnable)
		if *write == pins.High {
			drv.bus.Assert(pins.DataIn)
		} else {
			drv.bus.Deassert(pins.DataIn)
		}
	}

	drv.bus.Assert(pins.ColumnStrobe)
}

// WriteCell stores one bit at the addressed cell.
//
// Write-enable is released before the column strobe. releasing them in the
// other order would end the write cycle before the value has latched.
// Strobes are then released in the reverse order of assertion, column
// before row.
func (drv *Driver) WriteCell(row uint8, col uint8, value pins.Bit) {
	drv.selectRow(row)
	drv.selectColumn(col, &value)

	drv.bus.Deassert(pins.WriteEnable)
	drv.bus.Deassert(pins.ColumnStrobe)
	drv.bus.Deassert(pins.RowStrobe)
}

// ReadCell returns the bit stored at the addressed cell. The data-out line
// is sampled while both strobes are held.
func (drv *Driver) ReadCell(row uint8, col uint8) pins.Bit {
	drv.selectRow(row)
	drv.selectColumn(col, nil)

	value := drv.bus.Sample(pins.DataOut)

	drv.bus.Deassert(pins.ColumnStrobe)
	drv.bus.Deassert(pins.RowStrobe)

	return value
}

// PrimeRows performs a refresh-only sweep of every row: row strobe
// asserted and released with no column activity. The physical storage
// decays without periodic row activation so this must happen once before
// testing begins.
func (drv *Driver) PrimeRows() {
	for row := 0; row < drv.geom.Rows(); row++ {
		drv.bus.DriveAddress(uint8(row))
		drv.bus.Assert(pins.RowStrobe)
		drv.bus.Deassert(pins.RowStrobe)
	}
}
