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

// Package simulated implements pins.Bus as a deterministic model of a
// known-good (or deliberately faulty) device. The model works at the line
// level: a row address is latched when the row strobe is asserted, a
// column address when the column strobe is asserted, and a write happens
// on the column strobe edge while write-enable is held. Storage is last
// write wins.
//
// The model is used by the SIM mode of the application as a self-check of
// the fixture logic, and by tests throughout the hardware and suite
// packages.
package simulated

import (
	"github.com/hexbench/drambench/hardware/dram"
	"github.com/hexbench/drambench/hardware/pins"
)

// Access records one complete read or write cycle observed by the device.
type Access struct {
	Row   uint8
	Col   uint8
	Write bool
	Value pins.Bit
}

// Device models a single row/column multiplexed memory part.
type Device struct {
	geom dram.Geometry

	cells []pins.Bit

	// cells that ignore writes and always read back a fixed value
	stuck map[int]pins.Bit

	// current state of the address bus and control lines
	addrBus uint8
	rasHeld bool
	casHeld bool
	weHeld  bool
	csHeld  bool
	dataIn  pins.Bit

	// addresses latched by the strobes
	rowLatch uint8
	colLatch uint8

	// whether the column strobe has been seen during the current row
	// strobe. a row strobe cycle with no column activity is a refresh
	casDuringRAS bool

	// number of refresh-only cycles seen per row
	refreshes []int

	// history of complete access cycles. nil unless RecordHistory() has
	// been called
	history []Access
}

// NewDevice is the preferred method of initialisation for the Device type.
// Every cell starts at zero.
func NewDevice(geom dram.Geometry) *Device {
	dev := &Device{
		geom:      geom,
		cells:     make([]pins.Bit, geom.Cells()),
		stuck:     make(map[int]pins.Bit),
		refreshes: make([]int, geom.Rows()),
	}
	return dev
}

func (dev *Device) index(row uint8, col uint8) int {
	return int(row)*dev.geom.Cols() + int(col)
}

// DriveAddress implements the pins.Bus interface.
func (dev *Device) DriveAddress(value uint8) {
	dev.addrBus = value & dev.geom.AddressMask()
}

// Assert implements the pins.Bus interface.
func (dev *Device) Assert(line pins.Line) {
	switch line {
	case pins.RowStrobe:
		dev.rowLatch = dev.addrBus
		dev.rasHeld = true
		dev.casDuringRAS = false

	case pins.ColumnStrobe:
		dev.colLatch = dev.addrBus
		dev.casHeld = true
		if dev.rasHeld {
			dev.casDuringRAS = true
		}

		// the write happens on the column strobe edge
		if dev.rasHeld && dev.weHeld && dev.csHeld {
			idx := dev.index(dev.rowLatch, dev.colLatch)
			if _, ok := dev.stuck[idx]; !ok {
				dev.cells[idx] = dev.dataIn
			}
			if dev.history != nil {
				dev.history = append(dev.history, Access{
					Row:   dev.rowLatch,
					Col:   dev.colLatch,
					Write: true,
					Value: dev.dataIn,
				})
			}
		}

	case pins.WriteEnable:
		dev.weHeld = true

	case pins.ChipSelect:
		dev.csHeld = true

	case pins.DataIn:
		dev.dataIn = pins.High
	}
}

// Deassert implements the pins.Bus interface.
func (dev *Device) Deassert(line pins.Line) {
	switch line {
	case pins.RowStrobe:
		if dev.rasHeld && !dev.casDuringRAS {
			dev.refreshes[dev.rowLatch]++
		}
		dev.rasHeld = false

	case pins.ColumnStrobe:
		dev.casHeld = false

	case pins.WriteEnable:
		dev.weHeld = false

	case pins.ChipSelect:
		dev.csHeld = false

	case pins.DataIn:
		dev.dataIn = pins.Low
	}
}

// Sample implements the pins.Bus interface. Sampling the data-out line is
// only meaningful while both strobes are held and the device is selected;
// the line floats low otherwise.
func (dev *Device) Sample(line pins.Line) pins.Bit {
	if line != pins.DataOut {
		return pins.Low
	}

	if !(dev.rasHeld && dev.casHeld && dev.csHeld) || dev.weHeld {
		return pins.Low
	}

	idx := dev.index(dev.rowLatch, dev.colLatch)

	var value pins.Bit
	if v, ok := dev.stuck[idx]; ok {
		value = v
	} else {
		value = dev.cells[idx]
	}

	if dev.history != nil {
		dev.history = append(dev.history, Access{
			Row:   dev.rowLatch,
			Col:   dev.colLatch,
			Write: false,
			Value: value,
		})
	}

	return value
}

// StickAt forces a cell to ignore writes and always read back the given
// value. Used to model a defective part.
func (dev *Device) StickAt(row uint8, col uint8, value pins.Bit) {
	dev.stuck[dev.index(row, col)] = value
}

// Peek returns the stored value of a cell without going through the
// addressing protocol.
func (dev *Device) Peek(row uint8, col uint8) pins.Bit {
	idx := dev.index(row, col)
	if v, ok := dev.stuck[idx]; ok {
		return v
	}
	return dev.cells[idx]
}

// Poke sets the stored value of a cell without going through the
// addressing protocol.
func (dev *Device) Poke(row uint8, col uint8, value pins.Bit) {
	dev.cells[dev.index(row, col)] = value
}

// Refreshes returns the number of refresh-only row strobe cycles seen for
// the given row.
func (dev *Device) Refreshes(row uint8) int {
	return dev.refreshes[int(row)]
}

// RecordHistory turns on recording of complete access cycles. Recording
// starts from the moment of the call.
func (dev *Device) RecordHistory() {
	dev.history = make([]Access, 0, dev.geom.Cells()*2)
}

// History returns the recorded access cycles.
func (dev *Device) History() []Access {
	return dev.history
}
