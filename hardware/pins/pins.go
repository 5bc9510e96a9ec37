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

// Package pins defines the electrical boundary of the fixture. The Bus
// interface is the only way the rest of the application touches the device
// under test. Implementations drive a real fixture header (hardware/gpio)
// or a simulated device (hardware/simulated).
package pins

// Bit is the value of a single data or control line.
type Bit uint8

// Valid Bit values.
const (
	Low  Bit = 0
	High Bit = 1
)

func (b Bit) String() string {
	if b == Low {
		return "0"
	}
	return "1"
}

// Flip returns the complement of the bit.
func (b Bit) Flip() Bit {
	return b ^ 1
}

// Line identifies one of the control or data lines on the fixture header.
// The address bus is driven as a group, through Bus.DriveAddress(), and has
// no Line value of its own.
type Line int

// The lines required by the device under test. RowStrobe and ColumnStrobe
// latch the value on the address bus. WriteEnable selects write rather
// than read for the addressed cell. ChipSelect enables the device and is
// held asserted for the whole session on this device variant.
const (
	RowStrobe Line = iota
	ColumnStrobe
	WriteEnable
	ChipSelect
	DataIn
	DataOut
	NumLines
)

func (l Line) String() string {
	switch l {
	case RowStrobe:
		return "RAS"
	case ColumnStrobe:
		return "CAS"
	case WriteEnable:
		return "WE"
	case ChipSelect:
		return "CS"
	case DataIn:
		return "DIN"
	case DataOut:
		return "DOUT"
	}
	return "unknown line"
}

// Bus is the capability consumed by the signal driver. All operations are
// synchronous and take effect before the next instruction; there is no
// asynchronous completion to wait for.
//
// Note that the lines on the header are active-low, as is usual for this
// family of device. implementations of Bus are expected to handle the
// inversion; Assert() means "drive to the active level" whatever that
// level is electrically.
type Bus interface {
	// DriveAddress presents the low addressBits bits of the value on the
	// shared address bus.
	DriveAddress(value uint8)

	// Assert drives the named line to its active level.
	Assert(line Line)

	// Deassert drives the named line to its inactive level.
	Deassert(line Line)

	// Sample returns the current level of the named line. Only meaningful
	// for DataOut in normal operation.
	Sample(line Line) Bit
}
