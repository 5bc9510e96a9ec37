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

// Package fixture implements pins.Bus over the GPIO header of a Linux
// single board computer, through periph.io. The mapping from logical lines
// to physical pins is injected through the Pinout type; nothing in this
// package knows the board layout.
//
// The control lines of the device under test are active low. Assert() and
// Deassert() handle the inversion so the rest of the application reasons
// only about asserted/deasserted.
package fixture

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/hexbench/drambench/curated"
	"github.com/hexbench/drambench/hardware/pins"
	"github.com/hexbench/drambench/logger"
)

// sentinels for errors from the fixture package.
const (
	HostInit   = "fixture: host: %v"
	UnknownPin = "fixture: no such pin: %s"
	BadPinout  = "fixture: pinout: %v"
	PinDrive   = "fixture: drive: %v"
)

// Pinout maps logical lines to the pin names understood by gpioreg. The
// Address slice runs from least significant bit to most significant bit.
type Pinout struct {
	Address []string
	Lines   map[pins.Line]string
}

// the electrical level that counts as "asserted" for each line.
var activeLevel = map[pins.Line]gpio.Level{
	pins.RowStrobe:    gpio.Low,
	pins.ColumnStrobe: gpio.Low,
	pins.WriteEnable:  gpio.Low,
	pins.ChipSelect:   gpio.Low,
	pins.DataIn:       gpio.High,
}

// Bus drives a real fixture header. Implements the pins.Bus interface.
type Bus struct {
	addr []gpio.PinIO
	out  map[pins.Line]gpio.PinIO
	in   gpio.PinIO
}

// NewBus is the preferred method of initialisation for the Bus type. It
// initialises the periph host and resolves every pin named in the pinout.
func NewBus(pinout Pinout) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, curated.Errorf(HostInit, err)
	}

	bus := &Bus{
		addr: make([]gpio.PinIO, 0, len(pinout.Address)),
		out:  make(map[pins.Line]gpio.PinIO),
	}

	for _, name := range pinout.Address {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, curated.Errorf(UnknownPin, name)
		}
		bus.addr = append(bus.addr, p)
	}

	for _, l := range []pins.Line{pins.RowStrobe, pins.ColumnStrobe, pins.WriteEnable, pins.ChipSelect, pins.DataIn} {
		name, ok := pinout.Lines[l]
		if !ok {
			return nil, curated.Errorf(BadPinout, l)
		}
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, curated.Errorf(UnknownPin, name)
		}
		bus.out[l] = p
	}

	name, ok := pinout.Lines[pins.DataOut]
	if !ok {
		return nil, curated.Errorf(BadPinout, pins.DataOut)
	}
	bus.in = gpioreg.ByName(name)
	if bus.in == nil {
		return nil, curated.Errorf(UnknownPin, name)
	}
	if err := bus.in.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		return nil, curated.Errorf(PinDrive, err)
	}

	// park every output at its inactive level
	for _, l := range []pins.Line{pins.RowStrobe, pins.ColumnStrobe, pins.WriteEnable, pins.ChipSelect, pins.DataIn} {
		bus.Deassert(l)
	}

	logger.Logf("fixture", "header ready: %d address pins", len(bus.addr))

	return bus, nil
}

// DriveAddress implements the pins.Bus interface.
func (bus *Bus) DriveAddress(value uint8) {
	for i, p := range bus.addr {
		level := gpio.Level(value>>i&1 == 1)
		if err := p.Out(level); err != nil {
			logger.Logf("fixture", "address pin %d: %v", i, err)
		}
	}
}

// Assert implements the pins.Bus interface.
func (bus *Bus) Assert(line pins.Line) {
	p, ok := bus.out[line]
	if !ok {
		return
	}
	if err := p.Out(activeLevel[line]); err != nil {
		logger.Logf("fixture", "%s: %v", line, err)
	}
}

// Deassert implements the pins.Bus interface.
func (bus *Bus) Deassert(line pins.Line) {
	p, ok := bus.out[line]
	if !ok {
		return
	}
	if err := p.Out(!activeLevel[line]); err != nil {
		logger.Logf("fixture", "%s: %v", line, err)
	}
}

// Sample implements the pins.Bus interface.
func (bus *Bus) Sample(line pins.Line) pins.Bit {
	if line != pins.DataOut {
		return pins.Low
	}
	if bus.in.Read() == gpio.High {
		return pins.High
	}
	return pins.Low
}
