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

// Package ansilamp renders the status indicator as a coloured marker on a
// terminal. The marker mimics the bi-colour LED on the reference fixture:
// amber while running, green for pass, red for fault.
package ansilamp

import (
	"fmt"
	"io"

	"github.com/hexbench/drambench/terminal/ansi"
)

// Lamp writes indicator state changes to an io.Writer. Implements the
// indicator.Indicator interface.
type Lamp struct {
	out io.Writer
}

// NewLamp is the preferred method of initialisation for the Lamp type.
func NewLamp(out io.Writer) *Lamp {
	return &Lamp{out: out}
}

func (l *Lamp) set(pen string, label string) {
	fmt.Fprintf(l.out, "%s● %s%s\n", pen, label, ansi.NormalPen)
}

// Idle implements the indicator.Indicator interface.
func (l *Lamp) Idle() {
	l.set(ansi.DimPens["white"], "idle")
}

// Running implements the indicator.Indicator interface.
func (l *Lamp) Running() {
	l.set(ansi.Pens["yellow"], "running")
}

// PulseProgress implements the indicator.Indicator interface. The pulse is
// deliberately quiet on a terminal; progress detail belongs to the
// reporter.
func (l *Lamp) PulseProgress() {
}

// Pass implements the indicator.Indicator interface.
func (l *Lamp) Pass() {
	l.set(ansi.Pens["green"], "PASS")
}

// Fault implements the indicator.Indicator interface.
func (l *Lamp) Fault() {
	l.set(ansi.Pens["red"], "FAULT")
}
