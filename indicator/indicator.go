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

// Package indicator defines the visual status capability. The suite emits
// discrete state changes; how they are rendered is entirely up to the
// implementation. The Pass and Fault states are permanent: once entered,
// no implementation will be asked to leave them.
package indicator

// Indicator is the capability the suite signals its status through.
type Indicator interface {
	// Idle before the suite starts.
	Idle()

	// Running when the suite begins driving the device.
	Running()

	// PulseProgress at the progress checkpoints of a pass.
	PulseProgress()

	// Pass when the whole suite completes with no mismatch. Permanent.
	Pass()

	// Fault on the first mismatch. Permanent.
	Fault()
}

// Nul is the null implementation of the Indicator interface.
type Nul struct{}

// Idle implements the Indicator interface.
func (Nul) Idle() {}

// Running implements the Indicator interface.
func (Nul) Running() {}

// PulseProgress implements the Indicator interface.
func (Nul) PulseProgress() {}

// Pass implements the Indicator interface.
func (Nul) Pass() {}

// Fault implements the Indicator interface.
func (Nul) Fault() {}
