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

package soak

import "time"

// Waiter is the blocking delay primitive used to apply the soak pause.
// Tests substutite an implementation backed by a virtual clock so that
// properties of the suite can be checked without real wall-clock delay.
type Waiter interface {
	Wait(pause time.Duration)
}

// Sleeper is the Waiter used against real hardware.
type Sleeper struct{}

// Wait implements the Waiter interface.
func (s Sleeper) Wait(pause time.Duration) {
	time.Sleep(pause)
}
