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

package suite

import (
	"time"

	"github.com/hexbench/drambench/soak"
)

// Timebase is the suite's view of time: the blocking wait used for the
// soak pause and the clock used for timing records. Tests substitute a
// virtual implementation so suite properties can be checked without real
// delay.
type Timebase interface {
	soak.Waiter
	Now() time.Time
}

// realTimebase is the Timebase used against real hardware.
type realTimebase struct {
	soak.Sleeper
}

func (realTimebase) Now() time.Time {
	return time.Now()
}
