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

	"github.com/hexbench/drambench/hardware/dram"
	"github.com/hexbench/drambench/patterns"
)

// Config gathers the values the suite consumes at start. The suite never
// changes them and never re-reads them from anywhere once running.
type Config struct {
	// number of runs of the full pattern sequence
	Runs int

	// the pause for the very last column of the suite. every earlier
	// column pauses for less, following the quadratic soak curve
	MaxSoakPause time.Duration

	// width of the row/column address bus
	AddressBits int

	// how often a progress observation is emitted, in columns. cosmetic
	// only; a value of zero disables the per-column checkpoints (the
	// quarter checkpoints are always emitted)
	DotEveryColumns int
}

// Geometry of the device under test.
func (cfg Config) Geometry() dram.Geometry {
	return dram.Geometry{AddressBits: cfg.AddressBits}
}

// TotalColumns processed over the lifetime of the whole suite. This is the
// extent of the soak ramp.
func (cfg Config) TotalColumns() int {
	return cfg.Runs * len(patterns.Order) * cfg.Geometry().Cols()
}
