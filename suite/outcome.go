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
	"fmt"
	"time"

	"github.com/hexbench/drambench/hardware/pins"
	"github.com/hexbench/drambench/patterns"
)

// FaultRecord captures everything known about the first (and only)
// mismatch. A single mismatch is conclusive evidence of a defective
// device; no record of a second mismatch can exist.
type FaultRecord struct {
	Kind     patterns.Kind
	Row      uint8
	Col      uint8
	Expected pins.Bit
	Observed pins.Bit

	// elapsed time since the start of the faulting pass
	SincePassStart time.Duration

	// the soak pause in effect when the mismatch was found
	SoakPause time.Duration
}

func (rec FaultRecord) String() string {
	return fmt.Sprintf("fault at (row %d, col %d) during %s: expected %s, read %s",
		rec.Row, rec.Col, rec.Kind, rec.Expected, rec.Observed)
}

// Timing aggregates the run records of a completed suite.
type Timing struct {
	Min   time.Duration
	Avg   time.Duration
	Max   time.Duration
	Total time.Duration

	// the pause the soak ramp had reached when the suite ended
	FinalSoakPause time.Duration
}

// NewTiming computes the aggregate of a sequence of run durations. records
// must not be empty.
func NewTiming(records []time.Duration, finalSoakPause time.Duration) Timing {
	tm := Timing{
		Min:            records[0],
		Max:            records[0],
		FinalSoakPause: finalSoakPause,
	}

	for _, r := range records {
		if r < tm.Min {
			tm.Min = r
		}
		if r > tm.Max {
			tm.Max = r
		}
		tm.Total += r
	}

	tm.Avg = tm.Total / time.Duration(len(records))

	return tm
}

// Outcome is the terminal result of a suite. Exactly two shapes exist:
// passed with timing aggregate, or faulted with a fault record. There is
// no partial or inconclusive outcome.
type Outcome struct {
	Passed bool
	Fault  *FaultRecord
	Timing Timing
}

func (out Outcome) String() string {
	if out.Passed {
		return "PASS"
	}
	return "FAIL"
}
