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

	"github.com/hexbench/drambench/patterns"
)

// Observer receives the structured facts emitted by the suite. How the
// facts are formatted, and whether they are shown at all, is the
// implementation's concern; nothing the observer does can influence the
// outcome of the suite.
type Observer interface {
	// SuiteStarted once, before any line is driven.
	SuiteStarted(cfg Config)

	// PassStarted at the top of each pass.
	PassStarted(kind patterns.Kind)

	// Progress at the checkpoints of a pass: every DotEveryColumns
	// columns and at each quarter of the pass.
	Progress(kind patterns.Kind, columnsDone int, totalColumns int)

	// PassCompleted when every cell of the pass matched.
	PassCompleted(kind patterns.Kind, elapsed time.Duration)

	// RunCompleted after each full pattern sequence. run counts from 1.
	RunCompleted(run int, elapsed time.Duration)

	// Fault on the first mismatch. The last fact a faulting suite emits.
	Fault(rec FaultRecord)

	// SuiteSummary once, after all runs completed with no mismatch.
	SuiteSummary(out Outcome)
}

// NulObserver is the null implementation of the Observer interface.
type NulObserver struct{}

// SuiteStarted implements the Observer interface.
func (NulObserver) SuiteStarted(cfg Config) {}

// PassStarted implements the Observer interface.
func (NulObserver) PassStarted(kind patterns.Kind) {}

// Progress implements the Observer interface.
func (NulObserver) Progress(kind patterns.Kind, columnsDone int, totalColumns int) {}

// PassCompleted implements the Observer interface.
func (NulObserver) PassCompleted(kind patterns.Kind, elapsed time.Duration) {}

// RunCompleted implements the Observer interface.
func (NulObserver) RunCompleted(run int, elapsed time.Duration) {}

// Fault implements the Observer interface.
func (NulObserver) Fault(rec FaultRecord) {}

// SuiteSummary implements the Observer interface.
func (NulObserver) SuiteSummary(out Outcome) {}
