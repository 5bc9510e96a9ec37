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

package reporter_test

import (
	"strings"
	"testing"
	"time"

	"github.com/hexbench/drambench/hardware/pins"
	"github.com/hexbench/drambench/patterns"
	"github.com/hexbench/drambench/reporter"
	"github.com/hexbench/drambench/suite"
	"github.com/hexbench/drambench/test"
)

func TestFaultText(t *testing.T) {
	b := &strings.Builder{}
	r := reporter.NewReporter(b, false)

	r.Fault(suite.FaultRecord{
		Kind:           patterns.SolidOne,
		Row:            12,
		Col:            34,
		Expected:       pins.High,
		Observed:       pins.Low,
		SincePassStart: 3 * time.Second,
		SoakPause:      40 * time.Millisecond,
	})

	s := b.String()
	test.ExpectSuccess(t, strings.Contains(s, "(row 12, col 34)"))
	test.ExpectSuccess(t, strings.Contains(s, "solid 1"))
	test.ExpectSuccess(t, strings.Contains(s, "expected 1, read 0"))

	// colour was asked off so no escape codes appear
	test.ExpectFailure(t, strings.Contains(s, "\033["))
}

func TestSummaryText(t *testing.T) {
	b := &strings.Builder{}
	r := reporter.NewReporter(b, false)

	r.SuiteSummary(suite.Outcome{
		Passed: true,
		Timing: suite.NewTiming([]time.Duration{
			100 * time.Millisecond,
			150 * time.Millisecond,
			200 * time.Millisecond,
		}, time.Millisecond),
	})

	s := b.String()
	test.ExpectSuccess(t, strings.Contains(s, "PASS"))
	test.ExpectSuccess(t, strings.Contains(s, "100ms/150ms/200ms"))
	test.ExpectSuccess(t, strings.Contains(s, "total 450ms"))
}

func TestProgressDots(t *testing.T) {
	b := &strings.Builder{}
	r := reporter.NewReporter(b, false)

	r.PassStarted(patterns.SolidZero)
	r.Progress(patterns.SolidZero, 16, 64)
	r.Progress(patterns.SolidZero, 32, 64)
	r.PassCompleted(patterns.SolidZero, time.Second)

	test.ExpectEquality(t, b.String(), "solid 0 ..\n")
}
