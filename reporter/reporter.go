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

// Package reporter turns the suite's structured facts into text for the
// operator. All formatting decisions live here; the suite itself knows
// nothing about presentation. Facts are also mirrored into the central
// logger.
package reporter

import (
	"fmt"
	"io"
	"time"

	"github.com/hexbench/drambench/logger"
	"github.com/hexbench/drambench/patterns"
	"github.com/hexbench/drambench/suite"
	"github.com/hexbench/drambench/terminal/ansi"
)

// Reporter writes suite facts to an io.Writer. Implements the
// suite.Observer interface.
type Reporter struct {
	out io.Writer

	// whether ansi colour codes should be written
	colour bool

	// whether any progress dot has been printed since the last line break
	dotted bool
}

// NewReporter is the preferred method of initialisation for the Reporter
// type.
func NewReporter(out io.Writer, colour bool) *Reporter {
	return &Reporter{
		out:    out,
		colour: colour,
	}
}

func (r *Reporter) pen(p string) string {
	if !r.colour {
		return ""
	}
	return p
}

// breakDots ends a run of progress dots with a newline, if one is needed.
func (r *Reporter) breakDots() {
	if r.dotted {
		fmt.Fprintln(r.out)
		r.dotted = false
	}
}

// SuiteStarted implements the suite.Observer interface.
func (r *Reporter) SuiteStarted(cfg suite.Config) {
	fmt.Fprintf(r.out, "%s device: %d runs, max soak pause %s\n",
		cfg.Geometry(), cfg.Runs, cfg.MaxSoakPause)
	fmt.Fprintf(r.out, "pattern order:")
	for _, kind := range patterns.Order {
		fmt.Fprintf(r.out, " [%s]", kind)
	}
	fmt.Fprintln(r.out)

	logger.Logf("reporter", "suite started: runs=%d maxpause=%s", cfg.Runs, cfg.MaxSoakPause)
}

// PassStarted implements the suite.Observer interface.
func (r *Reporter) PassStarted(kind patterns.Kind) {
	fmt.Fprintf(r.out, "%s ", kind)
	r.dotted = true
}

// Progress implements the suite.Observer interface.
func (r *Reporter) Progress(kind patterns.Kind, columnsDone int, totalColumns int) {
	fmt.Fprint(r.out, ".")
	r.dotted = true
}

// PassCompleted implements the suite.Observer interface.
func (r *Reporter) PassCompleted(kind patterns.Kind, elapsed time.Duration) {
	r.breakDots()
	logger.Logf("reporter", "pass completed: %s in %s", kind, elapsed)
}

// RunCompleted implements the suite.Observer interface.
func (r *Reporter) RunCompleted(run int, elapsed time.Duration) {
	r.breakDots()
	fmt.Fprintf(r.out, "run %d completed in %s\n", run, elapsed)
	logger.Logf("reporter", "run %d completed in %s", run, elapsed)
}

// Fault implements the suite.Observer interface.
func (r *Reporter) Fault(rec suite.FaultRecord) {
	r.breakDots()
	fmt.Fprintf(r.out, "%s%s%s\n", r.pen(ansi.Pens["red"]), rec, r.pen(ansi.NormalPen))
	fmt.Fprintf(r.out, "  %s into pass, soak pause %s\n", rec.SincePassStart, rec.SoakPause)
	logger.Log("reporter", rec.String())
}

// SuiteSummary implements the suite.Observer interface.
func (r *Reporter) SuiteSummary(out suite.Outcome) {
	r.breakDots()
	tm := out.Timing
	fmt.Fprintf(r.out, "%s%s%s: run times min/avg/max %s/%s/%s, total %s, final soak pause %s\n",
		r.pen(ansi.Pens["green"]), out, r.pen(ansi.NormalPen),
		tm.Min, tm.Avg, tm.Max, tm.Total, tm.FinalSoakPause)
	logger.Logf("reporter", "suite summary: %s total=%s", out, tm.Total)
}
