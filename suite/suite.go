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

// Package suite is the verification engine. It sweeps the full address
// space of the device under test once per pattern, four patterns per run,
// for a configured number of runs. Every cell is written and immediately
// read back; the first mismatch ends the suite.
//
// The suite is strictly sequential. Soak pauses, strobe sequencing and
// indicator signalling all happen on the calling goroutine and nothing is
// cancellable once RunSuite() has been called. The only state shared
// between passes and runs is the global column counter that feeds the
// soak ramp.
package suite

import (
	"time"

	"github.com/hexbench/drambench/hardware/dram"
	"github.com/hexbench/drambench/indicator"
	"github.com/hexbench/drambench/logger"
	"github.com/hexbench/drambench/patterns"
	"github.com/hexbench/drambench/soak"
)

// Suite drives the configured sequence of runs against one device.
type Suite struct {
	cfg Config
	drv *dram.Driver
	obs Observer
	ind indicator.Indicator
	tb  Timebase

	// global progress counter. reset once at suite start, never per run
	counter *soak.Counter
}

// NewSuite is the preferred method of initialisation for the Suite type.
// A nil observer, indicator or timebase is replaced with the do-nothing
// (or real-time) implementation.
func NewSuite(drv *dram.Driver, cfg Config, obs Observer, ind indicator.Indicator, tb Timebase) *Suite {
	if obs == nil {
		obs = NulObserver{}
	}
	if ind == nil {
		ind = indicator.Nul{}
	}
	if tb == nil {
		tb = realTimebase{}
	}

	return &Suite{
		cfg: cfg,
		drv: drv,
		obs: obs,
		ind: ind,
		tb:  tb,
	}
}

// currentPause is the soak pause for the counter's current column.
func (s *Suite) currentPause() time.Duration {
	return soak.Pause(s.counter.Column(), s.counter.Total(), s.cfg.MaxSoakPause)
}

// RunSuite performs the whole configured suite and returns its terminal
// outcome. The function blocks until the suite has passed or faulted;
// there is no other way out.
func (s *Suite) RunSuite() Outcome {
	s.counter = soak.NewCounter(s.cfg.TotalColumns())

	s.obs.SuiteStarted(s.cfg)
	s.ind.Running()

	logger.Logf("suite", "started: %d runs, max pause %s, %s device", s.cfg.Runs, s.cfg.MaxSoakPause, s.cfg.Geometry())

	// the charge in the physical storage decays without row activation.
	// one refresh-only sweep brings every row into a known-held state
	// before the first pattern is written
	s.drv.PrimeRows()

	records := make([]time.Duration, 0, s.cfg.Runs)

	for run := 1; run <= s.cfg.Runs; run++ {
		runStart := s.tb.Now()

		for _, kind := range patterns.Order {
			if rec := s.runPass(kind); rec != nil {
				s.obs.Fault(*rec)
				s.ind.Fault()
				logger.Log("suite", rec.String())
				return Outcome{Passed: false, Fault: rec}
			}
		}

		elapsed := s.tb.Now().Sub(runStart)
		records = append(records, elapsed)
		s.obs.RunCompleted(run, elapsed)
	}

	out := Outcome{
		Passed: true,
		Timing: NewTiming(records, s.currentPause()),
	}

	s.obs.SuiteSummary(out)
	s.ind.Pass()
	logger.Logf("suite", "passed: %d runs in %s", s.cfg.Runs, out.Timing.Total)

	return out
}
