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

import "github.com/hexbench/drambench/patterns"

// runPass sweeps the full address space once under one pattern. Traversal
// is column-major: outer loop over columns, inner loop over rows. Returns
// nil only if every cell matched; otherwise the record of the first
// mismatch.
func (s *Suite) runPass(kind patterns.Kind) *FaultRecord {
	geom := s.drv.Geometry()
	start := s.tb.Now()

	s.obs.PassStarted(kind)

	ordinal := 0
	for col := 0; col < geom.Cols(); col++ {
		// the soak pause is applied before any row of the column is
		// touched. the counter advances exactly once per column, whatever
		// the pattern or run; the pause is a function of progress through
		// the whole suite
		s.tb.Wait(s.currentPause())
		s.counter.Advance()

		for row := 0; row < geom.Rows(); row++ {
			expected := patterns.Expected(kind, uint8(row), uint8(col), ordinal)

			s.drv.WriteCell(uint8(row), uint8(col), expected)
			observed := s.drv.ReadCell(uint8(row), uint8(col))

			if observed != expected {
				// no retry and no continuation. one mismatch already
				// answers the pass/fail question and scanning a known-bad
				// part only wears it further
				return &FaultRecord{
					Kind:           kind,
					Row:            uint8(row),
					Col:            uint8(col),
					Expected:       expected,
					Observed:       observed,
					SincePassStart: s.tb.Now().Sub(start),
					SoakPause:      s.currentPause(),
				}
			}

			ordinal++
		}

		s.checkpoint(kind, col+1, geom.Cols())
	}

	s.obs.PassCompleted(kind, s.tb.Now().Sub(start))

	return nil
}

// checkpoint emits a progress observation every DotEveryColumns columns
// and at each quarter of the pass. Observations are cosmetic; they cannot
// influence the outcome.
func (s *Suite) checkpoint(kind patterns.Kind, done int, total int) {
	quarter := total / 4

	dot := s.cfg.DotEveryColumns > 0 && done%s.cfg.DotEveryColumns == 0
	quart := quarter > 0 && done%quarter == 0

	if dot || quart {
		s.ind.PulseProgress()
		s.obs.Progress(kind, done, total)
	}
}
