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

// Package diagnostics dumps the terminal state of a faulted suite as a
// graphviz dot graph. The dump is for offline inspection when a part
// fails in a surprising way; it has no part in the pass/fail decision.
package diagnostics

import (
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/hexbench/drambench/curated"
	"github.com/hexbench/drambench/logger"
	"github.com/hexbench/drambench/suite"
)

// sentinel for errors from the diagnostics package.
const DumpFail = "diagnostics: %v"

// DumpFault writes the outcome graph to the named file. Most useful when
// the outcome is a fault but a passed outcome can be dumped too.
func DumpFault(filename string, out *suite.Outcome) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(DumpFail, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(DumpFail, err)
		}
	}()

	memviz.Map(f, out)

	logger.Logf("diagnostics", "outcome graph written to %s", filename)

	return nil
}
