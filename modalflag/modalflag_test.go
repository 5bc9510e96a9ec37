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

package modalflag_test

import (
	"testing"
	"time"

	"github.com/hexbench/drambench/modalflag"
	"github.com/hexbench/drambench/test"
)

func TestNoModes(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{})
	md.NewMode()

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
}

func TestSubModeSelection(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"sim"})
	md.NewMode()
	md.AddSubModes("RUN", "SIM", "VERSION")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)

	// mode words are case insensitive
	test.ExpectEquality(t, md.Mode(), "SIM")
}

func TestDefaultSubMode(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{})
	md.NewMode()
	md.AddSubModes("RUN", "SIM")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
}

func TestModeFlags(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"run", "-runs", "5", "-maxpause", "40ms"})
	md.NewMode()
	md.AddSubModes("RUN", "SIM")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	runs := md.AddInt("runs", 1, "number of runs")
	pause := md.AddDuration("maxpause", 0, "maximum soak pause")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *runs, 5)
	test.ExpectEquality(t, *pause, 40*time.Millisecond)
}

func TestUnknownFlag(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-no-such-flag"})
	md.NewMode()

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestPath(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"sim"})
	md.NewMode()
	md.AddSubModes("RUN", "SIM")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Path(), "SIM")
}
