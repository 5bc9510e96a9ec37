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

// Package modalflag layers sub-modes on top of the flag package from the
// standard library. A mode is a word on the command line that selects a
// new set of flags:
//
//	drambench RUN -runs 5
//	drambench SIM -fault 17,29
//
// The Modes type is good for multiple levels of sub-mode, each level
// introduced with NewMode() and parsed with Parse().
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// ParseResult is returned by the Parse() function.
type ParseResult int

// Values of ParseResult.
const (
	// parsing was successful and the program can continue.
	ParseContinue ParseResult = iota

	// help was requested and has been printed.
	ParseHelp

	// an error occurred and is returned as the second return value.
	ParseError
)

// Modes is the handler for command line arguments with sub-modes. The
// Output field should be set before calling Parse() or help messages will
// not be seen.
type Modes struct {
	// where to print help messages.
	Output io.Writer

	// the underlying flag set. renewed on every call to NewMode().
	flags *flag.FlagSet

	// the argument list as given to NewArgs().
	args    []string
	argsIdx int

	// the sub-modes valid at the current level.
	subModes []string

	// the series of sub-modes encountered during parsing.
	path []string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs supplies the argument list to be parsed (os.Args[1:] for the
// command line).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
}

// NewMode begins a new level of flags and sub-modes.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet(md.Path(), flag.ContinueOnError)
	md.subModes = md.subModes[:0]
}

// AddSubModes registers the sub-modes valid at the current level. The
// first listed sub-mode is the default, used when the command line names
// none of them.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// Mode returns the most recently encountered sub-mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the sub-modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

func (md *Modes) help() {
	if md.Output == nil {
		return
	}
	if len(md.subModes) > 0 {
		fmt.Fprintf(md.Output, "available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}
	md.flags.SetOutput(md.Output)
	md.flags.PrintDefaults()
}

// Parse the current level of arguments. Help requests are printed by the
// function itself; the ParseHelp return value says it has happened.
func (md *Modes) Parse() (ParseResult, error) {
	// suppress the flag package's own error output. errors are returned,
	// help is handled by the help() function
	md.flags.SetOutput(io.Discard)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.help()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		mode := md.subModes[0]
		for i := range md.subModes {
			if md.subModes[i] == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are not flags or a listed
// sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the remaining argument at position i, or the empty
// string if there is none.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool adds a boolean flag to the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt adds an integer flag to the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString adds a string flag to the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration adds a time.Duration flag to the current mode.
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}
