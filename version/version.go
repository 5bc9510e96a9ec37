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

// Package version records the version number of the application.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "drambench"

// if number is empty then the project was not built using the makefile.
var number string

// Version string of the application. If no version number is available the
// vcs revision is used instead.
var Version string

func init() {
	if number != "" {
		Version = fmt.Sprintf("%s (%s)", ApplicationName, number)
		return
	}

	rev := "unknown revision"
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			if v.Key == "vcs.revision" {
				rev = v.Value
			}
			if v.Key == "vcs.modified" && v.Value == "true" {
				rev = fmt.Sprintf("%s+", rev)
			}
		}
	}

	Version = fmt.Sprintf("%s (%s)", ApplicationName, rev)
}
