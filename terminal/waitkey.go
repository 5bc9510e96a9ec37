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

// Package terminal wraps "github.com/pkg/term/termios". it provides the
// arming prompt used before a suite is run against a real device. the
// prompt gives the operator the chance to seat the device in the fixture
// before any line is driven.
package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/hexbench/drambench/curated"
)

// sentinel for errors returned by WaitAnyKey.
const NotATerminal = "terminal: %v"

// WaitAnyKey prints the prompt and blocks until a single key is pressed.
// The terminal is placed in cbreak mode for the duration so the operator
// does not need to press return. The previous terminal attributes are
// restored before the function returns.
func WaitAnyKey(output io.Writer, prompt string) error {
	var canAttr unix.Termios
	var cbreakAttr unix.Termios

	err := termios.Tcgetattr(os.Stdin.Fd(), &canAttr)
	if err != nil {
		return curated.Errorf(NotATerminal, err)
	}

	cbreakAttr = canAttr
	termios.Cfmakecbreak(&cbreakAttr)

	err = termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &cbreakAttr)
	if err != nil {
		return curated.Errorf(NotATerminal, err)
	}
	defer func() {
		_ = termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &canAttr)
	}()

	fmt.Fprint(output, prompt)

	b := make([]byte, 1)
	_, err = os.Stdin.Read(b)
	if err != nil {
		return curated.Errorf(NotATerminal, err)
	}

	fmt.Fprintln(output)

	return nil
}
