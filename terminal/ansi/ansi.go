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

// Package ansi defines ANSI control codes for the styles and colours used
// when writing to a terminal.
package ansi

import "fmt"

// ansi colour.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// Pens is the table of bright colours to be used for text.
var Pens map[string]string

// DimPens is the table of dim colours to be used for text.
var DimPens map[string]string

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[m"

// Bold is the CSI sequence for bold text.
const Bold = "\033[1m"

// ClearLine is the CSI sequence to clear the current line.
const ClearLine = "\033[2K"

func pen(target, col int) string {
	return fmt.Sprintf("\033[%d%dm", target, col)
}

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)

	cols := map[string]int{
		"black":   colBlack,
		"red":     colRed,
		"green":   colGreen,
		"yellow":  colYellow,
		"blue":    colBlue,
		"magenta": colMagenta,
		"cyan":    colCyan,
		"white":   colWhite,
		"normal":  colDefault,
	}

	for n, c := range cols {
		Pens[n] = pen(targetBrightPen, c)
		DimPens[n] = pen(targetPen, c)
	}
}
