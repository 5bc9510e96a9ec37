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

// Package curated implements the error type used throughout drambench.
//
// Errors are created with the Errorf() function. The first argument is a
// pattern string in the style of fmt.Errorf(). Packages that want their
// errors to be identifiable by callers declare the pattern as a sentinel
// const and test for it with the Is() and Has() functions.
//
//	const NoEntry = "gpio: no entry for pin: %s"
//
//	...
//
//	if curated.Is(err, gpio.NoEntry) {
//		...
//	}
//
// The Error() function normalises the message chain, removing duplicate
// adjacent parts. This keeps deeply wrapped errors readable when they are
// finally printed.
package curated
