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

package logger_test

import (
	"strings"
	"testing"

	"github.com/hexbench/drambench/logger"
	"github.com/hexbench/drambench/test"
)

func TestWrite(t *testing.T) {
	logger.Clear()

	b := &strings.Builder{}
	test.ExpectFailure(t, logger.Write(b))
	test.ExpectEquality(t, b.String(), "")

	logger.Log("test", "this is a test")
	test.ExpectSuccess(t, logger.Write(b))
	test.ExpectEquality(t, b.String(), "test: this is a test\n")
}

func TestRepeatCollapse(t *testing.T) {
	logger.Clear()

	logger.Log("test", "same detail")
	logger.Log("test", "same detail")
	logger.Log("test", "same detail")

	b := &strings.Builder{}
	test.ExpectSuccess(t, logger.Write(b))
	test.ExpectEquality(t, b.String(), "test: same detail (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "one")
	logger.Log("test", "two")
	logger.Log("test", "three")

	b := &strings.Builder{}
	logger.Tail(b, 2)
	test.ExpectEquality(t, b.String(), "test: two\ntest: three\n")

	// asking for more entries than exist is not an error
	b.Reset()
	logger.Tail(b, 100)
	test.ExpectEquality(t, b.String(), "test: one\ntest: two\ntest: three\n")
}
