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

package chime_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hexbench/drambench/chime"
	"github.com/hexbench/drambench/test"
)

func TestChimeShapes(t *testing.T) {
	pass := chime.PassChime()
	fault := chime.FaultChime()

	test.ExpectSuccess(t, len(pass) > 0)
	test.ExpectSuccess(t, len(fault) > 0)

	// 8-bit samples are unsigned and stay in range
	for _, v := range append(pass, fault...) {
		if v < 0 || v > 255 {
			t.Fatalf("sample out of 8-bit range: %d", v)
		}
	}
}

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "chime.wav")

	err := chime.Write(fn, chime.PassChime())
	test.ExpectSuccess(t, err)

	info, err := os.Stat(fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.Size() > 44)
}
