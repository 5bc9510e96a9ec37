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

package curated_test

import (
	"errors"
	"testing"

	"github.com/hexbench/drambench/curated"
	"github.com/hexbench/drambench/test"
)

const testPattern = "test error: %s"
const testPatternB = "another test error: %s"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, testPatternB))

	// plain errors are not curated errors
	p := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Is(p, testPattern))
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, "foo")
	outer := curated.Errorf(testPatternB, inner)

	test.ExpectSuccess(t, curated.Has(outer, testPatternB))
	test.ExpectSuccess(t, curated.Has(outer, testPattern))
	test.ExpectFailure(t, curated.Has(inner, testPatternB))
}

func TestNormalisation(t *testing.T) {
	// duplicate adjacent message parts are removed
	inner := curated.Errorf("segment: %s", "detail")
	outer := curated.Errorf("segment: %v", inner)
	test.ExpectEquality(t, outer.Error(), "segment: detail")
}
