// This file is part of Disasm65.
//
// Disasm65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Disasm65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Disasm65.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"testing"

	"github.com/peteri/disasm65/curated"
	"github.com/peteri/disasm65/test"
)

const testPattern = "test: %s"
const wrapPattern = "wrap: %v"

func TestIdentity(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test: foo")

	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	// uncurated errors are not identified
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestChain(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf(wrapPattern, e)

	// Is() only matches the head of the chain
	test.ExpectSuccess(t, curated.Is(f, wrapPattern))
	test.ExpectFailure(t, curated.Is(f, testPattern))

	// Has() matches anywhere in the chain
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
}

func TestNormalisation(t *testing.T) {
	// adjacent duplicate parts are collapsed
	e := curated.Errorf("shell: %v", curated.Errorf("shell: %v", curated.Errorf("bad command")))
	test.ExpectEquality(t, e.Error(), "shell: bad command")
}
