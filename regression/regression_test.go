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

package regression_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peteri/disasm65/addrmap"
	"github.com/peteri/disasm65/project"
	"github.com/peteri/disasm65/regression"
	"github.com/peteri/disasm65/test"
)

func testMap(t *testing.T) *addrmap.Map {
	t.Helper()

	m, err := addrmap.New(0x8000)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, m.AddRegion(0x0000, 0x10, addrmap.NonAddr, false), addrmap.AddOkay)
	test.DemandEquality(t, m.AddRegion(0x1000, addrmap.FloatingLen, 0x2000, false), addrmap.AddOkay)

	return m
}

func TestFingerprintStability(t *testing.T) {
	m := testMap(t)
	n := testMap(t)

	// identical maps fingerprint identically
	test.ExpectEquality(t, regression.Fingerprint(m), regression.Fingerprint(n))

	// any observable change moves the fingerprint
	test.DemandEquality(t, n.EditRegion(0x1000, addrmap.FloatingLen, 0x3000, false), true)
	test.ExpectInequality(t, regression.Fingerprint(m), regression.Fingerprint(n))
}

func TestRegressCycle(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "regressionDB")
	projPath := filepath.Join(dir, "test.d65")

	m := testMap(t)
	test.DemandSuccess(t, project.Save(projPath, m))

	out := &strings.Builder{}

	// record a baseline and check it against itself
	test.DemandSuccess(t, regression.RegressAdd(out, dbPath, projPath))
	test.ExpectSuccess(t, regression.RegressRun(out, dbPath) == nil)
	test.ExpectSuccess(t, strings.Contains(out.String(), "1 succeed, 0 fail"))

	// changing the project file on disk fails the run
	test.DemandEquality(t, m.EditRegion(0x1000, addrmap.FloatingLen, 0x3000, false), true)
	test.DemandSuccess(t, project.Save(projPath, m))

	out.Reset()
	test.ExpectFailure(t, regression.RegressRun(out, dbPath))
	test.ExpectSuccess(t, strings.Contains(out.String(), "0 succeed, 1 fail"))

	// deleting the only entry leaves an empty database
	out.Reset()
	test.DemandSuccess(t, regression.RegressDelete(out, dbPath, 0))
	test.ExpectSuccess(t, regression.RegressList(out, dbPath) == nil)
	test.ExpectSuccess(t, strings.Contains(out.String(), "database is empty"))
}

func TestRegressList(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "regressionDB")
	projPath := filepath.Join(dir, "test.d65")

	test.DemandSuccess(t, project.Save(projPath, testMap(t)))

	out := &strings.Builder{}
	test.DemandSuccess(t, regression.RegressAdd(out, dbPath, projPath))

	out.Reset()
	test.DemandSuccess(t, regression.RegressList(out, dbPath))
	test.ExpectSuccess(t, strings.Contains(out.String(), "000 [map] "+projPath))
	test.ExpectSuccess(t, strings.Contains(out.String(), "Total: 1"))

	// the database survives on disk between sessions
	fi, err := os.Stat(dbPath)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.Size() > 0)
}
