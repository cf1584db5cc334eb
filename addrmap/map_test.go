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

package addrmap_test

import (
	"testing"

	"github.com/peteri/disasm65/addrmap"
	"github.com/peteri/disasm65/test"
)

func TestNew(t *testing.T) {
	m, err := addrmap.New(0x8000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.SpanLength(), 0x8000)
	test.ExpectEquality(t, m.NumRegions(), 0)
	test.ExpectSuccess(t, m.Validate() == nil)

	// an empty map still covers the file with change events
	test.ExpectEquality(t, len(m.Changes()), 2)

	_, err = addrmap.New(0)
	test.ExpectFailure(t, err)
	_, err = addrmap.New(-1)
	test.ExpectFailure(t, err)
	_, err = addrmap.New(addrmap.SpanMax + 1)
	test.ExpectFailure(t, err)

	// the largest allowed file is fine
	_, err = addrmap.New(addrmap.SpanMax)
	test.ExpectSuccess(t, err == nil)
}

func TestAddRegionValidation(t *testing.T) {
	m, err := addrmap.New(0x8000)
	test.DemandSuccess(t, err)

	// offset out of range
	test.ExpectEquality(t, m.AddRegion(-1, 0x100, 0x1000, false), addrmap.AddInvalidValue)
	test.ExpectEquality(t, m.AddRegion(0x8000, 0x100, 0x1000, false), addrmap.AddInvalidValue)

	// length out of range
	test.ExpectEquality(t, m.AddRegion(0, 0, 0x1000, false), addrmap.AddInvalidValue)
	test.ExpectEquality(t, m.AddRegion(0, -2, 0x1000, false), addrmap.AddInvalidValue)
	test.ExpectEquality(t, m.AddRegion(0x7fff, 2, 0x1000, false), addrmap.AddInvalidValue)

	// address out of range
	test.ExpectEquality(t, m.AddRegion(0, 0x100, -2, false), addrmap.AddInvalidValue)
	test.ExpectEquality(t, m.AddRegion(0, 0x100, addrmap.AddrMax+1, false), addrmap.AddInvalidValue)

	// nothing was added
	test.ExpectEquality(t, m.NumRegions(), 0)

	// boundary values are fine
	test.ExpectEquality(t, m.AddRegion(0x7fff, 1, addrmap.AddrMax, false), addrmap.AddOkay)
	test.ExpectEquality(t, m.AddRegion(0, 0x8000, 0, false), addrmap.AddOkay)
}

// the simple linear scenario: three disjoint regions and a trailing gap.
func simpleLinear(t *testing.T) *addrmap.Map {
	t.Helper()

	m, err := addrmap.New(0x8000)
	test.DemandSuccess(t, err)

	test.DemandEquality(t, m.AddRegion(0x0000, 0x200, 0x1000, false), addrmap.AddOkay)
	test.DemandEquality(t, m.AddRegion(0x0200, 0x500, 0x1200, false), addrmap.AddOkay)
	test.DemandEquality(t, m.AddRegion(0x0700, 0x300, 0x1700, false), addrmap.AddOkay)

	return m
}

func TestSimpleLinear(t *testing.T) {
	m := simpleLinear(t)

	test.ExpectEquality(t, m.OffsetToAddress(0x250), 0x1250)
	test.ExpectEquality(t, m.OffsetToAddress(0x4000), addrmap.NonAddr)
	test.ExpectEquality(t, m.AddressToOffset(0x000, 0x1250), 0x250)
	test.ExpectEquality(t, m.AddressToOffset(0x000, 0x7000), addrmap.NotFound)

	// identical offset/length pair is rejected whatever the address
	test.ExpectEquality(t, m.AddRegion(0x0000, 0x200, 0x1000, false), addrmap.AddOverlapExisting)
	test.ExpectEquality(t, m.AddRegion(0x0000, 0x200, 0x3000, true), addrmap.AddOverlapExisting)

	// partial overlap with an existing sibling
	test.ExpectEquality(t, m.AddRegion(0x0001, 0x200, 0x1000, false), addrmap.AddStraddleExisting)
	test.ExpectEquality(t, m.AddRegion(0x0100, 0x200, 0x1000, false), addrmap.AddStraddleExisting)
	test.ExpectEquality(t, m.AddRegion(0x0600, 0x200, 0x1000, false), addrmap.AddStraddleExisting)

	// rejected additions leave the map untouched
	test.ExpectEquality(t, m.NumRegions(), 3)
	test.ExpectSuccess(t, m.Validate() == nil)
}

func TestEntriesOrdering(t *testing.T) {
	m, err := addrmap.New(0x8000)
	test.DemandSuccess(t, err)

	// additions in scrambled order
	test.DemandEquality(t, m.AddRegion(0x0700, 0x100, 0x1700, false), addrmap.AddOkay)
	test.DemandEquality(t, m.AddRegion(0x0000, 0x800, 0x1000, false), addrmap.AddOkay)
	test.DemandEquality(t, m.AddRegion(0x0000, 0x200, 0x2000, false), addrmap.AddOkay)
	test.DemandEquality(t, m.AddRegion(0x0200, 0x100, 0x3000, false), addrmap.AddOkay)

	e := m.Entries()
	test.DemandEquality(t, len(e), 4)

	// ascending offset; same-offset entries with the larger length first
	for i := 1; i < len(e); i++ {
		a := e[i-1]
		b := e[i]
		if a.Offset == b.Offset {
			test.ExpectSuccess(t, a.Length > b.Length, i)
		} else {
			test.ExpectSuccess(t, a.Offset < b.Offset, i)
		}
	}

	test.ExpectEquality(t, e[0].Offset, 0x0000)
	test.ExpectEquality(t, e[0].Length, 0x800)
	test.ExpectEquality(t, e[1].Offset, 0x0000)
	test.ExpectEquality(t, e[1].Length, 0x200)
}

func TestRegionsAt(t *testing.T) {
	m, err := addrmap.New(0x8000)
	test.DemandSuccess(t, err)

	test.DemandEquality(t, m.AddRegion(0x100, 0x400, 0x4000, false), addrmap.AddOkay)
	test.DemandEquality(t, m.AddRegion(0x100, 0x200, 0x6000, false), addrmap.AddOkay)
	test.DemandEquality(t, m.AddRegion(0x600, 0x100, 0x8000, false), addrmap.AddOkay)

	r := m.RegionsAt(0x100)
	test.DemandEquality(t, len(r), 2)
	test.ExpectEquality(t, r[0].Length, 0x400)
	test.ExpectEquality(t, r[1].Length, 0x200)

	test.ExpectEquality(t, len(m.RegionsAt(0x200)), 0)
	test.ExpectEquality(t, len(m.RegionsAt(0x600)), 1)
}

func TestEditRegion(t *testing.T) {
	m := simpleLinear(t)

	// edit replaces address and relative flag only
	test.ExpectSuccess(t, m.EditRegion(0x0200, 0x500, 0x9200, true))
	test.ExpectEquality(t, m.OffsetToAddress(0x250), 0x9250)

	e := m.RegionsAt(0x0200)
	test.DemandEquality(t, len(e), 1)
	test.ExpectEquality(t, e[0].Address, 0x9200)
	test.ExpectSuccess(t, e[0].IsRelative)

	// region must be identified by its exact offset and length
	test.ExpectFailure(t, m.EditRegion(0x0200, 0x400, 0x9200, false))
	test.ExpectFailure(t, m.EditRegion(0x0201, 0x500, 0x9200, false))

	// an out of range address fails
	test.ExpectFailure(t, m.EditRegion(0x0200, 0x500, addrmap.AddrMax+1, false))

	// a region can lose its address entirely
	test.ExpectSuccess(t, m.EditRegion(0x0200, 0x500, addrmap.NonAddr, false))
	test.ExpectEquality(t, m.OffsetToAddress(0x250), addrmap.NonAddr)

	test.ExpectSuccess(t, m.Validate() == nil)
}

func TestRemoveRegion(t *testing.T) {
	m := simpleLinear(t)

	test.ExpectFailure(t, m.RemoveRegion(0x0200, 0x501))
	test.ExpectEquality(t, m.NumRegions(), 3)

	test.ExpectSuccess(t, m.RemoveRegion(0x0200, 0x500))
	test.ExpectEquality(t, m.NumRegions(), 2)
	test.ExpectEquality(t, m.OffsetToAddress(0x250), addrmap.NonAddr)

	// removing again fails quietly
	test.ExpectFailure(t, m.RemoveRegion(0x0200, 0x500))

	test.ExpectSuccess(t, m.Validate() == nil)
}

func TestRemoveFloatingRegion(t *testing.T) {
	m, err := addrmap.New(0x8000)
	test.DemandSuccess(t, err)

	test.DemandEquality(t, m.AddRegion(0x1000, addrmap.FloatingLen, 0x1000, false), addrmap.AddOkay)

	// a floating region is identified by the sentinel, not its resolved
	// length
	test.ExpectFailure(t, m.RemoveRegion(0x1000, 0x7000))
	test.ExpectSuccess(t, m.RemoveRegion(0x1000, addrmap.FloatingLen))
	test.ExpectEquality(t, m.NumRegions(), 0)
}

func TestFloatingCollisions(t *testing.T) {
	m, err := addrmap.New(0x8000)
	test.DemandSuccess(t, err)

	test.DemandEquality(t, m.AddRegion(0x1000, addrmap.FloatingLen, 0x1000, false), addrmap.AddOkay)

	// an identical floating region is an exact duplicate
	test.ExpectEquality(t, m.AddRegion(0x1000, addrmap.FloatingLen, 0x2000, false), addrmap.AddOverlapExisting)

	// a fixed region at a floating region's offset collides, and the
	// other way around
	test.ExpectEquality(t, m.AddRegion(0x1000, 0x100, 0x2000, false), addrmap.AddOverlapFloating)
	test.DemandEquality(t, m.AddRegion(0x4000, 0x100, 0x2000, false), addrmap.AddOkay)
	test.ExpectEquality(t, m.AddRegion(0x4000, addrmap.FloatingLen, 0x3000, false), addrmap.AddOverlapFloating)
}

func TestRoundTrip(t *testing.T) {
	m, err := addrmap.New(0x8000)
	test.DemandSuccess(t, err)

	test.DemandEquality(t, m.AddRegion(0x0000, 0x2000, 0x8000, false), addrmap.AddOkay)
	test.DemandEquality(t, m.AddRegion(0x0100, 0x200, 0xe100, true), addrmap.AddOkay)
	test.DemandEquality(t, m.AddRegion(0x3000, addrmap.FloatingLen, 0x1000, false), addrmap.AddOkay)
	test.DemandEquality(t, m.AddRegion(0x5000, 0x100, addrmap.NonAddr, false), addrmap.AddOkay)

	n, err := addrmap.FromEntries(m.SpanLength(), m.Entries())
	test.DemandSuccess(t, err)

	// all three views of the reconstruction match the original
	a := m.Entries()
	b := n.Entries()
	test.DemandEquality(t, len(a), len(b))
	for i := range a {
		test.ExpectEquality(t, a[i], b[i], i)
	}

	for offset := 0; offset < m.SpanLength(); offset += 0x40 {
		test.ExpectEquality(t, m.OffsetToAddress(offset), n.OffsetToAddress(offset), offset)
	}

	ca := m.Changes()
	cb := n.Changes()
	test.DemandEquality(t, len(ca), len(cb))
	for i := range ca {
		test.ExpectEquality(t, ca[i].Kind, cb[i].Kind, i)
		test.ExpectEquality(t, ca[i].Offset, cb[i].Offset, i)
		test.ExpectEquality(t, ca[i].Address, cb[i].Address, i)
	}
}

func TestFromEntriesRejectsConflicts(t *testing.T) {
	entries := []addrmap.Region{
		{Offset: 0x0000, Length: 0x200, Address: 0x1000},
		{Offset: 0x0001, Length: 0x200, Address: 0x1000},
	}

	_, err := addrmap.FromEntries(0x8000, entries)
	test.ExpectFailure(t, err)
}
