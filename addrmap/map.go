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

package addrmap

import (
	"fmt"

	"github.com/peteri/disasm65/curated"
)

// Map is the address map for a single file image. The zero value is not
// usable; create instances with New() or FromEntries().
type Map struct {
	span    int
	regions []Region

	// derived views. rebuilt by resync() after every mutation
	tree    *node
	changes []ChangeEvent
}

// New creates an empty address map for a file of the specified length.
func New(spanLength int) (*Map, error) {
	if spanLength <= 0 || spanLength > SpanMax {
		return nil, curated.Errorf("addrmap: invalid span length (%d)", spanLength)
	}

	m := &Map{span: spanLength}
	m.resync()
	return m, nil
}

// FromEntries creates an address map from a flat list of entries, as
// deserialised from a project file. Each entry passes through AddRegion()
// so the list is fully re-validated; the order of the supplied entries is
// not trusted.
func FromEntries(spanLength int, entries []Region) (*Map, error) {
	m, err := New(spanLength)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if res := m.AddRegion(e.Offset, e.Length, e.Address, e.IsRelative); res != AddOkay {
			return nil, curated.Errorf("addrmap: entry %s: %s", e, res)
		}
	}

	return m, nil
}

// SpanLength returns the file length the map was created with.
func (m *Map) SpanLength() int {
	return m.span
}

// NumRegions returns the number of regions in the map.
func (m *Map) NumRegions() int {
	return len(m.regions)
}

func (m *Map) String() string {
	return fmt.Sprintf("span %06x: %d regions, %d change events", m.span, len(m.regions), len(m.changes))
}

// Entries returns a snapshot of the authoritative region list in stored
// order: ascending offset, same-offset entries with the larger length
// first. Floating regions appear unresolved. The snapshot is suitable for
// serialisation and for reconstruction through FromEntries().
func (m *Map) Entries() []Region {
	e := make([]Region, len(m.regions))
	copy(e, m.regions)
	return e
}

// RegionsAt returns all regions that start at exactly the specified offset,
// in stored order.
func (m *Map) RegionsAt(offset int) []Region {
	var e []Region
	for _, r := range m.regions {
		if r.Offset == offset {
			e = append(e, r)
		}
	}
	return e
}

// AddRegion validates and inserts a new region. Any result other than
// AddOkay means the map is unchanged.
//
// The length argument is a positive byte count or FloatingLen. The address
// argument is in the range [0, AddrMax] or NonAddr.
func (m *Map) AddRegion(offset int, length int, address int, isRelative bool) AddResult {
	if offset < 0 || offset >= m.span {
		return AddInvalidValue
	}
	if length != FloatingLen && (length <= 0 || offset+length > m.span) {
		return AddInvalidValue
	}
	if address != NonAddr && (address < 0 || address > AddrMax) {
		return AddInvalidValue
	}

	// find the index of the first stored entry that should follow the new
	// region. among entries sharing an offset a larger known length sorts
	// first; a floating entry cannot share its offset with anything
	i := 0
	for ; i < len(m.regions); i++ {
		e := m.regions[i]
		if e.Offset < offset {
			continue
		}
		if e.Offset > offset {
			break
		}
		if e.Length == length {
			return AddOverlapExisting
		}
		if e.IsFloating() || length == FloatingLen {
			return AddOverlapFloating
		}
		if e.Length > length {
			continue
		}
		break
	}

	// entries before the insertion point must either end by the new
	// region's start or contain the new region entirely. the scan stops at
	// the tightest enclosing entry; anything nearer the front encloses
	// that entry in turn
	for j := i - 1; j >= 0; j-- {
		e := m.regions[j]
		if e.IsFloating() {
			// a floating entry ends before any later sibling
			continue
		}
		if e.End() <= offset {
			continue
		}
		if length == FloatingLen {
			// a floating region always fits: it ends at the next
			// boundary inside e
			break
		}
		if offset+length > e.End() {
			return AddStraddleExisting
		}
		break
	}

	// entries after the insertion point that start inside the new region
	// must fit inside it entirely. a floating new region ends before any of
	// them, so there is nothing to check
	if length != FloatingLen {
		end := offset + length
		for j := i; j < len(m.regions); j++ {
			e := m.regions[j]
			if e.Offset >= end {
				break
			}
			if e.IsFloating() {
				continue
			}
			if e.End() > end {
				return AddStraddleExisting
			}
		}
	}

	m.regions = append(m.regions, Region{})
	copy(m.regions[i+1:], m.regions[i:])
	m.regions[i] = Region{
		Offset:     offset,
		Length:     length,
		Address:    address,
		IsRelative: isRelative,
	}

	m.resync()
	return AddOkay
}

// EditRegion replaces the address and relative flag of the region
// identified by (offset, length). A floating region is identified by
// (offset, FloatingLen). Offset and length cannot be changed; remove and
// re-add the region to resize it.
//
// Returns false if no such region exists or if the new address is out of
// range.
func (m *Map) EditRegion(offset int, length int, address int, isRelative bool) bool {
	if address != NonAddr && (address < 0 || address > AddrMax) {
		return false
	}

	i := m.find(offset, length)
	if i < 0 {
		return false
	}

	m.regions[i] = Region{
		Offset:     offset,
		Length:     length,
		Address:    address,
		IsRelative: isRelative,
	}

	m.resync()
	return true
}

// RemoveRegion removes the region identified by (offset, length). A
// floating region is identified by (offset, FloatingLen).
//
// Returns false if no such region exists.
func (m *Map) RemoveRegion(offset int, length int) bool {
	i := m.find(offset, length)
	if i < 0 {
		return false
	}

	m.regions = append(m.regions[:i], m.regions[i+1:]...)

	m.resync()
	return true
}

// index of the region with exactly the specified offset and length, or -1.
func (m *Map) find(offset int, length int) int {
	for i, e := range m.regions {
		if e.Offset == offset && e.Length == length {
			return i
		}
	}
	return -1
}

// resync rebuilds the derived views after a mutation. the three views are
// swapped in together; readers never see a partially updated map.
func (m *Map) resync() {
	m.tree = m.buildTree()
	m.changes = m.buildChanges()

	if validateOnMutate {
		if err := m.Validate(); err != nil {
			panic(err)
		}
	}
}
