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
	"strings"
)

// Offsets and addresses are at most 24 bits. SpanMax is the largest file
// the map will accept (16MiB).
const (
	OffsetMax = 1<<24 - 1
	AddrMax   = 1<<24 - 1
	SpanMax   = OffsetMax + 1
)

// Sentinel values. FloatingLen and NonAddr are stable, well-known negative
// constants; they appear verbatim in serialised project files. NotFound is
// the return value for a failed AddressToOffset() query and is never
// serialised.
const (
	FloatingLen = -1024
	NonAddr     = -1025
	NotFound    = -1
)

// Region maps the byte range [Offset, Offset+Length) to a contiguous
// address range starting at Address. Regions are immutable once created;
// the editing functions on Map replace entries rather than alter them.
type Region struct {
	Offset int

	// Length is a positive byte count or the FloatingLen sentinel. A
	// floating region extends to the next natural boundary: the start of
	// the next region or the end of the enclosing region, whichever comes
	// first. The authoritative region list always stores the sentinel;
	// resolution happens during the tree build.
	Length int

	// Address is in the range [0, AddrMax] or the NonAddr sentinel for
	// file content with no CPU address.
	Address int

	// IsRelative is carried through to code generation untouched. The map
	// neither reads nor enforces it.
	IsRelative bool

	// WasFloating is set on the resolved copy of a floating region held by
	// the derived views. Entries in the authoritative list never have it
	// set.
	WasFloating bool
}

// IsFloating returns true if the region's length is unresolved.
func (r Region) IsFloating() bool {
	return r.Length == FloatingLen
}

// HasAddress returns false if the region is non-addressable.
func (r Region) HasAddress() bool {
	return r.Address != NonAddr
}

// End returns the offset just past the last byte of the region. Meaningless
// for an unresolved floating region.
func (r Region) End() int {
	return r.Offset + r.Length
}

// Contains returns true if the offset falls inside the region. Always false
// for an unresolved floating region.
func (r Region) Contains(offset int) bool {
	return !r.IsFloating() && offset >= r.Offset && offset < r.End()
}

func (r Region) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("+%06x ", r.Offset))
	if r.IsFloating() {
		s.WriteString("[float ] ")
	} else {
		s.WriteString(fmt.Sprintf("[%06x] ", r.Length))
	}
	if r.HasAddress() {
		s.WriteString(fmt.Sprintf("-> $%06x", r.Address))
	} else {
		s.WriteString("-> (none)")
	}
	if r.IsRelative {
		s.WriteString(" rel")
	}
	if r.WasFloating {
		s.WriteString(" (resolved)")
	}
	return s.String()
}

// AddResult is the outcome of the Map AddRegion() function. Any value other
// than AddOkay means the map was not changed.
type AddResult int

// The AddInvalidValue result indicates a programmer error. The overlap and
// straddle results are user-facing conflicts; the String() form is suitable
// for display in an edit dialog.
const (
	AddOkay AddResult = iota
	AddInvalidValue
	AddOverlapExisting
	AddOverlapFloating
	AddStraddleExisting
)

func (r AddResult) String() string {
	switch r {
	case AddOkay:
		return "okay"
	case AddInvalidValue:
		return "invalid value"
	case AddOverlapExisting:
		return "a region with the same offset and length already exists"
	case AddOverlapFloating:
		return "a floating region cannot share its offset with another region"
	case AddStraddleExisting:
		return "region straddles the boundary of an existing region"
	}
	return "unknown result"
}
