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

// node in the containment tree. the region field is a copy of the
// authoritative entry with any floating length resolved; the root and the
// change stream's gap fillers hold synthesised non-addressable regions.
//
// the tree is rebuilt wholesale on every mutation so the parent reference
// never dangles.
type node struct {
	region   Region
	parent   *node
	children []*node
}

func (n *node) end() int {
	return n.region.Offset + n.region.Length
}

// buildTree creates the containment tree from the region list. the list
// order is relied upon: ascending offset with enclosing entries before
// their same-start children means a single forward pass can assign every
// region to its tightest enclosing parent.
func (m *Map) buildTree() *node {
	root := &node{
		region: Region{Offset: 0, Length: m.span, Address: NonAddr},
	}

	i := 0

	var descend func(parent *node)
	descend = func(parent *node) {
		for i < len(m.regions) && m.regions[i].Offset < parent.end() {
			child := &node{region: m.regions[i], parent: parent}
			i++

			if child.region.IsFloating() {
				// a floating region ends at the next region's start or at
				// the parent's end, whichever is nearer. resolved floating
				// regions are leaves
				next := parent.end()
				if i < len(m.regions) && m.regions[i].Offset < next {
					next = m.regions[i].Offset
				}
				child.region.Length = next - child.region.Offset
				child.region.WasFloating = true
			} else {
				descend(child)
			}

			parent.children = append(parent.children, child)
		}
	}
	descend(root)

	return root
}

// offsetToNode returns the deepest tree node whose region contains the
// offset. never returns nil for an offset inside the file span; the
// synthetic root covers everything.
func (m *Map) offsetToNode(offset int) *node {
	n := m.tree
	for {
		var deeper *node
		for _, c := range n.children {
			if offset >= c.region.Offset && offset < c.end() {
				deeper = c
				break
			}
		}
		if deeper == nil {
			return n
		}
		n = deeper
	}
}

// OffsetToAddress returns the address of the byte at the specified file
// offset, as defined by the innermost region containing the offset. Returns
// NonAddr if the offset has no address, including when the offset is
// outside the file span.
func (m *Map) OffsetToAddress(offset int) int {
	if offset < 0 || offset >= m.span {
		return NonAddr
	}

	n := m.offsetToNode(offset)
	if !n.region.HasAddress() {
		return NonAddr
	}
	return n.region.Address + (offset - n.region.Offset)
}

// AddressToOffset finds the file offset of an address as seen from a
// reference point. The srcOffset argument is the offset of the code making
// the reference; of the regions that could supply the target address, the
// ones visible from that scope are preferred.
//
// The search starts at the innermost region containing srcOffset and works
// outwards. Within each scope children are searched before the region
// itself, so a more specific overlay wins over the space it is embedded in.
// A subtree that has already been searched is not revisited on the way up.
//
// Returns NotFound if no region supplies the address.
func (m *Map) AddressToOffset(srcOffset int, targetAddr int) int {
	if srcOffset < 0 || srcOffset >= m.span {
		return NotFound
	}
	if targetAddr < 0 || targetAddr > AddrMax {
		return NotFound
	}

	start := m.offsetToNode(srcOffset)
	var ignore *node

	for start != nil {
		if offset := findAddress(start, ignore, targetAddr); offset != NotFound {
			return offset
		}
		ignore = start
		start = start.parent
	}

	return NotFound
}

// depth-first search of a subtree for a region that supplies the target
// address. children are visited in offset order, before the subtree's own
// region is considered. the ignore argument excludes an already-searched
// child at the top level of the search.
func findAddress(n *node, ignore *node, targetAddr int) int {
	for _, c := range n.children {
		if c == ignore {
			continue
		}
		if offset := findAddress(c, nil, targetAddr); offset != NotFound {
			return offset
		}
	}

	r := n.region
	if !r.HasAddress() {
		return NotFound
	}
	if targetAddr < r.Address || targetAddr >= r.Address+r.Length {
		return NotFound
	}

	offset := r.Offset + (targetAddr - r.Address)

	// children carve holes in this region's address space. an offset that
	// falls inside a child belongs to the child and the child has already
	// failed to supply the address directly. the child's first byte is the
	// exception: regions sharing a start offset would otherwise occlude
	// each other's start address entirely
	for _, c := range n.children {
		if offset > c.region.Offset && offset < c.end() {
			return NotFound
		}
	}

	return offset
}

// IsRangeUnbroken returns true if the byte range [offset, offset+length)
// lies within a single tree node with no child region carving into it. Code
// generation uses this to decide whether a multi-byte value crosses an
// address-change boundary.
func (m *Map) IsRangeUnbroken(offset int, length int) bool {
	if length <= 0 || offset < 0 || offset+length > m.span {
		return false
	}

	n := m.offsetToNode(offset)
	if offset+length > n.end() {
		return false
	}

	for _, c := range n.children {
		if c.region.Offset < offset+length && c.end() > offset {
			return false
		}
	}

	return true
}
