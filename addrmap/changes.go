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

import "fmt"

// ChangeKind distinguishes the two event types in the change stream.
type ChangeKind int

// Every region contributes exactly one ChangeStart and one ChangeEnd.
const (
	ChangeStart ChangeKind = iota
	ChangeEnd
)

func (k ChangeKind) String() string {
	if k == ChangeStart {
		return "START"
	}
	return "END"
}

// ChangeEvent marks an address change during a linear walk of the file.
type ChangeEvent struct {
	Kind ChangeKind

	// for a ChangeEnd event the offset is just past the last byte of the
	// region.
	Offset int

	// the address in effect at Offset after the change. for a ChangeEnd
	// event this is the address that resumes in the enclosing region's
	// space, or NonAddr if the enclosing region is non-addressable. a
	// consumer can emit a "resume at" directive without recomputing the
	// enclosing context.
	Address int

	// the originating region, with any floating length resolved. the
	// ChangeStart and ChangeEnd events of the same region share this
	// reference. gap fillers reference a synthesised non-addressable
	// region.
	Region *Region
}

func (e ChangeEvent) String() string {
	s := fmt.Sprintf("%-5s +%06x", e.Kind, e.Offset)
	if e.Address == NonAddr {
		return fmt.Sprintf("%s (no address)", s)
	}
	return fmt.Sprintf("%s $%06x", s, e.Address)
}

// buildChanges generates the change stream from the tree. the top level is
// padded with synthesised non-addressable fillers so that the stream covers
// [0, span) without gaps; gaps below the top level are covered by the
// enclosing region's own events.
func (m *Map) buildChanges() []ChangeEvent {
	events := make([]ChangeEvent, 0, (len(m.regions)+1)*2)

	var emit func(n *node)
	emit = func(n *node) {
		r := &n.region

		events = append(events, ChangeEvent{
			Kind:    ChangeStart,
			Offset:  r.Offset,
			Address: r.Address,
			Region:  r,
		})

		for _, c := range n.children {
			emit(c)
		}

		endOffset := r.End()
		endAddress := NonAddr
		if p := n.parent.region; p.HasAddress() {
			endAddress = p.Address + (endOffset - p.Offset)
		}

		events = append(events, ChangeEvent{
			Kind:    ChangeEnd,
			Offset:  endOffset,
			Address: endAddress,
			Region:  r,
		})
	}

	filler := func(offset int, length int) {
		emit(&node{
			region: Region{Offset: offset, Length: length, Address: NonAddr},
			parent: m.tree,
		})
	}

	pos := 0
	for _, c := range m.tree.children {
		if c.region.Offset > pos {
			filler(pos, c.region.Offset-pos)
		}
		emit(c)
		pos = c.end()
	}
	if pos < m.span {
		filler(pos, m.span-pos)
	}

	return events
}

// Changes returns the change stream as a snapshot slice. The slice is
// replaced, never altered, by subsequent mutations.
func (m *Map) Changes() []ChangeEvent {
	return m.changes
}

// ChangeIterator facilitates traversal over the change stream in offset
// order.
//
// The iterator holds a snapshot of the stream; it remains valid and
// self-consistent if the map is mutated mid-iteration, although it will of
// course describe the pre-mutation map.
type ChangeIterator struct {
	events []ChangeEvent
	idx    int

	// the total number of events in the iteration
	EventCount int
}

// NewChangeIterator is the preferred method of initialisation for the
// ChangeIterator type.
func (m *Map) NewChangeIterator() *ChangeIterator {
	return &ChangeIterator{
		events:     m.changes,
		idx:        -1,
		EventCount: len(m.changes),
	}
}

// Start new iteration from the first event.
func (it *ChangeIterator) Start() (*ChangeEvent, bool) {
	it.idx = -1
	return it.Next()
}

// Next event in the stream. Returns nil and false when the stream is
// exhausted.
func (it *ChangeIterator) Next() (*ChangeEvent, bool) {
	if it.idx+1 >= len(it.events) {
		return nil, false
	}
	it.idx++
	return &it.events[it.idx], true
}
