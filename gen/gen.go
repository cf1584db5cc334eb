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

// Package gen walks an address map's change stream in offset order and
// writes the origin directives a source listing needs. It is the linear
// consumer of the map: an address-origin directive at each region start
// and, optionally, a resume directive at each region end, using the
// enclosing address carried on the end event.
//
// The directive syntax is dialect-neutral. A real assembler back-end would
// swap the directive spellings and keep the walk.
package gen

import (
	"fmt"
	"io"

	"github.com/peteri/disasm65/addrmap"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	// emit a resume directive when a region ends inside an addressable
	// enclosing space
	Resume bool

	// annotate each directive with the file offset it applies at
	OffsetComments bool
}

// Write the origin directives for the entire address map to io.Writer.
func Write(output io.Writer, m *addrmap.Map, attr WriteAttr) error {
	it := m.NewChangeIterator()

	for e, ok := it.Start(); ok; e, ok = it.Next() {
		var s string

		switch e.Kind {
		case addrmap.ChangeStart:
			switch {
			case !e.Region.HasAddress():
				s = fmt.Sprintf("        ; +%06x non-addressable", e.Offset)
			case e.Region.IsRelative:
				s = fmt.Sprintf("        .org.rel $%06x", e.Address)
			default:
				s = fmt.Sprintf("        .org $%06x", e.Address)
			}

		case addrmap.ChangeEnd:
			if !attr.Resume || e.Address == addrmap.NonAddr {
				continue
			}
			s = fmt.Sprintf("        .resume $%06x", e.Address)
		}

		// the non-addressable start line already carries its offset
		if attr.OffsetComments && (e.Kind == addrmap.ChangeEnd || e.Region.HasAddress()) {
			s = fmt.Sprintf("%-32s ; +%06x", s, e.Offset)
		}

		if _, err := io.WriteString(output, s+"\n"); err != nil {
			return err
		}
	}

	return nil
}
