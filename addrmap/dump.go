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
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
)

// WriteTree writes an indented text rendering of the containment tree.
func (m *Map) WriteTree(output io.Writer) {
	var write func(n *node, depth int)
	write = func(n *node, depth int) {
		io.WriteString(output, strings.Repeat("  ", depth))
		io.WriteString(output, n.region.String())
		io.WriteString(output, "\n")
		for _, c := range n.children {
			write(c, depth+1)
		}
	}

	io.WriteString(output, fmt.Sprintf("file span +%06x\n", m.span))
	for _, c := range m.tree.children {
		write(c, 1)
	}
}

// WriteViz writes the containment tree in graphviz dot format. Useful when
// reporting a map that fails validation; the rendered graph shows parent
// references and child ordering exactly as the query functions see them.
func (m *Map) WriteViz(output io.Writer) {
	memviz.Map(output, m.tree)
}
