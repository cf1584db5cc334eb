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

package regression

import (
	"fmt"

	"github.com/peteri/disasm65/addrmap"
	"github.com/zeebo/blake3"
)

// Fingerprint returns a hex digest identifying the observable state of an
// address map: the file span and every change event in stream order. Two
// maps with the same fingerprint answer every linear walk identically.
func Fingerprint(m *addrmap.Map) string {
	h := blake3.New()

	fmt.Fprintf(h, "span %d\n", m.SpanLength())
	for _, e := range m.Changes() {
		fmt.Fprintf(h, "%d %d %d %t\n", e.Kind, e.Offset, e.Address, e.Region.IsRelative)
	}

	return fmt.Sprintf("%x", h.Sum(nil))
}
