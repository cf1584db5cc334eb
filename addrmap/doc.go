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

// Package addrmap binds file offsets to CPU addresses. A file offset is a
// byte position in the binary being disassembled; an address is the logical
// location the byte occupied when the code ran. Overlays, bank-switching and
// loader headers mean the relationship is many-to-many: the same offset can
// be reachable under several addresses and the same address can appear at
// several offsets.
//
// The Map type keeps three views of the same content. The authoritative
// view is a sorted list of Region entries, each mapping a half-open byte
// range [offset, offset+length) to a contiguous address range. A region's
// length can be the Floating sentinel, meaning it extends to the next
// natural boundary; its address can be the NonAddr sentinel for file
// content with no CPU address at all (a loader header, say).
//
// From the region list the Map derives a containment tree, used to answer
// OffsetToAddress() and the scope-aware AddressToOffset(), and a linear
// sequence of change events, used by code generation passes that walk the
// file in offset order. Both derived views are discarded and rebuilt on
// every mutation; there is never a partially updated view.
//
// The Map is a plain value with no internal locking. A single writer at a
// time is assumed. Readers holding a ChangeIterator or a Region snapshot
// are unaffected by later mutations because mutation replaces the derived
// views wholesale.
package addrmap
