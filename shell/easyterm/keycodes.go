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

package easyterm

// list of ASCII codes for non-alphanumeric characters.
const (
	KeyInterrupt      = 3
	KeyEndOfFile      = 4
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyBackspace      = 127
)

// list of ASCII codes for characters that can follow KeyEsc.
const (
	EscCursor = 91
)

// list of ASCII codes for characters that can follow EscCursor.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)
