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

// Package logger is the central logging facility. Log entries are tagged
// with the package or sub-system that raised them and are kept in a bounded
// list. Entries can be echoed to an io.Writer as they arrive with SetEcho()
// or inspected after the fact with Write() and Tail().
//
// There is only one central log for the entire application.
package logger

import (
	"io"
)

var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	central.logf(tag, detail, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.clear()
}

// Write contents of the central logger to io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho directs future log entries to io.Writer as they arrive. A nil
// writer stops echoing. If writeRecent is true the current contents of the
// log are written out first.
func SetEcho(output io.Writer, writeRecent bool) {
	central.setEcho(output, writeRecent)
}
