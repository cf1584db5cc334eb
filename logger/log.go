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

package logger

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// not exposing logger to outside of the package. the package level functions
// log to the central logger.
type logger struct {
	maxEntries int
	entries    []Entry
	echo       io.Writer
}

func newLogger(maxEntries int) *logger {
	return &logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0),
	}
}

func (l *logger) log(tag, detail string) {
	// split multi-line details into separate entries
	if d := strings.Split(detail, "\n"); len(d) > 1 {
		for _, s := range d {
			if s != "" {
				l.log(tag, s)
			}
		}
		return
	}

	var last *Entry
	if len(l.entries) > 0 {
		last = &l.entries[len(l.entries)-1]
	}

	// identical consecutive entries are compressed into a repeat count
	if last != nil && last.tag == tag && last.detail == detail {
		last.repeated++
		last.Timestamp = time.Now()
		return
	}

	e := Entry{Timestamp: time.Now(), tag: tag, detail: detail}
	l.entries = append(l.entries, e)

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

func (l *logger) logf(tag, detail string, args ...interface{}) {
	l.log(tag, fmt.Sprintf(detail, args...))
}

func (l *logger) clear() {
	l.entries = l.entries[:0]
}

func (l *logger) write(output io.Writer) {
	for i := range l.entries {
		io.WriteString(output, l.entries[i].String())
	}
}

func (l *logger) tail(output io.Writer, number int) {
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for i := len(l.entries) - number; i < len(l.entries); i++ {
		io.WriteString(output, l.entries[i].String())
	}
}

func (l *logger) setEcho(output io.Writer, writeRecent bool) {
	l.echo = output
	if writeRecent && output != nil {
		l.write(output)
	}
}
