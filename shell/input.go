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

package shell

import (
	"io"
	"strings"
	"unicode"

	"github.com/peteri/disasm65/curated"
	"github.com/peteri/disasm65/shell/easyterm"
)

// UserInterrupt is the error pattern returned by ReadLine when the user
// presses ctrl-c.
const UserInterrupt = "shell: user interrupt"

// ReadLine implements the terminal interface. the terminal is in raw mode
// for the duration of the call, allowing command history and simple line
// editing.
func (ct *colorTerminal) ReadLine(prompt string) (string, error) {
	ct.RawMode()
	defer ct.CanonicalMode()

	var input []rune
	cursor := 0

	// position in the command history. equal to len(history) when not
	// browsing. the current line is stashed in pending so that browsing
	// away and back again doesn't lose it
	history := len(ct.history)
	pending := ""

	for {
		ct.Terminal.Print("\r%s%s%s%s%s", ansiClearLine, ansiBold, prompt, ansiOff, string(input))
		if d := len(input) - cursor; d > 0 {
			ct.Terminal.Print("\033[%dD", d)
		}

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.Terminal.Print("\n\r")
			return "", curated.Errorf(UserInterrupt)

		case easyterm.KeyEndOfFile:
			ct.Terminal.Print("\n\r")
			return "", io.EOF

		case easyterm.KeyCarriageReturn:
			ct.Terminal.Print("\n\r")

			s := strings.TrimSpace(string(input))
			if s != "" && (len(ct.history) == 0 || ct.history[len(ct.history)-1] != s) {
				ct.history = append(ct.history, s)
			}
			return s, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.history) {
						pending = string(input)
					}
					history--
					input = []rune(ct.history[history])
					cursor = len(input)
				}

			case easyterm.CursorDown:
				if history < len(ct.history) {
					history++
					if history == len(ct.history) {
						input = []rune(pending)
					} else {
						input = []rune(ct.history[history])
					}
					cursor = len(input)
				}

			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			}

		case easyterm.KeyBackspace:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.history)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input[:cursor], append([]rune{r}, input[cursor:]...)...)
				cursor++
				history = len(ct.history)
			}
		}
	}
}
