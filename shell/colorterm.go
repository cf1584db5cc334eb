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
	"bufio"
	"os"

	"github.com/peteri/disasm65/shell/easyterm"
)

// colorTerminal implements the terminal interface with a basic ANSI
// terminal. line input runs in raw mode so that command history and cursor
// movement can be supported.
type colorTerminal struct {
	easyterm.Terminal

	reader  *bufio.Reader
	history []string
}

// Initialise implements the terminal interface.
func (ct *colorTerminal) Initialise() error {
	if err := ct.Terminal.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}

	ct.reader = bufio.NewReader(os.Stdin)
	ct.history = make([]string, 0)

	return nil
}

// CleanUp implements the terminal interface.
func (ct *colorTerminal) CleanUp() {
	ct.Terminal.Print("\r")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// Print implements the terminal interface.
func (ct *colorTerminal) Print(sty style, s string, a ...interface{}) {
	ct.Terminal.Print("\r")

	switch sty {
	case styleResult:
		ct.Terminal.Print(ansiPenCyan)
	case styleError:
		ct.Terminal.Print(ansiPenRed)
		ct.Terminal.Print("* ")
	case styleHelp:
		ct.Terminal.Print(ansiPenDim)
		ct.Terminal.Print("  ")
	case styleFeedback:
		ct.Terminal.Print(ansiPenDim)
	}

	ct.Terminal.Print(s, a...)
	ct.Terminal.Print(ansiOff)
	ct.Terminal.Print("\n")
}

// IsInteractive implements the terminal interface.
func (ct *colorTerminal) IsInteractive() bool {
	return true
}
