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

// style is used to hint how a line of output should be presented. the
// plain terminal ignores it except for marking error lines with "* ".
type style int

const (
	styleFeedback style = iota
	styleResult
	styleError
	styleHelp
)

// terminal defines the operations required by the shell's command loop.
// two implementations: colorTerminal for interactive use and
// plainTerminal for piped input.
type terminal interface {
	Initialise() error
	CleanUp()

	// ReadLine returns the next line of user input. returns io.EOF when
	// there is no more input to be had
	ReadLine(prompt string) (string, error)

	// Print a line of output in the specified style
	Print(sty style, s string, a ...interface{})

	IsInteractive() bool
}
