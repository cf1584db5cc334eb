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
	"fmt"
	"io"
	"strings"
)

// plainTerminal reads lines from any io.Reader and writes unstyled output.
// used when input is piped rather than typed.
type plainTerminal struct {
	input  *bufio.Scanner
	output io.Writer

	// whether to print the prompt before reading. useful to disable when
	// input is a script
	echoPrompt bool
}

func newPlainTerminal(input io.Reader, output io.Writer, echoPrompt bool) *plainTerminal {
	return &plainTerminal{
		input:      bufio.NewScanner(input),
		output:     output,
		echoPrompt: echoPrompt,
	}
}

// Initialise implements the terminal interface.
func (pt *plainTerminal) Initialise() error {
	return nil
}

// CleanUp implements the terminal interface.
func (pt *plainTerminal) CleanUp() {
}

// ReadLine implements the terminal interface.
func (pt *plainTerminal) ReadLine(prompt string) (string, error) {
	if pt.echoPrompt {
		fmt.Fprint(pt.output, prompt)
	}

	if !pt.input.Scan() {
		if err := pt.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(pt.input.Text()), nil
}

// Print implements the terminal interface.
func (pt *plainTerminal) Print(sty style, s string, a ...interface{}) {
	if sty == styleError {
		fmt.Fprint(pt.output, "* ")
	}
	fmt.Fprintf(pt.output, s, a...)
	fmt.Fprint(pt.output, "\n")
}

// IsInteractive implements the terminal interface.
func (pt *plainTerminal) IsInteractive() bool {
	return false
}
