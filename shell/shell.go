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

// Package shell is the interactive front-end to the address map. Commands
// mirror the map's public operations: structural edits (ADD, EDIT, DEL),
// queries (ADDR, OFFSET, UNBROKEN), views of the region list (LIST) and of
// the derived state (TREE, EVENTS, GEN) and project file handling (LOAD,
// SAVE).
//
// When standard input is a terminal the shell runs with command history
// and line editing; when input is piped each line is consumed as a
// command, making the shell scriptable.
package shell

import (
	"io"
	"os"

	"github.com/peteri/disasm65/addrmap"
	"github.com/peteri/disasm65/curated"
	"github.com/peteri/disasm65/project"
)

type shell struct {
	term     terminal
	m        *addrmap.Map
	filename string
}

// the error pattern used to end the command loop from inside a command.
const quitCommand = "shell: quit"

// Start the shell, loading the project file if a filename is given. An
// ANSI terminal is used when standard input is a terminal; piped input
// runs through the plain terminal.
func Start(filename string) error {
	var term terminal

	if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
		term = &colorTerminal{}
	} else {
		term = newPlainTerminal(os.Stdin, os.Stdout, false)
	}

	return run(term, filename)
}

func run(term terminal, filename string) error {
	if err := term.Initialise(); err != nil {
		return curated.Errorf("shell: %v", err)
	}
	defer term.CleanUp()

	sh := &shell{term: term}

	if filename != "" {
		m, err := project.Load(filename)
		if err != nil {
			term.Print(styleError, "%v", err)
		} else {
			sh.m = m
			sh.filename = filename
		}
	}

	for {
		line, err := term.ReadLine(sh.prompt())
		if err != nil {
			if err == io.EOF || curated.Is(err, UserInterrupt) {
				return nil
			}
			return curated.Errorf("shell: %v", err)
		}

		if line == "" {
			continue
		}

		if err := sh.parseCommand(line); err != nil {
			if curated.Is(err, quitCommand) {
				return nil
			}
			term.Print(styleError, "%v", err)
		}
	}
}

func (sh *shell) prompt() string {
	if sh.m == nil {
		return "(no map) > "
	}
	return sh.m.String() + " > "
}
