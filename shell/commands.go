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
	"sort"
	"strconv"
	"strings"

	"github.com/peteri/disasm65/addrmap"
	"github.com/peteri/disasm65/curated"
	"github.com/peteri/disasm65/gen"
	"github.com/peteri/disasm65/logger"
	"github.com/peteri/disasm65/project"
)

var usage = map[string]string{
	"NEW":      "NEW span -- discard the current map and start a new one",
	"LOAD":     "LOAD file -- load a project file",
	"SAVE":     "SAVE [file] -- save to the loaded or specified project file",
	"ADD":      "ADD offset length address [REL] -- add a region (length FLOAT, address NONE allowed)",
	"EDIT":     "EDIT offset length address [REL] -- replace a region's address and relative flag",
	"DEL":      "DEL offset length -- remove a region",
	"LIST":     "LIST -- show all regions in stored order",
	"TREE":     "TREE -- show the containment tree",
	"EVENTS":   "EVENTS -- show the change stream",
	"GEN":      "GEN [RESUME] -- write origin directives for a linear walk",
	"ADDR":     "ADDR offset -- address of the byte at offset",
	"OFFSET":   "OFFSET src address -- offset of address as seen from src",
	"UNBROKEN": "UNBROKEN offset length -- is the range free of address changes",
	"CHECK":    "CHECK -- validate all three views of the map",
	"LOG":      "LOG -- show recent log entries",
	"HELP":     "HELP -- this",
	"QUIT":     "QUIT -- leave the shell",
}

// numbers are decimal by default. a $ or 0x prefix selects hexadecimal,
// matching how offsets and addresses are displayed.
func parseNum(s string) (int, error) {
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		base = 16
		s = s[1:]
	case strings.HasPrefix(strings.ToLower(s), "0x"):
		base = 16
		s = s[2:]
	}

	v, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, curated.Errorf("shell: not a number (%s)", s)
	}
	return int(v), nil
}

func parseLength(s string) (int, error) {
	if strings.EqualFold(s, "FLOAT") {
		return addrmap.FloatingLen, nil
	}
	return parseNum(s)
}

func parseAddress(s string) (int, error) {
	if strings.EqualFold(s, "NONE") {
		return addrmap.NonAddr, nil
	}
	return parseNum(s)
}

func (sh *shell) requireMap() error {
	if sh.m == nil {
		return curated.Errorf("shell: no map loaded (use NEW or LOAD)")
	}
	return nil
}

// region arguments shared by the ADD and EDIT commands: offset, length,
// address and the optional REL flag.
func regionArgs(args []string) (offset int, length int, address int, rel bool, err error) {
	if len(args) < 3 || len(args) > 4 {
		return 0, 0, 0, false, curated.Errorf("shell: wrong number of arguments")
	}

	if offset, err = parseNum(args[0]); err != nil {
		return
	}
	if length, err = parseLength(args[1]); err != nil {
		return
	}
	if address, err = parseAddress(args[2]); err != nil {
		return
	}

	if len(args) == 4 {
		if !strings.EqualFold(args[3], "REL") {
			return 0, 0, 0, false, curated.Errorf("shell: unrecognised flag (%s)", args[3])
		}
		rel = true
	}

	return
}

func (sh *shell) parseCommand(line string) error {
	fields := strings.Fields(line)
	command := strings.ToUpper(fields[0])
	args := fields[1:]

	if _, ok := usage[command]; !ok {
		return curated.Errorf("shell: unrecognised command (%s)", command)
	}

	switch command {
	case "NEW":
		if len(args) != 1 {
			return curated.Errorf("shell: usage: %s", usage[command])
		}
		span, err := parseNum(args[0])
		if err != nil {
			return err
		}
		m, err := addrmap.New(span)
		if err != nil {
			return err
		}
		sh.m = m
		sh.filename = ""
		sh.term.Print(styleFeedback, "new map: %s", sh.m)

	case "LOAD":
		if len(args) != 1 {
			return curated.Errorf("shell: usage: %s", usage[command])
		}
		m, err := project.Load(args[0])
		if err != nil {
			return err
		}
		sh.m = m
		sh.filename = args[0]
		sh.term.Print(styleFeedback, "loaded %s: %s", sh.filename, sh.m)

	case "SAVE":
		if err := sh.requireMap(); err != nil {
			return err
		}
		filename := sh.filename
		if len(args) == 1 {
			filename = args[0]
		}
		if filename == "" {
			return curated.Errorf("shell: no filename (use SAVE file)")
		}
		if err := project.Save(filename, sh.m); err != nil {
			return err
		}
		sh.filename = filename
		sh.term.Print(styleFeedback, "saved %s", filename)

	case "ADD":
		if err := sh.requireMap(); err != nil {
			return err
		}
		offset, length, address, rel, err := regionArgs(args)
		if err != nil {
			return err
		}
		if res := sh.m.AddRegion(offset, length, address, rel); res != addrmap.AddOkay {
			return curated.Errorf("shell: %s", res)
		}
		sh.term.Print(styleFeedback, "added: %s", sh.m)

	case "EDIT":
		if err := sh.requireMap(); err != nil {
			return err
		}
		offset, length, address, rel, err := regionArgs(args)
		if err != nil {
			return err
		}
		if !sh.m.EditRegion(offset, length, address, rel) {
			return curated.Errorf("shell: no region at +%06x with that length", offset)
		}
		sh.term.Print(styleFeedback, "edited: %s", sh.m)

	case "DEL":
		if err := sh.requireMap(); err != nil {
			return err
		}
		if len(args) != 2 {
			return curated.Errorf("shell: usage: %s", usage[command])
		}
		offset, err := parseNum(args[0])
		if err != nil {
			return err
		}
		length, err := parseLength(args[1])
		if err != nil {
			return err
		}
		if !sh.m.RemoveRegion(offset, length) {
			return curated.Errorf("shell: no region at +%06x with that length", offset)
		}
		sh.term.Print(styleFeedback, "removed: %s", sh.m)

	case "LIST":
		if err := sh.requireMap(); err != nil {
			return err
		}
		entries := sh.m.Entries()
		if len(entries) == 0 {
			sh.term.Print(styleFeedback, "map is empty")
		}
		for _, r := range entries {
			sh.term.Print(styleResult, "%s", r)
		}

	case "TREE":
		if err := sh.requireMap(); err != nil {
			return err
		}
		sh.m.WriteTree(&termWriter{term: sh.term, sty: styleResult})

	case "EVENTS":
		if err := sh.requireMap(); err != nil {
			return err
		}
		it := sh.m.NewChangeIterator()
		for e, ok := it.Start(); ok; e, ok = it.Next() {
			sh.term.Print(styleResult, "%s", e)
		}

	case "GEN":
		if err := sh.requireMap(); err != nil {
			return err
		}
		attr := gen.WriteAttr{OffsetComments: true}
		if len(args) == 1 && strings.EqualFold(args[0], "RESUME") {
			attr.Resume = true
		}
		return gen.Write(&termWriter{term: sh.term, sty: styleResult}, sh.m, attr)

	case "ADDR":
		if err := sh.requireMap(); err != nil {
			return err
		}
		if len(args) != 1 {
			return curated.Errorf("shell: usage: %s", usage[command])
		}
		offset, err := parseNum(args[0])
		if err != nil {
			return err
		}
		if address := sh.m.OffsetToAddress(offset); address == addrmap.NonAddr {
			sh.term.Print(styleResult, "+%06x -> (no address)", offset)
		} else {
			sh.term.Print(styleResult, "+%06x -> $%06x", offset, address)
		}

	case "OFFSET":
		if err := sh.requireMap(); err != nil {
			return err
		}
		if len(args) != 2 {
			return curated.Errorf("shell: usage: %s", usage[command])
		}
		src, err := parseNum(args[0])
		if err != nil {
			return err
		}
		address, err := parseNum(args[1])
		if err != nil {
			return err
		}
		if offset := sh.m.AddressToOffset(src, address); offset == addrmap.NotFound {
			sh.term.Print(styleResult, "$%06x not visible from +%06x", address, src)
		} else {
			sh.term.Print(styleResult, "$%06x -> +%06x (from +%06x)", address, offset, src)
		}

	case "UNBROKEN":
		if err := sh.requireMap(); err != nil {
			return err
		}
		if len(args) != 2 {
			return curated.Errorf("shell: usage: %s", usage[command])
		}
		offset, err := parseNum(args[0])
		if err != nil {
			return err
		}
		length, err := parseNum(args[1])
		if err != nil {
			return err
		}
		sh.term.Print(styleResult, "%v", sh.m.IsRangeUnbroken(offset, length))

	case "CHECK":
		if err := sh.requireMap(); err != nil {
			return err
		}
		if err := sh.m.Validate(); err != nil {
			return err
		}
		sh.term.Print(styleFeedback, "map is consistent: %s", sh.m)

	case "LOG":
		logger.Tail(&termWriter{term: sh.term, sty: styleFeedback}, 10)

	case "HELP":
		commands := make([]string, 0, len(usage))
		for c := range usage {
			commands = append(commands, c)
		}
		sort.Strings(commands)
		for _, c := range commands {
			sh.term.Print(styleHelp, "%s", usage[c])
		}

	case "QUIT":
		return curated.Errorf(quitCommand)
	}

	return nil
}

// termWriter presents a terminal as an io.Writer, printing each line in a
// fixed style. used for output generated by other packages.
type termWriter struct {
	term terminal
	sty  style

	partial string
}

func (tw *termWriter) Write(p []byte) (int, error) {
	s := tw.partial + string(p)
	lines := strings.Split(s, "\n")
	for _, l := range lines[:len(lines)-1] {
		tw.term.Print(tw.sty, "%s", l)
	}
	tw.partial = lines[len(lines)-1]
	return len(p), nil
}
