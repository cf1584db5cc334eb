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

// Package project reads and writes the on-disk form of an address map: the
// file span and the flat list of region entries. Nothing derived is ever
// stored; the map is reconstructed by replaying the entries, so a project
// file that loads at all is known to satisfy every map invariant.
//
// Project files are JSON. Comments (// and /* */ forms) are tolerated on
// the way in, so files annotated by hand survive a round trip through an
// editor. The sentinel length and address values appear in the file
// verbatim; they are fixed constants and do not change between versions.
package project

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/peteri/disasm65/addrmap"
	"github.com/peteri/disasm65/curated"
	"github.com/peteri/disasm65/logger"
	"github.com/tidwall/jsonc"
)

// the patterns used to create errors in this package. exported so that
// callers can use them with curated.Is() and curated.Has().
const (
	NotValid = "project: not a valid project: %v"
	NotMap   = "project: %v"
)

type regionEntry struct {
	Offset   int  `json:"offset"`
	Length   int  `json:"length"`
	Address  int  `json:"address"`
	Relative bool `json:"relative,omitempty"`
}

type document struct {
	Span    int           `json:"span"`
	Regions []regionEntry `json:"regions"`
}

// Read an address map from the io.Reader. Entries are replayed through the
// map's own insertion path; an entry the map rejects is a hard load error,
// never a silent drop.
func Read(input io.Reader) (*addrmap.Map, error) {
	d, err := io.ReadAll(input)
	if err != nil {
		return nil, curated.Errorf(NotValid, err)
	}

	var doc document
	if err := json.Unmarshal(jsonc.ToJSON(d), &doc); err != nil {
		return nil, curated.Errorf(NotValid, err)
	}

	entries := make([]addrmap.Region, 0, len(doc.Regions))
	for _, e := range doc.Regions {
		entries = append(entries, addrmap.Region{
			Offset:     e.Offset,
			Length:     e.Length,
			Address:    e.Address,
			IsRelative: e.Relative,
		})
	}

	m, err := addrmap.FromEntries(doc.Span, entries)
	if err != nil {
		return nil, curated.Errorf(NotMap, err)
	}

	return m, nil
}

// Write the address map to the io.Writer as a project document.
func Write(output io.Writer, m *addrmap.Map) error {
	entries := m.Entries()

	doc := document{
		Span:    m.SpanLength(),
		Regions: make([]regionEntry, 0, len(entries)),
	}
	for _, r := range entries {
		doc.Regions = append(doc.Regions, regionEntry{
			Offset:   r.Offset,
			Length:   r.Length,
			Address:  r.Address,
			Relative: r.IsRelative,
		})
	}

	d, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return curated.Errorf("project: %v", err)
	}
	d = append(d, '\n')

	if _, err := output.Write(d); err != nil {
		return curated.Errorf("project: %v", err)
	}

	return nil
}

// Load an address map from the named project file.
func Load(filename string) (*addrmap.Map, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("project: cannot load (%v)", err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, curated.Errorf("project: %s: %v", filename, err)
	}

	logger.Logf("project", "loaded %s (%s)", filename, m)
	return m, nil
}

// Save the address map to the named project file.
func Save(filename string, m *addrmap.Map) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("project: cannot save (%v)", err)
	}

	err = Write(f, m)
	if err != nil {
		f.Close()
		return curated.Errorf("project: %s: %v", filename, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf("project: cannot save (%v)", err)
	}

	logger.Log("project", fmt.Sprintf("saved %s (%s)", filename, m))
	return nil
}
