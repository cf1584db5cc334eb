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

// Package database is a flat-file store of serialised entries, used by the
// regression package to keep its baselines between runs. Entries are lines
// of comma separated fields, keyed by a small integer. The file format is
// deliberately primitive; it is diffable and mergeable by hand.
package database

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/peteri/disasm65/curated"
)

// arbitrary maximum number of entries.
const maxEntries = 1000

const fieldSep = ","
const entrySep = "\n"

const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

// Session represents an open database.
type Session struct {
	dbfile *os.File

	entries map[int]Entry

	// sorted list of keys. used for displaying and saving entries in a
	// stable order
	keys []int

	entryTypes map[string]Deserialiser
}

// StartSession opens the database file, creating it if necessary. The init
// argument registers the entry types the caller expects to find; it is
// called before the file is read.
//
// The returned session must be concluded with EndSession().
func StartSession(path string, init func(*Session) error) (*Session, error) {
	var err error

	db := &Session{}
	db.entryTypes = make(map[string]Deserialiser)

	db.dbfile, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, curated.Errorf("database: %v", err)
	}

	if init != nil {
		if err = init(db); err != nil {
			db.dbfile.Close()
			return nil, err
		}
	}

	if err = db.readDBFile(); err != nil {
		db.dbfile.Close()
		return nil, err
	}

	return db, nil
}

// EndSession closes the database, writing back the entries if
// commitChanges is true.
func (db *Session) EndSession(commitChanges bool) error {
	if db.dbfile == nil {
		return curated.Errorf("database: no session")
	}

	if commitChanges {
		if err := db.dbfile.Truncate(0); err != nil {
			return curated.Errorf("database: %v", err)
		}
		if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
			return curated.Errorf("database: %v", err)
		}

		for _, key := range db.keys {
			ent := db.entries[key]

			ser, err := ent.Serialise()
			if err != nil {
				return err
			}

			s := strings.Builder{}
			s.WriteString(fmt.Sprintf("%03d%s%s", key, fieldSep, ent.EntryID()))
			for _, f := range ser {
				s.WriteString(fieldSep)
				s.WriteString(f)
			}
			s.WriteString(entrySep)

			if _, err := db.dbfile.WriteString(s.String()); err != nil {
				return curated.Errorf("database: %v", err)
			}
		}
	}

	err := db.dbfile.Close()
	db.dbfile = nil
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

func (db *Session) readDBFile() error {
	db.entries = make(map[int]Entry)
	db.keys = db.keys[:0]

	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf("database: %v", err)
	}

	buffer, err := io.ReadAll(db.dbfile)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	for i, line := range strings.Split(string(buffer), entrySep) {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		fields := strings.SplitN(line, fieldSep, numLeaderFields+1)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: malformed line %d", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: invalid key [%s] at line %d", fields[leaderFieldKey], i+1)
		}
		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key [%d] at line %d", key, i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type [%s] at line %d", fields[leaderFieldID], i+1)
		}

		var ser SerialisedEntry
		if len(fields) > numLeaderFields {
			ser = strings.Split(fields[numLeaderFields], fieldSep)
		}

		ent, err := des(ser)
		if err != nil {
			return err
		}

		db.entries[key] = ent
		db.keys = append(db.keys, key)
	}

	sort.Ints(db.keys)

	return nil
}

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// List the entries in key order.
func (db *Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.keys {
		if _, err := io.WriteString(output, fmt.Sprintf("%03d %s\n", key, db.entries[key])); err != nil {
			return err
		}
	}

	_, err := io.WriteString(output, fmt.Sprintf("Total: %d\n", db.NumEntries()))
	return err
}

// ForEach calls the supplied function for every entry in key order,
// stopping at the first error.
func (db *Session) ForEach(f func(key int, ent Entry) error) error {
	for _, key := range db.keys {
		if err := f(key, db.entries[key]); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the entry with the specified key.
func (db *Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf("database: key not available (%d)", key)
	}
	return ent, nil
}

// Add an entry to the database under the next spare key.
func (db *Session) Add(ent Entry) error {
	var key int

	// find spare key
	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}
	if key == maxEntries {
		return curated.Errorf("database: maximum entries exceeded (max %d)", maxEntries)
	}

	db.entries[key] = ent
	db.keys = append(db.keys, key)
	sort.Ints(db.keys)

	return nil
}

// Delete the entry with the specified key.
func (db *Session) Delete(key int) error {
	if _, ok := db.entries[key]; !ok {
		return curated.Errorf("database: key not available (%d)", key)
	}

	delete(db.entries, key)
	for i, k := range db.keys {
		if k == key {
			db.keys = append(db.keys[:i], db.keys[i+1:]...)
			break
		}
	}

	return nil
}
