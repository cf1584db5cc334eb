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

package regression

import (
	"fmt"
	"io"

	"github.com/peteri/disasm65/curated"
	"github.com/peteri/disasm65/logger"
	"github.com/peteri/disasm65/project"
	"github.com/peteri/disasm65/regression/database"
)

const mapEntryID = "map"

// mapEntry records the baseline fingerprint for one project file.
type mapEntry struct {
	filename    string
	fingerprint string
}

const (
	fieldFilename int = iota
	fieldFingerprint
	numFields
)

func deserialiseMapEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numFields {
		return nil, curated.Errorf("regression: wrong number of fields in map entry")
	}
	return &mapEntry{
		filename:    fields[fieldFilename],
		fingerprint: fields[fieldFingerprint],
	}, nil
}

// EntryID implements the database.Entry interface.
func (ent mapEntry) EntryID() string {
	return mapEntryID
}

// Serialise implements the database.Entry interface.
func (ent mapEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.filename, ent.fingerprint}, nil
}

func (ent mapEntry) String() string {
	return fmt.Sprintf("[%s] %s %s", ent.EntryID(), ent.filename, ent.fingerprint[:16])
}

func initDBSession(db *database.Session) error {
	return db.AddEntryType(mapEntryID, deserialiseMapEntry)
}

// RegressAdd records a baseline for the specified project file.
func RegressAdd(output io.Writer, dbPath string, filename string) error {
	m, err := project.Load(filename)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(dbPath, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(true)

	ent := &mapEntry{filename: filename, fingerprint: Fingerprint(m)}
	if err := db.Add(ent); err != nil {
		return curated.Errorf("regression: %v", err)
	}

	fmt.Fprintf(output, "added: %s\n", ent)
	return nil
}

// RegressRun reloads every recorded project, rebuilds its map and compares
// fingerprints against the baseline. Returns an error if any project fails
// to load or any fingerprint differs.
func RegressRun(output io.Writer, dbPath string) error {
	db, err := database.StartSession(dbPath, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	numSucceed := 0
	numFail := 0

	err = db.ForEach(func(key int, e database.Entry) error {
		ent, ok := e.(*mapEntry)
		if !ok {
			return curated.Errorf("regression: unexpected entry type [%s]", e.EntryID())
		}

		m, err := project.Load(ent.filename)
		if err != nil {
			numFail++
			fmt.Fprintf(output, "failure: %s (%v)\n", ent, err)
			return nil
		}

		if fp := Fingerprint(m); fp != ent.fingerprint {
			numFail++
			fmt.Fprintf(output, "failure: %s (fingerprint now %s)\n", ent, fp[:16])
			logger.Logf("regression", "%s: fingerprint changed", ent.filename)
			return nil
		}

		numSucceed++
		fmt.Fprintf(output, "succeed: %s\n", ent)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail\n", numSucceed, numFail)

	if numFail > 0 {
		return curated.Errorf("regression: %d tests failed", numFail)
	}
	return nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbPath string) error {
	db, err := database.StartSession(dbPath, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes an entry from the database.
func RegressDelete(output io.Writer, dbPath string, key int) error {
	db, err := database.StartSession(dbPath, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(true)

	ent, err := db.Get(key)
	if err != nil {
		return err
	}

	if err := db.Delete(key); err != nil {
		return err
	}

	fmt.Fprintf(output, "deleted: %s\n", ent)
	return nil
}
