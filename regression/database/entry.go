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

package database

import "github.com/peteri/disasm65/curated"

// SerialisedEntry is the Entry data represented as an array of strings.
type SerialisedEntry []string

// Entry represents the generic entry in the database.
type Entry interface {
	// ID identifies the entry type in the database file
	EntryID() string

	// String returns information about the entry in a human readable
	// format. the machine readable representation is returned by
	// Serialise()
	String() string

	// the Entry data as an instance of SerialisedEntry
	Serialise() (SerialisedEntry, error)
}

// Deserialiser creates an Entry of a specific type from serialised fields.
type Deserialiser func(fields SerialisedEntry) (Entry, error)

// AddEntryType tells the database what entry types to expect in the
// database file and how to deserialise them.
func (db *Session) AddEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return curated.Errorf("database: entry type [%s] already registered", id)
	}
	db.entryTypes[id] = des
	return nil
}
