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

// Package version records the version number and vcs revision of the
// build.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Disasm65"

// number is set at link time (-ldflags -X) on release builds.
var number string

// revision contains the vcs revision. If the source has been modified but
// not committed the revision string is suffixed with "+dirty".
var revision string

// version is "unreleased" for a manual build and "local" when there is no
// vcs information at all (eg. "go run .").
var version string

// Version returns the version string, the revision string and whether this
// is a numbered "release" version.
func Version() (string, string, bool) {
	return version, revision, version == number && number != ""
}

func init() {
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if number == "" {
		if vcsRevision == "" {
			version = "local"
		} else {
			version = "unreleased"
		}
	} else {
		version = number
	}
}
