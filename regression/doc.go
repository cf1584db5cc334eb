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

// Package regression keeps baseline fingerprints of address maps rebuilt
// from project files. A baseline is added with RegressAdd(); a later
// RegressRun() reloads every recorded project, rebuilds its map and
// compares fingerprints. A mismatch means map reconstruction has changed
// behaviour for that project since the baseline was recorded.
//
// The fingerprint covers the change stream, which is itself derived from
// the region list and the containment tree, so a stable fingerprint is
// good evidence that all three views of the map are stable.
//
// Baselines are stored with the database package, one entry per project
// file.
package regression
