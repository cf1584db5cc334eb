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

// Package test contains helper functions to remove common boilerplate from
// package tests. The Expect*() functions record a test error and continue;
// the Demand*() functions are fatal, for when subsequent tests cannot
// meaningfully run after a failure.
//
// ExpectSuccess() and ExpectFailure() understand what success and failure
// mean for a small set of types: a bool is successful when true and an
// error is successful when nil.
package test
