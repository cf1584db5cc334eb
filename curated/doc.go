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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like
// Errorf() in the fmt package, taking a formatting pattern and placeholder
// values, but the pattern doubles as the error's identity. The Is() function
// checks whether an error was created with a given pattern:
//
//	e := curated.Errorf("project: cannot load (%s)", filename)
//
//	if curated.Is(e, "project: cannot load (%s)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain, rather than only at the head:
//
//	f := curated.Errorf("fatal: %v", e)
//
//	if curated.Has(f, "project: cannot load (%s)") {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether an error is curated at all. We can
// think of curated errors as 'expected' errors; an uncurated error arriving
// at a package boundary is something the program didn't plan for.
//
// The Error() implementation normalises the message chain so that adjacent
// duplicate parts are collapsed. This means packages can wrap freely at
// their boundaries without worrying about stuttering messages.
package curated
