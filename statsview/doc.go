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

// Package statsview is an optional package. The server is only built when
// the statsview build constraint is present; other builds get a stub whose
// Launch() reports that the server is unavailable.
//
// With the constraint it provides a HTTP server running locally offering runtime statistics.
// Underlying functionality provided by "github.com/go-echarts/statsview".
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12650/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12650/debug/pprof/
//
// Useful when profiling map reconstruction over very large region lists.
package statsview
