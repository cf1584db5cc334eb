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

package test

import (
	"fmt"
	"testing"
)

// the optional tags arguments to the Expect*() and Demand*() functions are
// prepended to any test failure message. useful for identifying the failing
// iteration of a test loop.
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := ""
	for _, tag := range tags {
		s = fmt.Sprintf("%s[%v] ", s, tag)
	}
	return s
}

// success values for supported types: bool == true, error == nil. any other
// type is a test fatality.
func success(t *testing.T, v any, tags ...any) (bool, bool) {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v, true
	case error:
		return v == nil, true
	case nil:
		// a nil value arrives when a nil error is passed through the any
		// parameter
		return true, true
	default:
		t.Fatalf("%sunsupported type (%T) for success/failure testing", id(tags...), v)
	}

	return false, false
}

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T, tags ...any) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), value, value, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test that one value is not equal to another.
func ExpectInequality[T comparable](t *testing.T, value T, expectedValue T, tags ...any) bool {
	t.Helper()
	if value == expectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), value, value, expectedValue)
		return false
	}
	return true
}

// ExpectSuccess is used to test for a value which indicates a 'successful'
// value for the type.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	ok, handled := success(t, v, tags...)
	if handled && !ok {
		t.Errorf("%sa success value is expected for type %T", id(tags...), v)
	}
	return ok
}

// ExpectFailure is used to test for a value which indicates an 'unsuccessful'
// value for the type.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	ok, handled := success(t, v, tags...)
	if handled && ok {
		t.Errorf("%sa failure value is expected for type %T", id(tags...), v)
	}
	return !ok
}

// DemandEquality is used to test equality between one value and another. If
// the test fails it is a test fatality.
//
// This is particularly useful if the values being tested are used in further
// tests and so must be correct.
func DemandEquality[T comparable](t *testing.T, value T, expectedValue T, tags ...any) {
	t.Helper()
	if value != expectedValue {
		t.Fatalf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), value, value, expectedValue)
	}
}

// DemandSuccess is used to test for a value which indicates a 'successful'
// value for the type. If the test fails it is a test fatality.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	ok, handled := success(t, v, tags...)
	if handled && !ok {
		t.Fatalf("%sa success value is demanded for type %T", id(tags...), v)
	}
}

// ExpectPanic is used to test that the deferring function panics. Place at
// the top of a function or closure with the defer keyword.
func ExpectPanic(t *testing.T, tags ...any) {
	t.Helper()
	if recover() == nil {
		t.Errorf("%sa panic is expected", id(tags...))
	}
}
