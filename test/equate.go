// This file is part of Marquee.
//
// Marquee is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Marquee is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Marquee.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"reflect"
	"testing"
)

// Equate is used to test equality between one value and another. Generally,
// both values must be of the same type but if value is an integer type then
// expectedValue can be an untyped int literal for convenience. ie.
//
//	var s int64
//	s = someFunction()
//	test.Equate(t, s, 10)
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch v := value.(type) {
	case int64:
		if ev, ok := expectedValue.(int); ok {
			if v != int64(ev) {
				t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, ev)
			}
			return
		}

	case uint32:
		if ev, ok := expectedValue.(int); ok {
			if v != uint32(ev) {
				t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, ev)
			}
			return
		}
	}

	if !reflect.DeepEqual(value, expectedValue) {
		t.Errorf("equation of type %T failed (%v - wanted %v)", value, value, expectedValue)
	}
}
