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

package session_test

import (
	"testing"

	"github.com/marquee-emu/marquee/session"
	"github.com/marquee-emu/marquee/test"
)

func TestTrackerReverseRelease(t *testing.T) {
	var trk session.Tracker

	sc, err := trk.OpenScope()
	test.ExpectSuccess(t, err)

	released := []string{}
	trk.Track("first", func() { released = append(released, "first") })
	trk.Track("second", func() { released = append(released, "second") })
	trk.Track("third", func() { released = append(released, "third") })

	err = trk.CloseScope(sc)
	test.ExpectSuccess(t, err)

	test.Equate(t, len(released), 3)
	test.Equate(t, released[0], "third")
	test.Equate(t, released[1], "second")
	test.Equate(t, released[2], "first")
	test.Equate(t, trk.Depth(), 0)
}

func TestTrackerInnermostAttachment(t *testing.T) {
	var trk session.Tracker

	outer, err := trk.OpenScope()
	test.ExpectSuccess(t, err)
	trk.Track("outer alloc", func() {})

	inner, err := trk.OpenScope()
	test.ExpectSuccess(t, err)

	// tracked after the inner scope opened so released when it closes
	innerReleased := false
	trk.Track("inner alloc", func() { innerReleased = true })

	test.ExpectSuccess(t, trk.CloseScope(inner))
	test.ExpectSuccess(t, innerReleased)

	test.Equate(t, trk.Depth(), 1)
	test.ExpectSuccess(t, trk.CloseScope(outer))
}

func TestTrackerScopeLimit(t *testing.T) {
	var trk session.Tracker

	_, err := trk.OpenScope()
	test.ExpectSuccess(t, err)
	_, err = trk.OpenScope()
	test.ExpectSuccess(t, err)

	_, err = trk.OpenScope()
	test.ExpectFailure(t, err)
}

func TestTrackerOutOfOrderClose(t *testing.T) {
	var trk session.Tracker

	outer, err := trk.OpenScope()
	test.ExpectSuccess(t, err)
	_, err = trk.OpenScope()
	test.ExpectSuccess(t, err)

	// the outer scope cannot close while the inner scope is open
	err = trk.CloseScope(outer)
	test.ExpectFailure(t, err)
	test.Equate(t, trk.Depth(), 2)
}

func TestTrackerNoOpenScope(t *testing.T) {
	var trk session.Tracker

	test.ExpectFailure(t, trk.Track("orphan", func() {}))
	test.ExpectFailure(t, trk.CloseScope(session.Scope(1)))
}
