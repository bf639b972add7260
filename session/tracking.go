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

package session

import (
	"github.com/marquee-emu/marquee/curated"
	"github.com/marquee-emu/marquee/logger"
)

// Error patterns returned by the Tracker type.
const (
	ScopeLimit  = "tracker: too many open scopes"
	ScopeOrder  = "tracker: scope %d closed out of order"
	NoOpenScope = "tracker: no open scope"
)

// at most two frames are ever open: one spanning the host's lifetime and
// one spanning the machine's
const maxScopes = 2

// Scope identifies one open tracking frame.
type Scope int

type tracked struct {
	name    string
	release func()
}

// Tracker holds a stack of resource tracking frames. Allocations are
// tracked against the innermost open frame and released, newest first,
// when that frame closes.
type Tracker struct {
	frames [][]tracked
}

// OpenScope pushes a new tracking frame and returns its handle.
func (t *Tracker) OpenScope() (Scope, error) {
	if len(t.frames) >= maxScopes {
		return 0, curated.Errorf(ScopeLimit)
	}
	t.frames = append(t.frames, nil)
	return Scope(len(t.frames)), nil
}

// Track an allocation against the innermost open frame. The release
// function runs when that frame closes.
func (t *Tracker) Track(name string, release func()) error {
	if len(t.frames) == 0 {
		return curated.Errorf(NoOpenScope)
	}
	i := len(t.frames) - 1
	t.frames[i] = append(t.frames[i], tracked{name: name, release: release})
	return nil
}

// CloseScope releases every allocation tracked in the identified frame, in
// reverse order of tracking, and pops the frame. Only the innermost open
// frame can be closed.
func (t *Tracker) CloseScope(sc Scope) error {
	if len(t.frames) == 0 {
		return curated.Errorf(NoOpenScope)
	}
	if int(sc) != len(t.frames) {
		return curated.Errorf(ScopeOrder, sc)
	}

	frame := t.frames[len(t.frames)-1]
	t.frames = t.frames[:len(t.frames)-1]

	for i := len(frame) - 1; i >= 0; i-- {
		frame[i].release()
	}
	if len(frame) > 0 {
		logger.Logf("tracker", "released %d tracked allocation(s)", len(frame))
	}

	return nil
}

// Depth returns the number of open frames.
func (t *Tracker) Depth() int {
	return len(t.frames)
}
