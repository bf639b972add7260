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

package performance

import (
	"time"
)

// number of frames between updates of the frames-per-second figure.
const framesPerFPSUpdate = 12

// Metrics collates performance information for the running session. All
// methods are called from the orchestrator's sequential context; read-only
// access from elsewhere sees values no staler than one frame.
type Metrics struct {
	// number of calls to the incremental renderer in the current frame
	PartialUpdatesThisFrame int

	// total frames since the session entered the running phase
	Frames int

	fps       float64
	fpsMarker time.Time
}

// NewFrame resets the per-frame counters and recomputes the
// frames-per-second figure at intervals.
func (m *Metrics) NewFrame() {
	m.Frames++
	m.PartialUpdatesThisFrame = 0

	if m.fpsMarker.IsZero() {
		m.fpsMarker = time.Now()
		return
	}

	if m.Frames%framesPerFPSUpdate == 0 {
		now := time.Now()
		elapsed := now.Sub(m.fpsMarker).Seconds()
		if elapsed > 0 {
			m.fps = framesPerFPSUpdate / elapsed
		}
		m.fpsMarker = now
	}
}

// RecordPartialUpdate counts one invocation of the incremental renderer.
func (m *Metrics) RecordPartialUpdate() {
	m.PartialUpdatesThisFrame++
}

// FPS returns the most recently computed frames-per-second figure.
func (m *Metrics) FPS() float64 {
	return m.fps
}
