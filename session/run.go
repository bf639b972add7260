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
	"github.com/marquee-emu/marquee/machine"
)

// SetPause pauses or resumes a running session. Pausing mutes host audio
// and dims the display; resuming restores both. The display is fully
// repainted on the next frame either way.
func (s *Session) SetPause(paused bool) error {
	if s.state != Running && s.state != Paused {
		return curated.Errorf("session: cannot pause in this state")
	}
	if paused == (s.state == Paused) {
		return nil
	}

	s.host.Pause(paused)
	s.host.EnableSound(!paused)

	if paused {
		s.mach.Palette.SetBrightness(s.opts.PauseBrightness)
		s.state = Paused
	} else {
		s.mach.Palette.SetBrightness(1.0)
		s.state = Running
	}

	s.vid.ScheduleFullRefresh()
	return nil
}

// Stop asks the running engine to halt at the end of the current frame.
// The request is observed by the engine as FrameEnded returning true;
// teardown then proceeds inside Run.
func (s *Session) Stop() {
	s.stopRequested = true
}

// SetIndicator turns an on-screen indicator on or off.
func (s *Session) SetIndicator(num int, on bool) {
	if s.vid != nil {
		s.vid.SetIndicator(num, on)
	}
}

// ForcePartialUpdate implements the Sync interface.
func (s *Session) ForcePartialUpdate(scanline int) {
	s.vid.ForcePartialUpdate(scanline)
}

// FrameEnded implements the Sync interface. The frame buffer is completed,
// the frame published and the partial update cursor reset for the next
// frame.
func (s *Session) FrameEnded() bool {
	s.vid.DrawScreen()
	s.vid.UpdateVideoAndAudio()

	if hooks, ok := s.mach.Desc.Hardware.(machine.VideoHooks); ok {
		hooks.VideoEOF(s.mach)
	}

	s.vid.ResetPartialUpdates()

	return s.stopRequested
}

// SetAudio implements the Sync interface. Samples are forwarded to every
// attached mixer; a failing mixer is logged and detached.
func (s *Session) SetAudio(samples []int16) error {
	for i := 0; i < len(s.mixers); i++ {
		if err := s.mixers[i].SetAudio(samples); err != nil {
			logger.Log("session", err.Error())
			s.mixers = append(s.mixers[:i], s.mixers[i+1:]...)
			i--
		}
	}
	return nil
}
