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
	"io"

	"github.com/marquee-emu/marquee/machine"
	"github.com/marquee-emu/marquee/performance"
)

// Options controls a session. The zero value is usable: every field has a
// sensible default applied during option resolution.
type Options struct {
	// requested color depth. 15 and 32 are honoured when the hardware
	// supports them; zero or an unsupported value means the depth is
	// deduced from the display attributes
	ColorDepth int

	// host audio sample rate. zero means 44100
	SampleRate int

	// additional rotation applied on top of the hardware target's natural
	// orientation
	Orientation machine.Orientation

	// palette brightness while paused. zero means 0.65
	PauseBrightness float64

	// enable the cheat engine. forced off for targets without media
	Cheat bool

	// a session being recorded or played back. opaque to the session
	// controller beyond their nil-ness, which gates high score support
	Record   io.Writer
	Playback io.Reader

	// record mixed audio to a WAV file
	WAVOut string

	// directory holding pre-recorded PCM samples
	SamplesDir string

	// path of the settings file. empty means the default location under
	// the configuration directory
	SettingsFile string

	// launch the statsview server, if the build includes one
	Statsview bool

	// write a graphviz representation of the expanded machine once
	// bring-up has finished
	Visualise io.Writer

	// profile the session
	Profile            performance.Profile
	ProfileCPUFilename string
	ProfileMemFilename string
}

const defaultPauseBrightness = 0.65

// resolve option values against the description, filling the machine's
// resolved configuration fields.
func (s *Session) resolveOptions() {
	desc := s.mach.Desc

	// color depth. an explicit 15 or 32 is honoured if the hardware can
	// drive it; everything else falls through to the deduced depth
	depth := 0
	switch s.opts.ColorDepth {
	case 15:
		if desc.Attributes&machine.AttrRGBDirect == machine.AttrRGBDirect &&
			desc.Attributes&machine.AttrNeeds6BitsPerGun != machine.AttrNeeds6BitsPerGun {
			depth = 15
		}
	case 32:
		if desc.Attributes&machine.AttrRGBDirect == machine.AttrRGBDirect {
			depth = 32
		}
	}
	if depth == 0 {
		if desc.Attributes&machine.AttrRGBDirect == machine.AttrRGBDirect {
			if desc.Attributes&machine.AttrNeeds6BitsPerGun == machine.AttrNeeds6BitsPerGun {
				depth = 32
			} else {
				depth = 15
			}
		} else {
			depth = 16
		}
	}
	s.mach.ColorDepth = depth

	if s.opts.SampleRate <= 0 {
		s.opts.SampleRate = 44100
	}
	s.mach.SampleRate = s.opts.SampleRate

	s.mach.Orientation = s.opts.Orientation

	// direct RGB modes are drawn with alpha blending
	s.mach.AlphaActive = s.mach.ColorDepth == 15 || s.mach.ColorDepth == 32

	if s.opts.PauseBrightness <= 0 {
		s.opts.PauseBrightness = defaultPauseBrightness
	}

	// the cheat engine requires loadable media to work with
	if !desc.HasMedia() {
		s.opts.Cheat = false
	}
}

// aspectRatio returns the display's aspect ratio. An explicit ratio in the
// description always wins; otherwise the display is assumed to be 4:3, or
// two 4:3 monitors stacked for dual-display cabinets.
func (s *Session) aspectRatio() (int, int) {
	desc := s.mach.Desc

	if desc.AspectX > 0 && desc.AspectY > 0 {
		return desc.AspectX, desc.AspectY
	}

	if desc.Attributes&machine.AttrDualDisplay == machine.AttrDualDisplay {
		return 4, 6
	}
	return 4, 3
}
