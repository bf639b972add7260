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
	"github.com/marquee-emu/marquee/machine"
	"github.com/marquee-emu/marquee/storage"
)

// Host is the platform layer a session runs on. Init is the first
// fallible step of a session and Exit the last teardown step; the pair
// always balances.
type Host interface {
	Init() error
	Exit()

	// Pause tells the host that emulation has paused or resumed.
	Pause(paused bool)

	// EnableSound unmutes or mutes host audio output.
	EnableSound(enable bool)
}

// Engine executes the emulated machine. The session controller owns the
// engine's lifecycle; the engine owns the passage of emulated time.
//
// Run drives emulation until the Sync passed to it reports a halt, or
// until an error. During Run the engine is expected to call
// Sync.ForcePartialUpdate as the hardware touches video state and
// Sync.FrameEnded once per frame.
type Engine interface {
	Init(*machine.Machine) error
	Run(Sync) error
	Exit()

	// ComputeScanlineTiming is called whenever the visible area of the
	// display changes.
	ComputeScanlineTiming(visible machine.Rect)
}

// Sync is the interface through which a running engine synchronises with
// the session controller.
type Sync interface {
	// ForcePartialUpdate paints the frame buffer up to and including the
	// specified scanline.
	ForcePartialUpdate(scanline int)

	// FrameEnded is called once per frame, after the last scanline.
	// Returns true if the engine should halt.
	FrameEnded() bool

	// SetAudio forwards mixed PCM samples to the session's audio mixers.
	SetAudio(samples []int16) error
}

// MediaLoader reads a machine's media images into its memory regions.
// Read-only image resolution, including fallback to ancestor hardware
// targets, goes through the storage adapter.
type MediaLoader interface {
	LoadMedia(*machine.Machine, *storage.Adapter) error
}
