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

package machine

import (
	"io"

	"github.com/marquee-emu/marquee/gfxdecode"
	"github.com/marquee-emu/marquee/palette"
)

// Attributes is the bitmask of display properties declared by a machine
// description.
type Attributes uint32

// List of Attributes values.
const (
	// the display is a vector monitor. screen geometry is taken from the
	// bitmap dimensions rather than the default visible area
	AttrVector Attributes = 1 << iota

	// pixel values are direct RGB rather than palette indices
	AttrRGBDirect

	// direct RGB hardware that requires six bits per color gun
	AttrNeeds6BitsPerGun

	// the cabinet has two displays
	AttrDualDisplay
)

// Orientation of the emulated display.
type Orientation int

// List of Orientation values.
const (
	Rot0 Orientation = iota
	Rot90
	Rot180
	Rot270
)

// PortTemplate describes one input port to be allocated during machine
// bring-up. Port semantics (keys, dip switches, etc.) are owned by the input
// subsystem and are opaque to this core.
type PortTemplate struct {
	Tag  string
	Bits int
}

// RegionTemplate describes one memory region to be allocated during machine
// bring-up. Regions flagged Dispose are released once video bring-up has
// finished with them.
type RegionTemplate struct {
	Name    string
	Length  int
	Dispose bool
}

// Hardware is the base capability set implemented per hardware target. The
// implementation is selected once, by the Description, and never reassigned
// for the lifetime of a session.
//
// Optional capabilities are expressed as additional interfaces (VideoHooks,
// NVRAMHandler, MemoryMapper) and discovered by type assertion.
type Hardware interface {
	// Init is the hardware init hook, called at the end of machine
	// bring-up once memory and components are in place.
	Init(*Machine) error
}

// VideoHooks is implemented by hardware that participates in the video
// lifecycle and the incremental renderer.
type VideoHooks interface {
	// VideoStart is called after video bring-up and before execution.
	VideoStart(*Machine) error

	// VideoStop is called during teardown if VideoStart succeeded.
	VideoStop(*Machine)

	// VideoUpdate renders scanlines [clip.MinY, clip.MaxY] into the
	// bitmap. It is the hardware's incremental renderer and is only ever
	// called with a span that has not yet been painted this frame.
	VideoUpdate(*Machine, *Bitmap, Rect)

	// VideoEOF is called once per frame after the frame has been
	// published.
	VideoEOF(*Machine)
}

// PaletteIniter is implemented by hardware that programs the palette with
// its own colors during video bring-up. Hardware without this capability
// runs with the palette's default ramp.
type PaletteIniter interface {
	InitPalette(*Machine, *palette.Palette) error
}

// NVRAMHandler is implemented by hardware with battery-backed memory.
type NVRAMHandler interface {
	LoadNVRAM(*Machine, io.Reader) error
	SaveNVRAM(*Machine, io.Writer) error
}

// MemoryMapper is implemented by hardware that builds an address map during
// bring-up.
type MemoryMapper interface {
	InitMemory(*Machine) error
	ShutdownMemory(*Machine)
}

// Description is the immutable template describing one emulated hardware
// target. Descriptions are built once, from static tables, and never
// mutated. A session expands a Description into a Machine.
type Description struct {
	Name string

	// Parent points to the ancestor description this target is a variant
	// of. Media lookup walks this chain.
	Parent *Description

	// media image names owned by this target. an empty list means the
	// target has no loadable media
	Media []string

	// input ports to allocate at bring-up
	InputPorts []PortTemplate

	// memory regions to allocate at bring-up
	Regions []RegionTemplate

	// display geometry
	ScreenWidth     int
	ScreenHeight    int
	DefaultVisible  Rect
	FramesPerSecond float64
	Attributes      Attributes

	// explicit aspect ratio. zero values mean the ratio is deduced from
	// the display attributes
	AspectX int
	AspectY int

	// total number of palette colors
	Colors int

	// gfx decode information, normalised during video bring-up
	GfxDecode []gfxdecode.Entry

	// names of pre-recorded PCM samples used by sample-player sound
	// components. missing samples are logged, not fatal
	SampleNames []string

	// Expand populates the Machine's component registries. It is the only
	// place components may be added or removed.
	Expand func(*Machine) error

	// the capability set for this target
	Hardware Hardware
}

// HasMedia returns true if the description declares any loadable media.
func (d *Description) HasMedia() bool {
	return len(d.Media) > 0
}
