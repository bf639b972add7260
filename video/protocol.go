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

package video

import (
	"github.com/marquee-emu/marquee/machine"
)

// Changed is the bit-set describing what parts of the display changed in a
// published frame.
type Changed uint8

// List of Changed values.
const (
	BitmapChanged Changed = 1 << iota
	VisibleAreaChanged
	IndicatorsChanged
)

// Params describes the display the presentation layer should create.
type Params struct {
	Width       int
	Height      int
	AspectX     int
	AspectY     int
	Depth       int
	Colors      int
	FPS         float64
	Attributes  machine.Attributes
	Orientation machine.Orientation
}

// Frame is the change description published to the presentation layer once
// per frame.
//
// The Bitmap reference is borrowed: the presentation layer may read it for
// the duration of the Publish call and must not keep it afterwards.
type Frame struct {
	Bitmap     *machine.Bitmap
	Visible    machine.Rect
	Indicators uint8
	Brightness float64
	Changed    Changed
}

// Presentation implementations display, or otherwise work with, published
// frames. Implementations should not assume more than one Publish call per
// frame.
//
// SkipThisFrame may be called from the orchestrator's context at any point
// during a frame and must be cheap.
type Presentation interface {
	CreateDisplay(Params) error
	DestroyDisplay()
	SkipThisFrame() bool
	Publish(Frame)
}

// AudioMixer implementations work with the mixed PCM stream produced by the
// sound components. Mixers receive samples as they are produced and are
// told when mixing has ended for good.
type AudioMixer interface {
	SetAudio(samples []int16) error
	EndMixing() error
}
