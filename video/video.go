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
	"github.com/marquee-emu/marquee/performance"
)

// Video keeps the frame buffer synchronized with CPU progress at scanline
// resolution and publishes one change description per frame.
type Video struct {
	mach    *machine.Machine
	hooks   machine.VideoHooks
	present Presentation
	metrics *performance.Metrics

	// called whenever the visible area actually changes. the execution
	// engine recomputes its scanline timing from the new geometry
	timing func(machine.Rect)

	// the partial update cursor. scanlines below this value have been
	// painted this frame
	lastPartialScanline int

	// the next partial update must be preceded by exactly one full erase
	fullRefreshPending bool

	visibleAreaChanged bool

	indicators     uint8
	lastIndicators uint8

	priorityDirty bool
}

// NewVideo is the preferred method of initialisation for the Video type.
// The hooks and timing arguments may be nil.
func NewVideo(mach *machine.Machine, hooks machine.VideoHooks, present Presentation,
	metrics *performance.Metrics, timing func(machine.Rect)) *Video {
	if metrics == nil {
		metrics = &performance.Metrics{}
	}
	return &Video{
		mach:    mach,
		hooks:   hooks,
		present: present,
		metrics: metrics,
		timing:  timing,
	}
}

// SetVisibleArea adjusts the visible portion of the frame buffer. A call
// that does not change the area is a no-op: it neither marks the area
// changed nor retriggers scanline timing recomputation.
func (v *Video) SetVisibleArea(minX, maxX, minY, maxY int) {
	r := machine.Rect{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
	if v.mach.Visible == r {
		return
	}

	// dirty the area for the next display update
	v.visibleAreaChanged = true

	// the logical copy and the device-relative copy move in lockstep
	v.mach.Visible = r
	v.mach.AbsoluteVisible = r

	if v.timing != nil {
		v.timing(r)
	}
}

// ScheduleFullRefresh forces a full erase before the next partial update.
func (v *Video) ScheduleFullRefresh() {
	v.fullRefreshPending = true
}

// ResetPartialUpdates resets the partial update cursor for a new frame.
func (v *Video) ResetPartialUpdates() {
	v.lastPartialScanline = 0
	v.metrics.NewFrame()
}

// Cursor returns the partial update cursor: the first scanline not yet
// painted this frame.
func (v *Video) Cursor() int {
	return v.lastPartialScanline
}

// ForcePartialUpdate paints from the cursor up to and including the
// specified scanline. A scanline behind the cursor is ignored, never an
// error, so that within one frame a non-decreasing sequence of calls paints
// every visible scanline exactly once.
func (v *Video) ForcePartialUpdate(scanline int) {
	// if the presentation layer is skipping this frame, bail
	if v.present != nil && v.present.SkipThisFrame() {
		return
	}

	// skip if less than the lowest so far
	if scanline < v.lastPartialScanline {
		return
	}

	// the pending full erase happens at most once per frame, before any
	// painting
	if v.fullRefreshPending && v.lastPartialScanline == 0 {
		v.mach.Screen.Fill(v.mach.Palette.Black(), nil)
		v.fullRefreshPending = false
	}

	// clip [cursor, scanline] to the visible area
	clip := v.mach.Visible
	if v.lastPartialScanline > clip.MinY {
		clip.MinY = v.lastPartialScanline
	}
	if scanline < clip.MaxY {
		clip.MaxY = scanline
	}

	// render if the span is non-empty
	if clip.MinY <= clip.MaxY {
		if v.hooks != nil {
			v.hooks.VideoUpdate(v.mach, v.mach.Screen, clip)
		}
		v.metrics.RecordPartialUpdate()
	}

	// remember where we left off
	v.lastPartialScanline = scanline + 1
}

// DrawScreen finalizes the frame by painting through the bottom of the
// visible area, and clears the priority plane if it was touched.
func (v *Video) DrawScreen() {
	v.ForcePartialUpdate(v.mach.Visible.MaxY)

	if v.priorityDirty && v.mach.Priority != nil {
		v.mach.Priority.Fill(0, nil)
		v.priorityDirty = false
	}
}

// MarkPriorityDirty notes that the auxiliary priority plane was written to
// this frame.
func (v *Video) MarkPriorityDirty() {
	v.priorityDirty = true
}

// SetIndicator sets the state of a single indicator lamp.
func (v *Video) SetIndicator(num int, on bool) {
	if on {
		v.indicators |= 1 << uint(num)
	} else {
		v.indicators &^= 1 << uint(num)
	}
}

// UpdateVideoAndAudio packages the bitmap reference, visible area and
// indicator state into one change description and publishes it to the
// presentation layer. Called exactly once per frame; all change bits are
// cleared afterwards.
func (v *Video) UpdateVideoAndAudio() {
	skipped := v.present != nil && v.present.SkipThisFrame()

	frame := Frame{
		Bitmap:     v.mach.Screen,
		Visible:    v.mach.AbsoluteVisible,
		Brightness: v.mach.Palette.Brightness(),
	}

	if !skipped {
		frame.Changed |= BitmapChanged
	}

	if v.visibleAreaChanged {
		frame.Changed |= VisibleAreaChanged
	}

	if v.indicators != v.lastIndicators {
		v.lastIndicators = v.indicators
		frame.Changed |= IndicatorsChanged
	}
	frame.Indicators = v.lastIndicators

	if v.present != nil {
		v.present.Publish(frame)
	}

	// reset dirty flags
	v.visibleAreaChanged = false
}

// Metrics returns the performance counters for the session.
func (v *Video) Metrics() *performance.Metrics {
	return v.metrics
}
