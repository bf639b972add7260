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

package video_test

import (
	"testing"

	"github.com/marquee-emu/marquee/machine"
	"github.com/marquee-emu/marquee/palette"
	"github.com/marquee-emu/marquee/test"
	"github.com/marquee-emu/marquee/video"
)

// spanHooks records every span the incremental renderer is asked to paint.
type spanHooks struct {
	spans []machine.Rect
}

func (h *spanHooks) VideoStart(_ *machine.Machine) error {
	return nil
}

func (h *spanHooks) VideoStop(_ *machine.Machine) {
}

func (h *spanHooks) VideoUpdate(_ *machine.Machine, _ *machine.Bitmap, clip machine.Rect) {
	h.spans = append(h.spans, clip)
}

func (h *spanHooks) VideoEOF(_ *machine.Machine) {
}

type framePresent struct {
	skip      bool
	published []video.Frame
}

func (p *framePresent) CreateDisplay(_ video.Params) error {
	return nil
}

func (p *framePresent) DestroyDisplay() {
}

func (p *framePresent) SkipThisFrame() bool {
	return p.skip
}

func (p *framePresent) Publish(fr video.Frame) {
	p.published = append(p.published, fr)
}

func testMachine(t *testing.T) *machine.Machine {
	t.Helper()

	pal, err := palette.New(4)
	test.ExpectSuccess(t, err)

	scr, err := machine.NewBitmap(320, 240, 16)
	test.ExpectSuccess(t, err)

	pri, err := machine.NewBitmap(320, 240, 8)
	test.ExpectSuccess(t, err)

	return &machine.Machine{
		Palette:  pal,
		Screen:   scr,
		Priority: pri,
	}
}

func TestExactOnceCoverage(t *testing.T) {
	m := testMachine(t)
	hooks := &spanHooks{}
	present := &framePresent{}

	v := video.NewVideo(m, hooks, present, nil, nil)
	v.SetVisibleArea(0, 319, 0, 239)
	v.ResetPartialUpdates()

	// a non-decreasing sequence of partial updates followed by the end of
	// frame paint
	v.ForcePartialUpdate(50)
	v.ForcePartialUpdate(120)
	v.DrawScreen()

	test.Equate(t, len(hooks.spans), 3)
	test.Equate(t, hooks.spans[0], machine.Rect{MinX: 0, MaxX: 319, MinY: 0, MaxY: 50})
	test.Equate(t, hooks.spans[1], machine.Rect{MinX: 0, MaxX: 319, MinY: 51, MaxY: 120})
	test.Equate(t, hooks.spans[2], machine.Rect{MinX: 0, MaxX: 319, MinY: 121, MaxY: 239})

	// contiguous spans covering every visible scanline exactly once
	for i := 1; i < len(hooks.spans); i++ {
		test.Equate(t, hooks.spans[i].MinY, hooks.spans[i-1].MaxY+1)
	}
}

func TestDecreasingScanlineIgnored(t *testing.T) {
	m := testMachine(t)
	hooks := &spanHooks{}

	v := video.NewVideo(m, hooks, &framePresent{}, nil, nil)
	v.SetVisibleArea(0, 319, 0, 239)
	v.ResetPartialUpdates()

	v.ForcePartialUpdate(40)
	test.Equate(t, v.Cursor(), 41)

	// behind the cursor. ignored, not an error
	v.ForcePartialUpdate(10)
	test.Equate(t, v.Cursor(), 41)
	test.Equate(t, len(hooks.spans), 1)
}

func TestSkipFrameIsNoop(t *testing.T) {
	m := testMachine(t)
	hooks := &spanHooks{}
	present := &framePresent{skip: true}

	v := video.NewVideo(m, hooks, present, nil, nil)
	v.SetVisibleArea(0, 319, 0, 239)
	v.ResetPartialUpdates()

	v.ForcePartialUpdate(100)
	test.Equate(t, len(hooks.spans), 0)
	test.Equate(t, v.Cursor(), 0)
}

func TestVisibleAreaChangeDetection(t *testing.T) {
	m := testMachine(t)

	timings := 0
	v := video.NewVideo(m, nil, &framePresent{}, nil, func(_ machine.Rect) {
		timings++
	})

	v.SetVisibleArea(0, 319, 0, 239)
	test.Equate(t, timings, 1)

	// the identical area is a no-op: no timing recomputation
	v.SetVisibleArea(0, 319, 0, 239)
	test.Equate(t, timings, 1)

	// the logical and device-relative copies move in lockstep
	test.Equate(t, m.Visible, m.AbsoluteVisible)
}

func TestSingleFullErasePerFrame(t *testing.T) {
	m := testMachine(t)

	v := video.NewVideo(m, nil, &framePresent{}, nil, nil)
	v.SetVisibleArea(0, 319, 0, 239)
	v.ResetPartialUpdates()

	v.ScheduleFullRefresh()
	v.ForcePartialUpdate(10)

	// the erase has happened. scribble below the cursor and check that
	// later updates in the same frame do not erase again
	m.Screen.SetPixel(5, 50, 3)
	v.ForcePartialUpdate(100)
	v.DrawScreen()
	test.Equate(t, m.Screen.Pixel(5, 50), palette.Pen(3))
}

func TestPublishClearsChangeBits(t *testing.T) {
	m := testMachine(t)
	present := &framePresent{}

	v := video.NewVideo(m, nil, present, nil, nil)
	v.SetVisibleArea(0, 319, 0, 239)
	v.ResetPartialUpdates()

	v.SetIndicator(1, true)
	v.UpdateVideoAndAudio()

	test.Equate(t, len(present.published), 1)
	fr := present.published[0]
	test.ExpectSuccess(t, fr.Changed&video.VisibleAreaChanged == video.VisibleAreaChanged)
	test.ExpectSuccess(t, fr.Changed&video.IndicatorsChanged == video.IndicatorsChanged)
	test.Equate(t, fr.Indicators, uint8(0x02))

	// nothing changed since the last publish
	v.UpdateVideoAndAudio()
	fr = present.published[1]
	test.ExpectSuccess(t, fr.Changed&video.VisibleAreaChanged == 0)
	test.ExpectSuccess(t, fr.Changed&video.IndicatorsChanged == 0)
}

func TestPriorityPlaneClearedAtFrameEnd(t *testing.T) {
	m := testMachine(t)

	v := video.NewVideo(m, nil, &framePresent{}, nil, nil)
	v.SetVisibleArea(0, 319, 0, 239)
	v.ResetPartialUpdates()

	m.Priority.SetPixel(10, 10, 1)
	v.MarkPriorityDirty()
	v.DrawScreen()
	test.Equate(t, m.Priority.Pixel(10, 10), palette.Pen(0))

	// an untouched priority plane is left alone
	m.Priority.SetPixel(10, 10, 1)
	v.DrawScreen()
	test.Equate(t, m.Priority.Pixel(10, 10), palette.Pen(1))
}
