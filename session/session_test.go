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
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marquee-emu/marquee/curated"
	"github.com/marquee-emu/marquee/logger"
	"github.com/marquee-emu/marquee/machine"
	"github.com/marquee-emu/marquee/session"
	"github.com/marquee-emu/marquee/storage"
	"github.com/marquee-emu/marquee/test"
	"github.com/marquee-emu/marquee/video"
)

// the fakes below share an event list so that tests can assert on the
// relative ordering of lifecycle steps.

type mockHost struct {
	events *[]string
	paused []bool
	sound  []bool
}

func (h *mockHost) Init() error {
	*h.events = append(*h.events, "host init")
	return nil
}

func (h *mockHost) Exit() {
	*h.events = append(*h.events, "host exit")
}

func (h *mockHost) Pause(paused bool) {
	h.paused = append(h.paused, paused)
}

func (h *mockHost) EnableSound(enable bool) {
	h.sound = append(h.sound, enable)
}

type mockEngine struct {
	events  *[]string
	frames  int
	runErr  error
	timing  []machine.Rect
	onFrame func(frame int)
}

func (e *mockEngine) Init(_ *machine.Machine) error {
	*e.events = append(*e.events, "engine init")
	return nil
}

func (e *mockEngine) Run(sync session.Sync) error {
	*e.events = append(*e.events, "engine run")
	for i := 0; i < e.frames; i++ {
		if e.onFrame != nil {
			e.onFrame(i)
		}
		sync.ForcePartialUpdate(100)
		if sync.FrameEnded() {
			break
		}
	}
	return e.runErr
}

func (e *mockEngine) Exit() {
	*e.events = append(*e.events, "engine exit")
}

func (e *mockEngine) ComputeScanlineTiming(visible machine.Rect) {
	e.timing = append(e.timing, visible)
}

type mockPresent struct {
	events    *[]string
	createErr error
	skip      bool
	published []video.Frame
}

func (p *mockPresent) CreateDisplay(_ video.Params) error {
	if p.createErr != nil {
		return p.createErr
	}
	*p.events = append(*p.events, "display created")
	return nil
}

func (p *mockPresent) DestroyDisplay() {
	*p.events = append(*p.events, "display destroyed")
}

func (p *mockPresent) SkipThisFrame() bool {
	return p.skip
}

func (p *mockPresent) Publish(fr video.Frame) {
	p.published = append(p.published, fr)
}

type mockLoader struct {
	events  *[]string
	loadErr error
}

func (l *mockLoader) LoadMedia(_ *machine.Machine, _ *storage.Adapter) error {
	if l.loadErr != nil {
		return l.loadErr
	}
	*l.events = append(*l.events, "media loaded")
	return nil
}

// mockHardware implements the MemoryMapper and VideoHooks capabilities on
// top of the base capability set.
type mockHardware struct {
	events       *[]string
	memInits     int
	memShutdowns int
}

func (hw *mockHardware) Init(_ *machine.Machine) error {
	*hw.events = append(*hw.events, "hardware init")
	return nil
}

func (hw *mockHardware) InitMemory(_ *machine.Machine) error {
	hw.memInits++
	*hw.events = append(*hw.events, "memory init")
	return nil
}

func (hw *mockHardware) ShutdownMemory(_ *machine.Machine) {
	hw.memShutdowns++
	*hw.events = append(*hw.events, "memory shutdown")
}

func (hw *mockHardware) VideoStart(_ *machine.Machine) error {
	*hw.events = append(*hw.events, "video start")
	return nil
}

func (hw *mockHardware) VideoStop(_ *machine.Machine) {
	*hw.events = append(*hw.events, "video stop")
}

func (hw *mockHardware) VideoUpdate(m *machine.Machine, bmp *machine.Bitmap, clip machine.Rect) {
}

func (hw *mockHardware) VideoEOF(_ *machine.Machine) {
}

// nullFilesystem fails every open. sessions under test have no nvram and
// no real media files.
type nullFilesystem struct{}

func (nullFilesystem) Open(_ string, _ string, _ storage.Class, _ bool) (storage.File, error) {
	return nil, fmt.Errorf("null filesystem")
}

func testDescription(hw machine.Hardware) *machine.Description {
	return &machine.Description{
		Name:            "testmachine",
		Media:           []string{"disk.img"},
		InputPorts:      []machine.PortTemplate{{Tag: "p1", Bits: 8}},
		ScreenWidth:     320,
		ScreenHeight:    240,
		DefaultVisible:  machine.Rect{MinX: 0, MaxX: 319, MinY: 0, MaxY: 239},
		FramesPerSecond: 60.0,
		Colors:          16,
		Hardware:        hw,
	}
}

func newTestSession(t *testing.T, events *[]string, host *mockHost, engine *mockEngine,
	present *mockPresent, loader *mockLoader) *session.Session {
	t.Helper()
	opts := session.Options{
		SettingsFile: filepath.Join(t.TempDir(), "test.prefs"),
	}
	return session.NewSession(opts, host, engine, present, loader, nullFilesystem{})
}

func TestLifecycleOrdering(t *testing.T) {
	events := []string{}
	host := &mockHost{events: &events}
	engine := &mockEngine{events: &events, frames: 3}
	present := &mockPresent{events: &events}
	loader := &mockLoader{events: &events}
	hw := &mockHardware{events: &events}

	sess := newTestSession(t, &events, host, engine, present, loader)

	err := sess.Run(testDescription(hw))
	test.ExpectSuccess(t, err)
	test.Equate(t, sess.State(), session.TornDown)

	expected := []string{
		"host init",
		"media loaded",
		"engine init",
		"memory init",
		"hardware init",
		"display created",
		"video start",
		"engine run",
		"video stop",
		"display destroyed",
		"memory shutdown",
		"engine exit",
		"host exit",
	}
	test.Equate(t, events, expected)

	// one publish per frame
	test.Equate(t, len(present.published), 3)

	// the double visible-area set during bring-up recomputes timing twice
	test.Equate(t, len(engine.timing), 2)
	test.Equate(t, engine.timing[1], machine.Rect{MinX: 0, MaxX: 319, MinY: 0, MaxY: 239})
}

func TestImageLoadFailureRollsBack(t *testing.T) {
	logger.Clear()

	events := []string{}
	host := &mockHost{events: &events}
	engine := &mockEngine{events: &events}
	present := &mockPresent{events: &events}
	loader := &mockLoader{events: &events, loadErr: fmt.Errorf("no such image")}
	hw := &mockHardware{events: &events}

	sess := newTestSession(t, &events, host, engine, present, loader)

	err := sess.Run(testDescription(hw))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, session.ImageLoadFailed))
	test.Equate(t, sess.State(), session.Failed)

	// the phases after media load never ran, so their teardowns must not
	// run either
	test.Equate(t, hw.memInits, 0)
	test.Equate(t, hw.memShutdowns, 0)

	// input ports allocated before the failure have been released
	test.ExpectSuccess(t, sess.Machine().InputPorts == nil)

	// the host is brought down even though the machine never came up
	test.Equate(t, events, []string{"host init", "host exit"})

	// exactly one diagnostic line for the whole failure
	bails := 0
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == "session" && strings.HasPrefix(e.Detail, "unable to") {
				bails++
			}
		}
	})
	test.Equate(t, bails, 1)
}

func TestVideoBringupFailureRollsBack(t *testing.T) {
	events := []string{}
	host := &mockHost{events: &events}
	engine := &mockEngine{events: &events}
	present := &mockPresent{events: &events, createErr: fmt.Errorf("no display")}
	loader := &mockLoader{events: &events}
	hw := &mockHardware{events: &events}

	sess := newTestSession(t, &events, host, engine, present, loader)

	err := sess.Run(testDescription(hw))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, session.VideoBringupFailed))
	test.Equate(t, sess.State(), session.Failed)

	expected := []string{
		"host init",
		"media loaded",
		"engine init",
		"memory init",
		"hardware init",
		"memory shutdown",
		"engine exit",
		"host exit",
	}
	test.Equate(t, events, expected)
}

func TestEngineErrorStillRunsEpilogue(t *testing.T) {
	events := []string{}
	host := &mockHost{events: &events}
	engine := &mockEngine{events: &events, frames: 1, runErr: fmt.Errorf("cpu fault")}
	present := &mockPresent{events: &events}
	loader := &mockLoader{events: &events}
	hw := &mockHardware{events: &events}

	sess := newTestSession(t, &events, host, engine, present, loader)

	err := sess.Run(testDescription(hw))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, session.EngineStartFailed))

	// teardown is complete despite the abnormal stop
	test.Equate(t, events[len(events)-1], "host exit")
	found := false
	for _, e := range events {
		if e == "video stop" {
			found = true
		}
	}
	test.ExpectSuccess(t, found)
}

func TestPauseAndResume(t *testing.T) {
	events := []string{}
	host := &mockHost{events: &events}
	present := &mockPresent{events: &events}
	loader := &mockLoader{events: &events}
	hw := &mockHardware{events: &events}

	engine := &mockEngine{events: &events, frames: 2}

	sess := newTestSession(t, &events, host, engine, present, loader)

	engine.onFrame = func(frame int) {
		if frame != 0 {
			return
		}
		test.ExpectSuccess(t, sess.SetPause(true))
		test.Equate(t, sess.State(), session.Paused)
		test.Equate(t, sess.Machine().Palette.Brightness(), 0.65)

		test.ExpectSuccess(t, sess.SetPause(false))
		test.Equate(t, sess.State(), session.Running)
		test.Equate(t, sess.Machine().Palette.Brightness(), 1.0)
	}

	err := sess.Run(testDescription(hw))
	test.ExpectSuccess(t, err)

	test.Equate(t, host.paused, []bool{true, false})
	test.Equate(t, host.sound, []bool{false, true})
}

func TestStopRequest(t *testing.T) {
	events := []string{}
	host := &mockHost{events: &events}
	present := &mockPresent{events: &events}
	loader := &mockLoader{events: &events}
	hw := &mockHardware{events: &events}

	// the engine would run many frames but the stop request cuts it short
	engine := &mockEngine{events: &events, frames: 1000}

	sess := newTestSession(t, &events, host, engine, present, loader)

	engine.onFrame = func(frame int) {
		if frame == 2 {
			sess.Stop()
		}
	}

	err := sess.Run(testDescription(hw))
	test.ExpectSuccess(t, err)
	test.Equate(t, sess.State(), session.TornDown)
	test.Equate(t, len(present.published), 3)
}

func TestHighScoreGating(t *testing.T) {
	events := []string{}
	host := &mockHost{events: &events}
	present := &mockPresent{events: &events}
	loader := &mockLoader{events: &events}
	hw := &mockHardware{events: &events}
	engine := &mockEngine{events: &events, frames: 1}

	opts := session.Options{
		SettingsFile: filepath.Join(t.TempDir(), "test.prefs"),
		Cheat:        true,
	}
	sess := session.NewSession(opts, host, engine, present, loader, nullFilesystem{})

	test.ExpectSuccess(t, sess.HighScoreEnabled())

	err := sess.Run(testDescription(hw))
	test.ExpectSuccess(t, err)

	// the cheat engine was used during the run
	test.ExpectFailure(t, sess.HighScoreEnabled())
}
