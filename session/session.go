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
	"github.com/marquee-emu/marquee/gfxdecode"
	"github.com/marquee-emu/marquee/logger"
	"github.com/marquee-emu/marquee/machine"
	"github.com/marquee-emu/marquee/palette"
	"github.com/marquee-emu/marquee/performance"
	"github.com/marquee-emu/marquee/persistence"
	"github.com/marquee-emu/marquee/resources"
	"github.com/marquee-emu/marquee/samples"
	"github.com/marquee-emu/marquee/statsview"
	"github.com/marquee-emu/marquee/storage"
	"github.com/marquee-emu/marquee/video"
	"github.com/marquee-emu/marquee/wavwriter"
)

// State records how far through its lifecycle a session is.
type State int

// List of State values. A session moves forward through these states only;
// a failed bring-up lands in Failed after unwinding.
const (
	Idle State = iota
	OptionsResolved
	HostReady
	MachineInitialized
	VideoReady
	Running
	Paused
	Stopping
	TornDown
	Failed
)

// Error patterns identifying which bring-up phase failed.
const (
	HostInitFailed     = "session: host initialisation: %v"
	InputAllocFailed   = "session: input allocation: %v"
	ImageLoadFailed    = "session: image load: %v"
	MemoryInitFailed   = "session: memory initialisation: %v"
	HardwareInitFailed = "session: hardware init: %v"
	VideoBringupFailed = "session: video bring-up: %v"
	EngineStartFailed  = "session: engine start: %v"
)

// Sub-causes wrapped inside VideoBringupFailed.
const (
	PaletteFailed = "palette: %v"
	DecodeFailed  = "gfx decode: %v"
	DisplayFailed = "display: %v"
	BitmapFailed  = "bitmap: %v"
	FontFailed    = "font: %v"
)

// Session orchestrates the complete lifecycle of one emulated machine:
// option resolution, host and machine bring-up, video bring-up, the
// execution loop and the symmetric teardown of everything that was brought
// up. One Session runs one machine once.
type Session struct {
	opts    Options
	host    Host
	engine  Engine
	present video.Presentation
	loader  MediaLoader
	fs      storage.Filesystem

	state State
	mach  *machine.Machine
	vid   *video.Video

	tracker Tracker
	storage *storage.Adapter
	gateway *persistence.Gateway
	mixers  []video.AudioMixer
	metrics performance.Metrics

	uiFont *gfxdecode.Element

	// teardown actions accumulated by the bring-up phases, run in reverse
	machineTeardown []func()
	videoTeardown   []func()

	settingsLoaded bool
	cheatUsed      bool
	stopRequested  bool
	uiEnabled      bool

	// only the first failure of a bring-up phase is reported to the log
	bailed bool
}

// NewSession is the preferred method of initialisation for the Session
// type. The fs argument may be nil, in which case the host filesystem is
// used.
func NewSession(opts Options, host Host, engine Engine, present video.Presentation,
	loader MediaLoader, fs storage.Filesystem) *Session {
	if fs == nil {
		fs = storage.HostFilesystem{}
	}
	return &Session{
		opts:    opts,
		host:    host,
		engine:  engine,
		present: present,
		loader:  loader,
		fs:      fs,
		state:   Idle,
	}
}

// State returns the session's lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Machine returns the machine instance owned by this session. Nil before
// the session has run and after teardown has scrubbed it.
func (s *Session) Machine() *machine.Machine {
	return s.mach
}

// Video returns the session's video synchroniser. Nil outside the video
// lifecycle.
func (s *Session) Video() *video.Video {
	return s.vid
}

// Settings returns the persistence gateway so that settings values can be
// registered. The gateway exists from machine bring-up onwards; the
// hardware's Init hook is the natural place to register values. May return
// nil if the gateway could not be created.
func (s *Session) Settings() *persistence.Gateway {
	return s.gateway
}

// UIFont returns the built-in font decoded during video bring-up. Nil
// outside the video lifecycle.
func (s *Session) UIFont() *gfxdecode.Element {
	return s.uiFont
}

// UIEnabled returns true while the session is between its running
// prologue and epilogue: the window in which frontends may draw UI over
// published frames.
func (s *Session) UIEnabled() bool {
	return s.uiEnabled
}

// SettingsLoaded returns true if a settings file was found and loaded
// during bring-up. Frontends use this to decide whether to prompt for
// initial configuration.
func (s *Session) SettingsLoaded() bool {
	return s.settingsLoaded
}

// AddAudioMixer attaches an audio mixer to the session. Mixers receive the
// mixed PCM stream during the run and are closed during teardown.
func (s *Session) AddAudioMixer(m video.AudioMixer) {
	s.mixers = append(s.mixers, m)
}

// HighScoreEnabled returns true if high score support is allowed for this
// session. Recording, playback and any use of the cheat engine all disable
// it.
func (s *Session) HighScoreEnabled() bool {
	return s.opts.Record == nil && s.opts.Playback == nil && !s.cheatUsed
}

// bail notes the failure of a bring-up phase. only the first failure is
// logged; the unwinding phases that follow stay quiet.
func (s *Session) bail(msg string) {
	if s.bailed {
		return
	}
	s.bailed = true
	logger.Log("session", msg)
}

// Run takes the described machine through its complete lifecycle. It
// returns when emulation has halted and everything has been torn down, or
// when a bring-up phase has failed and everything brought up before it has
// been unwound.
func (s *Session) Run(desc *machine.Description) error {
	if s.state != Idle {
		return curated.Errorf("session: not idle")
	}

	m, err := machine.Expand(desc)
	if err != nil {
		s.state = Failed
		return err
	}
	s.mach = m

	s.resolveOptions()
	s.state = OptionsResolved

	// the outer tracking frame spans the host's lifetime
	outer, err := s.tracker.OpenScope()
	if err != nil {
		s.state = Failed
		return err
	}

	if err := s.host.Init(); err != nil {
		s.bail("unable to initialise host")
		s.tracker.CloseScope(outer)
		s.state = Failed
		return curated.Errorf(HostInitFailed, err)
	}
	s.state = HostReady

	if s.opts.WAVOut != "" {
		aw, err := wavwriter.New(s.opts.WAVOut, s.mach.SampleRate)
		if err == nil {
			s.AddAudioMixer(aw)
		} else {
			logger.Log("session", err.Error())
		}
	}

	// the inner tracking frame spans the machine's lifetime
	inner, err := s.tracker.OpenScope()
	if err != nil {
		s.host.Exit()
		s.tracker.CloseScope(outer)
		s.state = Failed
		return err
	}

	fail := func(err error) error {
		s.tracker.CloseScope(inner)
		s.host.Exit()
		s.tracker.CloseScope(outer)
		s.state = Failed
		return err
	}

	if err := s.initMachine(); err != nil {
		return fail(err)
	}
	s.state = MachineInitialized

	if s.opts.Visualise != nil {
		s.mach.Visualise(s.opts.Visualise)
	}

	runErr := s.runMachine()

	// teardown is the same on every path from here: machine, inner frame,
	// host, outer frame
	s.shutdownMachine()
	s.tracker.CloseScope(inner)
	s.host.Exit()
	s.tracker.CloseScope(outer)

	if runErr != nil {
		s.state = Failed
		return runErr
	}

	s.mach = nil
	s.state = TornDown
	return nil
}

// initMachine brings up everything the machine needs before video: input
// ports, storage, media, the execution engine, memory and the hardware
// init hook. On failure everything brought up so far is released, in
// reverse, before returning.
func (s *Session) initMachine() error {
	desc := s.mach.Desc

	var unwind []func()
	fail := func(err error) error {
		for i := len(unwind) - 1; i >= 0; i-- {
			unwind[i]()
		}
		return err
	}

	ports, err := machine.AllocatePorts(desc.InputPorts)
	if err != nil {
		s.bail("unable to initialise machine emulation")
		return curated.Errorf(InputAllocFailed, err)
	}
	s.mach.InputPorts = ports
	unwind = append(unwind, func() { s.mach.InputPorts = nil })

	s.storage = storage.NewAdapter(s.fs, desc)
	unwind = append(unwind, func() {
		s.storage.CloseAll()
		s.storage = nil
	})

	settingsPath := s.opts.SettingsFile
	if settingsPath == "" {
		var perr error
		settingsPath, perr = resources.Path("settings", desc.Name+".prefs")
		if perr != nil {
			logger.Log("session", perr.Error())
		}
	}
	if settingsPath != "" {
		gw, gerr := persistence.NewGateway(desc, s.fs, settingsPath)
		if gerr == nil {
			s.gateway = gw
		} else {
			logger.Log("session", gerr.Error())
		}
	}

	if desc.HasMedia() {
		if err := s.loader.LoadMedia(s.mach, s.storage); err != nil {
			s.bail("unable to initialise machine emulation")
			return fail(curated.Errorf(ImageLoadFailed, err))
		}
	}

	if len(desc.SampleNames) > 0 && s.opts.SamplesDir != "" {
		s.mach.Samples = s.loadSamples()
	}

	if err := s.engine.Init(s.mach); err != nil {
		s.bail("unable to initialise machine emulation")
		return fail(curated.Errorf(EngineStartFailed, err))
	}
	unwind = append(unwind, s.engine.Exit)

	if mm, ok := desc.Hardware.(machine.MemoryMapper); ok {
		if err := mm.InitMemory(s.mach); err != nil {
			s.bail("unable to initialise machine emulation")
			return fail(curated.Errorf(MemoryInitFailed, err))
		}
		unwind = append(unwind, func() { mm.ShutdownMemory(s.mach) })
	}

	if desc.Hardware != nil {
		if err := desc.Hardware.Init(s.mach); err != nil {
			s.bail("unable to initialise machine emulation")
			return fail(curated.Errorf(HardwareInitFailed, err))
		}
	}

	// settings load comes last so that values registered by the hardware
	// init hook take part
	if s.gateway != nil {
		s.settingsLoaded = s.gateway.LoadSettings()
	}

	// on success the unwind list becomes the shutdown list
	s.machineTeardown = unwind
	return nil
}

// shutdownMachine releases everything initMachine brought up, in reverse.
func (s *Session) shutdownMachine() {
	for i := len(s.machineTeardown) - 1; i >= 0; i-- {
		s.machineTeardown[i]()
	}
	s.machineTeardown = nil
}

// videoOpen brings up the video subsystem: palette, gfx decode, the host
// display, the frame buffers and the UI font. On failure everything
// brought up so far is released, in reverse, before returning.
func (s *Session) videoOpen() error {
	desc := s.mach.Desc

	var unwind []func()
	fail := func(pattern string, err error) error {
		s.bail("unable to start video emulation")
		for i := len(unwind) - 1; i >= 0; i-- {
			unwind[i]()
		}
		return curated.Errorf(VideoBringupFailed, curated.Errorf(pattern, err))
	}

	pal, err := palette.New(desc.Colors)
	if err != nil {
		return fail(PaletteFailed, err)
	}
	s.mach.Palette = pal
	unwind = append(unwind, func() { s.mach.Palette = nil })

	if len(desc.GfxDecode) > 0 {
		gfx, err := gfxdecode.Decode(desc.GfxDecode, func(name string) []byte {
			r := s.mach.Region(name)
			if r == nil {
				return nil
			}
			return r.Data
		}, pal.Pens())
		if err != nil {
			return fail(DecodeFailed, err)
		}
		s.mach.Gfx = gfx
		unwind = append(unwind, func() { s.mach.Gfx = nil })
	}

	// the visible portion of the frame buffer. vector displays use the
	// whole bitmap
	vis := desc.DefaultVisible
	if desc.Attributes&machine.AttrVector == machine.AttrVector {
		vis = machine.Rect{MinX: 0, MaxX: desc.ScreenWidth - 1, MinY: 0, MaxY: desc.ScreenHeight - 1}
	}

	aspectX, aspectY := s.aspectRatio()
	params := video.Params{
		Width:       vis.Width(),
		Height:      vis.Height(),
		AspectX:     aspectX,
		AspectY:     aspectY,
		Depth:       s.mach.ColorDepth,
		Colors:      pal.TotalColors(),
		FPS:         desc.FramesPerSecond,
		Attributes:  desc.Attributes,
		Orientation: s.mach.Orientation,
	}

	if err := s.present.CreateDisplay(params); err != nil {
		return fail(DisplayFailed, err)
	}
	unwind = append(unwind, s.present.DestroyDisplay)

	scr, err := machine.NewBitmap(desc.ScreenWidth, desc.ScreenHeight, s.mach.ColorDepth)
	if err != nil {
		return fail(BitmapFailed, err)
	}
	s.mach.Screen = scr
	s.tracker.Track("screen bitmap", func() { s.mach.Screen = nil })

	pri, err := machine.NewBitmap(desc.ScreenWidth, desc.ScreenHeight, 8)
	if err != nil {
		return fail(BitmapFailed, err)
	}
	s.mach.Priority = pri
	s.tracker.Track("priority bitmap", func() { s.mach.Priority = nil })

	var hooks machine.VideoHooks
	if h, ok := desc.Hardware.(machine.VideoHooks); ok {
		hooks = h
	}
	s.vid = video.NewVideo(s.mach, hooks, s.present, &s.metrics, s.engine.ComputeScanlineTiming)
	unwind = append(unwind, func() { s.vid = nil })

	// set the visible area twice. the throwaway first value guarantees
	// that the real one is seen as a change and recalculated everywhere,
	// however many times this session type has run before
	s.vid.SetVisibleArea(0, 1, 0, 1)
	s.vid.SetVisibleArea(vis.MinX, vis.MaxX, vis.MinY, vis.MaxY)

	font, err := buildUIFont(pal)
	if err != nil {
		return fail(FontFailed, err)
	}
	s.uiFont = font
	unwind = append(unwind, func() { s.uiFont = nil })

	if pi, ok := desc.Hardware.(machine.PaletteIniter); ok {
		if err := pi.InitPalette(s.mach, pal); err != nil {
			return fail(PaletteFailed, err)
		}
	}

	s.videoTeardown = unwind
	return nil
}

// vhClose releases everything videoOpen brought up, in reverse.
func (s *Session) vhClose() {
	for i := len(s.videoTeardown) - 1; i >= 0; i-- {
		s.videoTeardown[i]()
	}
	s.videoTeardown = nil
}

// runMachine wraps the core run with the video lifecycle: video bring-up
// and the hardware's video start hook on the way in; the stop hook and
// video teardown on the way out. Teardown runs whatever happened inside.
func (s *Session) runMachine() error {
	desc := s.mach.Desc

	if err := s.videoOpen(); err != nil {
		return err
	}

	hooks, hasHooks := desc.Hardware.(machine.VideoHooks)
	if hasHooks {
		if err := hooks.VideoStart(s.mach); err != nil {
			s.bail("unable to start video emulation")
			s.vhClose()
			return curated.Errorf(VideoBringupFailed, err)
		}
	}
	s.state = VideoReady

	// video bring-up was the last consumer of disposable regions
	s.mach.DisposeRegions()

	runErr := s.runCore()

	for _, m := range s.mixers {
		if err := m.EndMixing(); err != nil {
			logger.Log("session", err.Error())
		}
	}

	if hasHooks {
		hooks.VideoStop(s.mach)
	}
	s.vhClose()

	return runErr
}

// logWriter forwards statsview output to the central log.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	logger.Log("statsview", string(p))
	return len(p), nil
}

// runCore is the prologue, execution loop and epilogue of the session. The
// epilogue always runs, even when the engine returns an error, so that
// battery-backed memory and settings are never lost to a crash further up.
func (s *Session) runCore() error {
	s.uiEnabled = true

	if s.opts.Cheat {
		s.cheatUsed = true
		logger.Log("session", "cheat engine active")
	}

	if s.opts.Statsview && statsview.Available() {
		statsview.Launch(logWriter{})
	}

	if s.gateway != nil {
		if err := s.gateway.LoadNVRAM(s.mach); err != nil {
			logger.Log("session", err.Error())
		}
	}

	s.state = Running

	cpuFile := s.opts.ProfileCPUFilename
	if cpuFile == "" {
		cpuFile = "cpu.profile"
	}
	memFile := s.opts.ProfileMemFilename
	if memFile == "" {
		memFile = "mem.profile"
	}

	runErr := performance.RunProfiled(s.opts.Profile, cpuFile, memFile, func() error {
		return s.engine.Run(s)
	})

	s.state = Stopping

	// the epilogue. not skippable
	if s.gateway != nil {
		if err := s.gateway.FlushNVRAM(s.mach); err != nil {
			logger.Log("session", err.Error())
		}
		if err := s.gateway.SaveSettings(); err != nil {
			logger.Log("session", err.Error())
		}
	}

	if s.cheatUsed {
		logger.Log("session", "cheat engine stopped")
	}

	s.uiEnabled = false

	if runErr != nil {
		s.bail("unable to run machine emulation")
		return curated.Errorf(EngineStartFailed, runErr)
	}
	return nil
}

// loadSamples reads the pre-recorded PCM samples named by the description.
// Missing or unreadable samples are logged, never fatal.
func (s *Session) loadSamples() []*samples.Sample {
	return samples.LoadSet(s.opts.SamplesDir, s.mach.Desc.SampleNames)
}
