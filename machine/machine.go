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
	"github.com/marquee-emu/marquee/curated"
	"github.com/marquee-emu/marquee/gfxdecode"
	"github.com/marquee-emu/marquee/logger"
	"github.com/marquee-emu/marquee/palette"
	"github.com/marquee-emu/marquee/samples"
)

// fixed registry capacities. the same bounds as the component tables these
// registries replace.
const (
	MaxCPU   = 8
	MaxSound = 32
)

// ExpandFailed is returned by Expand when the description's expansion
// callback fails.
const ExpandFailed = "machine: expansion of '%s': %v"

// Region is an allocated memory region. The media loader fills Data;
// gfx decode and the memory mapper read it.
type Region struct {
	Name    string
	Data    []byte
	Dispose bool
}

// BitLength returns the length of the region in bits.
func (r *Region) BitLength() int {
	return len(r.Data) * 8
}

// Ports is the allocated set of input ports. Port semantics are owned by
// the input subsystem; this core only tracks the allocation.
type Ports struct {
	tags []string
}

// AllocatePorts builds the input port allocation from the description's
// templates.
func AllocatePorts(templates []PortTemplate) (*Ports, error) {
	p := &Ports{tags: make([]string, 0, len(templates))}
	for _, t := range templates {
		if t.Tag == "" || t.Bits <= 0 {
			return nil, curated.Errorf("ports: bad template '%s'", t.Tag)
		}
		p.tags = append(p.tags, t.Tag)
	}
	return p, nil
}

// Machine is the mutable working instance produced by expanding a
// Description. It is created at session start, mutated only during
// subsystem bring-up, and exclusively owned by the session controller.
type Machine struct {
	Desc *Description

	CPU   *Registry
	Sound *Registry

	regions []*Region

	// allocated during bring-up; nil before and after
	InputPorts *Ports

	// resolved configuration
	ColorDepth  int
	SampleRate  int
	Orientation Orientation
	AlphaActive bool

	// the active portion of the frame buffer. the logical copy and the
	// device-relative absolute copy are kept in lockstep
	Visible         Rect
	AbsoluteVisible Rect

	// the frame buffer and the auxiliary priority plane
	Screen   *Bitmap
	Priority *Bitmap

	Palette *palette.Palette

	// decoded gfx elements, built during video bring-up
	Gfx []*gfxdecode.Element

	// pre-recorded PCM samples for sample-player sound components
	Samples []*samples.Sample
}

// Expand builds a Machine from a Description by running the description's
// expansion callback. Memory regions are allocated here; everything else
// waits for the session controller's bring-up phases.
func Expand(desc *Description) (*Machine, error) {
	m := &Machine{
		Desc:  desc,
		CPU:   NewRegistry("cpu", MaxCPU),
		Sound: NewRegistry("sound", MaxSound),
	}

	m.regions = make([]*Region, 0, len(desc.Regions))
	for _, t := range desc.Regions {
		m.regions = append(m.regions, &Region{
			Name:    t.Name,
			Data:    make([]byte, t.Length),
			Dispose: t.Dispose,
		})
	}

	if desc.Expand != nil {
		if err := desc.Expand(m); err != nil {
			return nil, curated.Errorf(ExpandFailed, desc.Name, err)
		}
	}

	return m, nil
}

// Region returns the named memory region, or nil. A disposed region is no
// longer found.
func (m *Machine) Region(name string) *Region {
	for _, r := range m.regions {
		if r != nil && r.Name == name {
			return r
		}
	}
	return nil
}

// DisposeRegions releases every region flagged Dispose. Called once video
// bring-up no longer needs the source data. Contents are scrubbed first so
// stale references fail loudly rather than subtly.
func (m *Machine) DisposeRegions() {
	for i, r := range m.regions {
		if r == nil || !r.Dispose {
			continue
		}
		for j := range r.Data {
			r.Data[j] = 0xde
		}
		m.regions[i] = nil
		logger.Logf("machine", "disposed region '%s'", r.Name)
	}
}

// AddCPU adds a tagged CPU component during description expansion.
func (m *Machine) AddCPU(tag string, cpuType int, clock int) (*Component, error) {
	return m.CPU.Add(Component{Tag: tag, Type: cpuType, Clock: clock})
}

// FindCPU finds a tagged CPU component during description expansion.
func (m *Machine) FindCPU(tag string) *Component {
	return m.CPU.Find(tag)
}

// RemoveCPU removes a tagged CPU component during description expansion.
func (m *Machine) RemoveCPU(tag string) {
	m.CPU.Remove(tag)
}

// AddSound adds a tagged sound component during description expansion.
func (m *Machine) AddSound(tag string, soundType int, sndInterface interface{}) (*Component, error) {
	return m.Sound.Add(Component{Tag: tag, Type: soundType, Interface: sndInterface})
}

// FindSound finds a tagged sound component during description expansion.
func (m *Machine) FindSound(tag string) *Component {
	return m.Sound.Find(tag)
}

// RemoveSound removes a tagged sound component during description expansion.
func (m *Machine) RemoveSound(tag string) {
	m.Sound.Remove(tag)
}
