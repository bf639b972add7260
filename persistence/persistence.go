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

package persistence

import (
	"github.com/marquee-emu/marquee/curated"
	"github.com/marquee-emu/marquee/logger"
	"github.com/marquee-emu/marquee/machine"
	"github.com/marquee-emu/marquee/prefs"
	"github.com/marquee-emu/marquee/storage"
)

// nvramFilename is the fixed name of the battery-backed memory image. The
// owner component of the storage path keeps targets apart.
const nvramFilename = "nvram"

// Gateway moves persistent machine state between the emulation and the
// host. It covers battery-backed memory, delegated to the hardware's
// NVRAMHandler capability, and session settings stored through the prefs
// system.
type Gateway struct {
	desc *machine.Description
	fs   storage.Filesystem
	dsk  *prefs.Disk
}

// NewGateway is the preferred method of initialisation for the Gateway
// type. The settingsPath argument names the prefs file for this target,
// typically obtained through the resources package.
func NewGateway(desc *machine.Description, fs storage.Filesystem, settingsPath string) (*Gateway, error) {
	dsk, err := prefs.NewDisk(settingsPath)
	if err != nil {
		return nil, curated.Errorf("persistence: %v", err)
	}

	return &Gateway{
		desc: desc,
		fs:   fs,
		dsk:  dsk,
	}, nil
}

// settings values registered with the gateway satisfy the same contract
// as the prefs system's own value types.
type settingsValue interface {
	String() string
	Set(value prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// Register a settings value with the gateway. Registered values take part
// in LoadSettings and SaveSettings.
func (g *Gateway) Register(key string, p settingsValue) error {
	return g.dsk.Add(key, p)
}

// LoadSettings restores registered settings values from the host. Returns
// true if a settings file was found. A missing file is not an error; the
// registered values keep their defaults.
func (g *Gateway) LoadSettings() bool {
	err := g.dsk.Load()
	if err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			logger.Log("persistence", err.Error())
		}
		return false
	}
	return true
}

// SaveSettings writes registered settings values to the host.
func (g *Gateway) SaveSettings() error {
	if err := g.dsk.Save(); err != nil {
		return curated.Errorf("persistence: %v", err)
	}
	return nil
}

// LoadNVRAM restores battery-backed memory through the hardware's
// NVRAMHandler capability. Hardware without the capability is a no-op.
//
// A missing image is normal on first run: the handler is invoked with a
// nil reader and is expected to initialise defaults.
func (g *Gateway) LoadNVRAM(m *machine.Machine) error {
	h, ok := g.desc.Hardware.(machine.NVRAMHandler)
	if !ok {
		return nil
	}

	f, err := g.fs.Open(g.desc.Name, nvramFilename, storage.ClassNVRAM, false)
	if err != nil {
		return h.LoadNVRAM(m, nil)
	}
	defer f.Close()

	if err := h.LoadNVRAM(m, f); err != nil {
		return curated.Errorf("persistence: nvram: %v", err)
	}
	return nil
}

// FlushNVRAM writes battery-backed memory through the hardware's
// NVRAMHandler capability. Hardware without the capability is a no-op.
func (g *Gateway) FlushNVRAM(m *machine.Machine) error {
	h, ok := g.desc.Hardware.(machine.NVRAMHandler)
	if !ok {
		return nil
	}

	f, err := g.fs.Open(g.desc.Name, nvramFilename, storage.ClassNVRAM, true)
	if err != nil {
		return curated.Errorf("persistence: nvram: %v", err)
	}
	defer f.Close()

	if err := h.SaveNVRAM(m, f); err != nil {
		return curated.Errorf("persistence: nvram: %v", err)
	}
	return nil
}
