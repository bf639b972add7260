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

package storage

import (
	"io"
	"strings"

	"github.com/marquee-emu/marquee/curated"
	"github.com/marquee-emu/marquee/logger"
	"github.com/marquee-emu/marquee/machine"
)

// Class identifies what kind of file the emulation is asking for.
type Class int

// List of Class values.
const (
	// shared read-only media, owned by a hardware target
	ClassImage Class = iota

	// per-session differencing store capturing writes to shared media
	ClassImageDiff

	// battery-backed memory image
	ClassNVRAM
)

// Error patterns returned by the Open functions.
const (
	ImageNotFound = "storage: no image '%s' for '%s' or its ancestors"
	NotOpen       = "storage: file not open"
)

// File is an open disk image or persistent store.
type File interface {
	io.ReadWriteSeeker
	io.Closer

	// Size returns the current length of the file in bytes
	Size() (int64, error)
}

// Filesystem resolves named files on behalf of the emulation core. The
// orchestrator never touches host paths directly; a Filesystem
// implementation (see HostFilesystem) decides where each class of file
// lives.
type Filesystem interface {
	// Open the file identified by (owner, filename, class). With write
	// false the file must already exist; with write true it is created
	// as needed.
	Open(owner string, filename string, class Class, write bool) (File, error)
}

// Adapter exposes disk images to the emulated disk subsystem. Open calls
// are keyed by filename and mode; the adapter resolves them against the
// hardware target's lineage.
type Adapter struct {
	fs   Filesystem
	desc *machine.Description
	open []File
}

// NewAdapter is the preferred method of initialisation for the Adapter
// type.
func NewAdapter(fs Filesystem, desc *machine.Description) *Adapter {
	return &Adapter{
		fs:   fs,
		desc: desc,
	}
}

// Open a disk image. The mode string follows fopen conventions: a mode
// beginning with 'r' and without '+' is a read-only open.
//
// Read-only opens walk the lineage chain, target first then ancestor
// templates, returning the first resolvable image. Variants of a hardware
// target share media this way.
//
// Writable opens always target a separate differencing store, never the
// shared read-only image, so concurrent sessions cannot corrupt shared
// media.
func (a *Adapter) Open(filename string, mode string) (File, error) {
	if strings.HasPrefix(mode, "r") && !strings.Contains(mode, "+") {
		for d := a.desc; d != nil; d = d.Parent {
			f, err := a.fs.Open(d.Name, filename, ClassImage, false)
			if err == nil {
				a.open = append(a.open, f)
				return f, nil
			}
		}
		return nil, curated.Errorf(ImageNotFound, filename, a.desc.Name)
	}

	f, err := a.fs.Open("", filename, ClassImageDiff, true)
	if err != nil {
		return nil, curated.Errorf("storage: %v", err)
	}
	a.open = append(a.open, f)
	return f, nil
}

// Close a file previously returned by Open.
func (a *Adapter) Close(f File) {
	for i := range a.open {
		if a.open[i] == f {
			a.open = append(a.open[:i], a.open[i+1:]...)
			break
		}
	}
	f.Close()
}

// CloseAll closes every file still open through this adapter. Called at
// machine teardown.
func (a *Adapter) CloseAll() {
	for _, f := range a.open {
		f.Close()
	}
	if len(a.open) > 0 {
		logger.Logf("storage", "closed %d image(s)", len(a.open))
	}
	a.open = nil
}

// Read count bytes at offset into buffer. Returns the number of bytes
// actually read.
func (a *Adapter) Read(f File, offset int64, buffer []byte) (int, error) {
	if f == nil {
		return 0, curated.Errorf(NotOpen)
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return 0, curated.Errorf("storage: %v", err)
	}
	n, err := f.Read(buffer)
	if err != nil && err != io.EOF {
		return n, curated.Errorf("storage: %v", err)
	}
	return n, nil
}

// Write buffer at offset. Returns the number of bytes actually written.
func (a *Adapter) Write(f File, offset int64, buffer []byte) (int, error) {
	if f == nil {
		return 0, curated.Errorf(NotOpen)
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return 0, curated.Errorf("storage: %v", err)
	}
	n, err := f.Write(buffer)
	if err != nil {
		return n, curated.Errorf("storage: %v", err)
	}
	return n, nil
}

// Length of the image in bytes.
func (a *Adapter) Length(f File) (int64, error) {
	if f == nil {
		return 0, curated.Errorf(NotOpen)
	}
	return f.Size()
}
