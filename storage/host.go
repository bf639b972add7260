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
	"os"
	"path/filepath"

	"github.com/marquee-emu/marquee/curated"
	"github.com/marquee-emu/marquee/resources"
)

// HostFilesystem is the default Filesystem implementation. Files live
// under the Marquee configuration directory, grouped by class.
type HostFilesystem struct{}

type hostFile struct {
	*os.File
}

// Size implements the File interface.
func (f hostFile) Size() (int64, error) {
	fi, err := f.Stat()
	if err != nil {
		return 0, curated.Errorf("storage: %v", err)
	}
	return fi.Size(), nil
}

func classDir(class Class) string {
	switch class {
	case ClassImage:
		return "images"
	case ClassImageDiff:
		return "diff"
	case ClassNVRAM:
		return "nvram"
	}
	return "misc"
}

// Open implements the Filesystem interface.
func (HostFilesystem) Open(owner string, filename string, class Class, write bool) (File, error) {
	var p string
	var err error

	if owner != "" {
		p, err = resources.Path(filepath.Join(classDir(class), owner), filename)
	} else {
		p, err = resources.Path(classDir(class), filename)
	}
	if err != nil {
		return nil, curated.Errorf("storage: %v", err)
	}

	var f *os.File
	if write {
		f, err = os.OpenFile(p, os.O_RDWR|os.O_CREATE, 0644)
	} else {
		f, err = os.Open(p)
	}
	if err != nil {
		return nil, curated.Errorf("storage: %v", err)
	}

	return hostFile{File: f}, nil
}
