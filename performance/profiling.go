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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/marquee-emu/marquee/curated"
)

// Profile identifies which profiles to create during a profiled run.
type Profile int

// List of Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileAll
)

// RunProfiled calls the run function, optionally wrapped in a CPU profile
// and followed by a heap profile.
func RunProfiled(profile Profile, cpuFile string, memFile string, run func() error) error {
	if profile == ProfileCPU || profile == ProfileAll {
		f, err := os.Create(cpuFile)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	if err := run(); err != nil {
		return err
	}

	if profile == ProfileMem || profile == ProfileAll {
		f, err := os.Create(memFile)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return nil
}
