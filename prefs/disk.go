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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/marquee-emu/marquee/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "marquee.prefs"

// NoPrefsFile is returned by Load() when the preferences file does not
// exist. Callers will often want to treat this as a non-error.
const NoPrefsFile = "prefs: no file: %v"

// identifying line at the top of every prefs file.
const fingerprint = "*marquee*"

// field separator between key and value.
const separator = " :: "

// Disk represents preference values that are loaded from and saved to the
// host disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k].String()))
	}
	return s.String()
}

// Add a preference value to the list of values to load/save to disk. The key
// must be unique to this Disk instance.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, separator) {
		return curated.Errorf("prefs: illegal key: %v", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key: %v", key)
	}
	dsk.entries[key] = p
	return nil
}

// Load preference values from disk. Values in the file that have not been
// added to this Disk instance are left untouched; registered values absent
// from the file keep their current setting.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != fingerprint {
		return curated.Errorf("prefs: not a valid prefs file: %v", dsk.path)
	}

	for scanner.Scan() {
		s := strings.SplitN(scanner.Text(), separator, 2)
		if len(s) != 2 {
			continue
		}
		if p, ok := dsk.entries[s[0]]; ok {
			if err := p.Set(s[1]); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Save current preference values to disk. Unregistered keys already in the
// file are preserved.
func (dsk *Disk) Save() error {
	// load any keys in the existing file that we don't know about so they
	// survive the rewrite
	foreign := make(map[string]string)
	if f, err := os.Open(dsk.path); err == nil {
		scanner := bufio.NewScanner(f)
		scanner.Scan() // fingerprint
		for scanner.Scan() {
			s := strings.SplitN(scanner.Text(), separator, 2)
			if len(s) == 2 {
				if _, ok := dsk.entries[s[0]]; !ok {
					foreign[s[0]] = s[1]
				}
			}
		}
		f.Close()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, fingerprint); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	keys := make([]string, 0, len(dsk.entries)+len(foreign))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	for k := range foreign {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		var v string
		if p, ok := dsk.entries[k]; ok {
			v = p.String()
		} else {
			v = foreign[k]
		}
		if _, err := fmt.Fprintf(f, "%s%s%s\n", k, separator, v); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}

	return nil
}

// Reset all registered preference values to their zero state.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}
