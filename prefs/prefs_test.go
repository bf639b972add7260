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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/marquee-emu/marquee/curated"
	"github.com/marquee-emu/marquee/prefs"
	"github.com/marquee-emu/marquee/test"
)

func TestValues(t *testing.T) {
	var b prefs.Bool
	var i prefs.Int
	var f prefs.Float

	test.Equate(t, b.Get().(bool), false)
	test.ExpectSuccess(t, b.Set(true))
	test.Equate(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("false"))
	test.Equate(t, b.Get().(bool), false)

	test.ExpectSuccess(t, i.Set("100"))
	test.Equate(t, i.Get().(int), 100)
	test.ExpectFailure(t, i.Set("one hundred"))

	test.ExpectSuccess(t, f.Set(0.75))
	test.Equate(t, f.Get().(float64), 0.75)
}

func TestDiskRoundTrip(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(pth)
	test.ExpectSuccess(t, err)

	var b prefs.Bool
	var i prefs.Int
	test.ExpectSuccess(t, dsk.Add("session.cheat", &b))
	test.ExpectSuccess(t, dsk.Add("session.samplerate", &i))

	// no file yet
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, i.Set(44100))
	test.ExpectSuccess(t, dsk.Save())

	// a fresh disk instance sees the saved values
	dsk2, err := prefs.NewDisk(pth)
	test.ExpectSuccess(t, err)

	var b2 prefs.Bool
	var i2 prefs.Int
	test.ExpectSuccess(t, dsk2.Add("session.cheat", &b2))
	test.ExpectSuccess(t, dsk2.Add("session.samplerate", &i2))
	test.ExpectSuccess(t, dsk2.Load())

	test.Equate(t, b2.Get().(bool), true)
	test.Equate(t, i2.Get().(int), 44100)
}
