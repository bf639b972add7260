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

package machine_test

import (
	"testing"

	"github.com/marquee-emu/marquee/curated"
	"github.com/marquee-emu/marquee/machine"
	"github.com/marquee-emu/marquee/test"
)

func TestRegistryAddFind(t *testing.T) {
	r := machine.NewRegistry("cpu", 4)

	_, err := r.Add(machine.Component{Tag: "main", Type: 1, Clock: 3579545})
	test.ExpectSuccess(t, err)
	_, err = r.Add(machine.Component{Tag: "audio", Type: 2, Clock: 1789772})
	test.ExpectSuccess(t, err)

	c := r.Find("main")
	test.ExpectSuccess(t, c != nil)
	test.Equate(t, c.Clock, 3579545)

	test.ExpectSuccess(t, r.Find("missing") == nil)
	test.Equate(t, r.Len(), 2)
}

func TestRegistryDuplicateTag(t *testing.T) {
	r := machine.NewRegistry("cpu", 4)

	_, err := r.Add(machine.Component{Tag: "main"})
	test.ExpectSuccess(t, err)

	_, err = r.Add(machine.Component{Tag: "main"})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, machine.DuplicateTag))
}

func TestRegistryCapacity(t *testing.T) {
	r := machine.NewRegistry("sound", 2)

	_, err := r.Add(machine.Component{Tag: "psg"})
	test.ExpectSuccess(t, err)
	_, err = r.Add(machine.Component{Tag: "dac"})
	test.ExpectSuccess(t, err)

	_, err = r.Add(machine.Component{Tag: "fm"})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, machine.RegistryFull))

	// a slot freed by removal is usable again
	r.Remove("psg")
	_, err = r.Add(machine.Component{Tag: "fm"})
	test.ExpectSuccess(t, err)
}

func TestRegistryRemoveCompacts(t *testing.T) {
	r := machine.NewRegistry("cpu", 4)

	for _, tag := range []string{"a", "b", "c", "d"} {
		_, err := r.Add(machine.Component{Tag: tag})
		test.ExpectSuccess(t, err)
	}

	r.Remove("b")

	// remaining components keep their relative order with no holes
	test.Equate(t, r.Tags(), []string{"a", "c", "d"})
	test.Equate(t, r.Len(), 3)

	// removing an absent tag is not an error
	r.Remove("b")
	test.Equate(t, r.Len(), 3)
}
