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
	"github.com/marquee-emu/marquee/logger"
)

// RegistryFull is returned by Registry.Add when every slot is in use.
const RegistryFull = "%s registry: no free slot for '%s'"

// DuplicateTag is returned by Registry.Add when the tag is already present.
const DuplicateTag = "%s registry: duplicate tag '%s'"

// Component is one slot in a Registry. A CPU component uses the Clock field;
// a sound component uses the Interface field. Both uses share the slot shape
// so one registry implementation serves both tables.
type Component struct {
	Tag  string
	Type int

	// Clock in Hz. CPU components only.
	Clock int

	// Interface is an opaque pointer to the component's configuration.
	// Sound components only.
	Interface interface{}
}

// Registry is a fixed-capacity, order-preserving table of tagged
// components. It is populated during machine description expansion and is
// read-only thereafter.
type Registry struct {
	name  string
	slots []Component
}

// NewRegistry is the preferred method of initialisation for the Registry
// type. The name appears in log entries and error messages.
func NewRegistry(name string, capacity int) *Registry {
	return &Registry{
		name:  name,
		slots: make([]Component, 0, capacity),
	}
}

// Add fills the first unused slot with the component. Fails when the table
// is at capacity or the tag is already present.
//
// The returned pointer is valid only until the next call to Remove().
// Compaction moves slots.
func (r *Registry) Add(c Component) (*Component, error) {
	if r.Find(c.Tag) != nil {
		return nil, curated.Errorf(DuplicateTag, r.name, c.Tag)
	}
	if len(r.slots) == cap(r.slots) {
		return nil, curated.Errorf(RegistryFull, r.name, c.Tag)
	}
	r.slots = append(r.slots, c)
	return &r.slots[len(r.slots)-1], nil
}

// Find returns the component with the matching tag, or nil.
//
// The returned pointer is valid only until the next call to Remove().
func (r *Registry) Find(tag string) *Component {
	for i := range r.slots {
		if r.slots[i].Tag == tag {
			return &r.slots[i]
		}
	}
	return nil
}

// Remove deletes the component with the matching tag and compacts the
// table, preserving the relative order of the remaining components. Absence
// of the tag is logged but is not an error.
func (r *Registry) Remove(tag string) {
	for i := range r.slots {
		if r.slots[i].Tag == tag {
			r.slots = append(r.slots[:i], r.slots[i+1:]...)
			return
		}
	}
	logger.Logf("machine", "can't find '%s' in %s registry", tag, r.name)
}

// Len returns the number of populated slots.
func (r *Registry) Len() int {
	return len(r.slots)
}

// At returns the component in position idx. Iterating from 0 to Len()-1
// visits components in insertion order.
func (r *Registry) At(idx int) *Component {
	return &r.slots[idx]
}

// Tags returns the populated tags in insertion order.
func (r *Registry) Tags() []string {
	tags := make([]string, len(r.slots))
	for i := range r.slots {
		tags[i] = r.slots[i].Tag
	}
	return tags
}
