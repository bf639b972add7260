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

package palette

import (
	"github.com/marquee-emu/marquee/curated"
)

// Pen is a single palette entry. The packed value is in 0x00RRGGBB form.
type Pen uint32

// NoColors is returned by New() when the requested palette is empty.
const NoColors = "palette: no colors: %v"

// Palette maps color codes used by the emulated hardware to pens.
type Palette struct {
	pens       []Pen
	brightness float64
}

// New is the preferred method of initialisation for the Palette type. The
// colors argument is the total number of pens required by the hardware.
func New(colors int) (*Palette, error) {
	if colors <= 0 {
		return nil, curated.Errorf(NoColors, colors)
	}
	return &Palette{
		pens:       make([]Pen, colors),
		brightness: 1.0,
	}, nil
}

// Pens returns the full pen table. The gfx decode process takes sub-slices
// of this table as per-element colortables, so pen updates are visible to
// decoded elements without rebinding.
func (p *Palette) Pens() []Pen {
	return p.pens
}

// SetPen sets the color of a single pen.
func (p *Palette) SetPen(idx int, pen Pen) error {
	if idx < 0 || idx >= len(p.pens) {
		return curated.Errorf("palette: pen out of range: %v", idx)
	}
	p.pens[idx] = pen
	return nil
}

// Black returns the pen used to erase the frame buffer.
func (p *Palette) Black() Pen {
	return Pen(0)
}

// TotalColors returns the number of pens in the palette.
func (p *Palette) TotalColors() int {
	return len(p.pens)
}

// SetBrightness adjusts the global brightness factor. 1.0 is full
// brightness. The factor is folded into the published frame rather than
// rewriting pen values.
func (p *Palette) SetBrightness(factor float64) {
	p.brightness = factor
}

// Brightness returns the current global brightness factor.
func (p *Palette) Brightness() float64 {
	return p.brightness
}
