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
	"github.com/marquee-emu/marquee/palette"
)

// BadBitmap is returned by NewBitmap for impossible dimensions.
const BadBitmap = "bitmap: bad dimensions: %dx%d"

// Bitmap is a frame buffer of pens. The presentation layer borrows the
// bitmap for exactly one publish call per frame and must not keep a
// reference to it beyond that call.
type Bitmap struct {
	Width  int
	Height int
	Depth  int
	pixels []palette.Pen
}

// NewBitmap is the preferred method of initialisation for the Bitmap type.
func NewBitmap(width, height, depth int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(BadBitmap, width, height)
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		Depth:  depth,
		pixels: make([]palette.Pen, width*height),
	}, nil
}

// SetPixel plots a single pen. Out of range coordinates are ignored.
func (b *Bitmap) SetPixel(x, y int, pen palette.Pen) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.pixels[y*b.Width+x] = pen
}

// Pixel returns the pen at the given coordinates. Out of range coordinates
// return the zero pen.
func (b *Bitmap) Pixel(x, y int) palette.Pen {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return palette.Pen(0)
	}
	return b.pixels[y*b.Width+x]
}

// Fill floods the clip rectangle with a single pen. A nil clip fills the
// whole bitmap.
func (b *Bitmap) Fill(pen palette.Pen, clip *Rect) {
	area := Rect{MinX: 0, MaxX: b.Width - 1, MinY: 0, MaxY: b.Height - 1}
	if clip != nil {
		area = area.Clip(*clip)
	}
	if area.Empty() {
		return
	}
	for y := area.MinY; y <= area.MaxY; y++ {
		row := b.pixels[y*b.Width+area.MinX : y*b.Width+area.MaxX+1]
		for x := range row {
			row[x] = pen
		}
	}
}
