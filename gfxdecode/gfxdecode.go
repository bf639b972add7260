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

package gfxdecode

import (
	"github.com/marquee-emu/marquee/curated"
	"github.com/marquee-emu/marquee/palette"
)

// Error patterns returned by Decode.
const (
	NoRegion    = "gfxdecode: no region '%s'"
	EmptyDecode = "gfxdecode: empty decode for region '%s'"
)

// Entry names a source memory region and the layout template used to decode
// it.
type Entry struct {
	// name of the source memory region
	Region string

	// byte offset of the first element within the region
	Start int

	Layout *Layout

	// offset into the palette at which this entry's color codes begin,
	// and the number of color codes
	ColorCodesStart int
	TotalColorCodes int
}

// Element is one decoded gfx element set: the result of decoding one Entry.
type Element struct {
	Width  int
	Height int
	Total  int

	// ColorTable is a sub-slice of the session palette beginning at the
	// entry's color code start. pen updates are visible without
	// rebinding
	ColorTable  []palette.Pen
	TotalColors int

	// decoded pixel data, one byte per pixel, element-major. nil for raw
	// layouts
	data []byte

	// raw layouts read directly from the source region
	raw      []byte
	lineMod  int
	elemMod  int
	rawStart int
}

// Pixel returns the color code of pixel (x,y) of the numbered element.
func (el *Element) Pixel(num, x, y int) byte {
	if el.raw != nil {
		return el.raw[el.rawStart+num*el.elemMod+y*el.lineMod+x]
	}
	return el.data[(num*el.Height+y)*el.Width+x]
}

// readBit treats src as a continuous stream of bits, most significant bit
// first.
func readBit(src []byte, offset int) byte {
	return (src[offset/8] >> (7 - uint(offset%8))) & 1
}

// decodeElement unpacks the planar data for one element into the decoded
// pixel buffer.
func (el *Element) decodeElement(num int, src []byte, gl Layout) {
	base := num * gl.CharIncrement
	for y := 0; y < gl.Height; y++ {
		for x := 0; x < gl.Width; x++ {
			var pix byte

			// plane 0 is the most significant bit
			for p := 0; p < gl.Planes; p++ {
				offset := base + gl.PlaneOffset[p] + gl.YOffset[y] + gl.XOffset[x]
				pix = pix<<1 | readBit(src, offset)
			}

			el.data[(num*el.Height+y)*el.Width+x] = pix
		}
	}
}

// decodeEntry decodes a single entry against its source region. The layout
// must already be normalised.
func decodeEntry(e Entry, gl Layout, region []byte) *Element {
	el := &Element{
		Width:  gl.Width,
		Height: gl.Height,
		Total:  gl.Total,
	}

	if el.Total <= 0 {
		return nil
	}

	if gl.IsRaw() {
		el.raw = region
		el.rawStart = e.Start + gl.XOffset[0]/8
		el.lineMod = gl.YOffset[0] / 8
		el.elemMod = gl.CharIncrement / 8
		return el
	}

	el.data = make([]byte, el.Total*el.Width*el.Height)
	src := region[e.Start:]
	for n := 0; n < el.Total; n++ {
		el.decodeElement(n, src, gl)
	}

	return el
}

// Decode normalises and decodes every entry in the list. The region
// function maps a region name to its backing bytes; the pens argument is
// the session palette, sub-sliced per entry into each element's colortable.
//
// A missing region or an empty decode result is an error. Callers treat
// this as fatal to video bring-up.
func Decode(entries []Entry, region func(name string) []byte, pens []palette.Pen) ([]*Element, error) {
	decoded := make([]*Element, 0, len(entries))

	for _, e := range entries {
		src := region(e.Region)
		if src == nil {
			return nil, curated.Errorf(NoRegion, e.Region)
		}

		gl := e.Layout.Normalise(e.Start, len(src)*8)

		el := decodeEntry(e, gl, src)
		if el == nil {
			return nil, curated.Errorf(EmptyDecode, e.Region)
		}

		// bind the colortable to the palette slice designated for this
		// entry
		if e.ColorCodesStart < len(pens) {
			el.ColorTable = pens[e.ColorCodesStart:]
		}
		el.TotalColors = e.TotalColorCodes

		decoded = append(decoded, el)
	}

	return decoded, nil
}
