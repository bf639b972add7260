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

package session

import (
	"github.com/marquee-emu/marquee/curated"
	"github.com/marquee-emu/marquee/gfxdecode"
	"github.com/marquee-emu/marquee/palette"
)

// built-in 8x8 hexadecimal glyphs for the on-screen indicators. one
// bitplane, one byte per row.
var fontData = []byte{
	0x3c, 0x66, 0x6e, 0x76, 0x66, 0x66, 0x3c, 0x00, // 0
	0x18, 0x38, 0x18, 0x18, 0x18, 0x18, 0x7e, 0x00, // 1
	0x3c, 0x66, 0x06, 0x0c, 0x30, 0x60, 0x7e, 0x00, // 2
	0x3c, 0x66, 0x06, 0x1c, 0x06, 0x66, 0x3c, 0x00, // 3
	0x0c, 0x1c, 0x3c, 0x6c, 0x7e, 0x0c, 0x0c, 0x00, // 4
	0x7e, 0x60, 0x7c, 0x06, 0x06, 0x66, 0x3c, 0x00, // 5
	0x3c, 0x66, 0x60, 0x7c, 0x66, 0x66, 0x3c, 0x00, // 6
	0x7e, 0x06, 0x0c, 0x18, 0x30, 0x30, 0x30, 0x00, // 7
	0x3c, 0x66, 0x66, 0x3c, 0x66, 0x66, 0x3c, 0x00, // 8
	0x3c, 0x66, 0x66, 0x3e, 0x06, 0x66, 0x3c, 0x00, // 9
	0x3c, 0x66, 0x66, 0x7e, 0x66, 0x66, 0x66, 0x00, // a
	0x7c, 0x66, 0x66, 0x7c, 0x66, 0x66, 0x7c, 0x00, // b
	0x3c, 0x66, 0x60, 0x60, 0x60, 0x66, 0x3c, 0x00, // c
	0x7c, 0x66, 0x66, 0x66, 0x66, 0x66, 0x7c, 0x00, // d
	0x7e, 0x60, 0x60, 0x7c, 0x60, 0x60, 0x7e, 0x00, // e
	0x7e, 0x60, 0x60, 0x7c, 0x60, 0x60, 0x60, 0x00, // f
}

var fontLayout = gfxdecode.Layout{
	Width:         8,
	Height:        8,
	Total:         16,
	Planes:        1,
	PlaneOffset:   [gfxdecode.MaxPlanes]int{0},
	XOffset:       [gfxdecode.MaxSize]int{0, 1, 2, 3, 4, 5, 6, 7},
	YOffset:       [gfxdecode.MaxSize]int{0, 8, 16, 24, 32, 40, 48, 56},
	CharIncrement: 8 * 8,
}

// buildUIFont decodes the built-in glyphs into a gfx element set bound to
// the session palette.
func buildUIFont(pal *palette.Palette) (*gfxdecode.Element, error) {
	entries := []gfxdecode.Entry{{
		Region:          "font",
		Layout:          &fontLayout,
		TotalColorCodes: 2,
	}}

	els, err := gfxdecode.Decode(entries, func(_ string) []byte { return fontData }, pal.Pens())
	if err != nil {
		return nil, curated.Errorf("font: %v", err)
	}

	return els[0], nil
}
