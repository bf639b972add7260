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

// layout table bounds.
const (
	MaxPlanes = 8
	MaxSize   = 256
)

// Raw is the sentinel value for PlaneOffset[0] indicating that element data
// is not planar and should be read directly from the source region, one
// byte per pixel. For raw layouts XOffset[0] is an optional displacement
// and YOffset[0] the line modulo, both in bits for consistency with the
// planar interpretation.
const Raw = 0x12345678

// fraction-encoded field packing: flag bit, 4-bit numerator, 4-bit
// denominator, 23-bit literal offset.
const (
	fracFlag       = 0x80000000
	fracNumShift   = 27
	fracDenShift   = 23
	fracNumMask    = 0xf
	fracDenMask    = 0xf
	fracOffsetMask = 0x007fffff
)

// RegionFrac encodes a layout field as a fraction of the source region's
// bit length, in place of a literal value.
func RegionFrac(num, den int) int {
	return fracFlag | ((num & fracNumMask) << fracNumShift) | ((den & fracDenMask) << fracDenShift)
}

func isFrac(v int) bool {
	return v&fracFlag == fracFlag
}

func fracNum(v int) int {
	return (v >> fracNumShift) & fracNumMask
}

func fracDen(v int) int {
	return (v >> fracDenShift) & fracDenMask
}

func fracOffset(v int) int {
	return v & fracOffsetMask
}

// Layout is the per-element layout template for one gfx decode entry. The
// Total field and any offset field may be literal or fraction-encoded
// (see RegionFrac) against the bit length of the source region.
type Layout struct {
	// width and height of each element in pixels
	Width  int
	Height int

	// total number of elements. may be fraction-encoded
	Total int

	// number of bitplanes
	Planes int

	// bit offsets. may be fraction-encoded
	PlaneOffset [MaxPlanes]int
	XOffset     [MaxSize]int
	YOffset     [MaxSize]int

	// distance between two consecutive elements, in bits
	CharIncrement int
}

// IsRaw returns true if the layout uses the raw pixel encoding.
func (gl Layout) IsRaw() bool {
	return gl.PlaneOffset[0] == Raw
}

// Normalise returns a copy of the layout with every fraction-encoded field
// resolved to an absolute value against the region's bit length, and with
// the total element count of a raw layout truncated so that the last
// addressed pixel of the last element stays within the region.
//
// The start argument is the byte offset into the region at which decoding
// will begin.
func (gl Layout) Normalise(start int, regionBits int) Layout {
	// the receiver is already a copy. offset arrays are values, not
	// slices, so mutation below is local

	if isFrac(gl.Total) {
		gl.Total = regionBits / gl.CharIncrement * fracNum(gl.Total) / fracDen(gl.Total)
	}

	for i, v := range gl.PlaneOffset {
		if isFrac(v) {
			gl.PlaneOffset[i] = fracOffset(v) + regionBits*fracNum(v)/fracDen(v)
		}
	}

	for i := 0; i < MaxSize; i++ {
		if v := gl.XOffset[i]; isFrac(v) {
			gl.XOffset[i] = fracOffset(v) + regionBits*fracNum(v)/fracDen(v)
		}
		if v := gl.YOffset[i]; isFrac(v) {
			gl.YOffset[i] = fracOffset(v) + regionBits*fracNum(v)/fracDen(v)
		}
	}

	// raw layouts may address partial elements at the end of the region.
	// shrink the count until the last pixel of the last element is inside
	// backing memory. never read past the end of the region
	if gl.IsRaw() {
		end := regionBits / 8
		for gl.Total > 0 {
			elementBase := start + (gl.Total-1)*gl.CharIncrement/8
			lastPixelBase := elementBase + gl.Height*gl.YOffset[0]/8 - 1
			if lastPixelBase < end {
				break
			}
			gl.Total--
		}
	}

	return gl
}
