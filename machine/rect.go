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

import "fmt"

// Rect describes a rectangular area of the frame buffer. Coordinates are
// inclusive at both ends, so a rectangle one pixel high has MinY == MaxY.
type Rect struct {
	MinX int
	MaxX int
	MinY int
	MaxY int
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d) to (%d, %d)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// Width of the rectangle in pixels.
func (r Rect) Width() int {
	return r.MaxX - r.MinX + 1
}

// Height of the rectangle in pixels.
func (r Rect) Height() int {
	return r.MaxY - r.MinY + 1
}

// Empty is true if the rectangle contains no pixels.
func (r Rect) Empty() bool {
	return r.MaxX < r.MinX || r.MaxY < r.MinY
}

// Clip returns the intersection of the two rectangles. The result may be
// Empty().
func (r Rect) Clip(other Rect) Rect {
	if other.MinX > r.MinX {
		r.MinX = other.MinX
	}
	if other.MaxX < r.MaxX {
		r.MaxX = other.MaxX
	}
	if other.MinY > r.MinY {
		r.MinY = other.MinY
	}
	if other.MaxY < r.MaxY {
		r.MaxY = other.MaxY
	}
	return r
}
