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

// Package video keeps the emulated display synchronized with CPU progress.
//
// The timing model drives ForcePartialUpdate() as the raster advances,
// painting the span between the partial update cursor and the requested
// scanline with the hardware's incremental renderer. Within one frame, a
// non-decreasing sequence of calls paints every visible scanline exactly
// once: no overlap, no gap. DrawScreen() closes the frame by painting to
// the bottom of the visible area, and UpdateVideoAndAudio() publishes the
// finished frame to the presentation layer exactly once.
//
// The package does not display anything itself. A Presentation
// implementation is attached at video bring-up and receives one Frame per
// publish.
package video
