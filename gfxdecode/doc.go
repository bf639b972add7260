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

// Package gfxdecode converts the character and sprite data in a machine's
// memory regions into decoded pixel elements, once, during video bring-up.
//
// Layout templates may express their element count and bit offsets as
// literal values or as fractions of the source region's bit length
// (see RegionFrac). Normalisation resolves every fraction to an absolute
// value before decoding, and for raw-pixel layouts truncates the element
// count so no element addresses bytes past the end of the region.
package gfxdecode
