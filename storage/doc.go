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

// Package storage mediates between the emulated disk subsystem and the
// host filesystem. The emulation asks for images by filename and mode;
// the Adapter resolves read-only requests against the hardware target
// and its ancestor templates, and redirects all writable requests to a
// differencing store so shared media is never modified in place.
//
// The Filesystem interface abstracts the host side. HostFilesystem is
// the production implementation, storing each class of file under the
// Marquee configuration directory. Tests substitute their own.
package storage
