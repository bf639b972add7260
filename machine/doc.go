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

// Package machine defines the static description of an emulated hardware
// target and the mutable machine instance a session expands it into.
//
// A Description is built once per process from static tables and never
// mutated. Expand() produces a Machine: the description's expansion
// callback populates the fixed-capacity CPU and sound component registries,
// and the session controller's bring-up phases fill in the rest (input
// ports, media, frame buffer, palette, decoded gfx).
//
// Hardware-specific behavior is reached through the capability interfaces
// declared here (Hardware, VideoHooks, NVRAMHandler, MemoryMapper). A
// description selects its capability set once, at build time; the session
// never reassigns it.
package machine
