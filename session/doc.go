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

// Package session orchestrates the lifecycle of one emulated machine. A
// Session carries a machine description through option resolution, host
// and machine bring-up, video bring-up, the execution loop and a teardown
// that is exactly symmetric with whatever was brought up, however far
// bring-up got before failing.
//
// The session controller does not emulate anything itself. The platform
// is behind the Host interface, the passage of emulated time behind the
// Engine interface, the display behind the video.Presentation interface
// and hardware behaviour behind the capability interfaces of the machine
// package. The controller's job is ordering: each bring-up phase runs only
// if the previous one succeeded, and each teardown action runs only if
// its bring-up counterpart ran.
//
// Resource tracking backs this up. The Tracker holds two frames, one
// spanning the host's lifetime and one the machine's; allocations tracked
// in a frame are released, newest first, when the frame closes.
package session
