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

// Marquee is an orchestration core for arcade machine emulation. It owns
// the lifecycle of an emulated machine, from the expansion of a hardware
// description through host, machine and video bring-up, the execution
// loop, and a teardown exactly symmetric with whatever was brought up.
//
// Marquee does not emulate CPUs or render anything itself. Frontends
// supply the platform (session.Host), the passage of emulated time
// (session.Engine) and the display (video.Presentation); hardware targets
// supply behaviour through the capability interfaces of the machine
// package. What Marquee guarantees is ordering: every bring-up phase runs
// only after the previous one succeeded, every teardown action runs only
// if its counterpart ran, and within a frame every visible scanline is
// painted exactly once.
//
// The session package is the place to start reading.
package marquee
