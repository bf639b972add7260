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

// Package curated provides error values that can be identified by the
// pattern they were created with. A failing subsystem wraps the underlying
// cause with a pattern constant defined near the failure site, and callers
// use Is() and Has() to recognise the failure category without string
// comparison of the formatted message.
//
// For example:
//
//	const PowerFailure = "power: %v"
//
//	err := curated.Errorf(PowerFailure, underlyingError)
//	if curated.Is(err, PowerFailure) {
//		...
//	}
package curated
