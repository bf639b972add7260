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

// Package prefs facilitates the storage of preference values. Preference
// values are typed (Bool, Int, Float, String) and safe for concurrent read
// and write. The Disk type binds a set of keyed preference values to a file
// on the host, with Load() and Save() moving values between memory and disk.
//
// The storage format is private to this package. Callers see only keys and
// typed values.
package prefs
