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

// Package logger is the central log for the system. Subsystems add entries
// with Log() and Logf(), tagging each entry with the name of the originating
// subsystem. Adjacent duplicate entries are folded into a single entry with
// a repeat count.
//
// The log is in-memory and of bounded size. Frontends can echo new entries
// to a writer with SetEcho() or retrieve past entries with Write(), Tail()
// and BorrowLog().
package logger
