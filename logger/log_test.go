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

package logger_test

import (
	"strings"
	"testing"

	"github.com/marquee-emu/marquee/logger"
	"github.com/marquee-emu/marquee/test"
)

func TestCentral(t *testing.T) {
	logger.Clear()

	logger.Log("video", "display created")
	logger.Log("video", "display created")
	logger.Log("storage", "image opened")

	s := &strings.Builder{}
	logger.Write(s)

	// the duplicate entry is folded, not repeated
	test.Equate(t, s.String(), "video: display created (repeat x2)\nstorage: image opened\n")

	s.Reset()
	logger.Tail(s, 1)
	test.Equate(t, s.String(), "storage: image opened\n")
}

func TestMultilineEntry(t *testing.T) {
	logger.Clear()
	logger.Logf("session", "bring-up failed: %v", "no\nsignal")

	s := &strings.Builder{}
	logger.Write(s)

	// newlines never survive into the log
	test.Equate(t, s.String(), "session: bring-up failed: nosignal\n")
}
