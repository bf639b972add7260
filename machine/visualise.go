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

package machine

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Visualise writes a graphviz (dot) representation of the expanded machine
// to the supplied writer. Intended for debugging frontends wanting a
// picture of what the description expanded to.
func (m *Machine) Visualise(w io.Writer) {
	memviz.Map(w, m)
}
