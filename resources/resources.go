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

package resources

import (
	"os"
	"path/filepath"
)

// the base path for all resources. we don't use this value directly except
// in the basePath() function.
const baseResourcePath = ".marquee"

// Path returns the resource string (representing the resource to be loaded)
// prepended with operating system specific details. Any directories in the
// returned path are created as required.
func Path(resource ...string) (string, error) {
	p := make([]string, 0, len(resource)+1)
	p = append(p, basePath())
	p = append(p, resource...)

	pth := filepath.Join(p...)

	if err := os.MkdirAll(filepath.Dir(pth), 0700); err != nil {
		return "", err
	}

	return pth, nil
}

// basePath returns baseResourcePath with the user's config directory
// prepended, unless the unadorned baseResourcePath exists in the current
// directory. the local directory variant is useful for development and for
// portable installations.
func basePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(home, baseResourcePath[1:])
}
