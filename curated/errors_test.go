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

package curated_test

import (
	"testing"

	"github.com/marquee-emu/marquee/curated"
	"github.com/marquee-emu/marquee/test"
)

const (
	testError  = "test error: %v"
	otherError = "other error: %v"
)

func TestIdentification(t *testing.T) {
	err := curated.Errorf(testError, "inner detail")

	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectSuccess(t, curated.Is(err, testError))
	test.ExpectFailure(t, curated.Is(err, otherError))

	// a wrapped curated error can be found anywhere in the chain
	wrapped := curated.Errorf(otherError, err)
	test.ExpectFailure(t, curated.Is(wrapped, testError))
	test.ExpectSuccess(t, curated.Has(wrapped, testError))
	test.ExpectSuccess(t, curated.Has(wrapped, otherError))

	// non-curated errors are never identified
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testError))
	test.ExpectFailure(t, curated.Has(nil, testError))
}

func TestDeduplication(t *testing.T) {
	// adjacent duplicate message parts are folded into one
	inner := curated.Errorf("video: %v", "no signal")
	outer := curated.Errorf("video: %v", inner)

	test.Equate(t, outer.Error(), "video: no signal")
}
