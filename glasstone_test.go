/*
Copyright © 2018 the glasstone authors.
This file is part of glasstone.

glasstone is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

glasstone is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with glasstone.  If not, see <http://www.gnu.org/licenses/>.
*/

package glasstone

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaling(t *testing.T) {
	assert.InDelta(t, 2.0, CubeRoot(8), 1e-12)
	assert.InDelta(t, 500.0, ScaleRange(8, 1000), 1e-9)
	assert.InDelta(t, 100.0, ScaleHeight(1000, 1000), 1e-9)
	assert.InDelta(t, 5.0, SlantRange(1, 3, 4), 1e-12)
	assert.True(t, math.IsInf(ScaleRange(0, 1), 1))
}
