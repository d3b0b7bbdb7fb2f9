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

package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptive(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{name: "polynomial", f: func(x float64) float64 { return 3 * x * x }, a: 0, b: 2, want: 8},
		{name: "sine", f: math.Sin, a: 0, b: math.Pi, want: 2},
		{name: "steep", f: func(x float64) float64 { return math.Pow(x, -40) }, a: 1, b: 3, want: (1 - math.Pow(3, -39)) / 39},
		{name: "kink", f: func(x float64) float64 { return math.Max(0, x-0.3) }, a: 0, b: 1, want: 0.245},
		{name: "empty", f: math.Exp, a: 1, b: 1, want: 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			have, err := Adaptive(test.f, test.a, test.b, 1e-9, 200)
			require.NoError(t, err)
			assert.InDelta(t, test.want, have, 1e-8*math.Max(1, math.Abs(test.want)))
		})
	}
}

func TestNoConvergence(t *testing.T) {
	_, err := Adaptive(func(x float64) float64 { return math.NaN() }, 0, 1, 1e-6, 200)
	assert.Equal(t, ErrNoConvergence, err)

	// A discontinuity cannot be resolved to this tolerance with
	// only a handful of subdivisions.
	step := func(x float64) float64 {
		if x < 1/math.Pi {
			return 0
		}
		return 1
	}
	_, err = Adaptive(step, 0, 1, 1e-15, 4)
	assert.Equal(t, ErrNoConvergence, err)
}
