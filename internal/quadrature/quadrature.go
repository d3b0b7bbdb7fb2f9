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

// Package quadrature integrates smooth one-dimensional functions
// to a relative tolerance.
package quadrature

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// ErrNoConvergence is returned when the requested tolerance cannot be
// reached within the allowed number of subdivisions.
var ErrNoConvergence = errors.New("quadrature: integral did not converge")

// Points is the order of the Gauss-Legendre rule applied to each
// subinterval.
const Points = 20

type interval struct {
	a, b       float64
	value, err float64
}

func newInterval(f func(float64) float64, a, b float64) interval {
	m := a + (b-a)/2
	whole := quad.Fixed(f, a, b, Points, quad.Legendre{}, 1)
	halves := quad.Fixed(f, a, m, Points, quad.Legendre{}, 1) +
		quad.Fixed(f, m, b, Points, quad.Legendre{}, 1)
	return interval{a: a, b: b, value: halves, err: math.Abs(halves - whole)}
}

// Adaptive returns the integral of f over [a, b]. The interval whose
// error estimate is largest is repeatedly bisected until the summed error
// estimate is within relTol of the integral. ErrNoConvergence is returned,
// along with the current estimate, if that takes more than maxSubdivisions
// subintervals or the integrand is not finite.
func Adaptive(f func(float64) float64, a, b, relTol float64, maxSubdivisions int) (float64, error) {
	if a == b {
		return 0, nil
	}
	work := []interval{newInterval(f, a, b)}
	for {
		var sum, errSum float64
		worst := 0
		for i, iv := range work {
			sum += iv.value
			errSum += iv.err
			if iv.err > work[worst].err {
				worst = i
			}
		}
		if math.IsNaN(sum) || math.IsInf(sum, 0) {
			return sum, ErrNoConvergence
		}
		if errSum <= relTol*math.Abs(sum) || errSum == 0 {
			return sum, nil
		}
		if len(work) >= maxSubdivisions {
			return sum, ErrNoConvergence
		}
		w := work[worst]
		m := w.a + (w.b-w.a)/2
		work[worst] = newInterval(f, w.a, m)
		work = append(work, newInterval(f, m, w.b))
	}
}
