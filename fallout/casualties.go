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

package fallout

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// LethalERD is the equivalent residual dose [R] above which
// FatalityFraction reports certain death.
const LethalERD = 2000.0

// Certain is the value FatalityFraction returns above LethalERD. It lies
// just above 1 so that it sits above the top contour level of a plot.
const Certain = 1.01

// lethality is the probability of death for an unsheltered individual as
// a function of equivalent residual dose [R]: LD10 263 R, LD50 450 R,
// LD95 900 R. FatalityFraction evaluates its CDF with normalCDF.
var lethality = distuv.LogNormal{Mu: math.Log(450), Sigma: 0.42}

// FatalityFraction returns the probability of death for an unsheltered
// individual receiving equivalent residual dose erd [R].
func FatalityFraction(erd float64) float64 {
	if erd > LethalERD {
		return Certain
	}
	if erd <= 0 {
		return 0
	}
	return normalCDF((math.Log(erd) - lethality.Mu) / lethality.Sigma)
}
