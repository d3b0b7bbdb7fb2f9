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

// Package glasstone estimates the physical effects of nuclear detonations
// (airblast, thermal fluence and fallout) from closed-form empirical models
// published by U.S. and Soviet military research organizations.
//
// The models themselves live in subpackages: airblast (DNA airburst blast
// waveforms and the Brode surface-burst fit), fallout (WSEG-10), soviet
// (digitized Iadernoe oruzhie graphs), units (unit conversion) and graph
// (interpolation over digitized curves). This package holds the cube-root
// scaling helpers they share.
package glasstone

import "math"

// Version gives the version number.
const Version = "0.1.0"

// CubeRoot returns yield^(1/3), the Sachs scaling factor for a burst
// of the given yield.
func CubeRoot(yield float64) float64 {
	return math.Pow(yield, 1.0/3)
}

// ScaleRange returns ground range r scaled to a 1 kT burst. yield and r
// must be in the same units the caller's model expects (typically kT and m).
// The result is undefined for yield == 0.
func ScaleRange(yield, r float64) float64 {
	return r / CubeRoot(yield)
}

// ScaleHeight returns burst height h scaled to a 1 kT burst.
func ScaleHeight(yield, h float64) float64 {
	return h / CubeRoot(yield)
}

// SlantRange returns the scaled slant range from a burst at
// height h to a point at ground range r.
func SlantRange(yield, r, h float64) float64 {
	sgr := ScaleRange(yield, r)
	shob := ScaleHeight(yield, h)
	return math.Sqrt(sgr*sgr + shob*shob)
}
