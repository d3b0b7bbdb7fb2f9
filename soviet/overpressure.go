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

// Package soviet implements the peak overpressure and thermal impulse
// models of the 1987 Soviet officers' manual Iadernoe oruzhie: Posobie
// dlia ofitserov, interpolating over points digitized from its graphs.
//
// The overpressure model is notable for covering bursts in which a
// thermal layer over the ground suppresses the Mach stem, which Soviet
// analysts expected in many real-world scenarios. Inputs that fall
// outside of the printed graphs return a *graph.OutsideError.
package soviet

import (
	"math"

	"github.com/spatialmodel/glasstone"
	"github.com/spatialmodel/glasstone/graph"
	"github.com/spatialmodel/glasstone/units"
)

// fromZero returns the curve through x and y, accepting lookups down to
// zero range.
func fromZero(x, y []float64) graph.Curve {
	c := graph.NewCurve(x, y)
	return c.WithDomain(0, c.Hi)
}

var (
	machSH20   = fromZero(machSH20X, machSH20Y)
	machSH12   = fromZero(machSH12X, machSH12Y)
	machSH7    = graph.NewCurve(machSH7X, machSH7Y)
	noMachSH20 = fromZero(noMachSH20X, noMachSH20Y)
	noMachSH12 = fromZero(noMachSH12X, noMachSH12Y)
	noMachSH7  = graph.NewCurve(noMachSH7X, noMachSH7Y)
	ground     = graph.NewCurve(groundX, groundY)

	rMachSH20   = machSH20.Reverse()
	rMachSH12   = machSH12.Reverse()
	rMachSH7    = machSH7.Reverse()
	rNoMachSH20 = noMachSH20.Reverse()
	rNoMachSH12 = noMachSH12.Reverse()
	rNoMachSH7  = noMachSH7.Reverse()
	rGround     = ground.Reverse()
)

// maxScaledHeight is the highest scaled burst height [m] on the graphs.
const maxScaledHeight = 200

func outsideHeight(sh float64) error {
	return &graph.OutsideError{Value: sh, Min: 0, Max: maxScaledHeight}
}

// blend returns the overpressure [kg/cm²] at scaled range sr for scaled
// height sh, interpolating logarithmically between the curves for
// heights h1 and h2.
func blend(sh, sr, h1, h2 float64, c1, c2 graph.Curve) (float64, error) {
	o1, err := c1.Interp(sr)
	if err != nil {
		return math.NaN(), err
	}
	o2, err := c2.Interp(sr)
	if err != nil {
		return math.NaN(), err
	}
	return graph.Lerp10(sh, h1, h2, o1, o2), nil
}

// mach returns the overpressure [kg/cm²] at scaled height sh and scaled
// range sr when a Mach stem forms.
func mach(sh, sr float64) (float64, error) {
	switch {
	case 120 <= sh && sh <= 200:
		return blend(sh, sr, 120, 200, machSH12, machSH20)
	case 70 <= sh && sh < 120:
		return blend(sh, sr, 70, 120, machSH7, machSH12)
	case 0 <= sh && sh < 70:
		return blend(sh, sr, 0, 70, ground, machSH7)
	}
	return math.NaN(), outsideHeight(sh)
}

// noMach is mach for bursts over a thermal layer.
func noMach(sh, sr float64) (float64, error) {
	switch {
	case 120 < sh && sh <= 200:
		return blend(sh, sr, 120, 200, noMachSH12, noMachSH20)
	case 70 <= sh && sh <= 120:
		return blend(sh, sr, 70, 120, noMachSH7, noMachSH12)
	case 0 <= sh && sh < 70:
		return blend(sh, sr, 0, 70, ground, noMachSH7)
	}
	return math.NaN(), outsideHeight(sh)
}

// rangeBetween returns the scaled range at which overpressure
// 10^logop occurs, interpolating linearly between the inverse curves
// for heights h1 and h2.
func rangeBetween(sh, logop, h1, h2 float64, c1, c2 graph.Curve) (float64, error) {
	r1, err := c1.Interp(logop)
	if err != nil {
		return math.NaN(), err
	}
	r2, err := c2.Interp(logop)
	if err != nil {
		return math.NaN(), err
	}
	return graph.Linear(sh, []float64{h1, h2}, []float64{r1, r2}), nil
}

// sampledRange inverts f at scaled height sh by sampling it every 10 m
// from maxRange down to zero. High bursts over-run the printed curves at
// close range, so the inverse curves cannot be used there.
func sampledRange(f func(sh, sr float64) (float64, error), sh, logop, maxRange float64) (float64, error) {
	var logs, ranges []float64
	for d := maxRange; d >= 0; d -= 10 {
		op, err := f(sh, d)
		if err != nil {
			return math.NaN(), err
		}
		logs = append(logs, math.Log10(op))
		ranges = append(ranges, d)
	}
	c := graph.NewCurve(logs, ranges)
	return graph.Linear(logop, c.X, c.Y), nil
}

// rangeNoMach returns the scaled range at which overpressure op
// [kg/cm²] occurs over a thermal layer.
func rangeNoMach(sh, op float64) (float64, error) {
	logop := math.Log10(op)
	switch {
	case sh >= 120 && op > 2.975:
		return sampledRange(noMach, sh, logop, 100)
	case 120 <= sh && sh <= 200:
		return rangeBetween(sh, logop, 120, 200, rNoMachSH12, rNoMachSH20)
	case 70 <= sh && sh < 120:
		return rangeBetween(sh, logop, 70, 120, rNoMachSH7, rNoMachSH12)
	case 0 <= sh && sh < 70:
		return rangeBetween(sh, logop, 0, 70, rGround, rNoMachSH7)
	}
	return math.NaN(), outsideHeight(sh)
}

// rangeMach is rangeNoMach where a Mach stem forms.
func rangeMach(sh, op float64) (float64, error) {
	logop := math.Log10(op)
	switch {
	case sh >= 120 && op > 2.2336:
		return sampledRange(mach, sh, logop, 170)
	case 120 <= sh && sh <= 200:
		return rangeBetween(sh, logop, 120, 200, rMachSH12, rMachSH20)
	case 70 <= sh && sh < 120:
		return rangeBetween(sh, logop, 70, 120, rMachSH7, rMachSH12)
	case 0 <= sh && sh < 70:
		return rangeBetween(sh, logop, 0, 70, rGround, rMachSH7)
	}
	return math.NaN(), outsideHeight(sh)
}

// Overpressure returns the peak static overpressure, in units pu, at
// ground range r from a burst of yield y at height h. y is in units yu
// and r and h in units du. When thermalLayer is true the Mach stem is
// taken to be suppressed.
func Overpressure(y, r, h float64, thermalLayer bool, yu, du, pu units.Unit) (float64, error) {
	yield, err := units.Convert(y, yu, units.KT)
	if err != nil {
		return math.NaN(), err
	}
	gr, err := units.Convert(r, du, units.Meter)
	if err != nil {
		return math.NaN(), err
	}
	height, err := units.Convert(h, du, units.Meter)
	if err != nil {
		return math.NaN(), err
	}
	sr := glasstone.ScaleRange(yield, gr)
	sh := glasstone.ScaleHeight(yield, height)
	f := mach
	if thermalLayer {
		f = noMach
	}
	op, err := f(sh, sr)
	if err != nil {
		return math.NaN(), err
	}
	return units.Convert(op, units.KgPerCm2, pu)
}

// Range returns the ground range, in units du, at which peak static
// overpressure op (in units pu) occurs for a burst of yield y at height
// h. It is the inverse of Overpressure.
func Range(y, op, h float64, thermalLayer bool, yu, du, pu units.Unit) (float64, error) {
	yield, err := units.Convert(y, yu, units.KT)
	if err != nil {
		return math.NaN(), err
	}
	height, err := units.Convert(h, du, units.Meter)
	if err != nil {
		return math.NaN(), err
	}
	p, err := units.Convert(op, pu, units.KgPerCm2)
	if err != nil {
		return math.NaN(), err
	}
	sh := glasstone.ScaleHeight(yield, height)
	f := rangeMach
	if thermalLayer {
		f = rangeNoMach
	}
	sr, err := f(sh, p)
	if err != nil {
		return math.NaN(), err
	}
	return units.Convert(sr*glasstone.CubeRoot(yield), units.Meter, du)
}
