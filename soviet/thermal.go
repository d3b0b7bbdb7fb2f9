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

package soviet

import (
	"math"

	"github.com/spatialmodel/glasstone/graph"
	"github.com/spatialmodel/glasstone/units"
)

// thermalCurves are the nine visibility curves of the thermal impulse
// nomogram, giving the nomogram's vertical scale as a function of
// log10 of slant range [km]. Index 0 is model input 1 (clearest air).
var thermalCurves, rThermalCurves = func() (fwd, rev [9]graph.Curve) {
	for i, d := range thermalCurveData {
		fwd[i] = graph.NewCurve(d[0], d[1])
		rev[i] = fwd[i].Reverse()
	}
	return
}()

// groundOffset is the distance between the airburst and ground burst
// impulse scales of the nomogram, in log10 units.
const groundOffset = 0.48287

// thermalSlope is the diagonal yield line of the nomogram through
// impulse [cal/cm²] for actual yield [kT].
func thermalSlope(impulse, yield float64) float64 {
	return 12.83 - 4.93*math.Log10(impulse) + 5.15*math.Log10(yield)
}

// reverseThermalSlope returns the impulse at nomogram position v.
func reverseThermalSlope(v, yield float64) float64 {
	return math.Pow(10, (v-12.83-5.15*math.Log10(yield))/-4.93)
}

func thermalCurve(curves *[9]graph.Curve, model int) (graph.Curve, error) {
	if model < 1 || model > 9 {
		return graph.Curve{}, graph.Outside(float64(model))
	}
	return curves[model-1], nil
}

// airThermal returns the impulse [cal/cm²] at slant range [km] from an
// airburst of yield [kT] for nomogram curve model.
func airThermal(slantRange, yield float64, model int) (float64, error) {
	c, err := thermalCurve(&thermalCurves, model)
	if err != nil {
		return math.NaN(), err
	}
	v, err := c.Interp(math.Log10(slantRange))
	if err != nil {
		return math.NaN(), &graph.OutsideError{Value: slantRange, Min: math.Pow(10, c.Lo), Max: math.Pow(10, c.Hi)}
	}
	return reverseThermalSlope(v, yield), nil
}

// airThermalRange is the inverse of airThermal.
func airThermalRange(impulse, yield float64, model int) (float64, error) {
	c, err := thermalCurve(&rThermalCurves, model)
	if err != nil {
		return math.NaN(), err
	}
	logr, err := c.Interp(thermalSlope(impulse, yield))
	if err != nil {
		return math.NaN(), err
	}
	return math.Pow(10, logr), nil
}

func airToGround(impulse float64) float64 {
	return math.Pow(10, math.Log10(impulse)-groundOffset)
}

func groundToAir(impulse float64) float64 {
	return math.Pow(10, math.Log10(impulse)+groundOffset)
}

// ModelInput converts an International Visibility Code (1 = thick fog,
// 9 = exceptionally clear) into the number of the nomogram curve for a
// burst of yield [kT] at height h. The nomogram numbers its curves in
// the opposite sense, and uses a clearer curve for airbursts above 100 kT:
//
//	description        IVC   ground bursts, <= 100 kT   airbursts > 100 kT
//	clear air          9     1                          1
//	very light haze    7     3                          2
//	light haze         5     5                          4
//	smoggy air         4     6                          5
//	light fog          3     8                          7
//	thick fog          1-2   9                          8
func ModelInput(ivc int, yield, h float64) int {
	if ivc == 9 {
		return 1
	}
	groundburst := 10 - ivc
	if ivc == 3 || ivc == 2 {
		groundburst++
	}
	if h == 0 || yield <= 100 {
		return groundburst
	}
	return groundburst - 1
}

// thermalArgs converts the common arguments of the thermal functions to
// kT and km and picks the nomogram curve. The burst height only matters
// through the choice of curve.
func thermalArgs(y, r, h float64, visibility int, yu, du units.Unit) (yield, rkm float64, model int, err error) {
	yield, err = units.Convert(y, yu, units.KT)
	if err != nil {
		return
	}
	rkm, err = units.Convert(r, du, units.Kilometer)
	if err != nil {
		return
	}
	model = ModelInput(visibility, yield, h)
	return
}

// AirThermal returns the total thermal impulse [cal/cm²] at slant range r
// from an airburst of yield y at height h, with visibility given as an
// International Visibility Code. y is in units yu and r and h in units du.
func AirThermal(y, r, h float64, visibility int, yu, du units.Unit) (float64, error) {
	yield, rkm, model, err := thermalArgs(y, r, h, visibility, yu, du)
	if err != nil {
		return math.NaN(), err
	}
	return airThermal(rkm, yield, model)
}

// GroundThermal is AirThermal for a ground burst.
func GroundThermal(y, r, h float64, visibility int, yu, du units.Unit) (float64, error) {
	yield, rkm, model, err := thermalArgs(y, r, h, visibility, yu, du)
	if err != nil {
		return math.NaN(), err
	}
	i, err := airThermal(rkm, yield, model)
	if err != nil {
		return math.NaN(), err
	}
	return airToGround(i), nil
}

// AirThermalRange returns the slant range, in units du, at which an
// airburst of yield y at height h delivers thermal impulse fluence
// [cal/cm²].
func AirThermalRange(y, fluence, h float64, visibility int, yu, du units.Unit) (float64, error) {
	yield, _, model, err := thermalArgs(y, 0, h, visibility, yu, du)
	if err != nil {
		return math.NaN(), err
	}
	r, err := airThermalRange(fluence, yield, model)
	if err != nil {
		return math.NaN(), err
	}
	return units.Convert(r, units.Kilometer, du)
}

// GroundThermalRange is AirThermalRange for a ground burst.
func GroundThermalRange(y, fluence, h float64, visibility int, yu, du units.Unit) (float64, error) {
	yield, _, model, err := thermalArgs(y, 0, h, visibility, yu, du)
	if err != nil {
		return math.NaN(), err
	}
	r, err := airThermalRange(groundToAir(fluence), yield, model)
	if err != nil {
		return math.NaN(), err
	}
	return units.Convert(r, units.Kilometer, du)
}
