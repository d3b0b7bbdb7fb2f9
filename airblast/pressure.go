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

package airblast

import (
	"math"

	"github.com/spatialmodel/glasstone"
	"github.com/spatialmodel/glasstone/units"
)

// scenario converts yield and distances to kT and m and builds the
// Scenario for them.
func scenario(y, r, h float64, yu, du units.Unit) (*Scenario, error) {
	yield, err := units.Convert(y, yu, units.KT)
	if err != nil {
		return nil, err
	}
	gr, err := units.Convert(r, du, units.Meter)
	if err != nil {
		return nil, err
	}
	height, err := units.Convert(h, du, units.Meter)
	if err != nil {
		return nil, err
	}
	return NewScenario(yield, gr, height), nil
}

// StaticOverpressure returns the DNA peak static overpressure, in units
// pu, at ground range r from a burst of yield y at height h. r and h
// are in units du and y in units yu. Ground range zero is a singularity
// of the model.
func StaticOverpressure(y, r, h float64, yu, du, pu units.Unit) (float64, error) {
	s, err := scenario(y, r, h, yu, du)
	if err != nil {
		return math.NaN(), err
	}
	return units.Convert(s.PeakOverpressure(), units.Pascal, pu)
}

// DynamicPressure returns the DNA peak dynamic pressure in units pu.
// Arguments are as for StaticOverpressure.
func DynamicPressure(y, r, h float64, yu, du, pu units.Unit) (float64, error) {
	s, err := scenario(y, r, h, yu, du)
	if err != nil {
		return math.NaN(), err
	}
	return units.Convert(s.PeakDynamicPressure(), units.Pascal, pu)
}

// ArrivalTime returns the time [s] after the burst at which the blast
// wave arrives.
func ArrivalTime(y, r, h float64, yu, du units.Unit) (float64, error) {
	s, err := scenario(y, r, h, yu, du)
	if err != nil {
		return math.NaN(), err
	}
	return s.TimeOfArrival(), nil
}

// Impulse returns the overpressure positive phase impulse in pu·s.
func Impulse(y, r, h float64, yu, du, pu units.Unit) (float64, error) {
	s, err := scenario(y, r, h, yu, du)
	if err != nil {
		return math.NaN(), err
	}
	i, err := s.TotalImpulse()
	if err != nil {
		return math.NaN(), err
	}
	return units.Convert(i, units.Pascal, pu)
}

// BrodeOverpressure returns the peak static overpressure, in units pu,
// from H.L. Brode's 1986 fit to calculations of a blast wave over an
// ideal surface. It presumes sea level ambient pressure and is accurate
// to about 10%. Ground range zero divides by zero.
func BrodeOverpressure(y, r, h float64, yu, du, pu units.Unit) (float64, error) {
	yield, err := units.Convert(y, yu, units.KT)
	if err != nil {
		return math.NaN(), err
	}
	gr, err := units.Convert(r, du, units.Kilofoot)
	if err != nil {
		return math.NaN(), err
	}
	height, err := units.Convert(h, du, units.Kilofoot)
	if err != nil {
		return math.NaN(), err
	}
	return units.Convert(brodeOverpressure(yield, gr, height), units.PSI, pu)
}

// brodeOverpressure is the Brode peak overpressure [psi] for yield [kT],
// ground range and height [kilofeet].
func brodeOverpressure(yield, gr, height float64) float64 {
	z := height / gr
	y := glasstone.ScaleHeight(yield, height)
	x := glasstone.ScaleRange(yield, gr)
	return brode(z, math.Sqrt(x*x+y*y), y)
}

// brode is the 1 kT fit in scaled kilofeet. The component functions
// have no physical meaning of their own.
func brode(z, r, y float64) float64 {
	pow := math.Pow
	a := 1.22 - (3.908*z*z)/(1+810.2*pow(z, 5))
	b := 2.321 + (6.195*pow(z, 18))/(1+1.113*pow(z, 18)) -
		(0.03831*pow(z, 17))/(1+0.02415*pow(z, 17)) + 0.6692/(1+4164*pow(z, 8))
	c := 4.153 - (1.149*pow(z, 18))/(1+1.641*pow(z, 18)) - 1.1/(1+2.771*pow(z, 2.5))
	d := -4.166 + (25.76*pow(z, 1.75))/(1+1.382*pow(z, 18)) + (8.257*z)/(1+3.219*z)
	e := 1 - (0.004642*pow(z, 18))/(1+0.003886*pow(z, 18))
	f := 0.6096 + (2.879*pow(z, 9.25))/(1+2.359*pow(z, 14.5)) - (17.5*z*z)/(1+71.66*pow(z, 3))
	g := 1.83 + (5.361*z*z)/(1+0.3139*pow(z, 6))
	h := (8.808*pow(z, 1.5))/(1+154.5*pow(z, 3.5)) - (0.2905+64.67*pow(z, 5))/(1+441.5*pow(z, 5)) -
		(1.389*z)/(1+49.03*pow(z, 5)) +
		(1.094*r*r)/((781.2-123.4*r+37.98*pow(r, 1.5)+r*r)*(1+2*y))
	j := (0.000629*pow(y, 4))/(3.493e-9+pow(y, 4)) - (2.67*y*y)/(1+1e7*pow(y, 4.3))
	k := 5.18 + (0.2803*pow(y, 3.5))/(3.788e-6+pow(y, 4))
	return 10.47/pow(r, a) + b/pow(r, c) + (d*e)/(1+f*pow(r, g)) + h + j/pow(r, k)
}
