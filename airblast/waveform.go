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

	"github.com/spatialmodel/glasstone/internal/quadrature"
)

const (
	// impulseTolerance is the relative error target for impulse integrals.
	impulseTolerance = 1e-6

	// maxSubdivisions caps the number of intervals the impulse
	// integrator may split the positive phase into.
	maxSubdivisions = 200
)

// b is the single-peaked waveform at scaled time t for a positive phase
// of scaled duration dur.
func (s *Scenario) b(t, dur float64) float64 {
	r := s.ta / t
	return (s.f*math.Pow(r, s.g) + (1-s.f)*math.Pow(r, s.h)) * (1 - (t-s.ta)/dur)
}

// shape returns the waveform normalized to the peak overpressure,
// including the second peak where there is one.
func (s *Scenario) shape(t, dur float64) float64 {
	b := s.b(t, dur)
	if !s.doublePeak {
		return b
	}
	ga := math.Max(math.Min((t-s.ta)/s.dt, 400), 0.0001)
	ga3 := ga * ga * ga
	v := 1 + s.v0*ga3/(ga3+6.13)
	c := s.c0 * (1 / (math.Pow(ga, -7) + 0.923*math.Pow(ga, 1.5))) * (1 - math.Pow((t-s.ta)/dur, 8))
	return (1 + s.a) * (b*v + c)
}

func (s *Scenario) scaledOverpressure(t float64) float64 {
	return s.peak * s.shape(t, s.dp)
}

func (s *Scenario) scaledDynamicPressure(t float64) float64 {
	dpt := s.peak * s.shape(t, s.dpq)
	if dpt <= 0 {
		// End of the positive phase, where round-off can leave dpt
		// slightly negative.
		return 0
	}
	n := MassDensityRatio(dpt)
	return 0.5 * dpt * (n - 1) * math.Pow(dpt/s.peak, s.delta)
}

// OverpressureAt returns the static overpressure [Pa] at time t [s] after
// the burst. The waveform is only defined during the positive phase,
// from TimeOfArrival to TimeOfArrival+PositivePhaseDuration; callers
// are responsible for keeping t inside it.
func (s *Scenario) OverpressureAt(t float64) float64 {
	return s.scaledOverpressure(t / s.w)
}

// DynamicPressureAt returns the dynamic pressure [Pa] at time t [s] after
// the burst, during the dynamic pressure positive phase.
func (s *Scenario) DynamicPressureAt(t float64) float64 {
	return s.scaledDynamicPressure(t / s.w)
}

// TotalImpulse returns the overpressure impulse [Pa·s] delivered over
// the positive phase.
func (s *Scenario) TotalImpulse() (float64, error) {
	return s.impulse(s.scaledOverpressure, s.ta+s.dp)
}

// DynamicImpulse returns the dynamic pressure impulse [Pa·s] delivered
// over the dynamic pressure positive phase.
func (s *Scenario) DynamicImpulse() (float64, error) {
	return s.impulse(s.scaledDynamicPressure, s.ta+s.dpq)
}

// PartialImpulse returns the overpressure impulse [Pa·s] delivered
// between the arrival of the shock and time t [s] after the burst. Times
// before arrival give zero and times after the end of the positive phase
// give the total impulse.
func (s *Scenario) PartialImpulse(t float64) (float64, error) {
	end := math.Min(t/s.w, s.ta+s.dp)
	if end <= s.ta {
		return 0, nil
	}
	return s.impulse(s.scaledOverpressure, end)
}

// PartialDynamicImpulse is PartialImpulse for dynamic pressure.
func (s *Scenario) PartialDynamicImpulse(t float64) (float64, error) {
	end := math.Min(t/s.w, s.ta+s.dpq)
	if end <= s.ta {
		return 0, nil
	}
	return s.impulse(s.scaledDynamicPressure, end)
}

// impulse integrates f over scaled time from arrival to end and scales
// the result back to the actual yield.
func (s *Scenario) impulse(f func(float64) float64, end float64) (float64, error) {
	i, err := quadrature.Adaptive(f, s.ta, end, impulseTolerance, maxSubdivisions)
	if err != nil {
		return math.NaN(), err
	}
	return i * s.w, nil
}
