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

// Package airblast implements the Defense Nuclear Agency airburst blast
// model used by the DNA programs BLAST and WE, along with H.L. Brode's 1986
// surface-burst overpressure fit.
//
// The DNA model gives peak overpressure and dynamic pressure at the
// surface of the earth as a function of height of burst, ground range and
// yield, and the time-dependent waveforms of both (including the
// double-peaked overpressure waveform found in the transition from regular
// to Mach reflection). The surface is treated as near-ideal: flat, rigid,
// clean and thermally reflective.
//
// Internally all calculations use kT, m, Pa and s. Quantities scaled to a
// 1 kT burst follow cube-root (Sachs) scaling. Results are defined for
// any real inputs, but are only physically meaningful inside the models'
// published envelopes; ground range zero in particular is a singularity
// of the fits.
package airblast

import (
	"math"

	"github.com/spatialmodel/glasstone"
)

// Scenario holds the scaled geometry and waveform parameters for one
// burst and one observation point on the ground. Scenarios are immutable
// and safe for concurrent use.
type Scenario struct {
	yield, groundRange, height float64

	// w is yield^(1/3).
	w float64

	// Scaled ground range, height of burst and slant range [m].
	sgr, shob, slant float64

	// alpha is the elevation angle of the burst seen from the observation point.
	alpha float64

	// xm is the scaled Mach stem formation range.
	xm float64

	// v is the slant range scaling factor.
	v float64

	sigma, pMach, pReg, peak float64

	// ta, dp and dpq are the scaled arrival time and overpressure and
	// dynamic pressure positive phase durations [s].
	ta, dp, dpq float64

	// delta is the dynamic pressure waveform exponent.
	delta float64

	// f, g and h shape the single-peaked waveform.
	f, g, h float64

	doublePeak bool

	// Parameters of the second peak.
	a, dt, v0, c0 float64
}

// NewScenario returns the Scenario for a burst of yield [kT] at height
// [m] observed at groundRange [m] from ground zero.
func NewScenario(yield, groundRange, height float64) *Scenario {
	s := &Scenario{
		yield:       yield,
		groundRange: groundRange,
		height:      height,
		w:           glasstone.CubeRoot(yield),
	}
	s.sgr = groundRange / s.w
	s.shob = height / s.w
	s.slant = math.Sqrt(s.sgr*s.sgr + s.shob*s.shob)
	s.alpha = math.Atan(s.shob / s.sgr)
	s.xm = scaledMachStemFormationRange(s.shob)
	s.v = slantRangeScalingFactor(s.sgr, s.xm)

	s.sigma = s.switchingParameter()
	s.pMach = s.machPressure()
	s.pReg = s.regularPressure()
	switch s.sigma {
	case 0:
		s.peak = s.pMach
	case 1:
		s.peak = s.pReg
	default:
		s.peak = s.pReg*s.sigma + s.pMach*(1-s.sigma)
	}

	s.ta = FreeAir1kTArrivalTime(s.slant/s.v) * s.v
	s.dp = s.overpressureDuration()
	s.dpq, s.delta = s.dynamicPressureDuration()
	s.waveformShape()
	s.secondPeak()
	return s
}

// MachStemFormationRange returns the ground range [m] beyond which the
// reflected shock from a burst of yield [kT] at height [m] merges with
// the incident shock to form a Mach stem.
func MachStemFormationRange(yield, height float64) float64 {
	w := glasstone.CubeRoot(yield)
	return scaledMachStemFormationRange(height/w) * w
}

func scaledMachStemFormationRange(shob float64) float64 {
	return math.Pow(shob, 2.5)/5822 + 2.09*math.Pow(shob, 0.75)
}

func slantRangeScalingFactor(sgr, xm float64) float64 {
	if sgr <= xm {
		return 1
	}
	return 1.26 - 0.26*(xm/sgr)
}

// mergeAngle is the angle at the center of the transition from
// regular to Mach reflection.
func (s *Scenario) mergeAngle() float64 {
	pfree := FreeAir1kTOverpressure(s.slant)
	t := 340 / math.Pow(pfree, 0.55)
	u := 1 / (7782*math.Pow(pfree, 0.7) + 0.9)
	return math.Atan(1 / (t + u))
}

// mergeWidth is the angular width of the transition region.
func (s *Scenario) mergeWidth() float64 {
	pfree := FreeAir1kTOverpressure(s.slant)
	t := 340 / math.Pow(pfree, 0.55)
	w := 1 / (7473*math.Pow(pfree, 0.5) + 6.6)
	v := 1 / (647*math.Pow(pfree, 0.8) + w)
	return math.Atan(1 / (t + v))
}

// switchingParameter blends the regular (1) and Mach (0) reflection
// regions with a raised sine over the transition width.
func (s *Scenario) switchingParameter() float64 {
	x := (s.alpha - s.mergeAngle()) / s.mergeWidth()
	x = math.Max(math.Min(x, 1), -1)
	return 0.5 * (math.Sin(0.5*math.Pi*x) + 1)
}

func (s *Scenario) machPressure() float64 {
	a := math.Min(3.7-0.94*math.Log(s.sgr), 0.7)
	b := 0.77*math.Log(s.sgr) - 3.8 - 18/s.sgr
	c := math.Max(a, b)
	return FreeAir1kTOverpressure(s.sgr/math.Pow(2, 1.0/3)) / (1 - c*math.Sin(s.alpha))
}

func (s *Scenario) regularPressure() float64 {
	pfree := FreeAir1kTOverpressure(s.slant)
	rn := NormalReflectionFactor(pfree)
	f := pfree / 75842
	d := (math.Pow(f, 6) * (1.2 + 0.07*math.Pow(f, 0.5))) / (math.Pow(f, 6) + 1)
	return pfree * ((rn-2)*math.Pow(math.Sin(s.alpha), d) + 2)
}

func (s *Scenario) overpressureDuration() float64 {
	t0 := math.Log(1000*s.ta) / 3.77
	surf := (155*math.Exp(-20.8*s.ta) + math.Exp(-t0*t0+4.86*t0+0.25)) / 1000
	unmod := surf * (1 - (1-1/(1+4.5e-8*math.Pow(s.shob, 7)))*(0.04+0.61/(1+math.Pow(s.ta, 1.5)/0.027)))
	return unmod * 1.16 * math.Exp(-math.Abs(s.shob/0.3048-156)/1062)
}

// dynamicPressureDuration returns the scaled dynamic pressure positive
// phase duration and waveform exponent. The fits work in feet.
func (s *Scenario) dynamicPressureDuration() (dpq, delta float64) {
	shob0 := s.shob / 0.3048
	sgr0 := s.sgr / 0.3048
	shobX := math.Abs(shob0-200) + 200
	sgrX := sgr0 - 200
	dp0 := 0.3 + 0.42*math.Exp(-shobX/131)
	var dpX float64
	if sgrX > 0 {
		dpX = dp0 + 4.4e-5*sgrX
	} else {
		dpX = dp0 + sgrX*(1.0/2361-math.Pow(math.Abs(shobX-533), 2)/7.88e7)
	}
	if shob0 >= 200 {
		dpq = dpX
	} else {
		dpq = dpX * (1 + 0.2*math.Sin(shob0*math.Pi/200))
	}
	delta0 := math.Max(math.Pow(shob0, 1.52)/16330-0.29, 0)
	delta = 2.38*math.Exp(-7e-7*math.Pow(math.Abs(shob0-750), 2.7)-4e-7*sgr0*sgr0) + delta0
	return dpq, delta
}

// waveformShape sets the exponents of the single-peaked waveform. The
// coefficients have no physical meaning of their own.
func (s *Scenario) waveformShape() {
	ta := s.ta
	m := 1 - 1/(1+math.Pow(s.shob, 7)/4.5e-8) -
		((5.958e-3*s.shob*s.shob)/(1+3.682e-7*math.Pow(s.shob, 7)))/(1+math.Pow(s.sgr, 10)/3.052e14)
	s.f = m*((2.627*math.Pow(ta, 0.75))/(1+5.836*ta)+(2341*math.Pow(ta, 2.5))/(1+2.541e6*math.Pow(ta, 4.75)-0.216)) +
		0.7076 - 3.077/(1e-4*math.Pow(ta, -3)+4.367)
	s.g = 10 + m*(77.58-154*math.Pow(ta, 0.125)/(1+1.375*math.Sqrt(ta)))
	s.h = m*((17.69*ta)/(1+1803*math.Pow(ta, 4.25))-(180.5*math.Pow(ta, 1.25))/(1+99140*math.Pow(ta, 4))-1.6) +
		2.753 + 56*ta/(1+1.473e6*math.Pow(ta, 5))
}

// secondPeak sets the parameters of the double-peaked waveform found
// beyond the Mach stem formation range for scaled heights of burst up to
// 116 m.
func (s *Scenario) secondPeak() {
	if s.xm > s.sgr || s.shob > 116 {
		return
	}
	s.doublePeak = true
	xe := 138.3 / (1 + 45.5/s.shob) // range at which the two peaks are equal
	e := math.Max(math.Min(math.Abs((s.sgr-s.xm)/(xe-s.sgr)), 50), 0.02)
	w := 0.583 / (1 + 2477/(s.shob*s.shob))
	d := 0.23 + w + 0.27*e + math.Pow(e, 5)*(0.5-w)
	s.a = (d - 1) * (1 - 1/(1+math.Pow(e, -20)))
	s.dt = math.Max(s.shob/8.186e5*math.Pow(s.sgr-s.xm, 1.25), 1e-12)
	s.v0 = math.Pow(s.shob, 6) / (2445 * (1 + math.Pow(s.shob, 6.75)/3.9e4) * (1 + 9.23*e*e))
	s.c0 = (1.04 - 1.04/(1+3.725e7/math.Pow(s.sgr, 4))) / ((s.a + 1) * (1 + 9.872e8/math.Pow(s.shob, 9)))
}

// Yield returns the burst yield [kT].
func (s *Scenario) Yield() float64 { return s.yield }

// GroundRange returns the ground range of the observation point [m].
func (s *Scenario) GroundRange() float64 { return s.groundRange }

// Height returns the height of burst [m].
func (s *Scenario) Height() float64 { return s.height }

// ScaledGroundRange returns the ground range scaled to 1 kT [m].
func (s *Scenario) ScaledGroundRange() float64 { return s.sgr }

// ScaledHeight returns the height of burst scaled to 1 kT [m].
func (s *Scenario) ScaledHeight() float64 { return s.shob }

// ScaledSlantRange returns the slant range scaled to 1 kT [m].
func (s *Scenario) ScaledSlantRange() float64 { return s.slant }

// Sigma returns the regular/Mach reflection switching parameter: 1 in
// the regular reflection region, 0 in the Mach region and in between
// across the transition.
func (s *Scenario) Sigma() float64 { return s.sigma }

// MachStemFormationRange returns the ground range [m] at which the Mach
// stem forms for this burst.
func (s *Scenario) MachStemFormationRange() float64 { return s.xm * s.w }

// DoublePeak reports whether the overpressure waveform at the observation
// point has two peaks.
func (s *Scenario) DoublePeak() bool { return s.doublePeak }

// RegularReflectionPressure returns the peak overpressure [Pa] the
// regular reflection fit alone would give.
func (s *Scenario) RegularReflectionPressure() float64 { return s.pReg }

// MachReflectionPressure returns the peak overpressure [Pa] the Mach
// reflection fit alone would give.
func (s *Scenario) MachReflectionPressure() float64 { return s.pMach }

// PeakOverpressure returns the peak static overpressure [Pa]:
// σ·P_regular + (1-σ)·P_Mach, with exactly one of the two
// fits used when σ is 0 or 1.
func (s *Scenario) PeakOverpressure() float64 { return s.peak }

// PeakDynamicPressure returns the peak dynamic pressure [Pa], derived
// from the peak overpressure by the Rankine-Hugoniot relations for the
// merged shock front and corrected for obliquity in the regular
// reflection region.
func (s *Scenario) PeakDynamicPressure() float64 {
	n := MassDensityRatio(s.peak)
	sin := math.Sin(s.alpha)
	return 0.5 * s.peak * (n - 1) * (1 - (s.sigma * sin * sin))
}

// TimeOfArrival returns the time [s] after the burst at which the shock
// front reaches the observation point.
func (s *Scenario) TimeOfArrival() float64 { return s.ta * s.w }

// PositivePhaseDuration returns the duration [s] of the overpressure
// positive phase.
func (s *Scenario) PositivePhaseDuration() float64 { return s.dp * s.w }

// DynamicPositivePhaseDuration returns the duration [s] of the dynamic
// pressure positive phase.
func (s *Scenario) DynamicPositivePhaseDuration() float64 { return s.dpq * s.w }
