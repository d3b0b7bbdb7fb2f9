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

import "math"

// SeaLevelPressure is the ambient pressure the DNA fits assume [Pa].
const SeaLevelPressure = 101325.0

// FreeAir1kTOverpressure returns the peak overpressure [Pa] at slant
// range r [m] from a 1 kT free-air burst at sea level, according to the
// Defense Nuclear Agency 1 kT free-air standard.
func FreeAir1kTOverpressure(r float64) float64 {
	return 3.04e11/math.Pow(r, 3) + 1.13e9/math.Pow(r, 2) +
		7.9e6/(r*math.Pow(math.Log(r/445.42+3*math.Exp(math.Sqrt(r/445.42)/-3.0)), 0.5))
}

// FreeAir1kTDynamicPressure returns the peak dynamic pressure [Pa] at
// slant range r [m] from a 1 kT free-air burst at sea level.
func FreeAir1kTDynamicPressure(r float64) float64 {
	op := FreeAir1kTOverpressure(r)
	return 0.5 * op * (MassDensityRatio(op) - 1)
}

// FreeAir1kTArrivalTime returns the time [s] for the shock front from a
// 1 kT free-air burst at sea level to travel slant range r [m].
func FreeAir1kTArrivalTime(r float64) float64 {
	r2 := r * r
	return (r2 * (6.7 + r)) / (7.12e6 + 7.32e4*r + 340.5*r2)
}

// FreeAirPeakOverpressure returns the peak overpressure [Pa] at slant
// range r [m] from a free-air burst of yield y [kT] at altitude alt [m].
func FreeAirPeakOverpressure(r, y, alt float64) float64 {
	r1 := r / (AltitudeSD(alt) * math.Pow(y, 1.0/3))
	return FreeAir1kTOverpressure(r1) * AltitudeSP(alt)
}

// FreeAirPeakDynamicPressure returns the peak dynamic pressure [Pa] at
// slant range r [m] from a free-air burst of yield y [kT] at altitude alt [m].
func FreeAirPeakDynamicPressure(r, y, alt float64) float64 {
	r1 := r / (AltitudeSD(alt) * math.Pow(y, 1.0/3))
	return FreeAir1kTDynamicPressure(r1) * AltitudeSP(alt)
}

// FreeAirArrivalTime returns the shock arrival time [s] at slant range
// r [m] from a free-air burst of yield y [kT] at altitude alt [m].
func FreeAirArrivalTime(r, y, alt float64) float64 {
	w := math.Pow(y, 1.0/3)
	r1 := r / (AltitudeSD(alt) * w)
	return FreeAir1kTArrivalTime(r1) * AltitudeST(alt) * w
}

// Altitude scaling factors. Altitudes below sea level are treated as
// lying in the lowest atmospheric layer.

// AltitudeT returns the ratio of ambient temperature at altitude alt [m]
// to that at sea level.
func AltitudeT(alt float64) float64 {
	switch {
	case alt < 11000:
		return 1 - math.Pow(2e9, -0.5)*alt
	case alt < 20000:
		return 0.7535 * (1 + 2.09e-7*alt)
	default:
		return 0.684 * (1 + 5.16e-6*alt)
	}
}

// AltitudeP returns the ratio of ambient pressure at altitude alt [m]
// to that at sea level.
func AltitudeP(alt float64) float64 {
	switch {
	case alt < 11000:
		return math.Pow(AltitudeT(alt), 5.3)
	case alt < 20000:
		return math.Pow(1.6, 0.5) * math.Pow(1+2.09e-7*alt, -754)
	default:
		return 1.4762 * math.Pow(1+5.16e-6*alt, -33.6)
	}
}

// AltitudeSP is the pressure scaling factor at altitude alt [m].
func AltitudeSP(alt float64) float64 { return AltitudeP(alt) }

// AltitudeSD is the distance scaling factor at altitude alt [m].
func AltitudeSD(alt float64) float64 { return math.Pow(AltitudeSP(alt), -1.0/3) }

// AltitudeST is the time scaling factor at altitude alt [m].
func AltitudeST(alt float64) float64 {
	return AltitudeSD(alt) * math.Pow(AltitudeT(alt), -0.5)
}

// SpeedOfSound returns the speed of sound [m/s] at altitude alt [m].
// As a rule of thumb it increases 1.8% for each 10 °C rise above 15 °C.
func SpeedOfSound(alt float64) float64 {
	return (340.5 * AltitudeSD(alt)) / AltitudeST(alt)
}

// Rankine-Hugoniot relations for a shock of peak overpressure op [Pa]
// propagating into sea-level air.

// ShockStrength returns the ratio of shock-front to ambient pressure.
func ShockStrength(op float64) float64 {
	return op/SeaLevelPressure + 1
}

// ShockGamma returns the effective ratio of specific heats behind the shock.
func ShockGamma(op float64) float64 {
	xi := ShockStrength(op)
	t := 1e-12 * math.Pow(xi, 6)
	z := math.Log(xi) - (0.47*t)/(100+t)
	return 1.402 - (3.4e-4*math.Pow(z, 4))/(1+2.22e-5*math.Pow(z, 6))
}

func shockMu(g float64) float64 {
	return (g + 1) / (g - 1)
}

// MassDensityRatio returns the ratio of air density behind the shock
// to ambient density.
func MassDensityRatio(op float64) float64 {
	xi := ShockStrength(op)
	mu := shockMu(ShockGamma(op))
	return (1 + mu*xi) / (5.975 + xi)
}

// NormalReflectionFactor returns the ratio of reflected to incident
// overpressure for a shock striking a surface head-on.
func NormalReflectionFactor(op float64) float64 {
	g := ShockGamma(op)
	n := MassDensityRatio(op)
	return 2 + ((g+1)*(n-1))/2
}

// PeakParticleMachNumber returns the peak Mach number of the air
// behind a free-air shock of peak overpressure pfree [Pa].
func PeakParticleMachNumber(pfree float64) float64 {
	n := MassDensityRatio(pfree)
	return math.Sqrt((pfree * (1 - (1 / n))) / 142000)
}

// ShockFrontMachNumber returns the Mach number of a free-air shock front
// of peak overpressure pfree [Pa].
func ShockFrontMachNumber(pfree float64) float64 {
	n := MassDensityRatio(pfree)
	return PeakParticleMachNumber(pfree) / (1 - 1/n)
}
