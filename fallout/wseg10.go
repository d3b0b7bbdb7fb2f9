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

// Package fallout implements the WSEG-10 fallout model as documented in
// Dan W. Hanifen, "Documentation and Analysis of the WSEG-10 Fallout
// Prediction Model," Thesis, Air Force Institute of Technology, March 1980.
//
// WSEG-10 does not predict an actual fallout pattern. It gives a plausible
// "mean case" field: an elliptical region following the hotline downwind
// from ground zero, with a Gaussian crosswind distribution and an upwind
// correction factor.
package fallout

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"

	"github.com/spatialmodel/glasstone/units"
)

// Params holds the inputs for a WSEG-10 fallout field. Empty unit fields
// take the defaults km, km/h, m/s-km and kT.
type Params struct {
	// GZX and GZY are the coordinates of ground zero.
	GZX, GZY float64

	Yield float64

	// FissionFraction is the fraction of the yield from fission,
	// 0 < FissionFraction <= 1.
	FissionFraction float64

	WindSpeed float64

	// WindDirection is the direction the wind blows from in degrees,
	// 0 = N, 90 = E.
	WindDirection float64

	WindShear float64

	// TimeOfBurst is in hours.
	TimeOfBurst float64

	DistanceUnits, WindUnits, ShearUnits, YieldUnits units.Unit
}

func (p *Params) setDefaults() {
	if p.DistanceUnits == "" {
		p.DistanceUnits = units.Kilometer
	}
	if p.WindUnits == "" {
		p.WindUnits = units.KmPerHour
	}
	if p.ShearUnits == "" {
		p.ShearUnits = units.MPerSPerKm
	}
	if p.YieldUnits == "" {
		p.YieldUnits = units.KT
	}
}

// Constants are the derived WSEG-10 parameters of a fallout field, in
// statute miles, mph and hours.
type Constants struct {
	// Hc is the cloud center height [kilofeet].
	Hc float64

	// Sigma0 is the initial cloud radius scale.
	Sigma0 float64

	// SigmaH is the vertical cloud thickness scale.
	SigmaH float64

	// Tc is the time constant [h].
	Tc float64

	// L0 is the downwind transport distance within Tc.
	L0 float64

	// SigmaX is the downwind spread.
	SigmaX float64

	// L is the total downwind length scale.
	L float64

	// N is the shape exponent of the deposition function.
	N float64

	// Alpha1 is the downwind asymmetry factor.
	Alpha1 float64
}

// WSEG10 is an immutable fallout field. All of its methods are safe for
// concurrent use.
type WSEG10 struct {
	gzx, gzy float64 // mi
	yield    float64 // MT
	ff       float64
	wind     float64 // mph
	wd       float64
	shear    float64 // mph/kilofoot
	tob      float64

	hc, s0, s02, sh, tc float64
	l0, l02, sx, sx2    float64
	l, l2, n, a1        float64

	distanceUnits units.Unit
	hotline       proj.Transformer
}

// NewWSEG10 builds the fallout field for p. It only fails when one of
// p's units is unknown or of the wrong kind.
func NewWSEG10(p Params) (*WSEG10, error) {
	p.setDefaults()
	w := &WSEG10{
		ff:            p.FissionFraction,
		wd:            p.WindDirection,
		tob:           p.TimeOfBurst,
		distanceUnits: p.DistanceUnits,
	}
	for _, c := range []struct {
		v    float64
		from units.Unit
		to   units.Unit
		dst  *float64
		what string
	}{
		{p.GZX, p.DistanceUnits, units.Mile, &w.gzx, "ground zero"},
		{p.GZY, p.DistanceUnits, units.Mile, &w.gzy, "ground zero"},
		{p.Yield, p.YieldUnits, units.MT, &w.yield, "yield"},
		{p.WindSpeed, p.WindUnits, units.MPH, &w.wind, "wind speed"},
		{p.WindShear, p.ShearUnits, units.MPHPerKilofoot, &w.shear, "wind shear"},
	} {
		v, err := units.Convert(c.v, c.from, c.to)
		if err != nil {
			return nil, fmt.Errorf("fallout: %s: %w", c.what, err)
		}
		*c.dst = v
	}

	lny := math.Log(w.yield)
	d := lny + 2.42
	w.hc = 44 + 6.1*lny - 0.205*math.Abs(d)*d
	w.s0 = math.Exp(0.7 + lny/3 - 3.25/(4.0+math.Pow(lny+5.4, 2)))
	w.s02 = w.s0 * w.s0
	w.sh = 0.18 * w.hc
	w.tc = 1.0573203 * (12*(w.hc/60) - 2.5*math.Pow(w.hc/60, 2)) * (1 - 0.5*math.Exp(-1*math.Pow(w.hc/25, 2)))
	w.l0 = w.wind * w.tc
	w.l02 = w.l0 * w.l0
	w.sx2 = w.s02 * (w.l02 + 8*w.s02) / (w.l02 + 2*w.s02)
	w.sx = math.Sqrt(w.sx2)
	w.l2 = w.l02 + 2*w.sx2
	w.l = math.Sqrt(w.l2)
	w.n = (w.ff*w.l02 + w.sx2) / (w.l02 + 0.5*w.sx2)
	w.a1 = 1 / (1 + ((0.001 * w.hc * w.wind) / w.s0))
	w.hotline = hotlineTransform(w.gzx, w.gzy, w.wd)
	return w, nil
}

// hotlineTransform moves the origin to ground zero and rotates by
// wd - 270 degrees so that the downwind direction lies along +x.
func hotlineTransform(gzx, gzy, wd float64) proj.Transformer {
	sin, cos := sinCosDeg(wd - 270)
	return func(x, y float64) (float64, float64, error) {
		dx, dy := x-gzx, y-gzy
		return dx*cos - dy*sin, dx*sin + dy*cos, nil
	}
}

// sinCosDeg is exact at multiples of 90 degrees.
func sinCosDeg(deg float64) (sin, cos float64) {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	switch d {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}
	return math.Sincos(deg * math.Pi / 180)
}

// Constants returns the derived parameters of the field.
func (w *WSEG10) Constants() Constants {
	return Constants{
		Hc:     w.hc,
		Sigma0: w.s0,
		SigmaH: w.sh,
		Tc:     w.tc,
		L0:     w.l0,
		SigmaX: w.sx,
		L:      w.l,
		N:      w.n,
		Alpha1: w.a1,
	}
}

// TimeOfBurst returns the time of burst [h].
func (w *WSEG10) TimeOfBurst() float64 { return w.tob }

// Hotline returns the downwind (rx) and crosswind (ry) coordinates [mi]
// of the point (x, y), given in units du, relative to the hotline.
func (w *WSEG10) Hotline(x, y float64, du units.Unit) (rx, ry float64, err error) {
	xm, err := units.Convert(x, du, units.Mile)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	ym, err := units.Convert(y, du, units.Mile)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	g, err := geom.Point{X: xm, Y: ym}.Transform(w.hotline)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	p := g.(geom.Point)
	return p.X, p.Y, nil
}

// G is the fallout deposition distribution function: the fractional
// rate of activity arrival on the ground at downwind distance x [mi].
// It is independent of the crosswind distribution.
func (w *WSEG10) G(x float64) float64 {
	return math.Exp(-math.Pow(math.Abs(x)/w.l, w.n)) / (w.l * math.Gamma(1+1/w.n))
}

// Phi is the normalized downwind and upwind distribution at downwind
// distance x [mi]. It admits some upwind fallout while preserving the
// total deposited activity.
func (w *WSEG10) Phi(x float64) float64 {
	return normalCDF((w.l0 / w.l) * (x / (w.sx * w.a1)))
}

// normalCDF is the standard normal CDF. It is evaluated with Erfc so that
// it keeps its relative precision far into the lower tail.
func normalCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// DoseRateHPlus1 returns the dose rate one hour after the burst at (x, y),
// in units du, converted to dose units doseu. It includes the activity
// that will arrive later, not only what is down at H+1.
func (w *WSEG10) DoseRateHPlus1(x, y float64, du, doseu units.Unit) (float64, error) {
	rx, ry, err := w.Hotline(x, y, du)
	if err != nil {
		return math.NaN(), err
	}
	xm, err := units.Convert(x, du, units.Mile)
	if err != nil {
		return math.NaN(), err
	}
	return units.Convert(w.doseRate(xm, rx, ry), units.Roentgen, doseu)
}

// doseRate is the H+1 dose rate [R/h] at hotline coordinates rx, ry. x is
// the untransformed x coordinate [mi], which the crosswind asymmetry
// correction uses.
func (w *WSEG10) doseRate(x, rx, ry float64) float64 {
	fx := w.yield * 2e6 * w.Phi(rx) * w.G(rx) * w.ff
	k := w.sx * w.tc * w.sh * w.shear
	m := (rx + 2*w.sx) * w.l0 * w.tc * w.sh * w.shear
	sy := math.Sqrt(w.s02 + ((8 * math.Abs(rx+2*w.sx) * w.s02) / w.l) +
		(2*k*k)/w.l2 + (m*m)/math.Pow(w.l, 4))
	a2 := 1 / (1 + ((0.001*w.hc*w.wind)/w.s0)*(1-normalCDF(2*x/w.wind)))
	fy := math.Exp(-0.5*math.Pow(ry/(a2*sy), 2)) / (math.Sqrt(2*math.Pi) * sy)
	return fx * fy
}

// FalloutTOA returns the average fallout time of arrival [h] at downwind
// distance x [mi]. Fallout never arrives earlier than 0.5 h.
func (w *WSEG10) FalloutTOA(x float64) float64 {
	const t1 = 1.0
	arg := 0.25 + (w.l02*(x+2*w.sx2)*w.tc*w.tc)/(w.l2*(w.l02+0.5*w.sx2)) +
		((2 * w.sx2 * t1 * t1) / (w.l02 + 0.5*w.sx))
	return math.Sqrt(math.Max(arg, 0.25))
}

// Bio converts an H+1 dose rate to a 30 day equivalent residual dose for
// fallout arriving at time ta [h]. Ten percent of the dose is taken to be
// irreparable and the rest reparable with a thirty day time constant.
func Bio(ta float64) float64 {
	r := ta / 31.6
	return math.Exp(-(0.287 + 0.52*math.Log(r) + 0.04475*math.Log(r*r)))
}

// Dose returns the equivalent residual dose at (x, y), in units du, from
// the time of fallout arrival to 30 days, converted to dose units doseu.
func (w *WSEG10) Dose(x, y float64, du, doseu units.Unit) (float64, error) {
	rx, _, err := w.Hotline(x, y, du)
	if err != nil {
		return math.NaN(), err
	}
	rate, err := w.DoseRateHPlus1(x, y, du, doseu)
	if err != nil {
		return math.NaN(), err
	}
	return rate * Bio(w.FalloutTOA(rx)), nil
}

// DistanceUnits returns the units ground zero was given in, which
// callers typically reuse for queries.
func (w *WSEG10) DistanceUnits() units.Unit { return w.distanceUnits }
