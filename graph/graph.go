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

// Package graph interpolates over curves digitized from printed graphs and
// nomograms. A lookup outside the range of the digitized data is an
// error rather than an extrapolation; callers that want a substitute
// value (for example when filling a plotting grid) say so explicitly with
// Or or WithFallback.
package graph

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// OutsideError reports a lookup whose argument lies outside the domain
// captured by the digitized source data.
type OutsideError struct {
	Value, Min, Max float64
}

func (e *OutsideError) Error() string {
	return fmt.Sprintf("graph: value %g is outside of the captured domain [%g, %g]", e.Value, e.Min, e.Max)
}

// IsOutside reports whether err is or wraps an *OutsideError.
func IsOutside(err error) bool {
	var e *OutsideError
	return errors.As(err, &e)
}

// Outside returns an *OutsideError for value v, for models whose valid
// domain is a set of discrete inputs rather than a range.
func Outside(v float64) error {
	return &OutsideError{Value: v, Min: math.NaN(), Max: math.NaN()}
}

// Curve is a digitized curve: Y as a piecewise-linear function of X.
// X is sorted in ascending order and may contain repeated values.
// Lookups are only valid inside [Lo, Hi].
type Curve struct {
	X, Y   []float64
	Lo, Hi float64
}

// NewCurve returns the curve through the points (x[i], y[i]). The points
// are sorted by x, and the captured domain spans the smallest to the largest x.
// It panics if x and y differ in length or are empty.
func NewCurve(x, y []float64) Curve {
	if len(x) != len(y) || len(x) == 0 {
		panic(fmt.Errorf("graph: curve has %d x values and %d y values", len(x), len(y)))
	}
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return x[idx[i]] < x[idx[j]] })
	c := Curve{X: make([]float64, len(x)), Y: make([]float64, len(y))}
	for i, j := range idx {
		c.X[i] = x[j]
		c.Y[i] = y[j]
	}
	c.Lo, c.Hi = c.X[0], c.X[len(c.X)-1]
	return c
}

// WithDomain returns a copy of c that accepts lookups in [lo, hi]. Some
// source graphs are valid to the left of their first digitized point
// (down to zero range, for example); lookups there take the value of the
// nearest point.
func (c Curve) WithDomain(lo, hi float64) Curve {
	c.Lo, c.Hi = lo, hi
	return c
}

// Interp returns the linearly interpolated value of the curve at x.
// Both ends of the domain are inclusive.
func (c Curve) Interp(x float64) (float64, error) {
	if !(c.Lo <= x && x <= c.Hi) {
		return math.NaN(), &OutsideError{Value: x, Min: c.Lo, Max: c.Hi}
	}
	return Linear(x, c.X, c.Y), nil
}

// Reverse returns the inverse curve, giving X as a function of Y, for
// inverse lookups. Its domain spans the range of Y.
func (c Curve) Reverse() Curve {
	return NewCurve(c.Y, c.X)
}

// Linear interpolates the value at x of the piecewise-linear function
// through the points (xp[i], fp[i]), where xp is sorted in ascending order.
// Outside the range of xp it returns the first or last value of fp.
func Linear(x float64, xp, fp []float64) float64 {
	n := len(xp)
	// j is the last point at or to the left of x.
	j := sort.Search(n, func(i int) bool { return xp[i] > x }) - 1
	switch {
	case j < 0:
		return fp[0]
	case j >= n-1:
		return fp[n-1]
	}
	slope := (fp[j+1] - fp[j]) / (xp[j+1] - xp[j])
	return slope*(x-xp[j]) + fp[j]
}

// Lerp10 returns 10^o, where o is the linear interpolation at h of the
// line through (h1, o1) and (h2, o2). Values of h outside [h1, h2]
// take the nearest end value.
func Lerp10(h, h1, h2, o1, o2 float64) float64 {
	return math.Pow(10, Linear(h, []float64{h1, h2}, []float64{o1, o2}))
}

// Func is a graph-backed function.
type Func func(x float64) (float64, error)

// Or returns v when err is nil and fallback when err is an
// *OutsideError. Any other error is passed through.
func Or(v float64, err error, fallback float64) (float64, error) {
	if err == nil {
		return v, nil
	}
	if IsOutside(err) {
		return fallback, nil
	}
	return v, err
}

// WithFallback returns a Func that evaluates f, substituting fallback(x)
// wherever x is outside of f's captured domain.
func WithFallback(f Func, fallback func(x float64) float64) Func {
	return func(x float64) (float64, error) {
		v, err := f(x)
		if err != nil && IsOutside(err) {
			return fallback(x), nil
		}
		return v, err
	}
}

// Constant returns a fallback function that always returns v.
func Constant(v float64) func(float64) float64 {
	return func(float64) float64 { return v }
}
