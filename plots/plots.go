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

// Package plots draws figures of nuclear weapons effects with gonum/plot.
package plots

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/spatialmodel/glasstone/airblast"
	"github.com/spatialmodel/glasstone/fallout"
	"github.com/spatialmodel/glasstone/graph"
	"github.com/spatialmodel/glasstone/grid"
	"github.com/spatialmodel/glasstone/soviet"
	"github.com/spatialmodel/glasstone/units"
)

// DoseLevels are the equivalent residual dose contour levels [R].
var DoseLevels = []float64{500, 1000, 3000, 10000, 20000}

// CasualtyLevels are the fatality fraction contour levels.
var CasualtyLevels = []float64{0.1, 0.5, 0.75, 0.95, 1.0}

// levelColors are blue, green, cyan, yellow and red.
var levelColors = []color.Color{
	color.NRGBA{B: 255, A: 255},
	color.NRGBA{G: 128, A: 255},
	color.NRGBA{G: 191, B: 191, A: 255},
	color.NRGBA{R: 191, G: 191, A: 255},
	color.NRGBA{R: 255, A: 255},
}

// colors is a fixed palette.
type colors []color.Color

func (c colors) Colors() []color.Color { return c }

const lineWidth = 2

func newPlot(title, xlabel, ylabel string) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p, nil
}

// addContours draws one contour per level, each in its own color, and adds
// a legend entry for it labeled with format.
func addContours(p *plot.Plot, g plotter.GridXYZ, levels []float64, format string) {
	for i, l := range levels {
		c := levelColors[i%len(levelColors)]
		ct := plotter.NewContour(g, []float64{l}, colors{c})
		// A single-color palette around the level keeps every branch of the
		// contour color selection on c.
		ct.Min, ct.Max = l-1, l+1
		ct.Underflow, ct.Overflow = c, c
		ls := draw.LineStyle{Color: c, Width: vg.Points(lineWidth)}
		ct.LineStyles = []draw.LineStyle{ls}
		p.Add(ct)
		p.Legend.Add(fmt.Sprintf(format, l), &plotter.Line{LineStyle: ls})
	}
}

// addLine adds a named line to p in the color at index i.
func addLine(p *plot.Plot, i int, name string, xys plotter.XYs) error {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("plots: %s: %v", name, err)
	}
	l.Color = levelColors[i%len(levelColors)]
	l.Width = vg.Points(lineWidth)
	p.Add(l)
	p.Legend.Add(name, l)
	return nil
}

// Dose evaluates the WSEG-10 equivalent residual dose [R] at every point of
// xs × ys, which are in w's distance units, and draws the DoseLevels
// contours.
func Dose(ctx context.Context, w *fallout.WSEG10, xs, ys []float64, workers int, log logrus.FieldLogger) (*plot.Plot, *grid.Grid, error) {
	du := w.DistanceUnits()
	g, err := grid.Evaluate(ctx, xs, ys, func(x, y float64) (float64, error) {
		return w.Dose(x, y, du, units.Roentgen)
	}, workers, log)
	if err != nil {
		return nil, nil, err
	}
	p, err := newPlot("WSEG-10 30-day total dose contours", string(du), string(du))
	if err != nil {
		return nil, nil, err
	}
	addContours(p, g, DoseLevels, "%g R")
	return p, g, nil
}

// Casualties is like Dose but draws the probability of death for an
// unsheltered individual at the CasualtyLevels.
func Casualties(ctx context.Context, w *fallout.WSEG10, xs, ys []float64, workers int, log logrus.FieldLogger) (*plot.Plot, *grid.Grid, error) {
	du := w.DistanceUnits()
	g, err := grid.Evaluate(ctx, xs, ys, func(x, y float64) (float64, error) {
		erd, err := w.Dose(x, y, du, units.Roentgen)
		if err != nil {
			return 0, err
		}
		return fallout.FatalityFraction(erd), nil
	}, workers, log)
	if err != nil {
		return nil, nil, err
	}
	p, err := newPlot("WSEG-10 probability of death for unsheltered individual", string(du), string(du))
	if err != nil {
		return nil, nil, err
	}
	addContours(p, g, CasualtyLevels, "%g")
	return p, g, nil
}

// Pressure draws DNA peak static overpressure and peak dynamic pressure
// against ground range for a burst of yield y [kT] at height h. ranges
// and h are in units du and pressures are reported in units pu.
func Pressure(y, h float64, ranges []float64, du, pu units.Unit) (*plot.Plot, error) {
	static := make(plotter.XYs, len(ranges))
	dynamic := make(plotter.XYs, len(ranges))
	for i, r := range ranges {
		sp, err := airblast.StaticOverpressure(y, r, h, units.KT, du, pu)
		if err != nil {
			return nil, err
		}
		dp, err := airblast.DynamicPressure(y, r, h, units.KT, du, pu)
		if err != nil {
			return nil, err
		}
		static[i].X, static[i].Y = r, sp
		dynamic[i].X, dynamic[i].Y = r, dp
	}
	p, err := newPlot(fmt.Sprintf("peak pressures for %g kT burst at %g %s", y, h, du),
		fmt.Sprintf("ground range (%s)", du), fmt.Sprintf("pressure (%s)", pu))
	if err != nil {
		return nil, err
	}
	if err := addLine(p, 4, "static overpressure", static); err != nil {
		return nil, err
	}
	if err := addLine(p, 0, "dynamic pressure", dynamic); err != nil {
		return nil, err
	}
	return p, nil
}

// Waveform draws the overpressure and dynamic pressure histories [Pa] of
// s over the longer of its two positive phases, sampled at n times.
func Waveform(s *airblast.Scenario, n int) (*plot.Plot, error) {
	if n < 2 {
		return nil, fmt.Errorf("plots: waveform needs at least 2 samples, got %d", n)
	}
	ta := s.TimeOfArrival()
	dp := s.PositivePhaseDuration()
	dpq := s.DynamicPositivePhaseDuration()
	end := ta + dp
	if ta+dpq > end {
		end = ta + dpq
	}
	static := make(plotter.XYs, 0, n)
	dynamic := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		t := ta + (end-ta)*float64(i)/float64(n-1)
		if t <= ta+dp {
			static = static[:len(static)+1]
			static[len(static)-1].X, static[len(static)-1].Y = t, s.OverpressureAt(t)
		}
		if t <= ta+dpq {
			dynamic = dynamic[:len(dynamic)+1]
			dynamic[len(dynamic)-1].X, dynamic[len(dynamic)-1].Y = t, s.DynamicPressureAt(t)
		}
	}
	p, err := newPlot(fmt.Sprintf("waveform at %g m from %g kT burst at %g m",
		s.GroundRange(), s.Yield(), s.Height()), "time (s)", "pressure (Pa)")
	if err != nil {
		return nil, err
	}
	if err := addLine(p, 4, "overpressure", static); err != nil {
		return nil, err
	}
	if len(dynamic) > 1 {
		if err := addLine(p, 0, "dynamic pressure", dynamic); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// visibilityNames describes the International Visibility Codes.
var visibilityNames = map[int]string{
	1: "dense fog",
	2: "thick fog",
	3: "light fog",
	4: "smog",
	5: "haze",
	6: "light haze",
	7: "clear air",
	8: "very clear air",
	9: "exceptionally clear air",
}

// Thermal draws the Soviet total thermal impulse [cal/cm²] against slant
// range for a burst of yield y [kT] at height h, one line per visibility
// code. ranges and h are in units du. When ground is true the ground burst
// model is used. Ranges beyond the captured graphs give zero impulse.
func Thermal(y, h float64, ground bool, ranges []float64, visibilities []int, du units.Unit) (*plot.Plot, error) {
	model, kind := soviet.AirThermal, "airburst"
	if ground {
		model, kind = soviet.GroundThermal, "groundburst"
	}
	p, err := newPlot(fmt.Sprintf("total thermal impulse from %g kT %s", y, kind),
		fmt.Sprintf("slant range (%s)", du), "total thermal impulse (cal/cm²)")
	if err != nil {
		return nil, err
	}
	for i, ivc := range visibilities {
		ivc := ivc
		f := graph.WithFallback(func(r float64) (float64, error) {
			return model(y, r, h, ivc, units.KT, du)
		}, graph.Constant(0))
		xys := make(plotter.XYs, len(ranges))
		for j, r := range ranges {
			v, err := f(r)
			if err != nil {
				return nil, err
			}
			xys[j].X, xys[j].Y = r, v
		}
		name := fmt.Sprintf("IVC=%d", ivc)
		if n, ok := visibilityNames[ivc]; ok {
			name = fmt.Sprintf("%s (IVC=%d)", n, ivc)
		}
		if err := addLine(p, i, name, xys); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Comparison draws a heat map of the difference between the Brode (ideal
// surface) and Soviet (thermal precursor) peak static overpressures
// [kg/cm²] for a burst of yield y [kT], over burst heights × ground
// ranges in meters.
func Comparison(ctx context.Context, y float64, heights, ranges []float64, workers int, log logrus.FieldLogger) (*plot.Plot, *grid.Grid, error) {
	g, err := grid.Evaluate(ctx, heights, ranges, func(h, r float64) (float64, error) {
		us, err := airblast.BrodeOverpressure(y, r, h, units.KT, units.Meter, units.KgPerCm2)
		if err != nil {
			return 0, err
		}
		su, err := soviet.Overpressure(y, r, h, true, units.KT, units.Meter, units.KgPerCm2)
		if err != nil {
			return 0, err
		}
		return us - su, nil
	}, workers, log)
	if err != nil {
		return nil, nil, err
	}
	p, err := newPlot(fmt.Sprintf("U.S. minus Soviet peak static overpressure for %g kT burst (kg/cm²)", y),
		"burst height (m)", "ground range (m)")
	if err != nil {
		return nil, nil, err
	}
	cm := moreland.SmoothBlueRed()
	lo, hi := g.Min(), g.Max()
	if lo == hi {
		hi = lo + 1
	}
	cm.SetMin(lo)
	cm.SetMax(hi)
	p.Add(plotter.NewHeatMap(g, cm.Palette(255)))
	return p, g, nil
}

// Size is the default figure size.
const Size = 6 * vg.Inch

// Write renders p to w in the given format ("png", "svg", "pdf", ...).
func Write(p *plot.Plot, w io.Writer, format string) error {
	wt, err := p.WriterTo(Size, Size, format)
	if err != nil {
		return fmt.Errorf("plots: %v", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save renders p to the named file, choosing the format from its
// extension.
func Save(p *plot.Plot, filename string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if format == "" {
		return fmt.Errorf("plots: no file extension in %q", filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(p, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
