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

package plots

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	"github.com/spatialmodel/glasstone/airblast"
	"github.com/spatialmodel/glasstone/fallout"
	"github.com/spatialmodel/glasstone/grid"
	"github.com/spatialmodel/glasstone/units"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func quiet() logrus.FieldLogger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return l
}

func reference(t *testing.T) *fallout.WSEG10 {
	w, err := fallout.NewWSEG10(fallout.Params{
		GZX: 1, GZY: 1,
		Yield:           0.01,
		FissionFraction: 1,
		WindSpeed:       2.30303,
		WindDirection:   225,
		WindShear:       0.23,
		DistanceUnits:   units.Mile,
		WindUnits:       units.MPH,
		ShearUnits:      units.MPHPerKilofoot,
		YieldUnits:      units.MT,
	})
	require.NoError(t, err)
	return w
}

func render(t *testing.T, p *plot.Plot) {
	var b bytes.Buffer
	require.NoError(t, Write(p, &b, "png"))
	assert.True(t, bytes.HasPrefix(b.Bytes(), pngMagic), "not a png")
}

func TestDose(t *testing.T) {
	w := reference(t)
	axis := grid.Axis(-1, 10, 0.25)
	p, g, err := Dose(context.Background(), w, axis, axis, 4, quiet())
	require.NoError(t, err)
	nx, ny := g.Dims()
	assert.Equal(t, len(axis), nx)
	assert.Equal(t, len(axis), ny)
	assert.True(t, g.Max() > DoseLevels[len(DoseLevels)-1], "hotline dose should exceed the top contour")
	assert.True(t, g.Min() >= 0)
	assert.Equal(t, "WSEG-10 30-day total dose contours", p.Title.Text)
	render(t, p)
}

func TestCasualties(t *testing.T) {
	w := reference(t)
	axis := grid.Axis(-1, 10, 0.5)
	p, g, err := Casualties(context.Background(), w, axis, axis, 2, quiet())
	require.NoError(t, err)
	assert.Equal(t, fallout.Certain, g.Max())
	assert.True(t, g.Min() >= 0)
	render(t, p)
}

func TestPressure(t *testing.T) {
	p, err := Pressure(16, 600, grid.Axis(200, 3000, 20), units.Meter, units.KgPerCm2)
	require.NoError(t, err)
	render(t, p)

	_, err = Pressure(16, 600, []float64{200}, units.Meter, units.Unit("furlong"))
	assert.True(t, units.IsUnknownUnit(err))
}

func TestWaveform(t *testing.T) {
	s := airblast.NewScenario(1, 500, 200)
	p, err := Waveform(s, 50)
	require.NoError(t, err)
	render(t, p)

	_, err = Waveform(s, 1)
	assert.Error(t, err)
}

func TestThermal(t *testing.T) {
	ranges := grid.Axis(3, 20, 0.25)
	for _, ground := range []bool{true, false} {
		h := 70.0
		if ground {
			h = 0
		}
		p, err := Thermal(1000, h, ground, ranges, []int{3, 4, 7}, units.Kilometer)
		require.NoError(t, err)
		render(t, p)
	}
}

func TestComparison(t *testing.T) {
	axis := grid.Axis(70, 200, 10)
	p, g, err := Comparison(context.Background(), 1, axis, axis, 4, quiet())
	require.NoError(t, err)
	// The ideal surface model gives higher overpressure than the thermal
	// precursor model everywhere in this window.
	assert.True(t, g.Min() > 0)
	render(t, p)
}

func TestSave(t *testing.T) {
	dir, err := ioutil.TempDir("", "glasstone-plots")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	p, err := Waveform(airblast.NewScenario(1, 500, 200), 20)
	require.NoError(t, err)
	for _, name := range []string{"waveform.png", "waveform.svg"} {
		f := filepath.Join(dir, name)
		require.NoError(t, Save(p, f))
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.True(t, info.Size() > 0)
	}
	assert.Error(t, Save(p, filepath.Join(dir, "waveform")))
}
