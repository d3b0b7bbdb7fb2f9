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

package glasstoneutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/lnashier/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/spatialmodel/glasstone"
	"github.com/spatialmodel/glasstone/airblast"
	"github.com/spatialmodel/glasstone/fallout"
	"github.com/spatialmodel/glasstone/soviet"
	"github.com/spatialmodel/glasstone/units"
)

// run executes the command given by args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	var b bytes.Buffer
	Root.SetOutput(&b)
	Root.SetArgs(args)
	Cfg.Set("loglevel", "error")
	err := Root.Execute()
	return b.String(), err
}

// value parses the number at the start of out.
func value(t *testing.T, out string) float64 {
	f := strings.Fields(out)
	require.NotEmpty(t, f, "no output")
	v, err := strconv.ParseFloat(f[0], 64)
	require.NoError(t, err)
	return v
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "glasstoneutil")
	require.NoError(t, err)
	return dir
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("glasstone v%s\n", glasstone.Version), out)
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "1", "mi", "km")
	require.NoError(t, err)
	assert.Equal(t, "1.60934 km\n", out)

	_, err = run(t, "convert", "1", "mi", "psi")
	assert.Error(t, err)
	_, err = run(t, "convert", "one", "mi", "km")
	assert.Error(t, err)
	_, err = run(t, "convert", "1", "mi")
	assert.Error(t, err)
}

func setAirblast(yield, r, h float64) {
	Cfg.Set("Airblast.Yield", yield)
	Cfg.Set("Airblast.Range", r)
	Cfg.Set("Airblast.Height", h)
	Cfg.Set("Airblast.YieldUnits", "kT")
	Cfg.Set("Airblast.DistanceUnits", "m")
	Cfg.Set("Airblast.PressureUnits", "kg/cm^2")
	Cfg.Set("Airblast.Time", 0.0)
}

func TestAirblast(t *testing.T) {
	setAirblast(1, 500, 200)
	s := airblast.NewScenario(1, 500, 200)
	kgcm2 := func(pa float64) float64 { return units.MustConvert(pa, units.Pascal, units.KgPerCm2) }

	out, err := run(t, "airblast", "peak")
	require.NoError(t, err)
	assert.InEpsilon(t, kgcm2(s.PeakOverpressure()), value(t, out), 1e-5)
	assert.Contains(t, out, "kg/cm^2")

	out, err = run(t, "airblast", "dynamic")
	require.NoError(t, err)
	assert.InEpsilon(t, kgcm2(s.PeakDynamicPressure()), value(t, out), 1e-5)

	out, err = run(t, "airblast", "toa")
	require.NoError(t, err)
	assert.InEpsilon(t, s.TimeOfArrival(), value(t, out), 1e-5)

	out, err = run(t, "airblast", "impulse")
	require.NoError(t, err)
	total, err := s.TotalImpulse()
	require.NoError(t, err)
	assert.InEpsilon(t, kgcm2(total), value(t, out), 1e-5)

	Cfg.Set("Airblast.Time", s.TimeOfArrival()+s.PositivePhaseDuration()/2)
	out, err = run(t, "airblast", "impulse")
	require.NoError(t, err)
	partial := value(t, out)
	assert.True(t, partial > 0 && partial < kgcm2(total), "partial impulse %g", partial)
	Cfg.Set("Airblast.Time", 0.0)

	out, err = run(t, "airblast", "duration")
	require.NoError(t, err)
	assert.Contains(t, out, "overpressure: ")
	assert.Contains(t, out, "dynamic pressure: ")

	Cfg.Set("Airblast.Samples", 10)
	out, err = run(t, "airblast", "waveform")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	first := strings.Split(lines[1], "\t")
	assert.InEpsilon(t, s.TimeOfArrival(), value(t, first[0]), 1e-5)
	assert.InEpsilon(t, kgcm2(s.PeakOverpressure()), value(t, first[1]), 1e-5)

	Cfg.Set("Airblast.PressureUnits", "km")
	_, err = run(t, "airblast", "peak")
	assert.Error(t, err)
	Cfg.Set("Airblast.PressureUnits", "kg/cm^2")
}

func TestBrodeAndSoviet(t *testing.T) {
	setAirblast(1, 100, 150)
	want, err := airblast.BrodeOverpressure(1, 100, 150, units.KT, units.Meter, units.KgPerCm2)
	require.NoError(t, err)
	out, err := run(t, "brode")
	require.NoError(t, err)
	assert.InEpsilon(t, want, value(t, out), 1e-5)

	Cfg.Set("Airblast.ThermalLayer", true)
	want, err = soviet.Overpressure(1, 100, 150, true, units.KT, units.Meter, units.KgPerCm2)
	require.NoError(t, err)
	out, err = run(t, "soviet", "overpressure")
	require.NoError(t, err)
	assert.InEpsilon(t, want, value(t, out), 1e-5)

	Cfg.Set("Airblast.Overpressure", want)
	out, err = run(t, "soviet", "range")
	require.NoError(t, err)
	assert.InEpsilon(t, 100, value(t, out), 0.1)
	assert.Contains(t, out, " m\n")
}

func TestThermal(t *testing.T) {
	Cfg.Set("Thermal.Yield", 1000.0)
	Cfg.Set("Thermal.Range", 10.0)
	Cfg.Set("Thermal.Height", 0.0)
	Cfg.Set("Thermal.Visibility", 7)
	Cfg.Set("Thermal.Ground", true)
	Cfg.Set("Thermal.YieldUnits", "kT")
	Cfg.Set("Thermal.DistanceUnits", "km")
	want, err := soviet.GroundThermal(1000, 10, 0, 7, units.KT, units.Kilometer)
	require.NoError(t, err)
	out, err := run(t, "soviet", "thermal")
	require.NoError(t, err)
	assert.InEpsilon(t, want, value(t, out), 1e-5)

	Cfg.Set("Thermal.Fluence", want)
	out, err = run(t, "soviet", "thermalrange")
	require.NoError(t, err)
	assert.InEpsilon(t, 10, value(t, out), 1e-3)
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

func setFallout() {
	for k, v := range map[string]interface{}{
		"Fallout.GZX": 1.0, "Fallout.GZY": 1.0, "Fallout.X": 2.0, "Fallout.Y": 2.0,
		"Fallout.Yield": 0.01, "Fallout.FissionFraction": 1.0,
		"Fallout.WindSpeed": 2.30303, "Fallout.WindDirection": 225.0,
		"Fallout.WindShear": 0.23, "Fallout.TimeOfBurst": 0.0,
		"Fallout.DistanceUnits": "mi", "Fallout.WindUnits": "mph",
		"Fallout.ShearUnits": "mph/kilofoot", "Fallout.YieldUnits": "MT",
		"Fallout.DoseUnits": "Roentgen",
	} {
		Cfg.Set(k, v)
	}
}

func TestFallout(t *testing.T) {
	setFallout()
	w := reference(t)

	out, err := run(t, "fallout", "dose")
	require.NoError(t, err)
	want, err := w.Dose(2, 2, units.Mile, units.Roentgen)
	require.NoError(t, err)
	assert.InEpsilon(t, want, value(t, out), 1e-5)

	out, err = run(t, "fallout", "doserate")
	require.NoError(t, err)
	want, err = w.DoseRateHPlus1(2, 2, units.Mile, units.Roentgen)
	require.NoError(t, err)
	assert.InEpsilon(t, want, value(t, out), 1e-5)
	assert.Contains(t, out, "Roentgen/hr")

	out, err = run(t, "fallout", "toa")
	require.NoError(t, err)
	rx, _, err := w.Hotline(2, 2, units.Mile)
	require.NoError(t, err)
	assert.InEpsilon(t, w.FalloutTOA(rx), value(t, out), 1e-5)

	Cfg.Set("Fallout.DoseUnits", "Sv")
	out, err = run(t, "fallout", "dose")
	require.NoError(t, err)
	want, err = w.Dose(2, 2, units.Mile, units.Sievert)
	require.NoError(t, err)
	assert.InEpsilon(t, want, value(t, out), 1e-5)

	Cfg.Set("Fallout.DoseUnits", "mi")
	_, err = run(t, "fallout", "dose")
	assert.Error(t, err)
	Cfg.Set("Fallout.DoseUnits", "Roentgen")
}

func setGrid(xmin, xmax, xstep, ymin, ymax, ystep float64) {
	Cfg.Set("Grid.XMin", xmin)
	Cfg.Set("Grid.XMax", xmax)
	Cfg.Set("Grid.XStep", xstep)
	Cfg.Set("Grid.YMin", ymin)
	Cfg.Set("Grid.YMax", ymax)
	Cfg.Set("Grid.YStep", ystep)
}

func TestGridDose(t *testing.T) {
	setFallout()
	setGrid(0, 3, 1, 0, 2, 1)
	w := reference(t)

	Cfg.Set("output", "")
	out, err := run(t, "grid", "dose")
	require.NoError(t, err)
	rec, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rec, 3)
	assert.Equal(t, []string{`y\x`, "0", "1", "2"}, rec[0])
	want, err := w.Dose(2, 1, units.Mile, units.Roentgen)
	require.NoError(t, err)
	assert.InEpsilon(t, want, value(t, rec[2][3]), 1e-12)

	dir := tempDir(t)
	defer os.RemoveAll(dir)
	f := filepath.Join(dir, "dose.xlsx")
	Cfg.Set("output", f)
	defer Cfg.Set("output", "")
	_, err = run(t, "grid", "dose")
	require.NoError(t, err)
	x, err := xlsx.OpenFile(f)
	require.NoError(t, err)
	s, ok := x.Sheet["dose"]
	require.True(t, ok)
	v, err := s.Rows[2].Cells[3].Float()
	require.NoError(t, err)
	assert.InEpsilon(t, want, v, 1e-12)
}

func TestGridOverpressure(t *testing.T) {
	setAirblast(1, 0, 0)
	setGrid(100, 200, 50, 100, 200, 50)
	Cfg.Set("output", "")
	for _, model := range []string{"dna", "brode", "soviet"} {
		Cfg.Set("Airblast.Model", model)
		out, err := run(t, "grid", "overpressure")
		require.NoError(t, err, model)
		rec, err := csv.NewReader(strings.NewReader(out)).ReadAll()
		require.NoError(t, err, model)
		require.Len(t, rec, 3, model)
		assert.True(t, value(t, rec[1][1]) > value(t, rec[1][2]), "%s: overpressure should fall with range", model)
	}
	Cfg.Set("Airblast.Model", "kingery")
	_, err := run(t, "grid", "overpressure")
	assert.Error(t, err)
	Cfg.Set("Airblast.Model", "dna")
}

func TestPlots(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	defer Cfg.Set("output", "")

	setFallout()
	setAirblast(16, 1000, 600)
	Cfg.Set("Thermal.Yield", 1000.0)
	Cfg.Set("Thermal.Height", 0.0)
	Cfg.Set("Thermal.Ground", true)
	Cfg.Set("Thermal.Visibilities", []int{3, 4, 7})
	Cfg.Set("Airblast.Samples", 20)

	for _, c := range []struct {
		name                                 string
		xmin, xmax, xstep, ymin, ymax, ystep float64
	}{
		{"dose", -1, 10, 0.5, -1, 10, 0.5},
		{"casualties", -1, 10, 0.5, -1, 10, 0.5},
		{"pressure", 200, 3000, 100, 0, 1, 1},
		{"thermal", 3, 20, 0.5, 0, 1, 1},
		{"comparison", 70, 200, 10, 70, 200, 10},
		{"waveform", 0, 1, 1, 0, 1, 1},
	} {
		t.Run(c.name, func(t *testing.T) {
			if c.name == "comparison" {
				Cfg.Set("Airblast.Yield", 1.0)
			}
			setGrid(c.xmin, c.xmax, c.xstep, c.ymin, c.ymax, c.ystep)
			f := filepath.Join(dir, c.name+".png")
			Cfg.Set("output", f)
			_, err := run(t, "plot", c.name)
			require.NoError(t, err)
			info, err := os.Stat(f)
			require.NoError(t, err)
			assert.True(t, info.Size() > 0)
		})
	}
}

func TestLoadScenario(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	f := filepath.Join(dir, "scenario.toml")
	require.NoError(t, ioutil.WriteFile(f, []byte(`
[Airblast]
Yield = 2.0
DistanceUnits = "ft"

[Thermal]
Visibilities = [1, 2]
`), 0644))
	cfg := viper.New()
	cfg.SetDefault("Airblast.Range", 500.0)
	require.NoError(t, loadScenario(cfg, f))
	assert.Equal(t, 2.0, cfg.GetFloat64("Airblast.Yield"))
	assert.Equal(t, "ft", cfg.GetString("Airblast.DistanceUnits"))
	assert.Equal(t, 500.0, cfg.GetFloat64("Airblast.Range"))
	assert.Equal(t, []int{1, 2}, cfg.Get("Thermal.Visibilities"))

	cfg.Set("Airblast.Yield", 3.0)
	assert.Equal(t, 3.0, cfg.GetFloat64("Airblast.Yield"), "explicit settings win over the scenario file")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, ioutil.WriteFile(bad, []byte("[Airblast]\nYeild = 2.0\n"), 0644))
	assert.Error(t, loadScenario(viper.New(), bad))
	assert.Error(t, loadScenario(viper.New(), filepath.Join(dir, "missing.toml")))
}

func TestUnitOption(t *testing.T) {
	cfg := viper.New()
	cfg.Set("u", "kilometers")
	u, err := unitOption(cfg, "u", units.Distance)
	require.NoError(t, err)
	assert.Equal(t, units.Kilometer, u)

	cfg.Set("u", "psi")
	_, err = unitOption(cfg, "u", units.Distance)
	assert.Error(t, err)
	cfg.Set("u", "furlong")
	_, err = unitOption(cfg, "u", units.Distance)
	assert.Error(t, err)
}

func TestIntsOption(t *testing.T) {
	cfg := viper.New()
	for _, v := range []interface{}{"[3,4,7]", "3, 4, 7", []int{3, 4, 7}, []interface{}{3, "4", 7}} {
		cfg.Set("v", v)
		o, err := intsOption(cfg, "v")
		require.NoError(t, err, "%v", v)
		assert.Equal(t, []int{3, 4, 7}, o, "%v", v)
	}
	cfg.Set("v", "[3,fog]")
	_, err := intsOption(cfg, "v")
	assert.Error(t, err)
}
