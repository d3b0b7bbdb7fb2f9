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
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"github.com/spatialmodel/glasstone/fallout"
	"github.com/spatialmodel/glasstone/grid"
	"github.com/spatialmodel/glasstone/units"
)

// Scenario holds the contents of a scenario file. Each section sets the
// options of the same name, so for example the Yield field of the
// Airblast section sets the Airblast.Yield option. Values given on the
// command line or in the environment take precedence.
type Scenario struct {
	Fallout struct {
		GZX, GZY        float64
		X, Y            float64
		Yield           float64
		FissionFraction float64
		WindSpeed       float64
		WindDirection   float64
		WindShear       float64
		TimeOfBurst     float64
		DistanceUnits   string
		WindUnits       string
		ShearUnits      string
		YieldUnits      string
		DoseUnits       string
	}

	Airblast struct {
		Yield, Range, Height float64
		Time                 float64
		Overpressure         float64
		ThermalLayer         bool
		Model                string
		Samples              int
		YieldUnits           string
		DistanceUnits        string
		PressureUnits        string
	}

	Thermal struct {
		Yield, Range, Height float64
		Fluence              float64
		Visibility           int
		Visibilities         []int
		Ground               bool
		YieldUnits           string
		DistanceUnits        string
	}
}

// loadScenario reads the scenario file at path into cfg. Only the
// options present in the file are set, and they are set as defaults so
// that flags and environment variables override them.
func loadScenario(cfg *viper.Viper, path string) error {
	var s Scenario
	md, err := toml.DecodeFile(os.ExpandEnv(path), &s)
	if err != nil {
		return fmt.Errorf("glasstone: reading scenario file: %v", err)
	}
	if u := md.Undecoded(); len(u) > 0 {
		return fmt.Errorf("glasstone: unknown option(s) in scenario file %s: %v", path, u)
	}
	v := reflect.ValueOf(s)
	for _, k := range md.Keys() {
		if len(k) != 2 {
			continue
		}
		section := v.FieldByNameFunc(func(n string) bool { return strings.EqualFold(n, k[0]) })
		if !section.IsValid() {
			continue
		}
		field := section.FieldByNameFunc(func(n string) bool { return strings.EqualFold(n, k[1]) })
		if !field.IsValid() {
			continue
		}
		cfg.SetDefault(k.String(), field.Interface())
	}
	return nil
}

// setConfig finds and reads in the configuration and scenario files, if
// there are any, and configures logging.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("glasstone: problem reading configuration file: %v", err)
		}
	}
	if path := Cfg.GetString("scenario"); path != "" {
		if err := loadScenario(Cfg, path); err != nil {
			return err
		}
	}
	return setLogger(logrus.StandardLogger(), Cfg.GetString("loglevel"))
}

// setLogger sets the level and format of log.
func setLogger(log *logrus.Logger, level string) error {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("glasstone: %v", err)
	}
	log.SetLevel(l)
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	return nil
}

// unitOption returns the unit held in option name, checking that it
// measures kind k.
func unitOption(cfg *viper.Viper, name string, k units.Kind) (units.Unit, error) {
	u, err := units.Parse(os.ExpandEnv(cfg.GetString(name)))
	if err != nil {
		return "", fmt.Errorf("glasstone: %s: %v", name, err)
	}
	if err := units.Check(u, k); err != nil {
		return "", fmt.Errorf("glasstone: %s: %v", name, err)
	}
	return u, nil
}

// floatOption returns option name as a float64, failing on values that
// cannot be converted.
func floatOption(cfg *viper.Viper, name string) (float64, error) {
	v, err := cast.ToFloat64E(cfg.Get(name))
	if err != nil {
		return 0, fmt.Errorf("glasstone: reading '%s': %v", name, err)
	}
	return v, nil
}

// floatOptions reads several float options at once.
func floatOptions(cfg *viper.Viper, names ...string) ([]float64, error) {
	o := make([]float64, len(names))
	for i, n := range names {
		v, err := floatOption(cfg, n)
		if err != nil {
			return nil, err
		}
		o[i] = v
	}
	return o, nil
}

// intsOption returns option name as a slice of ints. Slice flag
// defaults reach viper in their string form, such as "[3,4,7]".
func intsOption(cfg *viper.Viper, name string) ([]int, error) {
	v := cfg.Get(name)
	if s, ok := v.(string); ok {
		s = strings.Trim(strings.TrimSpace(s), "[]")
		var parts []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		v = parts
	}
	o, err := cast.ToIntSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("glasstone: reading '%s': %v", name, err)
	}
	return o, nil
}

// FalloutParams builds WSEG-10 inputs from the Fallout options.
func FalloutParams(cfg *viper.Viper) (fallout.Params, error) {
	var p fallout.Params
	v, err := floatOptions(cfg, "Fallout.GZX", "Fallout.GZY", "Fallout.Yield",
		"Fallout.FissionFraction", "Fallout.WindSpeed", "Fallout.WindDirection",
		"Fallout.WindShear", "Fallout.TimeOfBurst")
	if err != nil {
		return p, err
	}
	p.GZX, p.GZY, p.Yield, p.FissionFraction = v[0], v[1], v[2], v[3]
	p.WindSpeed, p.WindDirection, p.WindShear, p.TimeOfBurst = v[4], v[5], v[6], v[7]

	if p.DistanceUnits, err = unitOption(cfg, "Fallout.DistanceUnits", units.Distance); err != nil {
		return p, err
	}
	if p.WindUnits, err = unitOption(cfg, "Fallout.WindUnits", units.Speed); err != nil {
		return p, err
	}
	if p.ShearUnits, err = unitOption(cfg, "Fallout.ShearUnits", units.Shear); err != nil {
		return p, err
	}
	if p.YieldUnits, err = unitOption(cfg, "Fallout.YieldUnits", units.Yield); err != nil {
		return p, err
	}
	return p, nil
}

// airblastInput is a burst and observation point in the units the user
// chose.
type airblastInput struct {
	yield, r, h float64
	yu, du, pu  units.Unit
}

// airblastConfig reads the Airblast options.
func airblastConfig(cfg *viper.Viper) (airblastInput, error) {
	var in airblastInput
	v, err := floatOptions(cfg, "Airblast.Yield", "Airblast.Range", "Airblast.Height")
	if err != nil {
		return in, err
	}
	in.yield, in.r, in.h = v[0], v[1], v[2]
	if in.yu, err = unitOption(cfg, "Airblast.YieldUnits", units.Yield); err != nil {
		return in, err
	}
	if in.du, err = unitOption(cfg, "Airblast.DistanceUnits", units.Distance); err != nil {
		return in, err
	}
	if in.pu, err = unitOption(cfg, "Airblast.PressureUnits", units.Pressure); err != nil {
		return in, err
	}
	return in, nil
}

// thermalInput is a Soviet thermal model query.
type thermalInput struct {
	yield, r, h, fluence float64
	visibility           int
	ground               bool
	yu, du               units.Unit
}

func thermalConfig(cfg *viper.Viper) (thermalInput, error) {
	var in thermalInput
	v, err := floatOptions(cfg, "Thermal.Yield", "Thermal.Range", "Thermal.Height", "Thermal.Fluence")
	if err != nil {
		return in, err
	}
	in.yield, in.r, in.h, in.fluence = v[0], v[1], v[2], v[3]
	if in.visibility, err = cast.ToIntE(cfg.Get("Thermal.Visibility")); err != nil {
		return in, fmt.Errorf("glasstone: reading 'Thermal.Visibility': %v", err)
	}
	if in.ground, err = cast.ToBoolE(cfg.Get("Thermal.Ground")); err != nil {
		return in, fmt.Errorf("glasstone: reading 'Thermal.Ground': %v", err)
	}
	if in.yu, err = unitOption(cfg, "Thermal.YieldUnits", units.Yield); err != nil {
		return in, err
	}
	if in.du, err = unitOption(cfg, "Thermal.DistanceUnits", units.Distance); err != nil {
		return in, err
	}
	return in, nil
}

// axes returns the grid axes given by the Grid options.
func axes(cfg *viper.Viper) (xs, ys []float64, err error) {
	v, err := floatOptions(cfg, "Grid.XMin", "Grid.XMax", "Grid.XStep",
		"Grid.YMin", "Grid.YMax", "Grid.YStep")
	if err != nil {
		return nil, nil, err
	}
	if v[2] <= 0 || v[5] <= 0 {
		return nil, nil, fmt.Errorf("glasstone: grid steps must be positive")
	}
	xs, ys = grid.Axis(v[0], v[1], v[2]), grid.Axis(v[3], v[4], v[5])
	if len(xs) == 0 || len(ys) == 0 {
		return nil, nil, fmt.Errorf("glasstone: empty grid; check Grid.XMin/XMax and Grid.YMin/YMax")
	}
	return xs, ys, nil
}

// createOutput opens the file named by the output option, or returns w
// when none is given.
func createOutput(cfg *viper.Viper, w io.Writer) (io.Writer, func() error, error) {
	f := os.ExpandEnv(cfg.GetString("output"))
	if f == "" {
		return w, func() error { return nil }, nil
	}
	out, err := os.Create(f)
	if err != nil {
		return nil, nil, fmt.Errorf("glasstone: creating output file: %v", err)
	}
	return out, out.Close, nil
}
