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
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spatialmodel/glasstone/airblast"
	"github.com/spatialmodel/glasstone/fallout"
	"github.com/spatialmodel/glasstone/grid"
	"github.com/spatialmodel/glasstone/soviet"
	"github.com/spatialmodel/glasstone/units"
)

// falloutInput is a WSEG-10 field and a point of interest.
type falloutInput struct {
	w     *fallout.WSEG10
	x, y  float64
	du    units.Unit
	doseu units.Unit
}

func falloutConfig(cfg *viper.Viper) (falloutInput, error) {
	var in falloutInput
	p, err := FalloutParams(cfg)
	if err != nil {
		return in, err
	}
	if in.w, err = fallout.NewWSEG10(p); err != nil {
		return in, fmt.Errorf("glasstone: %v", err)
	}
	v, err := floatOptions(cfg, "Fallout.X", "Fallout.Y")
	if err != nil {
		return in, err
	}
	in.x, in.y, in.du = v[0], v[1], p.DistanceUnits
	if in.doseu, err = unitOption(cfg, "Fallout.DoseUnits", units.Dose); err != nil {
		return in, err
	}
	logrus.WithFields(logrus.Fields{
		"yield":     p.Yield,
		"gz":        fmt.Sprintf("%g,%g %s", p.GZX, p.GZY, p.DistanceUnits),
		"wind":      p.WindSpeed,
		"direction": p.WindDirection,
	}).Debug("WSEG-10 field")
	return in, nil
}

// falloutCommand returns a command that evaluates f with the Fallout
// options and prints the result.
func falloutCommand(use, short, long string, f func(in falloutInput) (float64, string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := falloutConfig(Cfg)
			if err != nil {
				return err
			}
			v, u, err := f(in)
			if err != nil {
				return fmt.Errorf("glasstone: %v", err)
			}
			printValue(cmd, v, u)
			return nil
		},
		DisableAutoGenTag: true,
	}
}

var falloutCmd = &cobra.Command{
	Use:   "fallout",
	Short: "WSEG-10 fallout model",
	Long: `fallout evaluates the WSEG-10 fallout model at the point
(Fallout.X, Fallout.Y). WSEG-10 gives a plausible mean fallout field
for a surface burst under a constant wind with shear, not an actual
fallout pattern.`,
	DisableAutoGenTag: true,
}

var falloutDoseRateCmd = falloutCommand("doserate", "H+1 dose rate",
	`doserate prints the dose rate one hour after the burst, including
activity that has not arrived yet.`,
	func(in falloutInput) (float64, string, error) {
		v, err := in.w.DoseRateHPlus1(in.x, in.y, in.du, in.doseu)
		return v, string(in.doseu) + "/hr", err
	})

var falloutDoseCmd = falloutCommand("dose", "Equivalent residual dose",
	`dose prints the equivalent residual dose accumulated from the arrival
of fallout to thirty days.`,
	func(in falloutInput) (float64, string, error) {
		v, err := in.w.Dose(in.x, in.y, in.du, in.doseu)
		return v, string(in.doseu), err
	})

var falloutTOACmd = falloutCommand("toa", "Fallout time of arrival",
	"toa prints the average time of arrival of fallout.",
	func(in falloutInput) (float64, string, error) {
		rx, _, err := in.w.Hotline(in.x, in.y, in.du)
		if err != nil {
			return 0, "", err
		}
		return in.w.FalloutTOA(rx), "hr", nil
	})

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Evaluate models over a grid",
	Long: `grid evaluates a model at every point of the rectilinear grid
given by the Grid options and writes the result as a table whose first
row holds the x coordinates and first column the y coordinates.`,
	DisableAutoGenTag: true,
}

var gridDoseCmd = &cobra.Command{
	Use:   "dose",
	Short: "Grid of equivalent residual dose",
	Long: `dose evaluates the WSEG-10 equivalent residual dose over the grid,
whose coordinates are in Fallout.DistanceUnits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := falloutConfig(Cfg)
		if err != nil {
			return err
		}
		xs, ys, err := axes(Cfg)
		if err != nil {
			return err
		}
		g, err := grid.Evaluate(context.Background(), xs, ys, func(x, y float64) (float64, error) {
			return in.w.Dose(x, y, in.du, in.doseu)
		}, Cfg.GetInt("workers"), logrus.StandardLogger())
		if err != nil {
			return fmt.Errorf("glasstone: %v", err)
		}
		return writeGrid(cmd.OutOrStdout(), g, "dose")
	},
	DisableAutoGenTag: true,
}

var gridOverpressureCmd = &cobra.Command{
	Use:   "overpressure",
	Short: "Grid of peak static overpressure",
	Long: `overpressure evaluates the peak static overpressure of the model
selected by Airblast.Model (dna, brode or soviet) over the grid, with
ground range along x and height of burst along y, both in
Airblast.DistanceUnits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := airblastConfig(Cfg)
		if err != nil {
			return err
		}
		f, err := overpressureModel(in, Cfg.GetString("Airblast.Model"))
		if err != nil {
			return err
		}
		xs, ys, err := axes(Cfg)
		if err != nil {
			return err
		}
		g, err := grid.Evaluate(context.Background(), xs, ys, f, Cfg.GetInt("workers"), logrus.StandardLogger())
		if err != nil {
			return fmt.Errorf("glasstone: %v", err)
		}
		return writeGrid(cmd.OutOrStdout(), g, "overpressure")
	},
	DisableAutoGenTag: true,
}

// overpressureModel returns the peak static overpressure of the named
// model as a function of ground range and height of burst.
func overpressureModel(in airblastInput, model string) (grid.Func, error) {
	switch strings.ToLower(model) {
	case "dna":
		return func(r, h float64) (float64, error) {
			in := in
			in.r, in.h = r, h
			s, err := in.scenario(context.Background())
			if err != nil {
				return 0, err
			}
			return units.Convert(s.PeakOverpressure(), units.Pascal, in.pu)
		}, nil
	case "brode":
		return func(r, h float64) (float64, error) {
			return airblast.BrodeOverpressure(in.yield, r, h, in.yu, in.du, in.pu)
		}, nil
	case "soviet":
		tl, err := thermalLayer()
		if err != nil {
			return nil, fmt.Errorf("glasstone: reading 'Airblast.ThermalLayer': %v", err)
		}
		return func(r, h float64) (float64, error) {
			return soviet.Overpressure(in.yield, r, h, tl, in.yu, in.du, in.pu)
		}, nil
	}
	return nil, fmt.Errorf("glasstone: unknown Airblast.Model %q; valid models are dna, brode and soviet", model)
}

// writeGrid writes g to the output option, or as CSV to w if it is
// empty.
func writeGrid(w io.Writer, g *grid.Grid, sheet string) error {
	out, closer, err := createOutput(Cfg, w)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(Cfg.GetString("output")), ".xlsx") {
		err = g.WriteXLSX(out, sheet)
	} else {
		err = g.WriteCSV(out)
	}
	if err != nil {
		closer()
		return fmt.Errorf("glasstone: writing grid: %v", err)
	}
	return closer()
}
