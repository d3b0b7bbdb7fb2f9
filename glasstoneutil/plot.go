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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"github.com/spatialmodel/glasstone/plots"
	"github.com/spatialmodel/glasstone/units"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw figures",
	Long: `plot draws figures of model results and saves them to the file given
by the output option, in the format given by its extension (png, svg, pdf,
eps, jpg or tiff). Without an output option the figure is saved as
<subcommand>.png in the working directory.`,
	DisableAutoGenTag: true,
}

// savePlot saves p to the output option, defaulting to name.png.
func savePlot(p *plot.Plot, name string) error {
	f := os.ExpandEnv(Cfg.GetString("output"))
	if f == "" {
		f = name + ".png"
	}
	if err := plots.Save(p, f); err != nil {
		return fmt.Errorf("glasstone: %v", err)
	}
	logrus.WithField("file", f).Info("saved figure")
	return nil
}

// plotCommand returns a command that draws the figure made by f and
// saves it.
func plotCommand(use, short, long string, f func() (*plot.Plot, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f()
			if err != nil {
				return err
			}
			return savePlot(p, cmd.Name())
		},
		DisableAutoGenTag: true,
	}
}

var plotDoseCmd = plotCommand("dose", "WSEG-10 dose contours",
	`dose draws contours of the WSEG-10 equivalent residual dose at 500, 1000,
3000, 10000 and 20000 Roentgen over the grid given by the Grid options.`,
	func() (*plot.Plot, error) {
		in, err := falloutConfig(Cfg)
		if err != nil {
			return nil, err
		}
		xs, ys, err := axes(Cfg)
		if err != nil {
			return nil, err
		}
		p, _, err := plots.Dose(context.Background(), in.w, xs, ys, Cfg.GetInt("workers"), logrus.StandardLogger())
		return p, err
	})

var plotCasualtiesCmd = plotCommand("casualties", "WSEG-10 casualty contours",
	`casualties draws contours of the probability of death for an unsheltered
individual exposed to the WSEG-10 fallout field.`,
	func() (*plot.Plot, error) {
		in, err := falloutConfig(Cfg)
		if err != nil {
			return nil, err
		}
		xs, ys, err := axes(Cfg)
		if err != nil {
			return nil, err
		}
		p, _, err := plots.Casualties(context.Background(), in.w, xs, ys, Cfg.GetInt("workers"), logrus.StandardLogger())
		return p, err
	})

var plotPressureCmd = plotCommand("pressure", "DNA pressures against range",
	`pressure draws the DNA peak static overpressure and peak dynamic pressure
against ground range, taking ranges from the x axis of the grid.`,
	func() (*plot.Plot, error) {
		in, err := airblastConfig(Cfg)
		if err != nil {
			return nil, err
		}
		y, err := units.Convert(in.yield, in.yu, units.KT)
		if err != nil {
			return nil, fmt.Errorf("glasstone: %v", err)
		}
		xs, _, err := axes(Cfg)
		if err != nil {
			return nil, err
		}
		return plots.Pressure(y, in.h, xs, in.du, in.pu)
	})

var plotThermalCmd = plotCommand("thermal", "Soviet thermal impulse against range",
	`thermal draws the Soviet model total thermal impulse against slant range,
one line for each of Thermal.Visibilities, taking ranges from the x axis of
the grid. Ranges outside of the model graphs are drawn as zero.`,
	func() (*plot.Plot, error) {
		in, err := thermalConfig(Cfg)
		if err != nil {
			return nil, err
		}
		y, err := units.Convert(in.yield, in.yu, units.KT)
		if err != nil {
			return nil, fmt.Errorf("glasstone: %v", err)
		}
		vis, err := intsOption(Cfg, "Thermal.Visibilities")
		if err != nil {
			return nil, err
		}
		xs, _, err := axes(Cfg)
		if err != nil {
			return nil, err
		}
		return plots.Thermal(y, in.h, in.ground, xs, vis, in.du)
	})

var plotComparisonCmd = plotCommand("comparison", "U.S. and Soviet overpressure comparison",
	`comparison draws a heat map of the difference between the Brode and the
Soviet thermal precursor peak static overpressures, with height of burst
along x and ground range along y, both in meters.`,
	func() (*plot.Plot, error) {
		in, err := airblastConfig(Cfg)
		if err != nil {
			return nil, err
		}
		y, err := units.Convert(in.yield, in.yu, units.KT)
		if err != nil {
			return nil, fmt.Errorf("glasstone: %v", err)
		}
		xs, ys, err := axes(Cfg)
		if err != nil {
			return nil, err
		}
		p, _, err := plots.Comparison(context.Background(), y, xs, ys, Cfg.GetInt("workers"), logrus.StandardLogger())
		return p, err
	})

var plotWaveformCmd = plotCommand("waveform", "DNA pressure histories",
	`waveform draws the overpressure and dynamic pressure against time at the
point given by the Airblast options.`,
	func() (*plot.Plot, error) {
		in, err := airblastConfig(Cfg)
		if err != nil {
			return nil, err
		}
		n, err := cast.ToIntE(Cfg.Get("Airblast.Samples"))
		if err != nil {
			return nil, fmt.Errorf("glasstone: reading 'Airblast.Samples': %v", err)
		}
		s, err := in.scenario(context.Background())
		if err != nil {
			return nil, fmt.Errorf("glasstone: %v", err)
		}
		return plots.Waveform(s, n)
	})
