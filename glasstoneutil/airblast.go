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

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/spatialmodel/glasstone/airblast"
	"github.com/spatialmodel/glasstone/grid"
	"github.com/spatialmodel/glasstone/soviet"
	"github.com/spatialmodel/glasstone/units"
)

// scenarios holds recently used airblast scenarios.
var scenarios = grid.NewScenarioCache(128)

// scenario returns the DNA airblast scenario for in, converted to kT and m.
func (in airblastInput) scenario(ctx context.Context) (*airblast.Scenario, error) {
	y, err := units.Convert(in.yield, in.yu, units.KT)
	if err != nil {
		return nil, err
	}
	r, err := units.Convert(in.r, in.du, units.Meter)
	if err != nil {
		return nil, err
	}
	h, err := units.Convert(in.h, in.du, units.Meter)
	if err != nil {
		return nil, err
	}
	return scenarios.Scenario(ctx, y, r, h)
}

// airblastCommand returns a command that evaluates f with the Airblast
// options and prints the result in units u, which f may pick.
func airblastCommand(use, short, long string, f func(in airblastInput) (float64, string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := airblastConfig(Cfg)
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

var airblastCmd = &cobra.Command{
	Use:   "airblast",
	Short: "DNA airblast model",
	Long: `airblast calculates blast wave properties from the Defense Nuclear Agency
1kT standard airblast model, scaled to the given yield and height of burst
over an ideal surface at sea level.`,
	DisableAutoGenTag: true,
}

var airblastPeakCmd = airblastCommand("peak", "Peak static overpressure",
	"peak prints the peak static overpressure at the given ground range.",
	func(in airblastInput) (float64, string, error) {
		v, err := airblast.StaticOverpressure(in.yield, in.r, in.h, in.yu, in.du, in.pu)
		return v, string(in.pu), err
	})

var airblastDynamicCmd = airblastCommand("dynamic", "Peak dynamic pressure",
	"dynamic prints the peak dynamic pressure at the given ground range.",
	func(in airblastInput) (float64, string, error) {
		v, err := airblast.DynamicPressure(in.yield, in.r, in.h, in.yu, in.du, in.pu)
		return v, string(in.pu), err
	})

var airblastTOACmd = airblastCommand("toa", "Time of arrival",
	"toa prints the time after the burst at which the shock arrives.",
	func(in airblastInput) (float64, string, error) {
		v, err := airblast.ArrivalTime(in.yield, in.r, in.h, in.yu, in.du)
		return v, "s", err
	})

var airblastImpulseCmd = airblastCommand("impulse", "Overpressure impulse",
	`impulse prints the overpressure impulse delivered by the positive phase,
or up to Airblast.Time seconds after the burst if it is positive.`,
	func(in airblastInput) (float64, string, error) {
		u := string(in.pu) + "·s"
		t, err := cast.ToFloat64E(Cfg.Get("Airblast.Time"))
		if err != nil {
			return 0, u, err
		}
		if t <= 0 {
			v, err := airblast.Impulse(in.yield, in.r, in.h, in.yu, in.du, in.pu)
			return v, u, err
		}
		s, err := in.scenario(context.Background())
		if err != nil {
			return 0, u, err
		}
		i, err := s.PartialImpulse(t)
		if err != nil {
			return 0, u, err
		}
		v, err := units.Convert(i, units.Pascal, in.pu)
		return v, u, err
	})

var airblastDurationCmd = &cobra.Command{
	Use:   "duration",
	Short: "Positive phase durations",
	Long: `duration prints the durations of the overpressure and dynamic pressure
positive phases.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := airblastConfig(Cfg)
		if err != nil {
			return err
		}
		s, err := in.scenario(context.Background())
		if err != nil {
			return fmt.Errorf("glasstone: %v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "overpressure: %g s\ndynamic pressure: %g s\n",
			s.PositivePhaseDuration(), s.DynamicPositivePhaseDuration())
		return nil
	},
	DisableAutoGenTag: true,
}

var airblastWaveformCmd = &cobra.Command{
	Use:   "waveform",
	Short: "Pressure histories",
	Long: `waveform prints the overpressure and dynamic pressure as a function
of time after the burst, sampled Airblast.Samples times over the overpressure
positive phase. Dynamic pressure is zero after its own positive phase ends.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := airblastConfig(Cfg)
		if err != nil {
			return err
		}
		n, err := cast.ToIntE(Cfg.Get("Airblast.Samples"))
		if err != nil {
			return fmt.Errorf("glasstone: reading 'Airblast.Samples': %v", err)
		}
		if n < 2 {
			return fmt.Errorf("glasstone: Airblast.Samples must be at least 2")
		}
		s, err := in.scenario(context.Background())
		if err != nil {
			return fmt.Errorf("glasstone: %v", err)
		}
		ta, dp, dpq := s.TimeOfArrival(), s.PositivePhaseDuration(), s.DynamicPositivePhaseDuration()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "time (s)\toverpressure (%s)\tdynamic pressure (%s)\n", in.pu, in.pu)
		for i := 0; i < n; i++ {
			t := ta + dp*float64(i)/float64(n-1)
			p := units.MustConvert(s.OverpressureAt(t), units.Pascal, in.pu)
			var q float64
			if t <= ta+dpq {
				q = units.MustConvert(s.DynamicPressureAt(t), units.Pascal, in.pu)
			}
			fmt.Fprintf(w, "%g\t%g\t%g\n", t, p, q)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var brodeCmd = airblastCommand("brode", "Brode peak static overpressure",
	`brode prints the peak static overpressure at the given ground range
from H.L. Brode's fit for a burst over an ideal surface at sea level.`,
	func(in airblastInput) (float64, string, error) {
		v, err := airblast.BrodeOverpressure(in.yield, in.r, in.h, in.yu, in.du, in.pu)
		return v, string(in.pu), err
	})

var sovietCmd = &cobra.Command{
	Use:   "soviet",
	Short: "Soviet graph-based models",
	Long: `soviet evaluates the Soviet overpressure and thermal radiation models,
which interpolate between digitized graphs. Values outside of the
graphs are reported as errors.`,
	DisableAutoGenTag: true,
}

func thermalLayer() (bool, error) {
	return cast.ToBoolE(Cfg.Get("Airblast.ThermalLayer"))
}

var sovietOverpressureCmd = airblastCommand("overpressure", "Peak static overpressure",
	`overpressure prints the Soviet model peak static overpressure at the
given ground range.`,
	func(in airblastInput) (float64, string, error) {
		tl, err := thermalLayer()
		if err != nil {
			return 0, "", err
		}
		v, err := soviet.Overpressure(in.yield, in.r, in.h, tl, in.yu, in.du, in.pu)
		return v, string(in.pu), err
	})

var sovietRangeCmd = airblastCommand("range", "Range of an overpressure",
	`range prints the ground range at which the Soviet model peak static
overpressure equals Airblast.Overpressure.`,
	func(in airblastInput) (float64, string, error) {
		tl, err := thermalLayer()
		if err != nil {
			return 0, "", err
		}
		op, err := cast.ToFloat64E(Cfg.Get("Airblast.Overpressure"))
		if err != nil {
			return 0, "", err
		}
		v, err := soviet.Range(in.yield, op, in.h, tl, in.yu, in.du, in.pu)
		return v, string(in.du), err
	})

// thermalCommand is like airblastCommand for the Thermal options.
func thermalCommand(use, short, long string, f func(in thermalInput) (float64, string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := thermalConfig(Cfg)
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

var sovietThermalCmd = thermalCommand("thermal", "Total thermal impulse",
	`thermal prints the total thermal impulse in cal/cm² at the given slant
range, for an airburst or, with Thermal.Ground, a ground burst.`,
	func(in thermalInput) (float64, string, error) {
		f := soviet.AirThermal
		if in.ground {
			f = soviet.GroundThermal
		}
		v, err := f(in.yield, in.r, in.h, in.visibility, in.yu, in.du)
		return v, "cal/cm²", err
	})

var sovietThermalRangeCmd = thermalCommand("thermalrange", "Range of a thermal impulse",
	`thermalrange prints the slant range at which the total thermal impulse
equals Thermal.Fluence.`,
	func(in thermalInput) (float64, string, error) {
		f := soviet.AirThermalRange
		if in.ground {
			f = soviet.GroundThermalRange
		}
		v, err := f(in.yield, in.fluence, in.h, in.visibility, in.yu, in.du)
		return v, string(in.du), err
	})
