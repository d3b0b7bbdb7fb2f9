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

// Package glasstoneutil contains the glasstone command-line interface.
package glasstoneutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/glasstone"
	"github.com/spatialmodel/glasstone/units"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	falloutSets := []*pflag.FlagSet{falloutCmd.PersistentFlags(), gridDoseCmd.Flags(),
		plotDoseCmd.Flags(), plotCasualtiesCmd.Flags()}
	airblastSets := []*pflag.FlagSet{airblastCmd.PersistentFlags(), brodeCmd.Flags(),
		sovietOverpressureCmd.Flags(), sovietRangeCmd.Flags(), gridOverpressureCmd.Flags(),
		plotPressureCmd.Flags(), plotComparisonCmd.Flags(), plotWaveformCmd.Flags()}
	thermalSets := []*pflag.FlagSet{sovietThermalCmd.Flags(), sovietThermalRangeCmd.Flags(),
		plotThermalCmd.Flags()}
	gridSets := []*pflag.FlagSet{gridCmd.PersistentFlags(), plotDoseCmd.Flags(),
		plotCasualtiesCmd.Flags(), plotPressureCmd.Flags(), plotThermalCmd.Flags(),
		plotComparisonCmd.Flags()}

	// Options are the configuration options available to glasstone.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "scenario",
			usage: `
              scenario specifies the location of a TOML scenario file with
              [Fallout], [Airblast] and [Thermal] sections whose fields set the
              options of the same names.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "loglevel",
			usage: `
              loglevel sets the logging level: one of debug, info, warn or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "output",
			usage: `
              output specifies the file to write results to. Grids are written
              as CSV, or as Excel workbooks when the file name ends in .xlsx, and
              go to standard output when output is empty. Figures are saved in the
              format given by the file extension.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "workers",
			usage: `
              workers is the number of grid points to evaluate concurrently.
              Values less than one use all available processors.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Fallout.GZX",
			usage: `
              Fallout.GZX is the x coordinate of ground zero.`,
			defaultVal: 1.0,
			flagsets:   falloutSets,
		},
		{
			name: "Fallout.GZY",
			usage: `
              Fallout.GZY is the y coordinate of ground zero.`,
			defaultVal: 1.0,
			flagsets:   falloutSets,
		},
		{
			name: "Fallout.X",
			usage: `
              Fallout.X is the x coordinate of the point of interest.`,
			defaultVal: 2.0,
			flagsets:   falloutSets,
		},
		{
			name: "Fallout.Y",
			usage: `
              Fallout.Y is the y coordinate of the point of interest.`,
			defaultVal: 2.0,
			flagsets:   falloutSets,
		},
		{
			name: "Fallout.Yield",
			usage: `
              Fallout.Yield is the total yield of the burst.`,
			defaultVal: 0.01,
			flagsets:   falloutSets,
		},
		{
			name: "Fallout.FissionFraction",
			usage: `
              Fallout.FissionFraction is the fraction of the yield from fission.`,
			defaultVal: 1.0,
			flagsets:   falloutSets,
		},
		{
			name: "Fallout.WindSpeed",
			usage: `
              Fallout.WindSpeed is the wind speed.`,
			defaultVal: 2.30303,
			flagsets:   falloutSets,
		},
		{
			name: "Fallout.WindDirection",
			usage: `
              Fallout.WindDirection is the direction the wind blows from, in degrees
              clockwise from north.`,
			defaultVal: 225.0,
			flagsets:   falloutSets,
		},
		{
			name: "Fallout.WindShear",
			usage: `
              Fallout.WindShear is the change in wind speed with altitude.`,
			defaultVal: 0.23,
			flagsets:   falloutSets,
		},
		{
			name: "Fallout.TimeOfBurst",
			usage: `
              Fallout.TimeOfBurst is the time of the burst in hours.`,
			defaultVal: 0.0,
			flagsets:   falloutSets,
		},
		{
			name: "Fallout.DistanceUnits",
			usage: `
              Fallout.DistanceUnits are the units of the coordinates.`,
			defaultVal: string(units.Mile),
			flagsets:   falloutSets,
		},
		{
			name: "Fallout.WindUnits",
			usage: `
              Fallout.WindUnits are the units of Fallout.WindSpeed.`,
			defaultVal: string(units.MPH),
			flagsets:   falloutSets,
		},
		{
			name: "Fallout.ShearUnits",
			usage: `
              Fallout.ShearUnits are the units of Fallout.WindShear.`,
			defaultVal: string(units.MPHPerKilofoot),
			flagsets:   falloutSets,
		},
		{
			name: "Fallout.YieldUnits",
			usage: `
              Fallout.YieldUnits are the units of Fallout.Yield.`,
			defaultVal: string(units.MT),
			flagsets:   falloutSets,
		},
		{
			name: "Fallout.DoseUnits",
			usage: `
              Fallout.DoseUnits are the units doses are reported in.`,
			defaultVal: string(units.Roentgen),
			flagsets:   falloutSets,
		},
		{
			name: "Airblast.Yield",
			usage: `
              Airblast.Yield is the yield of the burst.`,
			defaultVal: 1.0,
			flagsets:   airblastSets,
		},
		{
			name: "Airblast.Range",
			usage: `
              Airblast.Range is the ground range from ground zero.`,
			defaultVal: 500.0,
			flagsets:   airblastSets,
		},
		{
			name: "Airblast.Height",
			usage: `
              Airblast.Height is the height of burst.`,
			defaultVal: 200.0,
			flagsets:   airblastSets,
		},
		{
			name: "Airblast.Time",
			usage: `
              Airblast.Time is the time after the burst in seconds up to which the
              impulse is integrated. Zero integrates the whole positive phase.`,
			defaultVal: 0.0,
			flagsets:   airblastSets,
		},
		{
			name: "Airblast.Overpressure",
			usage: `
              Airblast.Overpressure is the peak static overpressure whose range is
              sought by 'soviet range'.`,
			defaultVal: 1.0,
			flagsets:   airblastSets,
		},
		{
			name: "Airblast.ThermalLayer",
			usage: `
              Airblast.ThermalLayer specifies whether a thermal precursor layer
              suppresses the Mach stem in the Soviet overpressure model.`,
			defaultVal: true,
			flagsets:   airblastSets,
		},
		{
			name: "Airblast.Model",
			usage: `
              Airblast.Model selects the overpressure model used by
              'grid overpressure': dna, brode or soviet.`,
			defaultVal: "dna",
			flagsets:   airblastSets,
		},
		{
			name: "Airblast.Samples",
			usage: `
              Airblast.Samples is the number of times at which waveforms are
              sampled.`,
			defaultVal: 50,
			flagsets:   airblastSets,
		},
		{
			name: "Airblast.YieldUnits",
			usage: `
              Airblast.YieldUnits are the units of Airblast.Yield.`,
			defaultVal: string(units.KT),
			flagsets:   airblastSets,
		},
		{
			name: "Airblast.DistanceUnits",
			usage: `
              Airblast.DistanceUnits are the units of ranges and heights.`,
			defaultVal: string(units.Meter),
			flagsets:   airblastSets,
		},
		{
			name: "Airblast.PressureUnits",
			usage: `
              Airblast.PressureUnits are the units of pressures.`,
			defaultVal: string(units.KgPerCm2),
			flagsets:   airblastSets,
		},
		{
			name: "Thermal.Yield",
			usage: `
              Thermal.Yield is the yield of the burst.`,
			defaultVal: 1000.0,
			flagsets:   thermalSets,
		},
		{
			name: "Thermal.Range",
			usage: `
              Thermal.Range is the slant range from the burst.`,
			defaultVal: 10.0,
			flagsets:   thermalSets,
		},
		{
			name: "Thermal.Height",
			usage: `
              Thermal.Height is the height of burst.`,
			defaultVal: 0.0,
			flagsets:   thermalSets,
		},
		{
			name: "Thermal.Fluence",
			usage: `
              Thermal.Fluence is the total thermal impulse in cal/cm² whose range is
              sought by 'soviet thermalrange'.`,
			defaultVal: 10.0,
			flagsets:   thermalSets,
		},
		{
			name: "Thermal.Visibility",
			usage: `
              Thermal.Visibility is the International Visibility Code, from 1 (dense
              fog) to 9 (exceptionally clear air).`,
			defaultVal: 7,
			flagsets:   thermalSets,
		},
		{
			name: "Thermal.Visibilities",
			usage: `
              Thermal.Visibilities are the International Visibility Codes plotted by
              'plot thermal'.`,
			defaultVal: []int{3, 4, 7},
			flagsets:   thermalSets,
		},
		{
			name: "Thermal.Ground",
			usage: `
              Thermal.Ground selects the ground burst model instead of the airburst
              model.`,
			defaultVal: false,
			flagsets:   thermalSets,
		},
		{
			name: "Thermal.YieldUnits",
			usage: `
              Thermal.YieldUnits are the units of Thermal.Yield.`,
			defaultVal: string(units.KT),
			flagsets:   thermalSets,
		},
		{
			name: "Thermal.DistanceUnits",
			usage: `
              Thermal.DistanceUnits are the units of ranges and heights.`,
			defaultVal: string(units.Kilometer),
			flagsets:   thermalSets,
		},
		{
			name: "Grid.XMin",
			usage: `
              Grid.XMin is the first x coordinate of the grid.`,
			defaultVal: -1.0,
			flagsets:   gridSets,
		},
		{
			name: "Grid.XMax",
			usage: `
              Grid.XMax is the x coordinate the grid stops before.`,
			defaultVal: 10.0,
			flagsets:   gridSets,
		},
		{
			name: "Grid.XStep",
			usage: `
              Grid.XStep is the spacing of the grid in the x direction.`,
			defaultVal: 0.1,
			flagsets:   gridSets,
		},
		{
			name: "Grid.YMin",
			usage: `
              Grid.YMin is the first y coordinate of the grid.`,
			defaultVal: -1.0,
			flagsets:   gridSets,
		},
		{
			name: "Grid.YMax",
			usage: `
              Grid.YMax is the y coordinate the grid stops before.`,
			defaultVal: 10.0,
			flagsets:   gridSets,
		},
		{
			name: "Grid.YStep",
			usage: `
              Grid.YStep is the spacing of the grid in the y direction.`,
			defaultVal: 0.1,
			flagsets:   gridSets,
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GLASSTONE")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				set.Bool(option.name, option.defaultVal.(bool), option.usage)
			case int:
				set.Int(option.name, option.defaultVal.(int), option.usage)
			case []int:
				set.IntSlice(option.name, option.defaultVal.([]int), option.usage)
			case float64:
				set.Float64(option.name, option.defaultVal.(float64), option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(airblastCmd)
	airblastCmd.AddCommand(airblastPeakCmd, airblastDynamicCmd, airblastTOACmd,
		airblastDurationCmd, airblastImpulseCmd, airblastWaveformCmd)
	Root.AddCommand(brodeCmd)
	Root.AddCommand(sovietCmd)
	sovietCmd.AddCommand(sovietOverpressureCmd, sovietRangeCmd, sovietThermalCmd,
		sovietThermalRangeCmd)
	Root.AddCommand(falloutCmd)
	falloutCmd.AddCommand(falloutDoseRateCmd, falloutDoseCmd, falloutTOACmd)
	Root.AddCommand(gridCmd)
	gridCmd.AddCommand(gridDoseCmd, gridOverpressureCmd)
	Root.AddCommand(plotCmd)
	plotCmd.AddCommand(plotDoseCmd, plotCasualtiesCmd, plotPressureCmd, plotThermalCmd,
		plotComparisonCmd, plotWaveformCmd)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "glasstone",
	Short: "Models of the effects of nuclear weapons.",
	Long: `glasstone calculates the effects of nuclear explosions: airblast
overpressure, dynamic pressure and impulse, thermal radiation, and the
WSEG-10 fallout dose field.
Use the subcommands specified below to access the model functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using a scenario file (--scenario),
by using command-line arguments, or by setting environment variables in the format
'GLASSTONE_VAR' where 'VAR' is the name of the variable to be set, in upper case
and with periods replaced by underscores (for example GLASSTONE_AIRBLAST_YIELD).
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of glasstone.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "glasstone v%s\n", glasstone.Version)
	},
	DisableAutoGenTag: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert VALUE FROM TO",
	Short: "Convert between units",
	Long: `convert converts VALUE from units FROM to units TO. Both units must
measure the same kind of quantity: yield, distance, pressure, speed,
dose or wind shear.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("glasstone: invalid value %q: %v", args[0], err)
		}
		from, err := units.Parse(args[1])
		if err != nil {
			return fmt.Errorf("glasstone: %v", err)
		}
		to, err := units.Parse(args[2])
		if err != nil {
			return fmt.Errorf("glasstone: %v", err)
		}
		o, err := units.Convert(v, from, to)
		if err != nil {
			return fmt.Errorf("glasstone: %v", err)
		}
		printValue(cmd, o, string(to))
		return nil
	},
	DisableAutoGenTag: true,
}

// printValue writes a value and its units to the command output.
func printValue(cmd *cobra.Command, v float64, u string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%g %s\n", v, u)
}
