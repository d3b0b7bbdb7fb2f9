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

package soviet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialmodel/glasstone/graph"
	"github.com/spatialmodel/glasstone/units"
)

func TestOverpressure(t *testing.T) {
	ranges := []float64{100, 300, 600}
	for _, c := range []struct {
		h            float64
		thermalLayer bool
		want         []float64
	}{
		{0, true, []float64{10.630999555701926, 0.9267897265342127, 0.26627755216777343}},
		{50, true, []float64{5.505047778926258, 0.7141303368045636, 0.26151613006278485}},
		{70, true, []float64{4.230930483170418, 0.643422125917092, 0.25963548657668184}},
		{100, true, []float64{3.2870230929750304, 0.6811214804171165, 0.2696641316905684}},
		{120, true, []float64{2.7778833130530036, 0.7074737010208151, 0.276564186008167}},
		{150, true, []float64{2.300644954029301, 0.6208957138604583, 0.2837715602434694}},
		{200, true, []float64{1.6803855535997305, 0.49949667034854633, 0.2962036561420303}},
		{0, false, []float64{10.630999555701926, 0.9267897265342127, 0.26627755216777343}},
		{50, false, []float64{10.347704894244064, 0.937285886493932, 0.2782704262599234}},
		{70, false, []float64{10.236512201568576, 0.9415175595945094, 0.2832174786989096}},
		{100, false, []float64{8.094865216155405, 0.9490816784240574, 0.29728698825408034}},
		{120, false, []float64{6.922261969127937, 0.95415815528894, 0.3070528508718327}},
		{150, false, []float64{4.87125891155197, 0.9567122940665956, 0.3231412480124218}},
		{200, false, []float64{2.7120426642677034, 0.960984394504751, 0.351850228865193}},
	} {
		for i, r := range ranges {
			op, err := Overpressure(1, r, c.h, c.thermalLayer, units.KT, units.Meter, units.KgPerCm2)
			require.NoError(t, err)
			assert.InEpsilon(t, c.want[i], op, 1e-9, "h=%g r=%g thermal layer %v", c.h, r, c.thermalLayer)
		}
	}
}

func TestOverpressureScaling(t *testing.T) {
	a, err := Overpressure(8, 600, 200, true, units.KT, units.Meter, units.KgPerCm2)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.6811214804171165, a, 1e-9)

	psi, err := Overpressure(0.008, 0.6, 0.2, true, units.MT, units.Kilometer, units.PSI)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.6811214804171165/0.070307, psi, 1e-9)
}

func TestOverpressureOutside(t *testing.T) {
	for _, c := range []struct{ r, h float64 }{
		{300, 200.01}, // above the highest curve
		{300, -1},
		{6000, 0}, // beyond the ground burst curve
		{50, 0},   // inside the fireball
		{30, 100}, // before the 70 m curve starts
	} {
		_, err := Overpressure(1, c.r, c.h, true, units.KT, units.Meter, units.KgPerCm2)
		assert.True(t, graph.IsOutside(err), "r=%g h=%g: %v", c.r, c.h, err)
	}
	// The 120 m and 200 m curves extend to zero range.
	_, err := Overpressure(1, 0, 150, true, units.KT, units.Meter, units.KgPerCm2)
	assert.NoError(t, err)
	_, err = Overpressure(1, 0, 150, false, units.KT, units.Meter, units.KgPerCm2)
	assert.NoError(t, err)

	_, err = Overpressure(1, 300, 100, true, units.KT, units.Meter, units.MPH)
	assert.True(t, units.IsUnknownUnit(err))
}

func TestRange(t *testing.T) {
	ops := []float64{0.2, 0.5, 1.0, 2.5, 5.0}
	for _, c := range []struct {
		h            float64
		thermalLayer bool
		want         []float64
	}{
		{0, true, []float64{711.7472672068492, 408.9658091718587, 290.9021406832561, 188.84822136922472, 132.10138346320898}},
		{50, true, []float64{732.3856522661405, 374.3987239511203, 237.0039405127511, 143.99626695579448, 105.0464223895996}},
		{100, true, []float64{765.9739524235243, 371.53022274560414, 224.30425861924215, 116.59539469163438, 74.19162104786425}},
		{120, true, []float64{782.8625831793026, 378.8357780007903, 230.21065740237086, 110.28866769244237, math.NaN()}},
		{150, true, []float64{802.6472449287203, 349.1502117253212, 201.03027065025023, 92.26844020167378, 44.186232326653766}},
		{200, true, []float64{835.6216811777496, 299.6742679328726, 152.3962927300492, 62.23472771705946, 0}},
		{0, false, []float64{711.7472672068492, 408.9658091718587, 290.9021406832561, 188.84822136922472, 132.10138346320898}},
		{50, false, []float64{747.1333320141207, 421.8096862390002, 290.9730489610491, 190.61986950413032, 138.69416021592954}},
		{100, false, []float64{787.1317852166017, 439.5523020421699, 291.30609244147183, 182.31655347704773, 130.3026322063575}},
		{120, false, []float64{804.3611367363166, 447.95567869304534, 291.5092125543422, 170, 122.95020639925063}},
		{150, false, []float64{827.0413300317127, 458.70759323080154, 291.4133992079189, 162.7984359143694, 97.15196961562151}},
		{200, false, []float64{864.8416521907062, 476.6274507937286, 291.25371029721356, 116.35549545760148, 0}},
	} {
		for i, op := range ops {
			r, err := Range(1, op, c.h, c.thermalLayer, units.KT, units.Meter, units.KgPerCm2)
			want := c.want[i]
			switch {
			case math.IsNaN(want):
				// The 70 m curve does not reach close enough to ground
				// zero to sample the 120 m blend.
				assert.True(t, graph.IsOutside(err), "h=%g op=%g", c.h, op)
			case want == 0:
				require.NoError(t, err)
				assert.Equal(t, 0.0, r)
			default:
				require.NoError(t, err)
				assert.InEpsilon(t, want, r, 1e-9, "h=%g op=%g thermal layer %v", c.h, op, c.thermalLayer)
			}
		}
	}
}

func TestRangeInverse(t *testing.T) {
	for _, h := range []float64{0, 50, 100, 150, 200} {
		for _, tl := range []bool{true, false} {
			for _, r := range []float64{250, 400, 800} {
				op, err := Overpressure(1, r, h, tl, units.KT, units.Meter, units.KgPerCm2)
				require.NoError(t, err)
				got, err := Range(1, op, h, tl, units.KT, units.Meter, units.KgPerCm2)
				require.NoError(t, err)
				// Interpolation between curves is not exactly invertible.
				assert.InEpsilon(t, r, got, 0.1, "h=%g r=%g thermal layer %v", h, r, tl)
			}
		}
	}
	// Cube-root scaling of the range.
	a, err := Range(8, 1, 200, true, units.KT, units.Meter, units.KgPerCm2)
	require.NoError(t, err)
	assert.InEpsilon(t, 448.6085172384843, a, 1e-9)

	km, err := Range(8, 1, 0.2, true, units.KT, units.Kilometer, units.KgPerCm2)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.4486085172384843, km, 1e-9)

	_, err = Range(1, 1, 250, true, units.KT, units.Meter, units.KgPerCm2)
	assert.True(t, graph.IsOutside(err))
}

func TestCurveDomains(t *testing.T) {
	assert.Equal(t, 0.0, machSH20.Lo)
	assert.Equal(t, 0.0, noMachSH12.Lo)
	assert.Equal(t, machSH7X[0], machSH7.Lo)
	assert.Equal(t, groundX[len(groundX)-1], ground.Hi)
	for _, c := range []graph.Curve{machSH20, machSH12, machSH7, noMachSH20, noMachSH12, noMachSH7, ground} {
		for i := 1; i < len(c.X); i++ {
			assert.True(t, c.X[i-1] <= c.X[i])
		}
	}
}
