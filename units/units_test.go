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

package units

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kinds = []Kind{Yield, Distance, Pressure, Speed, Dose, Shear}

func TestRoundTrip(t *testing.T) {
	for _, k := range kinds {
		for _, a := range Of(k) {
			for _, b := range Of(k) {
				for _, x := range []float64{1e-3, 1, 2.30303, 1234.5} {
					y, err := Convert(x, a, b)
					require.NoError(t, err)
					z, err := Convert(y, b, a)
					require.NoError(t, err)
					assert.InEpsilon(t, x, z, 1e-9, "%g %s -> %s -> %s", x, a, b, a)
				}
			}
		}
	}
}

func TestPublishedFactors(t *testing.T) {
	tests := []struct {
		v        float64
		from, to Unit
		want     float64
	}{
		{v: 1, from: KT, to: MT, want: 0.001},
		{v: 304.8, from: Meter, to: Kilofoot, want: 1},
		{v: 1, from: Meter, to: Yard, want: 1.09361},
		{v: 1, from: Foot, to: Meter, want: 0.3048},
		{v: 5.28, from: Kilofoot, to: Mile, want: 1},
		{v: 1, from: Mile, to: Kilometer, want: 1.60934},
		{v: 1, from: Kilofoot, to: Kilometer, want: 0.3048},
		{v: 1, from: PSI, to: KgPerCm2, want: 0.070307},
		{v: 1, from: MPa, to: PSI, want: 145.037738},
		{v: 1e6, from: Pascal, to: PSI, want: 145.037738},
		{v: 1e6, from: Pascal, to: KgPerCm2, want: 145.037738 * 0.070307},
		{v: 1, from: MPerS, to: MPH, want: 2.23694},
		{v: 3.6, from: KmPerHour, to: MPerS, want: 1},
		{v: 1, from: MPH, to: KmPerHour, want: 1.60934},
		{v: 1, from: MPerSPerKm, to: MPHPerKilofoot, want: 0.13625756613945836},
		{v: 100, from: Roentgen, to: Sievert, want: 1},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%s to %s", test.from, test.to), func(t *testing.T) {
			have, err := Convert(test.v, test.from, test.to)
			require.NoError(t, err)
			assert.InEpsilon(t, test.want, have, 1e-12)
		})
	}
}

func TestChained(t *testing.T) {
	// Pa -> MPa -> kg/cm^2 gives the same answer as converting directly.
	mpa, err := Convert(250000, Pascal, MPa)
	require.NoError(t, err)
	kg, err := Convert(mpa, MPa, KgPerCm2)
	require.NoError(t, err)
	assert.InEpsilon(t, MustConvert(250000, Pascal, KgPerCm2), kg, 1e-12)
}

func TestIdentity(t *testing.T) {
	v, err := Convert(42, Unit("furlongs"), Unit("furlongs"))
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

func TestUnknown(t *testing.T) {
	for _, p := range []pair{
		{Meter, PSI},
		{KT, Meter},
		{Roentgen, MPH},
		{Unit("furlongs"), Meter},
		{Meter, Unit("cubits")},
	} {
		_, err := Convert(1, p.from, p.to)
		require.Error(t, err)
		assert.True(t, IsUnknownUnit(err), "%v", err)
		assert.Equal(t, &UnknownUnitError{From: p.from, To: p.to}, err)
	}
	assert.Panics(t, func() { MustConvert(1, Meter, PSI) })
	assert.False(t, IsUnknownUnit(fmt.Errorf("something else")))
}

func TestParse(t *testing.T) {
	u, err := Parse("kg/cm^2")
	require.NoError(t, err)
	assert.Equal(t, KgPerCm2, u)

	u, err = Parse("meters")
	require.NoError(t, err)
	assert.Equal(t, Meter, u)

	_, err = Parse("parsecs")
	assert.True(t, IsUnknownUnit(err))
	assert.EqualError(t, err, `units: unknown unit "parsecs"`)
}

func TestKinds(t *testing.T) {
	k, ok := KindOf(MPHPerKilofoot)
	assert.True(t, ok)
	assert.Equal(t, Shear, k)
	assert.Equal(t, "shear", k.String())

	assert.Equal(t, []Unit{MT, KT}, Of(Yield))
	assert.Len(t, Of(Distance), 6)
	assert.Len(t, Of(Pressure), 4)

	assert.NoError(t, Check(Mile, Distance))
	assert.Error(t, Check(Mile, Pressure))
	assert.True(t, IsUnknownUnit(Check("parsecs", Distance)))
}

func TestSI(t *testing.T) {
	q, err := SI(1, PSI)
	require.NoError(t, err)
	assert.InEpsilon(t, 6894.757, q.Value(), 1e-6)
	assert.NoError(t, q.Check(table[Pascal].dims))
}
