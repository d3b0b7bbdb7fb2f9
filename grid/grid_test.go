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

package grid

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/spatialmodel/glasstone/airblast"
)

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = new(bytes.Buffer)
	return l
}

func TestAxis(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1, 1.5}, Axis(0, 2, 0.5))
	assert.Equal(t, []float64{3}, Axis(3, 3.1, 0.25))
	assert.Nil(t, Axis(1, 0, 0.5))
	a := Axis(-1, 10, 0.1)
	assert.Len(t, a, 110)
	assert.InDelta(t, 9.9, a[len(a)-1], 1e-12)
}

func TestEvaluate(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{10, 20, 30}
	for _, workers := range []int{0, 1, 3, 16} {
		g, err := Evaluate(context.Background(), xs, ys, func(x, y float64) (float64, error) {
			return x + y, nil
		}, workers, testLogger())
		require.NoError(t, err)
		nx, ny := g.Dims()
		assert.Equal(t, 4, nx)
		assert.Equal(t, 3, ny)
		for c := 0; c < nx; c++ {
			for r := 0; r < ny; r++ {
				assert.Equal(t, xs[c]+ys[r], g.Z(c, r))
			}
		}
		assert.Equal(t, 10.0, g.Min())
		assert.Equal(t, 33.0, g.Max())
		assert.Equal(t, 2.0, g.X(2))
		assert.Equal(t, 30.0, g.Y(2))
	}
}

func TestEvaluateError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Evaluate(context.Background(), Axis(0, 10, 1), Axis(0, 10, 1), func(x, y float64) (float64, error) {
		if x == 5 && y == 5 {
			return 0, boom
		}
		return 1, nil
	}, 4, testLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "(5, 5)")

	_, err = Evaluate(context.Background(), nil, []float64{1}, nil, 1, testLogger())
	assert.Error(t, err)
}

func TestEvaluateCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Evaluate(ctx, Axis(0, 10, 1), Axis(0, 10, 1), func(x, y float64) (float64, error) {
		return 1, nil
	}, 2, testLogger())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWriteCSV(t *testing.T) {
	g := New([]float64{0, 0.5}, []float64{1, 2})
	g.Set(0, 0, 1)
	g.Set(1, 0, 2.5)
	g.Set(0, 1, 3)
	g.Set(1, 1, 1e-12)
	var b bytes.Buffer
	require.NoError(t, g.WriteCSV(&b))
	want := strings.Join([]string{
		`y\x,0,0.5`,
		`1,1,2.5`,
		`2,3,1e-12`,
		``,
	}, "\n")
	assert.Equal(t, want, b.String())
}

func TestWriteXLSX(t *testing.T) {
	g := New([]float64{0, 0.5}, []float64{1, 2})
	g.Set(1, 1, 42)
	var b bytes.Buffer
	require.NoError(t, g.WriteXLSX(&b, "dose"))

	f, err := xlsx.OpenBinary(b.Bytes())
	require.NoError(t, err)
	s, ok := f.Sheet["dose"]
	require.True(t, ok)
	require.Len(t, s.Rows, 3)
	assert.Equal(t, `y\x`, s.Rows[0].Cells[0].Value)
	v, err := s.Rows[2].Cells[2].Float()
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
	v, err = s.Rows[0].Cells[2].Float()
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
}

func TestScenarioCache(t *testing.T) {
	c := NewScenarioCache(10)
	ctx := context.Background()
	a, err := c.Scenario(ctx, 1, 500, 200)
	require.NoError(t, err)
	b, err := c.Scenario(ctx, 1, 500, 200)
	require.NoError(t, err)
	assert.True(t, a == b, "repeated requests must share a scenario")
	assert.Equal(t, airblast.NewScenario(1, 500, 200).PeakOverpressure(), a.PeakOverpressure())

	d, err := c.Scenario(ctx, 1, 500, 100)
	require.NoError(t, err)
	assert.False(t, a == d)
}
