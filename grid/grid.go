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

// Package grid evaluates model functions over rectilinear grids of
// ground locations, for mapping and plotting.
package grid

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Grid holds values on a rectilinear grid. It implements the
// plotter.GridXYZ interface of gonum.org/v1/plot.
type Grid struct {
	x, y   []float64
	values *mat.Dense // rows are y, columns are x
}

// New returns a grid of zeros with the given axes, which must not be
// empty.
func New(x, y []float64) *Grid {
	return &Grid{x: x, y: y, values: mat.NewDense(len(y), len(x), nil)}
}

// Dims returns the number of columns (x values) and rows (y values).
func (g *Grid) Dims() (c, r int) { return len(g.x), len(g.y) }

// Z returns the value at column c and row r.
func (g *Grid) Z(c, r int) float64 { return g.values.At(r, c) }

// X returns the x coordinate of column c.
func (g *Grid) X(c int) float64 { return g.x[c] }

// Y returns the y coordinate of row r.
func (g *Grid) Y(r int) float64 { return g.y[r] }

// Set sets the value at column c and row r.
func (g *Grid) Set(c, r int, v float64) { g.values.Set(r, c, v) }

// Values returns the grid values, with one row per y value.
func (g *Grid) Values() *mat.Dense { return g.values }

// Min returns the smallest value in the grid.
func (g *Grid) Min() float64 { return mat.Min(g.values) }

// Max returns the largest value in the grid.
func (g *Grid) Max() float64 { return mat.Max(g.values) }

// Axis returns the values from start up to but not including stop, step
// apart.
func Axis(start, stop, step float64) []float64 {
	n := int(math.Ceil((stop - start) / step))
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, start+float64(n-1)*step)
}

// Func is a model function of a ground location.
type Func func(x, y float64) (float64, error)

// Evaluate returns f evaluated at every combination of xs and ys, using
// the given number of concurrent workers (all available processors if
// workers < 1). It stops at the first error or when ctx is cancelled.
func Evaluate(ctx context.Context, xs, ys []float64, f Func, workers int, log logrus.FieldLogger) (*Grid, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return nil, errors.New("grid: empty axis")
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	g := New(xs, ys)
	n := len(xs) * len(ys)
	log = log.WithFields(logrus.Fields{
		"nx":      len(xs),
		"ny":      len(ys),
		"workers": workers,
	})
	log.Debug("evaluating grid")
	start := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}
	wg.Add(workers)
	for p := 0; p < workers; p++ {
		go func(p int) {
			defer wg.Done()
			for i := p; i < n; i += workers {
				if err := ctx.Err(); err != nil {
					fail(err)
					return
				}
				c, r := i%len(xs), i/len(xs)
				v, err := f(xs[c], ys[r])
				if err != nil {
					fail(fmt.Errorf("grid: at (%g, %g): %w", xs[c], ys[r], err))
					return
				}
				g.Set(c, r, v)
			}
		}(p)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	log.WithField("elapsed", time.Since(start)).Info("evaluated grid")
	return g, nil
}
