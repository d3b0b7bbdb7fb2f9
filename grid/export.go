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
	"encoding/csv"
	"io"
	"strconv"

	"github.com/tealeg/xlsx"
)

func format(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// table returns the grid as rows of text: a header row of x values
// followed by one row per y value, led by the y value.
func (g *Grid) table(corner string) [][]string {
	nx, ny := g.Dims()
	rows := make([][]string, 0, ny+1)
	header := make([]string, nx+1)
	header[0] = corner
	for c := 0; c < nx; c++ {
		header[c+1] = format(g.X(c))
	}
	rows = append(rows, header)
	for r := 0; r < ny; r++ {
		row := make([]string, nx+1)
		row[0] = format(g.Y(r))
		for c := 0; c < nx; c++ {
			row[c+1] = format(g.Z(c, r))
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteCSV writes the grid to w as comma-separated values, with x
// values across the first row and y values down the first column.
func (g *Grid) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(g.table("y\\x")); err != nil {
		return err
	}
	return cw.Error()
}

// WriteXLSX writes the grid to w as an Excel workbook with a single
// sheet, laid out as in WriteCSV.
func (g *Grid) WriteXLSX(w io.Writer, sheet string) error {
	f := xlsx.NewFile()
	s, err := f.AddSheet(sheet)
	if err != nil {
		return err
	}
	nx, ny := g.Dims()
	row := s.AddRow()
	row.AddCell().SetString("y\\x")
	for c := 0; c < nx; c++ {
		row.AddCell().SetFloat(g.X(c))
	}
	for r := 0; r < ny; r++ {
		row = s.AddRow()
		row.AddCell().SetFloat(g.Y(r))
		for c := 0; c < nx; c++ {
			row.AddCell().SetFloat(g.Z(c, r))
		}
	}
	return f.Write(w)
}
