/*
 * csaplot.go, part of gocsa.
 *
 * Copyright 2026 The gocsa authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package csaplot draws the results of a charge shift analysis: per-residue charge
//shifts as bar charts, and per-frame charges or spins, or any two-column data, as lines.
//The format of the output file is taken from the extension of its name (png, svg, pdf, eps...).
package csaplot

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	csa "github.com/gocsa/gocsa"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Size of the plots, the width grows with the number of bars.
var (
	Height   = 4 * vg.Inch
	MinWidth = 6 * vg.Inch
	BarWidth = vg.Points(9)
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//DeltaPlot saves to plotname a bar chart with the charge shift of each residue in deltas,
//or the link-corrected shift if link is true. Bars with a shift of at least threshold,
//in absolute value, are highlighted, and the ±threshold levels drawn.
func DeltaPlot(deltas []*csa.Delta, link bool, threshold float64, title, plotname string) error {
	if len(deltas) == 0 {
		return fmt.Errorf("csaplot: no charge shifts to plot")
	}
	p := basicPlot(title, "Residue", "Charge shift (e)")
	labels := make([]string, len(deltas))
	below := make(plotter.Values, len(deltas))
	above := make(plotter.Values, len(deltas))
	for i, d := range deltas {
		q := d.Charge
		labels[i] = d.Label
		if link {
			q = d.LinkCharge
			labels[i] = d.LinkLabel
		}
		if math.Abs(q) >= threshold {
			above[i] = q
		} else {
			below[i] = q
		}
	}
	//Two charts in the same positions, each bar is zero in one of them.
	for i, v := range []plotter.Values{below, above} {
		bars, err := plotter.NewBarChart(v, BarWidth)
		if err != nil {
			return err
		}
		bars.LineStyle.Width = 0
		bars.Color = color.RGBA{R: 150, G: 150, B: 150, A: 255}
		if i == 1 {
			r, g, b := colors(0, 1)
			bars.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		}
		p.Add(bars)
	}
	for _, sign := range []float64{1, -1} {
		level := sign * threshold
		f := plotter.NewFunction(func(float64) float64 { return level })
		f.Color = color.Black
		f.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(f)
	}
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = -1.2
	p.X.Tick.Label.YAlign = -0.5
	width := vg.Length(len(deltas)) * 1.5 * BarWidth
	if width < MinWidth {
		width = MinWidth
	}
	return p.Save(width, Height, plotname)
}

//SeriesPlot saves to plotname a line plot of each of the series, against the 1-based
//frame number. names, if not nil, must have a legend entry for each series.
func SeriesPlot(series [][]float64, names []string, title, ylabel, plotname string) error {
	data := make([]plotter.XYs, len(series))
	for i, s := range series {
		data[i] = make(plotter.XYs, len(s))
		for j, v := range s {
			data[i][j].X = float64(j + 1)
			data[i][j].Y = v
		}
	}
	return XYPlot(data, names, title, "Frame", ylabel, plotname)
}

//XYPlot saves to plotname a line plot of each set of points in data. names, if not nil,
//must have a legend entry for each set.
func XYPlot(data []plotter.XYs, names []string, title, xlabel, ylabel, plotname string) error {
	if names != nil && len(names) != len(data) {
		return fmt.Errorf("csaplot: %d names given for %d data sets", len(names), len(data))
	}
	p := basicPlot(title, xlabel, ylabel)
	for i, d := range data {
		l, err := plotter.NewLine(d)
		if err != nil {
			return err
		}
		r, g, b := colors(i, len(data))
		l.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		l.Width = vg.Points(1.5)
		p.Add(l)
		if names != nil {
			p.Legend.Add(names[i], l)
		}
	}
	p.Legend.Top = true
	return p.Save(MinWidth, Height, plotname)
}

//XYsRead reads two-column data from r, such as the .dat files written by CPPTraj.
//Empty lines, lines starting with "#" or "@" and lines whose first two fields are
//not numbers (headers) are skipped. Fields after the second are ignored.
func XYsRead(r io.Reader) (plotter.XYs, error) {
	ret := make(plotter.XYs, 0, 100)
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == '#' || line[0] == '@' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		ret = append(ret, plotter.XY{X: x, Y: y})
	}
	return ret, s.Err()
}
