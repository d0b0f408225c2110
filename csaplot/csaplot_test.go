/*
 * csaplot_test.go, part of gocsa.
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

package csaplot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	csa "github.com/gocsa/gocsa"
)

func TestDeltaPlot(Te *testing.T) {
	deltas := []*csa.Delta{
		{Label: "WAT1", LinkLabel: "WAT1", Charge: 0.02, LinkCharge: 0.02},
		{Label: "ALA3", LinkLabel: "ALA3*", Charge: -0.08, LinkCharge: -0.11},
		{Label: "LYS4", LinkLabel: "LYS4", Charge: 0.3, LinkCharge: 0.3},
	}
	dir := Te.TempDir()
	for _, link := range []bool{false, true} {
		name := filepath.Join(dir, "deltas.png")
		if link {
			name = filepath.Join(dir, "linkdeltas.svg")
		}
		if err := DeltaPlot(deltas, link, csa.DefaultThreshold, "Charge shifts", name); err != nil {
			Te.Fatal(err)
		}
		if info, err := os.Stat(name); err != nil || info.Size() == 0 {
			Te.Errorf("plot %s not written: %v", name, err)
		}
	}
	if err := DeltaPlot(nil, false, 0.05, "Nothing", filepath.Join(dir, "no.png")); err == nil {
		Te.Error("plotting no data should fail")
	}
}

func TestSeriesPlot(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "series.png")
	series := [][]float64{{0.1, 0.2, 0.15, 0.3}, {-0.1, -0.2, -0.1, 0}}
	if err := SeriesPlot(series, []string{"charge", "spin"}, "Scan", "e", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name); err != nil {
		Te.Error(err)
	}
	if err := SeriesPlot(series, []string{"charge"}, "Scan", "e", name); err == nil {
		Te.Error("mismatched names accepted")
	}
}

func TestXYsRead(Te *testing.T) {
	dat := `#Frame  c0
@ title
       1   0
       2   1

       3   0   7
bad line here
`
	xy, err := XYsRead(strings.NewReader(dat))
	if err != nil {
		Te.Fatal(err)
	}
	if len(xy) != 3 {
		Te.Fatalf("read %d points, expected 3", len(xy))
	}
	if xy[1].X != 2 || xy[1].Y != 1 || xy[2].X != 3 || xy[2].Y != 0 {
		Te.Errorf("wrong points %v", xy)
	}
}

func TestColors(Te *testing.T) {
	r, g, b := colors(0, 1)
	if r != 255 || g != 0 || b != 0 {
		Te.Errorf("first color should be red, got %d %d %d", r, g, b)
	}
	r, g, b = hsv2RGB(120, 1, 1)
	if r != 0 || g != 255 || b != 0 {
		Te.Errorf("hue 120 should be green, got %d %d %d", r, g, b)
	}
}
