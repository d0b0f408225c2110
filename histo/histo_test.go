/*
 * histo_test.go, part of gocsa.
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

package histo

import (
	"encoding/json"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestHistoBins(Te *testing.T) {
	raw := []float64{-0.12, -0.04, 0.01, 0.02, 0.06, 0.3, 0.5, 0.2}
	d := NewData(Uniform(-0.2, 0.2, 4), raw)
	//0.3, 0.5 and 0.2 (the upper divider) are out of range
	if d.Total() != 5 {
		Te.Errorf("Total %d, expected 5", d.Total())
	}
	if !floats.Equal(d.View(), []float64{1, 1, 3, 0}) {
		Te.Errorf("bins %v, expected [1 1 3 0]", d.View())
	}
	if raw[0] != -0.12 || raw[6] != 0.5 {
		Te.Errorf("raw data was modified: %v", raw)
	}
	d.Normalize()
	if !scalar.EqualWithinAbs(d.Sum(), 1, 1e-12) {
		Te.Errorf("normalized histogram sums %f", d.Sum())
	}
	d.Normalize()
	if !floats.EqualApprox(d.View(), []float64{0.2, 0.2, 0.6, 0}, 1e-12) {
		Te.Errorf("normalizing twice changed the bins: %v", d.View())
	}
	if !strings.Contains(d.String(), "5 values, normalized: true") {
		Te.Errorf("unexpected representation %q", d.String())
	}
	empty := NewData([]float64{0, 1}, nil)
	empty.Normalize()
	if empty.Total() != 0 || empty.Sum() != 0 {
		Te.Errorf("empty histogram changed: %v", empty)
	}
}

func TestHistoJSON(Te *testing.T) {
	d := NewData([]float64{0, 1, 2, 3, 4, 8}, []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0})
	j, err := json.Marshal(d)
	if err != nil {
		Te.Fatal(err)
	}
	var back struct {
		Normalized bool
		Total      int
		Dividers   []float64
		Bins       []float64
	}
	if err := json.Unmarshal(j, &back); err != nil {
		Te.Fatal(err)
	}
	if back.Normalized || back.Total != 15 || !floats.Equal(back.Bins, d.View()) || len(back.Dividers) != 6 {
		Te.Errorf("wrong JSON %s", j)
	}
}
