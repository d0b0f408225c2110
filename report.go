/*
 * report.go, part of gocsa.
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

package csa

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/gocsa/gocsa/histo"
	"gonum.org/v1/gonum/stat"
)

//Report is the outcome of comparing the holo and apo residue charges.
type Report struct {
	Threshold  float64
	Removed    LabelSet //holo residues absent in apo
	All        []*Delta
	Cutoff     []*Delta //|Charge| >= Threshold
	LinkCutoff []*Delta //|LinkCharge| >= Threshold
}

//Compare runs the last two stages of the analysis: it finds the residues removed from holo
//to obtain apo, computes the charge shifts of the rest, and filters them with threshold.
func Compare(holo, apo []*Residue, threshold float64) (*Report, error) {
	if threshold < 0 || math.IsNaN(threshold) {
		return nil, newError(ErrInvalidThreshold, fmt.Sprintf("%g is not a valid threshold", threshold), "", "Compare")
	}
	R := &Report{Threshold: threshold}
	R.Removed = Diff(holo, apo)
	var err error
	R.All, err = Deltas(holo, apo, R.Removed)
	if err != nil {
		return nil, errDecorate(err, "Compare")
	}
	R.Cutoff, R.LinkCutoff = Filter(R.All, threshold)
	return R, nil
}

//WriteFiles writes the report to dir: all.diffmullres and all.difflinkmullres with every
//charge shift, cutoff.diffmullres and cutoff.difflinkmullres with the filtered ones.
func (R *Report) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files := []struct {
		name   string
		deltas []*Delta
		link   bool
	}{
		{"all.diffmullres", R.All, false},
		{"all.difflinkmullres", R.All, true},
		{"cutoff.diffmullres", R.Cutoff, false},
		{"cutoff.difflinkmullres", R.LinkCutoff, true},
	}
	for _, f := range files {
		if err := DeltasFileWrite(filepath.Join(dir, f.name), f.deltas, f.link); err != nil {
			return err
		}
	}
	return nil
}

//Shifts returns the charge shifts of all the residues in the report, in order, or
//the link-corrected ones if link is true.
func (R *Report) Shifts(link bool) []float64 {
	ret := make([]float64, len(R.All))
	for i, d := range R.All {
		if link {
			ret[i] = d.LinkCharge
		} else {
			ret[i] = d.Charge
		}
	}
	return ret
}

//Stats summarizes a set of charge shifts.
type Stats struct {
	N       int
	Mean    float64
	StdDev  float64 //sample standard deviation, 0 for fewer than 2 shifts.
	MaxAbs  float64
	MaxFrom string //label of the residue with the largest shift in absolute value
}

func (S Stats) String() string {
	return fmt.Sprintf("%d residues, mean shift %.4f, std. dev. %.4f, largest %.4f (%s)", S.N, S.Mean, S.StdDev, S.MaxAbs, S.MaxFrom)
}

//Stats returns statistics for the charge shifts in the report or, if link is true, for the
//link-corrected ones.
func (R *Report) Stats(link bool) Stats {
	s := Stats{N: len(R.All)}
	if s.N == 0 {
		return s
	}
	q := R.Shifts(link)
	s.Mean = stat.Mean(q, nil)
	if s.N > 1 {
		s.StdDev = stat.StdDev(q, nil)
	}
	for i, v := range q {
		if math.Abs(v) > s.MaxAbs || s.MaxFrom == "" {
			s.MaxAbs = math.Abs(v)
			s.MaxFrom = R.All[i].Label
			if link {
				s.MaxFrom = R.All[i].LinkLabel
			}
		}
	}
	return s
}

//Histogram returns a histogram of the charge shifts in the report (link-corrected, if link is true),
//with the given dividers, which must be sorted and at least 2. Shifts outside the dividers are not counted.
func (R *Report) Histogram(dividers []float64, link bool) *histo.Data {
	return histo.NewData(dividers, R.Shifts(link))
}

//Dividers returns bins+1 dividers for bins of the same width covering all the
//shifts in the report (link-corrected if link is true), symmetric around zero.
//If all the shifts are zero, the dividers cover [-Threshold, Threshold] or,
//for a zero threshold, [-1, 1].
func (R *Report) Dividers(bins int, link bool) []float64 {
	if bins < 1 {
		bins = 1
	}
	lim := R.Stats(link).MaxAbs
	if lim <= 0 {
		lim = R.Threshold
	}
	if lim <= 0 {
		lim = 1
	}
	//the upper divider is excluded from the last bin
	return histo.Uniform(-lim, math.Nextafter(lim, math.Inf(1)), bins)
}

//HistogramFileWrite writes a normalized histogram of the shifts in the report
//(link-corrected if link is true) to the file name, as JSON, using bins bins.
func (R *Report) HistogramFileWrite(name string, bins int, link bool) error {
	h := R.Histogram(R.Dividers(bins, link), link)
	h.Normalize()
	b, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, append(b, '\n'), 0o644); err != nil {
		return err
	}
	log.Printf("Wrote a %d-bin histogram of %d charge shifts to %s", bins, h.Total(), name)
	return nil
}
