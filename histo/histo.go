/*
 * histo.go, part of gocsa.
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

//Package histo bins charge shifts (or any other values) into histograms.
package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Uniform returns n+1 dividers splitting [min, max] into n bins of the same width.
func Uniform(min, max float64, n int) []float64 {
	if n < 1 || max <= min {
		panic("gocsa/histo.Uniform: need at least one bin and max > min")
	}
	return floats.Span(make([]float64, n+1), min, max)
}

//Data is a histogram.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	bins       []float64
}

//MarshalJSON writes the histogram as a JSON object with its dividers, bins
//and the number of values binned.
func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Bins       []float64 `json:"bins"`
	}{D.normalized, D.total, D.dividers, D.bins})
}

//Total returns the number of values in the histogram, not counting
//those that fell outside the dividers.
func (D *Data) Total() int {
	return D.total
}

//String returns the bins, one line each, with their limits.
func (D *Data) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d values, normalized: %v\n", D.total, D.normalized)
	for i, v := range D.bins {
		fmt.Fprintf(&b, "[%7.3f,%7.3f) %9.3f\n", D.dividers[i], D.dividers[i+1], v)
	}
	return b.String()
}

//NewData bins rawdata using dividers, which must be sorted and at least 2.
//Each bin includes its lower divider and excludes the upper one.
func NewData(dividers []float64, rawdata []float64) *Data {
	if len(dividers) < 2 {
		panic("gocsa/histo.NewData: at least 2 dividers are needed")
	}
	d := new(Data)
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.bin(rawdata)
	return d
}

//Normalize divides each bin by the number of values binned, so the bins add
//up to 1. It does nothing on an empty or already normalized histogram.
func (D *Data) Normalize() {
	if D.total <= 0 || D.normalized {
		return
	}
	floats.Scale(1/float64(D.total), D.bins)
	D.normalized = true
}

//View returns the bin values themselves, not a copy.
func (D *Data) View() []float64 {
	return D.bins
}

//Sum returns the sum of all bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.bins)
}

func (D *Data) bin(rawdata []float64) {
	data := make([]float64, len(rawdata))
	copy(data, rawdata)
	sort.Float64s(data)
	//stat.Histogram panics on values out of the dividers.
	data = data[:sort.SearchFloat64s(data, D.dividers[len(D.dividers)-1])]
	data = data[sort.SearchFloat64s(data, D.dividers[0]):]
	D.normalized = false
	D.total = len(data)
	D.bins = stat.Histogram(nil, D.dividers, data, nil)
}
