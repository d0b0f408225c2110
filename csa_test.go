/*
 * csa_test.go, part of gocsa.
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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

//maskOf builds a mask with one atom per element of resids.
func maskOf(names []string, resids []int) *Mask {
	m := &Mask{Variant: Holo}
	for i, id := range resids {
		m.Atoms = append(m.Atoms, &Atom{ID: i + 1, Name: "C", ResName: names[i], ResID: id, Position: i})
	}
	return m
}

func residues(labels []string, charges []float64) []*Residue {
	ret := make([]*Residue, len(labels))
	for i, l := range labels {
		name, id, linked, err := parseLabel(l)
		if err != nil {
			panic(err)
		}
		ret[i] = &Residue{Name: name, ID: id, Charge: charges[i], LinkCharge: charges[i], Linked: linked}
	}
	return ret
}

func labelsOf(deltas []*Delta) []string {
	ret := make([]string, len(deltas))
	for i, d := range deltas {
		ret[i] = d.Label
	}
	return ret
}

func chargesOf(deltas []*Delta) []float64 {
	ret := make([]float64, len(deltas))
	for i, d := range deltas {
		ret[i] = d.Charge
	}
	return ret
}

//One residue per run of equal residue IDs, and the total charge is kept.
func TestAggregate(Te *testing.T) {
	names := []string{"ALA", "ALA", "GLY", "GLY", "GLY", "LYS", "WAT", "WAT"}
	ids := []int{1, 1, 2, 2, 2, 5, 7, 7}
	table := ChargeTable{0.1, -0.2, 0.3, 0.05, -0.05, 1.0, -0.4, 0.2}
	res, err := Aggregate(maskOf(names, ids), table)
	if err != nil {
		Te.Fatal(err)
	}
	if len(res) != 4 {
		Te.Fatalf("%d residues, expected 4", len(res))
	}
	members := []int{2, 3, 1, 2}
	q := make([]float64, len(res))
	for i, r := range res {
		if r.Members != members[i] {
			Te.Errorf("residue %s has %d atoms, expected %d", r.Label(), r.Members, members[i])
		}
		if r.Linked || r.LinkCharge != r.Charge {
			Te.Errorf("residue %s should not be link-corrected", r.Label())
		}
		q[i] = r.Charge
	}
	if !scalar.EqualWithinAbs(floats.Sum(q), floats.Sum(table), tol) {
		Te.Errorf("charge not conserved: %g vs %g", floats.Sum(q), floats.Sum(table))
	}
	if !floats.EqualApprox(q, []float64{-0.1, 0.3, 1.0, -0.2}, tol) {
		Te.Errorf("wrong residue charges %v", q)
	}
	if res[2].Label() != "LYS5" {
		Te.Errorf("wrong label %s", res[2].Label())
	}
}

func TestAggregateLinks(Te *testing.T) {
	m := maskOf([]string{"ALA", "ALA", "GLY", "SER"}, []int{1, 1, 2, 3})
	m.Links = []*Atom{
		{Name: "HL", ResName: "GLY", ResID: 1}, //GLY2, k=1
		{Name: "HL", ResName: "THR", ResID: 8}, //no THR9, ignored
	}
	//4 mask atoms. The GLY2 link charge is at 1+4-1=4.
	table := ChargeTable{0.1, 0.1, 0.5, -0.3, 0.25}
	res, err := Aggregate(m, table)
	if err != nil {
		Te.Fatal(err)
	}
	if !res[1].Linked || res[1].LinkLabel() != "GLY2*" {
		Te.Errorf("GLY2 should be link-corrected: %v", res[1])
	}
	if !scalar.EqualWithinAbs(res[1].LinkCharge, 0.75, tol) || res[1].Charge != 0.5 {
		Te.Errorf("wrong GLY2 charges %v", res[1])
	}
	if res[0].Linked || res[2].Linked {
		Te.Error("only GLY2 should be link-corrected")
	}
	//no room for the link charge
	_, err = Aggregate(m, table[:4])
	if !errors.Is(err, ErrChargeTableMismatch) {
		Te.Errorf("expected a charge table error, got %v", err)
	}
	m.Links[0].ResName, m.Links[0].ResID = "SER", 2 //k=2, position 5
	_, err = Aggregate(m, table)
	if !errors.Is(err, ErrChargeTableMismatch) {
		Te.Errorf("expected a charge table error, got %v", err)
	}
}

func TestAggregateErrors(Te *testing.T) {
	_, err := Aggregate(maskOf([]string{"A", "B"}, []int{1, 2}), ChargeTable{0.1})
	if !errors.Is(err, ErrChargeTableMismatch) {
		Te.Errorf("expected a charge table error, got %v", err)
	}
	_, err = Aggregate(maskOf([]string{"A", "B", "C"}, []int{1, 3, 2}), ChargeTable{0.1, 0.2, 0.3})
	if !errors.Is(err, ErrMalformedStructure) {
		Te.Errorf("expected a malformed structure error, got %v", err)
	}
	res, err := Aggregate(maskOf(nil, nil), nil)
	if err != nil || len(res) != 0 {
		Te.Errorf("an empty mask gives no residues: %v %v", res, err)
	}
	_, err = ChargesRead(strings.NewReader("1 C 0.1\n\n2 C\n"), "bad.xls")
	if !errors.Is(err, ErrMalformedCharges) || !strings.Contains(err.Error(), "line 3") {
		Te.Errorf("expected a malformed charges error at line 3, got %v", err)
	}
	_, err = ChargesRead(strings.NewReader("1 C NaN\n"), "bad.xls")
	if !errors.Is(err, ErrMalformedCharges) {
		Te.Errorf("expected a malformed charges error, got %v", err)
	}
}

func TestDiff(Te *testing.T) {
	h := residues([]string{"WAT1", "LIG2", "ALA3", "FE4"}, []float64{0, 0, 0, 0})
	a := residues([]string{"WAT1", "ALA3", "HOH9"}, []float64{0, 0, 0})
	if Diff(h, h).Len() != 0 {
		Te.Error("Diff of a list with itself must be empty")
	}
	d := Diff(h, a)
	if fmt.Sprint(d.Sorted()) != "[FE4 LIG2]" {
		Te.Errorf("wrong difference %v", d.Sorted())
	}
	union := Labels(h)
	for k := range Labels(a) {
		union.Add(k)
	}
	all := d.Sub(LabelSet{})
	for _, s := range []LabelSet{Diff(a, h), Labels(h).Intersect(Labels(a))} {
		for k := range s {
			all.Add(k)
		}
	}
	if fmt.Sprint(all.Sorted()) != fmt.Sprint(union.Sorted()) {
		Te.Errorf("%v is not the union %v", all.Sorted(), union.Sorted())
	}
	//the link marker is not part of the label
	linked := residues([]string{"ALA3*"}, []float64{0})
	if Diff(linked, a).Len() != 0 {
		Te.Error("ALA3* should match ALA3")
	}
}

func TestDeltasIdentical(Te *testing.T) {
	h := residues([]string{"ALA1", "GLY2", "LYS3"}, []float64{0.1, -0.3, 1.2})
	deltas, err := Deltas(h, h, Diff(h, h))
	if err != nil {
		Te.Fatal(err)
	}
	if len(deltas) != 3 {
		Te.Fatalf("%d deltas, expected 3", len(deltas))
	}
	for _, d := range deltas {
		if d.Charge != 0 || d.LinkCharge != 0 {
			Te.Errorf("non-zero delta %v", d)
		}
	}
}

func TestDeltasLigand(Te *testing.T) {
	h := residues([]string{"WAT1", "LIG2", "ALA3"}, []float64{0.50, -0.30, 0.10})
	a := residues([]string{"WAT1", "ALA3"}, []float64{0.48, 0.11})
	r, err := Compare(h, a, DefaultThreshold)
	if err != nil {
		Te.Fatal(err)
	}
	if fmt.Sprint(labelsOf(r.All)) != "[WAT1 ALA3]" {
		Te.Errorf("wrong residues %v", labelsOf(r.All))
	}
	if !floats.EqualApprox(chargesOf(r.All), []float64{0.02, -0.01}, tol) {
		Te.Errorf("wrong deltas %v", chargesOf(r.All))
	}
	if !r.Removed.Has("LIG2") || r.Removed.Len() != 1 {
		Te.Errorf("wrong removed set %v", r.Removed.Sorted())
	}
	if len(r.Cutoff) != 0 || len(r.LinkCutoff) != 0 {
		Te.Errorf("no shift is above the threshold")
	}
}

//The ligand is dropped from the holo list and the offset catches up at ALA3.
func TestDeltasLigandRemoved(Te *testing.T) {
	h := residues([]string{"WAT1", "LIG2", "ALA3"}, []float64{0.40, -0.30, 0.10})
	a := residues([]string{"WAT1", "ALA3"}, []float64{0.38, 0.11})
	removed := Diff(h, a)
	if fmt.Sprint(removed.Sorted()) != "[LIG2]" {
		Te.Fatalf("wrong difference %v", removed.Sorted())
	}
	deltas, err := Deltas(h, a, removed)
	if err != nil {
		Te.Fatal(err)
	}
	if fmt.Sprint(labelsOf(deltas)) != "[WAT1 ALA3]" {
		Te.Errorf("wrong residues %v", labelsOf(deltas))
	}
	if !floats.EqualApprox(chargesOf(deltas), []float64{0.02, -0.01}, tol) {
		Te.Errorf("wrong deltas %v", chargesOf(deltas))
	}
}

func TestFilter(Te *testing.T) {
	deltas := []*Delta{
		{Label: "A1", Charge: 0.02, LinkCharge: 0.06},
		{Label: "B2", Charge: 0.06, LinkCharge: 0.0},
		{Label: "C3", Charge: -0.10, LinkCharge: -0.05},
	}
	base, link := Filter(deltas, 0.05)
	if !floats.Equal(chargesOf(base), []float64{0.06, -0.10}) {
		Te.Errorf("wrong filtered shifts %v", chargesOf(base))
	}
	if fmt.Sprint(labelsOf(link)) != "[A1 C3]" {
		Te.Errorf("wrong filtered link shifts %v", labelsOf(link))
	}
}

func TestDeltasRemovals(Te *testing.T) {
	full := []string{"R1", "R2", "R3", "R4", "R5", "R6"}
	q := []float64{1, 2, 3, 4, 5, 6}
	h := residues(full, q)
	cases := []struct {
		removed []int //positions in full
	}{
		{[]int{0}},
		{[]int{2}},
		{[]int{5}},
		{[]int{0, 3, 5}},
		{[]int{1, 2}},
	}
	for _, c := range cases {
		var al []string
		var aq []float64
		skip := map[int]bool{}
		for _, p := range c.removed {
			skip[p] = true
		}
		for i := range full {
			if !skip[i] {
				al = append(al, full[i])
				aq = append(aq, q[i]-0.5)
			}
		}
		a := residues(al, aq)
		deltas, err := Deltas(h, a, Diff(h, a))
		if err != nil {
			Te.Errorf("removing %v: %v", c.removed, err)
			continue
		}
		if fmt.Sprint(labelsOf(deltas)) != fmt.Sprint(al) {
			Te.Errorf("removing %v: got %v, expected %v", c.removed, labelsOf(deltas), al)
		}
		for _, d := range deltas {
			if !scalar.EqualWithinAbs(d.Charge, 0.5, tol) {
				Te.Errorf("removing %v: wrong delta %v", c.removed, d)
			}
		}
	}
}

func TestDeltasDrift(Te *testing.T) {
	h := residues([]string{"A1", "B2", "C3"}, []float64{0, 0, 0})
	//apo with a residue not in holo: the offset model can't pair them
	a := residues([]string{"A1", "X9", "B2", "C3"}, []float64{0, 0, 0, 0})
	_, err := Deltas(h, a, Diff(h, a))
	if !errors.Is(err, ErrAlignmentDrift) {
		Te.Errorf("expected alignment drift, got %v", err)
	}
	//apo with fewer residues than holo, but nothing declared removed
	short := residues([]string{"A1", "B2"}, []float64{0, 0})
	_, err = Deltas(h, short, LabelSet{})
	if !errors.Is(err, ErrIndexOutOfRange) {
		Te.Errorf("expected index out of range, got %v", err)
	}
	if !strings.Contains(err.Error(), "C3") {
		Te.Errorf("error should name the residue: %v", err)
	}
	//extra apo residues at the end
	long := residues([]string{"A1", "B2", "C3", "D4"}, []float64{0, 0, 0, 0})
	_, err = Deltas(h, long, Diff(h, long))
	if !errors.Is(err, ErrAlignmentDrift) {
		Te.Errorf("expected alignment drift, got %v", err)
	}
	for _, t := range []float64{-1, math.NaN()} {
		_, err = Compare(h, h, t)
		if !errors.Is(err, ErrInvalidThreshold) {
			Te.Errorf("threshold %g: expected an invalid threshold error, got %v", t, err)
		}
		if e, ok := err.(Error); !ok || e.Trace() != "Compare" {
			Te.Errorf("threshold %g: error of type %T", t, err)
		}
	}
}

func TestLabelsIO(Te *testing.T) {
	s := LabelSet{}
	for _, l := range []string{"LIG2", "FE400", "HOH12"} {
		s.Add(l)
	}
	var b bytes.Buffer
	if err := WriteLabels(&b, s); err != nil {
		Te.Fatal(err)
	}
	r, err := LabelsRead(&b)
	if err != nil {
		Te.Fatal(err)
	}
	if fmt.Sprint(r.Sorted()) != fmt.Sprint(s.Sorted()) {
		Te.Errorf("read %v, wrote %v", r.Sorted(), s.Sorted())
	}
}

func TestResiduesIO(Te *testing.T) {
	res := residues([]string{"WAT1", "ALA3", "GLY4"}, []float64{0.02, -0.01, 0.1})
	res[1].Linked = true
	res[1].LinkCharge = 0.06
	var b bytes.Buffer
	if err := WriteResidues(&b, res, true); err != nil {
		Te.Fatal(err)
	}
	if b.String() != "WAT1 0.02\nALA3* 0.06\nGLY4 0.1\n" {
		Te.Errorf("wrong output %q", b.String())
	}
	name := filepath.Join(Te.TempDir(), "holo.mullres")
	if err := ResiduesFileWrite(name, res, false); err != nil {
		Te.Fatal(err)
	}
	back, err := ResiduesFileRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if len(back) != 3 {
		Te.Fatalf("read %d residues", len(back))
	}
	for i := range back {
		if back[i].Label() != res[i].Label() || back[i].Charge != res[i].Charge {
			Te.Errorf("read %v, wrote %v", back[i], res[i])
		}
	}
	if _, err := ResiduesRead(strings.NewReader("ALA 0.1\n"), ""); !errors.Is(err, ErrMalformedCharges) {
		Te.Errorf("label without ID accepted: %v", err)
	}
}

//The whole analysis on the files in test/.
func TestQuickCSA(Te *testing.T) {
	cfg := Config{InputDir: filepath.Join(rootdirtest, "1_input")}
	holo, err := LoadVariant(Holo, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	apo, err := LoadVariant(Apo, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if len(holo.Residues) != 4 || len(apo.Residues) != 3 {
		Te.Fatalf("got %d holo and %d apo residues", len(holo.Residues), len(apo.Residues))
	}
	if len(holo.Mask.Links) != 1 || !holo.Residues[2].Linked {
		Te.Errorf("ALA3 should be link-corrected in holo")
	}
	r, err := Compare(holo.Residues, apo.Residues, DefaultThreshold)
	if err != nil {
		Te.Fatal(err)
	}
	if fmt.Sprint(r.Removed.Sorted()) != "[LIG2]" {
		Te.Errorf("wrong removed residues %v", r.Removed.Sorted())
	}
	if !floats.EqualApprox(chargesOf(r.All), []float64{0.02, -0.01, 0.10}, tol) {
		Te.Errorf("wrong shifts %v", chargesOf(r.All))
	}
	link := make([]float64, len(r.All))
	for i, d := range r.All {
		link[i] = d.LinkCharge
	}
	//ALA3: (-0.01+0.07)-(0+0.04)
	if !floats.EqualApprox(link, []float64{0.02, 0.02, 0.10}, tol) {
		Te.Errorf("wrong link-corrected shifts %v", link)
	}
	if r.All[1].LinkLabel != "ALA3*" {
		Te.Errorf("wrong link label %s", r.All[1].LinkLabel)
	}
	if fmt.Sprint(labelsOf(r.Cutoff)) != "[GLY4]" || fmt.Sprint(labelsOf(r.LinkCutoff)) != "[GLY4]" {
		Te.Errorf("wrong filtered residues %v %v", labelsOf(r.Cutoff), labelsOf(r.LinkCutoff))
	}
	s := r.Stats(false)
	if s.N != 3 || s.MaxFrom != "GLY4" || !scalar.EqualWithinAbs(s.Mean, 0.11/3, tol) {
		Te.Errorf("wrong statistics %v", s)
	}
	h := r.Histogram([]float64{-0.05, 0, 0.05, 0.15}, false)
	if !floats.Equal(h.View(), []float64{1, 1, 1}) {
		Te.Errorf("wrong histogram %v", h.View())
	}
	out := Te.TempDir()
	if err := r.WriteFiles(out); err != nil {
		Te.Fatal(err)
	}
	if err := holo.WriteFiles(out); err != nil {
		Te.Fatal(err)
	}
	cut, err := os.ReadFile(filepath.Join(out, "cutoff.diffmullres"))
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(string(cut), "GLY4 ") || strings.Count(string(cut), "\n") != 1 {
		Te.Errorf("wrong cutoff file %q", cut)
	}
	for _, f := range []string{"all.diffmullres", "all.difflinkmullres", "cutoff.difflinkmullres", "holo.mullres", "holo.linkres"} {
		if _, err := os.Stat(filepath.Join(out, f)); err != nil {
			Te.Error(err)
		}
	}
	back, err := ResiduesFileRead(filepath.Join(out, "holo.linkres"))
	if err != nil {
		Te.Fatal(err)
	}
	if !back[2].Linked || back[2].Label() != "ALA3" {
		Te.Errorf("wrong residue read back %v", back[2])
	}
}

func TestCheckpoint(Te *testing.T) {
	cfg := Config{InputDir: filepath.Join(rootdirtest, "1_input")}
	holo, err := LoadVariant(Holo, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	for _, ext := range []string{".zst", ".gz"} {
		name := filepath.Join(Te.TempDir(), "holo"+ext)
		if err := WriteCheckpoint(name, holo); err != nil {
			Te.Fatal(err)
		}
		back, err := ReadCheckpoint(name)
		if err != nil {
			Te.Fatal(err)
		}
		if back.Tag != Holo || len(back.Residues) != len(holo.Residues) {
			Te.Fatalf("read %s with %d residues", back.Tag, len(back.Residues))
		}
		for i, r := range back.Residues {
			if *r != *holo.Residues[i] {
				Te.Errorf("read %v, wrote %v", r, holo.Residues[i])
			}
		}
	}
}

func TestLoadVariantErrors(Te *testing.T) {
	dir := Te.TempDir()
	_, err := LoadVariant(Apo, Config{InputDir: dir})
	if !errors.Is(err, ErrMissingResidueFile) {
		Te.Errorf("expected a missing residue file error, got %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "apo_residues"), []byte("1-3\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	_, err = LoadVariant(Apo, Config{InputDir: dir})
	if !errors.Is(err, ErrAmbiguousStructureInput) {
		Te.Errorf("expected an ambiguous structure error, got %v", err)
	}
	for _, n := range []string{"a.pdb", "b.pdb"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("END\n"), 0o644); err != nil {
			Te.Fatal(err)
		}
	}
	_, err = LoadVariant(Apo, Config{InputDir: dir})
	if !errors.Is(err, ErrAmbiguousStructureInput) {
		Te.Errorf("expected an ambiguous structure error, got %v", err)
	}
	if e, ok := err.(Error); !ok || !strings.Contains(e.Trace(), "LoadVariant") {
		Te.Errorf("error not decorated: %v", err)
	}
}

func TestReportHistogram(Te *testing.T) {
	h := residues([]string{"A1", "B2", "C3"}, []float64{0.05, -0.25, 0.28})
	a := residues([]string{"A1", "B2", "C3"}, []float64{0, 0, 0})
	r, err := Compare(h, a, DefaultThreshold)
	if err != nil {
		Te.Fatal(err)
	}
	d := r.Dividers(3, false)
	if len(d) != 4 || d[0] != -0.28 || d[3] <= 0.28 {
		Te.Errorf("wrong dividers %v", d)
	}
	//the largest shift falls in the last bin
	if !floats.Equal(r.Histogram(d, false).View(), []float64{1, 1, 1}) {
		Te.Errorf("wrong histogram %v", r.Histogram(d, false).View())
	}
	name := filepath.Join(Te.TempDir(), "diffmullres.histo.json")
	if err := r.HistogramFileWrite(name, 3, false); err != nil {
		Te.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	var back struct {
		Normalized bool
		Total      int
		Bins       []float64
	}
	if err := json.Unmarshal(b, &back); err != nil {
		Te.Fatal(err)
	}
	if !back.Normalized || back.Total != 3 || !floats.EqualApprox(back.Bins, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, tol) {
		Te.Errorf("wrong histogram file %s", b)
	}
}

//All-zero shifts with a zero threshold still give a usable histogram.
func TestReportHistogramZero(Te *testing.T) {
	h := residues([]string{"A1", "B2"}, []float64{0.1, 0.2})
	r, err := Compare(h, h, 0)
	if err != nil {
		Te.Fatal(err)
	}
	d := r.Dividers(4, true)
	if len(d) != 5 || d[0] != -1 || d[4] <= 1 {
		Te.Errorf("wrong dividers %v", d)
	}
	if hz := r.Histogram(d, true); hz.Total() != 2 || hz.Sum() != 2 {
		Te.Errorf("wrong histogram %v", hz)
	}
	r.Threshold = 0.05
	if d := r.Dividers(2, false); d[0] != -0.05 {
		Te.Errorf("dividers should fall back to the threshold: %v", d)
	}
	if err := r.HistogramFileWrite(filepath.Join(Te.TempDir(), "zero.json"), 4, false); err != nil {
		Te.Error(err)
	}
}
