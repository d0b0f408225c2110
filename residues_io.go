/*
 * residues_io.go, part of gocsa.
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
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

//Output files are plain text, one "{label} {value}" line per residue.

func formatCharge(q float64) string {
	return strconv.FormatFloat(q, 'g', -1, 64)
}

//WriteResidues writes residues to w, with their labels and charges or, if link is true,
//with their link labels and link-corrected charges.
func WriteResidues(w io.Writer, residues []*Residue, link bool) error {
	b := bufio.NewWriter(w)
	for _, r := range residues {
		var err error
		if link {
			_, err = fmt.Fprintf(b, "%s %s\n", r.LinkLabel(), formatCharge(r.LinkCharge))
		} else {
			_, err = fmt.Fprintf(b, "%s %s\n", r.Label(), formatCharge(r.Charge))
		}
		if err != nil {
			return err
		}
	}
	return b.Flush()
}

//ResiduesFileWrite writes the residues to the file name. See WriteResidues.
func ResiduesFileWrite(name string, residues []*Residue, link bool) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = WriteResidues(f, residues, link); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	log.Printf("Wrote %d residues to %s", len(residues), name)
	return nil
}

//parseLabel splits a label in residue name and ID. The ID is the longest run
//of digits at the end of the label, so it can't separate a residue name that
//ends in digits from its ID. A trailing "*" marks a link-corrected residue.
func parseLabel(label string) (name string, id int, linked bool, err error) {
	label, linked = strings.CutSuffix(label, "*")
	i := len(label)
	for i > 0 && label[i-1] >= '0' && label[i-1] <= '9' {
		i--
	}
	if i == len(label) {
		return "", 0, false, fmt.Errorf("label %q has no residue ID", label)
	}
	id, err = strconv.Atoi(label[i:])
	return label[:i], id, linked, err
}

//ResiduesRead reads residues in the format written by WriteResidues. The value in each line is
//set as both Charge and LinkCharge. Residues with a "*" after the label are marked Linked.
//filename is used only in error messages.
func ResiduesRead(r io.Reader, filename string) ([]*Residue, error) {
	ret := make([]*Residue, 0, 32)
	s := bufio.NewScanner(r)
	lineno := 0
	for s.Scan() {
		lineno++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, newError(ErrMalformedCharges, fmt.Sprintf("line %d has %d fields, expected 2", lineno, len(fields)), filename, "ResiduesRead")
		}
		name, id, linked, err := parseLabel(fields[0])
		if err != nil {
			return nil, newError(ErrMalformedCharges, fmt.Sprintf("line %d: %s", lineno, err.Error()), filename, "ResiduesRead")
		}
		q, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, newError(ErrMalformedCharges, fmt.Sprintf("line %d: can't read charge %q", lineno, fields[1]), filename, "ResiduesRead")
		}
		ret = append(ret, &Residue{Name: name, ID: id, Charge: q, LinkCharge: q, Linked: linked})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

//ResiduesFileRead reads the residues in the file name. See ResiduesRead.
func ResiduesFileRead(name string) ([]*Residue, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ResiduesRead(f, name)
}

//WriteDeltas writes deltas to w, with their labels and charge shifts or, if link is true,
//with their link labels and link-corrected charge shifts.
func WriteDeltas(w io.Writer, deltas []*Delta, link bool) error {
	b := bufio.NewWriter(w)
	for _, d := range deltas {
		var err error
		if link {
			_, err = fmt.Fprintf(b, "%s %s\n", d.LinkLabel, formatCharge(d.LinkCharge))
		} else {
			_, err = fmt.Fprintf(b, "%s %s\n", d.Label, formatCharge(d.Charge))
		}
		if err != nil {
			return err
		}
	}
	return b.Flush()
}

//DeltasFileWrite writes deltas to the file name. See WriteDeltas.
func DeltasFileWrite(name string, deltas []*Delta, link bool) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = WriteDeltas(f, deltas, link); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	log.Printf("Wrote %d charge shifts to %s", len(deltas), name)
	return nil
}

//WriteLabels writes the labels in L to w, one per line, sorted.
func WriteLabels(w io.Writer, L LabelSet) error {
	b := bufio.NewWriter(w)
	for _, l := range L.Sorted() {
		if _, err := b.WriteString(l + "\n"); err != nil {
			return err
		}
	}
	return b.Flush()
}

//LabelsRead reads a label set written by WriteLabels, or the labels of any of the
//residue or delta files (the first field of each line). Blank lines are skipped.
func LabelsRead(r io.Reader) (LabelSet, error) {
	ret := make(LabelSet)
	s := bufio.NewScanner(r)
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		ret.Add(fields[0])
	}
	return ret, s.Err()
}
