/*
 * delta.go, part of gocsa.
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
	"fmt"
	"math"
)

//DefaultThreshold is the charge shift, in absolute value, from which a residue
//is reported in the filtered lists.
const DefaultThreshold = 0.05

//Delta is the charge shift of one residue between the holo and the apo structures.
type Delta struct {
	Label      string
	LinkLabel  string
	Charge     float64 //holo minus apo
	LinkCharge float64 //same, for the link-corrected charges
}

func (D *Delta) String() string {
	return fmt.Sprintf("%s %g", D.Label, D.Charge)
}

//Deltas returns, for each residue of holo also present in apo, holo's charges minus apo's,
//in holo order. removed must contain the labels of the holo residues missing in apo (see Diff).
//
//The two lists are aligned with a single running offset: apo is taken to be holo with the residues
//in removed taken out, so the nth residue of holo that is not in removed pairs with the nth
//residue of apo. A position outside apo gives ErrIndexOutOfRange. A pair with different labels,
//or apo residues left over at the end, gives ErrAlignmentDrift.
func Deltas(holo, apo []*Residue, removed LabelSet) ([]*Delta, error) {
	ret := make([]*Delta, 0, len(apo))
	n := 0
	for i, h := range holo {
		label := h.Label()
		if removed.Has(label) {
			n--
			continue
		}
		j := i + n
		if j < 0 || j >= len(apo) {
			return nil, newError(ErrIndexOutOfRange, fmt.Sprintf("residue %s (holo position %d) maps to apo position %d, but apo has %d residues", label, i, j, len(apo)), "", "Deltas")
		}
		a := apo[j]
		if a.Label() != label {
			return nil, newError(ErrAlignmentDrift, fmt.Sprintf("holo residue %s aligned with apo residue %s", label, a.Label()), "", "Deltas")
		}
		ret = append(ret, &Delta{
			Label:      label,
			LinkLabel:  h.LinkLabel(),
			Charge:     h.Charge - a.Charge,
			LinkCharge: h.LinkCharge - a.LinkCharge,
		})
	}
	if len(ret) != len(apo) {
		return nil, newError(ErrAlignmentDrift, fmt.Sprintf("%d apo residues have no holo counterpart, starting at %s", len(apo)-len(ret), apo[len(ret)].Label()), "", "Deltas")
	}
	return ret, nil
}

//Filter returns the deltas with a charge shift of at least threshold, in absolute value, and,
//separately, those with a link-corrected charge shift of at least threshold.
func Filter(deltas []*Delta, threshold float64) (base, link []*Delta) {
	base = make([]*Delta, 0, len(deltas)/4)
	link = make([]*Delta, 0, len(deltas)/4)
	for _, d := range deltas {
		if math.Abs(d.Charge) >= threshold {
			base = append(base, d)
		}
		if math.Abs(d.LinkCharge) >= threshold {
			link = append(link, d)
		}
	}
	return base, link
}
