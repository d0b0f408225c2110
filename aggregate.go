/*
 * aggregate.go, part of gocsa.
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

	"gonum.org/v1/gonum/floats"
)

//Residue is the charge of one residue of a mask, obtained by
//adding the charges of its atoms.
type Residue struct {
	Name       string
	ID         int
	Charge     float64
	LinkCharge float64 //Charge plus the charges of the link atoms bound to the residue
	Members    int     //number of atoms
	Linked     bool    //whether LinkCharge includes link atom charges
}

//Label returns the name of the residue followed by its ID, e.g. ALA3.
func (R *Residue) Label() string {
	return residueLabel(R.Name, R.ID)
}

//LinkLabel returns the label of the residue, with a "*" appended if its
//charge was corrected with link atoms.
func (R *Residue) LinkLabel() string {
	if R.Linked {
		return R.Label() + "*"
	}
	return R.Label()
}

func (R *Residue) String() string {
	return fmt.Sprintf("%s %g (%s %g, %d atoms)", R.Label(), R.Charge, R.LinkLabel(), R.LinkCharge, R.Members)
}

//Aggregate sums the charges of the atoms of mask into residues. table must have
//the charges of the mask atoms in the same order as the atoms, and, after them,
//those of the link atoms. A new residue starts with the first atom, and every time
//the residue ID increases, so the residues keep the order of the mask.
//
//Each link atom adds the charge in the position k+mask.Len()-1 of the table to the
//link-corrected charge of the kth residue, where the kth residue is the one labeled with
//the link atom's residue name and its residue ID plus one. Link atoms with no such
//residue are ignored.
func Aggregate(mask *Mask, table ChargeTable) ([]*Residue, error) {
	bound, err := Bind(mask, table)
	if err != nil {
		return nil, errDecorate(err, "Aggregate")
	}
	residues := make([]*Residue, 0, len(bound)/8+1)
	index := make(map[string]int) //label -> position in residues, first occurrence
	members := make([]float64, 0, 32)
	closeResidue := func() {
		if len(residues) == 0 {
			return
		}
		r := residues[len(residues)-1]
		r.Charge = floats.Sum(members)
		r.LinkCharge = r.Charge
		r.Members = len(members)
		members = members[:0]
	}
	prev := 0
	for i, at := range bound {
		if i > 0 && at.ResID < prev {
			return nil, newError(ErrMalformedStructure, fmt.Sprintf("residue ID goes down from %d to %d at atom %d of the %s mask", prev, at.ResID, i, mask.Variant), "", "Aggregate")
		}
		if i == 0 || at.ResID > prev {
			closeResidue()
			r := &Residue{Name: at.ResName, ID: at.ResID}
			if _, ok := index[r.Label()]; !ok {
				index[r.Label()] = len(residues)
			}
			residues = append(residues, r)
			prev = at.ResID
		}
		members = append(members, at.Charge)
	}
	closeResidue()
	for _, l := range mask.Links {
		k, ok := index[l.NextLabel()]
		if !ok {
			continue
		}
		q, err := table.At(k + len(mask.Atoms) - 1)
		if err != nil {
			return nil, errDecorate(err, "Aggregate")
		}
		residues[k].LinkCharge += q
		residues[k].Linked = true
	}
	return residues, nil
}
