/*
 * diff.go, part of gocsa.
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

import "sort"

//LabelSet is a set of residue labels.
type LabelSet map[string]struct{}

//Labels returns the set of labels of residues.
func Labels(residues []*Residue) LabelSet {
	ret := make(LabelSet, len(residues))
	for _, r := range residues {
		ret.Add(r.Label())
	}
	return ret
}

//Add puts label in the set.
func (L LabelSet) Add(label string) {
	L[label] = struct{}{}
}

//Has returns true if label is in the set.
func (L LabelSet) Has(label string) bool {
	_, ok := L[label]
	return ok
}

//Len returns the number of labels in the set.
func (L LabelSet) Len() int { return len(L) }

//Sub returns the labels in L that are not in other.
func (L LabelSet) Sub(other LabelSet) LabelSet {
	ret := make(LabelSet)
	for k := range L {
		if !other.Has(k) {
			ret.Add(k)
		}
	}
	return ret
}

//Intersect returns the labels present in both L and other.
func (L LabelSet) Intersect(other LabelSet) LabelSet {
	ret := make(LabelSet)
	for k := range L {
		if other.Has(k) {
			ret.Add(k)
		}
	}
	return ret
}

//Sorted returns the labels in lexicographic order.
func (L LabelSet) Sorted() []string {
	ret := make([]string, 0, len(L))
	for k := range L {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//Diff returns the labels of the residues in holo that are not in apo, i.e. the
//residues removed to obtain the apo structure. Labels are compared exactly,
//the link marker plays no role.
func Diff(holo, apo []*Residue) LabelSet {
	return Labels(holo).Sub(Labels(apo))
}
