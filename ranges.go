/*
 * ranges.go, part of gocsa.
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
	"sort"
	"strconv"
	"strings"
)

//ParseRanges expands a comma-separated list of integers and inclusive
//ranges, like "1,4, 58-76", into the integers it names, in the order given.
//Spaces around the elements are ignored. Empty elements, reversed ranges and
//anything that is not an integer are errors.
func ParseRanges(s string) ([]int, error) {
	ret := make([]int, 0, 10)
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, fmt.Errorf("empty element in list %q", s)
		}
		first, last, isrange := strings.Cut(tok, "-")
		lo, err := strconv.Atoi(strings.TrimSpace(first))
		if err != nil {
			return nil, fmt.Errorf("can't read %q in list %q: %w", tok, s, err)
		}
		hi := lo
		if isrange {
			hi, err = strconv.Atoi(strings.TrimSpace(last))
			if err != nil {
				return nil, fmt.Errorf("can't read %q in list %q: %w", tok, s, err)
			}
			if hi < lo {
				return nil, fmt.Errorf("reversed range %q in list %q", tok, s)
			}
		}
		for i := lo; i <= hi; i++ {
			ret = append(ret, i)
		}
	}
	return ret, nil
}

//ResidueSet is a set of residue IDs.
type ResidueSet map[int]struct{}

//NewResidueSet returns a set with the given IDs.
func NewResidueSet(ids ...int) ResidueSet {
	r := make(ResidueSet, len(ids))
	for _, v := range ids {
		r[v] = struct{}{}
	}
	return r
}

//ParseResidueSet reads a residue set from a line such as "1,2,5-9".
func ParseResidueSet(line string) (ResidueSet, error) {
	ids, err := ParseRanges(strings.TrimSpace(line))
	if err != nil {
		return nil, err
	}
	return NewResidueSet(ids...), nil
}

//Has returns true if id is in the set.
func (R ResidueSet) Has(id int) bool {
	_, ok := R[id]
	return ok
}

//Len returns the number of residues in the set.
func (R ResidueSet) Len() int { return len(R) }

//Sorted returns the IDs in the set in increasing order.
func (R ResidueSet) Sorted() []int {
	ret := make([]int, 0, len(R))
	for k := range R {
		ret = append(ret, k)
	}
	sort.Ints(ret)
	return ret
}
