/*
 * atom.go, part of gocsa.
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

import "strconv"

//Atom contains the information read for one coordinate record of a structure
//file. Coordinates are not kept, nothing in the analysis needs them.
type Atom struct {
	ID       int //serial number as written in the file
	Name     string
	ResName  string
	ResID    int
	Chain    byte
	Het      bool //is a HETATM record?
	Position int  //0-based order among the coordinate records of the file
}

//Label returns the residue label of the atom, its residue name followed by the residue ID, e.g. ALA3.
func (A *Atom) Label() string {
	return residueLabel(A.ResName, A.ResID)
}

//NextLabel returns the label that the following residue would have if it had the
//same residue name as A. It is used to place link atoms.
func (A *Atom) NextLabel() string {
	return residueLabel(A.ResName, A.ResID+1)
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	c := *A
	return &c
}

//ChargedAtom is an atom bound to its partial charge.
type ChargedAtom struct {
	*Atom
	Charge float64
}

func residueLabel(name string, id int) string {
	return name + strconv.Itoa(id)
}
