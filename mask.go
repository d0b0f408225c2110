/*
 * mask.go, part of gocsa.
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
	"io"
	"log"
	"os"
)

//Mask is the subset of the atoms of a structure selected for the charge analysis,
//in file order, plus the link atoms that need charge correction.
type Mask struct {
	Variant VariantTag
	Atoms   []*Atom
	Links   []*Atom //empty unless the operator supplies link atoms
}

//Atom returns the ith atom of the mask. Panics if out of range.
func (M *Mask) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("Mask: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

//Len returns the number of atoms in the mask, not counting link atoms.
func (M *Mask) Len() int {
	return len(M.Atoms)
}

//Residues returns the number of distinct residue IDs in the mask.
func (M *Mask) Residues() int {
	seen := make(map[int]struct{}, len(M.Atoms)/8+1)
	for _, v := range M.Atoms {
		seen[v.ResID] = struct{}{}
	}
	return len(seen)
}

//LoadLinks appends to the mask the link atoms read from r, which must
//be in the same format as the structure file. All coordinate records in r
//are taken as link atoms.
func (M *Mask) LoadLinks(r io.Reader) error {
	return M.loadLinks(r, "")
}

//LinkFileLoad is LoadLinks for the file name.
func (M *Mask) LinkFileLoad(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return M.loadLinks(f, name)
}

func (M *Mask) loadLinks(r io.Reader, filename string) error {
	err := readRecords(r, filename, true, func(at *Atom) {
		M.Links = append(M.Links, at)
	})
	if err != nil {
		return errDecorate(err, "LoadLinks")
	}
	return nil
}

type maskConfig struct {
	het bool
}

//MaskOption changes the way a mask is built.
type MaskOption func(*maskConfig)

//WithHetatm makes HETATM records eligible for the mask. By default only
//ATOM records are.
func WithHetatm() MaskOption {
	return func(c *maskConfig) { c.het = true }
}

//BuildMask reads the structure in PDB format from r, and returns the mask with
//the atoms whose residue IDs are in set, in the order they appear. The returned
//mask has no link atoms.
func BuildMask(set ResidueSet, structure io.Reader, tag VariantTag, opts ...MaskOption) (*Mask, error) {
	return buildMask(set, structure, "", tag, opts)
}

func buildMask(set ResidueSet, structure io.Reader, filename string, tag VariantTag, opts []MaskOption) (*Mask, error) {
	c := new(maskConfig)
	for _, o := range opts {
		o(c)
	}
	mask := &Mask{Variant: tag, Atoms: make([]*Atom, 0, 10*set.Len()), Links: make([]*Atom, 0)}
	err := readRecords(structure, filename, c.het, func(at *Atom) {
		if set.Has(at.ResID) {
			mask.Atoms = append(mask.Atoms, at)
		}
	})
	if err != nil {
		return nil, errDecorate(err, "BuildMask")
	}
	log.Printf("Extracted %d residues for the %s mask", mask.Residues(), tag)
	return mask, nil
}
