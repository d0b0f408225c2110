/*
 * variant.go, part of gocsa.
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
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

//VariantTag names one of the two structures compared.
type VariantTag string

const (
	Apo  VariantTag = "apo"  //without the ligand
	Holo VariantTag = "holo" //with the ligand
)

//Variant is the result of the first two stages of the analysis for one structure.
type Variant struct {
	Tag      VariantTag
	Mask     *Mask
	Charges  ChargeTable
	Residues []*Residue
}

//Config tells LoadVariant where to find its input.
type Config struct {
	InputDir  string //directory with the residue sets, charge tables and link atoms
	Structure string //structure file. If empty, the only PDB file in InputDir is used.
	Hetatm    bool   //take HETATM records as mask candidates
}

//LoadVariant reads, from the input directory in cfg, the residue set <tag>_residues,
//the structure, the optional link atoms <tag>_link_atoms and the charge table
//<tag>_charge_mull.xls, and aggregates the charges of the mask into residues.
func LoadVariant(tag VariantTag, cfg Config) (*Variant, error) {
	name := func(suffix string) string {
		return filepath.Join(cfg.InputDir, string(tag)+suffix)
	}
	set, err := ResidueSetFileRead(name("_residues"))
	if err != nil {
		return nil, errDecorate(err, "LoadVariant")
	}
	structure := cfg.Structure
	if structure == "" {
		structure, err = FindStructure(cfg.InputDir)
		if err != nil {
			return nil, errDecorate(err, "LoadVariant")
		}
	}
	var opts []MaskOption
	if cfg.Hetatm {
		opts = append(opts, WithHetatm())
	}
	V := &Variant{Tag: tag}
	V.Mask, err = MaskFileBuild(set, structure, tag, opts...)
	if err != nil {
		return nil, errDecorate(err, "LoadVariant")
	}
	err = V.Mask.LinkFileLoad(name("_link_atoms"))
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
	} else if err == nil {
		log.Printf("Loaded %d link atoms for the %s mask", len(V.Mask.Links), tag)
	}
	if err != nil {
		return nil, errDecorate(err, "LoadVariant")
	}
	V.Charges, err = ChargesFileRead(name("_charge_mull.xls"))
	if err != nil {
		return nil, errDecorate(err, "LoadVariant")
	}
	V.Residues, err = Aggregate(V.Mask, V.Charges)
	if err != nil {
		return nil, errDecorate(err, "LoadVariant")
	}
	return V, nil
}

//WriteFiles writes the residue charges of the variant to dir, as <tag>.mullres
//and, with the link correction, <tag>.linkres.
func (V *Variant) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := ResiduesFileWrite(filepath.Join(dir, string(V.Tag)+".mullres"), V.Residues, false); err != nil {
		return err
	}
	return ResiduesFileWrite(filepath.Join(dir, string(V.Tag)+".linkres"), V.Residues, true)
}
