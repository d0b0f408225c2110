/*
 * files.go, part of gocsa.
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
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

//PDB reading family. Only what the charge analysis needs is read: record type,
//atom serial and name, residue name, chain and residue ID.

//parsePDBLine parses an ATOM or HETATM line of a PDB file.
func parsePDBLine(line, filename string, lineno int) (*Atom, error) {
	if len(line) < 26 {
		return nil, newError(ErrMalformedStructure, fmt.Sprintf("line %d is too short for a coordinate record", lineno), filename, "parsePDBLine")
	}
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.Name = strings.TrimSpace(line[12:16])
	atom.ResName = strings.TrimSpace(line[17:20])
	atom.Chain = line[21]
	//Columns 23-28. Programs that write more than 9999 residues spill into the
	//insertion code column, so it is read too.
	end := min(len(line), 28)
	var err error
	atom.ResID, err = strconv.Atoi(strings.TrimSpace(line[22:end]))
	if err != nil {
		return nil, newError(ErrMalformedStructure, fmt.Sprintf("line %d: can't read residue ID %q", lineno, line[22:end]), filename, "parsePDBLine")
	}
	//Serials overflow in large QM/MM systems, they are informative only.
	atom.ID, err = strconv.Atoi(strings.TrimSpace(line[6:11]))
	if err != nil {
		atom.ID = -1
	}
	return atom, nil
}

//readRecords calls keep for every coordinate record in r, in file order, until
//an END (or ENDMDL) record or the end of the input. TER records are skipped.
//HETATM records are considered coordinate records only if het is true.
func readRecords(r io.Reader, filename string, het bool, keep func(*Atom)) error {
	pdb := bufio.NewReader(r)
	position := 0
	for lineno := 1; ; lineno++ {
		line, err := pdb.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		switch {
		case strings.HasPrefix(line, "ATOM"), het && strings.HasPrefix(line, "HETATM"):
			atom, err2 := parsePDBLine(line, filename, lineno)
			if err2 != nil {
				return errDecorate(err2, "readRecords")
			}
			atom.Position = position
			position++
			keep(atom)
		case strings.HasPrefix(line, "TER"):
			//chain breaks don't count as discarded records.
		case strings.HasPrefix(line, "END"):
			return nil
		}
		if err == io.EOF {
			return nil
		}
	}
}

//MaskFileBuild builds the mask for the residues in set from the structure file name.
//Files ending in ".gz" are decompressed on the fly, others are memory-mapped.
func MaskFileBuild(set ResidueSet, name string, tag VariantTag, opts ...MaskOption) (*Mask, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("can't decompress %s: %w", name, err)
		}
		defer gz.Close()
		return buildMask(set, gz, name, tag, opts)
	}
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		//can't map an empty file.
		return buildMask(set, strings.NewReader(""), name, tag, opts)
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("can't map %s: %w", name, err)
	}
	defer mm.Unmap()
	return buildMask(set, bytes.NewReader(mm), name, tag, opts)
}

//FindStructure returns the only structure file (*.pdb or *.pdb.gz) in dir.
//It is an error to have none, or more than one.
func FindStructure(dir string) (string, error) {
	var found []string
	for _, pattern := range []string{"*.pdb", "*.pdb.gz"} {
		m, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return "", err
		}
		found = append(found, m...)
	}
	switch len(found) {
	case 0:
		return "", newError(ErrAmbiguousStructureInput, "no PDB file found", dir, "FindStructure")
	case 1:
		return found[0], nil
	}
	return "", newError(ErrAmbiguousStructureInput, fmt.Sprintf("more than one PDB file found: %s", strings.Join(found, ", ")), dir, "FindStructure")
}

//ResidueSetFileRead reads a residue set from a file with one comma-separated line, e.g. "1,2,58-76".
func ResidueSetFileRead(name string) (ResidueSet, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, newError(ErrMissingResidueFile, err.Error(), name, "ResidueSetFileRead")
	}
	set, err := ParseResidueSet(string(b))
	if err != nil {
		return nil, newError(ErrMalformedSelection, err.Error(), name, "ResidueSetFileRead")
	}
	return set, nil
}
