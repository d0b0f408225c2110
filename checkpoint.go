/*
 * checkpoint.go, part of gocsa.
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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocsa/gocsa/ckpt"
)

//Checkpoints keep the residue charges of a variant between runs. Each record
//is a residue: name, ID, charge, link-corrected charge, number of atoms and
//whether it is linked. The compression depends on the file extension, see package ckpt.

//WriteCheckpoint writes the residues of V to the checkpoint file name.
func WriteCheckpoint(name string, V *Variant) error {
	header := map[string]string{
		"variant": string(V.Tag),
		"charges": strconv.Itoa(len(V.Charges)),
	}
	if V.Mask != nil {
		header["atoms"] = strconv.Itoa(V.Mask.Len())
		header["links"] = strconv.Itoa(len(V.Mask.Links))
	}
	w, err := ckpt.NewWriter(name, len(V.Residues), header)
	if err != nil {
		return err
	}
	for _, r := range V.Residues {
		rec := fmt.Sprintf("%s %d %s %s %d %t", r.Name, r.ID, formatCharge(r.Charge), formatCharge(r.LinkCharge), r.Members, r.Linked)
		if err = w.WNext(rec); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}

//ReadCheckpoint reads a checkpoint file written by WriteCheckpoint. The returned
//variant has only Tag and Residues set.
func ReadCheckpoint(name string) (*Variant, error) {
	r, header, err := ckpt.New(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	tag := VariantTag(header["variant"])
	if tag != Apo && tag != Holo {
		return nil, fmt.Errorf("csa: checkpoint %s has unknown variant %q", name, tag)
	}
	V := &Variant{Tag: tag, Residues: make([]*Residue, 0, r.Len())}
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		res, err := parseCheckpointRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("csa: checkpoint %s record %d: %w", name, len(V.Residues)+1, err)
		}
		V.Residues = append(V.Residues, res)
	}
	return V, nil
}

func parseCheckpointRecord(rec string) (*Residue, error) {
	f := strings.Fields(rec)
	if len(f) != 6 {
		return nil, fmt.Errorf("%d fields, expected 6", len(f))
	}
	var err error
	r := &Residue{Name: f[0]}
	if r.ID, err = strconv.Atoi(f[1]); err != nil {
		return nil, err
	}
	if r.Charge, err = strconv.ParseFloat(f[2], 64); err != nil {
		return nil, err
	}
	if r.LinkCharge, err = strconv.ParseFloat(f[3], 64); err != nil {
		return nil, err
	}
	if r.Members, err = strconv.Atoi(f[4]); err != nil {
		return nil, err
	}
	if r.Linked, err = strconv.ParseBool(f[5]); err != nil {
		return nil, err
	}
	return r, nil
}
