/*
 * charges.go, part of gocsa.
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
	"math"
	"os"
	"strconv"
	"strings"
)

//ChargeTable holds per-atom partial charges in the order of the charge file.
type ChargeTable []float64

//At returns the charge in position i of the table.
func (C ChargeTable) At(i int) (float64, error) {
	if i < 0 || i >= len(C) {
		return 0, newError(ErrChargeTableMismatch, fmt.Sprintf("requested charge %d but the table has %d entries", i, len(C)), "", "ChargeTable.At")
	}
	return C[i], nil
}

//ChargesRead reads a charge table from r. Each non-blank row has the charge
//in its third whitespace-separated field (TeraChem charge_mull.xls and similar).
//filename is only used to report errors, and can be empty.
func ChargesRead(r io.Reader, filename string) (ChargeTable, error) {
	table := make(ChargeTable, 0, 100)
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for s.Scan() {
		lineno++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			return nil, newError(ErrMalformedCharges, fmt.Sprintf("line %d has %d fields, at least 3 expected", lineno, len(fields)), filename, "ChargesRead")
		}
		q, err := strconv.ParseFloat(fields[2], 64)
		if err != nil || math.IsNaN(q) || math.IsInf(q, 0) {
			return nil, newError(ErrMalformedCharges, fmt.Sprintf("line %d: can't read charge %q", lineno, fields[2]), filename, "ChargesRead")
		}
		table = append(table, q)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

//ChargesFileRead reads the charge table in the file name.
func ChargesFileRead(name string) (ChargeTable, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ChargesRead(f, name)
}

//Bind pairs each atom in atoms with the charge in the same position of table.
//The table can be longer than atoms (link atoms have their charges after
//the mask atoms) but not shorter.
func Bind(atoms Atomer, table ChargeTable) ([]ChargedAtom, error) {
	n := atoms.Len()
	if len(table) < n {
		return nil, newError(ErrChargeTableMismatch, fmt.Sprintf("%d atoms but only %d charges", n, len(table)), "", "Bind")
	}
	ret := make([]ChargedAtom, n)
	for i := range ret {
		ret[i] = ChargedAtom{Atom: atoms.Atom(i), Charge: table[i]}
	}
	return ret, nil
}
