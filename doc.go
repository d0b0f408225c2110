/*
 * doc.go, part of gocsa.
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

/*Package csa implements charge shift analysis (CSA) for QM/MM calculations.

Given one structure file and two residue selections, an "apo" one (ligand or
cofactor removed) and a "holo" one (ligand present), csa builds the atom mask
of each selection, sums the per-atom partial charges (for instance TeraChem's
Mulliken charges, charge_mull.xls) into per-residue charges, finds the
residues that only the holo selection has, and reports how much the charge of
every common residue shifted when the ligand was removed.

The stages can be used separately:

	BuildMask / MaskFileBuild   structure file + residue set -> *Mask
	Aggregate                   *Mask + ChargeTable -> []*Residue
	Diff                        holo, apo []*Residue -> LabelSet
	Deltas / Filter             holo, apo, LabelSet -> []*Delta

LoadVariant and Compare run the whole thing from a directory laid out as the
one used by the quickcsa program (1_input, 2_interm, 3_output).

Residues are aligned with a single running offset, which assumes that the apo
residue list is the holo list with some residues removed. Inputs that break
that assumption are reported as errors (ErrIndexOutOfRange,
ErrAlignmentDrift) instead of being guessed around.
*/
package csa
