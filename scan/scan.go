/*
 * scan.go, part of gocsa.
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

//Package scan sums the charges or spins of a set of atoms over the frames of a scan
//or trajectory, from the per-frame population files written by TeraChem (charge_mull.xls,
//spin files, or their concatenation for a scan). Each frame is a block of atom rows,
//the atom index in the first field, ended by a line whose first field is "End".
package scan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	csa "github.com/gocsa/gocsa"
)

//Quantity is the per-atom property summed.
type Quantity int

const (
	Charge Quantity = iota //third field of the atom rows
	Spin                   //tenth field
)

func (Q Quantity) field() int {
	if Q == Spin {
		return 9
	}
	return 2
}

func (Q Quantity) String() string {
	if Q == Spin {
		return "spin"
	}
	return "charge"
}

//Options changes the frames returned.
type Options struct {
	Reverse bool   //return the frames last to first
	Frames  string //if not empty, only these 1-based frames are returned, e.g. "1-3, 6-10"
}

//Frame is the summed quantity for one frame.
type Frame struct {
	Index int //1-based, in file order
	Value float64
}

//Sum reads the frames in r and returns, for each, the sum of the quantity q over the atoms
//whose indexes are in atoms. Rows for atoms not in the selection are not checked.
//Rows after the last "End" line are ignored. filename is used only in error messages.
func Sum(r io.Reader, filename string, atoms []int, q Quantity, opts Options) ([]Frame, error) {
	sel := make(map[string]struct{}, len(atoms))
	for _, v := range atoms {
		sel[strconv.Itoa(v)] = struct{}{}
	}
	var keep map[int]bool
	if strings.TrimSpace(opts.Frames) != "" {
		frames, err := csa.ParseRanges(opts.Frames)
		if err != nil {
			return nil, fmt.Errorf("scan: frame selection: %w", err)
		}
		keep = make(map[int]bool, len(frames))
		for _, f := range frames {
			keep[f] = true
		}
	}
	ret := make([]Frame, 0, 20)
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	field := q.field()
	var sum float64
	index, lineno := 0, 0
	for s.Scan() {
		lineno++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "End" {
			index++
			if keep == nil || keep[index] {
				ret = append(ret, Frame{Index: index, Value: sum})
			}
			sum = 0
			continue
		}
		if _, ok := sel[fields[0]]; !ok {
			continue
		}
		if len(fields) <= field {
			return nil, fmt.Errorf("%s line %d: no %s field: %w", filename, lineno, q, csa.ErrMalformedCharges)
		}
		v, err := strconv.ParseFloat(fields[field], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: can't read %s %q: %w", filename, lineno, q, fields[field], csa.ErrMalformedCharges)
		}
		sum += v
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if opts.Reverse {
		for i, j := 0, len(ret)-1; i < j; i, j = i+1, j-1 {
			ret[i], ret[j] = ret[j], ret[i]
		}
	}
	return ret, nil
}

//FileSum is Sum for the file name.
func FileSum(name string, atoms []int, q Quantity, opts Options) ([]Frame, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Sum(f, name, atoms, q, opts)
}

//Values returns the summed values of frames, in order.
func Values(frames []Frame) []float64 {
	ret := make([]float64, len(frames))
	for i, f := range frames {
		ret[i] = f.Value
	}
	return ret
}

//WriteFrames writes one "{index} {value}" line per frame to w.
func WriteFrames(w io.Writer, frames []Frame) error {
	b := bufio.NewWriter(w)
	for _, f := range frames {
		if _, err := fmt.Fprintf(b, "%d %s\n", f.Index, strconv.FormatFloat(f.Value, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return b.Flush()
}

//FramesFileWrite writes frames to the file name. See WriteFrames.
func FramesFileWrite(name string, frames []Frame) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = WriteFrames(f, frames); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
