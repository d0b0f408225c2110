/*
 * csascan, part of gocsa.
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

//csascan sums the charges or spins of a set of atoms for each frame of one or more
//scan population files, writes the sums to <file>.<quantity>.dat and, optionally, plots them.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	csa "github.com/gocsa/gocsa"
	"github.com/gocsa/gocsa/csaplot"
	"github.com/gocsa/gocsa/scan"
)

func main() {
	atoms := flag.String("atoms", "", "atom indexes to sum, e.g. \"58-76\" or \"1,2,5-9\" (required)")
	spin := flag.Bool("spin", false, "sum spins (10th field) instead of charges (3rd field)")
	reverse := flag.Bool("reverse", false, "write the frames last to first")
	frames := flag.String("frames", "", "only use these frames, e.g. \"1-10, 15\"")
	plot := flag.String("plot", "", "if given, plot the sums of all files to this file (png, svg, pdf...)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -atoms selection [options] file1 [file2...]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	if *atoms == "" || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	sel, err := csa.ParseRanges(*atoms)
	if err != nil {
		log.Fatal(err)
	}
	q := scan.Charge
	if *spin {
		q = scan.Spin
	}
	opts := scan.Options{Reverse: *reverse, Frames: *frames}
	series := make([][]float64, 0, flag.NArg())
	names := make([]string, 0, flag.NArg())
	for _, name := range flag.Args() {
		f, err := scan.FileSum(name, sel, q, opts)
		if err != nil {
			log.Fatal(err)
		}
		out := fmt.Sprintf("%s.%s.dat", strings.TrimSuffix(name, filepath.Ext(name)), q)
		if err := scan.FramesFileWrite(out, f); err != nil {
			log.Fatal(err)
		}
		log.Printf("%d frames of %s written to %s", len(f), name, out)
		series = append(series, scan.Values(f))
		names = append(names, filepath.Base(name))
	}
	if *plot != "" {
		title := fmt.Sprintf("Summed %s of atoms %s", q, *atoms)
		if err := csaplot.SeriesPlot(series, names, title, q.String(), *plot); err != nil {
			log.Fatal(err)
		}
	}
}
