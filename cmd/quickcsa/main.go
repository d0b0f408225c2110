/*
 * quickcsa, part of gocsa.
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

//quickcsa runs a charge shift analysis: the per-residue Mulliken charges of a holo
//and an apo QM/MM calculation are compared, and the shifts written to 3_output.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	csa "github.com/gocsa/gocsa"
	"github.com/gocsa/gocsa/csaplot"
)

func main() {
	threshold := flag.Float64("threshold", csa.DefaultThreshold, "report residues with a charge shift of at least this, in absolute value")
	structure := flag.String("structure", "", "structure file (default: the only PDB file in <dir>/1_input)")
	hetatm := flag.Bool("hetatm", false, "take HETATM records as candidates for the masks")
	checkpoint := flag.Bool("checkpoint", false, "write the residue charges of each variant to <dir>/2_interm")
	plot := flag.Bool("plot", false, "plot the charge shifts in <dir>/3_output")
	bins := flag.Int("bins", 0, "if >0, print a histogram of the charge shifts with this many bins, and write it, normalized, to <dir>/3_output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [dir]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	dir := "."
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	} else if flag.NArg() == 1 {
		dir = flag.Arg(0)
	}
	cfg := csa.Config{
		InputDir:  filepath.Join(dir, "1_input"),
		Structure: *structure,
		Hetatm:    *hetatm,
	}
	interm := filepath.Join(dir, "2_interm")
	output := filepath.Join(dir, "3_output")
	variants := make(map[csa.VariantTag]*csa.Variant, 2)
	for _, tag := range []csa.VariantTag{csa.Holo, csa.Apo} {
		v, err := csa.LoadVariant(tag, cfg)
		if err != nil {
			log.Fatal(err)
		}
		variants[tag] = v
		if *checkpoint {
			if err := os.MkdirAll(interm, 0o755); err != nil {
				log.Fatal(err)
			}
			if err := csa.WriteCheckpoint(filepath.Join(interm, string(tag)+".zst"), v); err != nil {
				log.Fatal(err)
			}
		}
	}
	holo, apo := variants[csa.Holo], variants[csa.Apo]
	report, err := csa.Compare(holo.Residues, apo.Residues, *threshold)
	if err != nil {
		log.Fatal(err)
	}
	for _, v := range []*csa.Variant{holo, apo} {
		if err := v.WriteFiles(output); err != nil {
			log.Fatal(err)
		}
	}
	if err := report.WriteFiles(output); err != nil {
		log.Fatal(err)
	}
	if report.Removed.Len() > 0 {
		log.Printf("Residues removed in apo: %v", report.Removed.Sorted())
	}
	log.Printf("Charge shifts: %s", report.Stats(false))
	log.Printf("Link-corrected charge shifts: %s", report.Stats(true))
	log.Printf("%d residues above %g (%d with link correction)", len(report.Cutoff), *threshold, len(report.LinkCutoff))
	if *bins > 0 && len(report.All) > 0 {
		fmt.Println(report.Histogram(report.Dividers(*bins, false), false))
		for _, link := range []bool{false, true} {
			name := "diffmullres.histo.json"
			if link {
				name = "difflinkmullres.histo.json"
			}
			if err := report.HistogramFileWrite(filepath.Join(output, name), *bins, link); err != nil {
				log.Fatal(err)
			}
		}
	}
	if *plot && len(report.All) > 0 {
		for _, link := range []bool{false, true} {
			name, title := "diffmullres.png", "Charge shifts"
			if link {
				name, title = "difflinkmullres.png", "Link-corrected charge shifts"
			}
			if err := csaplot.DeltaPlot(report.All, link, *threshold, title, filepath.Join(output, name)); err != nil {
				log.Fatal(err)
			}
		}
	}
}
