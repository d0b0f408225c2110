/*
 * clusterframes, part of gocsa.
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

//clusterframes prints the frames CPPTraj assigned to the main cluster, in the
//interval notation CPPTraj's onlyframes takes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gocsa/gocsa/cluster"
	"github.com/gocsa/gocsa/csaplot"
	"gonum.org/v1/plot/plotter"
)

func main() {
	c := flag.Int("cluster", cluster.Main, "cluster whose frames are printed")
	snapshots := flag.Int("snapshots", 625, "print the stride needed to take this many snapshots from the cluster")
	plot := flag.String("plot", "", "if given, plot the cluster assignment against the frame number to this file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [cnumvtime.dat]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	name := "cnumvtime.dat"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	frames, err := cluster.ClustersFileRead(name, *c)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Total frames: %d\n", len(frames))
	fmt.Printf("Final selection: %s\n", cluster.Condense(frames))
	if *snapshots > 0 {
		fmt.Printf("Stride for %d snapshots: %d\n", *snapshots, cluster.Stride(len(frames), *snapshots))
	}
	if *plot != "" {
		f, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		xy, err := csaplot.XYsRead(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		if err := csaplot.XYPlot([]plotter.XYs{xy}, nil, "Cluster vs. frame", "Frame", "Cluster", *plot); err != nil {
			log.Fatal(err)
		}
	}
}
