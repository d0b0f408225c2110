/*
 * cluster.go, part of gocsa.
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

//Package cluster selects the frames of a trajectory assigned to one cluster by CPPTraj,
//and writes them in the interval notation CPPTraj accepts (1-3, 6-10), so the
//frames can be extracted to a new trajectory.
package cluster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	csa "github.com/gocsa/gocsa"
)

//Main is the cluster CPPTraj assigns the most populated cluster.
const Main = 0

//ClustersRead reads a cnumvtime.dat file from r, and returns the frames
//assigned to cluster, in file order. The first line is a header, and is skipped.
func ClustersRead(r io.Reader, cluster int) ([]int, error) {
	ret := make([]int, 0, 100)
	s := bufio.NewScanner(r)
	lineno := 0
	for s.Scan() {
		lineno++
		if lineno == 1 {
			continue
		}
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("cluster: line %d: expected frame and cluster, got %q", lineno, s.Text())
		}
		frame, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("cluster: line %d: %w", lineno, err)
		}
		c, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("cluster: line %d: %w", lineno, err)
		}
		if c == cluster {
			ret = append(ret, frame)
		}
	}
	return ret, s.Err()
}

//ClustersFileRead is ClustersRead for the file name.
func ClustersFileRead(name string, cluster int) ([]int, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ClustersRead(f, cluster)
}

//Condense writes frames in interval notation: runs of consecutive numbers become
//"first-last", and runs are separated by ", ". frames is taken in the given order,
//a number that does not follow the previous one starts a new run.
func Condense(frames []int) string {
	if len(frames) == 0 {
		return ""
	}
	var b strings.Builder
	run := func(first, last int) {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(first))
		if last != first {
			b.WriteString("-" + strconv.Itoa(last))
		}
	}
	first, last := frames[0], frames[0]
	for _, v := range frames[1:] {
		if v == last+1 {
			last = v
			continue
		}
		run(first, last)
		first, last = v, v
	}
	run(first, last)
	return b.String()
}

//Expand is the inverse of Condense.
func Expand(s string) ([]int, error) {
	return csa.ParseRanges(s)
}

//Stride returns the step needed to take about n evenly spaced frames out of frames
//(at least 1).
func Stride(frames, n int) int {
	if n <= 0 || frames <= n {
		return 1
	}
	return frames / n
}
