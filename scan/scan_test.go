/*
 * scan_test.go, part of gocsa.
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

package scan

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	csa "github.com/gocsa/gocsa"
	"gonum.org/v1/gonum/floats"
)

//Three frames, three atoms. Only the fields that matter are realistic.
const scanData = `1 C 0.10 x x x x x x 0.01
2 N -0.20 x x x x x x 0.02
3 O 0.05 x x x x x x 0.50
End
1 C 0.12 x x x x x x 0.00
2 N -0.25 x x x x x x 0.10
3 O 0.00 x x x x x x 0.40

End
1 C 0.20 x x x x x x 0.00
2 N -0.30 x x x x x x 0.00
3 O 0.10 x x x x x x 0.00
End
1 C 9.99 x x x x x x 9.99
`

func TestSumCharges(Te *testing.T) {
	frames, err := Sum(strings.NewReader(scanData), "scan", []int{1, 2}, Charge, Options{})
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != 3 {
		Te.Fatalf("got %d frames, expected 3", len(frames))
	}
	if !floats.EqualApprox(Values(frames), []float64{-0.1, -0.13, -0.1}, 1e-12) {
		Te.Errorf("wrong sums %v", Values(frames))
	}
	if frames[2].Index != 3 {
		Te.Errorf("wrong index %d", frames[2].Index)
	}
}

func TestSumSpinsOptions(Te *testing.T) {
	frames, err := Sum(strings.NewReader(scanData), "scan", []int{2, 3}, Spin, Options{Reverse: true, Frames: "1-2"})
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != 2 || frames[0].Index != 2 || frames[1].Index != 1 {
		Te.Fatalf("wrong frames %v", frames)
	}
	if !floats.EqualApprox(Values(frames), []float64{0.5, 0.52}, 1e-12) {
		Te.Errorf("wrong sums %v", Values(frames))
	}
	var b bytes.Buffer
	if err := WriteFrames(&b, frames); err != nil {
		Te.Fatal(err)
	}
	if b.String() != "2 0.5\n1 0.52\n" {
		Te.Errorf("wrong output %q", b.String())
	}
}

func TestSumErrors(Te *testing.T) {
	_, err := Sum(strings.NewReader("1 C 0.1\nEnd\n"), "short", []int{1}, Spin, Options{})
	if !errors.Is(err, csa.ErrMalformedCharges) {
		Te.Errorf("expected a malformed row error, got %v", err)
	}
	_, err = Sum(strings.NewReader("1 C abc\nEnd\n"), "bad", []int{1}, Charge, Options{})
	if !errors.Is(err, csa.ErrMalformedCharges) {
		Te.Errorf("expected a malformed row error, got %v", err)
	}
	if _, err = Sum(strings.NewReader(scanData), "scan", []int{1}, Charge, Options{Frames: "3-1"}); err == nil {
		Te.Error("reversed frame range accepted")
	}
}
