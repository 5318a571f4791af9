/*
 * basis_test.go, part of gowfn.
 *
 * Copyright 2023 The goWfn developers
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

package fchk

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	wfn "github.com/qcio/gowfn"
	"gonum.org/v1/gonum/mat"
)

func TestShellTypeCode(Te *testing.T) {
	want := []int{0, 1, -2, -3, 4, 5, -6, -7, 8}
	for l, code := range want {
		if got := shellTypeCode(l); got != code {
			Te.Errorf("shellTypeCode(%d): got %d, want %d", l, got, code)
		}
	}
}

// One hydrogen at the origin with a single s primitive: the smallest
// complete flattening.
func TestFlattenHydrogen(Te *testing.T) {
	bs := &wfn.BasisSet{Centers: []wfn.Center{
		{ID: 1, Blocks: []wfn.AngMomBlock{
			{L: 0, Shells: []wfn.Shell{{Exponents: []float64{1.0}, Coefficients: []float64{1.0}}}},
		}},
	}}
	f := flattenBasis(bs, mat.NewDense(1, 3, nil))
	if f.contracted != 1 || f.primitives != 1 || f.highest != 0 || f.largest != 1 {
		Te.Errorf("counts: got %d %d %d %d, want 1 1 0 1", f.contracted, f.primitives, f.highest, f.largest)
	}
	if !reflect.DeepEqual(f.shellTypes, []int{0}) {
		Te.Errorf("shellTypes: got %v", f.shellTypes)
	}
	if !reflect.DeepEqual(f.shellToAtom, []int{1}) {
		Te.Errorf("shellToAtom: got %v", f.shellToAtom)
	}
	if !reflect.DeepEqual(f.primsPer, []int{1}) {
		Te.Errorf("primsPer: got %v", f.primsPer)
	}
	if !reflect.DeepEqual(f.exponents, []float64{1.0}) {
		Te.Errorf("exponents: got %v", f.exponents)
	}
	if !reflect.DeepEqual(f.coefficients, []float64{1.0}) {
		Te.Errorf("coefficients: got %v", f.coefficients)
	}
	if !reflect.DeepEqual(f.shellCoords, []float64{0, 0, 0}) {
		Te.Errorf("shellCoords: got %v", f.shellCoords)
	}
}

// A d block with two shells of 3 and 1 primitives: the shell type must be
// -2 for both, and the primitive bookkeeping must follow the shell order.
func TestFlattenDShells(Te *testing.T) {
	bs := &wfn.BasisSet{Centers: []wfn.Center{
		{ID: 1, Blocks: []wfn.AngMomBlock{
			{L: 2, Shells: []wfn.Shell{
				{Exponents: []float64{12.0, 4.0, 1.5}, Coefficients: []float64{0.2, 0.5, 0.4}},
				{Exponents: []float64{0.5}, Coefficients: []float64{1.0}},
			}},
		}},
	}}
	f := flattenBasis(bs, mat.NewDense(1, 3, []float64{0.1, 0.2, 0.3}))
	if !reflect.DeepEqual(f.shellTypes, []int{-2, -2}) {
		Te.Errorf("shellTypes: got %v, want [-2 -2]", f.shellTypes)
	}
	if !reflect.DeepEqual(f.primsPer, []int{3, 1}) {
		Te.Errorf("primsPer: got %v, want [3 1]", f.primsPer)
	}
	if f.primitives != 4 {
		Te.Errorf("primitive total: got %d, want 4", f.primitives)
	}
	if f.largest != 3 {
		Te.Errorf("largest contraction: got %d, want 3", f.largest)
	}
	if !reflect.DeepEqual(f.exponents, []float64{12.0, 4.0, 1.5, 0.5}) {
		Te.Errorf("exponents: got %v", f.exponents)
	}
	if !reflect.DeepEqual(f.shellCoords, []float64{0.1, 0.2, 0.3, 0.1, 0.2, 0.3}) {
		Te.Errorf("shellCoords: got %v", f.shellCoords)
	}
}

// The shell-to-atom map keeps the 1-based center id while the coordinates
// use the 0-based row, so a center list not starting at atom 1 tells the
// two apart.
func TestFlattenCenterIndexing(Te *testing.T) {
	bs := &wfn.BasisSet{Centers: []wfn.Center{
		{ID: 2, Blocks: []wfn.AngMomBlock{
			{L: 0, Shells: []wfn.Shell{{Exponents: []float64{2.0}, Coefficients: []float64{1.0}}}},
		}},
	}}
	coords := mat.NewDense(2, 3, []float64{
		9.0, 9.0, 9.0,
		1.0, 2.0, 3.0,
	})
	f := flattenBasis(bs, coords)
	if !reflect.DeepEqual(f.shellToAtom, []int{2}) {
		Te.Errorf("shellToAtom: got %v, want [2]", f.shellToAtom)
	}
	if !reflect.DeepEqual(f.shellCoords, []float64{1.0, 2.0, 3.0}) {
		Te.Errorf("shellCoords: got %v, want the second row", f.shellCoords)
	}
}

// Flattening the same unmodified set twice must produce identical arrays:
// the traversal order is the single source of truth for every index.
func TestFlattenStable(Te *testing.T) {
	bs := &wfn.BasisSet{Centers: []wfn.Center{
		{ID: 1, Blocks: []wfn.AngMomBlock{
			{L: 0, Shells: []wfn.Shell{
				{Exponents: []float64{3.0, 0.5}, Coefficients: []float64{0.7, 0.3}},
				{Exponents: []float64{0.1}, Coefficients: []float64{1.0}},
			}},
			{L: 1, Shells: []wfn.Shell{{Exponents: []float64{1.2}, Coefficients: []float64{1.0}}}},
		}},
		{ID: 2, Blocks: []wfn.AngMomBlock{
			{L: 3, Shells: []wfn.Shell{{Exponents: []float64{0.8}, Coefficients: []float64{1.0}}}},
		}},
	}}
	coords := mat.NewDense(2, 3, []float64{0, 0, 0, 0, 0, 1.4})
	a := flattenBasis(bs, coords)
	b := flattenBasis(bs, coords)
	if !reflect.DeepEqual(a, b) {
		Te.Errorf("two flattenings of the same set differ:\n%+v\n%+v", a, b)
	}
	if !reflect.DeepEqual(a.shellTypes, []int{0, 0, 1, -3}) {
		Te.Errorf("shellTypes: got %v, want [0 0 1 -3]", a.shellTypes)
	}
}

// An empty basis set still produces the full block: four zero scalars and
// six arrays with N=0 and no data lines.
func TestWriteBasisEmpty(Te *testing.T) {
	var buf bytes.Buffer
	F := NewWriterTo(&buf)
	if err := F.writeBasis(&wfn.BasisSet{}, nil); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 10 {
		Te.Fatalf("got %d lines, want 10 (4 scalars + 6 array headers):\n%s", len(lines), buf.String())
	}
	for _, l := range lines[4:] {
		if !strings.Contains(l, "N=           0") {
			Te.Errorf("array header without a zero count: %q", l)
		}
	}
	for _, l := range lines[:4] {
		if !strings.HasSuffix(l, "           0") {
			Te.Errorf("summary scalar not zero: %q", l)
		}
	}
}
