/*
 * basis.go, part of gowfn.
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

//basis.go flattens the hierarchical basis set (center -> angular-momentum
//block -> contracted shell -> primitive) into the parallel arrays the
//checkpoint format stores. The traversal order of the model is the single
//source of truth: the flat shell index and the running primitive offset both
//advance center by center, block by block, shell by shell, so the shell
//types, the shell-to-atom map, the shell coordinates and the primitive
//arrays all line up by construction.

package fchk

import (
	wfn "github.com/qcio/gowfn"
	"gonum.org/v1/gonum/mat"
)

// flatBasis holds the checkpoint representation of a basis set: the four
// summary counts and the six parallel arrays. It is rebuilt from the model
// on every write and never cached.
type flatBasis struct {
	contracted int //total contracted shells; also the length of the per-shell arrays
	primitives int //total primitives; also the length of exponents and coefficients
	highest    int //highest angular momentum present
	largest    int //largest single-shell primitive count

	shellTypes   []int
	primsPer     []int
	shellToAtom  []int     //1-based atom numbers, as used by the atom block
	exponents    []float64
	coefficients []float64
	shellCoords  []float64 //x, y, z contiguous per shell
}

// shellTypeCode encodes the angular momentum in the signed convention the
// format's consumers use to tell pure from cartesian-ordered shells of the
// same magnitude: the sign alternates every two steps, giving
// 0, 1, -2, -3, 4, 5, -6, ...
func shellTypeCode(l int) int {
	if (l/2)%2 != 0 {
		return -l
	}
	return l
}

// flattenBasis walks the basis set twice in the same fixed order: once to
// accumulate the summary counts that size the flat arrays, once to fill
// them. The counts are computed here once and reused for both sizing and
// the summary scalars. coords is the 1-based-id-indexed coordinate table
// (row id-1); it is only consulted for centers actually present, so a nil
// table is fine for an empty set.
func flattenBasis(bs *wfn.BasisSet, coords *mat.Dense) *flatBasis {
	f := new(flatBasis)
	for _, center := range bs.Centers {
		for _, block := range center.Blocks {
			if block.L > f.highest {
				f.highest = block.L
			}
			f.contracted += len(block.Shells)
			for _, shell := range block.Shells {
				nprim := shell.NPrim()
				f.primitives += nprim
				if nprim > f.largest {
					f.largest = nprim
				}
			}
		}
	}
	f.shellTypes = make([]int, f.contracted)
	f.primsPer = make([]int, f.contracted)
	f.shellToAtom = make([]int, f.contracted)
	f.shellCoords = make([]float64, 3*f.contracted)
	f.exponents = make([]float64, f.primitives)
	f.coefficients = make([]float64, f.primitives)
	ishell := 0
	offset := 0
	for _, center := range bs.Centers {
		x := coords.At(center.ID-1, 0)
		y := coords.At(center.ID-1, 1)
		z := coords.At(center.ID-1, 2)
		for _, block := range center.Blocks {
			code := shellTypeCode(block.L)
			for _, shell := range block.Shells {
				f.shellTypes[ishell] = code
				f.shellToAtom[ishell] = center.ID
				f.shellCoords[3*ishell] = x
				f.shellCoords[3*ishell+1] = y
				f.shellCoords[3*ishell+2] = z
				nprim := shell.NPrim()
				f.primsPer[ishell] = nprim
				copy(f.exponents[offset:offset+nprim], shell.Exponents)
				copy(f.coefficients[offset:offset+nprim], shell.Coefficients)
				offset += nprim
				ishell++
			}
		}
	}
	return f
}

// writeBasis emits the basis block: four summary scalars, then the six flat
// arrays, in the fixed order the consumers expect. An empty basis set still
// produces every record, with zero counts and no data lines.
func (F *FchkW) writeBasis(bs *wfn.BasisSet, coords *mat.Dense) error {
	f := flattenBasis(bs, coords)
	if err := F.scalarInt("Number of contracted shells", f.contracted); err != nil {
		return err
	}
	if err := F.scalarInt("Number of primitive shells", f.primitives); err != nil {
		return err
	}
	if err := F.scalarInt("Highest angular momentum", f.highest); err != nil {
		return err
	}
	if err := F.scalarInt("Largest degree of contraction", f.largest); err != nil {
		return err
	}
	if err := F.arrayInt("Shell types", f.shellTypes); err != nil {
		return err
	}
	if err := F.arrayInt("Number of primitives per shell", f.primsPer); err != nil {
		return err
	}
	if err := F.arrayInt("Shell to atom map", f.shellToAtom); err != nil {
		return err
	}
	if err := F.arrayReal("Primitive exponents", f.exponents); err != nil {
		return err
	}
	if err := F.arrayReal("Contraction coefficients", f.coefficients); err != nil {
		return err
	}
	return F.arrayReal("Coordinates of each shell", f.shellCoords)
}
