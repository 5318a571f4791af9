/*
 * encode.go, part of gowfn.
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

//encode.go holds the record encoder every field of the document goes
//through: one scalar and one array writer per primitive kind (integer, real,
//text, logical). Field names occupy 40 characters, the type tag one, and the
//values fixed per-kind widths. Array data is chunked into lines of a
//per-kind record size; the last line holds the remainder and no padding
//lines are emitted. The encoder trusts the caller on array contents and
//lengths; an empty array produces its header line and nothing else.

package fchk

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Elements per data line for each array kind. Downstream parsers split the
//lines positionally, so these are part of the wire contract.
const (
	intsPerLine  = 6
	realsPerLine = 5
	textsPerLine = 5
	boolsPerLine = 72
)

// printf formats one piece of the document into the output layer and wraps
// any stream failure. The first failure aborts the export; nothing is
// retried and nothing already written is rolled back.
func (F *FchkW) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(F.h, format, args...)
	if err != nil {
		return &Error{WriteFailed + ": " + err.Error(), F.filename, []string{"printf"}, true}
	}
	return nil
}

func (F *FchkW) scalarInt(name string, value int) error {
	return F.printf("%-40s   %1s     %12d\n", name, "I", value)
}

func (F *FchkW) scalarReal(name string, value float64) error {
	return F.printf("%-40s   %1s     %22.15e\n", name, "R", value)
}

func (F *FchkW) scalarText(name string, value string) error {
	return F.printf("%-40s   %1s     %-12s\n", name, "C", value)
}

func (F *FchkW) scalarBool(name string, value bool) error {
	return F.printf("%-40s   %1s     %1s\n", name, "L", boolChar(value))
}

func (F *FchkW) arrayInt(name string, a []int) error {
	if err := F.printf("%-40s   %1s   N=%12d\n", name, "I", len(a)); err != nil {
		return err
	}
	for i := 0; i < len(a); i += intsPerLine {
		for _, v := range a[i:lineEnd(i, intsPerLine, len(a))] {
			if err := F.printf("%12d", v); err != nil {
				return err
			}
		}
		if err := F.printf("\n"); err != nil {
			return err
		}
	}
	return nil
}

func (F *FchkW) arrayReal(name string, a []float64) error {
	if err := F.printf("%-40s   %1s   N=%12d\n", name, "R", len(a)); err != nil {
		return err
	}
	for i := 0; i < len(a); i += realsPerLine {
		for _, v := range a[i:lineEnd(i, realsPerLine, len(a))] {
			if err := F.printf("%16.8e", v); err != nil {
				return err
			}
		}
		if err := F.printf("\n"); err != nil {
			return err
		}
	}
	return nil
}

func (F *FchkW) arrayText(name string, a []string) error {
	if err := F.printf("%-40s   %1s   N=%12d\n", name, "C", len(a)); err != nil {
		return err
	}
	for i := 0; i < len(a); i += textsPerLine {
		for _, v := range a[i:lineEnd(i, textsPerLine, len(a))] {
			if err := F.printf("%-12s", v); err != nil {
				return err
			}
		}
		if err := F.printf("\n"); err != nil {
			return err
		}
	}
	return nil
}

func (F *FchkW) arrayBool(name string, a []bool) error {
	if err := F.printf("%-40s   %1s   N=%12d\n", name, "L", len(a)); err != nil {
		return err
	}
	for i := 0; i < len(a); i += boolsPerLine {
		for _, v := range a[i:lineEnd(i, boolsPerLine, len(a))] {
			if err := F.printf("%1s", boolChar(v)); err != nil {
				return err
			}
		}
		if err := F.printf("\n"); err != nil {
			return err
		}
	}
	return nil
}

func boolChar(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

func lineEnd(start, perLine, n int) int {
	end := start + perLine
	if end > n {
		end = n
	}
	return end
}

// colMajor flattens a matrix in column-major order (first index varying
// fastest), which is the order the format stores every multidimensional
// field in, regardless of how the matrix is held in memory. Flattening the
// transpose of a coordinate table therefore makes each point's x, y, z
// contiguous.
func colMajor(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}
