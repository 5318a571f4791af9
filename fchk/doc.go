/*
 * doc.go, part of gowfn.
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

/*Package fchk writes a wfn.Wavefunction as a Gaussian-style formatted
checkpoint file. The format is line-oriented, 7-bit text: a two-line header,
a series of named scalar records and a series of named array records, each
array a header line ("N=" count) followed by fixed-width data lines. Consumers
locate data by field name, so the names, their order and the field widths are
the wire contract and are not configurable.

The package only writes; it does not parse checkpoints back, it does not
validate the chemistry of the model (only its structure), and it does not
reorder orbital coefficients. The producer of the wavefunction must hand in
coefficients already in the ordering the consumer of the file expects.

A writer is bound to one output for its lifetime:

	w, err := fchk.NewWriter("benzene.fchk")
	if err != nil {
		...
	}
	defer w.Close()
	err = w.Write(wavefunction)

Names ending in ".gz", ".zst" or ".zstd" get the document compressed with
gzip or zstd accordingly.*/
package fchk
