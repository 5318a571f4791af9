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

/*Package wfn is the main package of the goWfn library. It provides the in-memory
description of a quantum-chemistry wavefunction: the nuclear geometry, the
Gaussian basis set as a hierarchy of centers, angular-momentum blocks,
contracted shells and primitives, and the molecular orbitals for each spin
channel.


	**goWfn capabilities**

    Holds a wavefunction produced by an external electronic-structure
	calculation: per-atom nuclear charges and cartesian coordinates,
	electron counts by spin channel, multiplicity, a basis set and one
	set of molecular orbitals per spin channel.

    Validates the structural invariants of the model (matching
	exponent/coefficient lengths, unique 1-based center ids, consistent
	orbital dimensions) before it is handed to any writer.

    Writes the wavefunction as a Gaussian-style formatted checkpoint
	through the fchk subpackage, optionally gzip or zstd compressed.

Coordinates and orbital coefficients use the gonum Dense matrix type. Each row
of a coordinate matrix is one point in space; each column of an orbital
coefficient matrix is one molecular orbital. The producer of the model is
responsible for having the orbital coefficients in the basis-function ordering
the target format expects.*/
package wfn
