/*
 * interfaces.go, part of gowfn.
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

package wfn

import "gonum.org/v1/gonum/mat"

// Wavefunctioner is the interface the writers accept: everything an exporter
// needs to know about a wavefunction, without caring how the producer holds
// it. Wavefunction implements it; a producer with its own representation can
// satisfy it directly instead of copying into a Wavefunction first.
type Wavefunctioner interface {

	//Header returns the document title and the calculation type, method
	//and basis-set name.
	Header() (title, calctype, method, basis string)

	//NAtoms returns the number of atoms.
	NAtoms() int

	//NuclearCharges returns the per-atom nuclear charges.
	NuclearCharges() []float64

	//Coordinates returns the NAtoms x 3 cartesian coordinate table.
	//Basis-set center ids index it 1-based (row id-1).
	Coordinates() *mat.Dense

	//NElectrons returns the total electron count.
	NElectrons() int

	//AlphaElectrons and BetaElectrons return the per-channel counts.
	AlphaElectrons() int
	BetaElectrons() int

	//Multi returns the spin multiplicity.
	Multi() int

	//TotalCharge returns the net charge, nuclear plus electronic.
	TotalCharge() int

	//NBasisFunctions returns the basis dimension.
	NBasisFunctions() int

	//BasisSet returns the basis set.
	BasisSet() *BasisSet

	//Channels returns the spin channels present, in the order their
	//orbital blocks are to be emitted.
	Channels() []ChannelKind

	//Orbitals returns the orbital block for the given channel, or nil
	//if the channel is absent.
	Orbitals(ChannelKind) *Orbitals

	//Check verifies the structural invariants of the model. Writers
	//call it before emitting anything.
	Check() error
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else. The decorate slice should contain a list of functions in the calling
// stack, plus, for each function, any relevant information, or nothing. If information is to be added to an element of the slice, it should be
// in this format: "FunctionName: Extra info". If passed an empty string, Decorate should just return the current value, not add the empty
// string to the slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

// FileError is the interface for errors produced while writing a wavefunction to a file.
type FileError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}
