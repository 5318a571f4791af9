/*
 * wfn.go, part of gowfn.
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

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

// Shell is one contracted shell: a fixed set of primitive Gaussians given as
// position-aligned exponent/coefficient pairs. Exponents[i] pairs with
// Coefficients[i]. A single-primitive shell is a valid, uncontracted shell.
type Shell struct {
	Exponents    []float64
	Coefficients []float64
}

// NPrim returns the number of primitives in the shell.
func (S *Shell) NPrim() int {
	return len(S.Exponents)
}

// AngMomBlock groups the contracted shells of one center that share the
// angular momentum L (0=s, 1=p, 2=d, ...).
type AngMomBlock struct {
	L      int
	Shells []Shell
}

// Center is one atomic center of a basis set. ID is the 1-based number of the
// owning atom, the same number used to index the coordinate table elsewhere
// in the wavefunction (coords row ID-1).
type Center struct {
	ID     int
	Blocks []AngMomBlock
}

// BasisSet is an ordered sequence of atomic centers. The order of centers,
// of the blocks within a center and of the shells within a block is
// meaningful: writers assign flat shell indices by traversing it as given.
type BasisSet struct {
	Centers []Center
}

// ContractedShells returns the total number of contracted shells in the set.
func (B *BasisSet) ContractedShells() int {
	n := 0
	for _, c := range B.Centers {
		for _, b := range c.Blocks {
			n += len(b.Shells)
		}
	}
	return n
}

// PrimitiveShells returns the total number of primitives over all shells.
func (B *BasisSet) PrimitiveShells() int {
	n := 0
	for _, c := range B.Centers {
		for _, b := range c.Blocks {
			for _, s := range b.Shells {
				n += s.NPrim()
			}
		}
	}
	return n
}

// HighestAngMom returns the largest angular momentum present, 0 for an
// empty set.
func (B *BasisSet) HighestAngMom() int {
	h := 0
	for _, c := range B.Centers {
		for _, b := range c.Blocks {
			if b.L > h {
				h = b.L
			}
		}
	}
	return h
}

// LargestContraction returns the primitive count of the most contracted
// single shell, 0 for an empty set.
func (B *BasisSet) LargestContraction() int {
	l := 0
	for _, c := range B.Centers {
		for _, b := range c.Blocks {
			for _, s := range b.Shells {
				if s.NPrim() > l {
					l = s.NPrim()
				}
			}
		}
	}
	return l
}

// Check verifies the structural invariants of the basis set against a
// coordinate table of natoms entries: center ids must be unique, 1-based and
// not exceed natoms; angular momenta must be non-negative; every shell must
// have at least one primitive and as many coefficients as exponents.
// It returns nil or the first violation found.
func (B *BasisSet) Check(natoms int) error {
	seen := make(map[int]bool, len(B.Centers))
	for i, c := range B.Centers {
		if c.ID < 1 || c.ID > natoms {
			return &CError{fmt.Sprintf("goWfn: center %d id %d outside 1..%d", i, c.ID, natoms), []string{"BasisSet.Check"}}
		}
		if seen[c.ID] {
			return &CError{fmt.Sprintf("goWfn: duplicated center id %d", c.ID), []string{"BasisSet.Check"}}
		}
		seen[c.ID] = true
		for _, b := range c.Blocks {
			if b.L < 0 {
				return &CError{fmt.Sprintf("goWfn: negative angular momentum %d on center id %d", b.L, c.ID), []string{"BasisSet.Check"}}
			}
			for j, s := range b.Shells {
				if s.NPrim() == 0 {
					return &CError{fmt.Sprintf("goWfn: empty shell %d (L=%d) on center id %d", j, b.L, c.ID), []string{"BasisSet.Check"}}
				}
				if len(s.Exponents) != len(s.Coefficients) {
					return &CError{fmt.Sprintf("goWfn: shell %d (L=%d) on center id %d has %d exponents but %d coefficients",
						j, b.L, c.ID, len(s.Exponents), len(s.Coefficients)), []string{"BasisSet.Check"}}
				}
			}
		}
	}
	return nil
}

// Orbitals holds one spin channel worth of molecular orbitals: the orbital
// energies and the square coefficient matrix, one column per orbital, in the
// basis-function ordering the consumer of the wavefunction expects.
type Orbitals struct {
	Energies     []float64
	Coefficients *mat.Dense
}

// NBas returns the basis dimension of the orbital block.
func (O *Orbitals) NBas() int {
	return len(O.Energies)
}

// ChannelKind identifies the spin manifold a set of orbitals belongs to.
// It is a closed enumeration: anything outside Restricted, Alpha and Beta is
// rejected by the writers.
type ChannelKind int

const (
	Restricted ChannelKind = iota
	Alpha
	Beta
)

// The names used by the producing programs for each channel kind, in
// ChannelKind order. "alfa" is the legacy spelling, kept for compatibility.
var channelNames = []string{"restricted", "alfa", "beta"}

func (k ChannelKind) String() string {
	if k < 0 || int(k) >= len(channelNames) {
		return fmt.Sprintf("ChannelKind(%d)", int(k))
	}
	return channelNames[k]
}

// ParseChannelKind returns the ChannelKind for one of the names
// "restricted", "alfa" or "beta", or an error for anything else.
func ParseChannelKind(name string) (ChannelKind, error) {
	i := slices.Index(channelNames, name)
	if i < 0 {
		return 0, &CError{fmt.Sprintf("goWfn: unrecognized channel kind %q", name), []string{"ParseChannelKind"}}
	}
	return ChannelKind(i), nil
}

// Wavefunction is the result of an electronic-structure calculation as far
// as an exporter is concerned: geometry, electron bookkeeping, basis set and
// one orbital block per spin channel. It is not modified by the writers.
type Wavefunction struct {
	Title     string
	CalcType  string
	Method    string
	BasisName string

	//Per-atom nuclear charges and cartesian coordinates. Charges and the
	//rows of Coords are index-aligned; coordinates are in Bohr.
	Charges []float64
	Coords  *mat.Dense

	NAlpha           int
	NBeta            int
	Multiplicity     int
	ElectronicCharge int

	//NBasis is the number of basis functions. It is not derivable from the
	//basis set alone, as it depends on whether pure or cartesian functions
	//are used for each shell, so the producer sets it.
	NBasis int

	Basis *BasisSet
	MO    map[ChannelKind]*Orbitals
}

// Header returns the document title and the calculation type, method and
// basis-set name.
func (W *Wavefunction) Header() (title, calctype, method, basis string) {
	return W.Title, W.CalcType, W.Method, W.BasisName
}

// NAtoms returns the number of atoms.
func (W *Wavefunction) NAtoms() int {
	return len(W.Charges)
}

// NuclearCharges returns the per-atom nuclear charges.
func (W *Wavefunction) NuclearCharges() []float64 {
	return W.Charges
}

// Coordinates returns the cartesian coordinate table.
func (W *Wavefunction) Coordinates() *mat.Dense {
	return W.Coords
}

// AlphaElectrons returns the alpha electron count.
func (W *Wavefunction) AlphaElectrons() int {
	return W.NAlpha
}

// BetaElectrons returns the beta electron count.
func (W *Wavefunction) BetaElectrons() int {
	return W.NBeta
}

// Multi returns the spin multiplicity.
func (W *Wavefunction) Multi() int {
	return W.Multiplicity
}

// NBasisFunctions returns the basis dimension.
func (W *Wavefunction) NBasisFunctions() int {
	return W.NBasis
}

// BasisSet returns the basis set.
func (W *Wavefunction) BasisSet() *BasisSet {
	return W.Basis
}

// Orbitals returns the orbital block for the given channel, nil if absent.
func (W *Wavefunction) Orbitals(k ChannelKind) *Orbitals {
	return W.MO[k]
}

// NElectrons returns the total electron count.
func (W *Wavefunction) NElectrons() int {
	return W.NAlpha + W.NBeta
}

// NuclearCharge returns the total nuclear charge as an integer.
func (W *Wavefunction) NuclearCharge() int {
	q := 0.0
	for _, c := range W.Charges {
		q += c
	}
	return int(math.Round(q))
}

// TotalCharge returns the net charge of the system, nuclear plus electronic.
func (W *Wavefunction) TotalCharge() int {
	return W.NuclearCharge() + W.ElectronicCharge
}

// Channels returns the spin channels present in the wavefunction, always in
// the order Restricted, Alpha, Beta, so documents built from it are
// deterministic. Keys outside the enumeration are ignored here and caught
// by Check.
func (W *Wavefunction) Channels() []ChannelKind {
	kinds := make([]ChannelKind, 0, len(W.MO))
	for _, k := range []ChannelKind{Restricted, Alpha, Beta} {
		if _, ok := W.MO[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Check verifies the structural invariants of the whole wavefunction:
// coordinate-table shape, basis-set consistency (see BasisSet.Check) and
// the dimensions of every orbital block. Writers call it before emitting
// the first byte, so a malformed model fails fast instead of leaving a
// partially believable file.
func (W *Wavefunction) Check() error {
	natoms := W.NAtoms()
	if natoms > 0 {
		if W.Coords == nil {
			return &CError{"goWfn: nil coordinates for a wavefunction with atoms", []string{"Wavefunction.Check"}}
		}
		r, c := W.Coords.Dims()
		if r != natoms || c != 3 {
			return &CError{fmt.Sprintf("goWfn: coordinates are %dx%d, want %dx3", r, c, natoms), []string{"Wavefunction.Check"}}
		}
	}
	if W.Basis == nil {
		return &CError{"goWfn: nil basis set", []string{"Wavefunction.Check"}}
	}
	if err := W.Basis.Check(natoms); err != nil {
		return errDecorate(err, "Wavefunction.Check")
	}
	for k, o := range W.MO {
		if k != Restricted && k != Alpha && k != Beta {
			return &CError{fmt.Sprintf("goWfn: unrecognized channel kind %s", k), []string{"Wavefunction.Check"}}
		}
		if o == nil {
			return &CError{fmt.Sprintf("goWfn: nil orbitals for channel %s", k), []string{"Wavefunction.Check"}}
		}
		if o.NBas() != W.NBasis {
			return &CError{fmt.Sprintf("goWfn: channel %s has %d orbital energies, want %d", k, o.NBas(), W.NBasis), []string{"Wavefunction.Check"}}
		}
		if o.Coefficients == nil {
			return &CError{fmt.Sprintf("goWfn: nil orbital coefficients for channel %s", k), []string{"Wavefunction.Check"}}
		}
		r, c := o.Coefficients.Dims()
		if r != o.NBas() || c != o.NBas() {
			return &CError{fmt.Sprintf("goWfn: channel %s coefficients are %dx%d, want %dx%d", k, r, c, o.NBas(), o.NBas()), []string{"Wavefunction.Check"}}
		}
	}
	return nil
}

// CError is the concrete error type of the wfn package. Its pointer
// implements Error.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

// Decorate adds new information to the error. The receiver is a pointer so
// the decoration outlives the call even when append reallocates the slice.
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// errDecorate asserts that the error implements Error and decorates it with
// the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
