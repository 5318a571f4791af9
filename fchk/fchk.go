/*
 * fchk.go, part of gowfn.
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
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	wfn "github.com/qcio/gowfn"
	"gonum.org/v1/gonum/mat"
)

// FchkW writes formatted checkpoints. It is bound to one output stream for
// its whole lifetime and only ever appends to it; it never reads back or
// seeks. It is not safe for concurrent use, which a single-pass document
// writer has no use for anyway.
type FchkW struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
}

// NewWriter creates the file name and returns a writer bound to it. The
// output layer is picked from the suffix: ".gz" gets gzip, ".zst" and
// ".zstd" get zstd, anything else is written plain. The checkpoint text for
// a large basis is big and repetitive, so compressing it on the way out is
// often worth it.
func NewWriter(name string) (*FchkW, error) {
	F := new(FchkW)
	var err error
	F.f, err = os.Create(name)
	if err != nil {
		return nil, &Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		F.h = gzip.NewWriter(F.f)
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		F.h, err = zstd.NewWriter(F.f)
		if err != nil {
			F.f.Close()
			return nil, &Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
		}
	default:
		F.h = plainWriter{bufio.NewWriter(F.f)}
	}
	F.filename = name
	F.writeable = true
	return F, nil
}

// NewWriterTo returns a writer that appends the document to w. The caller
// keeps ownership of w; Close flushes nothing beyond what w already saw.
func NewWriterTo(w io.Writer) *FchkW {
	return &FchkW{h: nopCloser{w}, filename: "stream", writeable: true}
}

// plainWriter makes a bufio.Writer usable where the compressed layers go:
// Close only flushes, the underlying file is closed separately.
type plainWriter struct {
	*bufio.Writer
}

func (p plainWriter) Close() error { return p.Flush() }

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Close flushes and releases the output layer and the file, in that order,
// and marks the writer unusable. It is safe to call on a nil or already
// closed writer. A failed flush of buffered or compressed output surfaces
// here, so the returned error must be checked for the document to be known
// complete.
func (F *FchkW) Close() error {
	if F == nil || !F.writeable {
		return nil
	}
	F.writeable = false
	err := F.h.Close()
	if F.f != nil {
		if cerr := F.f.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return &Error{err.Error(), F.filename, []string{"Close"}, true}
	}
	return nil
}

// Write emits the whole document for w, which is anything satisfying
// wfn.Wavefunctioner (a *wfn.Wavefunction does): header, summary scalars,
// atom block, basis block and one orbital block per spin channel present,
// in the fixed order Restricted, Alpha, Beta. The model is validated up
// front, so a structural violation aborts before the first byte; a stream
// failure afterwards aborts mid-document and the partial file is the
// caller's to remove. Recovery is re-running the export.
func (F *FchkW) Write(w wfn.Wavefunctioner) error {
	if F == nil || !F.writeable {
		return &Error{WriterUnIniWrite, fileNameOf(F), []string{"Write"}, true}
	}
	if w == nil {
		return &Error{NilWavefunction, F.filename, []string{"Write"}, true}
	}
	if err := w.Check(); err != nil {
		return errDecorate(err, "Write")
	}
	title, calctype, method, basis := w.Header()
	if err := F.writeHeader(title, calctype, method, basis); err != nil {
		return errDecorate(err, "Write")
	}
	if err := F.writeInfo(w); err != nil {
		return errDecorate(err, "Write")
	}
	if err := F.writeAtoms(w.NuclearCharges(), w.Coordinates()); err != nil {
		return errDecorate(err, "Write")
	}
	if err := F.writeBasis(w.BasisSet(), w.Coordinates()); err != nil {
		return errDecorate(err, "Write")
	}
	for _, kind := range w.Channels() {
		if err := F.writeOrbitals(w.Orbitals(kind), kind); err != nil {
			return errDecorate(err, "Write")
		}
	}
	return nil
}

func fileNameOf(F *FchkW) string {
	if F == nil {
		return ""
	}
	return F.filename
}

// writeHeader emits the two free-text lines every checkpoint starts with:
// the 72-character title and the 10+30+30 method line.
func (F *FchkW) writeHeader(title, calctype, method, basis string) error {
	if err := F.printf("%-72s\n", title); err != nil {
		return err
	}
	return F.printf("%-10s%-30s%-30s\n", calctype, method, basis)
}

// writeInfo emits the summary scalars. The net charge is nuclear plus
// electronic.
func (F *FchkW) writeInfo(w wfn.Wavefunctioner) error {
	if err := F.scalarInt("Number of atoms", w.NAtoms()); err != nil {
		return err
	}
	if err := F.scalarInt("Charge", w.TotalCharge()); err != nil {
		return err
	}
	if err := F.scalarInt("Multiplicity", w.Multi()); err != nil {
		return err
	}
	if err := F.scalarInt("Number of electrons", w.NElectrons()); err != nil {
		return err
	}
	if err := F.scalarInt("Number of alpha electrons", w.AlphaElectrons()); err != nil {
		return err
	}
	if err := F.scalarInt("Number of beta electrons", w.BetaElectrons()); err != nil {
		return err
	}
	return F.scalarInt("Number of basis functions", w.NBasisFunctions())
}

// writeAtoms emits the atom block: the nuclear charges coerced to an
// integer array, the charges as reals, and the coordinates with each atom's
// x, y, z contiguous, which is the column-major ravel of the transposed
// natoms x 3 table.
func (F *FchkW) writeAtoms(charges []float64, coords *mat.Dense) error {
	numbers := make([]int, len(charges))
	for i, q := range charges {
		numbers[i] = int(q)
	}
	if err := F.arrayInt("Atomic numbers", numbers); err != nil {
		return err
	}
	if err := F.arrayReal("Nuclear charges", charges); err != nil {
		return err
	}
	flat := []float64{}
	if coords != nil {
		flat = colMajor(coords.T())
	}
	return F.arrayReal("Current cartesian coordinates", flat)
}

// writeOrbitals emits one spin channel: the basis dimension, the orbital
// energies and the coefficients, one orbital contiguous after another.
// Restricted orbitals are labeled "Alpha", as the format has no restricted
// label of its own. A kind outside the enumeration is an error, never a
// silent reuse of some other label.
func (F *FchkW) writeOrbitals(orb *wfn.Orbitals, kind wfn.ChannelKind) error {
	var prefix string
	switch kind {
	case wfn.Restricted, wfn.Alpha:
		prefix = "Alpha "
	case wfn.Beta:
		prefix = "Beta "
	default:
		return &Error{UnknownChannelKind + ": " + kind.String(), F.filename, []string{"writeOrbitals"}, true}
	}
	if err := F.scalarInt("Number of basis functions", orb.NBas()); err != nil {
		return err
	}
	if err := F.arrayReal(prefix+"Orbital Energies", orb.Energies); err != nil {
		return err
	}
	return F.arrayReal(prefix+"MO coefficients", colMajor(orb.Coefficients))
}
