/*
 * errors.go, part of gowfn.
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
	"fmt"

	wfn "github.com/qcio/gowfn"
)

// Error is the general structure for fchk writer errors. Its pointer
// fulfills wfn.Error and wfn.FileError.
type Error struct {
	message  string
	filename string //the output file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	return fmt.Sprintf("fchk file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error. The receiver is a pointer so
// the decoration outlives the call even when append reallocates the slice.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing writer was associated.
func (err *Error) FileName() string { return err.filename }

// Format returns the format associated to the error (always "fchk").
func (err *Error) Format() string { return "fchk" }

// Critical returns true if the error is critical, false otherwise.
func (err *Error) Critical() bool { return err.critical }

const (
	WriterUnIniWrite   = "Fchk writer uninitialized or closed"
	NilWavefunction    = "Given nil wavefunction"
	UnknownChannelKind = "Unrecognized spin channel kind"
	UnableToOpen       = "Unable to open file"
	WriteFailed        = "Error writing record"
)

// errDecorate is a helper function that asserts that the error implements
// wfn.Error and decorates the error with the caller's name before returning
// it. If used with a non-wfn.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(wfn.Error)
	err2.Decorate(caller)
	return err2
}
