/*
 * errors.go, part of gocsa.
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

package csa

import (
	"fmt"
	"strings"
)

//ErrKind identifies a class of failure. Errors returned by this package
//match their kind with errors.Is, e.g. errors.Is(err, csa.ErrChargeTableMismatch).
type ErrKind string

func (k ErrKind) Error() string { return string(k) }

const (
	ErrMissingResidueFile      ErrKind = "missing residue file"
	ErrAmbiguousStructureInput ErrKind = "ambiguous structure input"
	ErrChargeTableMismatch     ErrKind = "charge table mismatch"
	ErrIndexOutOfRange         ErrKind = "index out of range"
	ErrMalformedStructure      ErrKind = "malformed structure record"
	ErrMalformedCharges        ErrKind = "malformed charge row"
	ErrMalformedSelection      ErrKind = "malformed residue selection"
	ErrAlignmentDrift          ErrKind = "alignment drift"
	ErrInvalidThreshold        ErrKind = "invalid threshold"
)

//Error is the error type returned by this package. It implements ErrorDecorator.
type Error struct {
	kind     ErrKind
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func newError(kind ErrKind, message, filename, caller string) Error {
	return Error{kind: kind, message: message, filename: filename, deco: []string{caller}, critical: true}
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("csa: %s: %s", err.kind, err.message)
	}
	return fmt.Sprintf("csa: %s in %s: %s", err.kind, err.filename, err.message)
}

//Is reports whether target is the kind of err.
func (err Error) Is(target error) bool {
	k, ok := target.(ErrKind)
	return ok && k == err.kind
}

//Kind returns the kind of the error.
func (err Error) Kind() ErrKind { return err.kind }

//Decorate returns the decoration of the error (the callers it went through)
//with deco added, if deco is not empty. The error itself is not changed,
//use errDecorate for that.
func (err Error) Decorate(deco string) []string {
	ret := make([]string, len(err.deco), len(err.deco)+1)
	copy(ret, err.deco)
	if deco != "" {
		ret = append(ret, deco)
	}
	return ret
}

//Trace returns the callers the error went through, innermost first.
func (err Error) Trace() string { return strings.Join(err.deco, " <- ") }

//FileName returns the file associated to the error, or an empty string.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

//errDecorate adds the caller's name to err if it is an Error,
//other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	e.deco = e.Decorate(caller)
	return e
}
