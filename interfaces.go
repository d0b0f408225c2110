/*
 * interfaces.go, part of gocsa.
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

//Atomer is anything that holds an ordered list of atoms, such as a Mask.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i.
	//Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

//Errors

//ErrorDecorator is the interface for errors that all packages in this library implement.
//The Decorate method allows to add and retrieve info from the error, without changing its type
//or wrapping it around something else.
type ErrorDecorator interface {
	Error() string
	//Decorate returns the list of functions in the calling stack, plus deco, if it is not empty.
	Decorate(deco string) []string
	//Critical returns true if the analysis can't go on after the error.
	Critical() bool
}
