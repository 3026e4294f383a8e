/*
 * errors.go, part of gosurf.
 *
 * Copyright 2023 Lucas Vidal <lvidal{at}protonDOTme>
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

package surf

import "fmt"

// Error is the interface for errors that this library implements. The Decorate
// method allows to add and retrieve info from the error without changing its
// type or wrapping it around something else. The decoration slice should contain
// a list of the functions in the calling stack, plus, for each function, any
// relevant information, or nothing.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete type implementing Error for this package.
type CError struct {
	msg  string
	deco []string
}

// Error returns a string with an error message.
func (err CError) Error() string { return err.msg }

// Decorate adds the dec string to the decoration slice of strings of the error,
// and returns the resulting slice. If given an empty string it just returns the
// current decorations.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// ConfigError reports invalid construction parameters, such as grid dimensions
// smaller than 3. It is always detected at construction and never recoverable
// by retrying.
type ConfigError struct {
	CError
}

// PreconditionError reports a query outside the limits fixed at construction,
// such as a probe radius larger than the maximum the cell grid was built for.
// Silently truncating the request would yield wrong "accessible" answers, so
// these fail loudly instead.
type PreconditionError struct {
	CError
}

func configError(caller, format string, a ...interface{}) ConfigError {
	return ConfigError{CError{fmt.Sprintf(format, a...), []string{caller}}}
}

func precondError(caller, format string, a ...interface{}) PreconditionError {
	return PreconditionError{CError{fmt.Sprintf(format, a...), []string{caller}}}
}

// PanicMsg is a message used for panics. It satisfies the error interface, but
// for returned errors use Error/CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilMolecule    = PanicMsg("gosurf: nil atom set or coordinates")
	ErrAtomOutOfRange = PanicMsg("gosurf: requested atom out of range")
	ErrCellOutOfRange = PanicMsg("gosurf: requested grid cell out of range")
)
