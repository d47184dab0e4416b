// Copyright (C) 2025 aegiscache
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package errors

// Caller-fault errors (spec error kind iv: "Caller contract violation").
// Most of these are documented no-ops (I5's unprotected-over-protected
// rule) rather than errors; ErrFilterConflict is the one case spec.md §6
// allows an implementation to enforce as an actual error.
var (
	// ErrFilterConflict indicates setCollection was called with a context
	// filter that differs from the one already recorded for this
	// collection key. Raised only when config.Cache.StrictFilterConflicts
	// is enabled; it is a caller-fault, not a state corruption.
	ErrFilterConflict = &Error{
		Category: CategoryCallerFault,
		Code:     "FILTER_CONFLICT",
		Message:  "collection context filter conflicts with the previously recorded filter",
	}
)
