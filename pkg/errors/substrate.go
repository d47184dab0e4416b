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

// Substrate errors (spec error kind i: "Substrate unavailable / timeout").
// These are surfaced unchanged by the engine; the caller decides whether
// to retry.
var (
	// ErrNotFound indicates a key was not present in the substrate. The
	// cache facade translates this into a miss rather than propagating it
	// as an error in most read paths; it is exported for callers of the
	// lower-level substrate package.
	ErrNotFound = &Error{
		Category: CategoryNotFound,
		Code:     "NOT_FOUND",
		Message:  "key not found in substrate",
	}

	// ErrSubstrateConnection indicates the substrate connection failed.
	ErrSubstrateConnection = &Error{
		Category: CategorySubstrate,
		Code:     "CONNECTION_ERROR",
		Message:  "substrate connection failed",
	}

	// ErrSubstrateTimeout indicates a substrate operation timed out.
	ErrSubstrateTimeout = &Error{
		Category: CategorySubstrate,
		Code:     "TIMEOUT",
		Message:  "substrate operation timed out",
	}
)
