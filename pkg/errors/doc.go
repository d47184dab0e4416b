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

// Package errors provides structured error handling for the aegiscache
// access-aware cache engine.
//
// The package defines a comprehensive error system with:
//
//   - Categorized errors for different domains
//   - Rich error context with details
//   - Standard Go error wrapping support
//   - Type-safe error checking
//
// # Error Categories
//
// Errors map onto the four kinds described in spec.md §7:
//
//   - Substrate: substrate unavailable or timed out (kind i)
//   - Script: atomic script evaluation failure, e.g. a malformed backprop
//     edge or a pattern error (kind ii)
//   - Deserialize: a cache hit whose value failed to decode (kind iii)
//   - CallerFault: a caller contract violation the engine chooses to
//     enforce as an error rather than a documented no-op (kind iv)
//   - Validation, Internal, NotFound: general-purpose categories used
//     outside the four script-facing kinds above
//
// # Creating Errors
//
// Use predefined errors:
//
//	err := errors.ErrInvalidInput.WithDetail("field", "itemKey")
//
// Or create custom errors:
//
//	err := errors.New(
//	    errors.CategoryValidation,
//	    "CUSTOM_ERROR",
//	    "custom error message",
//	)
//
// # Wrapping Errors
//
// Wrap errors to add context:
//
//	if err := validateKey(key); err != nil {
//	    return errors.ErrInvalidInput.
//	        WithMessage("item key validation failed").
//	        Wrap(err)
//	}
//
// # Error Checking
//
// Check error types using standard Go patterns:
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle miss
//	}
//
//	var acErr *errors.Error
//	if errors.As(err, &acErr) {
//	    log.Printf("Code: %s, Details: %v", acErr.Code, acErr.Details)
//	}
package errors
