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

// Package permgrammar classifies permission tokens and builds the Lua
// patterns the substrate's atomic scripts match against. It is the one
// external collaborator the cache engine requires; the engine neither
// parses nor validates the patterns it produces.
package permgrammar

// Grammar classifies permission tokens and builds the patterns the
// substrate's scripts use to select them. Implementations must be pure
// and total: the same inputs always produce the same outputs, and a
// malformed token is an error, never a panic.
type Grammar interface {
	// TypeOf derives a permission token's type, used to decide which
	// backprop edges it flows through during Propagate.
	TypeOf(token string) (string, error)

	// ContextFilterFor builds a pattern the substrate's pattern engine
	// can match against raw permission tokens, selecting the permissions
	// "relevant" to a collection identified by kind and arguments.
	ContextFilterFor(kind string, args ...string) (string, error)

	// FilterToContext filters tokens host-side by a context filter, for
	// use when the call site cannot invoke the substrate's own pattern
	// matcher (e.g. composing a filter before a script call).
	FilterToContext(filter string, tokens []string) ([]string, error)

	// EveryTypePattern returns the universal type token used by
	// setPermissionUnion: every permission matches it, regardless of type.
	EveryTypePattern() string
}
