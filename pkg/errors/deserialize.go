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

// ErrDeserialize indicates a cache hit whose stored value could not be
// deserialized by the caller-supplied decode step (spec error kind iii),
// typically a version skew between the writer and the reader.
var ErrDeserialize = &Error{
	Category: CategoryDeserialize,
	Code:     "DESERIALIZE_ERROR",
	Message:  "failed to deserialize cached value",
}
