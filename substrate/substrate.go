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

// Package substrate is the abstract key-value + set + atomic-script
// service the cache facade is built on. Substrate is implemented by
// RedisSubstrate (atomic scripts as Lua, the production path) and
// MemorySubstrate (a pure-Go reference implementation with identical
// semantics, for unit tests that don't want a live Redis).
package substrate

import (
	"context"
	"time"
)

// PropagateRequest describes one Propagate invocation (spec §4.C.1).
type PropagateRequest struct {
	// RootItemKey is the item the write originated on.
	RootItemKey string

	// ClientID identifies the writer whose client-perms grow alongside
	// the item's perms.
	ClientID string

	// Perms are the permission tokens being added. A zero-length Perms
	// short-circuits without a substrate call.
	Perms []string

	// ItemPermsTTL re-arms every touched item's perms key. Zero leaves
	// existing TTLs (or the lack of one) untouched.
	ItemPermsTTL time.Duration

	// ClientPermsTTL re-arms the client's perms key. Zero leaves it
	// untouched.
	ClientPermsTTL time.Duration
}

// AuthorizeResult is the outcome of an Authorize-Get call.
type AuthorizeResult struct {
	Authorized bool
	Value      []byte
}

// DominanceResult is the outcome of a Dominance-Get call.
type DominanceResult struct {
	Hit    bool
	Values [][]byte
}

// Substrate is the storage and scripting contract the cache facade
// requires. Every multi-key operation that must observe or mutate a
// consistent snapshot is one method here, backed by one atomic script.
type Substrate interface {
	// Propagate runs the write-path script: §4.C.1.
	Propagate(ctx context.Context, req PropagateRequest) error

	// AuthorizeGet runs the single-item read-path script: §4.C.2.
	AuthorizeGet(ctx context.Context, clientPermsKey, itemPermsKey, valueKey string) (AuthorizeResult, error)

	// FilterPermissions runs the collection write helper script: §4.C.3.
	FilterPermissions(ctx context.Context, clientPermsKey, dstKey, pattern string) (int, error)

	// DominanceGet runs the collection read-path script: §4.C.4.
	DominanceGet(ctx context.Context, clientPermsKey, collectionKey string) (DominanceResult, error)

	// GetValue reads a plain value key. ok is false on a miss.
	GetValue(ctx context.Context, key string) (value []byte, ok bool, err error)

	// SetValue writes a plain value key with an optional TTL (zero means
	// no expiration).
	SetValue(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Exists reports whether a key is present, regardless of type.
	Exists(ctx context.Context, key string) (bool, error)

	// Expire re-arms a key's TTL. Zero removes any existing expiration.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// SAdd adds members to a set key, creating it if absent.
	SAdd(ctx context.Context, key string, members ...string) error

	// SMembers returns every member of a set key, or nil if absent.
	SMembers(ctx context.Context, key string) ([]string, error)

	// SCard returns the cardinality of a set key, or 0 if absent.
	SCard(ctx context.Context, key string) (int, error)

	// Ping reports whether the substrate is reachable, for use by the
	// readiness/liveness health checks in observability/health.
	Ping(ctx context.Context) error

	// Close releases any resources the substrate holds open.
	Close() error
}
