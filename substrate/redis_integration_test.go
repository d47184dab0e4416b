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

//go:build integration
// +build integration

package substrate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run Redis container before tests:
// docker run -d -p 6381:6379 --name aegiscache-redis redis:7-alpine

func getTestRedisConfig() *RedisConfig {
	config := DefaultRedisConfig()
	config.Address = "localhost:6381"
	return config
}

func newIntegrationSubstrate(t *testing.T) *RedisSubstrate {
	t.Helper()

	ctx := context.Background()
	s, err := NewRedisSubstrate(ctx, getTestRedisConfig())
	require.NoError(t, err)

	// Flush the test keyspace so scenarios don't bleed into each other.
	require.NoError(t, s.client.FlushDB(ctx).Err())

	t.Cleanup(func() { s.Close() })
	return s
}

func TestRedisSubstrate_Propagate_Integration(t *testing.T) {
	ctx := context.Background()
	s := newIntegrationSubstrate(t)

	err := s.Propagate(ctx, PropagateRequest{
		RootItemKey:    "doc1",
		ClientID:       "alice",
		Perms:          []string{"domain;math;course;101;user;alice"},
		ItemPermsTTL:   time.Minute,
		ClientPermsTTL: time.Minute,
	})
	require.NoError(t, err)

	members, err := s.SMembers(ctx, "item:doc1:perms")
	require.NoError(t, err)
	assert.Contains(t, members, "domain;math;course;101;user;alice")

	clientMembers, err := s.SMembers(ctx, "client:alice:perms")
	require.NoError(t, err)
	assert.Contains(t, clientMembers, "domain;math;course;101;user;alice")
}

func TestRedisSubstrate_PropagateBackprop_Integration(t *testing.T) {
	ctx := context.Background()
	s := newIntegrationSubstrate(t)

	require.NoError(t, s.SAdd(ctx, "item:doc1:backprop:domain;%w+;course;%d+;user;.*", "doc2"))

	err := s.Propagate(ctx, PropagateRequest{
		RootItemKey: "doc1",
		ClientID:    "alice",
		Perms:       []string{"domain;math;course;101;user;alice"},
	})
	require.NoError(t, err)

	linkedPerms, err := s.SMembers(ctx, "item:doc2:perms")
	require.NoError(t, err)
	assert.Contains(t, linkedPerms, "domain;math;course;101;user;alice")
}

func TestRedisSubstrate_PropagateMalformedEdge_Integration(t *testing.T) {
	ctx := context.Background()
	s := newIntegrationSubstrate(t)

	require.NoError(t, s.SAdd(ctx, "item:doc1:backprop:", "doc2"))

	err := s.Propagate(ctx, PropagateRequest{
		RootItemKey: "doc1",
		ClientID:    "alice",
		Perms:       []string{"domain;math;course;101;user;alice"},
	})
	require.Error(t, err)
}

func TestRedisSubstrate_AuthorizeGet_Integration(t *testing.T) {
	ctx := context.Background()
	s := newIntegrationSubstrate(t)

	require.NoError(t, s.SAdd(ctx, "client:alice:perms", "perm:read:doc1"))
	require.NoError(t, s.SAdd(ctx, "item:doc1:perms", "perm:read:doc1"))
	require.NoError(t, s.SetValue(ctx, "item:doc1:value", []byte("hello world"), 0))

	res, err := s.AuthorizeGet(ctx, "client:alice:perms", "item:doc1:perms", "item:doc1:value")
	require.NoError(t, err)
	assert.True(t, res.Authorized)
	assert.Equal(t, "hello world", string(res.Value))
}

func TestRedisSubstrate_AuthorizeGet_Unauthorized_Integration(t *testing.T) {
	ctx := context.Background()
	s := newIntegrationSubstrate(t)

	require.NoError(t, s.SAdd(ctx, "client:bob:perms", "perm:read:other"))
	require.NoError(t, s.SAdd(ctx, "item:doc1:perms", "perm:read:doc1"))
	require.NoError(t, s.SetValue(ctx, "item:doc1:value", []byte("secret"), 0))

	res, err := s.AuthorizeGet(ctx, "client:bob:perms", "item:doc1:perms", "item:doc1:value")
	require.NoError(t, err)
	assert.False(t, res.Authorized)
	assert.Nil(t, res.Value)
}

func TestRedisSubstrate_AuthorizeGet_ValueExpired_Integration(t *testing.T) {
	ctx := context.Background()
	s := newIntegrationSubstrate(t)

	require.NoError(t, s.SAdd(ctx, "client:alice:perms", "perm:read:doc1"))
	require.NoError(t, s.SAdd(ctx, "item:doc1:perms", "perm:read:doc1"))
	// No SetValue call: the perms exist but the value key never does,
	// reproducing an item whose value TTL lapsed before its perms.

	res, err := s.AuthorizeGet(ctx, "client:alice:perms", "item:doc1:perms", "item:doc1:value")
	require.NoError(t, err)
	assert.True(t, res.Authorized)
	assert.Nil(t, res.Value)
}

func TestRedisSubstrate_FilterPermissions_Integration(t *testing.T) {
	ctx := context.Background()
	s := newIntegrationSubstrate(t)

	require.NoError(t, s.SAdd(ctx, "client:alice:perms",
		"domain;math;course;101;user;alice",
		"domain;history;course;200;user;alice",
	))

	count, err := s.FilterPermissions(ctx, "client:alice:perms", "collection:c1:v1:perms", "domain;math;.*")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	members, err := s.SMembers(ctx, "collection:c1:v1:perms")
	require.NoError(t, err)
	assert.Equal(t, []string{"domain;math;course;101;user;alice"}, members)
}

func TestRedisSubstrate_DominanceGet_Integration(t *testing.T) {
	ctx := context.Background()
	s := newIntegrationSubstrate(t)

	require.NoError(t, s.SetValue(ctx, "collection:c1:filter", "domain;math;.*", 0))
	require.NoError(t, s.SAdd(ctx, "collection:c1:variants", "v1"))
	require.NoError(t, s.SAdd(ctx, "collection:c1:v1:perms", "domain;math;course;101;user;alice"))
	require.NoError(t, s.SAdd(ctx, "collection:c1:v1:items", "doc1"))
	require.NoError(t, s.SetValue(ctx, "collection:c1:v1:count", []byte("1"), 0))

	require.NoError(t, s.SAdd(ctx, "client:alice:perms", "domain;math;course;101;user;alice"))
	require.NoError(t, s.SAdd(ctx, "item:doc1:perms", "domain;math;course;101;user;alice"))
	require.NoError(t, s.SetValue(ctx, "item:doc1:value", []byte("doc1 body"), 0))

	res, err := s.DominanceGet(ctx, "client:alice:perms", "c1")
	require.NoError(t, err)
	assert.True(t, res.Hit)
	require.Len(t, res.Values, 1)
	assert.Equal(t, "doc1 body", string(res.Values[0]))
}

func TestRedisSubstrate_DominanceGet_MissExtraPerm_Integration(t *testing.T) {
	ctx := context.Background()
	s := newIntegrationSubstrate(t)

	require.NoError(t, s.SetValue(ctx, "collection:c1:filter", "domain;math;.*", 0))
	require.NoError(t, s.SAdd(ctx, "collection:c1:variants", "v1"))
	require.NoError(t, s.SAdd(ctx, "collection:c1:v1:perms", "domain;math;course;101;user;alice"))
	require.NoError(t, s.SAdd(ctx, "collection:c1:v1:items", "doc1"))
	require.NoError(t, s.SetValue(ctx, "collection:c1:v1:count", []byte("1"), 0))

	require.NoError(t, s.SAdd(ctx, "client:carol:perms",
		"domain;math;course;101;user;carol",
		"domain;math;course;999;user;carol",
	))

	res, err := s.DominanceGet(ctx, "client:carol:perms", "c1")
	require.NoError(t, err)
	assert.False(t, res.Hit)
}

func TestRedisSubstrate_DominanceGet_StaleVariantFallback_Integration(t *testing.T) {
	ctx := context.Background()
	s := newIntegrationSubstrate(t)

	require.NoError(t, s.SetValue(ctx, "collection:c1:filter", "domain;math;.*", 0))
	require.NoError(t, s.SAdd(ctx, "collection:c1:variants", "v1", "v2"))

	// v1 has the higher count so is tried first, but its item value has
	// expired; dominance should fall back to v2.
	require.NoError(t, s.SAdd(ctx, "collection:c1:v1:perms", "domain;math;course;101;user;alice"))
	require.NoError(t, s.SAdd(ctx, "collection:c1:v1:items", "doc1"))
	require.NoError(t, s.SetValue(ctx, "collection:c1:v1:count", []byte("5"), 0))
	require.NoError(t, s.SAdd(ctx, "item:doc1:perms", "domain;math;course;101;user;alice"))
	require.NoError(t, s.SetValue(ctx, "item:doc1:value", []byte("stale"), 10*time.Millisecond))

	require.NoError(t, s.SAdd(ctx, "collection:c1:v2:perms", "domain;math;course;101;user;alice"))
	require.NoError(t, s.SAdd(ctx, "collection:c1:v2:items", "doc2"))
	require.NoError(t, s.SetValue(ctx, "collection:c1:v2:count", []byte("1"), 0))
	require.NoError(t, s.SAdd(ctx, "item:doc2:perms", "domain;math;course;101;user;alice"))
	require.NoError(t, s.SetValue(ctx, "item:doc2:value", []byte("fresh"), 0))

	require.NoError(t, s.SAdd(ctx, "client:alice:perms", "domain;math;course;101;user;alice"))

	time.Sleep(50 * time.Millisecond)

	res, err := s.DominanceGet(ctx, "client:alice:perms", "c1")
	require.NoError(t, err)
	assert.True(t, res.Hit)
	require.Len(t, res.Values, 1)
	assert.Equal(t, "fresh", string(res.Values[0]))
}
