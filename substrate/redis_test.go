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

package substrate

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// newTestRedisSubstrate starts an in-process miniredis and wraps it in a
// RedisSubstrate. miniredis covers the plain GET/SET/SADD primitives
// exercised here; the four atomic Lua scripts are exercised only against
// a real Redis server (see redis_integration_test.go), since miniredis's
// Lua emulation isn't trusted to match Redis's EVAL semantics exactly.
func newTestRedisSubstrate(t *testing.T) *RedisSubstrate {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisSubstrateFromClient(client)
}

func TestRedisSubstrate_SetAndGetValue(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisSubstrate(t)

	if err := s.SetValue(ctx, "item:i1:value", []byte("hello"), 0); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	value, ok, err := s.GetValue(ctx, "item:i1:value")
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if string(value) != "hello" {
		t.Errorf("value = %q, want hello", value)
	}
}

func TestRedisSubstrate_GetValue_Miss(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisSubstrate(t)

	_, ok, err := s.GetValue(ctx, "item:missing:value")
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	if ok {
		t.Error("expected a miss for an absent key")
	}
}

func TestRedisSubstrate_SetAndMembers(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisSubstrate(t)

	if err := s.SAdd(ctx, "item:i1:perms", "perm:a", "perm:b"); err != nil {
		t.Fatalf("SAdd: %v", err)
	}

	members, err := s.SMembers(ctx, "item:i1:perms")
	if err != nil {
		t.Fatalf("SMembers: %v", err)
	}
	if len(members) != 2 {
		t.Errorf("members = %v, want 2 entries", members)
	}

	count, err := s.SCard(ctx, "item:i1:perms")
	if err != nil {
		t.Fatalf("SCard: %v", err)
	}
	if count != 2 {
		t.Errorf("SCard = %d, want 2", count)
	}
}

func TestRedisSubstrate_Exists(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisSubstrate(t)

	exists, err := s.Exists(ctx, "item:i1:value")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Error("expected key to not exist yet")
	}

	if err := s.SetValue(ctx, "item:i1:value", []byte("x"), 0); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	exists, err = s.Exists(ctx, "item:i1:value")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Error("expected key to exist after SetValue")
	}
}

func TestRedisSubstrate_Expire(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisSubstrate(t)

	if err := s.SetValue(ctx, "item:i1:value", []byte("x"), 0); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := s.Expire(ctx, "item:i1:value", 50*time.Millisecond); err != nil {
		t.Fatalf("Expire: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	exists, err := s.Exists(ctx, "item:i1:value")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Error("expected key to have expired")
	}
}

func TestRedisSubstrate_ConnectionFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := NewRedisSubstrate(ctx, &RedisConfig{Address: "invalid-host:1"})
	if err == nil {
		t.Fatal("expected an error connecting to an invalid address")
	}
}
