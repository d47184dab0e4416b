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
	_ "embed"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aegiscache/aegiscache/pkg/errors"
)

//go:embed scripts/propagate.lua
var propagateScriptSrc string

//go:embed scripts/authorize_get.lua
var authorizeGetScriptSrc string

//go:embed scripts/filter_permissions.lua
var filterPermissionsScriptSrc string

//go:embed scripts/dominance_get.lua
var dominanceGetScriptSrc string

// RedisSubstrate implements Substrate on top of go-redis, with the four
// atomic operations compiled once into server-cached Lua scripts.
type RedisSubstrate struct {
	client *redis.Client

	propagate         *redis.Script
	authorizeGet      *redis.Script
	filterPermissions *redis.Script
	dominanceGet      *redis.Script
}

// RedisConfig contains Redis connection configuration.
type RedisConfig struct {
	Address      string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultRedisConfig returns the default Redis configuration.
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Address:      "localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// NewRedisSubstrate dials Redis and loads the four atomic scripts.
func NewRedisSubstrate(ctx context.Context, config *RedisConfig) (*RedisSubstrate, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Address,
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdleConns,
		MaxRetries:   config.MaxRetries,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, config.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errors.ErrSubstrateConnection.Wrap(err)
	}

	return newRedisSubstrateFromClient(client), nil
}

// newRedisSubstrateFromClient builds a RedisSubstrate around an
// already-connected client, shared by NewRedisSubstrate and tests that
// point at miniredis.
func newRedisSubstrateFromClient(client *redis.Client) *RedisSubstrate {
	return &RedisSubstrate{
		client:            client,
		propagate:         redis.NewScript(propagateScriptSrc),
		authorizeGet:      redis.NewScript(authorizeGetScriptSrc),
		filterPermissions: redis.NewScript(filterPermissionsScriptSrc),
		dominanceGet:      redis.NewScript(dominanceGetScriptSrc),
	}
}

// NewRedisSubstrateFromClient wraps an existing *redis.Client, for
// callers (and tests) that manage the connection themselves.
func NewRedisSubstrateFromClient(client *redis.Client) *RedisSubstrate {
	return newRedisSubstrateFromClient(client)
}

func ttlSeconds(ttl time.Duration) string {
	if ttl <= 0 {
		return "0"
	}
	return strconv.FormatInt(int64(ttl/time.Second), 10)
}

// Propagate implements Substrate.
func (s *RedisSubstrate) Propagate(ctx context.Context, req PropagateRequest) error {
	if len(req.Perms) == 0 {
		return nil
	}

	clientPermsKey := "client:" + req.ClientID + ":perms"

	args := make([]interface{}, 0, 3+len(req.Perms))
	args = append(args, req.RootItemKey, ttlSeconds(req.ItemPermsTTL), ttlSeconds(req.ClientPermsTTL))
	for _, p := range req.Perms {
		args = append(args, p)
	}

	_, err := s.propagate.Run(ctx, s.client, []string{clientPermsKey}, args...).Result()
	return translateScriptError(err)
}

// AuthorizeGet implements Substrate.
func (s *RedisSubstrate) AuthorizeGet(ctx context.Context, clientPermsKey, itemPermsKey, valueKey string) (AuthorizeResult, error) {
	res, err := s.authorizeGet.Run(ctx, s.client, []string{clientPermsKey, itemPermsKey, valueKey}).Result()
	if err != nil {
		return AuthorizeResult{}, translateScriptError(err)
	}

	row, ok := res.([]interface{})
	if !ok || len(row) != 2 {
		return AuthorizeResult{}, errors.ErrScriptEvaluation.WithMessage("authorize_get returned an unexpected shape")
	}

	authorized, _ := row[0].(int64)
	if authorized == 0 {
		return AuthorizeResult{Authorized: false}, nil
	}

	// row[1] comes back as a Go nil (not an empty string) when the
	// value key has expired or was never set: the item's perms outlived
	// its value. That must surface as an absent value, not a hit on an
	// empty byte slice.
	if row[1] == nil {
		return AuthorizeResult{Authorized: true, Value: nil}, nil
	}
	value, _ := row[1].(string)
	return AuthorizeResult{Authorized: true, Value: []byte(value)}, nil
}

// FilterPermissions implements Substrate.
func (s *RedisSubstrate) FilterPermissions(ctx context.Context, clientPermsKey, dstKey, pattern string) (int, error) {
	res, err := s.filterPermissions.Run(ctx, s.client, []string{clientPermsKey, dstKey}, pattern).Result()
	if err != nil {
		return 0, translateScriptError(err)
	}

	count, ok := res.(int64)
	if !ok {
		return 0, errors.ErrScriptEvaluation.WithMessage("filter_permissions returned a non-integer result")
	}
	return int(count), nil
}

// DominanceGet implements Substrate.
func (s *RedisSubstrate) DominanceGet(ctx context.Context, clientPermsKey, collectionKey string) (DominanceResult, error) {
	res, err := s.dominanceGet.Run(ctx, s.client, []string{clientPermsKey}, collectionKey).Result()
	if err != nil {
		return DominanceResult{}, translateScriptError(err)
	}

	row, ok := res.([]interface{})
	if !ok || len(row) != 2 {
		return DominanceResult{}, errors.ErrScriptEvaluation.WithMessage("dominance_get returned an unexpected shape")
	}

	hit, _ := row[0].(int64)
	rawValues, _ := row[1].([]interface{})

	values := make([][]byte, 0, len(rawValues))
	for _, v := range rawValues {
		s, _ := v.(string)
		values = append(values, []byte(s))
	}

	return DominanceResult{Hit: hit != 0, Values: values}, nil
}

// GetValue implements Substrate.
func (s *RedisSubstrate) GetValue(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, errors.ErrSubstrateConnection.Wrap(err)
	}
	return data, true, nil
}

// SetValue implements Substrate.
func (s *RedisSubstrate) SetValue(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.ErrSubstrateConnection.Wrap(err)
	}
	return nil
}

// Exists implements Substrate.
func (s *RedisSubstrate) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, errors.ErrSubstrateConnection.Wrap(err)
	}
	return n > 0, nil
}

// Expire implements Substrate.
func (s *RedisSubstrate) Expire(ctx context.Context, key string, ttl time.Duration) error {
	var err error
	if ttl <= 0 {
		err = s.client.Persist(ctx, key).Err()
	} else {
		err = s.client.Expire(ctx, key, ttl).Err()
	}
	if err != nil {
		return errors.ErrSubstrateConnection.Wrap(err)
	}
	return nil
}

// SAdd implements Substrate.
func (s *RedisSubstrate) SAdd(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	args := make([]interface{}, len(members))
	for i, m := range members {
		args[i] = m
	}
	if err := s.client.SAdd(ctx, key, args...).Err(); err != nil {
		return errors.ErrSubstrateConnection.Wrap(err)
	}
	return nil
}

// SMembers implements Substrate.
func (s *RedisSubstrate) SMembers(ctx context.Context, key string) ([]string, error) {
	members, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, errors.ErrSubstrateConnection.Wrap(err)
	}
	return members, nil
}

// SCard implements Substrate.
func (s *RedisSubstrate) SCard(ctx context.Context, key string) (int, error) {
	n, err := s.client.SCard(ctx, key).Result()
	if err != nil {
		return 0, errors.ErrSubstrateConnection.Wrap(err)
	}
	return int(n), nil
}

// Ping implements Substrate.
func (s *RedisSubstrate) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.ErrSubstrateConnection.Wrap(err)
	}
	return nil
}

// Close implements Substrate.
func (s *RedisSubstrate) Close() error {
	return s.client.Close()
}

// translateScriptError maps a script-level error_reply into the
// appropriate predefined script error (spec error kind ii), preserving
// the original message as Details.
func translateScriptError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "MALFORMED_BACKPROP_EDGE"):
		return errors.ErrMalformedBackpropEdge.WithDetail("script_error", msg)
	case strings.Contains(msg, "PATTERN_ERROR"):
		return errors.ErrPatternError.WithDetail("script_error", msg)
	default:
		return errors.ErrScriptEvaluation.Wrap(err)
	}
}
