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
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aegiscache/aegiscache/permgrammar"
	"github.com/aegiscache/aegiscache/pkg/errors"
)

// MemorySubstrate is a pure-Go reference implementation of Substrate. It
// reproduces the same BFS traversal order and dominance algorithm as the
// Lua scripts in RedisSubstrate, without a Redis process, so unit tests
// can exercise cache-facade logic quickly and deterministically. TTLs
// are tracked but never actively swept; a key is treated as expired the
// moment its deadline has passed, checked lazily on access.
type MemorySubstrate struct {
	mu      sync.Mutex
	strs    map[string]string
	sets    map[string]map[string]struct{}
	expires map[string]time.Time
	closed  bool
}

// NewMemorySubstrate creates an empty MemorySubstrate.
func NewMemorySubstrate() *MemorySubstrate {
	return &MemorySubstrate{
		strs:    make(map[string]string),
		sets:    make(map[string]map[string]struct{}),
		expires: make(map[string]time.Time),
	}
}

func (m *MemorySubstrate) expiredLocked(key string) bool {
	deadline, ok := m.expires[key]
	if !ok {
		return false
	}
	if time.Now().After(deadline) {
		delete(m.strs, key)
		delete(m.sets, key)
		delete(m.expires, key)
		return true
	}
	return false
}

func (m *MemorySubstrate) armLocked(key string, ttl time.Duration) {
	if ttl <= 0 {
		delete(m.expires, key)
		return
	}
	m.expires[key] = time.Now().Add(ttl)
}

// Propagate implements Substrate.
func (m *MemorySubstrate) Propagate(ctx context.Context, req PropagateRequest) error {
	if len(req.Perms) == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clientPermsKey := "client:" + req.ClientID + ":perms"
	m.sAddLocked(clientPermsKey, req.Perms...)
	m.armLocked(clientPermsKey, req.ClientPermsTTL)

	visited := map[string]struct{}{req.RootItemKey: {}}
	frontier := []string{req.RootItemKey}

	for len(frontier) > 0 {
		itemKey := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		permsKey := "item:" + itemKey + ":perms"
		m.sAddLocked(permsKey, req.Perms...)
		m.armLocked(permsKey, req.ItemPermsTTL)

		edgePrefix := "item:" + itemKey + ":backprop:"
		for key := range m.sets {
			if m.expiredLocked(key) || !strings.HasPrefix(key, edgePrefix) {
				continue
			}

			typeToken := key[len(edgePrefix):]
			if typeToken == "" {
				return errors.ErrMalformedBackpropEdge.WithDetail("edge_key", key)
			}

			re, err := permgrammar.CompileLuaPattern(typeToken)
			if err != nil {
				return errors.ErrPatternError.WithDetail("type_token", typeToken)
			}

			var matching []string
			for _, p := range req.Perms {
				if re.MatchString(p) {
					matching = append(matching, p)
				}
			}
			if len(matching) == 0 {
				continue
			}

			for tgt := range m.sets[key] {
				tgtPermsKey := "item:" + tgt + ":perms"
				m.sAddLocked(tgtPermsKey, matching...)
				m.armLocked(tgtPermsKey, req.ItemPermsTTL)

				if _, ok := visited[tgt]; !ok {
					visited[tgt] = struct{}{}
					frontier = append(frontier, tgt)
				}
			}
		}
	}

	return nil
}

// AuthorizeGet implements Substrate.
func (m *MemorySubstrate) AuthorizeGet(ctx context.Context, clientPermsKey, itemPermsKey, valueKey string) (AuthorizeResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	clientPerms := m.sMembersLocked(clientPermsKey)
	itemPerms := m.sMembersLocked(itemPermsKey)

	itemSet := make(map[string]struct{}, len(itemPerms))
	for _, p := range itemPerms {
		itemSet[p] = struct{}{}
	}

	authorized := false
	for _, p := range clientPerms {
		if _, ok := itemSet[p]; ok {
			authorized = true
			break
		}
	}
	if !authorized {
		return AuthorizeResult{}, nil
	}

	if m.expiredLocked(valueKey) {
		return AuthorizeResult{Authorized: true}, nil
	}
	value, ok := m.strs[valueKey]
	if !ok {
		return AuthorizeResult{Authorized: true}, nil
	}
	return AuthorizeResult{Authorized: true, Value: []byte(value)}, nil
}

// FilterPermissions implements Substrate.
func (m *MemorySubstrate) FilterPermissions(ctx context.Context, clientPermsKey, dstKey, pattern string) (int, error) {
	re, err := permgrammar.CompileLuaPattern(pattern)
	if err != nil {
		return 0, errors.ErrPatternError.WithDetail("pattern", pattern)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, token := range m.sMembersLocked(clientPermsKey) {
		if re.MatchString(token) {
			m.sAddLocked(dstKey, token)
			count++
		}
	}
	return count, nil
}

// DominanceGet implements Substrate.
func (m *MemorySubstrate) DominanceGet(ctx context.Context, clientPermsKey, collectionKey string) (DominanceResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	filterKey := "collection:" + collectionKey + ":filter"
	if m.expiredLocked(filterKey) {
		return DominanceResult{}, nil
	}
	filter, ok := m.strs[filterKey]
	if !ok {
		return DominanceResult{}, nil
	}

	re, err := permgrammar.CompileLuaPattern(filter)
	if err != nil {
		return DominanceResult{}, errors.ErrPatternError.WithDetail("filter", filter)
	}

	clientPerms := m.sMembersLocked(clientPermsKey)
	var clientFiltered []string
	for _, t := range clientPerms {
		if re.MatchString(t) {
			clientFiltered = append(clientFiltered, t)
		}
	}

	variantsKey := "collection:" + collectionKey + ":variants"
	variants := m.sMembersLocked(variantsKey)
	if len(variants) == 0 {
		return DominanceResult{}, nil
	}

	type scoredVariant struct {
		id    string
		count int
	}
	scored := make([]scoredVariant, 0, len(variants))
	for _, v := range variants {
		countKey := "collection:" + collectionKey + ":" + v + ":count"
		if m.expiredLocked(countKey) {
			continue
		}
		raw, ok := m.strs[countKey]
		if !ok {
			continue
		}
		n := 0
		for _, c := range raw {
			if c < '0' || c > '9' {
				n = 0
				break
			}
			n = n*10 + int(c-'0')
		}
		scored = append(scored, scoredVariant{id: v, count: n})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].count > scored[j].count })

	clientSet := make(map[string]struct{}, len(clientPerms))
	for _, p := range clientPerms {
		clientSet[p] = struct{}{}
	}

	for _, sv := range scored {
		permsKey := "collection:" + collectionKey + ":" + sv.id + ":perms"
		permsSet := m.sMembersSetLocked(permsKey)

		dominates := true
		for _, t := range clientFiltered {
			if _, ok := permsSet[t]; !ok {
				dominates = false
				break
			}
		}
		if !dominates {
			continue
		}

		itemsKey := "collection:" + collectionKey + ":" + sv.id + ":items"
		items := m.sMembersLocked(itemsKey)

		values := make([][]byte, 0, len(items))
		stale := false
		for _, itemKey := range items {
			itemPermsSet := m.sMembersSetLocked("item:" + itemKey + ":perms")

			intersects := false
			for p := range clientSet {
				if _, ok := itemPermsSet[p]; ok {
					intersects = true
					break
				}
			}
			if !intersects {
				continue
			}

			valueKey := "item:" + itemKey + ":value"
			if m.expiredLocked(valueKey) {
				stale = true
				break
			}
			val, ok := m.strs[valueKey]
			if !ok {
				stale = true
				break
			}
			values = append(values, []byte(val))
		}

		if !stale {
			return DominanceResult{Hit: true, Values: values}, nil
		}
	}

	return DominanceResult{}, nil
}

// GetValue implements Substrate.
func (m *MemorySubstrate) GetValue(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expiredLocked(key) {
		return nil, false, nil
	}
	value, ok := m.strs[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// SetValue implements Substrate.
func (m *MemorySubstrate) SetValue(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.strs[key] = string(value)
	delete(m.sets, key)
	m.armLocked(key, ttl)
	return nil
}

// Exists implements Substrate.
func (m *MemorySubstrate) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expiredLocked(key) {
		return false, nil
	}
	if _, ok := m.strs[key]; ok {
		return true, nil
	}
	_, ok := m.sets[key]
	return ok, nil
}

// Expire implements Substrate.
func (m *MemorySubstrate) Expire(ctx context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.armLocked(key, ttl)
	return nil
}

// SAdd implements Substrate.
func (m *MemorySubstrate) SAdd(ctx context.Context, key string, members ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sAddLocked(key, members...)
	return nil
}

// SMembers implements Substrate.
func (m *MemorySubstrate) SMembers(ctx context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sMembersLocked(key), nil
}

// SCard implements Substrate.
func (m *MemorySubstrate) SCard(ctx context.Context, key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expiredLocked(key) {
		return 0, nil
	}
	return len(m.sets[key]), nil
}

// Ping implements Substrate. MemorySubstrate holds no external
// connection, so it reports healthy as long as it hasn't been closed,
// matching the readiness contract RedisSubstrate.Ping enforces.
func (m *MemorySubstrate) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errors.ErrSubstrateConnection
	}
	return nil
}

// Close implements Substrate. MemorySubstrate holds no external
// resources to release, but marks itself closed so a later Ping (and
// therefore the readiness probe) reports the instance as unavailable.
func (m *MemorySubstrate) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *MemorySubstrate) sAddLocked(key string, members ...string) {
	if len(members) == 0 {
		return
	}
	m.expiredLocked(key)
	set, ok := m.sets[key]
	if !ok {
		set = make(map[string]struct{}, len(members))
		m.sets[key] = set
	}
	for _, mem := range members {
		set[mem] = struct{}{}
	}
}

func (m *MemorySubstrate) sMembersLocked(key string) []string {
	if m.expiredLocked(key) {
		return nil
	}
	set, ok := m.sets[key]
	if !ok {
		return nil
	}
	members := make([]string, 0, len(set))
	for mem := range set {
		members = append(members, mem)
	}
	return members
}

func (m *MemorySubstrate) sMembersSetLocked(key string) map[string]struct{} {
	if m.expiredLocked(key) {
		return nil
	}
	return m.sets[key]
}
