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

package cache

import (
	"context"

	"github.com/aegiscache/aegiscache/keyname"
	pkgerrors "github.com/aegiscache/aegiscache/pkg/errors"
)

// SetBackpropagation wires every current member of collection ck's legacy
// items set to tgt under the typed edge T (spec.md §4.E). It must run
// before the member items are (re)written with permissions the caller
// expects to propagate: Propagate reads each item's edges at write time.
func (f *Facade) SetBackpropagation(ctx context.Context, collectionKey, typeToken, targetItemKey string) error {
	members, err := f.substrate.SMembers(ctx, keyname.CollectionItems(collectionKey))
	if err != nil {
		return pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("collection_key", collectionKey)
	}
	for _, itemKey := range members {
		edgeKey := keyname.ItemBackprop(itemKey, typeToken)
		if err := f.substrate.SAdd(ctx, edgeKey, targetItemKey); err != nil {
			return pkgerrors.ErrSubstrateConnection.Wrap(err).
				WithDetail("item_key", itemKey).
				WithDetail("target_item_key", targetItemKey)
		}
	}
	return nil
}

// SetPermissionUnion wires every ordered pair (a, b) with a != b among the
// unique keys under the any-type edge on a, so permissions added to any
// one key flow to every other (spec.md §4.E).
func (f *Facade) SetPermissionUnion(ctx context.Context, itemKeys ...string) error {
	unique := dedupe(itemKeys)
	anyType := f.grammar.EveryTypePattern()

	for _, a := range unique {
		edgeKey := keyname.ItemBackprop(a, anyType)
		for _, b := range unique {
			if a == b {
				continue
			}
			if err := f.substrate.SAdd(ctx, edgeKey, b); err != nil {
				return pkgerrors.ErrSubstrateConnection.Wrap(err).
					WithDetail("item_key", a).
					WithDetail("target_item_key", b)
			}
		}
	}
	return nil
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
