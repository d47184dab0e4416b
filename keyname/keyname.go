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

// Package keyname reproduces the on-substrate key layout bit-exactly.
//
// Every function here is pure and total: given the same identifiers it
// always produces the same string, and it never touches the substrate
// itself. Atomic scripts and tests both depend on this exact layout, so
// changing the separator or segment order here is a breaking change.
package keyname

import (
	"fmt"
	"strings"
)

const (
	itemPrefix       = "item"
	clientPrefix     = "client"
	collectionPrefix = "collection"
)

// ItemValue returns the key holding an item's opaque payload.
func ItemValue(itemKey string) string {
	return fmt.Sprintf("%s:%s:value", itemPrefix, itemKey)
}

// ItemPerms returns the key holding an item's permission set.
func ItemPerms(itemKey string) string {
	return fmt.Sprintf("%s:%s:perms", itemPrefix, itemKey)
}

// ItemBackprop returns the key holding the set of backprop targets for
// one permission-type edge out of itemKey.
func ItemBackprop(itemKey, typeToken string) string {
	return fmt.Sprintf("%s:%s:backprop:%s", itemPrefix, itemKey, typeToken)
}

// ItemBackpropPrefix returns the prefix shared by every backprop edge key
// of itemKey, used when scanning for edges during Propagate.
func ItemBackpropPrefix(itemKey string) string {
	return fmt.Sprintf("%s:%s:backprop:", itemPrefix, itemKey)
}

// ItemPrivate returns the key holding a per-client private value for
// itemKey, bypassing the permission gate.
func ItemPrivate(itemKey, clientID string) string {
	return fmt.Sprintf("%s:%s:private:%s", itemPrefix, itemKey, clientID)
}

// ParseBackpropType extracts the type token from a backprop edge key
// previously produced by ItemBackprop. ok is false for a malformed key
// with no type segment; the caller (Propagate) treats that as a fatal
// script error rather than skipping the edge.
func ParseBackpropType(edgeKey string) (typeToken string, ok bool) {
	const marker = ":backprop:"
	idx := strings.Index(edgeKey, marker)
	if idx < 0 {
		return "", false
	}
	typeToken = edgeKey[idx+len(marker):]
	if typeToken == "" {
		return "", false
	}
	return typeToken, true
}

// ClientPerms returns the key holding a client's accumulated permission set.
func ClientPerms(clientID string) string {
	return fmt.Sprintf("%s:%s:perms", clientPrefix, clientID)
}

// CollectionItems returns the legacy flat items key for a collection,
// used only by the backpropagation admin operations.
func CollectionItems(collectionKey string) string {
	return fmt.Sprintf("%s:%s:items", collectionPrefix, collectionKey)
}

// CollectionVariants returns the key holding the set of variant IDs
// recorded for a collection.
func CollectionVariants(collectionKey string) string {
	return fmt.Sprintf("%s:%s:variants", collectionPrefix, collectionKey)
}

// CollectionFilter returns the key holding a collection's context filter.
// This key is never TTL'd.
func CollectionFilter(collectionKey string) string {
	return fmt.Sprintf("%s:%s:filter", collectionPrefix, collectionKey)
}

// VariantItems returns the key holding the item-key set for one variant
// of a collection.
func VariantItems(collectionKey, variantID string) string {
	return fmt.Sprintf("%s:%s:%s:items", collectionPrefix, collectionKey, variantID)
}

// VariantPerms returns the key holding the writer's client-perms, filtered
// through the collection's context filter at write time, for one variant.
func VariantPerms(collectionKey, variantID string) string {
	return fmt.Sprintf("%s:%s:%s:perms", collectionPrefix, collectionKey, variantID)
}

// VariantCount returns the key caching the cardinality of VariantPerms,
// so Dominance-Get can sort variants without re-counting.
func VariantCount(collectionKey, variantID string) string {
	return fmt.Sprintf("%s:%s:%s:count", collectionPrefix, collectionKey, variantID)
}
