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

// Package cache is the stateless entrypoint to the access-aware cache
// engine: the Facade orchestrates the key namer and the substrate's
// atomic scripts so that callers never touch either directly.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/aegiscache/aegiscache/config"
	"github.com/aegiscache/aegiscache/keyname"
	"github.com/aegiscache/aegiscache/observability/logging"
	"github.com/aegiscache/aegiscache/observability/metrics"
	"github.com/aegiscache/aegiscache/observability/tracing"
	"github.com/aegiscache/aegiscache/permgrammar"
	pkgerrors "github.com/aegiscache/aegiscache/pkg/errors"
	"github.com/aegiscache/aegiscache/substrate"
)

// Result is the outcome of a single-item read: Get, GetPrivate, or
// GetUnprotected.
type Result struct {
	Hit   bool
	Value []byte
}

// CollectionResult is the outcome of GetCollection.
type CollectionResult struct {
	Hit    bool
	Values [][]byte
}

// Facade is the cache engine's stateless entrypoint (spec.md §4.D). It
// holds only the injected collaborators; no call leaves mutable state
// behind for a later call to observe.
type Facade struct {
	substrate substrate.Substrate
	grammar   permgrammar.Grammar
	logger    logging.Logger
	metrics   *metrics.CacheMetrics
	cfg       config.CacheConfig
}

// NewFacade builds a Facade over sub, using grammar to classify
// permissions and build collection filters. logger and cacheMetrics may
// be nil-safe no-op implementations; cfg supplies default TTLs.
func NewFacade(sub substrate.Substrate, grammar permgrammar.Grammar, logger logging.Logger, cacheMetrics *metrics.CacheMetrics, cfg config.CacheConfig) *Facade {
	return &Facade{
		substrate: sub,
		grammar:   grammar,
		logger:    logger,
		metrics:   cacheMetrics,
		cfg:       cfg,
	}
}

// Set stores a protected item: writes value, then runs Propagate so that
// perms and clientPerms grow atomically (spec.md §4.D, I3).
func (f *Facade) Set(ctx context.Context, itemKey string, value []byte, ttl time.Duration, clientID string, perms ...string) error {
	valueKey := keyname.ItemValue(itemKey)
	if err := f.substrate.SetValue(ctx, valueKey, value, ttl); err != nil {
		return pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("item_key", itemKey)
	}

	ctx, span := tracing.Start(ctx, "propagate")
	defer span.End()
	span.SetAttribute("item_key", itemKey)

	err := f.substrate.Propagate(ctx, substrate.PropagateRequest{
		RootItemKey:    itemKey,
		ClientID:       clientID,
		Perms:          perms,
		ItemPermsTTL:   ttl,
		ClientPermsTTL: f.cfg.ClientPermsTTL,
	})
	if err != nil {
		span.RecordError(err)
		f.logScriptError(ctx, "propagate", itemKey, err)
		return err
	}
	return nil
}

// Get authorizes clientID against itemKey and, on authorization, returns
// the stored value. Miss is reported via Result.Hit, never an error.
func (f *Facade) Get(ctx context.Context, clientID, itemKey string) (Result, error) {
	ctx, span := tracing.Start(ctx, "authorize_get")
	defer span.End()
	span.SetAttribute("item_key", itemKey)

	res, err := f.substrate.AuthorizeGet(ctx,
		keyname.ClientPerms(clientID),
		keyname.ItemPerms(itemKey),
		keyname.ItemValue(itemKey),
	)
	if err != nil {
		span.RecordError(err)
		f.logScriptError(ctx, "authorize_get", itemKey, err)
		return Result{}, err
	}
	hit := res.Authorized && res.Value != nil
	f.recordHitMiss("get", hit)
	if !hit {
		return Result{Hit: false}, nil
	}
	return Result{Hit: true, Value: res.Value}, nil
}

// SetPrivate writes a per-(item, client) value that bypasses the
// permission gate entirely.
func (f *Facade) SetPrivate(ctx context.Context, itemKey, clientID string, value []byte, ttl time.Duration) error {
	key := keyname.ItemPrivate(itemKey, clientID)
	if err := f.substrate.SetValue(ctx, key, value, ttl); err != nil {
		return pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("item_key", itemKey)
	}
	return nil
}

// GetPrivate reads a per-(item, client) value with no permission check.
func (f *Facade) GetPrivate(ctx context.Context, itemKey, clientID string) (Result, error) {
	value, ok, err := f.substrate.GetValue(ctx, keyname.ItemPrivate(itemKey, clientID))
	if err != nil {
		return Result{}, pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("item_key", itemKey)
	}
	f.recordHitMiss("get_private", ok)
	return Result{Hit: ok, Value: value}, nil
}

// SetUnprotected writes a value only if itemKey has never been given a
// perms entry (I5). Writing over a protected item is a documented no-op,
// not an error.
func (f *Facade) SetUnprotected(ctx context.Context, itemKey string, value []byte, ttl time.Duration) error {
	protected, err := f.substrate.Exists(ctx, keyname.ItemPerms(itemKey))
	if err != nil {
		return pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("item_key", itemKey)
	}
	if protected {
		if f.logger != nil {
			f.logger.Warn(ctx, "setUnprotected no-op: item is protected",
				logging.ItemKey(itemKey))
		}
		return nil
	}
	if err := f.substrate.SetValue(ctx, keyname.ItemValue(itemKey), value, ttl); err != nil {
		return pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("item_key", itemKey)
	}
	return nil
}

// GetUnprotected returns a miss whenever itemKey has a perms entry (I5),
// regardless of whether a value is present.
func (f *Facade) GetUnprotected(ctx context.Context, itemKey string) (Result, error) {
	protected, err := f.substrate.Exists(ctx, keyname.ItemPerms(itemKey))
	if err != nil {
		return Result{}, pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("item_key", itemKey)
	}
	if protected {
		f.recordHitMiss("get_unprotected", false)
		return Result{}, nil
	}
	value, ok, err := f.substrate.GetValue(ctx, keyname.ItemValue(itemKey))
	if err != nil {
		return Result{}, pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("item_key", itemKey)
	}
	f.recordHitMiss("get_unprotected", ok)
	return Result{Hit: ok, Value: value}, nil
}

// SetCollection allocates a fresh variant of collectionKey under the
// writer clientID's current permissions, filtered through filter. It is
// never idempotent: every call produces a new variantID, per spec.md §4.D.
func (f *Facade) SetCollection(ctx context.Context, clientID, collectionKey string, itemKeys []string, ttl time.Duration, filter string) (string, error) {
	if err := f.checkFilterConflict(ctx, collectionKey, filter); err != nil {
		return "", err
	}

	filterKey := keyname.CollectionFilter(collectionKey)
	if err := f.substrate.SetValue(ctx, filterKey, []byte(filter), 0); err != nil {
		return "", pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("collection_key", collectionKey)
	}

	// The legacy flat items set is the union every setBackpropagation call
	// reads from (spec.md §4.E, §9 design notes).
	if len(itemKeys) > 0 {
		if err := f.substrate.SAdd(ctx, keyname.CollectionItems(collectionKey), itemKeys...); err != nil {
			return "", pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("collection_key", collectionKey)
		}
	}

	variantID := newVariantID()
	variantTTL := ttl
	if variantTTL == 0 {
		variantTTL = f.cfg.VariantTTL
	}

	itemsKey := keyname.VariantItems(collectionKey, variantID)
	if len(itemKeys) > 0 {
		if err := f.substrate.SAdd(ctx, itemsKey, itemKeys...); err != nil {
			return "", pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("variant_id", variantID)
		}
	}
	if err := f.substrate.Expire(ctx, itemsKey, variantTTL); err != nil {
		return "", pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("variant_id", variantID)
	}

	permsKey := keyname.VariantPerms(collectionKey, variantID)
	fpCtx, span := tracing.Start(ctx, "filter_permissions")
	span.SetAttribute("collection_key", collectionKey)
	count, err := f.substrate.FilterPermissions(fpCtx, keyname.ClientPerms(clientID), permsKey, filter)
	if err != nil {
		span.RecordError(err)
		span.End()
		f.logScriptError(ctx, "filter_permissions", collectionKey, err)
		return "", err
	}
	span.End()
	if err := f.substrate.Expire(ctx, permsKey, variantTTL); err != nil {
		return "", pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("variant_id", variantID)
	}

	countKey := keyname.VariantCount(collectionKey, variantID)
	if err := f.substrate.SetValue(ctx, countKey, []byte(strconv.Itoa(count)), variantTTL); err != nil {
		return "", pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("variant_id", variantID)
	}

	if err := f.substrate.SAdd(ctx, keyname.CollectionVariants(collectionKey), variantID); err != nil {
		return "", pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("variant_id", variantID)
	}

	return variantID, nil
}

// GetCollection runs the dominance match across collectionKey's variants
// on behalf of clientID (spec.md §4.C.4).
func (f *Facade) GetCollection(ctx context.Context, clientID, collectionKey string) (CollectionResult, error) {
	ctx, span := tracing.Start(ctx, "dominance_get")
	defer span.End()
	span.SetAttribute("collection_key", collectionKey)

	res, err := f.substrate.DominanceGet(ctx, keyname.ClientPerms(clientID), collectionKey)
	if err != nil {
		span.RecordError(err)
		f.logScriptError(ctx, "dominance_get", collectionKey, err)
		return CollectionResult{}, err
	}
	f.recordHitMiss("get_collection", res.Hit)
	return CollectionResult{Hit: res.Hit, Values: res.Values}, nil
}

// checkFilterConflict enforces config.Cache.StrictFilterConflicts: a
// collection's context filter, once recorded, must never change under
// the same collection key (spec.md §6, §9 open question).
func (f *Facade) checkFilterConflict(ctx context.Context, collectionKey, filter string) error {
	if !f.cfg.StrictFilterConflicts {
		return nil
	}
	existing, ok, err := f.substrate.GetValue(ctx, keyname.CollectionFilter(collectionKey))
	if err != nil {
		return pkgerrors.ErrSubstrateConnection.Wrap(err).WithDetail("collection_key", collectionKey)
	}
	if ok && string(existing) != filter {
		return pkgerrors.ErrFilterConflict.
			WithDetail("collection_key", collectionKey).
			WithDetail("existing_filter", string(existing)).
			WithDetail("requested_filter", filter)
	}
	return nil
}

func (f *Facade) recordHitMiss(operation string, hit bool) {
	if f.metrics == nil {
		return
	}
	if hit {
		f.metrics.RecordHit(operation)
	} else {
		f.metrics.RecordMiss(operation)
	}
}

func (f *Facade) logScriptError(ctx context.Context, script, key string, err error) {
	if f.logger == nil {
		return
	}
	category := "unknown"
	if pkgerrors.IsScriptError(err) {
		category = "script"
	} else if pkgerrors.IsSubstrateUnavailable(err) {
		category = "substrate"
	}
	if f.metrics != nil {
		f.metrics.RecordScriptError(script, category)
	}
	f.logger.Error(ctx, "atomic script failed",
		logging.ScriptName(script),
		logging.ItemKey(key),
		logging.String("category", category),
		logging.Error(err),
	)
}

// newVariantID produces a unique variant identifier combining a
// high-resolution timestamp with a random component, per spec.md §6.
func newVariantID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.NewString())
}
