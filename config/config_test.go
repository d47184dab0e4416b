// Copyright (C) 2025 aegiscache
// SPDX-License-Identifier: LGPL-3.0-or-later

package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Substrate.Address != "localhost:6379" {
		t.Errorf("expected default substrate address localhost:6379, got %s", cfg.Substrate.Address)
	}

	if cfg.Cache.ItemTTL != 24*time.Hour {
		t.Errorf("expected default item TTL of 24h, got %s", cfg.Cache.ItemTTL)
	}

	if !cfg.Cache.StrictFilterConflicts {
		t.Error("expected StrictFilterConflicts to default to true")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestNewConfigIsDefaultConfig(t *testing.T) {
	if NewConfig().Substrate.Address != DefaultConfig().Substrate.Address {
		t.Error("NewConfig should return the same values as DefaultConfig")
	}
}
