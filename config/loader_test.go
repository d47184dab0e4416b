// Copyright (C) 2025 aegiscache
// SPDX-License-Identifier: LGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
substrate:
  address: "redis.internal:6380"
cache:
  itemttl: 1h
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Substrate.Address != "redis.internal:6380" {
		t.Errorf("expected overridden address, got %s", cfg.Substrate.Address)
	}
}

func TestLoadFromFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("x=1"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for unsupported config extension")
	}
}

func TestLoadEnv_OverridesSubstrateAddress(t *testing.T) {
	t.Setenv("AEGISCACHE_SUBSTRATE_ADDRESS", "env-redis:6379")

	cfg := DefaultConfig()
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}

	if cfg.Substrate.Address != "env-redis:6379" {
		t.Errorf("expected env override, got %s", cfg.Substrate.Address)
	}
}
