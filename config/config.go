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

package config

import (
	"time"
)

// Config represents the complete configuration for the aegiscache engine.
type Config struct {
	Substrate SubstrateConfig
	Cache     CacheConfig
	Server    ServerConfig
	Logging   LoggingConfig
	Metrics   MetricsConfig
}

// SubstrateConfig contains connection settings for the key-value + set +
// atomic-script substrate (Redis).
type SubstrateConfig struct {
	// Address is the substrate server address (host:port).
	Address string

	// Password authenticates against the substrate, if required.
	Password string

	// DB selects the logical database number.
	DB int

	// PoolSize is the maximum number of socket connections.
	PoolSize int

	// MinIdleConns is the minimum number of idle connections kept open.
	MinIdleConns int

	// MaxRetries is the maximum number of command retries before giving up.
	MaxRetries int

	// DialTimeout bounds establishing new connections.
	DialTimeout time.Duration

	// ReadTimeout bounds socket reads, including script evaluation.
	ReadTimeout time.Duration

	// WriteTimeout bounds socket writes.
	WriteTimeout time.Duration
}

// CacheConfig contains engine-level cache behavior defaults.
type CacheConfig struct {
	// ItemTTL is the default TTL re-armed on an item's value and perms keys.
	ItemTTL time.Duration

	// ClientPermsTTL is the default TTL for a client's accumulated
	// permission set.
	ClientPermsTTL time.Duration

	// PrivateValueTTL is the default TTL for per-client private values.
	PrivateValueTTL time.Duration

	// VariantTTL is the default TTL for a collection variant's items,
	// perms, and count keys. The collection's context filter and the
	// legacy items set are never TTL'd (spec.md §3, §9).
	VariantTTL time.Duration

	// StrictFilterConflicts rejects setCollection calls that redeclare an
	// existing collection's context filter with a different pattern. When
	// false, the first-written filter silently wins, matching spec.md §6's
	// "implementations may choose to elide this check".
	StrictFilterConflicts bool
}

// ServerConfig contains HTTP settings for the admin/metrics endpoint.
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level      string // "debug", "info", "warn", "error"
	Format     string // "json", "console"
	OutputPath string
}

// MetricsConfig contains metrics and monitoring configuration.
type MetricsConfig struct {
	Enabled bool
	Port    int
	Path    string
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Substrate: SubstrateConfig{
			Address:      "localhost:6379",
			DB:           0,
			PoolSize:     10,
			MinIdleConns: 2,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Cache: CacheConfig{
			ItemTTL:               24 * time.Hour,
			ClientPermsTTL:        24 * time.Hour,
			PrivateValueTTL:       24 * time.Hour,
			VariantTTL:            1 * time.Hour,
			StrictFilterConflicts: true,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8090,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "stdout",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Port:    9090,
			Path:    "/metrics",
		},
	}
}

// NewConfig creates a new default configuration.
// This is an alias for DefaultConfig().
func NewConfig() *Config {
	return DefaultConfig()
}
