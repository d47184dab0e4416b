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

// Package config provides configuration management for the aegiscache
// access-aware cache engine.
//
// The configuration system supports multiple sources with the following
// precedence:
//  1. Environment variables (prefixed with AEGISCACHE_)
//  2. Configuration file (YAML or JSON)
//  3. Default values
//
// # Configuration Structure
//
// The configuration is organized into sections:
//   - Substrate: connection settings for the Redis-backed substrate
//   - Cache: default TTLs and strictness knobs for the cache engine
//   - Server: HTTP settings for the admin/metrics endpoint
//   - Logging: logging level, format, and output
//   - Metrics: Prometheus metrics exposition
//
// # Usage
//
//	cfg, err := config.LoadFromFile("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Validation
//
// All configuration is validated before use via Config.Validate().
package config
