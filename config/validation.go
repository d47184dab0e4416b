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
	"fmt"
)

// Validate validates the entire configuration.
func (c *Config) Validate() error {
	if err := c.validateSubstrate(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	return nil
}

// validateSubstrate validates substrate connection configuration.
func (c *Config) validateSubstrate() error {
	if c.Substrate.Address == "" {
		return fmt.Errorf("substrate address must not be empty")
	}

	if c.Substrate.DB < 0 {
		return fmt.Errorf("substrate DB must not be negative")
	}

	if c.Substrate.PoolSize < 0 {
		return fmt.Errorf("substrate pool size must not be negative")
	}

	return nil
}

// validateServer validates the admin/metrics server configuration.
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server read timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server write timeout must be positive")
	}

	return nil
}

// validateCache validates engine cache-behavior defaults.
func (c *Config) validateCache() error {
	if c.Cache.ItemTTL <= 0 {
		return fmt.Errorf("cache item TTL must be positive")
	}

	if c.Cache.ClientPermsTTL <= 0 {
		return fmt.Errorf("cache client-perms TTL must be positive")
	}

	if c.Cache.VariantTTL <= 0 {
		return fmt.Errorf("cache variant TTL must be positive")
	}

	return nil
}

// validateLogging validates logging configuration.
func (c *Config) validateLogging() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}

	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging format must be one of: json, console")
	}

	return nil
}
