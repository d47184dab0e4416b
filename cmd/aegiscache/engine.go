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

package main

import (
	"context"
	"os"

	"github.com/aegiscache/aegiscache/cache"
	"github.com/aegiscache/aegiscache/config"
	"github.com/aegiscache/aegiscache/observability"
	"github.com/aegiscache/aegiscache/observability/health"
	"github.com/aegiscache/aegiscache/permgrammar"
	"github.com/aegiscache/aegiscache/substrate"
)

// engine bundles everything a subcommand needs: the facade, the
// observability manager wrapping it, and the underlying substrate
// connection to close on exit.
type engine struct {
	facade    *cache.Facade
	manager   *observability.Manager
	substrate substrate.Substrate
	cfg       *config.Config
}

// loadConfig resolves the effective configuration from --config (if
// given), falling back to defaults overlaid with environment variables.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	cfg := config.DefaultConfig()
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildEngine wires the substrate, grammar, observability stack, and
// cache facade together from the resolved configuration.
func buildEngine(ctx context.Context, cfg *config.Config) (*engine, error) {
	redisCfg := &substrate.RedisConfig{
		Address:      cfg.Substrate.Address,
		Password:     cfg.Substrate.Password,
		DB:           cfg.Substrate.DB,
		PoolSize:     cfg.Substrate.PoolSize,
		MinIdleConns: cfg.Substrate.MinIdleConns,
		MaxRetries:   cfg.Substrate.MaxRetries,
		DialTimeout:  cfg.Substrate.DialTimeout,
		ReadTimeout:  cfg.Substrate.ReadTimeout,
		WriteTimeout: cfg.Substrate.WriteTimeout,
	}
	sub, err := substrate.NewRedisSubstrate(ctx, redisCfg)
	if err != nil {
		return nil, err
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.Logging.Level = cfg.Logging.Level
	obsCfg.Logging.Format = cfg.Logging.Format
	obsCfg.Metrics.Enabled = cfg.Metrics.Enabled
	obsCfg.Metrics.Port = cfg.Metrics.Port
	obsCfg.Metrics.Path = cfg.Metrics.Path
	obsCfg.Health.Port = cfg.Server.Port

	hostname, _ := os.Hostname()
	manager, err := observability.NewManager(&observability.ManagerConfig{
		ServiceID: hostname + ":" + cfg.Substrate.Address,
		Config:    obsCfg,
	})
	if err != nil {
		sub.Close()
		return nil, err
	}

	manager.AddReadinessCheck(health.NewSubstrateChecker(sub))

	grammar := permgrammar.NewSemicolonGrammar(";")
	facade := cache.NewFacade(sub, grammar, manager.Logger(), manager.CacheMetrics(), cfg.Cache)

	return &engine{facade: facade, manager: manager, substrate: sub, cfg: cfg}, nil
}

func (e *engine) Close(ctx context.Context) {
	e.manager.Shutdown(ctx)
	e.substrate.Close()
}
