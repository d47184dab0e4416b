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

package observability

import (
	"context"
	"net/http"

	"github.com/aegiscache/aegiscache/observability/health"
	"github.com/aegiscache/aegiscache/observability/logging"
	"github.com/aegiscache/aegiscache/observability/metrics"
)

// Manager manages all observability components for one running instance
// of the cache engine (the CLI's "serve" command).
type Manager struct {
	logger           logging.Logger
	collector        metrics.Collector
	cacheMetrics     *metrics.CacheMetrics
	middleware       *Middleware
	livenessChecker  *health.LivenessChecker
	startupChecker   *health.StartupChecker
	readinessChecker *health.ReadinessChecker
}

// ManagerConfig configures the observability manager.
type ManagerConfig struct {
	// ServiceID identifies this instance in logs and the admin HTTP
	// middleware (e.g. the substrate address or a deployment name).
	ServiceID string

	// Config is the observability configuration
	Config *Config
}

// NewManager creates a new observability manager.
//
// Example:
//
//	manager, err := observability.NewManager(&observability.ManagerConfig{
//	    ServiceID: "aegiscache-prod-0",
//	    Config:    &observability.Config{...},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer manager.Shutdown(context.Background())
func NewManager(cfg *ManagerConfig) (*Manager, error) {
	// Validate config
	if err := cfg.Config.Validate(); err != nil {
		return nil, err
	}

	// Create logger
	logger, err := logging.NewZapLogger(logging.Level(cfg.Config.Logging.Level))
	if err != nil {
		return nil, err
	}
	logger.SetSamplingRate(cfg.Config.Logging.SamplingRate)

	// Create metrics collector
	collector := metrics.NewPrometheusCollector()

	// Create cache metrics
	cacheMetrics := metrics.NewCacheMetrics(collector)

	// Create middleware
	middleware := NewMiddleware(logger, collector, cfg.ServiceID)

	// Create health checkers
	livenessChecker := health.NewLivenessChecker()
	startupChecker := health.NewStartupChecker()
	readinessChecker := health.NewReadinessChecker(startupChecker)

	// Mark the instance as running
	livenessChecker.MarkRunning()

	return &Manager{
		logger:           logger,
		collector:        collector,
		cacheMetrics:     cacheMetrics,
		middleware:       middleware,
		livenessChecker:  livenessChecker,
		startupChecker:   startupChecker,
		readinessChecker: readinessChecker,
	}, nil
}

// Logger returns the logger.
func (m *Manager) Logger() logging.Logger {
	return m.logger
}

// Collector returns the metrics collector.
func (m *Manager) Collector() metrics.Collector {
	return m.collector
}

// CacheMetrics returns the cache facade's hit/miss and script-latency
// metrics helper.
func (m *Manager) CacheMetrics() *metrics.CacheMetrics {
	return m.cacheMetrics
}

// Middleware returns the HTTP middleware.
func (m *Manager) Middleware() *Middleware {
	return m.middleware
}

// LivenessChecker returns the liveness checker.
func (m *Manager) LivenessChecker() *health.LivenessChecker {
	return m.livenessChecker
}

// StartupChecker returns the startup checker.
func (m *Manager) StartupChecker() *health.StartupChecker {
	return m.startupChecker
}

// ReadinessChecker returns the readiness checker.
func (m *Manager) ReadinessChecker() *health.ReadinessChecker {
	return m.readinessChecker
}

// MarkReady marks the instance as ready to serve traffic.
func (m *Manager) MarkReady() {
	m.startupChecker.MarkReady()
}

// AddReadinessCheck adds a health check to the readiness checker.
func (m *Manager) AddReadinessCheck(checker health.Checker) {
	m.readinessChecker.AddCheck(checker)
}

// HTTPHandler returns an http.Handler for exposing observability endpoints.
//
// It mounts the following endpoints:
//   - /metrics - Prometheus metrics
//   - /health/live - Liveness probe
//   - /health/ready - Readiness probe (includes the substrate Ping check)
//   - /health/startup - Startup probe
//   - /health - all three checks in one response, for operators who want
//     a single dashboard tile instead of three separate probes
func (m *Manager) HTTPHandler() http.Handler {
	mux := http.NewServeMux()

	// Metrics endpoint
	mux.Handle("/metrics", m.collector.Handler())

	// Health check endpoints
	mux.Handle("/health/live", health.Handler(m.livenessChecker))
	mux.Handle("/health/ready", health.Handler(m.readinessChecker))
	mux.Handle("/health/startup", health.Handler(m.startupChecker))
	mux.Handle("/health", health.MultiHandler(m.livenessChecker, m.readinessChecker, m.startupChecker))

	return mux
}

// Shutdown gracefully shuts down the observability manager.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.logger.Info(ctx, "shutting down observability manager")
	m.livenessChecker.MarkStopped()
	return nil
}
