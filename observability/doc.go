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

// Package observability provides monitoring, logging, and tracing capabilities
// for the aegiscache engine.
//
// # Overview
//
// This package enables comprehensive observability for the cache facade and
// its admin HTTP surface through:
//   - Metrics collection (Prometheus)
//   - Structured logging
//   - Distributed tracing (OpenTelemetry)
//   - Health checks
//
// # Metrics
//
// Collect and expose metrics for monitoring:
//
//	collector := metrics.NewPrometheusCollector()
//	cacheMetrics := metrics.NewCacheMetrics(collector)
//
//	// Record a hit on the facade's Get path
//	cacheMetrics.RecordHit("get")
//
//	// Expose metrics
//	http.Handle("/metrics", collector.Handler())
//
// # Logging
//
// Structured logging with context propagation:
//
//	logger := logging.NewStructuredLogger(logging.LevelInfo)
//
//	ctx := logging.WithRequestID(ctx, "req-123")
//	logger.Info(ctx, "item authorized",
//	    logging.String("client_id", "client-1"),
//	    logging.Int("duration_ms", 42),
//	)
//
// # Tracing
//
// Distributed tracing with OpenTelemetry:
//
//	tracer := tracing.NewOTelTracer(config)
//	defer tracer.Shutdown(ctx)
//
//	ctx, span := tracer.Start(ctx, "facade_get")
//	defer span.End()
//
// # Health Checks
//
// Liveness, readiness, and startup probes:
//
//	liveness := health.NewLivenessChecker()
//	readiness := health.NewReadinessChecker(
//	    health.NewStartupChecker(),
//	)
//
//	http.Handle("/health/live", health.Handler(liveness))
//	http.Handle("/health/ready", health.Handler(readiness))
//
// # Integration with the serve command
//
//	manager, err := observability.NewManager(&observability.ManagerConfig{
//	    ServiceID: "aegiscache-prod-0",
//	    Config: &observability.Config{
//	        Metrics: observability.MetricsConfig{Enabled: true},
//	        Logging: observability.LoggingConfig{Level: "info"},
//	        Tracing: observability.TracingConfig{Enabled: true},
//	    },
//	})
package observability
