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

// Package logging provides structured logging with context propagation for
// the cache engine.
//
// # Overview
//
// This package provides structured logging with:
//   - Multiple log levels (DEBUG, INFO, WARN, ERROR, FATAL)
//   - JSON structured output, backed by zap in production
//   - Context-aware logging (request ID, trace ID, client ID)
//   - Log sampling for high-volume scenarios
//   - Field-based structured data, including cache-domain helpers
//     (ItemKey, ClientID, ScriptName) used by the cache facade
//
// # Basic Usage
//
//	logger, err := logging.NewZapLogger(logging.LevelInfo)
//
//	logger.Info(ctx, "item cached",
//	    logging.ItemKey("invoice:42"),
//	    logging.Duration("script_ms", 4),
//	)
//
// # Context Propagation
//
// Automatically extract context values:
//
//	ctx = logging.WithRequestID(ctx, "req-123")
//	ctx = logging.WithTraceID(ctx, "trace-456")
//	ctx = logging.WithClientID(ctx, "client-1")
//
//	logger.Info(ctx, "processing get")
//	// Output: {"timestamp":"...","level":"info","message":"processing get","request_id":"req-123","trace_id":"trace-456","client_id":"client-1"}
//
// # Log Levels
//
//	logger.Debug(ctx, "detailed debug info")
//	logger.Info(ctx, "informational message")
//	logger.Warn(ctx, "warning message")
//	logger.Error(ctx, "atomic script failed", logging.ScriptName("propagate"), logging.Error(err))
//	logger.Fatal(ctx, "fatal error")  // Calls os.Exit(1)
//
// # Structured Fields
//
//	logger.Info(ctx, "set",
//	    logging.ItemKey("invoice:42"),
//	    logging.Int("ttl_seconds", 3600),
//	    logging.Bool("protected", true),
//	    logging.Error(err),
//	    logging.Any("value", payload),
//	)
//
// Byte-slice field values over a fixed size are redacted to their length
// in StructuredLogger's JSON output, so a large cached item never floods
// the log stream with its raw bytes.
//
// # Log Sampling
//
// Sample debug logs for performance:
//
//	logger, _ := logging.NewZapLogger(logging.LevelDebug)
//	logger.SetSamplingRate(0.1)  // Sample 10% of debug logs
//
//	for i := 0; i < 1000; i++ {
//	    logger.Debug(ctx, "backpropagation step")  // Only ~100 will be logged
//	}
//
// # With Fields
//
// Add persistent fields to all logs:
//
//	clientLogger := logger.With(
//	    logging.ClientID("client-1"),
//	    logging.String("version", "1.0.0"),
//	)
//
//	clientLogger.Info(ctx, "get")   // Includes client_id and version
//	clientLogger.Info(ctx, "set")   // Includes client_id and version
//
// # Output Format
//
//	{"timestamp":"2026-07-31T10:30:00Z","level":"info","message":"item cached","client_id":"client-1"}
package logging
