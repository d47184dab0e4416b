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
	"net/http"
	"time"

	"github.com/aegiscache/aegiscache/observability/logging"
	"github.com/aegiscache/aegiscache/observability/metrics"
)

// Middleware provides HTTP middleware for the cache engine's own admin
// and metrics endpoints (the CLI's "serve" command), not for the cache
// facade's own operations.
type Middleware struct {
	logger    logging.Logger
	collector metrics.Collector
	serviceID string
}

// NewMiddleware creates a new observability middleware.
func NewMiddleware(logger logging.Logger, collector metrics.Collector, serviceID string) *Middleware {
	return &Middleware{
		logger:    logger,
		collector: collector,
		serviceID: serviceID,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Handler returns an HTTP middleware that logs requests and records metrics.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx := r.Context()
		requestID := r.Header.Get("X-Request-ID")
		if requestID != "" {
			ctx = logging.WithRequestID(ctx, requestID)
		}
		ctx = logging.WithClientID(ctx, m.serviceID)
		r = r.WithContext(ctx)

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.logger.Info(ctx, "incoming request",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.String("remote_addr", r.RemoteAddr),
		)

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		m.collector.ObserveHistogram("aegiscache_http_request_duration_seconds", duration, metrics.Labels{
			"path":   r.URL.Path,
			"method": r.Method,
		})

		if rw.statusCode >= 400 {
			errorType := "client_error"
			if rw.statusCode >= 500 {
				errorType = "server_error"
			}
			m.collector.IncrementCounter("aegiscache_http_errors_total", metrics.Labels{
				"path":  r.URL.Path,
				"class": errorType,
			})

			m.logger.Error(ctx, "request error",
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
				logging.Int("status", rw.statusCode),
				logging.Float64("duration_sec", duration),
			)
		} else {
			m.logger.Info(ctx, "request completed",
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
				logging.Int("status", rw.statusCode),
				logging.Float64("duration_sec", duration),
				logging.Int("bytes_written", int(rw.written)),
			)
		}
	})
}

// HandlerFunc returns an HTTP middleware that can wrap http.HandlerFunc.
func (m *Middleware) HandlerFunc(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.Handler(next).ServeHTTP(w, r)
	}
}
