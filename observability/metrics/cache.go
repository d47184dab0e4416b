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

package metrics

const (
	// MetricCacheHits counts authorize/dominance reads that found an
	// authorized value, labeled by operation.
	MetricCacheHits = "aegiscache_hits_total"

	// MetricCacheMisses counts reads that did not authorize or did not
	// find a value, labeled by operation.
	MetricCacheMisses = "aegiscache_misses_total"

	// MetricScriptLatency observes the wall-clock time of one atomic
	// script invocation, labeled by script name.
	MetricScriptLatency = "aegiscache_script_latency_seconds"

	// MetricScriptErrors counts script evaluation failures, labeled by
	// script name and error category.
	MetricScriptErrors = "aegiscache_script_errors_total"
)

// CacheMetrics wraps a Collector with the cache engine's own metric
// names and label conventions.
type CacheMetrics struct {
	collector Collector
}

// NewCacheMetrics creates a CacheMetrics around collector.
func NewCacheMetrics(collector Collector) *CacheMetrics {
	return &CacheMetrics{collector: collector}
}

// RecordHit records an authorized read for the given facade operation
// ("get", "get_collection", "get_private", "get_unprotected").
func (m *CacheMetrics) RecordHit(operation string) {
	m.collector.IncrementCounter(MetricCacheHits, OperationLabels(operation))
}

// RecordMiss records an unauthorized or absent read.
func (m *CacheMetrics) RecordMiss(operation string) {
	m.collector.IncrementCounter(MetricCacheMisses, OperationLabels(operation))
}

// RecordScriptLatency observes how long one atomic script invocation
// took, in seconds.
func (m *CacheMetrics) RecordScriptLatency(script string, seconds float64) {
	m.collector.ObserveHistogram(MetricScriptLatency, seconds, ScriptLabels(script, ""))
}

// RecordScriptError records a script evaluation failure.
func (m *CacheMetrics) RecordScriptError(script, category string) {
	m.collector.IncrementCounter(MetricScriptErrors, ScriptLabels(script, category))
}
