// Copyright (C) 2025 aegiscache
// SPDX-License-Identifier: LGPL-3.0-or-later

/*
Package tracing provides a span abstraction around the cache engine's
atomic Lua script invocations (Propagate, AuthorizeGet, FilterPermissions,
DominanceGet).

The cache facade starts and ends a span around every substrate script
call regardless of whether a real tracing backend is wired in. Today
Start returns a no-op Span, so the cost is a handful of interface calls;
swapping in a real exporter later only means replacing Start, not
touching any of the facade's call sites.

Example:

	ctx, span := tracing.Start(ctx, "propagate")
	defer span.End()

	err := doSubstrateCall(ctx)
	if err != nil {
	    span.RecordError(err)
	}
*/
package tracing

import "context"

// Config holds tracing configuration. Enabled gates whether Start
// produces anything other than the no-op Span; today it always does,
// but the field lets a future real tracer opt in without changing the
// facade's Start/End call sites.
type Config struct {
	// ServiceName identifies this instance in spans.
	ServiceName string

	// SamplingRate (0.0-1.0) determines what fraction of spans a real
	// tracer would export. Unused by the no-op Span.
	SamplingRate float64

	// Enabled enables tracing.
	Enabled bool
}

// DefaultConfig returns the default tracing configuration: present in
// the config tree, but disabled, matching observability.Config's
// TracingConfig default.
func DefaultConfig() Config {
	return Config{
		ServiceName:  "aegiscache",
		SamplingRate: 0.1,
		Enabled:      false,
	}
}

// Span represents one traced unit of work, named after the atomic
// script it wraps.
type Span interface {
	// SetAttribute attaches a key/value pair to the span.
	SetAttribute(key string, value interface{})

	// RecordError marks the span as failed.
	RecordError(err error)

	// End closes the span.
	End()
}

// Start begins a span named name and returns a context carrying it.
// The returned Span is a no-op; nothing currently exports spans
// anywhere, so Start never allocates more than the noopSpan value.
func Start(ctx context.Context, name string) (context.Context, Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) SetAttribute(key string, value interface{}) {}
func (noopSpan) RecordError(err error)                       {}
func (noopSpan) End()                                        {}
