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

package logging

import (
	"context"
	"math/rand"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap.SugaredLogger to the Logger interface. It is the
// default production logger; StructuredLogger remains available for tests
// and environments that want to assert against a plain JSON stream.
type ZapLogger struct {
	sugar        *zap.SugaredLogger
	atomicLevel  zap.AtomicLevel
	samplingRate float64
	mu           sync.Mutex
}

// NewZapLogger builds a ZapLogger writing JSON-encoded entries to stdout at
// the given level, using zap's production encoder configuration.
func NewZapLogger(level Level) (*ZapLogger, error) {
	atomicLevel := zap.NewAtomicLevelAt(toZapLevel(level))

	cfg := zap.NewProductionConfig()
	cfg.Level = atomicLevel
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &ZapLogger{
		sugar:        base.Sugar(),
		atomicLevel:  atomicLevel,
		samplingRate: 1.0,
	}, nil
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// Debug logs a debug message, subject to SetSamplingRate.
func (l *ZapLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.mu.Lock()
	rate := l.samplingRate
	l.mu.Unlock()

	if rate < 1.0 && rand.Float64() > rate {
		return
	}
	l.sugar.Debugw(msg, toZapArgs(ctx, fields)...)
}

// Info logs an informational message.
func (l *ZapLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.sugar.Infow(msg, toZapArgs(ctx, fields)...)
}

// Warn logs a warning message.
func (l *ZapLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.sugar.Warnw(msg, toZapArgs(ctx, fields)...)
}

// Error logs an error message.
func (l *ZapLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.sugar.Errorw(msg, toZapArgs(ctx, fields)...)
}

// Fatal logs a fatal message and exits, via zap's own Fatalw.
func (l *ZapLogger) Fatal(ctx context.Context, msg string, fields ...Field) {
	l.sugar.Fatalw(msg, toZapArgs(ctx, fields)...)
}

// With creates a child logger carrying fields on every subsequent call.
func (l *ZapLogger) With(fields ...Field) Logger {
	l.mu.Lock()
	rate := l.samplingRate
	l.mu.Unlock()

	return &ZapLogger{
		sugar:        l.sugar.With(toZapArgs(context.Background(), fields)...),
		atomicLevel:  l.atomicLevel,
		samplingRate: rate,
	}
}

// SetLevel sets the minimum log level.
func (l *ZapLogger) SetLevel(level Level) {
	l.atomicLevel.SetLevel(toZapLevel(level))
}

// SetSamplingRate sets the sampling rate applied to Debug calls.
func (l *ZapLogger) SetSamplingRate(rate float64) {
	if rate < 0.0 {
		rate = 0.0
	}
	if rate > 1.0 {
		rate = 1.0
	}
	l.mu.Lock()
	l.samplingRate = rate
	l.mu.Unlock()
}

// Sync flushes any buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

// toZapArgs flattens context-derived fields and call-site fields into
// zap's alternating key/value SugaredLogger argument form.
func toZapArgs(ctx context.Context, fields []Field) []interface{} {
	contextFields := extractContextFields(ctx)
	args := make([]interface{}, 0, (len(contextFields)+len(fields))*2)
	for _, f := range contextFields {
		args = append(args, f.Key, f.Value)
	}
	for _, f := range fields {
		args = append(args, f.Key, f.Value)
	}
	return args
}
