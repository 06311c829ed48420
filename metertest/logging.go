// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metertest

import (
	"slices"
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// A LogRecorder is a [logging.Logger] that stores all entries at or above its
// level as [LogRecord]s for inspection. Loggers derived with
// [LogRecorder.With] share the same records.
type LogRecorder struct {
	level  logging.Level
	with   []zap.Field
	shared *recordLog
	// Methods outside of the levelled logging calls panic. A recorder that
	// silently dropped entries would let assertions on logs pass vacuously.
	logging.Logger
}

type recordLog struct {
	mu      sync.Mutex
	records []*LogRecord
}

var _ logging.Logger = (*LogRecorder)(nil)

// NewLogRecorder constructs a new [LogRecorder] at the specified level.
func NewLogRecorder(level logging.Level) *LogRecorder {
	return &LogRecorder{
		level:  level,
		shared: new(recordLog),
	}
}

// A LogRecord is a single entry in a [LogRecorder].
type LogRecord struct {
	Level  logging.Level
	Msg    string
	Fields []zap.Field
}

// Field returns the value of the named field, as encoded by zap, and whether it
// was present.
func (r *LogRecord) Field(key string) (any, bool) {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range r.Fields {
		f.AddTo(enc)
	}
	v, ok := enc.Fields[key]
	return v, ok
}

func (l *LogRecorder) With(fields ...zap.Field) logging.Logger {
	return &LogRecorder{
		level:  l.level,
		with:   slices.Concat(l.with, fields),
		shared: l.shared,
	}
}

func (l *LogRecorder) record(lvl logging.Level, msg string, fields []zap.Field) {
	if lvl < l.level {
		return
	}
	r := &LogRecord{
		Level:  lvl,
		Msg:    msg,
		Fields: slices.Concat(l.with, fields),
	}
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	l.shared.records = append(l.shared.records, r)
}

func (l *LogRecorder) Verbo(msg string, fs ...zap.Field) { l.record(logging.Verbo, msg, fs) }
func (l *LogRecorder) Debug(msg string, fs ...zap.Field) { l.record(logging.Debug, msg, fs) }
func (l *LogRecorder) Trace(msg string, fs ...zap.Field) { l.record(logging.Trace, msg, fs) }
func (l *LogRecorder) Info(msg string, fs ...zap.Field)  { l.record(logging.Info, msg, fs) }
func (l *LogRecorder) Warn(msg string, fs ...zap.Field)  { l.record(logging.Warn, msg, fs) }
func (l *LogRecorder) Error(msg string, fs ...zap.Field) { l.record(logging.Error, msg, fs) }
func (l *LogRecorder) Fatal(msg string, fs ...zap.Field) { l.record(logging.Fatal, msg, fs) }

// Records returns every recorded entry, in the order logged.
func (l *LogRecorder) Records() []*LogRecord {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	return slices.Clone(l.shared.records)
}

// At returns all recorded logs at the specified [logging.Level].
func (l *LogRecorder) At(lvl logging.Level) []*LogRecord {
	return l.filter(func(r *LogRecord) bool { return r.Level == lvl })
}

// AtLeast returns all recorded logs at or above the specified [logging.Level].
func (l *LogRecorder) AtLeast(lvl logging.Level) []*LogRecord {
	return l.filter(func(r *LogRecord) bool { return r.Level >= lvl })
}

func (l *LogRecorder) filter(fn func(*LogRecord) bool) []*LogRecord {
	var out []*LogRecord
	for _, r := range l.Records() {
		if fn(r) {
			out = append(out, r)
		}
	}
	return out
}
