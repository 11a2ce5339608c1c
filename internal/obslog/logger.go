// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obslog is the thin structured-logging seam used by the Builder
// and the irdump CLI. The analyses in package ir (cfg.go, domtree.go,
// loop.go, ssa.go) never call it: they are pure functions over a Func and
// have no business producing output, logged or otherwise.
package obslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the subset of *zap.SugaredLogger this module actually calls,
// kept narrow so tests can substitute a no-op implementation without
// pulling in zap's test observers.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Sync() error
}

// New returns a console-encoded Logger writing to stderr at the given
// level: any level name zap recognizes ("debug", "info", "warn", "error",
// ...), or "info" for a string it does not.
func New(level string) Logger {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		// Config.Build only fails on malformed encoder/sink configuration,
		// which New constructs itself; fall back rather than propagate a
		// bug-only error through every caller's signature.
		logger = zap.NewExample()
	}
	return logger.Sugar()
}

// Nop returns a Logger that discards everything, for tests and library
// callers that never asked for diagnostics.
func Nop() Logger {
	return zap.NewNop().Sugar()
}

var _ Logger = (*zap.SugaredLogger)(nil)
