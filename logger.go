// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package watermark

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the package and by overlays
// created without WithLogger. By default nothing is logged. Pass nil to
// restore the silent default.
//
// The logger is also handed to gg, so drawing backend diagnostics end up
// in the same place.
//
// Log levels:
//   - [slog.LevelDebug]: skipped paints, scheduling decisions
//   - [slog.LevelInfo]: overlay lifecycle
//
// A paint skipped because the video is not ready is never an error.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
