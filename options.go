// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package watermark

import (
	"log/slog"
	"time"

	"github.com/gogpu/watermark/frame"
)

// Option configures an Overlay during creation.
//
// Example:
//
//	ov := watermark.NewOverlay(target, cfg,
//		watermark.WithLayout(watermark.UploadPreviewLayout()),
//		watermark.WithDebounce(50*time.Millisecond),
//	)
type Option func(*overlayOptions)

type overlayOptions struct {
	layout   LayoutOptions
	clock    frame.Clock
	debounce time.Duration
	logger   *slog.Logger
}

func defaultOverlayOptions() overlayOptions {
	return overlayOptions{
		layout:   LayoutOptions{},
		clock:    nil, // a TickerClock owned by the overlay
		debounce: frame.DefaultDebounce,
		logger:   nil, // Logger() at creation time
	}
}

// WithLayout sets the sizing options. The default is uncapped with a
// 600 pixel fallback width.
func WithLayout(opts LayoutOptions) Option {
	return func(o *overlayOptions) {
		o.layout = opts
	}
}

// WithClock sets the frame clock. Without it the overlay runs its own
// 60 Hz TickerClock and stops it on Close.
func WithClock(c frame.Clock) Option {
	return func(o *overlayOptions) {
		o.clock = c
	}
}

// WithDebounce sets how long container resizes must settle before a
// repaint is scheduled.
func WithDebounce(d time.Duration) Option {
	return func(o *overlayOptions) {
		o.debounce = d
	}
}

// WithLogger sets the overlay logger. Without it the package logger is
// used.
func WithLogger(l *slog.Logger) Option {
	return func(o *overlayOptions) {
		o.logger = l
	}
}
