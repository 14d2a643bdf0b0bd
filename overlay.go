// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package watermark

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/watermark/frame"
)

// Event is a notification from the video or its container that may change
// what the overlay should show.
type Event uint8

const (
	// TimeUpdate fires as the playback position advances.
	TimeUpdate Event = iota
	// Seeked fires when the user finished seeking.
	Seeked
	// CanPlay fires when playback can start.
	CanPlay
	// LoadedData fires when the first frame is decoded.
	LoadedData
	// LoadedMetadata fires when the intrinsic dimensions become known.
	LoadedMetadata
	// Resize fires when the container size changes. Resizes are debounced.
	Resize
)

func (e Event) String() string {
	switch e {
	case TimeUpdate:
		return "timeupdate"
	case Seeked:
		return "seeked"
	case CanPlay:
		return "canplay"
	case LoadedData:
		return "loadeddata"
	case LoadedMetadata:
		return "loadedmetadata"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// Overlay keeps a watermark painted over a video. It turns video and
// container events into at most one paint per frame and repaints when the
// configuration changes.
//
// Overlay is safe for concurrent use. Close it when the video goes away so
// nothing paints onto a detached surface.
type Overlay struct {
	target Target
	layout LayoutOptions
	log    *slog.Logger

	sched     *frame.Scheduler
	ownClock  *frame.TickerClock
	closeOnce sync.Once

	mu  sync.Mutex
	cfg Config

	passes  atomic.Uint64
	painted atomic.Uint64
}

// NewOverlay returns an overlay painting cfg onto t.Surface. When the video
// is already ready a first paint is scheduled right away; otherwise the
// overlay waits for events.
func NewOverlay(t Target, cfg Config, opts ...Option) *Overlay {
	o := defaultOverlayOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	ov := &Overlay{
		target: t,
		layout: o.layout,
		log:    o.logger,
		cfg:    cfg,
	}

	clock := o.clock
	if clock == nil {
		ov.ownClock = frame.NewTickerClock(frame.DefaultInterval)
		clock = ov.ownClock
	}
	ov.sched = frame.New(clock, ov.paint,
		frame.WithDebounce(o.debounce),
		frame.WithLogger(o.logger),
	)

	if t.Video != nil && t.Video.VideoMetrics().Ready() {
		ov.sched.Request()
	}
	ov.log.Info("watermark: overlay attached",
		"position", cfg.Position.String(), "maxWidth", o.layout.MaxWidth)
	return ov
}

// Handle reacts to a video or container event.
func (ov *Overlay) Handle(ev Event) {
	if ev == Resize {
		ov.sched.RequestDebounced()
		return
	}
	ov.sched.Request()
}

// SetConfig replaces the configuration and schedules a repaint.
func (ov *Overlay) SetConfig(cfg Config) {
	ov.mu.Lock()
	ov.cfg = cfg
	ov.mu.Unlock()
	ov.sched.Request()
}

// Config returns the current configuration.
func (ov *Overlay) Config() Config {
	ov.mu.Lock()
	defer ov.mu.Unlock()
	return ov.cfg
}

// Passes returns how many paint passes ran, including those that found
// nothing to draw.
func (ov *Overlay) Passes() uint64 {
	return ov.passes.Load()
}

// Paints returns how many passes actually repainted the surface.
func (ov *Overlay) Paints() uint64 {
	return ov.painted.Load()
}

// State returns the scheduler state.
func (ov *Overlay) State() frame.State {
	return ov.sched.State()
}

// Close stops all pending work. A paint running on another goroutine
// completes before Close returns; Close called from within a paint, for
// example by a Surface method, returns without waiting for it. Close is
// idempotent.
func (ov *Overlay) Close() {
	ov.sched.Close()
	ov.closeOnce.Do(func() {
		if ov.ownClock != nil {
			ov.ownClock.Stop()
		}
		ov.log.Info("watermark: overlay detached",
			"passes", ov.passes.Load(), "paints", ov.painted.Load())
	})
}

func (ov *Overlay) paint() {
	ov.passes.Add(1)
	if draw(ov.target, ov.Config(), ov.layout) {
		ov.painted.Add(1)
		return
	}
	ov.log.Debug("watermark: nothing to draw yet")
}
