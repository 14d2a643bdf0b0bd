// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package watermark

import "time"

// ReadyState mirrors the media element ready states.
type ReadyState uint8

const (
	// HaveNothing means no information about the media is available.
	HaveNothing ReadyState = iota
	// HaveMetadata means duration and intrinsic dimensions are known.
	HaveMetadata
	// HaveCurrentData means the frame at the current position is decoded.
	HaveCurrentData
	// HaveFutureData means playback can advance at least a little.
	HaveFutureData
	// HaveEnoughData means playback can run through without stalling.
	HaveEnoughData
)

func (s ReadyState) String() string {
	switch s {
	case HaveNothing:
		return "nothing"
	case HaveMetadata:
		return "metadata"
	case HaveCurrentData:
		return "current-data"
	case HaveFutureData:
		return "future-data"
	case HaveEnoughData:
		return "enough-data"
	default:
		return "unknown"
	}
}

// VideoMetrics is a snapshot of the playing video as the renderer sees it.
type VideoMetrics struct {
	// Width and Height are the intrinsic (natural) frame size in pixels.
	Width, Height int

	// CurrentTime is the playback position.
	CurrentTime time.Duration

	ReadyState ReadyState
}

// Ready reports whether the intrinsic dimensions are known, i.e. metadata
// has loaded.
func (m VideoMetrics) Ready() bool {
	return m.ReadyState >= HaveMetadata && m.Width > 0 && m.Height > 0
}

// AspectRatio returns Width/Height, or 0 when the size is unknown.
func (m VideoMetrics) AspectRatio() float64 {
	if m.Width <= 0 || m.Height <= 0 {
		return 0
	}
	return float64(m.Width) / float64(m.Height)
}

// VideoMetrics makes a snapshot usable as a fixed VideoSource.
func (m VideoMetrics) VideoMetrics() VideoMetrics {
	return m
}
