// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package watermark

import "math"

// Opacity bounds. The opacity picker steps through this range in tenths.
const (
	DefaultOpacity = 0.7
	MinOpacity     = 0.1
	MaxOpacity     = 1.0
)

// Config describes what to draw: the label, where, and how opaque.
//
// A Config is a value; live edits (typing, a slider drag) produce a new
// Config that is handed to Overlay.SetConfig.
type Config struct {
	// Text is drawn verbatim. An empty Text means there is nothing to draw.
	Text string

	// Position selects the anchor corner. The zero value is BottomRight.
	Position Position

	// Opacity is the alpha of the fill colour. It is used exactly as
	// given; callers clamp it with ClampOpacity.
	Opacity float64
}

// NewConfig returns a Config for text with the default position and
// opacity.
func NewConfig(text string) Config {
	return Config{
		Text:     text,
		Position: BottomRight,
		Opacity:  DefaultOpacity,
	}
}

// WithText returns a copy of c with Text replaced.
func (c Config) WithText(text string) Config {
	c.Text = text
	return c
}

// WithPosition returns a copy of c with Position replaced.
func (c Config) WithPosition(p Position) Config {
	c.Position = p
	return c
}

// WithOpacity returns a copy of c with Opacity replaced. The value is not
// clamped.
func (c Config) WithOpacity(opacity float64) Config {
	c.Opacity = opacity
	return c
}

// Empty reports whether there is no text to draw.
func (c Config) Empty() bool {
	return c.Text == ""
}

// ClampOpacity limits v to [MinOpacity, MaxOpacity]. NaN yields
// DefaultOpacity.
func ClampOpacity(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultOpacity
	}
	return math.Max(MinOpacity, math.Min(MaxOpacity, v))
}
