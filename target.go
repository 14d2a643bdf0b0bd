// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package watermark

import "github.com/gogpu/gg"

// VideoSource exposes the playing video. The renderer only reads it.
type VideoSource interface {
	VideoMetrics() VideoMetrics
}

// Container is the element the overlay is laid out in.
type Container interface {
	// Width returns the current content width in CSS pixels. Zero means
	// the container has not been laid out yet.
	Width() float64
}

// FixedWidth is a Container with a constant width.
type FixedWidth float64

// Width implements Container.
func (w FixedWidth) Width() float64 { return float64(w) }

// Surface is the overlay drawing surface placed on top of the video.
//
// The renderer resizes the surface on every paint, which discards whatever
// was drawn on it before.
type Surface interface {
	// Resize sets the backing store size in device pixels.
	Resize(width, height int) error

	// SetDisplaySize sets the on-screen size in CSS pixels.
	SetDisplaySize(width, height float64)

	// DevicePixelRatio returns device pixels per CSS pixel.
	DevicePixelRatio() float64

	// Context returns the 2D drawing context, or nil when none is
	// available. The returned Context stays valid across Resize.
	Context() Context
}

// Context is a 2D immediate-mode drawing context in the style of an HTML
// canvas. Coordinates are transformed by the current scale.
type Context interface {
	// ResetTransform restores the identity transform.
	ResetTransform()

	// Scale multiplies the current transform by a scale.
	Scale(sx, sy float64)

	// ClearRect makes the rectangle fully transparent. Shadows do not
	// apply.
	ClearRect(x, y, width, height float64)

	SetFont(f Font)
	SetFillColor(c gg.RGBA)

	// SetShadow sets the glyph shadow. A zero blur or a transparent
	// colour disables it.
	SetShadow(c gg.RGBA, blur float64)

	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)

	// FillText draws text anchored at (x, y) using the current alignment,
	// baseline, font, fill and shadow.
	FillText(text string, x, y float64)
}

// Target bundles what one overlay paints from and onto.
type Target struct {
	Video     VideoSource
	Container Container
	Surface   Surface
}
