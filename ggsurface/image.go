// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/watermark"
	xdraw "golang.org/x/image/draw"
)

// Common errors returned by surfaces.
var (
	// ErrClosed is returned when a closed surface is resized.
	ErrClosed = errors.New("ggsurface: surface is closed")

	// ErrInvalidDimensions is returned for non-positive sizes.
	ErrInvalidDimensions = errors.New("ggsurface: invalid dimensions")
)

// ImageSurface is an offscreen watermark.Surface backed by a gg.Context.
type ImageSurface struct {
	dc  *gg.Context
	ctx *drawContext

	dpr                float64
	displayW, displayH float64
	closed             bool
}

// NewImageSurface returns a 1×1 surface for the given device pixel ratio.
// The first paint sizes it. A non-positive or non-finite ratio is treated
// as 1.
func NewImageSurface(dpr float64) *ImageSurface {
	if !(dpr > 0) || math.IsInf(dpr, 0) {
		dpr = 1
	}
	s := &ImageSurface{
		dc:  gg.NewContext(1, 1),
		dpr: dpr,
	}
	s.ctx = newDrawContext(s.target, nil)
	return s
}

func (s *ImageSurface) target() *gg.Context {
	if s.closed {
		return nil
	}
	return s.dc
}

// Resize implements watermark.Surface. Like a canvas, resizing always
// clears the surface, even when the size is unchanged.
func (s *ImageSurface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if err := s.dc.Resize(width, height); err != nil {
		return fmt.Errorf("ggsurface: resize: %w", err)
	}
	s.dc.Clear()
	s.ctx.ResetTransform()
	return nil
}

// SetDisplaySize implements watermark.Surface.
func (s *ImageSurface) SetDisplaySize(width, height float64) {
	s.displayW, s.displayH = width, height
}

// DisplaySize returns the CSS size set by the last paint.
func (s *ImageSurface) DisplaySize() (width, height float64) {
	return s.displayW, s.displayH
}

// DevicePixelRatio implements watermark.Surface.
func (s *ImageSurface) DevicePixelRatio() float64 {
	return s.dpr
}

// Context implements watermark.Surface. It returns nil once the surface is
// closed.
func (s *ImageSurface) Context() watermark.Context {
	if s.closed {
		return nil
	}
	return s.ctx
}

// Width returns the backing store width in device pixels.
func (s *ImageSurface) Width() int { return s.dc.Width() }

// Height returns the backing store height in device pixels.
func (s *ImageSurface) Height() int { return s.dc.Height() }

// Image returns a copy of the surface pixels.
func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the surface as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if s.closed {
		return ErrClosed
	}
	return s.dc.EncodePNG(w)
}

// SavePNG writes the surface to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	if s.closed {
		return ErrClosed
	}
	return s.dc.SavePNG(path)
}

// Composite returns frame scaled to the backing store size with the overlay
// drawn on top. A nil frame yields the overlay on a transparent
// background.
func (s *ImageSurface) Composite(frame image.Image) *image.RGBA {
	bounds := image.Rect(0, 0, s.dc.Width(), s.dc.Height())
	dst := image.NewRGBA(bounds)
	if frame != nil {
		xdraw.CatmullRom.Scale(dst, bounds, frame, frame.Bounds(), xdraw.Src, nil)
	}
	xdraw.Draw(dst, bounds, s.dc.Image(), image.Point{}, xdraw.Over)
	return dst
}

// Close releases the gg context. After Close, Context returns nil and the
// renderer skips the surface. Close is idempotent.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}

var _ watermark.Surface = (*ImageSurface)(nil)
