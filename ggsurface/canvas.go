// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/watermark"
)

// CanvasSurface is a watermark.Surface drawn into a ggcanvas.Canvas for
// display in a GPU window. Every paint marks the canvas dirty so the next
// Flush or RenderTo uploads it.
type CanvasSurface struct {
	canvas *ggcanvas.Canvas
	ctx    *drawContext

	dpr                float64
	displayW, displayH float64
}

// NewCanvasSurface creates a surface on the GPU device of provider, usually
// gogpu.App.GPUContextProvider().
func NewCanvasSurface(provider gpucontext.DeviceProvider, dpr float64) (*CanvasSurface, error) {
	canvas, err := ggcanvas.New(provider, 1, 1)
	if err != nil {
		return nil, fmt.Errorf("ggsurface: %w", err)
	}
	if !(dpr > 0) || math.IsInf(dpr, 0) {
		dpr = 1
	}
	s := &CanvasSurface{canvas: canvas, dpr: dpr}
	s.ctx = newDrawContext(canvas.Context, canvas.MarkDirty)
	return s, nil
}

// Canvas returns the underlying canvas, e.g. to call RenderTo.
func (s *CanvasSurface) Canvas() *ggcanvas.Canvas {
	return s.canvas
}

// Resize implements watermark.Surface.
func (s *CanvasSurface) Resize(width, height int) error {
	if err := s.canvas.Resize(width, height); err != nil {
		switch {
		case errors.Is(err, ggcanvas.ErrCanvasClosed):
			return ErrClosed
		case errors.Is(err, ggcanvas.ErrInvalidDimensions):
			return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
		}
		return fmt.Errorf("ggsurface: resize: %w", err)
	}
	if dc := s.canvas.Context(); dc != nil {
		dc.ClearWithColor(gg.Transparent)
	}
	s.canvas.MarkDirty()
	s.ctx.ResetTransform()
	return nil
}

// SetDisplaySize implements watermark.Surface.
func (s *CanvasSurface) SetDisplaySize(width, height float64) {
	s.displayW, s.displayH = width, height
}

// DisplaySize returns the CSS size set by the last paint.
func (s *CanvasSurface) DisplaySize() (width, height float64) {
	return s.displayW, s.displayH
}

// DevicePixelRatio implements watermark.Surface.
func (s *CanvasSurface) DevicePixelRatio() float64 {
	return s.dpr
}

// SetDevicePixelRatio updates the ratio, e.g. when the window moves to a
// display with a different scale factor. The next paint picks it up.
func (s *CanvasSurface) SetDevicePixelRatio(dpr float64) {
	if dpr > 0 && !math.IsInf(dpr, 0) {
		s.dpr = dpr
	}
}

// Context implements watermark.Surface. It returns nil once the canvas is
// closed.
func (s *CanvasSurface) Context() watermark.Context {
	if s.canvas.Context() == nil {
		return nil
	}
	return s.ctx
}

// Close releases the canvas and its texture.
func (s *CanvasSurface) Close() error {
	return s.canvas.Close()
}

var _ watermark.Surface = (*CanvasSurface)(nil)
