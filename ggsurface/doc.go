// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggsurface provides watermark surfaces rendered with gg.
//
// Two surfaces are available:
//
//   - ImageSurface draws into an offscreen gg.Context. Use it to export
//     overlays as PNG or to composite them over a still video frame.
//   - CanvasSurface draws into a ggcanvas.Canvas, which uploads the pixels
//     to a GPU texture for display in a gogpu window.
//
// Both share the same drawing context. Text uses the Go Bold face from
// golang.org/x/image for bold fonts and Go Regular otherwise; glyphs are
// rasterized directly at device resolution, so the output stays sharp at
// any device pixel ratio.
//
// # Thread Safety
//
// Surfaces are NOT safe for concurrent use. An Overlay serialises its
// paints, so one surface per overlay is fine.
package ggsurface
