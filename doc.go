// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package watermark paints a text watermark over a video.
//
// # Overview
//
// A watermark is a short label, typically the uploader's name, drawn in
// semi-transparent white with a soft shadow in a corner of the video
// frame. The overlay surface sits on top of the video and must track the
// video's displayed size, so the label is repainted whenever the
// container resizes or the video reports progress.
//
// # Layers
//
// The package is split into a pure part and a driven part:
//
//   - Compute turns video metrics, a container width and a Config into a
//     Plan: display and backing sizes, font, anchor point, colours.
//   - Paint executes a Plan on a Context; Draw does Compute and Paint for
//     a Target in one call and silently skips when there is nothing to
//     draw yet.
//   - Overlay binds a Target to a Config and repaints on events through a
//     frame.Scheduler, at most once per animation frame.
//
// # Quick Start
//
//	surf := ggsurface.NewImageSurface(2) // device pixel ratio 2
//	ov := watermark.NewOverlay(watermark.Target{
//		Video:     player,                      // a VideoSource
//		Container: watermark.FixedWidth(640),
//		Surface:   surf,
//	}, watermark.NewConfig("Jane Doe"))
//	defer ov.Close()
//
//	ov.Handle(watermark.LoadedMetadata)
//
// # Coordinates
//
// Layout happens in CSS pixels. The backing store is the display size
// multiplied by the device pixel ratio, and Paint scales the context by
// that ratio so text stays sharp at any zoom level.
//
// # Sizing cap
//
// The upload preview caps the overlay at 800 CSS pixels while the playback
// page does not cap it. LayoutOptions.MaxWidth makes the choice explicit;
// UploadPreviewLayout and PlaybackLayout reproduce the two pages.
package watermark

// Version is the current version of the module.
const Version = "0.1.0"
