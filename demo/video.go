// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package demo holds the marketplace glue around the watermark renderer:
// the stored demo video document, the upload form checks and the helpers
// the upload and playback pages use to build a watermark.Config.
package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gogpu/watermark"
	"golang.org/x/text/unicode/norm"
)

// Video is a stored demo video document.
type Video struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Category       string    `json:"category,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	ThumbnailURL   string    `json:"thumbnailUrl,omitempty"`
	VideoURL       string    `json:"videoUrl"`
	FreelancerID   string    `json:"freelancerId"`
	FreelancerName string    `json:"freelancerName"`
	UploadedAt     time.Time `json:"uploadedAt"`

	WatermarkText     string   `json:"watermarkText,omitempty"`
	WatermarkPosition string   `json:"watermarkPosition,omitempty"`
	WatermarkOpacity  *float64 `json:"watermarkOpacity,omitempty"`
}

// Decode reads one Video document from r.
func Decode(r io.Reader) (*Video, error) {
	var v Video
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("demo: decode video: %w", err)
	}
	return &v, nil
}

// WatermarkConfig returns the overlay settings stored with the video.
// A missing opacity means the default, a missing or unknown position means
// bottom-right. Stored opacities are clamped to the slider range.
func (v *Video) WatermarkConfig() watermark.Config {
	cfg := watermark.NewConfig(Normalize(v.WatermarkText)).
		WithPosition(watermark.ParsePosition(v.WatermarkPosition))
	if v.WatermarkOpacity != nil {
		cfg = cfg.WithOpacity(watermark.ClampOpacity(*v.WatermarkOpacity))
	}
	return cfg
}

// DefaultText returns the watermark text to show in the upload form: the
// current text, or the uploader's profile name while the field is empty.
func DefaultText(current, profileName string) string {
	if current != "" {
		return current
	}
	return Normalize(profileName)
}

// CanContact reports whether the viewer may contact the freelancer who
// owns a video. Anonymous viewers and the owner cannot.
func CanContact(viewerID, freelancerID string) bool {
	return viewerID != "" && viewerID != freelancerID
}

// Normalize returns s in Unicode NFC, so that composed and decomposed
// input render the same glyphs.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
