// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/watermark"
	"github.com/gogpu/watermark/demo"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// settings is everything a render needs. A preset file fills it first,
// then explicitly set flags override single fields.
type settings struct {
	Text     string  `yaml:"text"`
	Position string  `yaml:"position"`
	Opacity  float64 `yaml:"opacity"`

	// Layout is "playback" or "upload".
	Layout         string  `yaml:"layout"`
	MaxWidth       float64 `yaml:"max_width"`
	ContainerWidth float64 `yaml:"container_width"`
	DPR            float64 `yaml:"dpr"`

	VideoWidth  int `yaml:"video_width"`
	VideoHeight int `yaml:"video_height"`

	// Video is an optional demo video document whose stored watermark
	// settings replace Text, Position and Opacity. A document without
	// watermark text draws nothing.
	Video string `yaml:"video"`
}

func defaultSettings() settings {
	return settings{
		Position:    watermark.BottomRight.String(),
		Opacity:     watermark.DefaultOpacity,
		Layout:      "playback",
		DPR:         1,
		VideoWidth:  1920,
		VideoHeight: 1080,
	}
}

var errUnknownLayout = errors.New("unknown layout")

// loadSettings reads the preset at path on top of the defaults. An empty
// path yields the defaults.
func loadSettings(path string) (settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read preset: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return s, nil
}

// bindFlags registers the settings flags on fs with s as defaults.
func (s *settings) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.Text, "text", s.Text, "watermark text")
	fs.StringVar(&s.Position, "position", s.Position, "top-left, top-right, bottom-left, bottom-right or center")
	fs.Float64Var(&s.Opacity, "opacity", s.Opacity, "text opacity, clamped to [0.1, 1]")
	fs.StringVar(&s.Layout, "layout", s.Layout, "layout preset: playback or upload")
	fs.Float64Var(&s.MaxWidth, "max-width", s.MaxWidth, "display width cap in CSS pixels, 0 keeps the layout preset's")
	fs.Float64Var(&s.ContainerWidth, "container-width", s.ContainerWidth, "container width in CSS pixels, 0 uses the fallback width")
	fs.Float64Var(&s.DPR, "dpr", s.DPR, "device pixel ratio")
	fs.IntVar(&s.VideoWidth, "video-width", s.VideoWidth, "intrinsic video width")
	fs.IntVar(&s.VideoHeight, "video-height", s.VideoHeight, "intrinsic video height")
	fs.StringVar(&s.Video, "video", s.Video, "demo video JSON document with stored watermark settings")
}

// overlay resolves the settings into the renderer's inputs.
func (s settings) overlay() (watermark.Config, watermark.LayoutOptions, error) {
	var opts watermark.LayoutOptions
	switch s.Layout {
	case "playback", "":
		opts = watermark.PlaybackLayout()
	case "upload":
		opts = watermark.UploadPreviewLayout()
	default:
		return watermark.Config{}, opts, fmt.Errorf("%w %q", errUnknownLayout, s.Layout)
	}
	if s.MaxWidth > 0 {
		opts.MaxWidth = s.MaxWidth
	}
	opts.DevicePixelRatio = s.DPR

	cfg := watermark.Config{
		Text:     demo.Normalize(s.Text),
		Position: watermark.ParsePosition(s.Position),
		Opacity:  watermark.ClampOpacity(s.Opacity),
	}
	if s.Video != "" {
		f, err := os.Open(s.Video)
		if err != nil {
			return cfg, opts, fmt.Errorf("open video document: %w", err)
		}
		defer f.Close()
		v, err := demo.Decode(f)
		if err != nil {
			return cfg, opts, err
		}
		cfg = v.WatermarkConfig()
	}
	return cfg, opts, nil
}

// metrics returns the video metrics for a fully loaded video.
func (s settings) metrics() watermark.VideoMetrics {
	return watermark.VideoMetrics{
		Width:      s.VideoWidth,
		Height:     s.VideoHeight,
		ReadyState: watermark.HaveEnoughData,
	}
}

// resolveSettings loads the preset and applies every flag the user set on
// fs on top of it.
func resolveSettings(fs *pflag.FlagSet, preset string) (settings, error) {
	s, err := loadSettings(preset)
	if err != nil {
		return s, err
	}
	overrides := pflag.NewFlagSet("overrides", pflag.ContinueOnError)
	s.bindFlags(overrides)

	var setErr error
	fs.Visit(func(f *pflag.Flag) {
		if overrides.Lookup(f.Name) == nil || setErr != nil {
			return
		}
		setErr = overrides.Set(f.Name, f.Value.String())
	})
	return s, setErr
}
