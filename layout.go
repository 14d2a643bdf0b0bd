// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package watermark

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Text placement constants.
const (
	// Margin is the distance in CSS pixels between the text and the frame
	// edges for every position except Center.
	Margin = 10.0

	MinFontSize = 10.0
	MaxFontSize = 18.0

	// FontSizeDivisor scales the font with the display width:
	// size = clamp(MinFontSize, width/FontSizeDivisor, MaxFontSize).
	FontSizeDivisor = 35.0

	// ShadowBlur is the shadow blur radius in CSS pixels.
	ShadowBlur = 2.0
)

// Default fallback widths used when the container reports no width yet.
const (
	DefaultFallbackWidth  = 600.0
	PlaybackFallbackWidth = 800.0
	UploadPreviewMaxWidth = 800.0
)

// ShadowColor is the soft dark shadow drawn behind the glyphs.
var ShadowColor = gg.RGBA{R: 0, G: 0, B: 0, A: 0.5}

// LayoutOptions tunes the sizing step of Compute.
type LayoutOptions struct {
	// MaxWidth caps the display width in CSS pixels. Zero means uncapped.
	MaxWidth float64

	// FallbackWidth is used when the container width is zero or negative.
	// Zero selects DefaultFallbackWidth.
	FallbackWidth float64

	// DevicePixelRatio is the number of device pixels per CSS pixel.
	// Values <= 0 are treated as 1. Draw fills it from the surface.
	DevicePixelRatio float64
}

// UploadPreviewLayout matches the upload preview: the overlay never grows
// beyond 800 CSS pixels.
func UploadPreviewLayout() LayoutOptions {
	return LayoutOptions{MaxWidth: UploadPreviewMaxWidth, FallbackWidth: DefaultFallbackWidth}
}

// PlaybackLayout matches the playback page: the overlay follows the
// container with no cap.
func PlaybackLayout() LayoutOptions {
	return LayoutOptions{FallbackWidth: PlaybackFallbackWidth}
}

func (o LayoutOptions) normalized() LayoutOptions {
	if !(o.FallbackWidth > 0) {
		o.FallbackWidth = DefaultFallbackWidth
	}
	if !(o.DevicePixelRatio > 0) || math.IsInf(o.DevicePixelRatio, 0) {
		o.DevicePixelRatio = 1
	}
	if !(o.MaxWidth > 0) {
		o.MaxWidth = 0
	}
	return o
}

// Font describes the watermark typeface.
type Font struct {
	// Size in CSS pixels.
	Size   float64
	Bold   bool
	Family string
}

// String returns the CSS font shorthand, e.g. "bold 18px sans-serif".
func (f Font) String() string {
	weight := "normal"
	if f.Bold {
		weight = "bold"
	}
	return fmt.Sprintf("%s %gpx %s", weight, f.Size, f.Family)
}

// Shadow is a blur-only glyph shadow with no offset.
type Shadow struct {
	Color gg.RGBA
	Blur  float64
}

// Plan is the full set of drawing instructions for one paint. All
// coordinates are CSS pixels; Scale maps them to the backing store.
type Plan struct {
	DisplayWidth, DisplayHeight float64
	BackingWidth, BackingHeight int
	Scale                       float64

	Text     string
	Font     Font
	Align    TextAlign
	Baseline TextBaseline
	X, Y     float64
	Fill     gg.RGBA
	Shadow   Shadow
}

// Compute lays out a watermark. It returns false when there is nothing to
// draw: the text is empty or the video dimensions are not known yet.
//
// The display width is the container width (or the fallback), capped by
// MaxWidth. The height follows the video aspect ratio, and the size never
// exceeds the intrinsic video size.
func Compute(video VideoMetrics, containerWidth float64, cfg Config, opts LayoutOptions) (Plan, bool) {
	if cfg.Empty() || !video.Ready() {
		return Plan{}, false
	}
	opts = opts.normalized()

	width := containerWidth
	if !(width > 0) || math.IsInf(width, 0) {
		width = opts.FallbackWidth
	}
	if opts.MaxWidth > 0 && width > opts.MaxWidth {
		width = opts.MaxWidth
	}

	iw, ih := float64(video.Width), float64(video.Height)
	height := width / video.AspectRatio()
	if height > ih {
		width, height = iw, ih
	}

	dpr := opts.DevicePixelRatio
	p := Plan{
		DisplayWidth:  width,
		DisplayHeight: height,
		BackingWidth:  backingSize(width, dpr),
		BackingHeight: backingSize(height, dpr),
		Scale:         dpr,
		Text:          cfg.Text,
		Font: Font{
			Size:   FontSize(width),
			Bold:   true,
			Family: "sans-serif",
		},
		Fill:   gg.RGBA{R: 1, G: 1, B: 1, A: cfg.Opacity},
		Shadow: Shadow{Color: ShadowColor, Blur: ShadowBlur},
	}
	p.Align, p.Baseline, p.X, p.Y = Anchor(cfg.Position, width, height)
	return p, true
}

// FontSize returns the font size for a display width.
func FontSize(displayWidth float64) float64 {
	return math.Max(MinFontSize, math.Min(MaxFontSize, displayWidth/FontSizeDivisor))
}

// Anchor returns the alignment and anchor point for p on a width×height
// frame. Invalid positions anchor like BottomRight.
func Anchor(p Position, width, height float64) (TextAlign, TextBaseline, float64, float64) {
	switch p {
	case TopLeft:
		return AlignLeft, BaselineTop, Margin, Margin
	case TopRight:
		return AlignRight, BaselineTop, width - Margin, Margin
	case BottomLeft:
		return AlignLeft, BaselineBottom, Margin, height - Margin
	case Center:
		return AlignCenter, BaselineMiddle, width / 2, height / 2
	default:
		return AlignRight, BaselineBottom, width - Margin, height - Margin
	}
}

func backingSize(css, dpr float64) int {
	return max(1, int(math.Round(css*dpr)))
}
