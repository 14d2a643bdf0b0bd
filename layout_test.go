// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package watermark

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

var hd = VideoMetrics{Width: 1920, Height: 1080, ReadyState: HaveEnoughData}

func TestComputeSkips(t *testing.T) {
	tests := []struct {
		name  string
		video VideoMetrics
		cfg   Config
	}{
		{"empty text", hd, NewConfig("")},
		{"no metadata", VideoMetrics{Width: 1920, Height: 1080, ReadyState: HaveNothing}, NewConfig("x")},
		{"zero width", VideoMetrics{Height: 1080, ReadyState: HaveEnoughData}, NewConfig("x")},
		{"zero height", VideoMetrics{Width: 1920, ReadyState: HaveEnoughData}, NewConfig("x")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Compute(tt.video, 640, tt.cfg, LayoutOptions{}); ok {
				t.Error("Compute() ok = true, want false")
			}
		})
	}
}

func TestComputeMetadataIsEnough(t *testing.T) {
	v := VideoMetrics{Width: 640, Height: 360, ReadyState: HaveMetadata}
	if _, ok := Compute(v, 320, NewConfig("x"), LayoutOptions{}); !ok {
		t.Error("Compute() with metadata only should lay out")
	}
}

func TestComputeEndToEnd(t *testing.T) {
	cfg := Config{Text: "Jane Doe", Position: TopLeft, Opacity: 0.7}
	for _, dpr := range []float64{1, 1.5, 2, 3} {
		p, ok := Compute(hd, 640, cfg, LayoutOptions{DevicePixelRatio: dpr})
		if !ok {
			t.Fatalf("dpr %v: Compute() ok = false", dpr)
		}
		if p.DisplayWidth != 640 || p.DisplayHeight != 360 {
			t.Errorf("dpr %v: display = %vx%v, want 640x360", dpr, p.DisplayWidth, p.DisplayHeight)
		}
		wantW, wantH := int(640*dpr), int(360*dpr)
		if p.BackingWidth != wantW || p.BackingHeight != wantH {
			t.Errorf("dpr %v: backing = %dx%d, want %dx%d", dpr, p.BackingWidth, p.BackingHeight, wantW, wantH)
		}
		if p.Scale != dpr {
			t.Errorf("dpr %v: Scale = %v", dpr, p.Scale)
		}
		if p.X != 10 || p.Y != 10 {
			t.Errorf("dpr %v: anchor = (%v, %v), want (10, 10)", dpr, p.X, p.Y)
		}
		if p.Align != AlignLeft || p.Baseline != BaselineTop {
			t.Errorf("dpr %v: align/baseline = %v/%v, want left/top", dpr, p.Align, p.Baseline)
		}
		if want := (gg.RGBA{R: 1, G: 1, B: 1, A: 0.7}); p.Fill != want {
			t.Errorf("dpr %v: Fill = %+v, want %+v", dpr, p.Fill, want)
		}
		if p.Shadow.Blur <= 0 || p.Shadow.Color.A <= 0 {
			t.Errorf("dpr %v: Shadow = %+v, want a visible soft shadow", dpr, p.Shadow)
		}
		if p.Text != "Jane Doe" {
			t.Errorf("dpr %v: Text = %q", dpr, p.Text)
		}
	}
}

func TestComputeAspectRatio(t *testing.T) {
	videos := []VideoMetrics{
		{Width: 1920, Height: 1080, ReadyState: HaveMetadata},
		{Width: 1080, Height: 1920, ReadyState: HaveMetadata},
		{Width: 640, Height: 480, ReadyState: HaveMetadata},
		{Width: 4096, Height: 1716, ReadyState: HaveMetadata},
		{Width: 333, Height: 777, ReadyState: HaveMetadata},
	}
	widths := []float64{100, 320, 641.5, 1000, 5000}
	for _, v := range videos {
		for _, cw := range widths {
			for _, dpr := range []float64{1, 1.25, 2} {
				p, ok := Compute(v, cw, NewConfig("x"), LayoutOptions{DevicePixelRatio: dpr})
				if !ok {
					t.Fatalf("%dx%d cw=%v: ok = false", v.Width, v.Height, cw)
				}
				got := p.DisplayWidth / p.DisplayHeight
				if math.Abs(got-v.AspectRatio()) > 1e-9 {
					t.Errorf("%dx%d cw=%v: aspect = %v, want %v", v.Width, v.Height, cw, got, v.AspectRatio())
				}
				if p.DisplayHeight > float64(v.Height) || p.DisplayWidth > float64(v.Width) {
					t.Errorf("%dx%d cw=%v: display %vx%v exceeds intrinsic size",
						v.Width, v.Height, cw, p.DisplayWidth, p.DisplayHeight)
				}
				if math.Abs(float64(p.BackingWidth)-p.DisplayWidth*dpr) > 0.5 ||
					math.Abs(float64(p.BackingHeight)-p.DisplayHeight*dpr) > 0.5 {
					t.Errorf("%dx%d cw=%v dpr=%v: backing %dx%d, display %vx%v",
						v.Width, v.Height, cw, dpr, p.BackingWidth, p.BackingHeight, p.DisplayWidth, p.DisplayHeight)
				}
			}
		}
	}
}

func TestComputeClampsUpscaling(t *testing.T) {
	small := VideoMetrics{Width: 320, Height: 180, ReadyState: HaveMetadata}
	p, _ := Compute(small, 1280, NewConfig("x"), LayoutOptions{})
	if p.DisplayWidth != 320 || p.DisplayHeight != 180 {
		t.Errorf("display = %vx%v, want 320x180", p.DisplayWidth, p.DisplayHeight)
	}
}

func TestComputeMaxWidth(t *testing.T) {
	tests := []struct {
		name      string
		container float64
		opts      LayoutOptions
		wantW     float64
	}{
		{"uncapped default", 1200, LayoutOptions{}, 1200},
		{"playback uncapped", 1200, PlaybackLayout(), 1200},
		{"upload capped", 1200, UploadPreviewLayout(), 800},
		{"upload below cap", 500, UploadPreviewLayout(), 500},
		{"custom cap", 1200, LayoutOptions{MaxWidth: 480}, 480},
		{"negative cap ignored", 1200, LayoutOptions{MaxWidth: -1}, 1200},
		{"fallback default", 0, LayoutOptions{}, DefaultFallbackWidth},
		{"fallback playback", 0, PlaybackLayout(), PlaybackFallbackWidth},
		{"fallback then cap", 0, LayoutOptions{FallbackWidth: 900, MaxWidth: 800}, 800},
		{"NaN container", math.NaN(), LayoutOptions{}, DefaultFallbackWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Compute(hd, tt.container, NewConfig("x"), tt.opts)
			if !ok {
				t.Fatal("ok = false")
			}
			if p.DisplayWidth != tt.wantW {
				t.Errorf("DisplayWidth = %v, want %v", p.DisplayWidth, tt.wantW)
			}
		})
	}
}

func TestComputeDevicePixelRatioDefaults(t *testing.T) {
	for _, dpr := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		p, _ := Compute(hd, 640, NewConfig("x"), LayoutOptions{DevicePixelRatio: dpr})
		if p.Scale != 1 || p.BackingWidth != 640 {
			t.Errorf("dpr %v: Scale = %v backing width = %d, want 1 and 640", dpr, p.Scale, p.BackingWidth)
		}
	}
}

func TestComputeTinyContainer(t *testing.T) {
	p, ok := Compute(hd, 0.2, NewConfig("x"), LayoutOptions{})
	if !ok {
		t.Fatal("ok = false")
	}
	if p.BackingWidth < 1 || p.BackingHeight < 1 {
		t.Errorf("backing = %dx%d, want at least 1x1", p.BackingWidth, p.BackingHeight)
	}
}

func TestAnchorTable(t *testing.T) {
	const w, h = 640.0, 360.0
	tests := []struct {
		pos      Position
		align    TextAlign
		baseline TextBaseline
		x, y     float64
	}{
		{TopLeft, AlignLeft, BaselineTop, 10, 10},
		{TopRight, AlignRight, BaselineTop, 630, 10},
		{BottomLeft, AlignLeft, BaselineBottom, 10, 350},
		{BottomRight, AlignRight, BaselineBottom, 630, 350},
		{Center, AlignCenter, BaselineMiddle, 320, 180},
		{Position(42), AlignRight, BaselineBottom, 630, 350},
	}
	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			p, ok := Compute(hd, w, Config{Text: "x", Position: tt.pos, Opacity: 1}, LayoutOptions{})
			if !ok {
				t.Fatal("ok = false")
			}
			if p.DisplayWidth != w || p.DisplayHeight != h {
				t.Fatalf("display = %vx%v, want %vx%v", p.DisplayWidth, p.DisplayHeight, w, h)
			}
			if p.Align != tt.align || p.Baseline != tt.baseline {
				t.Errorf("align/baseline = %v/%v, want %v/%v", p.Align, p.Baseline, tt.align, tt.baseline)
			}
			if p.X != tt.x || p.Y != tt.y {
				t.Errorf("anchor = (%v, %v), want (%v, %v)", p.X, p.Y, tt.x, tt.y)
			}
		})
	}
}

func TestUnknownPositionAnchorsBottomRight(t *testing.T) {
	want, _ := Compute(hd, 800, Config{Text: "x", Position: BottomRight, Opacity: 1}, LayoutOptions{})
	got, _ := Compute(hd, 800, Config{Text: "x", Position: ParsePosition("upper-middle"), Opacity: 1}, LayoutOptions{})
	if got != want {
		t.Errorf("unknown position plan = %+v, want %+v", got, want)
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		width, want float64
	}{
		{0, 10},
		{200, 10},
		{350, 10},
		{420, 12},
		{560, 16},
		{630, 18},
		{1920, 18},
	}
	for _, tt := range tests {
		if got := FontSize(tt.width); got != tt.want {
			t.Errorf("FontSize(%v) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestComputeFont(t *testing.T) {
	p, _ := Compute(hd, 640, NewConfig("x"), LayoutOptions{})
	if !p.Font.Bold || p.Font.Family != "sans-serif" || p.Font.Size != 18 {
		t.Errorf("Font = %+v, want bold 18px sans-serif", p.Font)
	}
	if got := p.Font.String(); got != "bold 18px sans-serif" {
		t.Errorf("Font.String() = %q", got)
	}
	if got := (Font{Size: 12.5, Family: "serif"}).String(); got != "normal 12.5px serif" {
		t.Errorf("Font.String() = %q", got)
	}
}

func TestComputeOpacityNotClamped(t *testing.T) {
	for _, op := range []float64{0.1, 0.35, 0.7, 1, 0.05, 1.5} {
		p, _ := Compute(hd, 640, Config{Text: "x", Opacity: op}, LayoutOptions{})
		if p.Fill.A != op {
			t.Errorf("opacity %v: Fill.A = %v", op, p.Fill.A)
		}
	}
}
