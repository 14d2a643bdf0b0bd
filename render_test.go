// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package watermark_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/watermark"
	"github.com/gogpu/watermark/watermarktest"
)

var hd = watermark.VideoMetrics{Width: 1920, Height: 1080, ReadyState: watermark.HaveEnoughData}

func newTarget(dpr, width float64) (watermark.Target, *watermarktest.Surface) {
	surf := watermarktest.NewSurface(dpr)
	return watermark.Target{
		Video:     hd,
		Container: watermark.FixedWidth(width),
		Surface:   surf,
	}, surf
}

func TestDrawEmptyTextIssuesNothing(t *testing.T) {
	for _, pos := range watermark.Positions() {
		target, surf := newTarget(2, 640)
		watermark.Draw(target, watermark.Config{Position: pos, Opacity: 0.5}, watermark.LayoutOptions{})
		if cmds := surf.Commands(); len(cmds) != 0 {
			t.Errorf("%v: %d commands recorded, want none: %v", pos, len(cmds), cmds)
		}
		if w, h := surf.Size(); w != 300 || h != 150 {
			t.Errorf("%v: surface resized to %dx%d", pos, w, h)
		}
	}
}

func TestDrawSkipsWhenNotReady(t *testing.T) {
	surf := watermarktest.NewSurface(1)
	watermark.Draw(watermark.Target{
		Video:     watermark.VideoMetrics{ReadyState: watermark.HaveNothing},
		Container: watermark.FixedWidth(640),
		Surface:   surf,
	}, watermark.NewConfig("Jane Doe"), watermark.LayoutOptions{})
	if cmds := surf.Commands(); len(cmds) != 0 {
		t.Errorf("recorded %v, want nothing", cmds)
	}
}

func TestDrawSkipsIncompleteTarget(t *testing.T) {
	surf := watermarktest.NewSurface(1)
	cfg := watermark.NewConfig("Jane Doe")

	// Neither call may panic or paint.
	watermark.Draw(watermark.Target{Surface: surf, Container: watermark.FixedWidth(640)}, cfg, watermark.LayoutOptions{})
	watermark.Draw(watermark.Target{Video: hd, Container: watermark.FixedWidth(640)}, cfg, watermark.LayoutOptions{})

	surf.SetContextAvailable(false)
	watermark.Draw(watermark.Target{Video: hd, Container: watermark.FixedWidth(640), Surface: surf}, cfg, watermark.LayoutOptions{})

	if cmds := surf.Commands(); len(cmds) != 0 {
		t.Errorf("recorded %v, want nothing", cmds)
	}
}

func TestDrawNilContainerUsesFallback(t *testing.T) {
	surf := watermarktest.NewSurface(1)
	watermark.Draw(watermark.Target{Video: hd, Surface: surf}, watermark.NewConfig("x"), watermark.PlaybackLayout())
	if w, h := surf.DisplaySize(); w != watermark.PlaybackFallbackWidth || h != 450 {
		t.Errorf("display = %vx%v, want 800x450", w, h)
	}
}

func TestDrawResizeFailureSkips(t *testing.T) {
	target, surf := newTarget(1, 640)
	surf.SetResizeError(errors.New("detached"))
	watermark.Draw(target, watermark.NewConfig("x"), watermark.LayoutOptions{})
	if got := surf.FillTexts(); len(got) != 0 {
		t.Errorf("FillText recorded after failed resize: %v", got)
	}
}

func TestDrawEndToEnd(t *testing.T) {
	target, surf := newTarget(2, 640)
	cfg := watermark.Config{Text: "Jane Doe", Position: watermark.TopLeft, Opacity: 0.7}

	watermark.Draw(target, cfg, watermark.LayoutOptions{})

	if w, h := surf.Size(); w != 1280 || h != 720 {
		t.Errorf("backing = %dx%d, want 1280x720", w, h)
	}
	if w, h := surf.DisplaySize(); w != 640 || h != 360 {
		t.Errorf("display = %vx%v, want 640x360", w, h)
	}

	ops := make([]watermarktest.Op, 0)
	for _, c := range surf.Commands() {
		ops = append(ops, c.Op)
	}
	wantOps := []watermarktest.Op{
		watermarktest.OpResize,
		watermarktest.OpSetDisplaySize,
		watermarktest.OpResetTransform,
		watermarktest.OpScale,
		watermarktest.OpClearRect,
		watermarktest.OpSetFont,
		watermarktest.OpSetFillColor,
		watermarktest.OpSetShadow,
		watermarktest.OpSetTextAlign,
		watermarktest.OpSetTextBaseline,
		watermarktest.OpFillText,
	}
	if !slices.Equal(ops, wantOps) {
		t.Fatalf("ops = %v, want %v", ops, wantOps)
	}

	fills := surf.FillTexts()
	if len(fills) != 1 {
		t.Fatalf("FillText calls = %d, want 1", len(fills))
	}
	f := fills[0]
	if f.Text != "Jane Doe" {
		t.Errorf("text = %q", f.Text)
	}
	if f.Args[0] != 10 || f.Args[1] != 10 {
		t.Errorf("anchor = (%v, %v), want (10, 10)", f.Args[0], f.Args[1])
	}
	if f.Align != watermark.AlignLeft || f.Baseline != watermark.BaselineTop {
		t.Errorf("align/baseline = %v/%v", f.Align, f.Baseline)
	}
	if want := (gg.RGBA{R: 1, G: 1, B: 1, A: 0.7}); f.Fill != want {
		t.Errorf("fill = %+v, want %+v", f.Fill, want)
	}
	if f.Shadow != watermark.ShadowColor || f.ShadowBlur != watermark.ShadowBlur {
		t.Errorf("shadow = %+v blur %v", f.Shadow, f.ShadowBlur)
	}
	if f.ScaleX != 2 || f.ScaleY != 2 {
		t.Errorf("transform scale = %vx%v, want 2x2", f.ScaleX, f.ScaleY)
	}
	if !f.Font.Bold || f.Font.Size != 18 {
		t.Errorf("font = %v", f.Font)
	}
}

func TestDrawNoGhosting(t *testing.T) {
	target, surf := newTarget(1.5, 640)

	watermark.Draw(target, watermark.NewConfig("first"), watermark.LayoutOptions{})
	watermark.Draw(target, watermark.NewConfig("second"), watermark.LayoutOptions{})

	if got := surf.Visible(); !slices.Equal(got, []string{"second"}) {
		t.Errorf("visible = %v, want [second]", got)
	}
}

func TestDrawScaleDoesNotAccumulate(t *testing.T) {
	target, surf := newTarget(2, 640)
	for range 3 {
		watermark.Draw(target, watermark.NewConfig("x"), watermark.LayoutOptions{})
	}
	for _, f := range surf.FillTexts() {
		if f.ScaleX != 2 || f.ScaleY != 2 {
			t.Errorf("scale = %vx%v, want 2x2", f.ScaleX, f.ScaleY)
		}
	}
}

func TestDrawUsesSurfaceDevicePixelRatio(t *testing.T) {
	target, surf := newTarget(3, 640)
	watermark.Draw(target, watermark.NewConfig("x"), watermark.LayoutOptions{DevicePixelRatio: 1})
	if w, h := surf.Size(); w != 1920 || h != 1080 {
		t.Errorf("backing = %dx%d, want 1920x1080", w, h)
	}
}

func TestPaintAnchors(t *testing.T) {
	for _, pos := range append(watermark.Positions(), watermark.Position(200)) {
		plan, ok := watermark.Compute(hd, 640, watermark.Config{Text: "x", Position: pos, Opacity: 1}, watermark.LayoutOptions{})
		if !ok {
			t.Fatal("Compute() ok = false")
		}
		surf := watermarktest.NewSurface(1)
		watermark.Paint(surf.Context(), plan)

		fills := surf.FillTexts()
		if len(fills) != 1 {
			t.Fatalf("%v: FillText calls = %d", pos, len(fills))
		}
		align, baseline, x, y := watermark.Anchor(pos, 640, 360)
		f := fills[0]
		if f.Args[0] != x || f.Args[1] != y || f.Align != align || f.Baseline != baseline {
			t.Errorf("%v: got (%v, %v) %v/%v, want (%v, %v) %v/%v",
				pos, f.Args[0], f.Args[1], f.Align, f.Baseline, x, y, align, baseline)
		}
	}
}
