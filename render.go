// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package watermark

// Draw repaints the watermark for t. It does nothing when the target is
// incomplete, the surface has no drawing context, the text is empty or the
// video has not loaded its metadata; a later call retries.
//
// The device pixel ratio comes from the surface and overrides
// opts.DevicePixelRatio.
func Draw(t Target, cfg Config, opts LayoutOptions) {
	draw(t, cfg, opts)
}

// draw is Draw reporting whether a paint happened.
func draw(t Target, cfg Config, opts LayoutOptions) bool {
	if t.Video == nil || t.Surface == nil {
		return false
	}
	ctx := t.Surface.Context()
	if ctx == nil {
		return false
	}

	var containerWidth float64
	if t.Container != nil {
		containerWidth = t.Container.Width()
	}
	opts.DevicePixelRatio = t.Surface.DevicePixelRatio()

	plan, ok := Compute(t.Video.VideoMetrics(), containerWidth, cfg, opts)
	if !ok {
		return false
	}
	if err := t.Surface.Resize(plan.BackingWidth, plan.BackingHeight); err != nil {
		Logger().Debug("watermark: surface resize failed",
			"width", plan.BackingWidth, "height", plan.BackingHeight, "err", err)
		return false
	}
	t.Surface.SetDisplaySize(plan.DisplayWidth, plan.DisplayHeight)
	Paint(ctx, plan)
	return true
}

// Paint executes p on ctx: reset and scale the transform, clear the whole
// backing store, then draw the text.
func Paint(ctx Context, p Plan) {
	ctx.ResetTransform()
	ctx.Scale(p.Scale, p.Scale)
	ctx.ClearRect(0, 0, float64(p.BackingWidth), float64(p.BackingHeight))

	ctx.SetFont(p.Font)
	ctx.SetFillColor(p.Fill)
	ctx.SetShadow(p.Shadow.Color, p.Shadow.Blur)
	ctx.SetTextAlign(p.Align)
	ctx.SetTextBaseline(p.Baseline)
	ctx.FillText(p.Text, p.X, p.Y)
}
