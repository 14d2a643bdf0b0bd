// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/watermark"
)

// drawContext implements watermark.Context on top of a gg.Context.
//
// The transform is tracked here rather than on the gg.Context: text is
// rasterized at device resolution by scaling the face size, which keeps
// glyph edges crisp at fractional device pixel ratios.
type drawContext struct {
	target  func() *gg.Context
	onPaint func()

	sx, sy     float64
	font       watermark.Font
	fill       gg.RGBA
	shadow     gg.RGBA
	shadowBlur float64
	align      watermark.TextAlign
	baseline   watermark.TextBaseline

	faces faceCache
}

func newDrawContext(target func() *gg.Context, onPaint func()) *drawContext {
	return &drawContext{
		target:  target,
		onPaint: onPaint,
		sx:      1,
		sy:      1,
		fill:    gg.Black,
	}
}

func (c *drawContext) ResetTransform() {
	c.sx, c.sy = 1, 1
}

func (c *drawContext) Scale(sx, sy float64) {
	c.sx *= sx
	c.sy *= sy
}

// ClearRect sets the device pixels covered by the rectangle to transparent.
func (c *drawContext) ClearRect(x, y, width, height float64) {
	dc := c.target()
	if dc == nil {
		return
	}
	pm := dc.ResizeTarget()
	w, h := pm.Width(), pm.Height()

	x0 := clampInt(int(math.Floor(x*c.sx)), 0, w)
	y0 := clampInt(int(math.Floor(y*c.sy)), 0, h)
	x1 := clampInt(int(math.Ceil((x+width)*c.sx)), 0, w)
	y1 := clampInt(int(math.Ceil((y+height)*c.sy)), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	if x0 == 0 && y0 == 0 && x1 == w && y1 == h {
		pm.Clear(gg.Transparent)
	} else {
		for py := y0; py < y1; py++ {
			for px := x0; px < x1; px++ {
				pm.SetPixel(px, py, gg.Transparent)
			}
		}
	}
	c.painted()
}

func (c *drawContext) SetFont(f watermark.Font) { c.font = f }

func (c *drawContext) SetFillColor(col gg.RGBA) { c.fill = col }

func (c *drawContext) SetShadow(col gg.RGBA, blur float64) {
	c.shadow, c.shadowBlur = col, blur
}

func (c *drawContext) SetTextAlign(a watermark.TextAlign) { c.align = a }

func (c *drawContext) SetTextBaseline(b watermark.TextBaseline) { c.baseline = b }

// FillText draws s anchored at (x, y) in transformed coordinates.
func (c *drawContext) FillText(s string, x, y float64) {
	dc := c.target()
	if dc == nil || s == "" || !(c.font.Size > 0) {
		return
	}
	face, err := c.faces.face(c.font.Bold, c.font.Size*c.sy)
	if err != nil {
		watermark.Logger().Warn("ggsurface: no font face", "err", err)
		return
	}

	width := face.Advance(s)
	m := face.Metrics()
	px, py := x*c.sx, y*c.sy
	switch c.align {
	case watermark.AlignCenter:
		px -= width / 2
	case watermark.AlignRight:
		px -= width
	}
	switch c.baseline {
	case watermark.BaselineTop:
		py += m.Ascent
	case watermark.BaselineMiddle:
		py += (m.Ascent - m.Descent) / 2
	case watermark.BaselineBottom:
		py -= m.Descent
	}

	if c.shadow.A > 0 && c.shadowBlur > 0 {
		// The shadow takes the fill alpha into account, like a canvas.
		sh := c.shadow
		sh.A *= c.fill.A
		newGlyphShadow(s, face, px, py, c.shadowBlur*c.sx).composite(dc.ResizeTarget(), sh)
	}
	dc.SetFont(face)
	dc.SetRGBA(c.fill.R, c.fill.G, c.fill.B, c.fill.A)
	dc.DrawString(s, px, py)
	c.painted()
}

func (c *drawContext) painted() {
	if c.onPaint != nil {
		c.onPaint()
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

var _ watermark.Context = (*drawContext)(nil)
