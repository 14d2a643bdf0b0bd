// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package watermarktest provides recording implementations of the
// watermark interfaces for use in tests.
//
// Surface records every call made on it and on its Context as a Command,
// and keeps a simple model of what is visible: resizing or clearing the
// whole surface drops previously drawn text.
package watermarktest

import (
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/watermark"
)

// Op identifies a recorded call.
type Op uint8

const (
	OpResize Op = iota
	OpSetDisplaySize
	OpResetTransform
	OpScale
	OpClearRect
	OpSetFont
	OpSetFillColor
	OpSetShadow
	OpSetTextAlign
	OpSetTextBaseline
	OpFillText
)

var opNames = [...]string{
	OpResize:          "Resize",
	OpSetDisplaySize:  "SetDisplaySize",
	OpResetTransform:  "ResetTransform",
	OpScale:           "Scale",
	OpClearRect:       "ClearRect",
	OpSetFont:         "SetFont",
	OpSetFillColor:    "SetFillColor",
	OpSetShadow:       "SetShadow",
	OpSetTextAlign:    "SetTextAlign",
	OpSetTextBaseline: "SetTextBaseline",
	OpFillText:        "FillText",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Op(?)"
}

// Command is one recorded call. Args holds the numeric arguments in call
// order. FillText commands also capture the drawing state in effect.
type Command struct {
	Op   Op
	Args []float64
	Text string

	Font       watermark.Font
	Fill       gg.RGBA
	Shadow     gg.RGBA
	ShadowBlur float64
	Align      watermark.TextAlign
	Baseline   watermark.TextBaseline
	ScaleX     float64
	ScaleY     float64
}

// Surface is a recording watermark.Surface. The zero value is not usable;
// call NewSurface.
type Surface struct {
	mu sync.Mutex

	dpr       float64
	noContext bool
	resizeErr error

	width, height     int
	displayW, displayH float64
	visible           []string

	sx, sy     float64
	font       watermark.Font
	fill       gg.RGBA
	shadow     gg.RGBA
	shadowBlur float64
	align      watermark.TextAlign
	baseline   watermark.TextBaseline

	cmds []Command
}

// NewSurface returns an empty 300×150 surface, the default canvas size.
func NewSurface(dpr float64) *Surface {
	return &Surface{dpr: dpr, width: 300, height: 150, sx: 1, sy: 1}
}

// SetContextAvailable controls whether Context returns a context.
func (s *Surface) SetContextAvailable(ok bool) {
	s.mu.Lock()
	s.noContext = !ok
	s.mu.Unlock()
}

// SetResizeError makes subsequent Resize calls fail with err.
func (s *Surface) SetResizeError(err error) {
	s.mu.Lock()
	s.resizeErr = err
	s.mu.Unlock()
}

// SetDevicePixelRatio changes the reported device pixel ratio.
func (s *Surface) SetDevicePixelRatio(dpr float64) {
	s.mu.Lock()
	s.dpr = dpr
	s.mu.Unlock()
}

// Resize implements watermark.Surface. Like a canvas, resizing resets the
// transform and drops the content.
func (s *Surface) Resize(width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resizeErr != nil {
		return s.resizeErr
	}
	s.record(Command{Op: OpResize, Args: []float64{float64(width), float64(height)}})
	s.width, s.height = width, height
	s.visible = nil
	s.sx, s.sy = 1, 1
	return nil
}

// SetDisplaySize implements watermark.Surface.
func (s *Surface) SetDisplaySize(width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Command{Op: OpSetDisplaySize, Args: []float64{width, height}})
	s.displayW, s.displayH = width, height
}

// DevicePixelRatio implements watermark.Surface.
func (s *Surface) DevicePixelRatio() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dpr
}

// Context implements watermark.Surface.
func (s *Surface) Context() watermark.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.noContext {
		return nil
	}
	return (*recordingContext)(s)
}

// Size returns the backing store size.
func (s *Surface) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// DisplaySize returns the last display size set.
func (s *Surface) DisplaySize() (width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displayW, s.displayH
}

// Commands returns a copy of the recorded commands.
func (s *Surface) Commands() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Command, len(s.cmds))
	copy(out, s.cmds)
	return out
}

// FillTexts returns the recorded FillText commands.
func (s *Surface) FillTexts() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Command
	for _, c := range s.cmds {
		if c.Op == OpFillText {
			out = append(out, c)
		}
	}
	return out
}

// Visible returns the texts currently on the surface.
func (s *Surface) Visible() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.visible))
	copy(out, s.visible)
	return out
}

// Reset forgets the recorded commands. The surface state is kept.
func (s *Surface) Reset() {
	s.mu.Lock()
	s.cmds = nil
	s.mu.Unlock()
}

// record appends c. s.mu must be held.
func (s *Surface) record(c Command) {
	s.cmds = append(s.cmds, c)
}

// recordingContext is the drawing context view of a Surface.
type recordingContext Surface

func (c *recordingContext) surface() *Surface { return (*Surface)(c) }

func (c *recordingContext) ResetTransform() {
	s := c.surface()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Command{Op: OpResetTransform})
	s.sx, s.sy = 1, 1
}

func (c *recordingContext) Scale(sx, sy float64) {
	s := c.surface()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Command{Op: OpScale, Args: []float64{sx, sy}})
	s.sx *= sx
	s.sy *= sy
}

func (c *recordingContext) ClearRect(x, y, width, height float64) {
	s := c.surface()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Command{Op: OpClearRect, Args: []float64{x, y, width, height}})
	// Content is modelled per surface, so only a full clear drops it.
	if x*s.sx <= 0 && y*s.sy <= 0 &&
		(x+width)*s.sx >= float64(s.width) && (y+height)*s.sy >= float64(s.height) {
		s.visible = nil
	}
}

func (c *recordingContext) SetFont(f watermark.Font) {
	s := c.surface()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Command{Op: OpSetFont, Font: f})
	s.font = f
}

func (c *recordingContext) SetFillColor(col gg.RGBA) {
	s := c.surface()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Command{Op: OpSetFillColor, Fill: col})
	s.fill = col
}

func (c *recordingContext) SetShadow(col gg.RGBA, blur float64) {
	s := c.surface()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Command{Op: OpSetShadow, Shadow: col, ShadowBlur: blur})
	s.shadow, s.shadowBlur = col, blur
}

func (c *recordingContext) SetTextAlign(a watermark.TextAlign) {
	s := c.surface()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Command{Op: OpSetTextAlign, Align: a})
	s.align = a
}

func (c *recordingContext) SetTextBaseline(b watermark.TextBaseline) {
	s := c.surface()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Command{Op: OpSetTextBaseline, Baseline: b})
	s.baseline = b
}

func (c *recordingContext) FillText(text string, x, y float64) {
	s := c.surface()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Command{
		Op:         OpFillText,
		Args:       []float64{x, y},
		Text:       text,
		Font:       s.font,
		Fill:       s.fill,
		Shadow:     s.shadow,
		ShadowBlur: s.shadowBlur,
		Align:      s.align,
		Baseline:   s.baseline,
		ScaleX:     s.sx,
		ScaleY:     s.sy,
	})
	s.visible = append(s.visible, text)
}

// Video is a mutable watermark.VideoSource.
type Video struct {
	mu sync.Mutex
	m  watermark.VideoMetrics
}

// NewVideo returns a video with the given metrics.
func NewVideo(m watermark.VideoMetrics) *Video {
	return &Video{m: m}
}

// Set replaces the metrics.
func (v *Video) Set(m watermark.VideoMetrics) {
	v.mu.Lock()
	v.m = m
	v.mu.Unlock()
}

// VideoMetrics implements watermark.VideoSource.
func (v *Video) VideoMetrics() watermark.VideoMetrics {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.m
}

// Container is a mutable watermark.Container.
type Container struct {
	mu sync.Mutex
	w  float64
}

// NewContainer returns a container of the given width.
func NewContainer(width float64) *Container {
	return &Container{w: width}
}

// SetWidth changes the width.
func (c *Container) SetWidth(w float64) {
	c.mu.Lock()
	c.w = w
	c.mu.Unlock()
}

// Width implements watermark.Container.
func (c *Container) Width() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w
}
