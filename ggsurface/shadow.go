// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// gaussianKernel returns a normalized 1D gaussian kernel with sigma equal
// to radius. The kernel has 2*ceil(3*radius)+1 taps; radius <= 0 yields
// the identity kernel.
func gaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1}
	}
	half := kernelHalf(radius)
	kernel := make([]float32, 2*half+1)
	twoSigmaSq := 2 * radius * radius
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

func kernelHalf(radius float64) int {
	if radius <= 0 {
		return 0
	}
	return int(math.Ceil(radius * 3))
}

// kernels caches gaussian kernels by radius quantized to 0.01. A
// watermark uses one blur per device pixel ratio, so the cache stays
// small; it is reset when it reaches maxKernels entries.
var kernels = struct {
	sync.Mutex
	m map[int][]float32
}{m: make(map[int][]float32)}

const maxKernels = 16

func cachedKernel(radius float64) []float32 {
	key := int(radius * 100)
	kernels.Lock()
	defer kernels.Unlock()
	if k, ok := kernels.m[key]; ok {
		return k
	}
	if len(kernels.m) >= maxKernels {
		clear(kernels.m)
	}
	k := gaussianKernel(radius)
	kernels.m[key] = k
	return k
}

// blurAlpha blurs the w x h coverage in src into dst with a separable
// gaussian. Samples past the edges repeat the edge value.
func blurAlpha(src, dst []float32, w, h int, radius float64) {
	kernel := cachedKernel(radius)
	half := len(kernel) / 2
	tmp := make([]float32, w*h)

	for y := range h {
		row := src[y*w : (y+1)*w]
		for x := range w {
			var sum float32
			for k, kv := range kernel {
				sum += row[clampInt(x+k-half, 0, w-1)] * kv
			}
			tmp[y*w+x] = sum
		}
	}
	for y := range h {
		for x := range w {
			var sum float32
			for k, kv := range kernel {
				sum += tmp[clampInt(y+k-half, 0, h-1)*w+x] * kv
			}
			dst[y*w+x] = sum
		}
	}
}

// glyphShadow is the blurred coverage of a run of glyphs, positioned in
// device pixels.
type glyphShadow struct {
	bounds image.Rectangle
	alpha  []float32
}

// newGlyphShadow rasterizes s with its baseline origin at (x, y) into a
// coverage buffer and blurs it by radius device pixels. The buffer covers
// the text box padded by the kernel reach.
func newGlyphShadow(s string, face text.Face, x, y, radius float64) glyphShadow {
	m := face.Metrics()
	pad := kernelHalf(radius) + 1
	r := image.Rect(
		int(math.Floor(x))-pad,
		int(math.Floor(y-m.Ascent))-pad,
		int(math.Ceil(x+face.Advance(s)))+pad,
		int(math.Ceil(y+m.Descent))+pad,
	)
	mask := image.NewAlpha(r)
	text.Draw(mask, s, face, x, y, color.Opaque)

	w, h := r.Dx(), r.Dy()
	cov := make([]float32, w*h)
	for py := range h {
		for px := range w {
			cov[py*w+px] = float32(mask.Pix[py*mask.Stride+px]) / 255
		}
	}
	blurred := make([]float32, w*h)
	blurAlpha(cov, blurred, w, h, radius)
	return glyphShadow{bounds: r, alpha: blurred}
}

// composite paints the shadow in col over the pixmap with source-over.
// Pixmap pixels hold straight (non-premultiplied) color.
func (g glyphShadow) composite(pm *gg.Pixmap, col gg.RGBA) {
	r := g.bounds.Intersect(image.Rect(0, 0, pm.Width(), pm.Height()))
	w := g.bounds.Dx()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sa := float64(g.alpha[(y-g.bounds.Min.Y)*w+(x-g.bounds.Min.X)]) * col.A
			if sa <= 0 {
				continue
			}
			d := pm.GetPixel(x, y)
			a := sa + d.A*(1-sa)
			if a <= 0 {
				continue
			}
			k := d.A * (1 - sa)
			pm.SetPixel(x, y, gg.RGBA{
				R: (col.R*sa + d.R*k) / a,
				G: (col.G*sa + d.G*k) / a,
				B: (col.B*sa + d.B*k) / a,
				A: a,
			})
		}
	}
}
