// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	boldSource    = sync.OnceValues(func() (*text.FontSource, error) { return loadSource("Go Bold", gobold.TTF) })
	regularSource = sync.OnceValues(func() (*text.FontSource, error) { return loadSource("Go Regular", goregular.TTF) })
)

func loadSource(name string, data []byte) (*text.FontSource, error) {
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("ggsurface: load %s: %w", name, err)
	}
	return src, nil
}

// fontSource returns the shared source for the requested weight.
func fontSource(bold bool) (*text.FontSource, error) {
	if bold {
		return boldSource()
	}
	return regularSource()
}

// faceKey identifies a cached face.
type faceKey struct {
	bold bool
	size float64
}

// faceCache keeps the faces of recent paints. Sizes change only when the
// display width or the device pixel ratio changes, so it stays small.
type faceCache struct {
	faces map[faceKey]text.Face
}

const maxCachedFaces = 16

func (c *faceCache) face(bold bool, size float64) (text.Face, error) {
	key := faceKey{bold: bold, size: size}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}
	src, err := fontSource(bold)
	if err != nil {
		return nil, err
	}
	if c.faces == nil || len(c.faces) >= maxCachedFaces {
		c.faces = make(map[faceKey]text.Face)
	}
	f := src.Face(size)
	c.faces[key] = f
	return f, nil
}
