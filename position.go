// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package watermark

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Position selects the corner (or the center) of the video frame the
// watermark is anchored to.
//
// The zero value is BottomRight, which is also the fallback for any value
// outside the enumerated set.
type Position uint8

const (
	// BottomRight anchors the text to the bottom-right corner.
	BottomRight Position = iota
	// TopLeft anchors the text to the top-left corner.
	TopLeft
	// TopRight anchors the text to the top-right corner.
	TopRight
	// BottomLeft anchors the text to the bottom-left corner.
	BottomLeft
	// Center centers the text on the frame.
	Center
)

var positionNames = [...]string{
	BottomRight: "bottom-right",
	TopLeft:     "top-left",
	TopRight:    "top-right",
	BottomLeft:  "bottom-left",
	Center:      "center",
}

// Positions returns every position in the order a picker shows them.
func Positions() []Position {
	return []Position{TopLeft, TopRight, BottomLeft, BottomRight, Center}
}

// ParsePosition maps a kebab-case name such as "top-left" to a Position.
// Unknown names map to BottomRight.
func ParsePosition(s string) Position {
	for p, name := range positionNames {
		if name == s {
			return Position(p)
		}
	}
	return BottomRight
}

// Valid reports whether p is one of the five enumerated positions.
func (p Position) Valid() bool {
	return int(p) < len(positionNames)
}

// String returns the kebab-case name. Invalid positions report the name of
// the position they render as.
func (p Position) String() string {
	if !p.Valid() {
		return positionNames[BottomRight]
	}
	return positionNames[p]
}

// Label returns a human readable name, e.g. "Top Left".
func (p Position) Label() string {
	// Casers are stateful and must not be shared between goroutines.
	return cases.Title(language.English).String(strings.ReplaceAll(p.String(), "-", " "))
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Like ParsePosition it
// never fails: unknown names decode as BottomRight.
func (p *Position) UnmarshalText(b []byte) error {
	*p = ParsePosition(string(b))
	return nil
}

// TextAlign is the horizontal alignment of text relative to its anchor x.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// TextBaseline is the vertical alignment of text relative to its anchor y.
type TextBaseline uint8

const (
	BaselineTop TextBaseline = iota
	BaselineMiddle
	BaselineBottom
)

func (b TextBaseline) String() string {
	switch b {
	case BaselineTop:
		return "top"
	case BaselineMiddle:
		return "middle"
	case BaselineBottom:
		return "bottom"
	default:
		return "unknown"
	}
}
