// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/palette/brewer"
)

// A Palette maps implementation tags to line colors.
// A Palette is immutable once constructed.
type Palette struct {
	colors map[string]color.Color
}

// NewPalette returns a Palette holding a copy of colors.
func NewPalette(colors map[string]color.Color) Palette {
	m := make(map[string]color.Color, len(colors))
	for tag, c := range colors {
		m[tag] = c
	}
	return Palette{colors: m}
}

// ParsePalette builds a Palette from color specifications (see
// ParseColor).
func ParsePalette(specs map[string]string) (Palette, error) {
	m := make(map[string]color.Color, len(specs))
	for tag, spec := range specs {
		c, err := ParseColor(spec)
		if err != nil {
			return Palette{}, fmt.Errorf("color of %s: %w", tag, err)
		}
		m[tag] = c
	}
	return Palette{colors: m}, nil
}

// Color returns the color of tag. It is an error for tag to have no
// color.
func (p Palette) Color(tag string) (color.Color, error) {
	c, ok := p.colors[tag]
	if !ok {
		return nil, fmt.Errorf("no color for implementation %q", tag)
	}
	return c, nil
}

// Categorical color tables of matplotlib.
var (
	tab10 = hexColors(
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	)
	tab20c = hexColors(
		"#3182bd", "#6baed6", "#9ecae1", "#c6dbef",
		"#e6550d", "#fd8d3c", "#fdae6b", "#fdd0a2",
		"#31a354", "#74c476", "#a1d99b", "#c7e9c0",
		"#756bb1", "#9e9ac8", "#bcbddc", "#dadaeb",
		"#636363", "#969696", "#bdbdbd", "#d9d9d9",
	)
)

func hexColors(hex ...string) []color.Color {
	cs := make([]color.Color, len(hex))
	for i, h := range hex {
		c, err := parseHex(h)
		if err != nil {
			panic(err)
		}
		cs[i] = c
	}
	return cs
}

// ParseColor parses a color specification. It accepts
//
//   - "#rrggbb", a hexadecimal RGB color;
//   - "tab10:N" and "tab20c:N", the Nth color of a matplotlib table;
//   - "Name:N", the Nth color of the ColorBrewer palette Name, such as
//     "Paired:3" or "Set1:0".
func ParseColor(spec string) (color.Color, error) {
	spec = strings.TrimSpace(spec)
	if strings.HasPrefix(spec, "#") {
		return parseHex(spec)
	}
	name, idx, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("bad color %q: want #rrggbb or palette:index", spec)
	}
	i, err := strconv.Atoi(idx)
	if err != nil || i < 0 {
		return nil, fmt.Errorf("bad color %q: bad palette index", spec)
	}

	var cs []color.Color
	switch name {
	case "tab10":
		cs = tab10
	case "tab20c":
		cs = tab20c
	default:
		// ColorBrewer palettes start at 3 colors.
		n := i + 1
		if n < 3 {
			n = 3
		}
		p, err := brewer.GetPalette(brewer.TypeAny, name, n)
		if err != nil {
			return nil, fmt.Errorf("bad color %q: %w", spec, err)
		}
		cs = p.Colors()
	}
	if i >= len(cs) {
		return nil, fmt.Errorf("bad color %q: palette %s has %d colors", spec, name, len(cs))
	}
	return cs[i], nil
}

func parseHex(s string) (color.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("bad color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}
