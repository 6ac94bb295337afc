// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	check := func(spec string, want color.Color) {
		t.Helper()
		got, err := ParseColor(spec)
		require.NoError(t, err, spec)
		require.Equal(t, want, got, spec)
	}
	check("#3182bd", color.NRGBA{0x31, 0x82, 0xbd, 0xff})
	check("tab20c:0", color.NRGBA{0x31, 0x82, 0xbd, 0xff})
	check("tab20c:4", color.NRGBA{0xe6, 0x55, 0x0d, 0xff})
	check(" tab10:3 ", color.NRGBA{0xd6, 0x27, 0x28, 0xff})

	c, err := ParseColor("Paired:1")
	require.NoError(t, err)
	require.NotNil(t, c)

	for _, bad := range []string{"", "red", "#12345", "#gggggg", "tab10:10", "tab10:-1", "tab20c:x", "NoSuchPalette:0"} {
		_, err := ParseColor(bad)
		require.Error(t, err, bad)
	}
}

func TestPalette(t *testing.T) {
	src := map[string]color.Color{"ompi": tab20c[0], "mpich": tab20c[4]}
	p := NewPalette(src)
	src["ompi"] = color.Black

	c, err := p.Color("ompi")
	require.NoError(t, err)
	require.Equal(t, tab20c[0], c)

	_, err = p.Color("impi")
	require.EqualError(t, err, `no color for implementation "impi"`)
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette(map[string]string{"ompi": "tab20c:0", "mpich": "tab20c:4"})
	require.NoError(t, err)
	c, err := p.Color("mpich")
	require.NoError(t, err)
	require.Equal(t, tab20c[4], c)

	_, err = ParsePalette(map[string]string{"ompi": "blue"})
	require.ErrorContains(t, err, "color of ompi")
}
