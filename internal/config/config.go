// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of a bandwidth plotting run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/pcomm/bwplot/chart"
	"github.com/pcomm/bwplot/sweep"
)

// Config describes one run: where the measurement files are, which
// sweep points to plot, and what to do with the figures.
type Config struct {
	// RunID names the benchmark run directory.
	RunID string `yaml:"run_id"`
	// Root is the directory containing the run directory.
	Root string `yaml:"root"`

	Tests        []string `yaml:"tests"`
	BufferCounts []int    `yaml:"bcounts"`
	DataSizes    []int    `yaml:"dsizes"`
	Strides      []int    `yaml:"strides"`

	// Implementations lists the implementation tags in display
	// order.
	Implementations []string `yaml:"implementations"`
	// Colors maps each implementation tag to a color
	// specification (see chart.ParseColor).
	Colors map[string]string `yaml:"colors"`

	// Filter selects a subset of the sweep points (see
	// sweep.NewFilter).
	Filter string `yaml:"filter"`

	Output Output `yaml:"output"`
}

// Output selects the output strategies.
type Output struct {
	// Show displays the figures once the run is finished.
	Show bool `yaml:"show"`
	// Addr is the address of the figure page.
	Addr string `yaml:"addr"`

	// Export writes the figures to Dir, which is a directory or a
	// gs://bucket/prefix location.
	Export  bool     `yaml:"export"`
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"`
	// LegendAbove moves the legend of exported figures above the
	// axes.
	LegendAbove bool `yaml:"legend_above"`
	// Credentials is a service account key file for gs:// exports.
	Credentials string `yaml:"gcs_credentials"`

	// Width and Height are the figure size in inches.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Benchfmt and CSV, if set, name files receiving the plotted
	// data.
	Benchfmt string `yaml:"benchfmt"`
	CSV      string `yaml:"csv"`
}

// Default returns the configuration of the stride sweep run of
// November 2022.
func Default() *Config {
	return &Config{
		RunID:           "benchme_2022-11-10-1823-cf76_581609",
		Tests:           []string{"bw_dtype"},
		BufferCounts:    []int{1 << 2, 1 << 5},
		DataSizes:       []int{1 << 4},
		Strides:         []int{1 << 4, 1 << 5, 1 << 6},
		Implementations: []string{"mpich", "ompi"},
		Colors: map[string]string{
			"ompi":  "tab20c:0",
			"mpich": "tab20c:4",
		},
		Output: Output{
			Show:        true,
			Addr:        "localhost:8080",
			Export:      false,
			Dir:         "figures/results",
			Formats:     []string{"tex"},
			LegendAbove: true,
			Width:       6.4,
			Height:      4.8,
		},
	}
}

// Load reads the YAML file at path on top of the default
// configuration. Unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Parse is like Load, but reads the YAML document data. name is used
// in error messages.
func Parse(data []byte, name string) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// exportFormats are the figure formats gonum/plot can write.
var exportFormats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tex", "tif", "tiff"}

// Validate reports every problem with c.
func (c *Config) Validate() error {
	var err error
	add := func(format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf(format, args...))
	}

	if c.RunID == "" {
		add("missing run_id")
	}
	if len(c.Tests) == 0 {
		add("no tests")
	}
	for _, l := range []struct {
		name string
		vals []int
	}{{"bcounts", c.BufferCounts}, {"dsizes", c.DataSizes}, {"strides", c.Strides}} {
		if len(l.vals) == 0 {
			add("no %s", l.name)
		}
		for _, v := range l.vals {
			if v <= 0 {
				add("%s: %d is not positive", l.name, v)
			}
		}
	}
	for _, test := range c.Tests {
		if test == "" || strings.ContainsAny(test, `/\`) {
			add("bad test name %q", test)
		}
	}

	if len(c.Implementations) == 0 {
		add("no implementations")
	}
	for i, tag := range c.Implementations {
		if tag == "" || strings.ContainsAny(tag, `/\`) {
			add("bad implementation tag %q", tag)
		}
		if slices.Contains(c.Implementations[:i], tag) {
			add("duplicate implementation %q", tag)
		}
		if _, ok := c.Colors[tag]; !ok {
			add("no color for implementation %q", tag)
		}
	}
	// Palette parses every entry, listed or not.
	for _, tag := range slices.Sorted(maps.Keys(c.Colors)) {
		if _, cerr := chart.ParseColor(c.Colors[tag]); cerr != nil {
			add("color of %q: %v", tag, cerr)
		}
	}

	o := c.Output
	if o.Export {
		if o.Dir == "" {
			add("export enabled but no output dir")
		}
		if len(o.Formats) == 0 {
			add("export enabled but no formats")
		}
		for _, f := range o.Formats {
			if !slices.Contains(exportFormats, f) {
				add("unknown export format %q", f)
			}
		}
	}
	if o.Show && o.Addr == "" {
		add("show enabled but no addr")
	}
	if o.Width <= 0 || o.Height <= 0 {
		add("bad figure size %gx%g", o.Width, o.Height)
	}
	if _, ferr := sweep.NewFilter(c.Filter, c.RunID); ferr != nil {
		add("filter: %v", ferr)
	}
	return err
}

// Grid returns the sweep of c.
func (c *Config) Grid() sweep.Grid {
	return sweep.Grid{
		Tests:        c.Tests,
		BufferCounts: c.BufferCounts,
		DataSizes:    c.DataSizes,
		Strides:      c.Strides,
	}
}

// Palette returns the implementation colors of c.
func (c *Config) Palette() (chart.Palette, error) {
	return chart.ParsePalette(c.Colors)
}

// ExportLegend returns the legend style of exported figures.
func (c *Config) ExportLegend() chart.LegendStyle {
	l := chart.DefaultLegend
	if c.Output.LegendAbove {
		l.Placement = chart.AboveCenter
	}
	return l
}
