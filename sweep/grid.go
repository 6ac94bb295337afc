// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sweep enumerates the parameter grid of a bandwidth benchmark
// run.
//
// A run sweeps every combination of test name, buffer count, data
// size and stride. Each combination is a Point and produces exactly one
// figure.
package sweep

import (
	"fmt"
	"iter"
)

// A Point is one combination of sweep parameters.
type Point struct {
	Test        string
	BufferCount int
	DataSize    int
	Stride      int
}

// Name returns the name the benchmark harness uses for p, for example
// "bw_dtype_bcount4_dsize16_stride32". It names both the measurement
// files and the figure.
func (p Point) Name() string {
	return fmt.Sprintf("%s_bcount%d_dsize%d_stride%d", p.Test, p.BufferCount, p.DataSize, p.Stride)
}

// BenchName returns p as a Go benchmark name with sub-name keys, for
// example "bw_dtype/bcount=4/dsize=16/stride=32".
func (p Point) BenchName() string {
	return fmt.Sprintf("%s/bcount=%d/dsize=%d/stride=%d", p.Test, p.BufferCount, p.DataSize, p.Stride)
}

func (p Point) String() string {
	return p.Name()
}

// A Grid is the set of parameter lists of a sweep.
type Grid struct {
	Tests        []string
	BufferCounts []int
	DataSizes    []int
	Strides      []int
}

// Len returns the number of points in g.
func (g Grid) Len() int {
	return len(g.Tests) * len(g.BufferCounts) * len(g.DataSizes) * len(g.Strides)
}

// All returns an iterator over the Cartesian product of g's lists.
//
// Points are produced with the test name varying slowest, then buffer
// count, then data size, and stride varying fastest. Duplicate list
// entries produce duplicate points.
func (g Grid) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, test := range g.Tests {
			for _, bcount := range g.BufferCounts {
				for _, dsize := range g.DataSizes {
					for _, stride := range g.Strides {
						if !yield(Point{test, bcount, dsize, stride}) {
							return
						}
					}
				}
			}
		}
	}
}

// Points returns all points of g in iteration order.
func (g Grid) Points() []Point {
	pts := make([]Point, 0, g.Len())
	for p := range g.All() {
		pts = append(pts, p)
	}
	return pts
}
