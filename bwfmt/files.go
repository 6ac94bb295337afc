// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwfmt

import (
	"fmt"
	"path/filepath"

	"github.com/pcomm/bwplot/sweep"
)

// A Layout locates the measurement files of one benchmark run.
//
// The harness writes one file per implementation and sweep point:
//
//	<run id>/<implementation>/<test>_bcount<b>_dsize<d>_stride<s>.txt
type Layout struct {
	// Root is the directory containing the run directory. If empty,
	// paths are relative to the working directory.
	Root string

	// RunID names the benchmark run.
	RunID string
}

// Path returns the path of the file holding the measurements of
// implementation tag at point p.
func (l Layout) Path(tag string, p sweep.Point) string {
	rel := fmt.Sprintf("%s/%s/%s_bcount%d_dsize%d_stride%d.txt", l.RunID, tag, p.Test, p.BufferCount, p.DataSize, p.Stride)
	if l.Root == "" {
		return rel
	}
	return filepath.Join(l.Root, filepath.FromSlash(rel))
}

// Load reads the measurements of implementation tag at point p.
func (l Layout) Load(tag string, p sweep.Point) (*Measurements, error) {
	return ReadFile(l.Path(tag, p))
}
