// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"strings"

	"golang.org/x/perf/benchfmt"
	"golang.org/x/perf/benchproc"
)

// A Filter selects points of a Grid using the benchmark filter syntax
// of golang.org/x/perf/benchproc.
//
// Each point is matched as the benchmark named by Point.BenchName, so
// ".name" refers to the test name and "/bcount", "/dsize" and
// "/stride" to the numeric parameters. For example,
//
//	.name:bw_dtype /stride:(16 OR 64)
//
// The run identifier is available as the "run" configuration key.
type Filter struct {
	runID string
	f     *benchproc.Filter
}

// NewFilter parses query. An empty query matches every point.
func NewFilter(query, runID string) (*Filter, error) {
	if strings.TrimSpace(query) == "" {
		query = "*"
	}
	f, err := benchproc.NewFilter(query)
	if err != nil {
		return nil, err
	}
	return &Filter{runID: runID, f: f}, nil
}

// Match reports whether p is selected by f. A nil Filter matches
// everything.
func (f *Filter) Match(p Point) (bool, error) {
	if f == nil {
		return true, nil
	}
	res := &benchfmt.Result{
		Name:   benchfmt.Name(p.BenchName()),
		Iters:  1,
		Values: []benchfmt.Value{{Value: 1, Unit: "figures"}},
	}
	if f.runID != "" {
		res.SetConfig("run", f.runID)
	}
	m, err := f.f.Match(res)
	if err != nil {
		return false, err
	}
	return m.Any(), nil
}
