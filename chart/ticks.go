// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"golang.org/x/perf/benchunit"
	"gonum.org/v1/plot"
)

// sizeTicks marks a logarithmic message size axis at powers of ten,
// labeled with SI prefixes ("1", "10k", "1M").
type sizeTicks struct{}

func (sizeTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.LogTicks{Prec: -1}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label == "" {
			continue
		}
		ticks[i].Label = sizeLabel(ticks[i].Value)
	}
	return ticks
}

func sizeLabel(v float64) string {
	s := benchunit.CommonScale([]float64{v}, benchunit.Decimal)
	s.Prec = 0
	return s.Format(v)
}
