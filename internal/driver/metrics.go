// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts the work of a Driver.
type Metrics struct {
	Files   prometheus.Counter
	Rows    prometheus.Counter
	Figures prometheus.Counter
}

// NewMetrics creates the driver counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Files:   prometheus.NewCounter(prometheus.CounterOpts{Name: "bwplot_files_loaded_total", Help: "Measurement files loaded"}),
		Rows:    prometheus.NewCounter(prometheus.CounterOpts{Name: "bwplot_rows_loaded_total", Help: "Measurement rows loaded"}),
		Figures: prometheus.NewCounter(prometheus.CounterOpts{Name: "bwplot_figures_total", Help: "Figures handed to the output"}),
	}
	reg.MustRegister(m.Files, m.Rows, m.Figures)
	return m
}

func (m *Metrics) file(rows int) {
	if m == nil {
		return
	}
	m.Files.Inc()
	m.Rows.Add(float64(rows))
}

func (m *Metrics) figure() {
	if m == nil {
		return
	}
	m.Figures.Inc()
}
