// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/pcomm/bwplot/chart"
)

// An Exporter writes each figure to a Sink as it is added, once per
// format, as "<figure name>.<format>".
type Exporter struct {
	Sink    Sink
	Formats []string // default "tex"
	Width   vg.Length
	Height  vg.Length
	Legend  chart.LegendStyle
	Log     *zap.Logger
}

// NewExporter returns an Exporter with the default size and legend.
func NewExporter(sink Sink, formats ...string) *Exporter {
	if len(formats) == 0 {
		formats = []string{"tex"}
	}
	return &Exporter{
		Sink:    sink,
		Formats: formats,
		Width:   chart.DefaultWidth,
		Height:  chart.DefaultHeight,
		Legend:  chart.DefaultLegend,
		Log:     zap.NewNop(),
	}
}

func (e *Exporter) Add(ctx context.Context, f *chart.Figure) error {
	for _, format := range e.Formats {
		if err := e.export(ctx, f, format); err != nil {
			return fmt.Errorf("exporting %s: %w", f.Name, err)
		}
	}
	return nil
}

func (e *Exporter) export(ctx context.Context, f *chart.Figure, format string) error {
	wt, err := f.WriterTo(e.Width, e.Height, format, e.Legend)
	if err != nil {
		return err
	}
	name := f.Name + "." + format
	w, err := e.Sink.Create(ctx, name)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	e.Log.Info("exported", zap.String("figure", f.Name), zap.String("file", name))
	return nil
}

func (e *Exporter) Finish(ctx context.Context) error {
	return e.Sink.Close()
}
