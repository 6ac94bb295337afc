// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Bwplot plots the bandwidth measurements of a point-to-point MPI
// benchmark run, comparing implementations across a parameter sweep.
//
// Usage:
//
//	bwplot [flags]
//
// For every combination of test, buffer count, data size and stride,
// bwplot reads one file per implementation,
//
//	<run>/<impl>/<test>_bcount<b>_dsize<d>_stride<s>.txt
//
// and draws bandwidth against message size, one line per
// implementation. By default the figures are shown on a local web page
// once all of them are built; -export writes them to files instead.
//
// The sweep, the implementations and their colors come from built-in
// defaults, optionally overridden by a YAML file given with -config,
// and then by flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/pcomm/bwplot/bwfmt"
	"github.com/pcomm/bwplot/internal/config"
	"github.com/pcomm/bwplot/internal/driver"
	"github.com/pcomm/bwplot/output"
	"github.com/pcomm/bwplot/sweep"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		fail("%v\n", err)
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "bwplot: "+format, args...)
	os.Exit(1)
}

// newLogger is replaced in tests.
var newLogger = func(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("bwplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage of bwplot:\n\tbwplot [flags]\n")
		fs.PrintDefaults()
	}

	var (
		configFile  = fs.String("config", "", "read settings from YAML `file`")
		runID       = fs.String("run", "", "benchmark run `id` (directory name)")
		root        = fs.String("root", "", "`directory` containing the run directory")
		filter      = fs.String("filter", "", "plot only the sweep points matching `query`, e.g. \"/stride:16\"")
		export      = fs.Bool("export", false, "write the figures to files")
		show        = fs.Bool("show", true, "show the figures on a local web page")
		outDir      = fs.String("o", "", "export to `dir` (a directory or gs://bucket/prefix)")
		formats     = fs.String("format", "", "comma-separated export `formats` (tex, pdf, svg, png, eps)")
		legendAbove = fs.Bool("legend-above", true, "place the legend of exported figures above the axes")
		addr        = fs.String("http", "", "serve the figure page on `address`")
		benchfmtOut = fs.String("benchfmt", "", "also write the plotted data in Go benchmark format to `file`")
		csvOut      = fs.String("csv", "", "also write the plotted data as CSV to `file`")
		credentials = fs.String("gcs-credentials", "", "service account key `file` for gs:// exports")
		verbose     = fs.Bool("v", false, "log debug messages")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return flag.ErrHelp
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "run":
			cfg.RunID = *runID
		case "root":
			cfg.Root = *root
		case "filter":
			cfg.Filter = *filter
		case "export":
			cfg.Output.Export = *export
		case "show":
			cfg.Output.Show = *show
		case "o":
			cfg.Output.Dir = *outDir
		case "format":
			cfg.Output.Formats = strings.Split(*formats, ",")
		case "legend-above":
			cfg.Output.LegendAbove = *legendAbove
		case "http":
			cfg.Output.Addr = *addr
		case "benchfmt":
			cfg.Output.Benchfmt = *benchfmtOut
		case "csv":
			cfg.Output.CSV = *csvOut
		case "gcs-credentials":
			cfg.Output.Credentials = *credentials
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("bad configuration: %w", err)
	}

	log, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	palette, err := cfg.Palette()
	if err != nil {
		return err
	}
	sf, err := sweep.NewFilter(cfg.Filter, cfg.RunID)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	out, closeOut, err := outputs(ctx, cfg, log, reg)
	if err != nil {
		return err
	}
	defer closeOut()

	d := &driver.Driver{
		Layout:  bwfmt.Layout{Root: cfg.Root, RunID: cfg.RunID},
		Grid:    cfg.Grid(),
		Filter:  sf,
		Tags:    cfg.Implementations,
		Palette: palette,
		Output:  out,
		Log:     log,
		Metrics: driver.NewMetrics(reg),
	}
	n, err := d.Run(ctx)
	if err != nil {
		return err
	}
	log.Info("done", zap.Int("figures", n))
	return nil
}

// outputs builds the output strategies selected by cfg. The returned
// function closes the dump files.
func outputs(ctx context.Context, cfg *config.Config, log *zap.Logger, reg *prometheus.Registry) (output.Strategy, func(), error) {
	var (
		multi output.Multi
		files []*os.File
	)
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}
	create := func(name string) (*os.File, error) {
		f, err := os.Create(name)
		if err == nil {
			files = append(files, f)
		}
		return f, err
	}
	w := vg.Length(cfg.Output.Width) * vg.Inch
	h := vg.Length(cfg.Output.Height) * vg.Inch

	if cfg.Output.Benchfmt != "" {
		f, err := create(cfg.Output.Benchfmt)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		multi = append(multi, output.NewBenchfmt(f, cfg.RunID))
	}
	if cfg.Output.CSV != "" {
		f, err := create(cfg.Output.CSV)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		multi = append(multi, output.NewCSV(f))
	}
	if cfg.Output.Export {
		sink, err := output.OpenSink(ctx, cfg.Output.Dir, cfg.Output.Credentials)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		e := output.NewExporter(sink, cfg.Output.Formats...)
		e.Width, e.Height = w, h
		e.Legend = cfg.ExportLegend()
		e.Log = log
		multi = append(multi, e)
	}
	// The viewer blocks in Finish, so it goes last.
	if cfg.Output.Show {
		v := output.NewViewer(cfg.Output.Addr)
		v.Width, v.Height = w, h
		v.Gatherer = reg
		v.Log = log
		multi = append(multi, v)
	}
	return multi, closeAll, nil
}
