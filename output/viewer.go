// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/vg"

	"github.com/pcomm/bwplot/chart"
)

// A Viewer holds every figure in memory and, once the run is finished,
// shows them all together on a local web page.
//
// Finish blocks serving the page until its context is canceled.
type Viewer struct {
	// Addr is the TCP address to listen on, for example
	// "localhost:8080".
	Addr   string
	Width  vg.Length
	Height vg.Length
	Legend chart.LegendStyle

	// Gatherer, if non-nil, is served at /metrics.
	Gatherer prometheus.Gatherer
	Log      *zap.Logger

	// Ready, if non-nil, is called with the listening address
	// before serving.
	Ready func(addr net.Addr)

	figs   []*chart.Figure
	byName map[string]*chart.Figure
}

// NewViewer returns a Viewer listening on addr.
func NewViewer(addr string) *Viewer {
	return &Viewer{
		Addr:   addr,
		Width:  chart.DefaultWidth,
		Height: chart.DefaultHeight,
		Legend: chart.DefaultLegend,
		Log:    zap.NewNop(),
	}
}

func (v *Viewer) Add(ctx context.Context, f *chart.Figure) error {
	if v.byName == nil {
		v.byName = make(map[string]*chart.Figure)
	}
	v.figs = append(v.figs, f)
	v.byName[f.Name] = f
	return nil
}

// Finish serves the figures until ctx is canceled.
func (v *Viewer) Finish(ctx context.Context) error {
	ln, err := net.Listen("tcp", v.Addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: v.Handler()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	v.Log.Info("showing figures", zap.Int("figures", len(v.figs)), zap.String("url", "http://"+ln.Addr().String()+"/"))
	if v.Ready != nil {
		v.Ready(ln.Addr())
	}
	return g.Wait()
}

// Handler returns the HTTP handler of the figure page.
func (v *Viewer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", v.index)
	mux.HandleFunc("/figure/", v.figure)
	if v.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(v.Gatherer, promhttp.HandlerOpts{}))
	}
	return mux
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>bandwidth</title></head>
<body>
{{range .}}
<figure>
<img src="{{.URL}}" alt="{{.Name}}">
<figcaption>{{.Name}}</figcaption>
</figure>
{{end}}
</body>
</html>
`))

type indexEntry struct {
	Name string
	URL  safehtml.URL
}

func (v *Viewer) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	entries := make([]indexEntry, len(v.figs))
	for i, f := range v.figs {
		entries[i] = indexEntry{f.Name, safehtml.URLSanitized("/figure/" + f.Name + ".svg")}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, entries); err != nil {
		v.Log.Error("rendering index", zap.Error(err))
	}
}

func (v *Viewer) figure(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutSuffix(strings.TrimPrefix(r.URL.Path, "/figure/"), ".svg")
	f := v.byName[name]
	if !ok || f == nil {
		http.NotFound(w, r)
		return
	}
	wt, err := f.WriterTo(v.Width, v.Height, "svg", v.Legend)
	if err != nil {
		v.Log.Error("rendering figure", zap.String("figure", name), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := wt.WriteTo(w); err != nil {
		v.Log.Warn("writing figure", zap.String("figure", name), zap.Error(err))
	}
}
