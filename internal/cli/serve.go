// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/source"
)

const (
	defaultAddr     = ":8080"
	shutdownTimeout = 5 * time.Second
	maxServeWidth   = 4096
	maxServeDPR     = 4
)

type serveOpts struct {
	chartFlags
	addr string
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{chartFlags: defaultChartFlags(), addr: defaultAddr}

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve charts of a data set file over HTTP",
		Long: `Serve exposes the data set as PNG charts. The file is watched and reloaded
on change.

Endpoints:
  GET /chart.png   query: kind, width, dpr, theme, format, max, hover=x,y
  GET /legend      pie legend as JSON
  GET /healthz     liveness`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, path string, opts *serveOpts) error {
	doc, err := source.Load(path, opts.loadOptions()...)
	if err != nil {
		return err
	}
	s := newServer(c.Logger, opts.chartFlags)
	s.doc.Store(doc)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		err := source.Watch(ctx, path, func(doc *source.Document, err error) {
			if err != nil {
				c.Logger.Warn("Reload failed, serving previous data", "err", err)
				return
			}
			s.doc.Store(doc)
		}, opts.loadOptions()...)
		if err != nil && !errors.Is(err, context.Canceled) {
			c.Logger.Warn("Watch stopped", "err", err)
		}
	}()

	srv := &http.Server{
		Addr:         opts.addr,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	c.Logger.Info("Serving", "addr", opts.addr, "file", path)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// server renders charts of the current document per request. Each request
// gets its own chart instance, since charts are single-goroutine.
type server struct {
	logger   *log.Logger
	defaults chartFlags
	doc      atomic.Pointer[source.Document]
}

func newServer(logger *log.Logger, defaults chartFlags) *server {
	return &server{logger: logger, defaults: defaults}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/chart.png", s.handleChart)
	r.Get("/legend", s.handleLegend)
	return r
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *server) handleChart(w http.ResponseWriter, r *http.Request) {
	f, hover, err := s.flags(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	chart, err := f.mount(s.doc.Load())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer chart.Unmount()

	if hover != "" {
		x, y, err := parsePoint(hover)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		chart.PointerMove(x, y)
		if info := chart.Hovered(); info.Active {
			w.Header().Set("X-Chart-Hover", info.Label)
		}
	}

	var buf bytes.Buffer
	if err := chart.EncodePNG(&buf); err != nil {
		s.logger.Error("Encode failed", "err", err, "request", middleware.GetReqID(r.Context()))
		http.Error(w, "chart could not be rendered", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

type legendEntry struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	ValueText string  `json:"valueText"`
	Color     string  `json:"color"`
}

type legendResponse struct {
	Title   string        `json:"title,omitempty"`
	Entries []legendEntry `json:"entries"`
}

func (s *server) handleLegend(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	q.Set("kind", string(ggchart.KindPie))
	f, _, err := s.flags(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	doc := s.doc.Load()
	chart, err := f.mount(doc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer chart.Unmount()

	resp := legendResponse{Title: chart.Geometry().Options.Title, Entries: []legendEntry{}}
	for _, e := range chart.Legend() {
		resp.Entries = append(resp.Entries, legendEntry{
			Label:     e.Label,
			Value:     e.Value,
			ValueText: e.ValueText,
			Color:     ggchart.ColorHex(e.Color),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("Encode failed", "err", err, "request", middleware.GetReqID(r.Context()))
	}
}

// flags applies query overrides to the server defaults.
func (s *server) flags(q url.Values) (chartFlags, string, error) {
	f := s.defaults
	if v := q.Get("kind"); v != "" {
		f.kind = v
	}
	if v := q.Get("theme"); v != "" {
		f.theme = v
	}
	if v := q.Get("format"); v != "" {
		f.format = v
	}
	if v := q.Get("width"); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil || !(w > 0 && w <= maxServeWidth) {
			return f, "", fmt.Errorf("invalid width %q", v)
		}
		f.width = w
	}
	if v := q.Get("dpr"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || !(d > 0 && d <= maxServeDPR) {
			return f, "", fmt.Errorf("invalid dpr %q", v)
		}
		f.dpr = d
	}
	if v := q.Get("max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, "", fmt.Errorf("invalid max %q", v)
		}
		f.maxShapes = n
	}
	return f, q.Get("hover"), nil
}
