/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Oferente Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/safehtml"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	"github.com/oferente/panel/core/branding"
	"github.com/oferente/panel/core/dashboard"
	"github.com/oferente/panel/core/logging"
	"github.com/oferente/panel/core/products"
	"github.com/oferente/panel/core/rendering"
	"github.com/oferente/panel/core/tables"
	"github.com/oferente/panel/core/views"
)

// Options are the dependencies of a Server.
type Options struct {
	Catalog   *products.Catalog
	Dashboard *dashboard.Service
	Branding  *branding.Service
	Logger    *zap.Logger

	// DefaultPageSize overrides the page size of the product table.
	DefaultPageSize int
}

// Server represents the application server with all its dependencies
type Server struct {
	catalog   *products.Catalog
	dashboard *dashboard.Service
	branding  *branding.Service
	renderer  *rendering.PageRenderer
	logger    *zap.Logger
	pageSize  int
}

// NewServer creates a new server with the given services
func NewServer(opts Options) (*Server, error) {
	if opts.Catalog == nil || opts.Dashboard == nil || opts.Branding == nil {
		return nil, errors.New("server: catalog, dashboard and branding are required")
	}
	renderer, err := rendering.NewPageRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		catalog:   opts.Catalog,
		dashboard: opts.Dashboard,
		branding:  opts.Branding,
		renderer:  renderer,
		logger:    logger.Named("server"),
		pageSize:  opts.DefaultPageSize,
	}, nil
}

// Handler returns the routes of the panel, with request logging and gzip
// compression for clients that accept it.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /{$}", http.RedirectHandler("/oferente/dashboard", http.StatusFound))
	mux.HandleFunc("GET /oferente/dashboard", s.handleDashboard)

	mux.HandleFunc("GET /oferente/products", s.handleProducts)
	mux.HandleFunc("GET /oferente/products/export.csv", s.handleExport)
	mux.HandleFunc("GET /oferente/products/export.json", s.handleExport)
	mux.HandleFunc("POST /oferente/products/import", s.handleImport)
	mux.HandleFunc("GET /oferente/products/new", s.handleNewForm)
	mux.HandleFunc("POST /oferente/products/new", s.handleCreate)
	mux.HandleFunc("GET /oferente/products/{id}", s.handleProduct)
	mux.HandleFunc("GET /oferente/products/{id}/edit", s.handleEditForm)
	mux.HandleFunc("POST /oferente/products/{id}/edit", s.handleUpdate)
	mux.HandleFunc("GET /oferente/products/{id}/delete", s.handleConfirmDelete)
	mux.HandleFunc("POST /oferente/products/{id}/delete", s.handleDelete)
	mux.HandleFunc("POST /oferente/products/{id}/actions/{action}", s.handleAction)

	mux.HandleFunc("GET /oferente/branding", s.handleBranding)
	mux.HandleFunc("POST /oferente/branding", s.handleBrandingForm)
	mux.HandleFunc("GET /theme.css", s.handleThemeCSS)

	mux.HandleFunc("GET "+products.APIPath, s.apiListProducts)
	mux.HandleFunc("POST "+products.APIPath, s.apiCreateProduct)
	mux.HandleFunc("GET "+products.APIPath+"/{id}", s.apiGetProduct)
	mux.HandleFunc("PUT "+products.APIPath+"/{id}", s.apiUpdateProduct)
	mux.HandleFunc("DELETE "+products.APIPath+"/{id}", s.apiDeleteProduct)
	mux.HandleFunc("POST "+products.APIPath+"/{id}/duplicate", s.apiDuplicateProduct)
	mux.HandleFunc("GET /api/oferente/dashboard", s.apiDashboard)
	mux.HandleFunc("GET /api/oferente/branding", s.apiGetBranding)
	mux.HandleFunc("PUT /api/oferente/branding", s.apiPutBranding)

	return logging.Requests(s.logger, gzhttp.GzipHandler(mux))
}

// productTable returns the product table configuration with the configured
// page size.
func (s *Server) productTable(actions products.TableActions) tables.Config[products.Product] {
	cfg := products.Table(actions)
	if s.pageSize > 0 {
		cfg.DefaultPageSize = s.pageSize
	}
	return cfg
}

// layout builds the page chrome from the current branding.
func (s *Server) layout(r *http.Request, title, section string) views.LayoutViewModel {
	css, err := s.branding.Stylesheet()
	if err != nil {
		s.logger.Warn("failed to build stylesheet", zap.Error(err))
		css = safehtml.StyleSheet{}
	}
	l := views.NewLayout(title, section, s.branding.State(), css)
	l.Notice = views.Notices[r.URL.Query().Get("notice")]
	return l
}

// errBadRequest marks malformed requests.
var errBadRequest = errors.New("bad request")

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, products.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, products.ErrInvalid),
		errors.Is(err, errBadRequest),
		errors.Is(err, branding.ErrUnknownTheme),
		errors.Is(err, branding.ErrUnknownFont),
		errors.Is(err, branding.ErrUnknownMode):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// TimingCollector collects timing measurements for various operations
type TimingCollector struct {
	entries []zap.Field
	start   time.Time
}

// NewTimingCollector creates a new timing collector
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{start: time.Now()}
}

// Record records how long operation took since since.
func (tc *TimingCollector) Record(operation string, since time.Time) {
	tc.entries = append(tc.entries, zap.Duration(operation, time.Since(since)))
}

// Fields returns the entries followed by the total.
func (tc *TimingCollector) Fields() []zap.Field {
	return append(tc.entries, zap.Duration("total", time.Since(tc.start)))
}
