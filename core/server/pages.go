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
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/google/safehtml"
	"go.uber.org/zap"

	"github.com/oferente/panel/core/branding"
	"github.com/oferente/panel/core/dashboard"
	"github.com/oferente/panel/core/products"
	"github.com/oferente/panel/core/query"
	"github.com/oferente/panel/core/rendering"
	"github.com/oferente/panel/core/tables"
	"github.com/oferente/panel/core/views"
)

// maxImportSize bounds CSV uploads.
const maxImportSize = 1 << 20

// render writes a page, buffering so a template failure still yields a
// clean 500.
func (s *Server) render(w http.ResponseWriter, status int, page string, vm any) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, page, vm); err != nil {
		s.logger.Error("template rendering error", zap.String("page", page), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// fail renders the error page for err. Unexpected errors are logged.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	if message == "" {
		message = http.StatusText(status)
		if status != http.StatusInternalServerError {
			message = err.Error()
		}
	}
	s.render(w, status, rendering.ErrorPage, views.ErrorPage{
		Layout:  s.layout(r, "Error", ""),
		Status:  status,
		Message: message,
		BackURL: safehtml.URLSanitized(views.ProductsBase),
	})
}

func redirect(w http.ResponseWriter, r *http.Request, target, notice string) {
	if notice != "" {
		target += "?notice=" + url.QueryEscape(notice)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func productPath(id string) string {
	return path.Join(views.ProductsBase, url.PathEscape(id))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.dashboard.Load(r.Context())
	if err != nil {
		s.fail(w, r, err, dashboard.LoadFailedMessage)
		return
	}
	s.render(w, http.StatusOK, rendering.DashboardPage, views.NewDashboardPage(s.layout(r, "Dashboard", "dashboard"), d))
}

// loadTable loads the catalog into a table view driven by the request URL.
func (s *Server) loadTable(r *http.Request, actions products.TableActions) (*tables.TableView[products.Product], *query.Query, error) {
	timing := NewTimingCollector()

	start := time.Now()
	q := query.NewQuery(r.URL)
	timing.Record("parse_query", start)

	start = time.Now()
	if err := s.catalog.Load(r.Context()); err != nil {
		return nil, nil, err
	}
	timing.Record("load_products", start)

	start = time.Now()
	view := tables.NewTableView(s.catalog.Snapshot().Products, s.productTable(actions))
	q.Apply(view)
	timing.Record("apply_query", start)

	s.logger.Debug("table loaded", timing.Fields()...)
	return view, q, nil
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	view, q, err := s.loadTable(r, products.TableActions{})
	if err != nil {
		s.fail(w, r, err, s.catalog.Snapshot().Error)
		return
	}
	s.render(w, http.StatusOK, rendering.ProductsPage, views.ProductsPage{
		Layout:    s.layout(r, "Productos", "products"),
		Table:     views.BuildTableViewModel(view, q, views.ProductLinks),
		ImportURL: safehtml.URLSanitized(views.ProductsBase + "/import"),
	})
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.LoadOne(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	desc, err := rendering.Markdown(p.Description)
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	layout := s.layout(r, p.Name, "products")
	if r.URL.Query().Get("notice") == "public" {
		layout.Notice = fmt.Sprintf("Ver %q en sitio público", p.Name)
	}
	s.render(w, http.StatusOK, rendering.ProductPage, views.NewProductPage(layout, p, desc))
}

func (s *Server) handleNewForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, rendering.FormPage, views.NewCreateForm(s.layout(r, "Nuevo producto", "products")))
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	form := views.NewCreateForm(s.layout(r, "Nuevo producto", "products"))
	data, err := parseCreateForm(r, &form)
	if err == nil {
		_, err = s.catalog.Create(r.Context(), data)
	}
	if err != nil {
		s.formError(w, r, form, err)
		return
	}
	s.dashboard.Invalidate()
	redirect(w, r, views.ProductsBase, "created")
}

func (s *Server) handleEditForm(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.LoadOne(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	s.render(w, http.StatusOK, rendering.FormPage, views.NewEditForm(s.layout(r, "Editar producto", "products"), p))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	form := views.NewEditForm(s.layout(r, "Editar producto", "products"), products.Product{ID: id})
	data, err := parseUpdateForm(r, &form)
	if err == nil {
		_, err = s.catalog.Update(r.Context(), id, data)
	}
	if err != nil {
		s.formError(w, r, form, err)
		return
	}
	s.dashboard.Invalidate()
	redirect(w, r, views.ProductsBase, "updated")
}

// formError shows the form again for invalid input and the error page
// otherwise.
func (s *Server) formError(w http.ResponseWriter, r *http.Request, form views.ProductForm, err error) {
	if !errors.Is(err, products.ErrInvalid) {
		s.fail(w, r, err, "")
		return
	}
	form.Error = err.Error()
	s.render(w, http.StatusBadRequest, rendering.FormPage, form.WithCategories())
}

func (s *Server) handleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.LoadOne(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	s.render(w, http.StatusOK, rendering.ConfirmPage, views.NewProductPage(s.layout(r, "Eliminar producto", "products"), p, safehtml.HTML{}))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, r, err, "")
		return
	}
	s.dashboard.Invalidate()
	redirect(w, r, views.ProductsBase, "deleted")
}

// handleAction runs a custom row action through the product table, so the
// same visibility rules apply as on the page.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		target, notice string
		actionErr      error
	)
	actions := products.TableActions{
		Duplicate: func(p products.Product) {
			_, actionErr = s.catalog.Duplicate(ctx, p.ID)
			target, notice = views.ProductsBase, "duplicated"
			s.dashboard.Invalidate()
		},
		ViewPublic: func(p products.Product) {
			target, notice = productPath(p.ID), "public"
		},
	}

	p, err := s.catalog.LoadOne(ctx, r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	view := tables.NewTableView([]products.Product{p}, s.productTable(actions))
	view.SetEvents(tables.Events[products.Product]{
		OnCustomAction: func(label string, p products.Product) {
			s.logger.Info("row action", zap.String("action", label), zap.String("product", p.ID))
		},
	})
	if !view.Dispatch(r.PathValue("action"), p) {
		s.fail(w, r, fmt.Errorf("action %q: %w", r.PathValue("action"), products.ErrNotFound), "")
		return
	}
	if actionErr != nil {
		s.fail(w, r, actionErr, "")
		return
	}
	redirect(w, r, target, notice)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		s.fail(w, r, fmt.Errorf("%w: %v", products.ErrInvalid, err), "")
		return
	}
	defer file.Close()

	rows, err := products.ImportCSV(file)
	if err != nil {
		s.fail(w, r, fmt.Errorf("%w: %v", products.ErrInvalid, err), "")
		return
	}
	for _, data := range rows {
		if _, err := s.catalog.Create(r.Context(), data); err != nil {
			s.fail(w, r, err, "")
			return
		}
	}
	s.logger.Info("products imported", zap.Int("count", len(rows)))
	s.dashboard.Invalidate()
	redirect(w, r, views.ProductsBase, "imported")
}

func (s *Server) handleBranding(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, rendering.BrandingPage,
		views.NewBrandingPage(s.layout(r, "Branding", "branding"), s.branding.Registry(), s.branding.State()))
}

// handleBrandingForm applies one branding change. The toggle from the page
// header returns to the page it was posted from.
func (s *Server) handleBrandingForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, fmt.Errorf("%w: %v", errBadRequest, err), "")
		return
	}
	ctx := r.Context()
	var err error
	switch op := r.PostForm.Get("op"); op {
	case "theme":
		err = s.branding.SetTheme(ctx, branding.ThemeID(r.PostForm.Get("theme")))
	case "font":
		err = s.branding.SetFont(ctx, branding.FontFamily(r.PostForm.Get("font")))
	case "mode":
		err = s.branding.SetMode(ctx, branding.Mode(r.PostForm.Get("mode")))
	case "reset":
		s.branding.Reset(ctx)
	case "toggle":
		s.branding.ToggleMode(ctx)
		http.Redirect(w, r, backTo(r), http.StatusSeeOther)
		return
	default:
		s.fail(w, r, fmt.Errorf("%w: unknown operation %q", errBadRequest, op), "")
		return
	}
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	redirect(w, r, "/oferente/branding", "branding")
}

// backTo returns the local path of the referring page.
func backTo(r *http.Request) string {
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Host == r.Host && path.IsAbs(ref.Path) {
		if ref.RawQuery != "" {
			return ref.Path + "?" + ref.RawQuery
		}
		return ref.Path
	}
	return "/oferente/branding"
}

func (s *Server) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	css, err := s.branding.Stylesheet()
	if err != nil {
		s.logger.Error("failed to build stylesheet", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write([]byte(css.String()))
}
