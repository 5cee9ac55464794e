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

package rendering

import (
	"embed"
	"fmt"
	"io"

	"github.com/google/safehtml/template"

	"github.com/oferente/panel/core/views"
)

//go:embed templates/*
var templateFS embed.FS

// Page names, one template file each.
const (
	DashboardPage = "dashboard.html"
	ProductsPage  = "products.html"
	ProductPage   = "product.html"
	FormPage      = "form.html"
	ConfirmPage   = "confirm.html"
	BrandingPage  = "branding.html"
	ErrorPage     = "error.html"
)

var pages = []string{DashboardPage, ProductsPage, ProductPage, FormPage, ConfirmPage, BrandingPage, ErrorPage}

// PageRenderer handles rendering of page view models to HTML
type PageRenderer struct {
	templates map[string]*template.Template
}

// NewPageRenderer parses every page together with the shared layout.
func NewPageRenderer() (*PageRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	r := &PageRenderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.New(page).ParseFS(trustedFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

// Render executes page with vm inside the layout.
func (r *PageRenderer) Render(w io.Writer, page string, vm any) error {
	t, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return t.ExecuteTemplate(w, "layout", vm)
}

func (r *PageRenderer) RenderDashboard(w io.Writer, vm views.DashboardPage) error {
	return r.Render(w, DashboardPage, vm)
}

func (r *PageRenderer) RenderProducts(w io.Writer, vm views.ProductsPage) error {
	return r.Render(w, ProductsPage, vm)
}

func (r *PageRenderer) RenderProduct(w io.Writer, vm views.ProductPage) error {
	return r.Render(w, ProductPage, vm)
}

func (r *PageRenderer) RenderForm(w io.Writer, vm views.ProductForm) error {
	return r.Render(w, FormPage, vm)
}

func (r *PageRenderer) RenderConfirm(w io.Writer, vm views.ProductPage) error {
	return r.Render(w, ConfirmPage, vm)
}

func (r *PageRenderer) RenderBranding(w io.Writer, vm views.BrandingPage) error {
	return r.Render(w, BrandingPage, vm)
}

func (r *PageRenderer) RenderError(w io.Writer, vm views.ErrorPage) error {
	return r.Render(w, ErrorPage, vm)
}
