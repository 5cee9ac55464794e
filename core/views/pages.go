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

package views

import (
	"net/url"
	"path"
	"strconv"

	"github.com/google/safehtml"

	"github.com/oferente/panel/core/branding"
	"github.com/oferente/panel/core/columns"
	"github.com/oferente/panel/core/dashboard"
	"github.com/oferente/panel/core/products"
)

// ProductsBase is the path of the product pages.
const ProductsBase = "/oferente/products"

// ProductsPage is the product list.
type ProductsPage struct {
	Layout LayoutViewModel
	Table  TableViewModel
	// ImportURL receives CSV uploads.
	ImportURL safehtml.URL
}

// DashboardPage is the landing page of the panel.
type DashboardPage struct {
	Layout         LayoutViewModel
	Stats          []StatCard
	QuickActions   []QuickActionCard
	RecentActivity []dashboard.RecentActivity
}

// StatCard is one headline metric.
type StatCard struct {
	Title  string
	Value  string
	Icon   string
	Color  string
	Change string
	URL    safehtml.URL
	HasURL bool
}

// QuickActionCard links to another section.
type QuickActionCard struct {
	Title       string
	Description string
	Icon        string
	Color       string
	URL         safehtml.URL
}

// NewDashboardPage formats d for display.
func NewDashboardPage(layout LayoutViewModel, d dashboard.Data) DashboardPage {
	page := DashboardPage{
		Layout: layout,
		Stats: []StatCard{
			{Title: "Visitas este mes", Value: dashboard.FormatCount(d.Stats.Visits), Icon: "visibility", Color: "primary", Change: d.Stats.VisitsChange},
			{Title: "Productos activos", Value: dashboard.FormatCount(d.Stats.ActiveProducts), Icon: "inventory_2", Color: "primary",
				URL: safehtml.URLSanitized(ProductsBase), HasURL: true},
			{Title: "Mensajes nuevos", Value: dashboard.FormatCount(d.Stats.NewMessages), Icon: "mail", Color: "accent", Change: d.Stats.MessagesChange},
			{Title: "Servicios", Value: dashboard.FormatCount(d.Stats.ActiveServices), Icon: "home_repair_service", Color: "primary"},
		},
		RecentActivity: d.RecentActivity,
	}
	for _, a := range d.QuickActions {
		page.QuickActions = append(page.QuickActions, QuickActionCard{
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			Color:       a.Color,
			URL:         safehtml.URLSanitized(a.Route),
		})
	}
	return page
}

// ProductPage is the detail page of one product.
type ProductPage struct {
	Layout       LayoutViewModel
	ID           string
	Name         string
	Category     string
	Price        string
	Stock        string
	Active       bool
	ImageURL     safehtml.URL
	HasImage     bool
	Created      string
	Updated      string
	Description  safehtml.HTML
	BackURL      safehtml.URL
	EditURL      safehtml.URL
	DeleteURL    safehtml.URL
	DuplicateURL safehtml.URL
}

// NewProductPage formats p. description is the rendered markdown.
func NewProductPage(layout LayoutViewModel, p products.Product, description safehtml.HTML) ProductPage {
	base := path.Join(ProductsBase, url.PathEscape(p.ID))
	page := ProductPage{
		Layout:       layout,
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Price:        products.FormatPrice(p.Price),
		Stock:        strconv.Itoa(p.Stock),
		Active:       p.Active,
		Created:      columns.FormatCell(p, columns.Column[products.Product]{Key: "createdAt", Type: columns.TypeDate}),
		Updated:      columns.FormatCell(p, columns.Column[products.Product]{Key: "updatedAt", Type: columns.TypeDate}),
		Description:  description,
		BackURL:      safehtml.URLSanitized(ProductsBase),
		EditURL:      safehtml.URLSanitized(base + "/edit"),
		DeleteURL:    safehtml.URLSanitized(base + "/delete"),
		DuplicateURL: safehtml.URLSanitized(base + "/actions/" + url.PathEscape("Duplicar")),
	}
	if !p.InStock() {
		page.Stock = "Sin stock"
	}
	if p.ImageURL != "" {
		page.ImageURL = safehtml.URLSanitized(p.ImageURL)
		page.HasImage = true
	}
	return page
}

// ProductForm is the create and edit form. Field values are kept as typed
// so a rejected submission can be shown again.
type ProductForm struct {
	Layout      LayoutViewModel
	Title       string
	SubmitLabel string
	Action      safehtml.URL
	CancelURL   safehtml.URL
	Name        string
	Description string
	Price       string
	Category    string
	Stock       string
	Active      bool
	ImageURL    string
	Categories  []Option
	Error       string
}

// Option is an entry of a select element.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// NewCreateForm returns the empty creation form.
func NewCreateForm(layout LayoutViewModel) ProductForm {
	f := ProductForm{
		Layout:      layout,
		Title:       "Crear Nuevo Producto",
		SubmitLabel: "Crear Producto",
		Action:      safehtml.URLSanitized(ProductsBase + "/new"),
		CancelURL:   safehtml.URLSanitized(ProductsBase),
		Price:       "0",
		Stock:       "0",
		Category:    "Otros",
		Active:      true,
	}
	return f.WithCategories()
}

// NewEditForm returns the edit form filled with p.
func NewEditForm(layout LayoutViewModel, p products.Product) ProductForm {
	base := path.Join(ProductsBase, url.PathEscape(p.ID))
	f := ProductForm{
		Layout:      layout,
		Title:       "Editar Producto",
		SubmitLabel: "Guardar Cambios",
		Action:      safehtml.URLSanitized(base + "/edit"),
		CancelURL:   safehtml.URLSanitized(base),
		Name:        p.Name,
		Description: p.Description,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Category:    p.Category,
		Stock:       strconv.Itoa(p.Stock),
		Active:      p.Active,
		ImageURL:    p.ImageURL,
	}
	return f.WithCategories()
}

// WithCategories fills the category options, selecting f.Category.
func (f ProductForm) WithCategories() ProductForm {
	f.Categories = make([]Option, len(products.Categories))
	for i, c := range products.Categories {
		f.Categories[i] = Option{Value: c, Label: c, Selected: c == f.Category}
	}
	return f
}

// BrandingPage is the theme picker.
type BrandingPage struct {
	Layout    LayoutViewModel
	Themes    []ThemeCard
	Fonts     []FontCard
	Mode      string
	IsDark    bool
	ActionURL safehtml.URL
}

// ThemeCard previews one theme.
type ThemeCard struct {
	ID       string
	Title    string
	Subtitle string
	Icon     string
	Palette  branding.Palette
	Swatches []safehtml.Style
	Selected bool
}

// FontCard is one selectable font.
type FontCard struct {
	ID          string
	Name        string
	Description string
	Selected    bool
}

// NewBrandingPage lists the registry with the current state selected.
func NewBrandingPage(layout LayoutViewModel, registry *branding.Registry, state branding.State) BrandingPage {
	page := BrandingPage{
		Layout:    layout,
		Mode:      string(state.Mode),
		IsDark:    state.IsDark(),
		ActionURL: safehtml.URLSanitized("/oferente/branding"),
	}
	for _, t := range registry.Themes() {
		palette, _ := registry.Palette(t.ID, state.Mode)
		page.Themes = append(page.Themes, ThemeCard{
			ID:       string(t.ID),
			Title:    t.Title,
			Subtitle: t.Subtitle,
			Icon:     t.Icon,
			Palette:  palette,
			Swatches: swatches(palette),
			Selected: t.ID == state.Theme,
		})
	}
	for _, f := range registry.Fonts() {
		page.Fonts = append(page.Fonts, FontCard{
			ID:          string(f.ID),
			Name:        f.Name,
			Description: f.Description,
			Selected:    f.ID == state.Font,
		})
	}
	return page
}

// ProductLinks addresses product rows by ID.
var ProductLinks = RowLinks[products.Product]{
	Base: ProductsBase,
	ID:   func(p products.Product) string { return p.ID },
}

// ErrorPage is shown for failed requests.
type ErrorPage struct {
	Layout  LayoutViewModel
	Status  int
	Message string
	BackURL safehtml.URL
}

func swatches(p branding.Palette) []safehtml.Style {
	out := make([]safehtml.Style, 0, 4)
	for _, c := range []string{p.Primary, p.Accent, p.Background, p.Text} {
		out = append(out, safehtml.StyleFromProperties(safehtml.StyleProperties{BackgroundColor: c}))
	}
	return out
}
