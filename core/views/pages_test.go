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
	"testing"
	"time"

	"github.com/google/safehtml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oferente/panel/core/branding"
	"github.com/oferente/panel/core/dashboard"
	"github.com/oferente/panel/core/products"
)

func TestNewLayoutMarksSection(t *testing.T) {
	layout := NewLayout("Productos", "products", branding.State{Theme: "ocean", Mode: branding.Dark}, safehtml.StyleSheet{})
	assert.True(t, layout.IsDark)
	assert.Equal(t, "ocean", layout.Theme)
	for _, m := range layout.Menu {
		assert.Equal(t, m.ID == "products", m.Active, m.ID)
	}
	for _, m := range Menu {
		assert.False(t, m.Active, "shared menu must not be modified")
	}
}

func TestNewDashboardPage(t *testing.T) {
	page := NewDashboardPage(LayoutViewModel{}, dashboard.Data{
		Stats:        dashboard.Stats{Visits: 123456, VisitsChange: "+12%", ActiveProducts: 3},
		QuickActions: []dashboard.QuickAction{{Title: "Nuevo producto", Route: "/oferente/products/new"}},
	})
	require.Len(t, page.Stats, 4)
	assert.Equal(t, "123.456", page.Stats[0].Value)
	assert.Equal(t, "3", page.Stats[1].Value)
	assert.True(t, page.Stats[1].HasURL)
	require.Len(t, page.QuickActions, 1)
	assert.Equal(t, "/oferente/products/new", page.QuickActions[0].URL.String())
}

func TestNewProductPage(t *testing.T) {
	p := products.Product{
		ID:        "7",
		Name:      "Teclado",
		Price:     599990,
		Stock:     0,
		CreatedAt: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
	}
	page := NewProductPage(LayoutViewModel{}, p, safehtml.HTML{})
	assert.Equal(t, "$599.990", page.Price)
	assert.Equal(t, "Sin stock", page.Stock)
	assert.Equal(t, "02-03-2025", page.Created)
	assert.Equal(t, "", page.Updated)
	assert.False(t, page.HasImage)
	assert.Equal(t, "/oferente/products/7/actions/Duplicar", page.DuplicateURL.String())
}

func TestProductForms(t *testing.T) {
	create := NewCreateForm(LayoutViewModel{})
	assert.Equal(t, "/oferente/products/new", create.Action.String())
	assert.True(t, create.Active)
	require.Len(t, create.Categories, len(products.Categories))
	assert.True(t, create.Categories[len(create.Categories)-1].Selected)

	edit := NewEditForm(LayoutViewModel{}, products.Product{ID: "3", Name: "Polera", Price: 12.5, Category: "Ropa", Stock: 4})
	assert.Equal(t, "/oferente/products/3/edit", edit.Action.String())
	assert.Equal(t, "12.5", edit.Price)
	assert.Equal(t, "4", edit.Stock)
	assert.True(t, edit.Categories[1].Selected)
	assert.Equal(t, "Guardar Cambios", edit.SubmitLabel)
}

func TestNewBrandingPage(t *testing.T) {
	registry, err := branding.NewRegistry()
	require.NoError(t, err)

	page := NewBrandingPage(LayoutViewModel{}, registry, branding.DefaultState)
	require.Len(t, page.Themes, 6)
	require.Len(t, page.Fonts, 5)
	assert.True(t, page.Themes[5].Selected)
	assert.Equal(t, "violet", page.Themes[5].ID)
	assert.Len(t, page.Themes[0].Swatches, 4)
	assert.True(t, page.Fonts[0].Selected)
	assert.False(t, page.IsDark)
}
