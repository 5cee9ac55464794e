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
	"github.com/google/safehtml"

	"github.com/oferente/panel/core/branding"
)

// MenuItem is an entry of the side navigation.
type MenuItem struct {
	ID        string
	Label     string
	Icon      string
	URL       safehtml.URL
	AriaLabel string
	Active    bool
}

// Menu lists the sections of the panel in display order.
var Menu = []MenuItem{
	{ID: "dashboard", Label: "Dashboard", Icon: "dashboard", URL: safehtml.URLSanitized("/oferente/dashboard"), AriaLabel: "Ir al panel principal"},
	{ID: "products", Label: "Productos", Icon: "inventory_2", URL: safehtml.URLSanitized("/oferente/products"), AriaLabel: "Gestionar productos"},
	{ID: "branding", Label: "Branding", Icon: "palette", URL: safehtml.URLSanitized("/oferente/branding"), AriaLabel: "Personalizar marca y diseño"},
}

// LayoutViewModel is the page chrome shared by every HTML page.
type LayoutViewModel struct {
	Title      string
	Section    string
	Theme      string
	Mode       string
	IsDark     bool
	Stylesheet safehtml.StyleSheet
	Menu       []MenuItem
	Notice     string
	Error      string
}

// NewLayout builds the chrome for section using the current branding.
func NewLayout(title, section string, state branding.State, css safehtml.StyleSheet) LayoutViewModel {
	menu := make([]MenuItem, len(Menu))
	copy(menu, Menu)
	for i := range menu {
		menu[i].Active = menu[i].ID == section
	}
	return LayoutViewModel{
		Title:      title,
		Section:    section,
		Theme:      string(state.Theme),
		Mode:       string(state.Mode),
		IsDark:     state.IsDark(),
		Stylesheet: css,
		Menu:       menu,
	}
}

// Notices maps the notice codes carried by redirects to their messages.
var Notices = map[string]string{
	"created":    "Producto creado exitosamente",
	"updated":    "Producto actualizado exitosamente",
	"deleted":    "Producto eliminado exitosamente",
	"duplicated": "Producto duplicado exitosamente",
	"imported":   "Productos importados exitosamente",
	"branding":   "Preferencias de marca guardadas",
}
