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

package products

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/oferente/panel/core/columns"
	"github.com/oferente/panel/core/tables"
)

// Locale used for prices shown to the business owner.
var Locale = language.MustParse("es-CL")

var printer = message.NewPrinter(Locale)

// FormatPrice renders a price in Chilean pesos, e.g. "$599.990".
func FormatPrice(v float64) string {
	return "$" + printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// TableActions are the handlers behind the custom row actions.
type TableActions struct {
	Duplicate  func(p Product)
	ViewPublic func(p Product)
}

// Table returns the configuration of the "Mis Productos" table.
func Table(actions TableActions) tables.Config[Product] {
	return tables.Config[Product]{
		Title:           "Mis Productos",
		ShowSearch:      true,
		ShowCreate:      true,
		ShowEdit:        true,
		ShowDelete:      true,
		ShowExport:      true,
		DefaultPageSize: 10,
		PageSizeOptions: []int{5, 10, 25, 50},
		EmptyMessage:    "No tienes productos creados aún",
		Columns: []columns.Column[Product]{
			{Key: "imageUrl", Label: "Imagen", Type: columns.TypeImage, Width: "80px"},
			{Key: "name", Label: "Nombre", Type: columns.TypeText, Sortable: true},
			{Key: "category", Label: "Categoría", Type: columns.TypeBadge, Sortable: true},
			{
				Key: "price", Label: "Precio", Type: columns.TypeNumber, Sortable: true, Align: columns.AlignRight,
				Format: func(_ any, p Product) string { return FormatPrice(p.Price) },
			},
			{
				Key: "stock", Label: "Stock", Type: columns.TypeNumber, Sortable: true, Align: columns.AlignCenter,
				Format: func(_ any, p Product) string {
					if !p.InStock() {
						return "Sin stock"
					}
					return columns.Stringify(p.Stock)
				},
			},
			{Key: "active", Label: "Estado", Type: columns.TypeBoolean, Sortable: true, Align: columns.AlignCenter},
			{Key: "createdAt", Label: "Creado", Type: columns.TypeDate, Sortable: true},
		},
		Actions: []tables.Action[Product]{
			{
				Label:   "Duplicar",
				Icon:    "content_copy",
				Color:   tables.ColorPrimary,
				Tooltip: "Duplicar producto",
				Handler: actions.Duplicate,
			},
			{
				Label:   "Ver público",
				Icon:    "visibility",
				Color:   tables.ColorAccent,
				Tooltip: "Ver en sitio público",
				Handler: actions.ViewPublic,
				Show:    func(p Product) bool { return p.Active },
			},
		},
	}
}
