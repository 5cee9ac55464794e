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

	"github.com/google/safehtml"

	"github.com/oferente/panel/core/columns"
	"github.com/oferente/panel/core/query"
	"github.com/oferente/panel/core/tables"
)

// TableViewModel contains the data from the table formatted for template consumption
type TableViewModel struct {
	Title        string
	Headers      []HeaderInfo
	Rows         []RowInfo
	HasActions   bool
	ShowSearch   bool
	ShowCreate   bool
	ShowExport   bool
	SearchTerm   string
	SearchAction safehtml.URL // form target, the table path
	ClearSearch  safehtml.URL
	CreateURL    safehtml.URL
	ExportCSV    safehtml.URL
	ExportJSON   safehtml.URL
	CurrentURL   safehtml.URL
	EmptyMessage string
	Pagination   PaginationInfo
}

// IsEmpty reports whether the current page has no rows.
func (vm TableViewModel) IsEmpty() bool { return len(vm.Rows) == 0 }

// HeaderInfo describes a column header.
type HeaderInfo struct {
	Key       string
	Label     string
	Align     string
	Width     string
	Sortable  bool
	SortURL   safehtml.URL
	IsSorted  bool
	Direction string // "asc" or "desc" when IsSorted
}

// SortIndicator returns the arrow shown next to a sorted header.
func (h HeaderInfo) SortIndicator() string {
	switch {
	case !h.IsSorted:
		return ""
	case h.Direction == string(tables.Descending):
		return "▼"
	default:
		return "▲"
	}
}

// RowInfo is one rendered row.
type RowInfo struct {
	ID         string
	Cells      []CellInfo
	ViewURL    safehtml.URL
	EditURL    safehtml.URL
	DeleteURL  safehtml.URL
	ShowEdit   bool
	ShowDelete bool
	Actions    []ActionInfo
}

// CellInfo is one rendered cell. Text always holds the formatted value;
// image and boolean cells carry their typed value as well.
type CellInfo struct {
	Key      string
	Type     string
	Align    string
	Text     string
	ImageURL safehtml.URL
	HasImage bool
	Bool     bool
}

// ActionInfo is a custom row action, posted to URL.
type ActionInfo struct {
	Label   string
	Icon    string
	Color   string
	Tooltip string
	URL     safehtml.URL
}

// PaginationInfo describes the page window.
type PaginationInfo struct {
	PageIndex  int
	PageNumber int // 1-based, for display
	PageCount  int
	Total      int
	From       int // 1-based index of the first row shown, 0 when empty
	To         int
	HasPrev    bool
	HasNext    bool
	PrevURL    safehtml.URL
	NextURL    safehtml.URL
	PageSizes  []PageSizeOption
}

// PageSizeOption is an entry of the page size selector.
type PageSizeOption struct {
	Size     int
	URL      safehtml.URL
	Selected bool
}

// RowLinks tells the view model how to address rows. Base is the path of the
// table page; rows live under Base/{id}.
type RowLinks[T any] struct {
	Base string
	ID   func(row T) string
}

func (l RowLinks[T]) rowPath(id string, elem ...string) safehtml.URL {
	return safehtml.URLSanitized(path.Join(append([]string{l.Base, url.PathEscape(id)}, elem...)...))
}

// BuildTableViewModel renders the current page of view. The query must have
// been applied to view already.
func BuildTableViewModel[T any](view *tables.TableView[T], q *query.Query, links RowLinks[T]) TableViewModel {
	cfg := view.Config()
	vm := TableViewModel{
		Title:        cfg.Title,
		HasActions:   view.HasActions(),
		ShowSearch:   cfg.ShowSearch,
		ShowCreate:   cfg.ShowCreate,
		ShowExport:   cfg.ShowExport,
		SearchTerm:   view.SearchTerm(),
		SearchAction: safehtml.URLSanitized(q.Path),
		ClearSearch:  q.WithSearch(""),
		CreateURL:    safehtml.URLSanitized(path.Join(links.Base, "new")),
		ExportCSV:    q.ExportURL("csv"),
		ExportJSON:   q.ExportURL("json"),
		CurrentURL:   q.ToSafeURL(),
		EmptyMessage: cfg.EmptyMessage,
	}
	if vm.EmptyMessage == "" {
		vm.EmptyMessage = "No hay datos"
	}

	for _, col := range cfg.Columns {
		h := HeaderInfo{
			Key:      col.Key,
			Label:    col.Label,
			Align:    string(col.EffectiveAlign()),
			Width:    col.Width,
			Sortable: col.Sortable,
		}
		if col.Sortable {
			h.SortURL = q.WithSort(col.Key)
			if view.SortColumn() == col.Key {
				h.IsSorted = true
				h.Direction = string(view.SortDirection())
			}
		}
		vm.Headers = append(vm.Headers, h)
	}

	for _, row := range view.Paginated() {
		vm.Rows = append(vm.Rows, buildRow(view, row, links))
	}
	vm.Pagination = buildPagination(view, q, len(vm.Rows))
	return vm
}

func buildRow[T any](view *tables.TableView[T], row T, links RowLinks[T]) RowInfo {
	cfg := view.Config()
	var id string
	if links.ID != nil {
		id = links.ID(row)
	}
	r := RowInfo{
		ID:         id,
		ViewURL:    links.rowPath(id),
		EditURL:    links.rowPath(id, "edit"),
		DeleteURL:  links.rowPath(id, "delete"),
		ShowEdit:   cfg.ShowEdit,
		ShowDelete: cfg.ShowDelete,
	}
	for _, col := range cfg.Columns {
		cell := CellInfo{
			Key:   col.Key,
			Type:  string(col.EffectiveType()),
			Align: string(col.EffectiveAlign()),
			Text:  view.FormatCell(row, col),
		}
		raw := col.Resolve(row)
		switch col.EffectiveType() {
		case columns.TypeImage:
			if src := columns.Stringify(raw); src != "" {
				cell.ImageURL = safehtml.URLSanitized(src)
				cell.HasImage = true
			}
		case columns.TypeBoolean:
			b, _ := raw.(bool)
			cell.Bool = b
		}
		r.Cells = append(r.Cells, cell)
	}
	for _, a := range view.VisibleActions(row) {
		r.Actions = append(r.Actions, ActionInfo{
			Label:   a.Label,
			Icon:    a.Icon,
			Color:   string(a.Color),
			Tooltip: a.Tooltip,
			URL:     links.rowPath(id, "actions", url.PathEscape(a.Label)),
		})
	}
	return r
}

func buildPagination[T any](view *tables.TableView[T], q *query.Query, shown int) PaginationInfo {
	p := PaginationInfo{
		PageIndex:  view.PageIndex(),
		PageNumber: view.PageNumber(),
		PageCount:  view.PageCount(),
		Total:      view.Total(),
	}
	// shown > 0 only when the page lies inside the projection, so the
	// product is below Total.
	if shown > 0 && p.PageIndex < p.PageCount {
		p.From = view.PageIndex()*view.PageSize() + 1
		p.To = p.From + shown - 1
	}
	if p.PageIndex > 0 {
		p.HasPrev = true
		p.PrevURL = q.WithPage(min(p.PageIndex-1, max(p.PageCount-1, 0)))
	}
	if p.PageIndex < p.PageCount-1 {
		p.HasNext = true
		p.NextURL = q.WithPage(p.PageIndex + 1)
	}
	for _, size := range view.Config().PageSizeOptions {
		p.PageSizes = append(p.PageSizes, PageSizeOption{
			Size:     size,
			URL:      q.WithPageSize(size),
			Selected: size == view.PageSize(),
		})
	}
	return p
}
