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

package tables

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oferente/panel/core/columns"
)

type item struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Price  *float64 `json:"price,omitempty"`
	Active bool     `json:"active"`
	Owner  *person  `json:"owner,omitempty"`
}

type person struct {
	Name string `json:"name"`
}

func price(v float64) *float64 { return &v }

func nameOnly() Config[item] {
	return Config[item]{Columns: []columns.Column[item]{{Key: "name", Label: "Name"}}}
}

func numbered(n int) []item {
	rows := make([]item, n)
	for i := range rows {
		rows[i] = item{ID: fmt.Sprint(i + 1), Name: fmt.Sprintf("Item %02d", i+1)}
	}
	return rows
}

func TestSearchExample(t *testing.T) {
	rows := []item{{ID: "1", Name: "Alpha"}, {ID: "2", Name: "Beta"}}
	view := NewTableView(rows, nameOnly())

	view.SetSearchTerm("al")

	if diff := cmp.Diff([]item{{ID: "1", Name: "Alpha"}}, view.Filtered()); diff != "" {
		t.Errorf("Filtered() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptySearchKeepsRows(t *testing.T) {
	rows := []item{{ID: "3", Name: "c"}, {ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	view := NewTableView(rows, nameOnly())
	view.SetSearchTerm("")
	assert.Equal(t, rows, view.Filtered())
}

func TestSearchPartitionsRows(t *testing.T) {
	rows := []item{
		{ID: "1", Name: "Notebook", Owner: &person{Name: "Ana"}},
		{ID: "2", Name: "Polera"},
		{ID: "3", Name: "Café", Owner: &person{Name: "BOOKER"}},
	}
	cfg := Config[item]{Columns: []columns.Column[item]{
		{Key: "name", Label: "Nombre"},
		{Key: "owner.name", Label: "Dueño"},
	}}
	view := NewTableView(rows, cfg)
	view.SetSearchTerm("Book")

	got := view.Filtered()
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	matched := map[string]bool{}
	for _, r := range got {
		matched[r.ID] = true
	}
	for _, r := range rows {
		hit := false
		for _, col := range cfg.Columns {
			if strings.Contains(strings.ToLower(columns.Stringify(col.Resolve(r))), "book") {
				hit = true
			}
		}
		assert.Equal(t, hit, matched[r.ID], "row %s", r.ID)
	}
}

func TestSearchResetsPage(t *testing.T) {
	view := NewTableView(numbered(30), nameOnly())
	view.SetPage(2, 10)
	require.Equal(t, 2, view.PageIndex())

	view.SetSearchTerm("item")
	assert.Equal(t, 0, view.PageIndex())
	assert.Equal(t, 10, view.PageSize())
}

func TestPaginationExample(t *testing.T) {
	view := NewTableView(numbered(25), nameOnly())
	require.Equal(t, 10, view.PageSize())
	require.Equal(t, 3, view.PageCount())

	var lengths []int
	var all []item
	for i := range view.PageCount() {
		view.SetPage(i, 10)
		page := view.Paginated()
		lengths = append(lengths, len(page))
		all = append(all, page...)
	}
	assert.Equal(t, []int{10, 10, 5}, lengths)
	assert.Equal(t, view.Filtered(), all)

	view.SetPage(2, 10)
	assert.Len(t, view.Paginated(), 5)

	view.SetPage(7, 10)
	assert.Empty(t, view.Paginated())
}

func TestPageSizeDefaults(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewTableView(nil, Config[item]{}).PageSize())
	assert.Equal(t, 25, NewTableView(nil, Config[item]{DefaultPageSize: 25}).PageSize())

	view := NewTableView(numbered(3), Config[item]{})
	view.SetPage(-4, 0)
	assert.Equal(t, 0, view.PageIndex())
	assert.Equal(t, DefaultPageSize, view.PageSize())
	assert.Equal(t, 0, NewTableView([]item{}, Config[item]{}).PageCount())
}

func TestPageWindowBounds(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		index     int
		size      int
		wantLen   int
		wantPages int
	}{
		{name: "empty", rows: 0, index: 0, size: 10, wantLen: 0, wantPages: 0},
		{name: "size larger than rows", rows: 3, index: 0, size: 50, wantLen: 3, wantPages: 1},
		{name: "exact fit", rows: 20, index: 1, size: 10, wantLen: 10, wantPages: 2},
		{name: "last partial page", rows: 21, index: 2, size: 10, wantLen: 1, wantPages: 3},
		{name: "one past the end", rows: 20, index: 2, size: 10, wantLen: 0, wantPages: 2},
		{name: "index overflows offset", rows: 25, index: math.MaxInt/10 + 1, size: 10, wantLen: 0, wantPages: 3},
		{name: "max index", rows: 25, index: math.MaxInt, size: 2, wantLen: 0, wantPages: 13},
		{name: "max size", rows: 25, index: 0, size: math.MaxInt, wantLen: 25, wantPages: 1},
		{name: "max size second page", rows: 25, index: 1, size: math.MaxInt, wantLen: 0, wantPages: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewTableView(numbered(tt.rows), nameOnly())
			view.SetPage(tt.index, tt.size)
			assert.Len(t, view.Paginated(), tt.wantLen)
			assert.Equal(t, tt.wantPages, view.PageCount())
			assert.Positive(t, view.PageNumber())
			assert.NotPanics(t, func() { view.RenderText() })
		})
	}
}

func TestPagesConcatenateToFiltered(t *testing.T) {
	for _, n := range []int{0, 1, 7, 10, 11, 25, 64} {
		for _, size := range []int{1, 3, 10, 25, 100} {
			view := NewTableView(numbered(n), nameOnly())
			view.SetSearchTerm("item")
			view.SetPage(0, size)
			var all []item
			for i := range view.PageCount() {
				view.SetPage(i, size)
				page := view.Paginated()
				assert.LessOrEqual(t, len(page), size)
				all = append(all, page...)
			}
			if diff := cmp.Diff(view.Filtered(), all, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("n=%d size=%d: pages differ from filtered (-want +got):\n%s", n, size, diff)
			}
		}
	}
}

func TestSortNilsAreLarger(t *testing.T) {
	rows := []item{
		{ID: "a", Price: nil},
		{ID: "b", Price: price(20)},
		{ID: "c", Price: price(5)},
		{ID: "d", Price: nil},
	}
	cfg := Config[item]{Columns: []columns.Column[item]{{Key: "price", Label: "Precio", Sortable: true}}}
	view := NewTableView(rows, cfg)

	ids := func() string {
		var sb strings.Builder
		for _, r := range view.Filtered() {
			sb.WriteString(r.ID)
		}
		return sb.String()
	}

	view.SetSort("price", Ascending)
	assert.Equal(t, "cbad", ids())

	view.SetSort("price", Descending)
	assert.Equal(t, "adbc", ids())

	view.SetSort("", Ascending)
	assert.Equal(t, "abcd", ids())
	assert.Equal(t, "a", rows[0].ID, "input rows must not be reordered")
}

func TestSortIsStableAndIdempotent(t *testing.T) {
	rows := []item{
		{ID: "1", Name: "b", Active: true},
		{ID: "2", Name: "a", Active: false},
		{ID: "3", Name: "c", Active: true},
		{ID: "4", Name: "d", Active: false},
	}
	view := NewTableView(rows, nameOnly())
	view.SetSort("active", Ascending)
	once := view.Filtered()
	assert.Equal(t, []string{"2", "4", "1", "3"}, idsOf(once))

	again := NewTableView(once, nameOnly())
	again.SetSort("active", Ascending)
	assert.Equal(t, once, again.Filtered())
}

func TestSortUsesAccessor(t *testing.T) {
	rows := []item{{ID: "1", Name: "bb"}, {ID: "2", Name: "a"}, {ID: "3", Name: "ccc"}}
	cfg := Config[item]{Columns: []columns.Column[item]{{
		Key:   "length",
		Label: "Largo",
		Value: func(r item) any { return len(r.Name) },
	}}}
	view := NewTableView(rows, cfg)
	view.SetSort("length", Descending)
	assert.Equal(t, []string{"3", "1", "2"}, idsOf(view.Filtered()))
}

func idsOf(rows []item) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func TestDisplayedColumnsAndActions(t *testing.T) {
	var dispatched []string
	cfg := Config[item]{
		Columns: []columns.Column[item]{{Key: "name", Label: "Nombre"}},
		Actions: []Action[item]{
			{Label: "Duplicar", Handler: func(r item) { dispatched = append(dispatched, "dup:"+r.ID) }},
			{Label: "Ver público", Show: func(r item) bool { return r.Active }},
		},
	}
	view := NewTableView([]item{}, cfg)
	var custom []string
	view.SetEvents(Events[item]{OnCustomAction: func(label string, r item) {
		custom = append(custom, label+":"+r.ID)
	}})

	assert.True(t, view.HasActions())
	assert.Equal(t, []string{"name", ActionsColumn}, view.DisplayedColumns())

	inactive := item{ID: "1"}
	assert.Len(t, view.VisibleActions(inactive), 1)
	assert.Len(t, view.VisibleActions(item{ID: "2", Active: true}), 2)

	assert.True(t, view.Dispatch("Duplicar", inactive))
	assert.False(t, view.Dispatch("Ver público", inactive))
	assert.False(t, view.Dispatch("Borrar", inactive))
	assert.Equal(t, []string{"dup:1"}, dispatched)
	assert.Equal(t, []string{"Duplicar:1"}, custom)

	plain := NewTableView([]item{}, nameOnly())
	assert.False(t, plain.HasActions())
	assert.Equal(t, []string{"name"}, plain.DisplayedColumns())
}

func TestRequestEvents(t *testing.T) {
	var got []string
	view := NewTableView([]item{}, nameOnly())
	view.RequestCreate()
	view.RequestEdit(item{ID: "x"})

	view.SetEvents(Events[item]{
		OnCreate: func() { got = append(got, "create") },
		OnEdit:   func(r item) { got = append(got, "edit:"+r.ID) },
		OnDelete: func(r item) { got = append(got, "delete:"+r.ID) },
		OnView:   func(r item) { got = append(got, "view:"+r.ID) },
	})
	view.RequestCreate()
	view.RequestEdit(item{ID: "1"})
	view.RequestDelete(item{ID: "2"})
	view.RequestView(item{ID: "3"})

	assert.Equal(t, []string{"create", "edit:1", "delete:2", "view:3"}, got)
}

func TestExportCSV(t *testing.T) {
	created := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	type row struct {
		Name    string    `json:"name"`
		Stock   int       `json:"stock"`
		Created time.Time `json:"createdAt"`
		Note    *string   `json:"note"`
	}
	cfg := Config[row]{Columns: []columns.Column[row]{
		{Key: "name", Label: "Nombre"},
		{Key: "stock", Label: "Stock", Format: func(v any, _ row) string {
			if v == 0 {
				return ""
			}
			return fmt.Sprintf("%d u", v)
		}},
		{Key: "createdAt", Label: "Creado", Type: columns.TypeDate},
		{Key: "note", Label: "Nota"},
	}}
	rows := []row{
		{Name: `Polera "roja", XL`, Stock: 3, Created: created},
		{Name: "Café", Stock: 0, Created: created},
		{Name: "Otro"},
	}
	view := NewTableView(rows, cfg)
	view.SetSearchTerm("o")
	view.SetPage(1, 1)

	export := view.ExportCSV()
	assert.Equal(t, "export.csv", export.Filename)
	assert.Equal(t, "text/csv", export.ContentType)
	want := strings.Join([]string{
		"Nombre,Stock,Creado,Nota",
		`"Polera "roja", XL","3 u","15-01-2025",""`,
		`"Otro","0","",""`,
	}, "\n")
	assert.Equal(t, want, string(export.Body))
}

func TestExportJSONRoundTrip(t *testing.T) {
	rows := []item{
		{ID: "1", Name: "Alpha", Price: price(10)},
		{ID: "2", Name: "Beta"},
		{ID: "3", Name: "Gamma", Owner: &person{Name: "Ana"}},
	}
	view := NewTableView(rows, nameOnly())
	view.SetSearchTerm("a")
	view.SetSort("name", Descending)
	view.SetPage(0, 1)

	export, err := view.ExportJSON()
	require.NoError(t, err)
	assert.Equal(t, "export.json", export.Filename)
	assert.Equal(t, "application/json", export.ContentType)
	assert.True(t, strings.HasPrefix(string(export.Body), "[\n  {\n    \"id\""))

	var decoded []item
	require.NoError(t, json.Unmarshal(export.Body, &decoded))
	if diff := cmp.Diff(view.Filtered(), decoded); diff != "" {
		t.Errorf("exported rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExportEmpty(t *testing.T) {
	view := NewTableView([]item{}, nameOnly())
	assert.Equal(t, "Name", string(view.ExportCSV().Body))

	export, err := view.ExportJSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(export.Body))
}

func TestRenderText(t *testing.T) {
	cfg := nameOnly()
	cfg.Title = "Inventario"
	cfg.EmptyMessage = "Sin filas"

	assert.Equal(t, "Sin filas\n", NewTableView([]item{}, cfg).RenderText())

	view := NewTableView(numbered(12), cfg)
	out := view.RenderText()
	assert.Contains(t, out, "Inventario")
	assert.Contains(t, out, "Item 10")
	assert.NotContains(t, out, "Item 11")
	assert.Contains(t, out, "page 1/2, 12 rows")
}
