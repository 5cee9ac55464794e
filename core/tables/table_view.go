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
	"math"
	"strings"

	"github.com/oferente/panel/core/columns"
)

// TableView is a collection of rows plus the view state (search term, sort
// and pagination window) used to derive its projections. The projections are
// recomputed on every call; the input rows are never reordered or mutated.
//
// A TableView is not safe for concurrent use. Build one per request from an
// immutable snapshot of the rows.
type TableView[T any] struct {
	rows   []T
	config Config[T]
	events Events[T]

	searchTerm    string
	pageIndex     int
	pageSize      int
	sortColumn    string
	sortDirection Direction
}

// NewTableView creates a view over rows. The page size starts at the
// configured default, or DefaultPageSize when the config sets none.
func NewTableView[T any](rows []T, config Config[T]) *TableView[T] {
	size := config.DefaultPageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	return &TableView[T]{
		rows:          rows,
		config:        config,
		pageSize:      size,
		sortDirection: Ascending,
	}
}

// SetEvents installs the callbacks used by the Request* methods and Dispatch.
func (t *TableView[T]) SetEvents(events Events[T]) {
	t.events = events
}

func (t *TableView[T]) Rows() []T { return t.rows }

func (t *TableView[T]) Config() Config[T] { return t.config }

func (t *TableView[T]) SearchTerm() string { return t.searchTerm }

func (t *TableView[T]) PageIndex() int { return t.pageIndex }

func (t *TableView[T]) PageSize() int { return t.pageSize }

func (t *TableView[T]) SortColumn() string { return t.sortColumn }

func (t *TableView[T]) SortDirection() Direction { return t.sortDirection }

// SetSearchTerm updates the search term and resets the page index to 0.
func (t *TableView[T]) SetSearchTerm(term string) {
	t.searchTerm = term
	t.pageIndex = 0
}

// SetSort orders the filtered projection by the resolved values of column.
// An empty column clears the ordering.
func (t *TableView[T]) SetSort(column string, direction Direction) {
	t.sortColumn = column
	if direction != Descending {
		direction = Ascending
	}
	t.sortDirection = direction
}

// SetPage moves the pagination window. Negative indexes clamp to 0 and a
// non-positive size keeps the current one.
func (t *TableView[T]) SetPage(index, size int) {
	if index < 0 {
		index = 0
	}
	t.pageIndex = index
	if size > 0 {
		t.pageSize = size
	}
}

// ResolveCell resolves key against row. Configured columns with a typed
// accessor use it; anything else is resolved as a dotted path.
func (t *TableView[T]) ResolveCell(row T, key string) any {
	if col, ok := t.config.Column(key); ok {
		return col.Resolve(row)
	}
	return columns.ResolvePath(row, key)
}

// FormatCell renders the display string of column for row.
func (t *TableView[T]) FormatCell(row T, column columns.Column[T]) string {
	return columns.FormatCell(row, column)
}

// Filtered returns the rows matching the search term, ordered by the current
// sort. A row matches when the string form of any configured column contains
// the term, ignoring case. An empty term matches every row.
func (t *TableView[T]) Filtered() []T {
	filtered := t.filter()
	if t.sortColumn != "" {
		t.sortRows(filtered, t.sortColumn, t.sortDirection)
	}
	return filtered
}

func (t *TableView[T]) filter() []T {
	out := make([]T, 0, len(t.rows))
	if t.searchTerm == "" {
		return append(out, t.rows...)
	}
	term := strings.ToLower(t.searchTerm)
	for _, row := range t.rows {
		if t.matches(row, term) {
			out = append(out, row)
		}
	}
	return out
}

func (t *TableView[T]) matches(row T, term string) bool {
	for _, col := range t.config.Columns {
		value := col.Resolve(row)
		if columns.IsNil(value) {
			continue
		}
		if strings.Contains(strings.ToLower(columns.Stringify(value)), term) {
			return true
		}
	}
	return false
}

// Paginated returns the current page of the filtered projection. Pages past
// the end are empty.
func (t *TableView[T]) Paginated() []T {
	filtered := t.Filtered()
	// Compare indexes before multiplying; pageIndex*pageSize may overflow.
	if len(filtered) == 0 || t.pageIndex > (len(filtered)-1)/t.pageSize {
		return []T{}
	}
	start := t.pageIndex * t.pageSize
	end := start + min(t.pageSize, len(filtered)-start)
	return filtered[start:end]
}

// Total is the number of rows in the filtered projection.
func (t *TableView[T]) Total() int {
	return len(t.filter())
}

// PageCount is the number of pages of the filtered projection; 0 when empty.
func (t *TableView[T]) PageCount() int {
	total := t.Total()
	pages := total / t.pageSize
	if total%t.pageSize != 0 {
		pages++
	}
	return pages
}

// PageNumber is the 1-based number of the current page, saturating at
// math.MaxInt.
func (t *TableView[T]) PageNumber() int {
	if t.pageIndex == math.MaxInt {
		return t.pageIndex
	}
	return t.pageIndex + 1
}

// HasActions reports whether rows carry an actions cell.
func (t *TableView[T]) HasActions() bool {
	return t.config.ShowEdit || t.config.ShowDelete || len(t.config.Actions) > 0
}

// DisplayedColumns returns the column keys in display order, followed by
// ActionsColumn when the table has actions.
func (t *TableView[T]) DisplayedColumns() []string {
	keys := make([]string, 0, len(t.config.Columns)+1)
	for _, col := range t.config.Columns {
		keys = append(keys, col.Key)
	}
	if t.HasActions() {
		keys = append(keys, ActionsColumn)
	}
	return keys
}

// VisibleActions returns the custom actions whose Show predicate accepts row.
func (t *TableView[T]) VisibleActions(row T) []Action[T] {
	var visible []Action[T]
	for _, a := range t.config.Actions {
		if a.Visible(row) {
			visible = append(visible, a)
		}
	}
	return visible
}

// Dispatch runs the custom action with the given label for row. It reports
// false when no such action exists or it is hidden for row.
func (t *TableView[T]) Dispatch(label string, row T) bool {
	for _, a := range t.config.Actions {
		if a.Label != label || !a.Visible(row) {
			continue
		}
		if a.Handler != nil {
			a.Handler(row)
		}
		if t.events.OnCustomAction != nil {
			t.events.OnCustomAction(label, row)
		}
		return true
	}
	return false
}

func (t *TableView[T]) RequestCreate() {
	if t.events.OnCreate != nil {
		t.events.OnCreate()
	}
}

func (t *TableView[T]) RequestEdit(row T) {
	if t.events.OnEdit != nil {
		t.events.OnEdit(row)
	}
}

func (t *TableView[T]) RequestDelete(row T) {
	if t.events.OnDelete != nil {
		t.events.OnDelete(row)
	}
}

func (t *TableView[T]) RequestView(row T) {
	if t.events.OnView != nil {
		t.events.OnView(row)
	}
}
