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

import "github.com/oferente/panel/core/columns"

// DefaultPageSize is used when a Config does not set one.
const DefaultPageSize = 10

// ActionsColumn is the synthetic column key appended to the displayed columns
// when a table has row actions.
const ActionsColumn = "actions"

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection maps "desc" to Descending and everything else to Ascending.
func ParseDirection(s string) Direction {
	if Direction(s) == Descending {
		return Descending
	}
	return Ascending
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Color is the accent of a row action button.
type Color string

const (
	ColorPrimary Color = "primary"
	ColorAccent  Color = "accent"
	ColorWarn    Color = "warn"
)

// Action is a row-level operation. The table never runs business logic
// itself; it only decides visibility and dispatches to Handler.
type Action[T any] struct {
	Label   string
	Icon    string
	Color   Color
	Tooltip string
	Handler func(row T)
	Show    func(row T) bool
}

// Visible reports whether the action applies to row. Actions without a Show
// predicate are always visible.
func (a Action[T]) Visible(row T) bool {
	return a.Show == nil || a.Show(row)
}

// Events are the callbacks fired by the built-in create/edit/delete/view
// affordances and by custom actions.
type Events[T any] struct {
	OnCreate       func()
	OnEdit         func(row T)
	OnDelete       func(row T)
	OnView         func(row T)
	OnCustomAction func(label string, row T)
}

// Config describes the columns, actions and affordances of a table.
type Config[T any] struct {
	Title           string
	Columns         []columns.Column[T]
	Actions         []Action[T]
	ShowSearch      bool
	ShowCreate      bool
	ShowEdit        bool
	ShowDelete      bool
	ShowExport      bool
	PageSizeOptions []int
	DefaultPageSize int
	EmptyMessage    string
}

// Column returns the configured column with the given key.
func (c Config[T]) Column(key string) (columns.Column[T], bool) {
	for _, col := range c.Columns {
		if col.Key == key {
			return col, true
		}
	}
	return columns.Column[T]{}, false
}

// Labels returns the column labels in display order.
func (c Config[T]) Labels() []string {
	labels := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		labels[i] = col.Label
	}
	return labels
}
