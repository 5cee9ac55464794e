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
	"slices"

	"github.com/oferente/panel/core/columns"
)

// sortRows stably orders rows in place by the resolved values of key.
// Nil values sort after everything else when ascending and before everything
// else when descending.
func (t *TableView[T]) sortRows(rows []T, key string, direction Direction) {
	// Resolve once per row; accessors and path lookups may be costly.
	type keyed struct {
		row   T
		value any
	}
	items := make([]keyed, len(rows))
	for i, row := range rows {
		items[i] = keyed{row: row, value: t.ResolveCell(row, key)}
	}
	slices.SortStableFunc(items, func(a, b keyed) int {
		cmp := columns.CompareValues(a.value, b.value)
		if direction == Descending {
			return -cmp
		}
		return cmp
	})
	for i, item := range items {
		rows[i] = item.row
	}
}
