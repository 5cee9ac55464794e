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
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/oferente/panel/core/columns"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// RenderText renders the current page as a bordered terminal table, followed
// by a page footer. An empty projection renders the empty message instead.
func (t *TableView[T]) RenderText() string {
	page := t.Paginated()
	if len(page) == 0 {
		msg := t.config.EmptyMessage
		if msg == "" {
			msg = "No data"
		}
		return msg + "\n"
	}

	cols := t.config.Columns
	rows := make([][]string, len(page))
	for i, row := range page {
		cells := make([]string, len(cols))
		for j, col := range cols {
			cells[j] = columns.FormatCell(row, col)
		}
		rows[i] = cells
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.config.Labels()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			style := cellStyle
			if col < len(cols) {
				switch cols[col].EffectiveAlign() {
				case columns.AlignRight:
					style = style.Align(lipgloss.Right)
				case columns.AlignCenter:
					style = style.Align(lipgloss.Center)
				}
			}
			return style
		})

	footer := fmt.Sprintf("page %d/%d, %d rows", t.PageNumber(), max(t.PageCount(), 1), t.Total())
	out := ""
	if t.config.Title != "" {
		out = headerStyle.Render(t.config.Title) + "\n"
	}
	return out + tbl.String() + "\n" + footerStyle.Render(footer) + "\n"
}
