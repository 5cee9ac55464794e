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
	"strings"

	"github.com/oferente/panel/core/columns"
)

// Export is a serialized projection ready to be offered as a download.
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportCSV serializes the filtered projection. Every cell is wrapped in
// double quotes without escaping, so embedded quotes and commas are emitted
// as is. A cell whose formatted value is empty falls back to the raw value.
func (t *TableView[T]) ExportCSV() Export {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.config.Labels(), ","))
	for _, row := range t.Filtered() {
		sb.WriteByte('\n')
		for i, col := range t.config.Columns {
			if i > 0 {
				sb.WriteByte(',')
			}
			value := columns.FormatCell(row, col)
			if value == "" {
				value = columns.Stringify(col.Resolve(row))
			}
			sb.WriteString(`"` + value + `"`)
		}
	}
	return Export{Filename: "export.csv", ContentType: "text/csv", Body: []byte(sb.String())}
}

// ExportJSON serializes the filtered projection as a 2-space indented array
// of the rows as given.
func (t *TableView[T]) ExportJSON() (Export, error) {
	rows := t.Filtered()
	body, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return Export{}, fmt.Errorf("failed to encode %d rows: %w", len(rows), err)
	}
	return Export{Filename: "export.json", ContentType: "application/json", Body: body}, nil
}
