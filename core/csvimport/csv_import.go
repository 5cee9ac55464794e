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

package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmpty is returned when the input holds no data rows.
var ErrEmpty = errors.New("CSV file has no data rows")

// ColumnSource maps a CSV header to a field name.
type ColumnSource struct {
	Name string
}

// ImportOptions configures CSV import
type ImportOptions struct {
	// HasHeader indicates if the first row contains column names. Without a
	// header, columns are named column_1, column_2, ...
	HasHeader bool

	// Delimiter is the field delimiter (default: ',')
	Delimiter rune

	// ColumnSources renames headers, keyed by header. Matching ignores case
	// and surrounding spaces.
	ColumnSources map[string]ColumnSource

	// Required lists field names that must be present in the header.
	Required []string
}

// DefaultOptions returns default import options
func DefaultOptions() ImportOptions {
	return ImportOptions{
		HasHeader:     true,
		Delimiter:     ',',
		ColumnSources: make(map[string]ColumnSource),
	}
}

// Record is one data row keyed by field name.
type Record struct {
	Line   int
	Fields map[string]string
}

// Get returns the trimmed value of field, or "" when absent.
func (r Record) Get(field string) string {
	return strings.TrimSpace(r.Fields[field])
}

// Has reports whether the row carries field.
func (r Record) Has(field string) bool {
	_, ok := r.Fields[field]
	return ok
}

// ImportFromFile reads the records of a CSV file.
func ImportFromFile(filepath string, options ImportOptions) ([]Record, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ImportFromReader(file, options)
}

// ImportFromReader reads the records of CSV data. Quotes are parsed leniently
// so that hand-edited files and unescaped exports still load.
func ImportFromReader(reader io.Reader, options ImportOptions) ([]Record, error) {
	csvReader := csv.NewReader(reader)
	if options.Delimiter != 0 {
		csvReader.Comma = options.Delimiter
	}
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	var records [][]string
	var lines []int
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := csvReader.FieldPos(0)
		records = append(records, row)
		lines = append(lines, line)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	var headers []string
	dataRows := records
	if options.HasHeader {
		headers = fieldNames(records[0], options.ColumnSources)
		dataRows = records[1:]
		lines = lines[1:]
	} else {
		headers = make([]string, len(records[0]))
		for i := range headers {
			headers[i] = fmt.Sprintf("column_%d", i+1)
		}
	}

	for _, req := range options.Required {
		found := false
		for _, h := range headers {
			if h == req {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("missing required column %q", req)
		}
	}

	if len(dataRows) == 0 {
		return nil, ErrEmpty
	}

	out := make([]Record, 0, len(dataRows))
	for i, row := range dataRows {
		if isBlank(row) {
			continue
		}
		rec := Record{Line: lines[i], Fields: make(map[string]string, len(headers))}
		for j, value := range row {
			if j < len(headers) {
				rec.Fields[headers[j]] = value
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func fieldNames(header []string, sources map[string]ColumnSource) []string {
	lookup := make(map[string]string, len(sources))
	for h, src := range sources {
		lookup[normalize(h)] = src.Name
	}
	names := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		key := normalize(h)
		if name, ok := lookup[key]; ok {
			names[i] = name
		} else {
			names[i] = strings.TrimSpace(h)
		}
	}
	return names
}

func normalize(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
