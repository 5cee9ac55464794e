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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oferente/panel/core/csvimport"
)

// importSources accepts both the field keys and the labels written by the
// table export, so an exported file can be imported back.
var importSources = map[string]csvimport.ColumnSource{
	"name":        {Name: "name"},
	"nombre":      {Name: "name"},
	"description": {Name: "description"},
	"descripción": {Name: "description"},
	"price":       {Name: "price"},
	"precio":      {Name: "price"},
	"category":    {Name: "category"},
	"categoría":   {Name: "category"},
	"stock":       {Name: "stock"},
	"active":      {Name: "active"},
	"estado":      {Name: "active"},
	"imageurl":    {Name: "imageUrl"},
	"imagen":      {Name: "imageUrl"},
}

// ImportCSV reads products from CSV with a header row. Recognized columns are
// name, description, price, category, stock, active and imageUrl; only name
// is required. The first invalid row aborts the import.
func ImportCSV(r io.Reader) ([]CreateData, error) {
	opts := csvimport.DefaultOptions()
	opts.ColumnSources = importSources
	opts.Required = []string{"name"}

	records, err := csvimport.ImportFromReader(r, opts)
	if err != nil {
		return nil, err
	}

	out := make([]CreateData, 0, len(records))
	for _, rec := range records {
		d, err := recordToData(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", rec.Line, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func recordToData(rec csvimport.Record) (CreateData, error) {
	d := CreateData{
		Name:        rec.Get("name"),
		Description: rec.Get("description"),
		Category:    rec.Get("category"),
		ImageURL:    rec.Get("imageUrl"),
		Active:      true,
	}
	var err error
	if v := rec.Get("price"); v != "" {
		if d.Price, err = parsePrice(v); err != nil {
			return CreateData{}, fmt.Errorf("%w: price %q", ErrInvalid, v)
		}
	}
	if v := rec.Get("stock"); v != "" && !strings.EqualFold(v, "Sin stock") {
		if d.Stock, err = strconv.Atoi(v); err != nil {
			return CreateData{}, fmt.Errorf("%w: stock %q", ErrInvalid, v)
		}
	}
	if v := rec.Get("active"); v != "" {
		if d.Active, err = strconv.ParseBool(v); err != nil {
			return CreateData{}, fmt.Errorf("%w: active %q", ErrInvalid, v)
		}
	}
	if d.Category == "" {
		d.Category = "Otros"
	}
	return d, d.Validate()
}

// parsePrice accepts plain numbers ("599990", "12.5") and es-CL formatted
// prices ("$599.990", "12,5").
func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if !looksGrouped(s) && !strings.Contains(s, ",") {
		return strconv.ParseFloat(s, 64)
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// looksGrouped reports whether s uses "." as a thousands separator, as in
// "599.990" or "1.234.567".
func looksGrouped(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return false
	}
	for _, p := range parts[1:] {
		if len(p) != 3 {
			return false
		}
	}
	return true
}
