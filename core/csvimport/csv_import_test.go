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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestImportBasicCSV(t *testing.T) {
	csvData := `name,price,category
Notebook,599990,Electrónica
Polera,12990,Ropa

Café,4990,Alimentos`

	records, err := ImportFromReader(strings.NewReader(csvData), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to import CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if got := records[0].Get("name"); got != "Notebook" {
		t.Errorf("expected 'Notebook', got '%s'", got)
	}
	if got := records[2].Line; got != 5 {
		t.Errorf("expected line 5 for the last record, got %d", got)
	}
	if records[1].Has("stock") {
		t.Error("expected no stock field")
	}
}

func TestImportWithoutHeader(t *testing.T) {
	options := DefaultOptions()
	options.HasHeader = false

	records, err := ImportFromReader(strings.NewReader("Alpha,1\nBeta,2"), options)
	if err != nil {
		t.Fatalf("failed to import CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[1].Get("column_2"); got != "2" {
		t.Errorf("expected '2', got '%s'", got)
	}
}

func TestImportColumnSources(t *testing.T) {
	options := DefaultOptions()
	options.Delimiter = ';'
	options.ColumnSources["Nombre"] = ColumnSource{Name: "name"}
	options.Required = []string{"name"}

	records, err := ImportFromReader(strings.NewReader("\ufeff NOMBRE ;Stock\n\"Silla\";8"), options)
	if err != nil {
		t.Fatalf("failed to import CSV: %v", err)
	}
	if got := records[0].Get("name"); got != "Silla" {
		t.Errorf("expected 'Silla', got '%s'", got)
	}
	if got := records[0].Get("Stock"); got != "8" {
		t.Errorf("expected '8', got '%s'", got)
	}
}

func TestImportErrors(t *testing.T) {
	if _, err := ImportFromReader(strings.NewReader(""), DefaultOptions()); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	if _, err := ImportFromReader(strings.NewReader("name\n"), DefaultOptions()); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty for header only, got %v", err)
	}

	options := DefaultOptions()
	options.Required = []string{"price"}
	if _, err := ImportFromReader(strings.NewReader("name\nx"), options); err == nil {
		t.Error("expected missing column error")
	}
}

func TestImportFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	if err := os.WriteFile(path, []byte("name\nTeclado"), 0o644); err != nil {
		t.Fatal(err)
	}
	records, err := ImportFromFile(path, DefaultOptions())
	if err != nil {
		t.Fatalf("failed to import file: %v", err)
	}
	if len(records) != 1 || records[0].Get("name") != "Teclado" {
		t.Errorf("unexpected records %+v", records)
	}

	if _, err := ImportFromFile(filepath.Join(t.TempDir(), "missing.csv"), DefaultOptions()); err == nil {
		t.Error("expected error for missing file")
	}
}
