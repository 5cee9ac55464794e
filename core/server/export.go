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

package server

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/oferente/panel/core/products"
	"github.com/oferente/panel/core/tables"
)

// handleExport serves the filtered and sorted product list as a download.
// The ETag is the BLAKE3 digest of the body, so unchanged exports revalidate
// with a 304.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	view, _, err := s.loadTable(r, products.TableActions{})
	if err != nil {
		s.fail(w, r, err, s.catalog.Snapshot().Error)
		return
	}

	var export tables.Export
	if strings.HasSuffix(r.URL.Path, ".json") {
		export, err = view.ExportJSON()
		if err != nil {
			s.fail(w, r, err, "")
			return
		}
	} else {
		export = view.ExportCSV()
	}

	sum := blake3.Sum256(export.Body)
	etag := `"` + hex.EncodeToString(sum[:16]) + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Write(export.Body)
}
