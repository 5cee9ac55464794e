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

package query

import (
	"net/url"
	"path"
	"strconv"

	"github.com/google/safehtml"

	"github.com/oferente/panel/core/tables"
)

// Query is the view state of a table page as carried in its URL:
//
//	/oferente/products?q=polera&sort=price&dir=desc&page=2&size=25
type Query struct {
	// Base path (e.g., "/oferente/products")
	Path string

	Search    string
	Sort      string
	Direction tables.Direction
	Page      int // 0-based
	Size      int // 0 = table default
}

// View is the part of a table view a Query drives.
type View interface {
	SetSearchTerm(term string)
	SetSort(column string, direction tables.Direction)
	SetPage(index, size int)
	PageSize() int
}

// NewQuery creates a Query from a URL. Malformed numbers are ignored.
func NewQuery(u *url.URL) *Query {
	q := u.Query()
	state := &Query{
		Path:      u.Path,
		Search:    q.Get("q"),
		Sort:      q.Get("sort"),
		Direction: tables.ParseDirection(q.Get("dir")),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		state.Page = page
	}
	if size, err := strconv.Atoi(q.Get("size")); err == nil && size > 0 {
		state.Size = size
	}
	return state
}

// Apply transfers the state to v. The search term goes first because it
// resets the page index.
func (s *Query) Apply(v View) {
	v.SetSearchTerm(s.Search)
	v.SetSort(s.Sort, s.Direction)
	size := s.Size
	if size <= 0 {
		size = v.PageSize()
	}
	v.SetPage(s.Page, size)
}

// Clone creates a copy of the Query
func (s *Query) Clone() *Query {
	clone := *s
	return &clone
}

// ToURL converts the Query back to a URL string. Defaults are omitted.
func (s *Query) ToURL() string {
	return s.encode(s.Path)
}

func (s *Query) encode(p string) string {
	u := &url.URL{Path: p}
	q := u.Query()
	if s.Search != "" {
		q.Set("q", s.Search)
	}
	if s.Sort != "" {
		q.Set("sort", s.Sort)
		q.Set("dir", string(s.Direction))
	}
	if s.Page > 0 {
		q.Set("page", strconv.Itoa(s.Page))
	}
	if s.Size > 0 {
		q.Set("size", strconv.Itoa(s.Size))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// ToSafeURL converts the Query to a safehtml.URL
func (s *Query) ToSafeURL() safehtml.URL {
	return safehtml.URLSanitized(s.ToURL())
}

// WithSearch returns a URL with a different search term, back on the first page.
func (s *Query) WithSearch(term string) safehtml.URL {
	next := s.Clone()
	next.Search = term
	next.Page = 0
	return next.ToSafeURL()
}

// WithSort returns the URL a column header links to. Clicking the column the
// table is already sorted by ascending flips it to descending; any other
// click sorts ascending.
func (s *Query) WithSort(column string) safehtml.URL {
	next := s.Clone()
	next.Direction = tables.Ascending
	if s.Sort == column {
		next.Direction = s.Direction.Toggle()
	}
	next.Sort = column
	return next.ToSafeURL()
}

// WithPage returns a URL for page index (0-based).
func (s *Query) WithPage(index int) safehtml.URL {
	next := s.Clone()
	next.Page = max(index, 0)
	return next.ToSafeURL()
}

// WithPageSize returns a URL with a different page size, back on the first page.
func (s *Query) WithPageSize(size int) safehtml.URL {
	next := s.Clone()
	next.Size = size
	next.Page = 0
	return next.ToSafeURL()
}

// ExportURL returns the download URL for format ("csv" or "json"). It keeps
// search and sort but not the pagination window since exports cover every
// filtered row.
func (s *Query) ExportURL(format string) safehtml.URL {
	next := s.Clone()
	next.Page, next.Size = 0, 0
	return safehtml.URLSanitized(next.encode(path.Join(s.Path, "export."+format)))
}

// IsSortedBy reports whether the table is sorted by column, and in which
// direction.
func (s *Query) IsSortedBy(column string) (bool, tables.Direction) {
	if s.Sort != column || column == "" {
		return false, ""
	}
	return true, s.Direction
}
