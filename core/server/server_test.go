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
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oferente/panel/core/branding"
	"github.com/oferente/panel/core/dashboard"
	"github.com/oferente/panel/core/products"
)

type fixture struct {
	handler  http.Handler
	repo     *products.MemoryRepository
	branding *branding.Service
}

func seed() []products.Product {
	created := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	return []products.Product{
		{ID: "1", Name: "Teclado mecánico", Description: "Switches **rojos**", Price: 59990, Category: "Electrónica", Stock: 3, Active: true, CreatedAt: created},
		{ID: "2", Name: "Polera", Price: 12990, Category: "Ropa", Stock: 0, Active: false, CreatedAt: created.Add(time.Hour)},
		{ID: "3", Name: "Café", Price: 8990, Category: "Alimentos", Stock: 20, Active: true, CreatedAt: created.Add(2 * time.Hour)},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := products.NewMemoryRepository(seed())
	catalog := products.NewCatalog(products.NewUseCases(repo, nil), nil)

	static, err := dashboard.NewStaticRepository()
	require.NoError(t, err)
	dash := dashboard.NewService(dashboard.NewCachedRepository(dashboard.NewLiveRepository(static, repo), time.Minute), nil)

	registry, err := branding.NewRegistry()
	require.NoError(t, err)
	brand := branding.NewService(t.Context(), registry, branding.NewMemoryPreferences(), nil)

	srv, err := NewServer(Options{Catalog: catalog, Dashboard: dash, Branding: brand, DefaultPageSize: 2})
	require.NoError(t, err)
	return &fixture{handler: srv.Handler(), repo: repo, branding: brand}
}

func (f *fixture) do(t *testing.T, method, target string, body io.Reader, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	return f.do(t, http.MethodGet, target, nil, nil)
}

func (f *fixture) postForm(t *testing.T, target string, form url.Values) *httptest.ResponseRecorder {
	return f.do(t, http.MethodPost, target, strings.NewReader(form.Encode()),
		http.Header{"Content-Type": {"application/x-www-form-urlencoded"}})
}

func TestRootRedirects(t *testing.T) {
	rec := newFixture(t).get(t, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/oferente/dashboard", rec.Header().Get("Location"))
}

func TestDashboardPage(t *testing.T) {
	rec := newFixture(t).get(t, "/oferente/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Productos activos")
}

func TestProductsPage(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/oferente/products?sort=price&dir=desc")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Teclado mecánico")
	assert.Contains(t, body, "Polera")
	assert.NotContains(t, body, "Café", "page size 2 leaves the cheapest product on page 2")
	assert.Contains(t, body, "Página 1 de 2")

	rec = f.get(t, "/oferente/products?q=caf")
	body = rec.Body.String()
	assert.Contains(t, body, "Café")
	assert.NotContains(t, body, "Polera")
}

func TestProductPage(t *testing.T) {
	f := newFixture(t)
	rec := f.get(t, "/oferente/products/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<strong>rojos</strong>")
	assert.Contains(t, rec.Body.String(), "$59.990")

	rec = f.get(t, "/oferente/products/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProduct(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/oferente/products/new")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Crear Producto")

	rec = f.postForm(t, "/oferente/products/new", url.Values{
		"name": {"Mochila"}, "price": {"24990"}, "stock": {"5"}, "category": {"Deportes"}, "active": {"on"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/oferente/products?notice=created", rec.Header().Get("Location"))

	ps, err := f.repo.List(t.Context())
	require.NoError(t, err)
	require.Len(t, ps, 4)
	assert.Equal(t, "Mochila", ps[3].Name)
	assert.True(t, ps[3].Active)

	rec = f.get(t, "/oferente/products?notice=created&q=mochila")
	assert.Contains(t, rec.Body.String(), "Producto creado exitosamente")
}

func TestCreateProductInvalid(t *testing.T) {
	f := newFixture(t)
	rec := f.postForm(t, "/oferente/products/new", url.Values{
		"name": {"  "}, "price": {"10"}, "stock": {"1"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name is required")

	rec = f.postForm(t, "/oferente/products/new", url.Values{
		"name": {"Mochila"}, "price": {"mucho"}, "stock": {"1"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Mochila"`, "typed values are kept")
}

func TestUpdateProduct(t *testing.T) {
	f := newFixture(t)
	rec := f.get(t, "/oferente/products/2/edit")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Polera"`)

	rec = f.postForm(t, "/oferente/products/2/edit", url.Values{
		"name": {"Polera azul"}, "price": {"14990"}, "stock": {"7"}, "category": {"Ropa"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	p, err := f.repo.Get(t.Context(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Polera azul", p.Name)
	assert.Equal(t, 7, p.Stock)
	assert.NotNil(t, p.UpdatedAt)

	rec = f.postForm(t, "/oferente/products/99/edit", url.Values{"name": {"x"}, "price": {"1"}, "stock": {"1"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	f := newFixture(t)
	rec := f.get(t, "/oferente/products/3/delete")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "¿Estás seguro de eliminar")

	rec = f.postForm(t, "/oferente/products/3/delete", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	_, err := f.repo.Get(t.Context(), "3")
	assert.ErrorIs(t, err, products.ErrNotFound)
}

func TestRowActions(t *testing.T) {
	f := newFixture(t)

	rec := f.postForm(t, "/oferente/products/1/actions/Duplicar", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/oferente/products?notice=duplicated", rec.Header().Get("Location"))
	ps, err := f.repo.List(t.Context())
	require.NoError(t, err)
	require.Len(t, ps, 4)
	assert.Equal(t, "Teclado mecánico (Copia)", ps[3].Name)

	rec = f.postForm(t, "/oferente/products/1/actions/"+url.PathEscape("Ver público"), nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/oferente/products/1?notice=public", rec.Header().Get("Location"))

	// Hidden for inactive products.
	rec = f.postForm(t, "/oferente/products/2/actions/"+url.PathEscape("Ver público"), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.postForm(t, "/oferente/products/1/actions/Borrar", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExports(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/oferente/products/export.csv?sort=price")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="export.csv"`, rec.Header().Get("Content-Disposition"))
	lines := strings.Split(rec.Body.String(), "\n")
	require.Len(t, lines, 4, "exports ignore pagination")
	assert.Equal(t, "Imagen,Nombre,Categoría,Precio,Stock,Estado,Creado", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `"","Café"`))

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	rec = f.do(t, http.MethodGet, "/oferente/products/export.csv?sort=price", nil, http.Header{"If-None-Match": {etag}})
	assert.Equal(t, http.StatusNotModified, rec.Code)

	rec = f.get(t, "/oferente/products/export.json?q=polera")
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []products.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "2", rows[0].ID)
	assert.NotEqual(t, etag, rec.Header().Get("ETag"))
}

func TestHugePageIndexesDoNotOverflow(t *testing.T) {
	f := newFixture(t)
	for _, target := range []string{
		"/oferente/products?page=922337203685477581&size=10",
		"/oferente/products?page=9223372036854775807",
		"/oferente/products?size=9223372036854775807",
	} {
		rec := f.get(t, target)
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}

	rec := f.get(t, "/oferente/products?size=9223372036854775807")
	assert.Contains(t, rec.Body.String(), "Café")

	rec = f.get(t, "/oferente/products/export.csv?page=922337203685477581&size=10")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Len(t, strings.Split(rec.Body.String(), "\n"), 4)
}

func TestImport(t *testing.T) {
	f := newFixture(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "productos.csv")
	require.NoError(t, err)
	io.WriteString(part, "Nombre,Precio,Stock\nLámpara,15990,4\nSilla,\"$45.990\",2\n")
	require.NoError(t, mw.Close())

	rec := f.do(t, http.MethodPost, "/oferente/products/import", &body, http.Header{"Content-Type": {mw.FormDataContentType()}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	ps, err := f.repo.List(t.Context())
	require.NoError(t, err)
	require.Len(t, ps, 5)
	assert.Equal(t, 45990.0, ps[4].Price)

	rec = f.do(t, http.MethodPost, "/oferente/products/import", strings.NewReader("x"), http.Header{"Content-Type": {"text/plain"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBrandingPages(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/oferente/branding")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Naturaleza")

	rec = f.postForm(t, "/oferente/branding", url.Values{"op": {"theme"}, "theme": {"ocean"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, branding.ThemeID("ocean"), f.branding.State().Theme)

	rec = f.postForm(t, "/oferente/branding", url.Values{"op": {"theme"}, "theme": {"neon"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, branding.ThemeID("ocean"), f.branding.State().Theme)

	rec = f.postForm(t, "/oferente/branding", url.Values{"op": {"font"}, "font": {"inter"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/oferente/branding", strings.NewReader("op=toggle"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "http://example.com/oferente/products?q=a")
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/oferente/products?q=a", rr.Header().Get("Location"))
	assert.Equal(t, branding.Dark, f.branding.State().Mode)

	rec = f.get(t, "/theme.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `:root[data-theme="ocean"][data-mode="dark"]`)
	assert.Contains(t, rec.Body.String(), "'Inter'")

	rec = f.postForm(t, "/oferente/branding", url.Values{"op": {"reset"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, branding.DefaultState, f.branding.State())
}

func TestAPIProducts(t *testing.T) {
	srv := httptest.NewServer(newFixture(t).handler)
	t.Cleanup(srv.Close)

	// The HTTP repository is the client of this API.
	repo, err := products.NewHTTPRepository(srv.URL, srv.Client())
	require.NoError(t, err)
	ctx := t.Context()

	ps, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 3)

	created, err := repo.Create(ctx, products.CreateData{Name: "Mate", Price: 6990, Category: "Hogar", Stock: 8, Active: true})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	name := "Mate de calabaza"
	updated, err := repo.Update(ctx, created.ID, products.UpdateData{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, 6990.0, updated.Price)

	dup, err := repo.Duplicate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mate de calabaza (Copia)", dup.Name)
	assert.False(t, dup.Active)

	require.NoError(t, repo.Delete(ctx, dup.ID))
	_, err = repo.Get(ctx, dup.ID)
	assert.ErrorIs(t, err, products.ErrNotFound)
}

func TestAPIErrors(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/oferente/products", strings.NewReader(`{"name": ""}`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var e apiError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Contains(t, e.Error, "name is required")

	rec = f.do(t, http.MethodPost, "/api/oferente/products", strings.NewReader(`{"nombre": "x"}`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodDelete, "/api/oferente/products/404", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIDashboardReflectsMutations(t *testing.T) {
	f := newFixture(t)

	active := func() int {
		rec := f.get(t, "/api/oferente/dashboard")
		require.Equal(t, http.StatusOK, rec.Code)
		var d dashboard.DTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
		return d.Stats.ActiveProducts
	}
	assert.Equal(t, 2, active())

	rec := f.do(t, http.MethodPost, "/api/oferente/products", strings.NewReader(`{"name": "Mate", "active": true}`), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 3, active(), "mutations invalidate the cached dashboard")
}

func TestAPIBranding(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/api/oferente/branding")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"theme": "violet", "mode": "light", "fontFamily": "roboto"}`, rec.Body.String())

	rec = f.do(t, http.MethodPut, "/api/oferente/branding", strings.NewReader(`{"theme": "fire", "mode": "dark"}`), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"theme": "fire", "mode": "dark", "fontFamily": "roboto"}`, rec.Body.String())

	rec = f.do(t, http.MethodPut, "/api/oferente/branding", strings.NewReader(`{"theme": "snow", "fontFamily": "comic"}`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, branding.ThemeID("fire"), f.branding.State().Theme, "rejected updates change nothing")
}

func TestGzip(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/oferente/products", nil, http.Header{"Accept-Encoding": {"gzip"}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	html, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Mis Productos")
}

func TestNewServerRequiresServices(t *testing.T) {
	_, err := NewServer(Options{})
	assert.Error(t, err)
}
