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

package dashboard

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/tidwall/jsonc"
	"golang.org/x/sync/errgroup"

	"github.com/oferente/panel/core/products"
)

//go:embed seed.jsonc
var seedJSONC []byte

// StaticRepository serves fixed dashboard data.
type StaticRepository struct {
	data Data
}

// NewStaticRepository parses the embedded seed document.
func NewStaticRepository() (*StaticRepository, error) {
	return ParseStatic(seedJSONC)
}

// ParseStatic builds a StaticRepository from a JSONC document shaped like DTO.
func ParseStatic(doc []byte) (*StaticRepository, error) {
	var dto DTO
	if err := json.Unmarshal(jsonc.ToJSON(doc), &dto); err != nil {
		return nil, fmt.Errorf("failed to parse dashboard data: %w", err)
	}
	return &StaticRepository{data: ToDomain(dto)}, nil
}

func (r *StaticRepository) Load(ctx context.Context) (Data, error) {
	if err := ctx.Err(); err != nil {
		return Data{}, err
	}
	d := r.data
	d.QuickActions = append([]QuickAction(nil), r.data.QuickActions...)
	d.RecentActivity = append([]RecentActivity(nil), r.data.RecentActivity...)
	return d, nil
}

// ProductLister is the part of a product repository the live dashboard needs.
type ProductLister interface {
	List(ctx context.Context) ([]products.Product, error)
}

// LiveRepository overlays live catalog figures on a base repository.
type LiveRepository struct {
	base     Repository
	products ProductLister
}

func NewLiveRepository(base Repository, products ProductLister) *LiveRepository {
	return &LiveRepository{base: base, products: products}
}

// Load fetches the base data and the product list concurrently and replaces
// ActiveProducts with the number of published products.
func (r *LiveRepository) Load(ctx context.Context) (Data, error) {
	var (
		data    Data
		catalog []products.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data, err = r.base.Load(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = r.products.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Data{}, err
	}

	active := 0
	for _, p := range catalog {
		if p.Active {
			active++
		}
	}
	data.Stats.ActiveProducts = active
	return data, nil
}

const cacheKey = "dashboard"

// CachedRepository remembers the last successful load for a TTL.
type CachedRepository struct {
	base  Repository
	cache *cache.Cache
}

// NewCachedRepository caches base for ttl. Expired entries are dropped on
// read; no janitor goroutine is started. A non-positive ttl disables caching.
func NewCachedRepository(base Repository, ttl time.Duration) *CachedRepository {
	r := &CachedRepository{base: base}
	if ttl > 0 {
		r.cache = cache.New(ttl, 0)
	}
	return r
}

func (r *CachedRepository) Load(ctx context.Context) (Data, error) {
	if r.cache == nil {
		return r.base.Load(ctx)
	}
	if v, ok := r.cache.Get(cacheKey); ok {
		return v.(Data), nil
	}
	d, err := r.base.Load(ctx)
	if err != nil {
		return Data{}, err
	}
	r.cache.SetDefault(cacheKey, d)
	return d, nil
}

// Invalidate forgets the cached data, e.g. after the catalog changed.
func (r *CachedRepository) Invalidate() {
	if r.cache != nil {
		r.cache.Delete(cacheKey)
	}
}
