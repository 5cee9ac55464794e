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
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// State is a snapshot of the catalog as shown by the product pages.
type State struct {
	Products []Product
	Selected *Product
	Loading  bool
	Error    string
}

// HasProducts reports whether the catalog holds any product.
func (s State) HasProducts() bool { return len(s.Products) > 0 }

// Catalog keeps the loaded products and the last failure in memory, and is
// the single entry point the pages use to change them.
type Catalog struct {
	uc     *UseCases
	logger *zap.Logger

	mu    sync.RWMutex
	state State
}

func NewCatalog(uc *UseCases, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{uc: uc, logger: logger.Named("catalog")}
}

// Snapshot returns a copy of the current state.
func (c *Catalog) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.state
	s.Products = slices.Clone(c.state.Products)
	if s.Selected != nil {
		sel := *s.Selected
		s.Selected = &sel
	}
	return s
}

func (c *Catalog) ClearError() {
	c.mu.Lock()
	c.state.Error = ""
	c.mu.Unlock()
}

// Load replaces the product list.
func (c *Catalog) Load(ctx context.Context) error {
	c.setLoading()
	ps, err := c.uc.ListProducts(ctx)
	if err != nil {
		return c.fail("Failed to load products", err)
	}
	c.update(func(s *State) { s.Products = ps })
	return nil
}

// LoadOne selects a single product.
func (c *Catalog) LoadOne(ctx context.Context, id string) (Product, error) {
	c.setLoading()
	p, err := c.uc.GetProduct(ctx, id)
	if err != nil {
		return Product{}, c.fail("Failed to load product", err)
	}
	c.mu.Lock()
	c.state.Selected = &p
	c.state.Loading = false
	c.mu.Unlock()
	return p, nil
}

func (c *Catalog) Create(ctx context.Context, data CreateData) (Product, error) {
	c.setLoading()
	p, err := c.uc.CreateProduct(ctx, data)
	if err != nil {
		return Product{}, c.fail("Failed to create product", err)
	}
	c.update(func(s *State) { s.Products = append(s.Products, p) })
	return p, nil
}

func (c *Catalog) Update(ctx context.Context, id string, data UpdateData) (Product, error) {
	c.setLoading()
	p, err := c.uc.UpdateProduct(ctx, id, data)
	if err != nil {
		return Product{}, c.fail("Failed to update product", err)
	}
	c.update(func(s *State) {
		for i := range s.Products {
			if s.Products[i].ID == p.ID {
				s.Products[i] = p
			}
		}
		if s.Selected != nil && s.Selected.ID == p.ID {
			s.Selected = &p
		}
	})
	return p, nil
}

func (c *Catalog) Delete(ctx context.Context, id string) error {
	c.setLoading()
	if err := c.uc.DeleteProduct(ctx, id); err != nil {
		return c.fail("Failed to delete product", err)
	}
	c.update(func(s *State) {
		s.Products = slices.DeleteFunc(s.Products, func(p Product) bool { return p.ID == id })
		if s.Selected != nil && s.Selected.ID == id {
			s.Selected = nil
		}
	})
	return nil
}

func (c *Catalog) Duplicate(ctx context.Context, id string) (Product, error) {
	c.setLoading()
	p, err := c.uc.DuplicateProduct(ctx, id)
	if err != nil {
		return Product{}, c.fail("Failed to duplicate product", err)
	}
	c.update(func(s *State) { s.Products = append(s.Products, p) })
	return p, nil
}

func (c *Catalog) setLoading() {
	c.mu.Lock()
	c.state.Loading = true
	c.mu.Unlock()
}

// update applies a successful mutation, which also clears the last error.
func (c *Catalog) update(fn func(s *State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.state)
	c.state.Loading = false
	c.state.Error = ""
}

// fail records msg as the visible error and returns err unchanged.
func (c *Catalog) fail(msg string, err error) error {
	c.logger.Warn(msg, zap.Error(err))
	c.mu.Lock()
	c.state.Loading = false
	c.state.Error = msg
	c.mu.Unlock()
	return err
}
