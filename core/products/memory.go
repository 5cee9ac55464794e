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
	"fmt"
	"slices"
	"sync"
)

// MemoryRepository keeps products in insertion order in memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	products []Product
	ids
}

// NewMemoryRepository returns a repository seeded with a copy of seed.
func NewMemoryRepository(seed []Product) *MemoryRepository {
	return &MemoryRepository{products: slices.Clone(seed), ids: defaultIDs()}
}

func (r *MemoryRepository) List(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.products), nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(id)
	if i < 0 {
		return Product{}, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	return r.products[i], nil
}

func (r *MemoryRepository) Create(ctx context.Context, data CreateData) (Product, error) {
	if err := data.Validate(); err != nil {
		return Product{}, err
	}
	p := New(r.newID(), data, r.now())
	r.mu.Lock()
	r.products = append(r.products, p)
	r.mu.Unlock()
	return p, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, data UpdateData) (Product, error) {
	if err := data.Validate(); err != nil {
		return Product{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return Product{}, fmt.Errorf("update %q: %w", id, ErrNotFound)
	}
	r.products[i] = r.products[i].Apply(data, r.now())
	return r.products[i], nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return fmt.Errorf("delete %q: %w", id, ErrNotFound)
	}
	r.products = slices.Delete(r.products, i, i+1)
	return nil
}

func (r *MemoryRepository) Duplicate(ctx context.Context, id string) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return Product{}, fmt.Errorf("duplicate %q: %w", id, ErrNotFound)
	}
	p := r.products[i].Copy(r.newID(), r.now())
	r.products = append(r.products, p)
	return p, nil
}

// index must be called with mu held.
func (r *MemoryRepository) index(id string) int {
	return slices.IndexFunc(r.products, func(p Product) bool { return p.ID == id })
}
