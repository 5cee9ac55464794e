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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// brokenRepository fails every call.
type brokenRepository struct{ err error }

func (b brokenRepository) List(context.Context) ([]Product, error) { return nil, b.err }
func (b brokenRepository) Get(context.Context, string) (Product, error) { return Product{}, b.err }
func (b brokenRepository) Delete(context.Context, string) error { return b.err }
func (b brokenRepository) Duplicate(context.Context, string) (Product, error) { return Product{}, b.err }
func (b brokenRepository) Create(context.Context, CreateData) (Product, error) {
	return Product{}, b.err
}
func (b brokenRepository) Update(context.Context, string, UpdateData) (Product, error) {
	return Product{}, b.err
}

func TestCatalogLifecycle(t *testing.T) {
	ctx := context.Background()
	c := NewCatalog(NewUseCases(NewMemoryRepository(testSeed()), zap.NewNop()), zap.NewNop())

	assert.False(t, c.Snapshot().HasProducts())
	require.NoError(t, c.Load(ctx))
	s := c.Snapshot()
	assert.Len(t, s.Products, 2)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Error)

	p, err := c.Create(ctx, CreateData{Name: "Café en grano", Price: 8990, Stock: 20})
	require.NoError(t, err)
	assert.Len(t, c.Snapshot().Products, 3)

	_, err = c.LoadOne(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, c.Snapshot().Selected)

	_, err = c.Update(ctx, p.ID, UpdateData{Stock: ptr(0)})
	require.NoError(t, err)
	s = c.Snapshot()
	assert.Equal(t, 0, s.Products[2].Stock)
	assert.Equal(t, 0, s.Selected.Stock)

	dup, err := c.Duplicate(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, c.Snapshot().Products, 4)

	require.NoError(t, c.Delete(ctx, dup.ID))
	require.NoError(t, c.Delete(ctx, p.ID))
	s = c.Snapshot()
	assert.Len(t, s.Products, 2)
	assert.Nil(t, s.Selected)

	// Snapshots are copies.
	s.Products[0].Name = "changed"
	assert.NotEqual(t, "changed", c.Snapshot().Products[0].Name)
}

func TestCatalogErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")
	c := NewCatalog(NewUseCases(brokenRepository{err: boom}, nil), nil)

	err := c.Load(ctx)
	assert.ErrorIs(t, err, boom)
	s := c.Snapshot()
	assert.Equal(t, "Failed to load products", s.Error)
	assert.False(t, s.Loading)

	_, err = c.Duplicate(ctx, "1")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Failed to duplicate product", c.Snapshot().Error)

	_, err = c.LoadOne(ctx, "  ")
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "Failed to load product", c.Snapshot().Error)

	c.ClearError()
	assert.Empty(t, c.Snapshot().Error)
}
