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
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeed() []Product {
	return []Product{
		{
			ID: "1", Name: "Notebook HP Pavilion", Description: "Laptop de alto rendimiento",
			Price: 599990, Category: "Electrónica", Stock: 5, Active: true,
			ImageURL:  "https://images.example.com/notebook.jpg",
			CreatedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "3", Name: "Teclado Mecánico RGB", Description: "Teclado gaming",
			Price: 79990, Category: "Electrónica", Stock: 0, Active: false,
			CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func ptr[T any](v T) *T { return &v }

// testRepository runs the behavior every Repository must share. repo must be
// seeded with testSeed.
func testRepository(t *testing.T, repo Repository) {
	ctx := context.Background()

	t.Run("list keeps insertion order", func(t *testing.T) {
		ps, err := repo.List(ctx)
		require.NoError(t, err)
		if diff := cmp.Diff(testSeed(), ps); diff != "" {
			t.Errorf("List() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("get", func(t *testing.T) {
		p, err := repo.Get(ctx, "3")
		require.NoError(t, err)
		assert.Equal(t, "Teclado Mecánico RGB", p.Name)

		_, err = repo.Get(ctx, "missing")
		assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
	})

	var created Product
	t.Run("create", func(t *testing.T) {
		var err error
		created, err = repo.Create(ctx, CreateData{
			Name: "  Silla Gamer  ", Description: "Soporte lumbar", Price: 189990,
			Category: "Hogar", Stock: 8, Active: true,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Silla Gamer", created.Name)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Nil(t, created.UpdatedAt)

		_, err = repo.Create(ctx, CreateData{Name: " ", Price: 1})
		assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		_, err = repo.Create(ctx, CreateData{Name: "x", Price: -1})
		assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)

		ps, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, ps, 3)
		assert.Equal(t, created.ID, ps[2].ID)
	})

	t.Run("update", func(t *testing.T) {
		p, err := repo.Update(ctx, "3", UpdateData{Stock: ptr(4), Active: ptr(true)})
		require.NoError(t, err)
		assert.Equal(t, 4, p.Stock)
		assert.True(t, p.Active)
		assert.Equal(t, "Teclado Mecánico RGB", p.Name)
		require.NotNil(t, p.UpdatedAt)

		got, err := repo.Get(ctx, "3")
		require.NoError(t, err)
		assert.Equal(t, 4, got.Stock)

		_, err = repo.Update(ctx, "missing", UpdateData{Stock: ptr(1)})
		assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
		_, err = repo.Update(ctx, "3", UpdateData{Stock: ptr(-2)})
		assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
	})

	t.Run("duplicate", func(t *testing.T) {
		dup, err := repo.Duplicate(ctx, "1")
		require.NoError(t, err)
		assert.NotEqual(t, "1", dup.ID)
		assert.Equal(t, "Notebook HP Pavilion (Copia)", dup.Name)
		assert.False(t, dup.Active)
		assert.Equal(t, 599990.0, dup.Price)
		assert.True(t, dup.CreatedAt.After(testSeed()[0].CreatedAt))

		_, err = repo.Duplicate(ctx, "missing")
		assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, created.ID))
		_, err := repo.Get(ctx, created.ID)
		assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
		assert.True(t, errors.Is(repo.Delete(ctx, created.ID), ErrNotFound))

		ps, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, ps, 3)
	})
}

func TestMemoryRepository(t *testing.T) {
	seed := testSeed()
	repo := NewMemoryRepository(seed)
	testRepository(t, repo)
	assert.Equal(t, testSeed(), seed, "seed slice must not be modified")
}
