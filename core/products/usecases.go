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
	"strings"

	"go.uber.org/zap"
)

// UseCases are the catalog operations offered to the presentation layer.
// They normalize IDs, validate input before it reaches the repository and
// log every mutation.
type UseCases struct {
	repo   Repository
	logger *zap.Logger
}

func NewUseCases(repo Repository, logger *zap.Logger) *UseCases {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCases{repo: repo, logger: logger.Named("products")}
}

func (u *UseCases) ListProducts(ctx context.Context) ([]Product, error) {
	ps, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return ps, nil
}

func (u *UseCases) GetProduct(ctx context.Context, id string) (Product, error) {
	id, err := normalizeID(id)
	if err != nil {
		return Product{}, err
	}
	return u.repo.Get(ctx, id)
}

func (u *UseCases) CreateProduct(ctx context.Context, data CreateData) (Product, error) {
	if err := data.Validate(); err != nil {
		return Product{}, err
	}
	p, err := u.repo.Create(ctx, data)
	if err != nil {
		return Product{}, err
	}
	u.logger.Info("product created", zap.String("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (u *UseCases) UpdateProduct(ctx context.Context, id string, data UpdateData) (Product, error) {
	id, err := normalizeID(id)
	if err != nil {
		return Product{}, err
	}
	if err := data.Validate(); err != nil {
		return Product{}, err
	}
	p, err := u.repo.Update(ctx, id, data)
	if err != nil {
		return Product{}, err
	}
	u.logger.Info("product updated", zap.String("id", p.ID))
	return p, nil
}

func (u *UseCases) DeleteProduct(ctx context.Context, id string) error {
	id, err := normalizeID(id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.logger.Info("product deleted", zap.String("id", id))
	return nil
}

func (u *UseCases) DuplicateProduct(ctx context.Context, id string) (Product, error) {
	id, err := normalizeID(id)
	if err != nil {
		return Product{}, err
	}
	p, err := u.repo.Duplicate(ctx, id)
	if err != nil {
		return Product{}, err
	}
	u.logger.Info("product duplicated", zap.String("source", id), zap.String("id", p.ID))
	return p, nil
}

func normalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: id is required", ErrInvalid)
	}
	return id, nil
}
