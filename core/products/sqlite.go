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
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oferente/panel/core/storage"
)

const productColumns = `id, name, description, price, category, stock, active, image_url, created_at, updated_at`

// SQLiteRepository stores products in the embedded database, listing them in
// insertion order.
type SQLiteRepository struct {
	db *storage.DB
	ids
}

func NewSQLiteRepository(db *storage.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, ids: defaultIDs()}
}

// Seed inserts products when the table is empty. It reports whether it did.
func (r *SQLiteRepository) Seed(ctx context.Context, seed []Product) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count products: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	for _, p := range seed {
		if err := r.insert(ctx, r.db.DB, p); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (Product, error) {
	return r.get(ctx, r.db.DB, id)
}

func (r *SQLiteRepository) Create(ctx context.Context, data CreateData) (Product, error) {
	if err := data.Validate(); err != nil {
		return Product{}, err
	}
	p := New(r.newID(), data, r.now())
	if err := r.insert(ctx, r.db.DB, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id string, data UpdateData) (Product, error) {
	if err := data.Validate(); err != nil {
		return Product{}, err
	}
	var updated Product
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		current, err := r.get(ctx, tx, id)
		if err != nil {
			return err
		}
		updated = current.Apply(data, r.now())
		_, err = tx.ExecContext(ctx, `
			UPDATE products SET name = ?, description = ?, price = ?, category = ?, stock = ?,
				active = ?, image_url = ?, updated_at = ?
			WHERE id = ?`,
			updated.Name, updated.Description, updated.Price, updated.Category, updated.Stock,
			updated.Active, nullString(updated.ImageURL), formatTime(updated.UpdatedAt), id)
		if err != nil {
			return fmt.Errorf("failed to update product %q: %w", id, err)
		}
		return nil
	})
	return updated, err
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %q: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete %q: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteRepository) Duplicate(ctx context.Context, id string) (Product, error) {
	var dup Product
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		original, err := r.get(ctx, tx, id)
		if err != nil {
			return err
		}
		dup = original.Copy(r.newID(), r.now())
		return r.insert(ctx, tx, dup)
	})
	return dup, err
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *SQLiteRepository) get(ctx context.Context, q querier, id string) (Product, error) {
	p, err := scanProduct(q.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	return p, err
}

func (r *SQLiteRepository) insert(ctx context.Context, q querier, p Product) error {
	_, err := q.ExecContext(ctx, `INSERT INTO products (`+productColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.Stock, p.Active,
		nullString(p.ImageURL), p.CreatedAt.UTC().Format(time.RFC3339Nano), formatTime(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert product %q: %w", p.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (Product, error) {
	var (
		p         Product
		imageURL  sql.NullString
		createdAt string
		updatedAt sql.NullString
	)
	err := s.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Stock, &p.Active,
		&imageURL, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, err
		}
		return Product{}, fmt.Errorf("failed to scan product: %w", err)
	}
	p.ImageURL = imageURL.String
	if p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return Product{}, fmt.Errorf("product %q: bad created_at: %w", p.ID, err)
	}
	if updatedAt.Valid {
		t, err := time.Parse(time.RFC3339Nano, updatedAt.String)
		if err != nil {
			return Product{}, fmt.Errorf("product %q: bad updated_at: %w", p.ID, err)
		}
		p.UpdatedAt = &t
	}
	return p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func formatTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339Nano), Valid: true}
}
