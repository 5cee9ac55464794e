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
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned for unknown product IDs.
	ErrNotFound = errors.New("product not found")
	// ErrInvalid is returned when product data fails validation.
	ErrInvalid = errors.New("invalid product")
)

// Categories offered by the product form, in display order.
var Categories = []string{"Electrónica", "Ropa", "Alimentos", "Hogar", "Deportes", "Otros"}

// Product is an item of the business owner's catalog.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Category    string     `json:"category"`
	Stock       int        `json:"stock"`
	Active      bool       `json:"active"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// CreateData holds the fields of a new product.
type CreateData struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	Active      bool
	ImageURL    string
}

// Validate checks the required fields and non-negative amounts.
func (d CreateData) Validate() error {
	return validate(&d.Name, &d.Price, &d.Stock)
}

// UpdateData holds a partial update; nil fields are left untouched.
type UpdateData struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Stock       *int
	Active      *bool
	ImageURL    *string
}

// Validate checks the fields that are set.
func (d UpdateData) Validate() error {
	return validate(d.Name, d.Price, d.Stock)
}

func validate(name *string, price *float64, stock *int) error {
	if name != nil && strings.TrimSpace(*name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if price != nil && *price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	if stock != nil && *stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalid)
	}
	return nil
}

// New builds a product from d.
func New(id string, d CreateData, now time.Time) Product {
	return Product{
		ID:          id,
		Name:        strings.TrimSpace(d.Name),
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		Stock:       d.Stock,
		Active:      d.Active,
		ImageURL:    d.ImageURL,
		CreatedAt:   now,
	}
}

// Apply returns p with the set fields of d applied and UpdatedAt set to now.
func (p Product) Apply(d UpdateData, now time.Time) Product {
	if d.Name != nil {
		p.Name = strings.TrimSpace(*d.Name)
	}
	if d.Description != nil {
		p.Description = *d.Description
	}
	if d.Price != nil {
		p.Price = *d.Price
	}
	if d.Category != nil {
		p.Category = *d.Category
	}
	if d.Stock != nil {
		p.Stock = *d.Stock
	}
	if d.Active != nil {
		p.Active = *d.Active
	}
	if d.ImageURL != nil {
		p.ImageURL = *d.ImageURL
	}
	p.UpdatedAt = &now
	return p
}

// Copy returns the duplicate of p: a new ID, the name suffixed with
// " (Copia)", unpublished and created now.
func (p Product) Copy(id string, now time.Time) Product {
	p.ID = id
	p.Name += " (Copia)"
	p.Active = false
	p.CreatedAt = now
	p.UpdatedAt = nil
	return p
}

// InStock reports whether any units are available.
func (p Product) InStock() bool { return p.Stock > 0 }
