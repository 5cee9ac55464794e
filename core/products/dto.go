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
	"fmt"
	"time"
)

// DTO is the wire shape of a product on the JSON API. Timestamps are
// ISO-8601 strings.
type DTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Active      bool    `json:"active"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// CreateDTO is the body of a create request.
type CreateDTO struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Active      bool    `json:"active"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// UpdateDTO is the body of a partial update request.
type UpdateDTO struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Active      *bool    `json:"active,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
}

// ToDomain converts a DTO into a Product.
func ToDomain(dto DTO) (Product, error) {
	created, err := parseTimestamp(dto.CreatedAt)
	if err != nil {
		return Product{}, fmt.Errorf("product %q: createdAt: %w", dto.ID, err)
	}
	p := Product{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		Category:    dto.Category,
		Stock:       dto.Stock,
		Active:      dto.Active,
		ImageURL:    dto.ImageURL,
		CreatedAt:   created,
	}
	if dto.UpdatedAt != "" {
		updated, err := parseTimestamp(dto.UpdatedAt)
		if err != nil {
			return Product{}, fmt.Errorf("product %q: updatedAt: %w", dto.ID, err)
		}
		p.UpdatedAt = &updated
	}
	return p, nil
}

// ToDTO converts a Product into its wire shape.
func ToDTO(p Product) DTO {
	dto := DTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Active:      p.Active,
		ImageURL:    p.ImageURL,
		CreatedAt:   formatTimestamp(p.CreatedAt),
	}
	if p.UpdatedAt != nil {
		dto.UpdatedAt = formatTimestamp(*p.UpdatedAt)
	}
	return dto
}

func ToDTOs(ps []Product) []DTO {
	out := make([]DTO, len(ps))
	for i, p := range ps {
		out[i] = ToDTO(p)
	}
	return out
}

func ToCreateDTO(d CreateData) CreateDTO {
	return CreateDTO(d)
}

func (dto CreateDTO) ToData() CreateData {
	return CreateData(dto)
}

func ToUpdateDTO(d UpdateData) UpdateDTO {
	return UpdateDTO(d)
}

func (dto UpdateDTO) ToData() UpdateData {
	return UpdateData(dto)
}

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
