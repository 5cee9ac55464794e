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

package demo

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/oferente/panel/core/products"
)

//go:embed data/products.json
var productsJSON []byte

// Products returns the sample catalog the panel starts with.
func Products() ([]products.Product, error) {
	var dtos []products.DTO
	if err := json.Unmarshal(productsJSON, &dtos); err != nil {
		return nil, fmt.Errorf("failed to parse sample products: %w", err)
	}
	out := make([]products.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := products.ToDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
