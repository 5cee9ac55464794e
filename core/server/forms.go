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

package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/oferente/panel/core/products"
	"github.com/oferente/panel/core/views"
)

// productFields reads the product form into form, so a rejected submission
// is shown as typed.
func productFields(r *http.Request, form *views.ProductForm) (price float64, stock int, err error) {
	if err := r.ParseForm(); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", products.ErrInvalid, err)
	}
	f := r.PostForm
	form.Name = strings.TrimSpace(f.Get("name"))
	form.Description = f.Get("description")
	form.Price = strings.TrimSpace(f.Get("price"))
	form.Category = f.Get("category")
	form.Stock = strings.TrimSpace(f.Get("stock"))
	form.Active = f.Get("active") != ""
	form.ImageURL = strings.TrimSpace(f.Get("imageUrl"))

	price, err = strconv.ParseFloat(form.Price, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: price must be a number", products.ErrInvalid)
	}
	stock, err = strconv.Atoi(form.Stock)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: stock must be a whole number", products.ErrInvalid)
	}
	return price, stock, nil
}

func parseCreateForm(r *http.Request, form *views.ProductForm) (products.CreateData, error) {
	price, stock, err := productFields(r, form)
	if err != nil {
		return products.CreateData{}, err
	}
	return products.CreateData{
		Name:        form.Name,
		Description: form.Description,
		Price:       price,
		Category:    form.Category,
		Stock:       stock,
		Active:      form.Active,
		ImageURL:    form.ImageURL,
	}, nil
}

// parseUpdateForm sets every field, since the form always submits them all.
func parseUpdateForm(r *http.Request, form *views.ProductForm) (products.UpdateData, error) {
	price, stock, err := productFields(r, form)
	if err != nil {
		return products.UpdateData{}, err
	}
	return products.UpdateData{
		Name:        &form.Name,
		Description: &form.Description,
		Price:       &price,
		Category:    &form.Category,
		Stock:       &stock,
		Active:      &form.Active,
		ImageURL:    &form.ImageURL,
	}, nil
}
