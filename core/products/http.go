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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIPath is where the JSON API serves the product collection.
const APIPath = "/api/oferente/products"

// HTTPRepository talks to a remote panel's JSON API.
type HTTPRepository struct {
	base   string
	client *http.Client
}

// NewHTTPRepository returns a client for the API rooted at baseURL
// (e.g. "http://localhost:8097"). A nil client uses one with a 10s timeout.
func NewHTTPRepository(baseURL string, client *http.Client) (*HTTPRepository, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q", baseURL)
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPRepository{base: strings.TrimRight(baseURL, "/") + APIPath, client: client}, nil
}

func (r *HTTPRepository) List(ctx context.Context) ([]Product, error) {
	var dtos []DTO
	if err := r.do(ctx, http.MethodGet, "", nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *HTTPRepository) Get(ctx context.Context, id string) (Product, error) {
	return r.one(ctx, http.MethodGet, "/"+url.PathEscape(id), nil)
}

func (r *HTTPRepository) Create(ctx context.Context, data CreateData) (Product, error) {
	if err := data.Validate(); err != nil {
		return Product{}, err
	}
	return r.one(ctx, http.MethodPost, "", ToCreateDTO(data))
}

func (r *HTTPRepository) Update(ctx context.Context, id string, data UpdateData) (Product, error) {
	if err := data.Validate(); err != nil {
		return Product{}, err
	}
	return r.one(ctx, http.MethodPut, "/"+url.PathEscape(id), ToUpdateDTO(data))
}

func (r *HTTPRepository) Delete(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, "/"+url.PathEscape(id), nil, nil)
}

func (r *HTTPRepository) Duplicate(ctx context.Context, id string) (Product, error) {
	return r.one(ctx, http.MethodPost, "/"+url.PathEscape(id)+"/duplicate", nil)
}

func (r *HTTPRepository) one(ctx context.Context, method, path string, body any) (Product, error) {
	var dto DTO
	if err := r.do(ctx, method, path, body, &dto); err != nil {
		return Product{}, err
	}
	return ToDomain(dto)
}

// apiError is the error body written by the JSON API.
type apiError struct {
	Error string `json:"error"`
}

func (r *HTTPRepository) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.base+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var e apiError
		_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&e)
		msg := e.Error
		if msg == "" {
			msg = resp.Status
		}
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%s %s: %w", method, req.URL.Path, ErrNotFound)
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			return fmt.Errorf("%w: %s", ErrInvalid, msg)
		}
		return fmt.Errorf("%s %s: %s", method, req.URL.Path, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
