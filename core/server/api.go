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
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/oferente/panel/core/branding"
	"github.com/oferente/panel/core/dashboard"
	"github.com/oferente/panel/core/products"
)

// maxBodySize bounds JSON request bodies.
const maxBodySize = 1 << 20

type apiError struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to write response", zap.Error(err))
	}
}

// writeError writes err as an apiError. Internal errors are logged and not
// echoed to the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("api request failed", zap.String("path", r.URL.Path), zap.Error(err))
		msg = http.StatusText(status)
	}
	s.writeJSON(w, status, apiError{Error: msg})
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func (s *Server) apiListProducts(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.Load(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, products.ToDTOs(s.catalog.Snapshot().Products))
}

func (s *Server) apiGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.LoadOne(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, products.ToDTO(p))
}

func (s *Server) apiCreateProduct(w http.ResponseWriter, r *http.Request) {
	var dto products.CreateDTO
	if err := decode(r, &dto); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.catalog.Create(r.Context(), dto.ToData())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.dashboard.Invalidate()
	w.Header().Set("Location", productPath(p.ID))
	s.writeJSON(w, http.StatusCreated, products.ToDTO(p))
}

func (s *Server) apiUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var dto products.UpdateDTO
	if err := decode(r, &dto); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.catalog.Update(r.Context(), r.PathValue("id"), dto.ToData())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.dashboard.Invalidate()
	s.writeJSON(w, http.StatusOK, products.ToDTO(p))
}

func (s *Server) apiDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.dashboard.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) apiDuplicateProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Duplicate(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.dashboard.Invalidate()
	s.writeJSON(w, http.StatusCreated, products.ToDTO(p))
}

func (s *Server) apiDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.dashboard.Load(r.Context())
	if err != nil {
		s.logger.Error(dashboard.LoadFailedMessage, zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, apiError{Error: dashboard.LoadFailedMessage})
		return
	}
	s.writeJSON(w, http.StatusOK, dashboard.ToDTO(d))
}

func (s *Server) apiGetBranding(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.branding.State())
}

// brandingUpdate is a partial branding change; empty fields are kept.
type brandingUpdate struct {
	Theme      branding.ThemeID    `json:"theme"`
	Mode       branding.Mode       `json:"mode"`
	FontFamily branding.FontFamily `json:"fontFamily"`
}

// apiPutBranding validates the whole update before applying any of it.
func (s *Server) apiPutBranding(w http.ResponseWriter, r *http.Request) {
	var u brandingUpdate
	if err := decode(r, &u); err != nil {
		s.writeError(w, r, err)
		return
	}
	registry := s.branding.Registry()
	if _, ok := registry.Theme(u.Theme); u.Theme != "" && !ok {
		s.writeError(w, r, fmt.Errorf("%w: %s", branding.ErrUnknownTheme, u.Theme))
		return
	}
	if _, ok := registry.Font(u.FontFamily); u.FontFamily != "" && !ok {
		s.writeError(w, r, fmt.Errorf("%w: %s", branding.ErrUnknownFont, u.FontFamily))
		return
	}
	if _, err := branding.ParseMode(string(u.Mode)); u.Mode != "" && err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %s", err, u.Mode))
		return
	}

	ctx := r.Context()
	if u.Theme != "" {
		s.branding.SetTheme(ctx, u.Theme)
	}
	if u.Mode != "" {
		s.branding.SetMode(ctx, u.Mode)
	}
	if u.FontFamily != "" {
		s.branding.SetFont(ctx, u.FontFamily)
	}
	s.writeJSON(w, http.StatusOK, s.branding.State())
}
