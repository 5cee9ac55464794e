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

package branding

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/safehtml"
	"go.uber.org/zap"
)

// Service owns the current branding state. Every change is persisted;
// persistence failures are logged and the in-memory state is kept.
type Service struct {
	registry   *Registry
	prefs      PreferencesRepository
	applicator *Applicator
	logger     *zap.Logger

	mu    sync.RWMutex
	state State
}

// NewService loads the saved state. Unknown saved themes or fonts and load
// failures fall back to DefaultState.
func NewService(ctx context.Context, registry *Registry, prefs PreferencesRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		registry:   registry,
		prefs:      prefs,
		applicator: NewApplicator(registry),
		logger:     logger.Named("branding"),
		state:      DefaultState,
	}
	loaded, err := prefs.Load(ctx)
	if err != nil {
		s.logger.Warn("failed to load branding preferences", zap.Error(err))
		return s
	}
	if _, ok := registry.Theme(loaded.Theme); !ok {
		s.logger.Warn("unknown saved theme", zap.String("theme", string(loaded.Theme)))
		loaded.Theme = DefaultState.Theme
	}
	if _, ok := registry.Font(loaded.Font); !ok {
		s.logger.Warn("unknown saved font", zap.String("font", string(loaded.Font)))
		loaded.Font = DefaultState.Font
	}
	s.state = loaded
	return s
}

func (s *Service) Registry() *Registry { return s.registry }

func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Service) SetTheme(ctx context.Context, id ThemeID) error {
	if _, ok := s.registry.Theme(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTheme, id)
	}
	s.update(ctx, func(st *State) { st.Theme = id })
	return nil
}

func (s *Service) SetMode(ctx context.Context, mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return fmt.Errorf("%w: %s", err, mode)
	}
	s.update(ctx, func(st *State) { st.Mode = mode })
	return nil
}

func (s *Service) ToggleMode(ctx context.Context) Mode {
	return s.update(ctx, func(st *State) { st.Mode = st.Mode.Toggle() }).Mode
}

func (s *Service) SetFont(ctx context.Context, font FontFamily) error {
	if _, ok := s.registry.Font(font); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFont, font)
	}
	s.update(ctx, func(st *State) { st.Font = font })
	return nil
}

// Reset restores DefaultState.
func (s *Service) Reset(ctx context.Context) {
	s.update(ctx, func(st *State) { *st = DefaultState })
}

// Stylesheet renders the current state.
func (s *Service) Stylesheet() (safehtml.StyleSheet, error) {
	return s.applicator.Stylesheet(s.State())
}

func (s *Service) update(ctx context.Context, change func(*State)) State {
	s.mu.Lock()
	change(&s.state)
	st := s.state
	s.mu.Unlock()

	if err := s.prefs.Save(ctx, st); err != nil {
		s.logger.Warn("failed to save branding preferences", zap.Error(err))
	}
	s.logger.Debug("branding changed",
		zap.String("theme", string(st.Theme)),
		zap.String("mode", string(st.Mode)),
		zap.String("font", string(st.Font)))
	return st
}
