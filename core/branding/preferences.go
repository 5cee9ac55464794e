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

	"github.com/oferente/panel/core/storage"
)

// Preference keys shared by every repository.
const (
	ThemeKey = "app.theme"
	ModeKey  = "app.mode"
	FontKey  = "app.font"
)

// PreferencesRepository persists the branding state.
type PreferencesRepository interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, s State) error
}

// fromValues builds a State from stored values. Missing values take the
// default; an unknown mode falls back to the default mode.
func fromValues(theme, mode, font string) State {
	s := DefaultState
	if theme != "" {
		s.Theme = ThemeID(theme)
	}
	if m, err := ParseMode(mode); err == nil {
		s.Mode = m
	}
	if font != "" {
		s.Font = FontFamily(font)
	}
	return s
}

// MemoryPreferences keeps the state for the lifetime of the process.
type MemoryPreferences struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{values: map[string]string{}}
}

func (m *MemoryPreferences) Load(context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fromValues(m.values[ThemeKey], m.values[ModeKey], m.values[FontKey]), nil
}

func (m *MemoryPreferences) Save(_ context.Context, s State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[ThemeKey] = string(s.Theme)
	m.values[ModeKey] = string(s.Mode)
	m.values[FontKey] = string(s.Font)
	return nil
}

// SQLitePreferences stores the state in the preferences table.
type SQLitePreferences struct {
	db *storage.DB
}

func NewSQLitePreferences(db *storage.DB) *SQLitePreferences {
	return &SQLitePreferences{db: db}
}

func (p *SQLitePreferences) Load(ctx context.Context) (State, error) {
	values := make(map[string]string, 3)
	for _, key := range []string{ThemeKey, ModeKey, FontKey} {
		v, ok, err := p.db.GetPreference(ctx, key)
		if err != nil {
			return DefaultState, fmt.Errorf("failed to load preference %s: %w", key, err)
		}
		if ok {
			values[key] = v
		}
	}
	return fromValues(values[ThemeKey], values[ModeKey], values[FontKey]), nil
}

func (p *SQLitePreferences) Save(ctx context.Context, s State) error {
	return p.db.SetPreferences(ctx, map[string]string{
		ThemeKey: string(s.Theme),
		ModeKey:  string(s.Mode),
		FontKey:  string(s.Font),
	})
}
