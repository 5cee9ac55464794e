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
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"

	"github.com/tidwall/jsonc"
)

//go:embed themes.jsonc
var themesJSONC []byte

var (
	tokenNamePattern = regexp.MustCompile(`^--[a-z0-9]+(-[a-z0-9]+)*$`)
	colorPattern     = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|rgba?\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*(,\s*(0|1|0?\.\d+)\s*)?\))$`)
	fontStackPattern = regexp.MustCompile(`^('[A-Za-z0-9 ]+'|[A-Za-z-]+)(\s*,\s*('[A-Za-z0-9 ]+'|[A-Za-z-]+))*$`)
	identPattern     = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// Registry holds the theme and font catalog.
type Registry struct {
	themes []Definition
	byID   map[ThemeID]int
	fonts  []FontOption
}

type registryDoc struct {
	Themes []Definition `json:"themes"`
	Fonts  []FontOption `json:"fonts"`
}

// NewRegistry loads the embedded theme catalog.
func NewRegistry() (*Registry, error) {
	return ParseRegistry(themesJSONC)
}

// ParseRegistry loads a JSONC catalog. Every identifier and token is validated
// so the catalog can be emitted into stylesheets verbatim.
func ParseRegistry(doc []byte) (*Registry, error) {
	var d registryDoc
	if err := json.Unmarshal(jsonc.ToJSON(doc), &d); err != nil {
		return nil, fmt.Errorf("failed to parse theme registry: %w", err)
	}
	r := &Registry{byID: make(map[ThemeID]int, len(d.Themes)), fonts: d.Fonts}
	for _, def := range d.Themes {
		if !identPattern.MatchString(string(def.ID)) {
			return nil, fmt.Errorf("invalid theme id %q", def.ID)
		}
		if _, dup := r.byID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate theme %q", def.ID)
		}
		for _, tokens := range []Tokens{def.Light, def.Dark} {
			if err := validateTokens(tokens); err != nil {
				return nil, fmt.Errorf("theme %q: %w", def.ID, err)
			}
		}
		r.byID[def.ID] = len(r.themes)
		r.themes = append(r.themes, def)
	}
	for _, f := range d.Fonts {
		if !identPattern.MatchString(string(f.ID)) || !fontStackPattern.MatchString(f.CSSValue) {
			return nil, fmt.Errorf("invalid font %q", f.ID)
		}
	}
	if len(r.themes) == 0 {
		return nil, fmt.Errorf("theme registry is empty")
	}
	return r, nil
}

func validateTokens(tokens Tokens) error {
	for name, value := range tokens {
		if !tokenNamePattern.MatchString(name) {
			return fmt.Errorf("invalid token name %q", name)
		}
		if !colorPattern.MatchString(value) {
			return fmt.Errorf("token %s: invalid value %q", name, value)
		}
	}
	return nil
}

// Themes returns the themes in catalog order.
func (r *Registry) Themes() []Definition {
	return append([]Definition(nil), r.themes...)
}

func (r *Registry) Theme(id ThemeID) (Definition, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Definition{}, false
	}
	return r.themes[i], true
}

// IDs returns the theme IDs in catalog order.
func (r *Registry) IDs() []ThemeID {
	ids := make([]ThemeID, len(r.themes))
	for i, t := range r.themes {
		ids[i] = t.ID
	}
	return ids
}

func (r *Registry) Fonts() []FontOption {
	return append([]FontOption(nil), r.fonts...)
}

func (r *Registry) Font(id FontFamily) (FontOption, bool) {
	for _, f := range r.fonts {
		if f.ID == id {
			return f, true
		}
	}
	return FontOption{}, false
}

// Palette returns the preview swatch of a theme in mode.
func (r *Registry) Palette(id ThemeID, mode Mode) (Palette, bool) {
	def, ok := r.Theme(id)
	if !ok {
		return Palette{}, false
	}
	t := def.TokensFor(mode)
	return Palette{
		Primary:    t["--color-primary"],
		Accent:     t["--color-accent"],
		Background: t["--bg-secondary"],
		Text:       t["--text-primary"],
	}, true
}

// sortedNames returns the token names in a stable order.
func sortedNames(t Tokens) []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
