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

import "errors"

var (
	ErrUnknownTheme = errors.New("unknown theme")
	ErrUnknownFont  = errors.New("unknown font")
	ErrUnknownMode  = errors.New("unknown mode")
)

// ThemeID identifies a theme of the registry, e.g. "violet".
type ThemeID string

// Mode is the display mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode accepts "light" and "dark".
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Light, Dark:
		return m, nil
	}
	return "", ErrUnknownMode
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// FontFamily identifies a selectable font, e.g. "open-sans".
type FontFamily string

// Tokens maps CSS custom property names to values.
type Tokens map[string]string

// Definition is a theme with its light and dark token overrides.
type Definition struct {
	ID       ThemeID `json:"id"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Icon     string  `json:"icon,omitempty"`
	Light    Tokens  `json:"light"`
	Dark     Tokens  `json:"dark"`
}

// TokensFor returns the overrides of mode.
func (d Definition) TokensFor(mode Mode) Tokens {
	if mode == Dark {
		return d.Dark
	}
	return d.Light
}

// FontOption is a selectable font.
type FontOption struct {
	ID          FontFamily `json:"id"`
	Name        string     `json:"name"`
	CSSValue    string     `json:"cssValue"`
	Description string     `json:"description"`
}

// Palette is the preview swatch of a theme.
type Palette struct {
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// State is the branding chosen by the business owner.
type State struct {
	Theme ThemeID    `json:"theme"`
	Mode  Mode       `json:"mode"`
	Font  FontFamily `json:"fontFamily"`
}

// DefaultState is used until preferences are saved.
var DefaultState = State{Theme: "violet", Mode: Light, Font: "roboto"}

func (s State) IsDark() bool { return s.Mode == Dark }
