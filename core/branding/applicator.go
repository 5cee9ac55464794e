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
	"fmt"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/safehtml/uncheckedconversions"
)

// BaseFontProperty carries the selected font stack.
const BaseFontProperty = "--font-family-base"

// Applicator turns a State into the stylesheet the layout embeds.
type Applicator struct {
	registry *Registry
}

func NewApplicator(registry *Registry) *Applicator {
	return &Applicator{registry: registry}
}

// Stylesheet returns custom properties scoped to the theme and mode
// attributes of the root element. Every identifier and value is checked
// against a strict grammar before the text is trusted.
func (a *Applicator) Stylesheet(s State) (safehtml.StyleSheet, error) {
	def, ok := a.registry.Theme(s.Theme)
	if !ok {
		return safehtml.StyleSheet{}, fmt.Errorf("%w: %s", ErrUnknownTheme, s.Theme)
	}
	font, ok := a.registry.Font(s.Font)
	if !ok {
		return safehtml.StyleSheet{}, fmt.Errorf("%w: %s", ErrUnknownFont, s.Font)
	}
	if _, err := ParseMode(string(s.Mode)); err != nil {
		return safehtml.StyleSheet{}, err
	}
	if !identPattern.MatchString(string(def.ID)) || !fontStackPattern.MatchString(font.CSSValue) {
		return safehtml.StyleSheet{}, fmt.Errorf("refusing to emit theme %q with font %q", def.ID, font.ID)
	}
	tokens := def.TokensFor(s.Mode)
	if err := validateTokens(tokens); err != nil {
		return safehtml.StyleSheet{}, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, ":root[data-theme=%q][data-mode=%q] {\n", def.ID, s.Mode)
	for _, name := range sortedNames(tokens) {
		fmt.Fprintf(&b, "  %s: %s;\n", name, tokens[name])
	}
	fmt.Fprintf(&b, "  %s: %s;\n}\n", BaseFontProperty, font.CSSValue)
	b.WriteString("body {\n  font-family: var(" + BaseFontProperty + ");\n}\n")
	return uncheckedconversions.StyleSheetFromStringKnownToSatisfyTypeContract(b.String()), nil
}
