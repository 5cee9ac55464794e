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

package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/oferente/panel/core/branding"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Width(16)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	swatchStyle = lipgloss.NewStyle().Width(3)
)

func newThemesCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Inspect the branding themes",
	}
	cmd.AddCommand(newThemesListCommand(e))
	return cmd
}

func newThemesListCommand(e *env) *cobra.Command {
	var dark bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the themes and fonts with their palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			mode := branding.Light
			if dark {
				mode = branding.Dark
			}
			state := app.Branding.State()
			registry := app.Branding.Registry()

			out := cmd.OutOrStdout()
			for _, def := range registry.Themes() {
				palette, _ := registry.Palette(def.ID, mode)
				marker := " "
				if def.ID == state.Theme {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-8s %s %s %s\n", marker, def.ID,
					titleStyle.Render(def.Title), swatches(palette), faintStyle.Render(def.Subtitle))
			}
			fmt.Fprintln(out)
			for _, font := range registry.Fonts() {
				marker := " "
				if font.ID == state.Font {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-11s %s\n", marker, font.ID, faintStyle.Render(font.Description))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dark, "dark", false, "Show the dark mode palettes")
	return cmd
}

func swatches(p branding.Palette) string {
	var sb strings.Builder
	for _, c := range []string{p.Primary, p.Accent, p.Background, p.Text} {
		sb.WriteString(swatchStyle.Background(lipgloss.Color(c)).Render(""))
	}
	return sb.String()
}
