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

// Package commands implements the oferente command line.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oferente/panel/core/config"
	"github.com/oferente/panel/demo"
	"github.com/oferente/panel/core/logging"
)

// env carries the state shared by every subcommand, built once in
// PersistentPreRunE.
type env struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand returns the oferente command tree.
func NewRootCommand() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:   "oferente",
		Short: "Oferente administration panel",
		Long: `oferente serves the Oferente administration panel: the dashboard, the
product catalog with its searchable, sortable and exportable table, and the
branding settings.

The catalog can also be listed, exported and imported from the terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&e.configPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newServeCommand(e),
		newProductsCommand(e),
		newThemesCommand(e),
		newConfigCommand(e),
	)
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func (e *env) setup() error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging.Level, e.verbose)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.logger = logger
	return nil
}

// open wires the panel for commands that need the catalog.
func (e *env) open(ctx context.Context) (*demo.App, error) {
	app, err := demo.Setup(ctx, e.cfg, e.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up panel: %w", err)
	}
	return app, nil
}
