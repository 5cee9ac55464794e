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

package demo

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/oferente/panel/core/branding"
	"github.com/oferente/panel/core/config"
	"github.com/oferente/panel/core/dashboard"
	"github.com/oferente/panel/core/products"
	"github.com/oferente/panel/core/server"
	"github.com/oferente/panel/core/storage"
)

// App is a fully wired panel.
type App struct {
	Server     *server.Server
	Repository products.Repository
	Catalog    *products.Catalog
	Branding   *branding.Service

	db *storage.DB
}

// Close releases the database, if one was opened.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Setup builds the repositories, services and server described by cfg.
func Setup(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := &App{}

	var prefs branding.PreferencesRepository
	switch cfg.Storage.Backend {
	case config.Memory:
		var seed []products.Product
		if cfg.Storage.Seed {
			var err error
			if seed, err = Products(); err != nil {
				return nil, err
			}
		}
		app.Repository = products.NewMemoryRepository(seed)
		prefs = branding.NewMemoryPreferences()

	case config.SQLite:
		db, err := storage.Open(ctx, cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		app.db = db
		repo := products.NewSQLiteRepository(db)
		if cfg.Storage.Seed {
			seed, err := Products()
			if err != nil {
				db.Close()
				return nil, err
			}
			seeded, err := repo.Seed(ctx, seed)
			if err != nil {
				db.Close()
				return nil, err
			}
			if seeded {
				logger.Info("seeded sample products", zap.Int("count", len(seed)), zap.String("path", db.Path()))
			}
		}
		app.Repository = repo
		prefs = branding.NewSQLitePreferences(db)

	case config.HTTP:
		repo, err := products.NewHTTPRepository(cfg.Storage.APIURL, nil)
		if err != nil {
			return nil, err
		}
		app.Repository = repo
		prefs = branding.NewMemoryPreferences()

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	app.Catalog = products.NewCatalog(products.NewUseCases(app.Repository, logger), logger)

	static, err := dashboard.NewStaticRepository()
	if err != nil {
		app.Close()
		return nil, err
	}
	live := dashboard.NewLiveRepository(static, app.Repository)
	dash := dashboard.NewService(dashboard.NewCachedRepository(live, cfg.Dashboard.CacheTTL), logger)

	registry, err := branding.NewRegistry()
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Branding = branding.NewService(ctx, registry, prefs, logger)

	app.Server, err = server.NewServer(server.Options{
		Catalog:         app.Catalog,
		Dashboard:       dash,
		Branding:        app.Branding,
		Logger:          logger,
		DefaultPageSize: cfg.Table.DefaultPageSize,
	})
	if err != nil {
		app.Close()
		return nil, err
	}

	logger.Info("panel ready",
		zap.String("backend", string(cfg.Storage.Backend)),
		zap.String("theme", string(app.Branding.State().Theme)),
		zap.String("mode", string(app.Branding.State().Mode)),
	)
	return app, nil
}
