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

// Package config loads the panel configuration.
//
// Values come from the defaults, then an optional YAML file, then the
// OFERENTE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend selects where products are stored.
type Backend string

const (
	Memory Backend = "memory"
	SQLite Backend = "sqlite"
	HTTP   Backend = "http"
)

// Environment variables that override the file.
const (
	EnvAddr     = "OFERENTE_ADDR"
	EnvDB       = "OFERENTE_DB"
	EnvBackend  = "OFERENTE_BACKEND"
	EnvAPIURL   = "OFERENTE_API_URL"
	EnvLogLevel = "OFERENTE_LOG_LEVEL"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Table     TableConfig     `yaml:"table"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	// Addr is the listen address. Default: localhost:8097
	Addr string `yaml:"addr"`
}

type StorageConfig struct {
	Backend Backend `yaml:"backend"`

	// Path is the SQLite database file, used by the sqlite backend.
	Path string `yaml:"path"`

	// APIURL is the base URL of the remote API, used by the http backend.
	APIURL string `yaml:"api_url"`

	// Seed fills an empty store with the demo catalog.
	Seed bool `yaml:"seed"`
}

type DashboardConfig struct {
	// CacheTTL keeps loaded dashboard data. Zero disables the cache.
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type TableConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
}

type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Addr: "localhost:8097"},
		Storage:   StorageConfig{Backend: Memory, Path: "oferente.db", Seed: true},
		Dashboard: DashboardConfig{CacheTTL: 30 * time.Second},
		Table:     TableConfig{DefaultPageSize: 10},
		Logging:   LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults and applies the environment. An empty
// path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment looked up by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvDB); ok && v != "" {
		c.Storage.Path = v
	}
	if v, ok := lookup(EnvBackend); ok && v != "" {
		c.Storage.Backend = Backend(v)
	}
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.Storage.APIURL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Storage.Backend {
	case Memory:
	case SQLite:
		if c.Storage.Path == "" {
			errs = append(errs, errors.New("storage.path is required for the sqlite backend"))
		}
	case HTTP:
		if c.Storage.APIURL == "" {
			errs = append(errs, errors.New("storage.api_url is required for the http backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage backend %q", c.Storage.Backend))
	}
	if c.Table.DefaultPageSize <= 0 {
		errs = append(errs, fmt.Errorf("table.default_page_size must be positive, got %d", c.Table.DefaultPageSize))
	}
	if c.Dashboard.CacheTTL < 0 {
		errs = append(errs, errors.New("dashboard.cache_ttl must not be negative"))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Logging.Level))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// YAML renders the configuration as a config file.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
