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

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "panel.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, path, db.Path())

	var n int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('products', 'preferences')`).Scan(&n))
	assert.Equal(t, 2, n)
	require.NoError(t, db.Close())

	// Reopening an existing database is a no-op migration.
	db, err = Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestPreferences(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, ok, err := db.GetPreference(ctx, "app.theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.SetPreferences(ctx, map[string]string{"app.theme": "ocean", "app.mode": "dark"}))
	require.NoError(t, db.SetPreferences(ctx, map[string]string{"app.theme": "fire"}))

	v, ok, err := db.GetPreference(ctx, "app.theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fire", v)

	v, _, err = db.GetPreference(ctx, "app.mode")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
}
