// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-research-os/internal/config"
	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorages(t *testing.T, dsn string) *ClientStorages {
	t.Helper()
	s, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	return s
}

// TestClientStorages_PreferencesLifecycle runs the repository against a real
// SQLite file with the embedded migrations applied.
func TestClientStorages_PreferencesLifecycle(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "research-os.db")
	s := newTestStorages(t, dsn)
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()
	repo := s.PreferencesRepository

	_, err := repo.Get(ctx, "access_token")
	require.ErrorIs(t, err, ErrPreferenceNotFound)

	require.NoError(t, repo.Set(ctx, "access_token", "t1"))
	require.NoError(t, repo.Set(ctx, "access_token", "t2"))

	value, err := repo.Get(ctx, "access_token")
	require.NoError(t, err)
	assert.Equal(t, "t2", value)

	require.NoError(t, repo.Delete(ctx, "access_token"))
	require.NoError(t, repo.Delete(ctx, "access_token"))

	_, err = repo.Get(ctx, "access_token")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

// TestClientStorages_Persistence verifies that values survive reopening the
// database file, as a restarted client would.
func TestClientStorages_Persistence(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "research-os.db")

	first := newTestStorages(t, dsn)
	require.NoError(t, first.PreferencesRepository.Set(context.Background(), "theme", "dark"))
	require.NoError(t, first.Close())

	second := newTestStorages(t, dsn)
	t.Cleanup(func() { _ = second.Close() })

	value, err := second.PreferencesRepository.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
}

func TestNewConnectSQLite_CreatesFile(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "new.db")

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, statErr := os.Stat(dsn)
	assert.NoError(t, statErr)
}

func TestNewConnectSQLite_BadDirectory(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "missing-dir", "x.db")

	_, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: dsn}, logger.Nop())
	assert.Error(t, err)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
