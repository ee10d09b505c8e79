// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-research-os/internal/logger"
)

type localPreferencesRepository struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

func NewLocalPreferencesRepository(db *DB, logger *logger.Logger) LocalPreferencesRepository {
	return &localPreferencesRepository{
		DB:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (l *localPreferencesRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPreferenceQuery(key)
	if err != nil {
		log.Err(err).Str("func", "localPreferencesRepository.Get").Str("key", key).Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrPreferenceNotFound
	case err != nil:
		log.Err(err).Str("func", "localPreferencesRepository.Get").Str("key", key).Msg("failed to read preference")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (l *localPreferencesRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertPreferenceQuery(key, value, l.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "localPreferencesRepository.Set").Str("key", key).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localPreferencesRepository.Set").Str("key", key).Msg("failed to upsert preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localPreferencesRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePreferenceQuery(key)
	if err != nil {
		log.Err(err).Str("func", "localPreferencesRepository.Delete").Str("key", key).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localPreferencesRepository.Delete").Str("key", key).Msg("failed to delete preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
