// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/MKhiriev/go-research-os/internal/store"
	"github.com/MKhiriev/go-research-os/models"
)

type clientPreferencesService struct {
	prefs  store.LocalPreferencesRepository
	logger *logger.Logger
}

func NewClientPreferencesService(prefs store.LocalPreferencesRepository, logger *logger.Logger) ClientPreferencesService {
	return &clientPreferencesService{prefs: prefs, logger: logger}
}

func (p *clientPreferencesService) Theme(ctx context.Context) models.Theme {
	return models.ParseTheme(p.read(ctx, models.PrefTheme))
}

func (p *clientPreferencesService) ToggleTheme(ctx context.Context) (models.Theme, error) {
	theme := p.Theme(ctx).Toggle()
	if err := p.prefs.Set(ctx, models.PrefTheme, string(theme)); err != nil {
		return p.Theme(ctx), fmt.Errorf("save theme: %w", err)
	}
	return theme, nil
}

func (p *clientPreferencesService) AutoSyncEnabled(ctx context.Context) bool {
	enabled, err := strconv.ParseBool(p.read(ctx, models.PrefAutoSyncReports))
	return err == nil && enabled
}

func (p *clientPreferencesService) ToggleAutoSync(ctx context.Context) (bool, error) {
	enabled := !p.AutoSyncEnabled(ctx)
	if err := p.prefs.Set(ctx, models.PrefAutoSyncReports, strconv.FormatBool(enabled)); err != nil {
		return !enabled, fmt.Errorf("save auto-sync flag: %w", err)
	}
	return enabled, nil
}

// read returns the stored value of key, or "" when unset or unreadable.
func (p *clientPreferencesService) read(ctx context.Context, key string) string {
	value, err := p.prefs.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrPreferenceNotFound) {
			p.logger.Warn().Err(err).Str("func", "clientPreferencesService.read").Str("key", key).Msg("preference read failed")
		}
		return ""
	}
	return value
}
