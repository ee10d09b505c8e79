// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-research-os/internal/adapter"
	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/MKhiriev/go-research-os/models"
)

type clientReportSyncService struct {
	adapter adapter.APIAdapter
	session ClientSessionService
	logger  *logger.Logger
}

func NewClientReportSyncService(api adapter.APIAdapter, session ClientSessionService, logger *logger.Logger) ClientReportSyncService {
	return &clientReportSyncService{adapter: api, session: session, logger: logger}
}

func (s *clientReportSyncService) SyncReports(ctx context.Context, ideaID string) (models.BulkIngestResult, error) {
	if ideaID == "" {
		return models.BulkIngestResult{}, ErrNoIdeaSelected
	}

	headers := s.session.Headers()
	settings, err := s.adapter.SyncSettings(ctx, headers)
	if err != nil {
		return models.BulkIngestResult{}, fmt.Errorf("load sync settings: %w", err)
	}

	result, err := s.adapter.IngestDailyReports(ctx, headers, ideaID, settings)
	if err != nil {
		return models.BulkIngestResult{}, fmt.Errorf("ingest daily reports: %w", err)
	}

	s.logger.Info().
		Str("func", "clientReportSyncService.SyncReports").
		Str("idea_id", ideaID).
		Str("reports_dir", settings.ReportsDir).
		Int("imported_logs", result.ImportedLogs).
		Msg("daily reports synced")

	return result, nil
}
