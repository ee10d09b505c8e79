// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-research-os/internal/adapter"
	"github.com/MKhiriev/go-research-os/internal/crypto"
	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/MKhiriev/go-research-os/internal/store"
	"github.com/MKhiriev/go-research-os/models"
	"github.com/jonboulle/clockwork"
)

type ClientServices struct {
	SessionService     ClientSessionService
	WorkspaceService   ClientWorkspaceService
	PreferencesService ClientPreferencesService
	ReportSyncService  ClientReportSyncService
	ReportSyncJob      ClientReportSyncJob
}

func NewClientServices(
	storages *store.ClientStorages,
	api adapter.APIAdapter,
	sealer crypto.CredentialSealer,
	defaults models.Credentials,
	clock clockwork.Clock,
	logger *logger.Logger,
) *ClientServices {
	sessionSvc := NewClientSessionService(api, storages.PreferencesRepository, sealer, defaults, clock, logger)
	prefsSvc := NewClientPreferencesService(storages.PreferencesRepository, logger)
	syncSvc := NewClientReportSyncService(api, sessionSvc, logger)

	return &ClientServices{
		SessionService:     sessionSvc,
		WorkspaceService:   NewClientWorkspaceService(api, sessionSvc, clock, logger),
		PreferencesService: prefsSvc,
		ReportSyncService:  syncSvc,
		ReportSyncJob:      NewClientReportSyncJob(syncSvc, prefsSvc, clock, logger),
	}
}
