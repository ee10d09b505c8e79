// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-research-os/internal/adapter"
	"github.com/MKhiriev/go-research-os/internal/client"
	"github.com/MKhiriev/go-research-os/internal/config"
	"github.com/MKhiriev/go-research-os/internal/crypto"
	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/MKhiriev/go-research-os/internal/service"
	"github.com/MKhiriev/go-research-os/internal/store"
	"github.com/MKhiriev/go-research-os/internal/tui"
	"github.com/MKhiriev/go-research-os/models"
	"github.com/jonboulle/clockwork"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("research-os-client", cfg.App.LogFile)

	if err = run(cfg, buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func run(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	ctx := log.WithContext(context.Background())
	clock := clockwork.NewRealClock()

	sealer, err := crypto.NewCredentialSealer(cfg.App.CredentialsKey)
	if err != nil {
		return fmt.Errorf("create credential sealer: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close local storage")
		}
	}()

	apiAdapter, err := adapter.NewHTTPAPIAdapter(cfg.Adapter, clock, log)
	if err != nil {
		return fmt.Errorf("create api adapter: %w", err)
	}

	defaults := models.Credentials{Email: cfg.App.DefaultEmail, Password: cfg.App.DefaultPassword}
	services := service.NewClientServices(storages, apiAdapter, sealer, defaults, clock, log)
	ui := tui.New(services, buildInfo, cfg.Workers.ReportSyncInterval, log)

	return client.NewApp(services, ui, log).Run()
}
