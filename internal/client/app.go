// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/MKhiriev/go-research-os/internal/service"
	"github.com/MKhiriev/go-research-os/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{services: services, ui: ui, logger: logger}
}

// Run boots the session, then alternates between the login flow and the main
// loop until the user quits. Logging out, or a token rejected by the API,
// drops the session and returns to the login form.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(a.logger.WithContext(context.Background()))
	defer cancel()

	boot := true
	for {
		if err := a.ui.LoginFlow(ctx, boot); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
		boot = false

		session := a.services.SessionService.Session()
		if session.User != nil {
			a.logger.Info().Str("func", "App.Run").Str("user_id", session.User.ID).Msg("session started")
		}

		logout, err := a.mainLoop(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.services.SessionService.Logout(ctx)
		a.logger.Info().Str("func", "App.Run").Msg("logged out")
	}
}

func (a *App) mainLoop(ctx context.Context) (bool, error) {
	defer a.services.ReportSyncJob.Stop()
	return a.ui.MainLoop(ctx)
}
