// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal interface of the research-os client
// with Bubble Tea: a sign-in flow (boot splash and login form) and the main
// loop (dashboard and reports).
package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/MKhiriev/go-research-os/internal/service"
	"github.com/MKhiriev/go-research-os/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services     *service.ClientServices
	buildInfo    models.AppBuildInfo
	syncInterval time.Duration
	logger       *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, syncInterval time.Duration, logger *logger.Logger) *TUI {
	return &TUI{
		services:     services,
		buildInfo:    buildInfo,
		syncInterval: syncInterval,
		logger:       logger,
	}
}

// LoginFlow runs until a session is established. With boot set it first
// restores the session behind the splash screen and only shows the login
// form when that fails. Returns [ErrUserQuit] when the user quits.
func (t *TUI) LoginFlow(ctx context.Context, boot bool) error {
	st := newStyles(t.services.PreferencesService.Theme(ctx))
	pages := map[string]tea.Model{
		pageSplash: NewSplashModel(ctx, t.services.SessionService, st),
		pageLogin:  NewLoginModel(ctx, t.services.SessionService, st),
	}

	start := pageLogin
	if boot {
		start = pageSplash
	}

	finalModel, err := tea.NewProgram(NewRootModel(pages, start), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.authenticated {
		return ErrUserQuit
	}

	return nil
}

// MainLoop shows the dashboard until the user quits or logs out. logout is
// also reported when the API rejects the session token.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, t.syncInterval, t.buildInfo, t.logger)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
