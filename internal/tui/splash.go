// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-research-os/internal/app"
	"github.com/MKhiriev/go-research-os/internal/service"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// SplashModel runs the session boot sequence behind a spinner and reports the
// outcome with a bootDoneMsg.
type SplashModel struct {
	ctx     context.Context
	session service.ClientSessionService
	styles  styles
	spinner spinner.Model
}

func NewSplashModel(ctx context.Context, session service.ClientSessionService, st styles) *SplashModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = st.selected

	return &SplashModel{ctx: ctx, session: session, styles: st, spinner: s}
}

func (m *SplashModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdBoot())
}

func (m *SplashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m *SplashModel) View() string {
	return renderPage(m.styles, "RESEARCH OS", m.spinner.View()+" "+app.MsgLoading, "")
}

func (m *SplashModel) cmdBoot() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		session.Boot(ctx)
		return bootDoneMsg{state: session.State()}
	}
}
