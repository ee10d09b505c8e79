// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-research-os/internal/app"
	"github.com/MKhiriev/go-research-os/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// e-mail and password inputs, prefilled with the credentials auto-login would
// use, and dispatches an async login command on submission. On success a
// [LoginResult] is handled by [RootModel] to finish the flow.
type LoginModel struct {
	ctx     context.Context
	session service.ClientSessionService
	styles  styles

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel]. The e-mail field receives focus; the
// password field uses masked echo.
func NewLoginModel(ctx context.Context, session service.ClientSessionService, st styles) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:     ctx,
		session: session,
		styles:  st,
		inputs:  []textinput.Model{emailInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor blink, loads the stored
// credentials for prefilling and checks that the API is reachable.
func (m *LoginModel) Init() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return tea.Batch(textinput.Blink, func() tea.Msg {
		return credentialsLoadedMsg{creds: session.StoredCredentials(ctx)}
	}, func() tea.Msg {
		return healthCheckedMsg{err: session.Health(ctx)}
	})
}

// Update implements [tea.Model]. Handled messages:
//   - [credentialsLoadedMsg]: fills empty inputs with stored credentials.
//   - [healthCheckedMsg]: warns that the API is down before the user submits.
//   - [LoginResult]: clears submitting state; on failure shows the error.
//   - tab / shift+tab: move focus between inputs.
//   - enter: validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case credentialsLoadedMsg:
		if m.inputs[0].Value() == "" {
			m.inputs[0].SetValue(msg.creds.Email)
		}
		if m.inputs[1].Value() == "" {
			m.inputs[1].SetValue(msg.creds.Password)
		}
		return m, nil
	case healthCheckedMsg:
		if msg.err != nil && m.errMsg == "" && !m.submitting {
			m.errMsg = backendDownMessage(msg.err)
		}
		return m, nil
	case LoginResult:
		m.submitting = false
		if !msg.OK {
			m.errMsg = app.MsgInvalidCredentials
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if email == "" || password == "" {
				m.errMsg = app.MsgCredentialsRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("E-mail   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.err.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.styles, "SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: sign in")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return LoginResult{OK: session.Login(ctx, email, password), Email: email}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
