// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-research-os/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the [RootModel] to another page. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page after a login attempt.
type LoginResult struct {
	OK    bool
	Email string
}

type bootDoneMsg struct {
	state models.SessionState
}

type credentialsLoadedMsg struct {
	creds models.Credentials
}

type healthCheckedMsg struct {
	err error
}

type overviewLoadedMsg struct {
	overview models.Overview
	err      error
}

type reportsLoadedMsg struct {
	logs   []models.UpdateLog
	offset int
	err    error
}

type taskUpdatedMsg struct {
	task models.Task
	err  error
}

type taskDeletedMsg struct {
	err error
}

type allTasksLoadedMsg struct {
	tasks []models.TaskWithIdea
	err   error
}

type ideaLoadedMsg struct {
	idea models.Idea
	err  error
}

type noteSavedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}

type reportsSyncedMsg struct {
	result models.BulkIngestResult
	err    error
}

type themeToggledMsg struct {
	theme models.Theme
	err   error
}

type autoSyncToggledMsg struct {
	enabled bool
	err     error
}

type clearStatusMsg struct{}
