// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-research-os/models"
)

// ClientSessionService owns the authenticated session: the bearer token, the
// profile resolved with it, and the startup restore/auto-login sequence.
// Boot, Login and Logout are serialized; readers get consistent snapshots.
type ClientSessionService interface {
	// Boot restores a session at startup. It tries, in order:
	//  1. the persisted token, verified with GET /me;
	//  2. one login with the persisted (or default) credentials, then GET /me;
	//  3. nothing: the session stays empty.
	// Loading is marked complete on every path. Boot never fails; problems are
	// logged and leave the session unauthenticated.
	Boot(ctx context.Context)

	// Login authenticates with email/password, resolves the profile and
	// persists token and credentials. Returns false on any failure, leaving
	// the previous session untouched.
	Login(ctx context.Context, email, password string) bool

	// Logout drops the token and profile and removes the persisted token.
	// Stored credentials are kept for the next auto-login.
	Logout(ctx context.Context)

	// Headers returns the JSON content type and the bearer authorization
	// header for the current token.
	Headers() map[string]string

	// Session returns a snapshot of the current session.
	Session() models.Session

	// State reports Booting, Unauthenticated or Authenticated.
	State() models.SessionState

	// StoredCredentials returns the credentials Boot would use for
	// auto-login, for prefilling the login form.
	StoredCredentials(ctx context.Context) models.Credentials

	// Health checks that the API answers GET /health. Sent once, without
	// authorization.
	Health(ctx context.Context) error
}

// ClientWorkspaceService loads and edits workspace data on behalf of the
// signed-in user. Every call is authorized with the session headers; a 401
// surfaces as an error matching adapter.ErrUnauthorized.
type ClientWorkspaceService interface {
	// Ideas returns ideas with main topics first, then by title.
	Ideas(ctx context.Context) ([]models.Idea, error)

	// IdeaTasks returns the tasks of an idea ordered by sort order, then start month.
	IdeaTasks(ctx context.Context, ideaID string) ([]models.Task, error)

	// Tasks returns the tasks of all ideas in the same order as IdeaTasks.
	Tasks(ctx context.Context) ([]models.TaskWithIdea, error)

	// Idea reloads a single idea.
	Idea(ctx context.Context, ideaID string) (models.Idea, error)

	// Overview bundles the dashboard for month (YYYY-MM, empty means the
	// current month). selectedIdeaID picks the idea to expand; when empty or
	// unknown the first idea is used. Failed parts are left empty and the
	// first error is returned alongside the partial overview.
	Overview(ctx context.Context, month, selectedIdeaID string) (models.Overview, error)

	// UpdateLogs returns one page of workspace-wide update logs, newest first.
	UpdateLogs(ctx context.Context, limit, offset int) ([]models.UpdateLog, error)

	// SetTaskStatus changes the status of a task.
	SetTaskStatus(ctx context.Context, taskID string, status models.ItemStatus) (models.Task, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, taskID string) error

	// AddNote attaches a manual update log to an idea.
	AddNote(ctx context.Context, ideaID, title, body string) (models.UpdateLog, error)

	// DeleteNote removes an update log.
	DeleteNote(ctx context.Context, logID string) error

	// CurrentMonth returns the current month as YYYY-MM.
	CurrentMonth() string
}

// ClientPreferencesService exposes user-facing preferences kept in the local
// store.
type ClientPreferencesService interface {
	// Theme returns the stored theme, light when unset.
	Theme(ctx context.Context) models.Theme

	// ToggleTheme flips and persists the theme.
	ToggleTheme(ctx context.Context) (models.Theme, error)

	// AutoSyncEnabled reports whether the report sync job may run. Off when unset.
	AutoSyncEnabled(ctx context.Context) bool

	// ToggleAutoSync flips and persists the auto-sync flag.
	ToggleAutoSync(ctx context.Context) (bool, error)
}

// ClientReportSyncService imports daily report files into an idea.
type ClientReportSyncService interface {
	// SyncReports reads the server's report location from /settings/sync and
	// triggers a bulk ingest for ideaID.
	SyncReports(ctx context.Context, ideaID string) (models.BulkIngestResult, error)
}

// ClientReportSyncJob defines the contract for a background worker that
// periodically calls SyncReports for the selected idea while auto-sync is on.
type ClientReportSyncJob interface {
	// Start launches the background goroutine. It ticks every interval,
	// defaulting to one minute if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, ideaID string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
