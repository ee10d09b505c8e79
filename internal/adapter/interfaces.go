// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the research-os
// client and the Research OS REST API.
//
// Two request paths exist:
//   - authentication calls ([APIAdapter.Login], [APIAdapter.Me]) are sent
//     exactly once so a failed sign-in is never repeated behind the user's back;
//   - workspace resource calls go through [Fetcher.FetchWithRetry], which
//     retries transport failures and 503 responses with linear backoff.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-research-os/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_adapter_mock.go -package=mock

// APIAdapter defines communication with the Research OS API. Resource
// methods take the caller's request headers (Content-Type and
// Authorization) so the adapter itself stays free of session state.
type APIAdapter interface {
	// Login exchanges credentials for an access token via POST /auth/login.
	// Sent once, never retried.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Me resolves the profile behind token via GET /me. Sent once, never
	// retried.
	Me(ctx context.Context, token string) (models.UserProfile, error)

	// Health checks GET /health.
	Health(ctx context.Context) error

	// ListIdeas returns all ideas of the workspace.
	ListIdeas(ctx context.Context, headers map[string]string) ([]models.Idea, error)
	// GetIdea returns a single idea.
	GetIdea(ctx context.Context, headers map[string]string, ideaID string) (models.Idea, error)

	// ListTasks returns the tasks of every idea, annotated with the idea title.
	ListTasks(ctx context.Context, headers map[string]string) ([]models.TaskWithIdea, error)
	// ListIdeaTasks returns the tasks of one idea.
	ListIdeaTasks(ctx context.Context, headers map[string]string, ideaID string) ([]models.Task, error)
	// UpdateTask applies a partial update to a task (PATCH).
	UpdateTask(ctx context.Context, headers map[string]string, taskID string, update models.TaskUpdate) (models.Task, error)
	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, headers map[string]string, taskID string) error

	// ListDeliverables returns the deliverables of an idea.
	ListDeliverables(ctx context.Context, headers map[string]string, ideaID string) ([]models.Deliverable, error)

	// ListUpdateLogs returns update logs newest first. An empty ideaID lists
	// the whole workspace.
	ListUpdateLogs(ctx context.Context, headers map[string]string, ideaID string, limit, offset int) ([]models.UpdateLog, error)
	// CreateUpdateLog attaches a new note to an idea.
	CreateUpdateLog(ctx context.Context, headers map[string]string, ideaID string, log models.UpdateLogCreate) (models.UpdateLog, error)
	// DeleteUpdateLog removes a note.
	DeleteUpdateLog(ctx context.Context, headers map[string]string, logID string) error

	// IdeaProgress returns the completion ratios of an idea.
	IdeaProgress(ctx context.Context, headers map[string]string, ideaID string) (models.IdeaProgress, error)
	// IdeaRisks returns the risks of an idea evaluated for month (YYYY-MM).
	IdeaRisks(ctx context.Context, headers map[string]string, ideaID, month string) ([]models.RiskItem, error)
	// IdeaNextActions returns suggested next actions for month (YYYY-MM).
	IdeaNextActions(ctx context.Context, headers map[string]string, ideaID, month string) (models.NextActions, error)

	// DashboardOverview returns workspace counters for month (YYYY-MM).
	DashboardOverview(ctx context.Context, headers map[string]string, month string) (models.DashboardOverview, error)

	// SyncSettings returns the server-side daily report location.
	SyncSettings(ctx context.Context, headers map[string]string) (models.SyncSettings, error)
	// IngestDailyReports asks the API to import daily report files for an idea.
	IngestDailyReports(ctx context.Context, headers map[string]string, ideaID string, settings models.SyncSettings) (models.BulkIngestResult, error)
}
