// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-research-os/internal/config"
	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/MKhiriev/go-research-os/internal/utils"
	"github.com/MKhiriev/go-research-os/models"
	"github.com/jonboulle/clockwork"
)

type httpAPIAdapter struct {
	client  *utils.HTTPClient
	fetcher *Fetcher
	policy  RetryPolicy

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs an HTTP/REST implementation of [APIAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the HTTP client with the resolved base URL and request timeout.
// Resource calls are retried according to adapterCfg.RetryAttempts and
// adapterCfg.RetryBaseDelay, with backoff measured on clock.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAPIAdapter(adapterCfg config.ClientAdapter, clock clockwork.Clock, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	policy := DefaultRetryPolicy()
	if adapterCfg.RetryAttempts > 0 {
		policy.MaxAttempts = adapterCfg.RetryAttempts
	}
	if adapterCfg.RetryBaseDelay > 0 {
		policy.BaseDelay = adapterCfg.RetryBaseDelay
	}

	return &httpAPIAdapter{
		client:  client,
		fetcher: NewFetcher(client, clock, logger),
		policy:  policy,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [APIAdapter]. It POSTs the credentials to /auth/login and
// returns the issued token. A 401 maps to [ErrUnauthorized]; a 2xx response
// without access_token yields [ErrEmptyToken].
func (h *httpAPIAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&loginResponse).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("func", "httpAPIAdapter.Login").
			Int("status", resp.StatusCode()).
			Msg("login rejected")
		return models.LoginResponse{}, err
	}
	if loginResponse.AccessToken == "" {
		return models.LoginResponse{}, ErrEmptyToken
	}

	return loginResponse, nil
}

// Me implements [APIAdapter]. It GETs /me with token as bearer credential.
func (h *httpAPIAdapter) Me(ctx context.Context, token string) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", utils.BearerHeader(token)).
		SetResult(&profile).
		Get("/me")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("func", "httpAPIAdapter.Me").
			Int("status", resp.StatusCode()).
			Msg("profile request rejected")
		return models.UserProfile{}, err
	}

	return profile, nil
}

// Health implements [APIAdapter].
func (h *httpAPIAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpAPIAdapter) ListIdeas(ctx context.Context, headers map[string]string) ([]models.Idea, error) {
	var ideas []models.Idea
	err := h.fetchJSON(ctx, Target{Method: http.MethodGet, Path: "/ideas", Header: headers}, &ideas)
	return ideas, err
}

func (h *httpAPIAdapter) GetIdea(ctx context.Context, headers map[string]string, ideaID string) (models.Idea, error) {
	var idea models.Idea
	err := h.fetchJSON(ctx, Target{Method: http.MethodGet, Path: "/ideas/" + url.PathEscape(ideaID), Header: headers}, &idea)
	return idea, err
}

func (h *httpAPIAdapter) ListTasks(ctx context.Context, headers map[string]string) ([]models.TaskWithIdea, error) {
	var tasks []models.TaskWithIdea
	err := h.fetchJSON(ctx, Target{Method: http.MethodGet, Path: "/tasks", Header: headers}, &tasks)
	return tasks, err
}

func (h *httpAPIAdapter) ListIdeaTasks(ctx context.Context, headers map[string]string, ideaID string) ([]models.Task, error) {
	var tasks []models.Task
	err := h.fetchJSON(ctx, Target{Method: http.MethodGet, Path: ideaPath(ideaID, "tasks"), Header: headers}, &tasks)
	return tasks, err
}

func (h *httpAPIAdapter) UpdateTask(ctx context.Context, headers map[string]string, taskID string, update models.TaskUpdate) (models.Task, error) {
	var task models.Task
	err := h.fetchJSON(ctx, Target{
		Method: http.MethodPatch,
		Path:   "/tasks/" + url.PathEscape(taskID),
		Header: headers,
		Body:   update,
	}, &task)
	return task, err
}

func (h *httpAPIAdapter) DeleteTask(ctx context.Context, headers map[string]string, taskID string) error {
	return h.fetchJSON(ctx, Target{Method: http.MethodDelete, Path: "/tasks/" + url.PathEscape(taskID), Header: headers}, nil)
}

func (h *httpAPIAdapter) ListDeliverables(ctx context.Context, headers map[string]string, ideaID string) ([]models.Deliverable, error) {
	var deliverables []models.Deliverable
	err := h.fetchJSON(ctx, Target{Method: http.MethodGet, Path: ideaPath(ideaID, "deliverables"), Header: headers}, &deliverables)
	return deliverables, err
}

// ListUpdateLogs implements [APIAdapter]. The idea-scoped endpoint has no
// offset, so paged idea queries go through the workspace-wide listing with an
// idea_id filter.
func (h *httpAPIAdapter) ListUpdateLogs(ctx context.Context, headers map[string]string, ideaID string, limit, offset int) ([]models.UpdateLog, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	target := Target{Method: http.MethodGet, Header: headers, Query: query}
	switch {
	case ideaID != "" && offset == 0:
		target.Path = ideaPath(ideaID, "update_logs")
	default:
		target.Path = "/update_logs"
		if offset > 0 {
			query.Set("offset", strconv.Itoa(offset))
		}
		if ideaID != "" {
			query.Set("idea_id", ideaID)
		}
	}

	var logs []models.UpdateLog
	err := h.fetchJSON(ctx, target, &logs)
	return logs, err
}

func (h *httpAPIAdapter) CreateUpdateLog(ctx context.Context, headers map[string]string, ideaID string, log models.UpdateLogCreate) (models.UpdateLog, error) {
	var created models.UpdateLog
	err := h.fetchJSON(ctx, Target{
		Method: http.MethodPost,
		Path:   ideaPath(ideaID, "update_logs"),
		Header: headers,
		Body:   log,
	}, &created)
	return created, err
}

func (h *httpAPIAdapter) DeleteUpdateLog(ctx context.Context, headers map[string]string, logID string) error {
	return h.fetchJSON(ctx, Target{Method: http.MethodDelete, Path: "/update_logs/" + url.PathEscape(logID), Header: headers}, nil)
}

func (h *httpAPIAdapter) IdeaProgress(ctx context.Context, headers map[string]string, ideaID string) (models.IdeaProgress, error) {
	var progress models.IdeaProgress
	err := h.fetchJSON(ctx, Target{Method: http.MethodGet, Path: ideaPath(ideaID, "progress"), Header: headers}, &progress)
	return progress, err
}

func (h *httpAPIAdapter) IdeaRisks(ctx context.Context, headers map[string]string, ideaID, month string) ([]models.RiskItem, error) {
	var risks []models.RiskItem
	err := h.fetchJSON(ctx, Target{
		Method: http.MethodGet,
		Path:   ideaPath(ideaID, "risks"),
		Header: headers,
		Query:  monthQuery(month),
	}, &risks)
	return risks, err
}

func (h *httpAPIAdapter) IdeaNextActions(ctx context.Context, headers map[string]string, ideaID, month string) (models.NextActions, error) {
	var actions models.NextActions
	err := h.fetchJSON(ctx, Target{
		Method: http.MethodGet,
		Path:   ideaPath(ideaID, "next_actions"),
		Header: headers,
		Query:  monthQuery(month),
	}, &actions)
	return actions, err
}

func (h *httpAPIAdapter) DashboardOverview(ctx context.Context, headers map[string]string, month string) (models.DashboardOverview, error) {
	var overview models.DashboardOverview
	err := h.fetchJSON(ctx, Target{
		Method: http.MethodGet,
		Path:   "/dashboard/overview",
		Header: headers,
		Query:  monthQuery(month),
	}, &overview)
	return overview, err
}

func (h *httpAPIAdapter) SyncSettings(ctx context.Context, headers map[string]string) (models.SyncSettings, error) {
	var settings models.SyncSettings
	err := h.fetchJSON(ctx, Target{Method: http.MethodGet, Path: "/settings/sync", Header: headers}, &settings)
	return settings, err
}

func (h *httpAPIAdapter) IngestDailyReports(ctx context.Context, headers map[string]string, ideaID string, settings models.SyncSettings) (models.BulkIngestResult, error) {
	query := url.Values{}
	query.Set("idea_id", ideaID)
	if settings.ReportsDir != "" {
		query.Set("reports_dir", settings.ReportsDir)
	}
	if settings.ReportsPattern != "" {
		query.Set("pattern", settings.ReportsPattern)
	}

	var result models.BulkIngestResult
	err := h.fetchJSON(ctx, Target{
		Method: http.MethodPost,
		Path:   "/ingest/daily_reports/bulk",
		Header: headers,
		Query:  query,
	}, &result)
	return result, err
}

// fetchJSON runs target through the Fetcher, maps the final status to a
// sentinel error and decodes a 2xx body into result (when non-nil).
func (h *httpAPIAdapter) fetchJSON(ctx context.Context, target Target, result any) error {
	resp, err := h.fetcher.FetchWithRetry(ctx, target, h.policy)
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s %s: %w", target.method(), target.Path, err)
	}

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode %s response: %w", target.Path, err)
	}
	return nil
}

func ideaPath(ideaID, resource string) string {
	return "/ideas/" + url.PathEscape(ideaID) + "/" + resource
}

func monthQuery(month string) url.Values {
	if month == "" {
		return nil
	}
	return url.Values{"month": []string{month}}
}
