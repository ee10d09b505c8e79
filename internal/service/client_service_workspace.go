// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-research-os/internal/adapter"
	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/MKhiriev/go-research-os/models"
	"github.com/jonboulle/clockwork"
)

// overviewLogLimit is the number of recent notes shown for the selected idea.
const overviewLogLimit = 8

type clientWorkspaceService struct {
	adapter adapter.APIAdapter
	session ClientSessionService
	clock   clockwork.Clock
	logger  *logger.Logger
}

func NewClientWorkspaceService(api adapter.APIAdapter, session ClientSessionService, clock clockwork.Clock, logger *logger.Logger) ClientWorkspaceService {
	return &clientWorkspaceService{adapter: api, session: session, clock: clock, logger: logger}
}

func (w *clientWorkspaceService) Ideas(ctx context.Context) ([]models.Idea, error) {
	ideas, err := w.adapter.ListIdeas(ctx, w.session.Headers())
	if err != nil {
		return nil, fmt.Errorf("load ideas: %w", err)
	}
	sortIdeas(ideas)
	return ideas, nil
}

func (w *clientWorkspaceService) IdeaTasks(ctx context.Context, ideaID string) ([]models.Task, error) {
	tasks, err := w.adapter.ListIdeaTasks(ctx, w.session.Headers(), ideaID)
	if err != nil {
		return nil, fmt.Errorf("load tasks of idea %s: %w", ideaID, err)
	}
	sortTasks(tasks, func(t models.Task) models.Task { return t })
	return tasks, nil
}

func (w *clientWorkspaceService) Tasks(ctx context.Context) ([]models.TaskWithIdea, error) {
	tasks, err := w.adapter.ListTasks(ctx, w.session.Headers())
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	sortTasks(tasks, func(t models.TaskWithIdea) models.Task { return t.Task })
	return tasks, nil
}

func (w *clientWorkspaceService) Idea(ctx context.Context, ideaID string) (models.Idea, error) {
	idea, err := w.adapter.GetIdea(ctx, w.session.Headers(), ideaID)
	if err != nil {
		return models.Idea{}, fmt.Errorf("load idea %s: %w", ideaID, err)
	}
	return idea, nil
}

// Overview implements [ClientWorkspaceService]. Counters and ideas load in
// parallel; the selected idea's details load in parallel afterwards.
func (w *clientWorkspaceService) Overview(ctx context.Context, month, selectedIdeaID string) (models.Overview, error) {
	if month == "" {
		month = w.CurrentMonth()
	}
	headers := w.session.Headers()
	overview := models.Overview{Month: month}
	errs := newFirstError()

	var wg sync.WaitGroup
	wg.Go(func() {
		counters, err := w.adapter.DashboardOverview(ctx, headers, month)
		if errs.record(0, "dashboard overview", err) {
			overview.Counters = &counters
		}
	})
	wg.Go(func() {
		ideas, err := w.adapter.ListIdeas(ctx, headers)
		if errs.record(1, "ideas", err) {
			sortIdeas(ideas)
			overview.Ideas = ideas
		}
	})
	wg.Wait()

	if idea, ok := pickIdea(overview.Ideas, selectedIdeaID); ok {
		overview.Selected = w.snapshot(ctx, headers, idea, month, errs)
	}

	overview.LoadedAt = w.clock.Now()

	if err := errs.get(); err != nil {
		w.logger.Warn().Err(err).Str("func", "clientWorkspaceService.Overview").Str("month", month).Msg("overview loaded partially")
		return overview, err
	}
	return overview, nil
}

func (w *clientWorkspaceService) snapshot(ctx context.Context, headers map[string]string, idea models.Idea, month string, errs *firstError) *models.IdeaSnapshot {
	snap := &models.IdeaSnapshot{Idea: idea}

	var wg sync.WaitGroup
	wg.Go(func() {
		tasks, err := w.IdeaTasks(ctx, idea.ID)
		if errs.record(2, "tasks", err) {
			snap.Tasks = tasks
		}
	})
	wg.Go(func() {
		deliverables, err := w.adapter.ListDeliverables(ctx, headers, idea.ID)
		if errs.record(3, "deliverables", err) {
			snap.Deliverables = deliverables
		}
	})
	wg.Go(func() {
		logs, err := w.adapter.ListUpdateLogs(ctx, headers, idea.ID, overviewLogLimit, 0)
		if errs.record(4, "update logs", err) {
			snap.Logs = logs
		}
	})
	wg.Go(func() {
		progress, err := w.adapter.IdeaProgress(ctx, headers, idea.ID)
		if errs.record(5, "progress", err) {
			snap.Progress = &progress
		}
	})
	wg.Go(func() {
		risks, err := w.adapter.IdeaRisks(ctx, headers, idea.ID, month)
		if errs.record(6, "risks", err) {
			snap.Risks = risks
		}
	})
	wg.Go(func() {
		actions, err := w.adapter.IdeaNextActions(ctx, headers, idea.ID, month)
		if errs.record(7, "next actions", err) {
			snap.NextActions = actions.Actions
		}
	})
	wg.Wait()

	return snap
}

func (w *clientWorkspaceService) UpdateLogs(ctx context.Context, limit, offset int) ([]models.UpdateLog, error) {
	logs, err := w.adapter.ListUpdateLogs(ctx, w.session.Headers(), "", limit, max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("load update logs: %w", err)
	}
	return logs, nil
}

func (w *clientWorkspaceService) SetTaskStatus(ctx context.Context, taskID string, status models.ItemStatus) (models.Task, error) {
	task, err := w.adapter.UpdateTask(ctx, w.session.Headers(), taskID, models.TaskUpdate{Status: &status})
	if err != nil {
		return models.Task{}, fmt.Errorf("update task %s: %w", taskID, err)
	}
	return task, nil
}

func (w *clientWorkspaceService) DeleteTask(ctx context.Context, taskID string) error {
	if err := w.adapter.DeleteTask(ctx, w.session.Headers(), taskID); err != nil {
		return fmt.Errorf("delete task %s: %w", taskID, err)
	}
	return nil
}

func (w *clientWorkspaceService) AddNote(ctx context.Context, ideaID, title, body string) (models.UpdateLog, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.UpdateLog{}, ErrEmptyNote
	}

	log, err := w.adapter.CreateUpdateLog(ctx, w.session.Headers(), ideaID, models.UpdateLogCreate{
		Source: "manual",
		Title:  title,
		BodyMD: body,
	})
	if err != nil {
		return models.UpdateLog{}, fmt.Errorf("create note: %w", err)
	}
	return log, nil
}

func (w *clientWorkspaceService) DeleteNote(ctx context.Context, logID string) error {
	if err := w.adapter.DeleteUpdateLog(ctx, w.session.Headers(), logID); err != nil {
		return fmt.Errorf("delete note %s: %w", logID, err)
	}
	return nil
}

func (w *clientWorkspaceService) CurrentMonth() string {
	return w.clock.Now().Format("2006-01")
}

// sortIdeas orders main topics first, then by title.
func sortIdeas(ideas []models.Idea) {
	slices.SortStableFunc(ideas, func(a, b models.Idea) int {
		if a.MainTopicFlag != b.MainTopicFlag {
			if a.MainTopicFlag {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Title, b.Title)
	})
}

// sortTasks orders by sort order, then start month.
func sortTasks[T any](tasks []T, task func(T) models.Task) {
	slices.SortStableFunc(tasks, func(a, b T) int {
		ta, tb := task(a), task(b)
		return cmp.Or(
			cmp.Compare(ta.SortOrder, tb.SortOrder),
			cmp.Compare(ta.StartMonth, tb.StartMonth),
		)
	})
}

func pickIdea(ideas []models.Idea, id string) (models.Idea, bool) {
	if len(ideas) == 0 {
		return models.Idea{}, false
	}
	if id != "" {
		if i := slices.IndexFunc(ideas, func(idea models.Idea) bool { return idea.ID == id }); i >= 0 {
			return ideas[i], true
		}
	}
	return ideas[0], true
}

// firstError keeps the error of the lowest-ranked failed part, so the
// reported error does not depend on goroutine scheduling.
type firstError struct {
	mu   sync.Mutex
	rank int
	err  error
}

func newFirstError() *firstError {
	return &firstError{rank: -1}
}

// record stores err under rank and reports whether the part succeeded.
func (f *firstError) record(rank int, part string, err error) bool {
	if err == nil {
		return true
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil || rank < f.rank {
		f.rank = rank
		f.err = fmt.Errorf("load %s: %w", part, err)
	}
	return false
}

func (f *firstError) get() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// IsUnauthorized reports whether err means the session token was rejected.
func IsUnauthorized(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized)
}
