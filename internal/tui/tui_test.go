// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-research-os/internal/adapter"
	"github.com/MKhiriev/go-research-os/internal/app"
	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/MKhiriev/go-research-os/internal/service"
	"github.com/MKhiriev/go-research-os/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── stubs ────────────────────────────────────────────────────────────────────

type stubSession struct {
	service.ClientSessionService
	stored     models.Credentials
	loginOK    bool
	loginCalls []models.Credentials
	healthErr  error
}

func (s *stubSession) Health(context.Context) error { return s.healthErr }

func (s *stubSession) StoredCredentials(context.Context) models.Credentials { return s.stored }

func (s *stubSession) Login(_ context.Context, email, password string) bool {
	s.loginCalls = append(s.loginCalls, models.Credentials{Email: email, Password: password})
	return s.loginOK
}

func (s *stubSession) Session() models.Session {
	return models.Session{Token: "tok", User: &models.UserProfile{Email: "me@example.com"}}
}

type stubWorkspace struct {
	service.ClientWorkspaceService
	offsets      []int
	statuses     map[string]models.ItemStatus
	deletedTasks []string
	deletedNotes []string
}

func (w *stubWorkspace) Tasks(context.Context) ([]models.TaskWithIdea, error) {
	return []models.TaskWithIdea{
		{Task: models.Task{ID: "t1", IdeaID: "a", Title: "Draft", Status: models.StatusPlanned}, IdeaTitle: "Alpha"},
		{Task: models.Task{ID: "t2", IdeaID: "b", Title: "Review", Status: models.StatusInProgress}, IdeaTitle: "Beta"},
	}, nil
}

func (w *stubWorkspace) Idea(_ context.Context, ideaID string) (models.Idea, error) {
	return models.Idea{ID: ideaID, Title: "Alpha", Description: "Why alpha matters"}, nil
}

func (w *stubWorkspace) DeleteTask(_ context.Context, taskID string) error {
	w.deletedTasks = append(w.deletedTasks, taskID)
	return nil
}

func (w *stubWorkspace) DeleteNote(_ context.Context, logID string) error {
	w.deletedNotes = append(w.deletedNotes, logID)
	return nil
}

func (w *stubWorkspace) UpdateLogs(_ context.Context, limit, offset int) ([]models.UpdateLog, error) {
	w.offsets = append(w.offsets, offset)
	return make([]models.UpdateLog, limit), nil
}

func (w *stubWorkspace) SetTaskStatus(_ context.Context, taskID string, status models.ItemStatus) (models.Task, error) {
	if w.statuses == nil {
		w.statuses = map[string]models.ItemStatus{}
	}
	w.statuses[taskID] = status
	return models.Task{ID: taskID, Status: status}, nil
}

type stubPrefs struct {
	service.ClientPreferencesService
}

func (stubPrefs) Theme(context.Context) models.Theme { return models.ThemeDark }
func (stubPrefs) AutoSyncEnabled(context.Context) bool {
	return false
}

type stubJob struct {
	mu      sync.Mutex
	started []string
}

func (j *stubJob) Start(_ context.Context, ideaID string, _ time.Duration) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.started = append(j.started, ideaID)
}

func (j *stubJob) Stop() {}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestMainLoop(t *testing.T) (mainLoopModel, *stubWorkspace, *stubJob) {
	t.Helper()
	workspace := &stubWorkspace{}
	job := &stubJob{}
	services := &service.ClientServices{
		SessionService:     &stubSession{},
		WorkspaceService:   workspace,
		PreferencesService: stubPrefs{},
		ReportSyncJob:      job,
	}
	m := newMainLoopModel(context.Background(), services, time.Minute, models.NewAppBuildInfo("", "", ""), logger.Nop())
	m.loading = false
	return m, workspace, job
}

func testOverview() models.Overview {
	ideas := []models.Idea{{ID: "a", Title: "Alpha"}, {ID: "b", Title: "Beta"}}
	return models.Overview{
		Month: "2026-03",
		Ideas: ideas,
		Selected: &models.IdeaSnapshot{
			Idea:  ideas[1],
			Tasks: []models.Task{{ID: "t1", Title: "Draft", Status: models.StatusPlanned}},
		},
	}
}

// ── RootModel ────────────────────────────────────────────────────────────────

func TestRootModel_BootAuthenticated_Quits(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{}, pageSplash)

	updated, cmd := root.Update(bootDoneMsg{state: models.SessionAuthenticated})

	require.NotNil(t, cmd)
	assert.True(t, updated.(RootModel).authenticated)
}

func TestRootModel_BootUnauthenticated_ShowsLogin(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{}, pageSplash)

	updated, cmd := root.Update(bootDoneMsg{state: models.SessionUnauthenticated})

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageLogin}, cmd())
	assert.False(t, updated.(RootModel).authenticated)
}

func TestRootModel_LoginResult(t *testing.T) {
	login := NewLoginModel(context.Background(), &stubSession{}, newStyles(models.ThemeLight))
	root := NewRootModel(map[string]tea.Model{pageLogin: login}, pageLogin)

	updated, _ := root.Update(LoginResult{OK: false})
	assert.False(t, updated.(RootModel).authenticated)
	assert.Equal(t, app.MsgInvalidCredentials, login.errMsg)

	updated, cmd := updated.Update(LoginResult{OK: true})
	require.NotNil(t, cmd)
	assert.True(t, updated.(RootModel).authenticated)
}

func TestRootModel_CtrlC(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{}, pageLogin)

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.True(t, updated.(RootModel).quitByUser)
}

// ── LoginModel ───────────────────────────────────────────────────────────────

func TestLoginModel_PrefillAndSubmit(t *testing.T) {
	session := &stubSession{stored: models.Credentials{Email: "owner@example.com", Password: "pw"}, loginOK: true}
	m := NewLoginModel(context.Background(), session, newStyles(models.ThemeLight))

	m.Update(credentialsLoadedMsg{creds: session.stored})
	assert.Equal(t, "owner@example.com", m.inputs[0].Value())
	assert.Equal(t, "pw", m.inputs[1].Value())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	msg := cmd()
	assert.Equal(t, LoginResult{OK: true, Email: "owner@example.com"}, msg)
	assert.Equal(t, []models.Credentials{session.stored}, session.loginCalls)
}

func TestLoginModel_EmptyFields(t *testing.T) {
	session := &stubSession{}
	m := NewLoginModel(context.Background(), session, newStyles(models.ThemeLight))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgCredentialsRequired, m.errMsg)
	assert.Empty(t, session.loginCalls)
}

func TestLoginModel_HealthCheck(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "healthy", err: nil, want: ""},
		{name: "unreachable", err: fmt.Errorf("backend health: dial tcp: connection refused"), want: app.MsgBackendDown},
		{name: "unavailable", err: fmt.Errorf("backend health: %w", adapter.ErrServiceUnavailable), want: app.MsgBackendUnavailable},
		{name: "unexpected status", err: fmt.Errorf("backend health: %w", adapter.ErrInternalServerError), want: app.MsgBackendDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &stubSession{healthErr: tt.err}
			m := NewLoginModel(context.Background(), session, newStyles(models.ThemeLight))

			m.Update(healthCheckedMsg{err: session.Health(context.Background())})

			assert.Equal(t, tt.want, m.errMsg)
		})
	}
}

// ── mainLoopModel ────────────────────────────────────────────────────────────

func TestMainLoop_OverviewStartsSyncJob(t *testing.T) {
	m, _, job := newTestMainLoop(t)

	updated, _ := m.Update(overviewLoadedMsg{overview: testOverview()})
	m = updated.(mainLoopModel)

	assert.Equal(t, "b", m.selectedIdeaID)
	assert.Equal(t, 1, m.ideaIdx)
	assert.Equal(t, []string{"b"}, job.started)

	updated, _ = m.Update(overviewLoadedMsg{overview: testOverview()})
	assert.Equal(t, []string{"b"}, job.started, "same idea must not restart the job")
	assert.Equal(t, "b", updated.(mainLoopModel).syncIdeaID)
}

func TestMainLoop_UnauthorizedReturnsToLogin(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	err := fmt.Errorf("load ideas: %w", adapter.ErrUnauthorized)
	updated, cmd := m.Update(overviewLoadedMsg{err: err})

	require.NotNil(t, cmd)
	assert.True(t, updated.(mainLoopModel).logout)
}

func TestMainLoop_PartialOverviewShowsError(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	updated, cmd := m.Update(overviewLoadedMsg{overview: testOverview(), err: adapter.ErrServiceUnavailable})
	m = updated.(mainLoopModel)

	assert.Nil(t, cmd)
	assert.False(t, m.logout)
	assert.Equal(t, app.MsgBackendUnavailable, m.errMsg)
	assert.Len(t, m.overview.Ideas, 2)
}

func TestMainLoop_LogoutKey(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	updated, cmd := m.Update(keyRunes("l"))

	require.NotNil(t, cmd)
	assert.True(t, updated.(mainLoopModel).logout)
}

func TestMainLoop_QuitKey(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	updated, cmd := m.Update(keyRunes("q"))

	require.NotNil(t, cmd)
	assert.False(t, updated.(mainLoopModel).logout)
}

func TestMainLoop_ReportsPaging(t *testing.T) {
	m, workspace, _ := newTestMainLoop(t)

	updated, cmd := m.Update(keyRunes("g"))
	m = updated.(mainLoopModel)
	require.NotNil(t, cmd)
	assert.Equal(t, viewReports, m.view)

	updated, _ = m.Update(cmd())
	m = updated.(mainLoopModel)
	assert.Len(t, m.logs, reportsPageSize)

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(mainLoopModel)
	require.NotNil(t, cmd)
	updated, _ = m.Update(cmd())
	m = updated.(mainLoopModel)
	assert.Equal(t, reportsPageSize, m.logsOffset)

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(mainLoopModel)
	require.NotNil(t, cmd)
	updated, _ = m.Update(cmd())
	m = updated.(mainLoopModel)
	assert.Equal(t, 0, m.logsOffset)

	assert.Equal(t, []int{0, reportsPageSize, 0}, workspace.offsets)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd, "no previous page on the first page")
}

func TestMainLoop_ReportsLastPage(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	m.view = viewReports
	m.logs = make([]models.UpdateLog, 3)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})

	assert.Nil(t, cmd)
}

func TestMainLoop_TaskStatusCycles(t *testing.T) {
	m, workspace, _ := newTestMainLoop(t)
	updated, _ := m.Update(overviewLoadedMsg{overview: testOverview()})
	m = updated.(mainLoopModel)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(mainLoopModel)
	require.Equal(t, paneTasks, m.pane)

	_, cmd := m.Update(keyRunes("x"))
	require.NotNil(t, cmd)
	msg := cmd()

	assert.Equal(t, models.StatusInProgress, workspace.statuses["t1"])
	assert.IsType(t, taskUpdatedMsg{}, msg)
}

func TestMainLoop_CopyIdeaTitle(t *testing.T) {
	var copied string
	prev := clipboardWrite
	clipboardWrite = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { clipboardWrite = prev })

	m, _, _ := newTestMainLoop(t)
	updated, _ := m.Update(keyRunes("c"))
	assert.Equal(t, app.MsgNothingToCopy, updated.(mainLoopModel).status)

	updated, _ = m.Update(overviewLoadedMsg{overview: testOverview()})
	m = updated.(mainLoopModel)
	updated, _ = m.Update(keyRunes("c"))

	assert.Equal(t, "Beta", copied)
	assert.Equal(t, app.MsgCopied, updated.(mainLoopModel).status)
}

func TestMainLoop_NoteRequiresIdea(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	updated, _ := m.Update(keyRunes("n"))
	m = updated.(mainLoopModel)

	assert.False(t, m.addingNote)
	assert.Equal(t, app.MsgNoIdeaSelected, m.errMsg)
}

func TestMainLoop_View(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	updated, _ := m.Update(overviewLoadedMsg{overview: testOverview()})

	out := updated.View()

	assert.Contains(t, out, "DASHBOARD")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Draft")
	assert.Contains(t, out, "me@example.com")
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "network exhausted", err: &adapter.NetworkExhaustedError{Target: adapter.Target{Path: "/ideas"}, Attempts: 3, Err: fmt.Errorf("refused")}, want: app.MsgBackendUnreachable},
		{name: "unavailable", err: fmt.Errorf("x: %w", adapter.ErrServiceUnavailable), want: app.MsgBackendUnavailable},
		{name: "no idea", err: service.ErrNoIdeaSelected, want: app.MsgNoIdeaSelected},
		{name: "other", err: fmt.Errorf("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestMainLoop_DeleteTaskAfterConfirm(t *testing.T) {
	m, workspace, _ := newTestMainLoop(t)
	updated, _ := m.Update(overviewLoadedMsg{overview: testOverview()})
	m = updated.(mainLoopModel)

	updated, cmd := m.Update(keyRunes("d"))
	m = updated.(mainLoopModel)
	assert.Nil(t, cmd)
	assert.Nil(t, m.pendingDelete, "ideas pane has nothing to delete")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(mainLoopModel)
	updated, _ = m.Update(keyRunes("d"))
	m = updated.(mainLoopModel)
	require.NotNil(t, m.pendingDelete)
	assert.Contains(t, m.View(), "Draft")

	updated, cmd = m.Update(keyRunes("y"))
	m = updated.(mainLoopModel)
	require.NotNil(t, cmd)
	assert.Nil(t, m.pendingDelete)
	assert.Equal(t, taskDeletedMsg{}, cmd())
	assert.Equal(t, []string{"t1"}, workspace.deletedTasks)
	assert.Empty(t, workspace.deletedNotes)

	updated, cmd = m.Update(taskDeletedMsg{})
	require.NotNil(t, cmd)
	assert.True(t, updated.(mainLoopModel).loading)
}

func TestMainLoop_DeleteCancelled(t *testing.T) {
	m, workspace, _ := newTestMainLoop(t)
	m.view = viewReports
	m.logs = []models.UpdateLog{{ID: "l1", Title: "Weekly"}}

	updated, _ := m.Update(keyRunes("d"))
	m = updated.(mainLoopModel)
	require.NotNil(t, m.pendingDelete)
	assert.False(t, m.pendingDelete.task)

	updated, cmd := m.Update(keyRunes("n"))
	assert.Nil(t, cmd)
	assert.Nil(t, updated.(mainLoopModel).pendingDelete)
	assert.Empty(t, workspace.deletedNotes)
}

func TestMainLoop_AllTasksView(t *testing.T) {
	m, workspace, _ := newTestMainLoop(t)

	updated, cmd := m.Update(keyRunes("w"))
	m = updated.(mainLoopModel)
	require.NotNil(t, cmd)
	assert.Equal(t, viewTasks, m.view)
	assert.True(t, m.allTasksLoading)

	updated, _ = m.Update(cmd())
	m = updated.(mainLoopModel)
	require.Len(t, m.allTasks, 2)
	assert.False(t, m.allTasksLoading)
	assert.Contains(t, m.View(), "ALL TASKS")
	assert.Contains(t, m.View(), "Review")

	updated, _ = m.Update(keyRunes("j"))
	m = updated.(mainLoopModel)
	assert.Equal(t, 1, m.allTaskIdx)

	_, cmd = m.Update(keyRunes("x"))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, models.StatusCompleted, workspace.statuses["t2"])

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(mainLoopModel)
	require.NotNil(t, cmd)
	assert.Equal(t, viewDashboard, m.view)
	assert.Equal(t, paneTasks, m.pane)
	assert.Equal(t, "b", m.selectedIdeaID)
}

func TestMainLoop_AllTasksUnauthorized(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	m.view = viewTasks

	updated, cmd := m.Update(allTasksLoadedMsg{err: fmt.Errorf("load tasks: %w", adapter.ErrUnauthorized)})

	require.NotNil(t, cmd)
	assert.True(t, updated.(mainLoopModel).logout)
}

func TestMainLoop_IdeaDetail(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	updated, _ := m.Update(overviewLoadedMsg{overview: testOverview()})
	m = updated.(mainLoopModel)
	m.ideaIdx = 0

	_, cmd := m.Update(keyRunes("i"))
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, "a", msg.(ideaLoadedMsg).idea.ID)

	updated, _ = m.Update(msg)
	m = updated.(mainLoopModel)
	require.NotNil(t, m.ideaDetail)
	assert.Contains(t, m.View(), "Why alpha matters")

	updated, _ = m.Update(keyRunes("x"))
	m = updated.(mainLoopModel)
	require.NotNil(t, m.ideaDetail, "other keys are ignored while the details are open")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, updated.(mainLoopModel).ideaDetail)
}
