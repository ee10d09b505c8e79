// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-research-os/internal/app"
	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/MKhiriev/go-research-os/internal/service"
	"github.com/MKhiriev/go-research-os/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// reportsPageSize is the number of update logs shown per reports page.
const reportsPageSize = 20

const statusTTL = 4 * time.Second

type view int

const (
	viewDashboard view = iota
	viewReports
	viewTasks
)

type pane int

const (
	paneIdeas pane = iota
	paneTasks
)

// nextStatus is the order the status key cycles a task through.
var nextStatus = map[models.ItemStatus]models.ItemStatus{
	models.StatusPlanned:    models.StatusInProgress,
	models.StatusInProgress: models.StatusCompleted,
	models.StatusCompleted:  models.StatusPlanned,
	models.StatusOnHold:     models.StatusInProgress,
	models.StatusStopped:    models.StatusPlanned,
	models.StatusDiscarded:  models.StatusPlanned,
}

// deletion is an item waiting for the user's confirmation.
type deletion struct {
	task  bool
	id    string
	label string
}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

type mainLoopModel struct {
	ctx          context.Context
	services     *service.ClientServices
	syncInterval time.Duration
	buildInfo    models.AppBuildInfo
	logger       *logger.Logger

	theme    models.Theme
	styles   styles
	autoSync bool
	spinner  spinner.Model

	view          view
	pane          pane
	showBuildInfo bool

	overview       models.Overview
	loading        bool
	ideaIdx        int
	taskIdx        int
	selectedIdeaID string
	syncIdeaID     string
	syncing        bool

	logs           []models.UpdateLog
	logsOffset     int
	logIdx         int
	logsLoading    bool
	pendingDelete  *deletion
	addingNote     bool
	noteInput      textinput.Model
	noteSubmitting bool

	allTasks        []models.TaskWithIdea
	allTaskIdx      int
	allTasksLoading bool

	ideaDetail *models.Idea

	status string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, syncInterval time.Duration, buildInfo models.AppBuildInfo, log *logger.Logger) mainLoopModel {
	theme := services.PreferencesService.Theme(ctx)
	st := newStyles(theme)

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = st.selected

	note := textinput.New()
	note.Placeholder = "note title"
	note.CharLimit = 200
	note.Width = 50

	return mainLoopModel{
		ctx:          ctx,
		services:     services,
		syncInterval: syncInterval,
		buildInfo:    buildInfo,
		logger:       log,
		theme:        theme,
		styles:       st,
		autoSync:     services.PreferencesService.AutoSyncEnabled(ctx),
		spinner:      s,
		noteInput:    note,
		loading:      true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadOverview())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case overviewLoadedMsg:
		m.loading = false
		if service.IsUnauthorized(msg.err) {
			return m.sessionExpired()
		}
		m.applyOverview(msg.overview)
		m.errMsg = humanizeError(msg.err)
		m.restartSyncJob()
		return m, nil
	case reportsLoadedMsg:
		m.logsLoading = false
		if service.IsUnauthorized(msg.err) {
			return m.sessionExpired()
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.logs = msg.logs
		m.logsOffset = msg.offset
		m.logIdx = clamp(m.logIdx, len(m.logs))
		return m, nil
	case taskUpdatedMsg:
		if service.IsUnauthorized(msg.err) {
			return m.sessionExpired()
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		status := fmt.Sprintf("Task %q is now %s", msg.task.Title, msg.task.Status)
		if m.view == viewTasks {
			m.allTasksLoading = true
			return m.withStatus(status, tea.Batch(m.cmdLoadOverview(), m.cmdLoadAllTasks()))
		}
		return m.withStatus(status, m.cmdLoadOverview())
	case taskDeletedMsg:
		if service.IsUnauthorized(msg.err) {
			return m.sessionExpired()
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.loading = true
		return m.withStatus("Task deleted", m.cmdLoadOverview())
	case allTasksLoadedMsg:
		m.allTasksLoading = false
		if service.IsUnauthorized(msg.err) {
			return m.sessionExpired()
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.allTasks = msg.tasks
		m.allTaskIdx = clamp(m.allTaskIdx, len(m.allTasks))
		return m, nil
	case ideaLoadedMsg:
		if service.IsUnauthorized(msg.err) {
			return m.sessionExpired()
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		idea := msg.idea
		m.ideaDetail = &idea
		return m, nil
	case noteSavedMsg:
		m.noteSubmitting = false
		if service.IsUnauthorized(msg.err) {
			return m.sessionExpired()
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.addingNote = false
		m.noteInput.Reset()
		m.noteInput.Blur()
		return m.withStatus("Note added", m.cmdLoadOverview())
	case noteDeletedMsg:
		if service.IsUnauthorized(msg.err) {
			return m.sessionExpired()
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.logsLoading = true
		return m.withStatus("Note deleted", m.cmdLoadReports(m.logsOffset))
	case reportsSyncedMsg:
		m.syncing = false
		if service.IsUnauthorized(msg.err) {
			return m.sessionExpired()
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m.withStatus(fmt.Sprintf("Imported %d report(s)", msg.result.ImportedLogs), m.cmdLoadOverview())
	case themeToggledMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		m.theme = msg.theme
		m.styles = newStyles(msg.theme)
		m.spinner.Style = m.styles.selected
		return m, nil
	case autoSyncToggledMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.autoSync = msg.enabled
		if msg.enabled {
			return m.withStatus("Auto-sync on", nil)
		}
		return m.withStatus("Auto-sync off", nil)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.addingNote {
			var cmd tea.Cmd
			m.noteInput, cmd = m.noteInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.addingNote:
		return m.updateNoteInput(keyMsg)
	case m.pendingDelete != nil:
		return m.updateConfirmDelete(keyMsg)
	case m.showBuildInfo:
		if key.Matches(keyMsg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	case m.ideaDetail != nil:
		if key.Matches(keyMsg, keys.esc, keys.ideaInfo) {
			m.ideaDetail = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.theme):
		return m, m.cmdToggleTheme()
	case key.Matches(keyMsg, keys.autoSync):
		return m, m.cmdToggleAutoSync()
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(keyMsg, keys.reports):
		if m.view == viewReports {
			m.view = viewDashboard
			return m, nil
		}
		m.view = viewReports
		m.logIdx = 0
		m.logsLoading = true
		return m, m.cmdLoadReports(0)
	case key.Matches(keyMsg, keys.allTasks):
		if m.view == viewTasks {
			m.view = viewDashboard
			return m, nil
		}
		m.view = viewTasks
		m.allTaskIdx = 0
		m.allTasksLoading = true
		return m, m.cmdLoadAllTasks()
	}

	switch m.view {
	case viewReports:
		return m.updateReports(keyMsg)
	case viewTasks:
		return m.updateAllTasks(keyMsg)
	}
	return m.updateDashboard(keyMsg)
}

func (m mainLoopModel) updateDashboard(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadOverview()
	case key.Matches(keyMsg, keys.tab, keys.backtab):
		if m.pane == paneIdeas {
			m.pane = paneTasks
		} else {
			m.pane = paneIdeas
		}
	case key.Matches(keyMsg, keys.up):
		if m.pane == paneIdeas {
			m.ideaIdx = max(m.ideaIdx-1, 0)
		} else {
			m.taskIdx = max(m.taskIdx-1, 0)
		}
	case key.Matches(keyMsg, keys.down):
		if m.pane == paneIdeas {
			m.ideaIdx = clamp(m.ideaIdx+1, len(m.overview.Ideas))
		} else {
			m.taskIdx = clamp(m.taskIdx+1, len(m.selectedTasks()))
		}
	case key.Matches(keyMsg, keys.enter):
		if m.pane != paneIdeas || len(m.overview.Ideas) == 0 {
			return m, nil
		}
		m.selectedIdeaID = m.overview.Ideas[m.ideaIdx].ID
		m.taskIdx = 0
		m.loading = true
		return m, m.cmdLoadOverview()
	case key.Matches(keyMsg, keys.status):
		tasks := m.selectedTasks()
		if m.pane != paneTasks || len(tasks) == 0 {
			return m, nil
		}
		task := tasks[m.taskIdx]
		return m, m.cmdSetTaskStatus(task.ID, nextStatus[task.Status])
	case key.Matches(keyMsg, keys.delete):
		tasks := m.selectedTasks()
		if m.pane != paneTasks || len(tasks) == 0 {
			return m, nil
		}
		task := tasks[m.taskIdx]
		m.pendingDelete = &deletion{task: true, id: task.ID, label: task.Title}
	case key.Matches(keyMsg, keys.ideaInfo):
		if m.pane != paneIdeas || len(m.overview.Ideas) == 0 {
			return m, nil
		}
		return m, m.cmdLoadIdea(m.overview.Ideas[m.ideaIdx].ID)
	case key.Matches(keyMsg, keys.copy):
		if m.overview.Selected == nil {
			return m.withStatus(app.MsgNothingToCopy, nil)
		}
		if err := clipboardWrite(m.overview.Selected.Idea.Title); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		return m.withStatus(app.MsgCopied, nil)
	case key.Matches(keyMsg, keys.note):
		if m.selectedIdeaID == "" {
			m.errMsg = app.MsgNoIdeaSelected
			return m, nil
		}
		m.addingNote = true
		m.errMsg = ""
		return m, m.noteInput.Focus()
	case key.Matches(keyMsg, keys.syncNow):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.errMsg = ""
		return m, m.cmdSyncReports()
	}

	return m, nil
}

func (m mainLoopModel) updateReports(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.view = viewDashboard
	case key.Matches(keyMsg, keys.refresh):
		m.logsLoading = true
		return m, m.cmdLoadReports(m.logsOffset)
	case key.Matches(keyMsg, keys.up):
		m.logIdx = max(m.logIdx-1, 0)
	case key.Matches(keyMsg, keys.down):
		m.logIdx = clamp(m.logIdx+1, len(m.logs))
	case key.Matches(keyMsg, keys.right):
		if len(m.logs) < reportsPageSize || m.logsLoading {
			return m, nil
		}
		m.logIdx = 0
		m.logsLoading = true
		return m, m.cmdLoadReports(m.logsOffset + reportsPageSize)
	case key.Matches(keyMsg, keys.left):
		if m.logsOffset == 0 || m.logsLoading {
			return m, nil
		}
		m.logIdx = 0
		m.logsLoading = true
		return m, m.cmdLoadReports(max(m.logsOffset-reportsPageSize, 0))
	case key.Matches(keyMsg, keys.delete):
		if len(m.logs) > 0 {
			log := m.logs[m.logIdx]
			m.pendingDelete = &deletion{id: log.ID, label: log.Title}
		}
	}
	return m, nil
}

func (m mainLoopModel) updateAllTasks(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.view = viewDashboard
	case key.Matches(keyMsg, keys.refresh):
		m.allTasksLoading = true
		return m, m.cmdLoadAllTasks()
	case key.Matches(keyMsg, keys.up):
		m.allTaskIdx = max(m.allTaskIdx-1, 0)
	case key.Matches(keyMsg, keys.down):
		m.allTaskIdx = clamp(m.allTaskIdx+1, len(m.allTasks))
	case key.Matches(keyMsg, keys.status):
		if len(m.allTasks) == 0 {
			return m, nil
		}
		task := m.allTasks[m.allTaskIdx]
		return m, m.cmdSetTaskStatus(task.ID, nextStatus[task.Status])
	case key.Matches(keyMsg, keys.enter):
		if len(m.allTasks) == 0 {
			return m, nil
		}
		task := m.allTasks[m.allTaskIdx]
		m.view = viewDashboard
		m.pane = paneTasks
		m.selectedIdeaID = task.IdeaID
		m.taskIdx = 0
		m.loading = true
		return m, m.cmdLoadOverview()
	}
	return m, nil
}

func (m mainLoopModel) updateConfirmDelete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		target := *m.pendingDelete
		m.pendingDelete = nil
		if target.task {
			return m, m.cmdDeleteTask(target.id)
		}
		return m, m.cmdDeleteNote(target.id)
	case key.Matches(keyMsg, keys.no):
		m.pendingDelete = nil
	}
	return m, nil
}

func (m mainLoopModel) updateNoteInput(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.addingNote = false
		m.noteInput.Reset()
		m.noteInput.Blur()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.noteSubmitting {
			return m, nil
		}
		title := strings.TrimSpace(m.noteInput.Value())
		if title == "" {
			m.errMsg = humanizeError(service.ErrEmptyNote)
			return m, nil
		}
		m.noteSubmitting = true
		return m, m.cmdAddNote(m.selectedIdeaID, title)
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(keyMsg)
	return m, cmd
}

func (m *mainLoopModel) applyOverview(overview models.Overview) {
	m.overview = overview
	m.ideaIdx = clamp(m.ideaIdx, len(overview.Ideas))
	if overview.Selected == nil {
		m.selectedIdeaID = ""
		m.taskIdx = 0
		return
	}
	m.selectedIdeaID = overview.Selected.Idea.ID
	m.taskIdx = clamp(m.taskIdx, len(overview.Selected.Tasks))
	for i, idea := range overview.Ideas {
		if idea.ID == m.selectedIdeaID {
			m.ideaIdx = i
			break
		}
	}
}

// restartSyncJob points the report sync job at the selected idea.
func (m *mainLoopModel) restartSyncJob() {
	if m.selectedIdeaID == "" || m.selectedIdeaID == m.syncIdeaID {
		return
	}
	m.syncIdeaID = m.selectedIdeaID
	m.services.ReportSyncJob.Start(m.ctx, m.syncIdeaID, m.syncInterval)
}

func (m mainLoopModel) sessionExpired() (tea.Model, tea.Cmd) {
	m.logger.Info().Str("func", "mainLoopModel.sessionExpired").Msg("token rejected, returning to login")
	m.errMsg = app.MsgSessionExpired
	m.logout = true
	return m, tea.Quit
}

func (m mainLoopModel) withStatus(status string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.status = status
	m.errMsg = ""
	clearCmd := tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
	if cmd == nil {
		return m, clearCmd
	}
	return m, tea.Batch(cmd, clearCmd)
}

func (m mainLoopModel) selectedTasks() []models.Task {
	if m.overview.Selected == nil {
		return nil
	}
	return m.overview.Selected.Tasks
}

// clamp keeps idx inside [0, n).
func clamp(idx, n int) int {
	if n <= 0 || idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

func (m mainLoopModel) cmdLoadOverview() tea.Cmd {
	ctx := m.ctx
	workspace := m.services.WorkspaceService
	month := m.overview.Month
	selected := m.selectedIdeaID

	return func() tea.Msg {
		overview, err := workspace.Overview(ctx, month, selected)
		return overviewLoadedMsg{overview: overview, err: err}
	}
}

func (m mainLoopModel) cmdLoadReports(offset int) tea.Cmd {
	ctx := m.ctx
	workspace := m.services.WorkspaceService

	return func() tea.Msg {
		logs, err := workspace.UpdateLogs(ctx, reportsPageSize, offset)
		return reportsLoadedMsg{logs: logs, offset: offset, err: err}
	}
}

func (m mainLoopModel) cmdSetTaskStatus(taskID string, status models.ItemStatus) tea.Cmd {
	ctx := m.ctx
	workspace := m.services.WorkspaceService

	return func() tea.Msg {
		task, err := workspace.SetTaskStatus(ctx, taskID, status)
		return taskUpdatedMsg{task: task, err: err}
	}
}

func (m mainLoopModel) cmdDeleteTask(taskID string) tea.Cmd {
	ctx := m.ctx
	workspace := m.services.WorkspaceService

	return func() tea.Msg {
		return taskDeletedMsg{err: workspace.DeleteTask(ctx, taskID)}
	}
}

func (m mainLoopModel) cmdLoadAllTasks() tea.Cmd {
	ctx := m.ctx
	workspace := m.services.WorkspaceService

	return func() tea.Msg {
		tasks, err := workspace.Tasks(ctx)
		return allTasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m mainLoopModel) cmdLoadIdea(ideaID string) tea.Cmd {
	ctx := m.ctx
	workspace := m.services.WorkspaceService

	return func() tea.Msg {
		idea, err := workspace.Idea(ctx, ideaID)
		return ideaLoadedMsg{idea: idea, err: err}
	}
}

func (m mainLoopModel) cmdAddNote(ideaID, title string) tea.Cmd {
	ctx := m.ctx
	workspace := m.services.WorkspaceService

	return func() tea.Msg {
		_, err := workspace.AddNote(ctx, ideaID, title, "")
		return noteSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteNote(logID string) tea.Cmd {
	ctx := m.ctx
	workspace := m.services.WorkspaceService

	return func() tea.Msg {
		return noteDeletedMsg{err: workspace.DeleteNote(ctx, logID)}
	}
}

func (m mainLoopModel) cmdSyncReports() tea.Cmd {
	ctx := m.ctx
	reportSync := m.services.ReportSyncService
	ideaID := m.selectedIdeaID

	return func() tea.Msg {
		result, err := reportSync.SyncReports(ctx, ideaID)
		return reportsSyncedMsg{result: result, err: err}
	}
}

func (m mainLoopModel) cmdToggleTheme() tea.Cmd {
	ctx := m.ctx
	prefs := m.services.PreferencesService

	return func() tea.Msg {
		theme, err := prefs.ToggleTheme(ctx)
		return themeToggledMsg{theme: theme, err: err}
	}
}

func (m mainLoopModel) cmdToggleAutoSync() tea.Cmd {
	ctx := m.ctx
	prefs := m.services.PreferencesService

	return func() tea.Msg {
		enabled, err := prefs.ToggleAutoSync(ctx)
		return autoSyncToggledMsg{enabled: enabled, err: err}
	}
}
