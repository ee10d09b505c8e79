// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-research-os/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	ideasPaneWidth = 36
	tasksPaneWidth = 56
)

func (m mainLoopModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.styles, m.buildInfo)
	}

	var body, hotKeys, title string
	switch m.view {
	case viewReports:
		title = "REPORTS"
		body = m.renderReports()
		hotKeys = helpLine(keys.up, keys.down, keys.left, keys.right, keys.delete, keys.refresh, keys.esc, keys.quit)
	case viewTasks:
		title = "ALL TASKS"
		body = m.renderAllTasks()
		hotKeys = helpLine(keys.up, keys.down, keys.enter, keys.status, keys.refresh, keys.esc, keys.quit)
	default:
		title = "DASHBOARD"
		body = m.renderDashboard()
		hotKeys = helpLine(keys.tab, keys.enter, keys.ideaInfo, keys.status, keys.delete, keys.note, keys.syncNow, keys.copy,
			keys.reports, keys.allTasks, keys.refresh, keys.theme, keys.autoSync, keys.buildInfo, keys.logout, keys.quit)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(body)

	if m.pendingDelete != nil {
		b.WriteString("\n\n")
		b.WriteString(confirmModel{message: m.pendingDelete.label}.View(m.styles))
	}
	if m.ideaDetail != nil {
		b.WriteString("\n\n")
		b.WriteString(renderIdeaDetail(m.styles, *m.ideaDetail))
	}
	if m.addingNote {
		b.WriteString("\n\n")
		b.WriteString(m.styles.overlay.Render("New note\n\n" + m.noteInput.View() + "\n\nenter: save │ esc: cancel"))
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.status.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.err.Render("Error: " + m.errMsg))
	}

	return renderPage(m.styles, title, b.String(), hotKeys)
}

func (m mainLoopModel) renderHeader() string {
	user := "-"
	if s := m.services.SessionService.Session(); s.User != nil {
		user = s.User.Email
	}

	autoSync := "off"
	if m.autoSync {
		autoSync = "on"
	}

	header := fmt.Sprintf("Research OS │ %s │ month %s │ theme %s │ auto-sync %s",
		user, valueOr(m.overview.Month, "-"), m.theme, autoSync)
	if m.loading || m.logsLoading || m.allTasksLoading || m.syncing {
		header += "  " + m.spinner.View()
	}
	return header
}

func (m mainLoopModel) renderDashboard() string {
	if m.loading && len(m.overview.Ideas) == 0 {
		return "Loading workspace..."
	}

	var b strings.Builder
	b.WriteString(m.renderCounters())
	b.WriteString("\n\n")

	ideasStyle, tasksStyle := m.styles.active, m.styles.pane
	if m.pane == paneTasks {
		ideasStyle, tasksStyle = m.styles.pane, m.styles.active
	}

	left := ideasStyle.Width(ideasPaneWidth).Render(m.renderIdeas())
	right := tasksStyle.Width(tasksPaneWidth).Render(m.renderTasks())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	if m.overview.Selected != nil {
		b.WriteString("\n")
		b.WriteString(m.renderSnapshot(*m.overview.Selected))
	}

	return b.String()
}

func (m mainLoopModel) renderCounters() string {
	c := m.overview.Counters
	if c == nil {
		return m.styles.muted.Render("Overview unavailable")
	}

	return fmt.Sprintf("Ideas: %d │ in progress: %d │ completed: %d │ delayed tasks: %d │ low activity: %d",
		c.TotalIdeas,
		c.IdeaStatusCounts[string(models.StatusInProgress)],
		c.IdeaStatusCounts[string(models.StatusCompleted)],
		c.DelayedTasks,
		c.LowActivityTasks,
	)
}

func (m mainLoopModel) renderIdeas() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Ideas"))
	b.WriteString("\n")

	if len(m.overview.Ideas) == 0 {
		b.WriteString(m.styles.muted.Render("No ideas"))
		return b.String()
	}

	for i, idea := range m.overview.Ideas {
		marker := " "
		if idea.MainTopicFlag {
			marker = "*"
		}
		line := cursor(m.pane == paneIdeas && i == m.ideaIdx) + marker + " " + fitText(idea.Title, ideasPaneWidth-6)
		if idea.ID == m.selectedIdeaID {
			line = m.styles.selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) renderTasks() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Tasks"))
	b.WriteString("\n")

	tasks := m.selectedTasks()
	if len(tasks) == 0 {
		b.WriteString(m.styles.muted.Render("No tasks"))
		return b.String()
	}

	for i, task := range tasks {
		line := fmt.Sprintf("%s%-11s %s", cursor(m.pane == paneTasks && i == m.taskIdx), task.Status, fitText(task.Title, tasksPaneWidth-18))
		if task.DueMonth != "" {
			line += m.styles.muted.Render(" due " + task.DueMonth)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) renderSnapshot(snap models.IdeaSnapshot) string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(snap.Idea.Title))
	b.WriteString("  ")
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("%s │ %s → %s", snap.Idea.Status, valueOr(snap.Idea.StartMonth, "?"), valueOr(snap.Idea.TargetMonth, "?"))))
	b.WriteString("\n")

	if snap.Progress != nil {
		b.WriteString(fmt.Sprintf("Progress %s (tasks %s, deliverables %s)\n",
			percent(snap.Progress.IdeaProgress),
			percent(snap.Progress.TaskCompletion),
			percent(snap.Progress.DeliverableCompletion)))
	}

	if len(snap.Deliverables) > 0 {
		done := 0
		for _, d := range snap.Deliverables {
			if d.Status == string(models.StatusCompleted) {
				done++
			}
		}
		b.WriteString(fmt.Sprintf("Deliverables %d/%d done\n", done, len(snap.Deliverables)))
	}

	if len(snap.Risks) > 0 {
		b.WriteString("\nRisks\n")
		for _, r := range snap.Risks {
			b.WriteString(fmt.Sprintf("  [%s] %s\n", r.Severity, r.Message))
		}
	}

	if len(snap.NextActions) > 0 {
		b.WriteString("\nNext actions\n")
		for _, a := range snap.NextActions {
			b.WriteString("  - ")
			b.WriteString(a)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nRecent notes\n")
	if len(snap.Logs) == 0 {
		b.WriteString(m.styles.muted.Render("  none"))
		b.WriteString("\n")
	}
	for _, l := range snap.Logs {
		b.WriteString(fmt.Sprintf("  %s %-7s %s\n", l.CreatedAt.Format("2006-01-02"), l.Source, fitText(l.Title, 60)))
		if l.AISummary != nil {
			b.WriteString(m.styles.muted.Render("    " + fitText(valueOrDash(l.AISummary), 80)))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
