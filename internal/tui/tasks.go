// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-research-os/models"
)

func (m mainLoopModel) renderAllTasks() string {
	if m.allTasksLoading && len(m.allTasks) == 0 {
		return "Loading..."
	}
	if len(m.allTasks) == 0 {
		return m.styles.muted.Render("No tasks")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-11s │ %-20s │ %-7s │ %s\n", "Status", "Idea", "Due", "Title"))
	b.WriteString("  " + strings.Repeat("─", 11) + "─┼─" + strings.Repeat("─", 20) + "─┼─" + strings.Repeat("─", 7) + "─┼─" + strings.Repeat("─", 30) + "\n")

	for i, task := range m.allTasks {
		line := fmt.Sprintf("%s%-11s │ %-20s │ %-7s │ %s",
			cursor(i == m.allTaskIdx),
			task.Status,
			fitText(task.IdeaTitle, 20),
			valueOr(task.DueMonth, "-"),
			fitText(task.Title, 50))
		if i == m.allTaskIdx {
			line = m.styles.selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderIdeaDetail(st styles, idea models.Idea) string {
	var b strings.Builder

	b.WriteString(st.title.Render(idea.Title))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Status:   %s\n", idea.Status))
	b.WriteString(fmt.Sprintf("Months:   %s → %s\n", valueOr(idea.StartMonth, "?"), valueOr(idea.TargetMonth, "?")))
	p := idea.PriorityInputs
	b.WriteString(fmt.Sprintf("Priority: impact %d │ effort %d │ risk %d │ urgency %d\n", p.Impact, p.Effort, p.Risk, p.Urgency))
	if !idea.UpdatedAt.IsZero() {
		b.WriteString(fmt.Sprintf("Updated:  %s\n", idea.UpdatedAt.Format("2006-01-02 15:04")))
	}
	if idea.Description != "" {
		b.WriteString("\n")
		b.WriteString(fitText(idea.Description, 400))
		b.WriteString("\n")
	}
	b.WriteString("\nesc: close")

	return st.overlay.Render(b.String())
}
