// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
)

func (m mainLoopModel) renderReports() string {
	var b strings.Builder

	page := m.logsOffset/reportsPageSize + 1
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("Page %d │ %d per page", page, reportsPageSize)))
	b.WriteString("\n\n")

	if m.logsLoading && len(m.logs) == 0 {
		b.WriteString("Loading...")
		return b.String()
	}
	if len(m.logs) == 0 {
		b.WriteString(m.styles.muted.Render("No reports"))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  %-10s │ %-7s │ %s\n", "Date", "Source", "Title"))
	b.WriteString("  " + strings.Repeat("─", 10) + "─┼─" + strings.Repeat("─", 7) + "─┼─" + strings.Repeat("─", 40) + "\n")

	for i, l := range m.logs {
		line := fmt.Sprintf("%s%-10s │ %-7s │ %s", cursor(i == m.logIdx), l.CreatedAt.Format("2006-01-02"), fitText(l.Source, 7), fitText(l.Title, 60))
		if i == m.logIdx {
			line = m.styles.selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if sel := m.logs[m.logIdx]; sel.BodyMD != "" || sel.AISummary != nil {
		b.WriteString("\n")
		if sel.AISummary != nil {
			b.WriteString(m.styles.muted.Render("Summary: " + valueOrDash(sel.AISummary)))
			b.WriteString("\n")
		}
		if sel.BodyMD != "" {
			b.WriteString(fitText(sel.BodyMD, 400))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
