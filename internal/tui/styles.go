// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-research-os/models"
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	danger  lipgloss.Color
	success lipgloss.Color
	border  lipgloss.Color
}

var palettes = map[models.Theme]palette{
	models.ThemeLight: {
		text:    lipgloss.Color("235"),
		muted:   lipgloss.Color("244"),
		accent:  lipgloss.Color("25"),
		danger:  lipgloss.Color("160"),
		success: lipgloss.Color("28"),
		border:  lipgloss.Color("250"),
	},
	models.ThemeDark: {
		text:    lipgloss.Color("252"),
		muted:   lipgloss.Color("243"),
		accent:  lipgloss.Color("81"),
		danger:  lipgloss.Color("203"),
		success: lipgloss.Color("114"),
		border:  lipgloss.Color("238"),
	},
}

type styles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	help     lipgloss.Style
	err      lipgloss.Style
	status   lipgloss.Style
	selected lipgloss.Style
	muted    lipgloss.Style
	pane     lipgloss.Style
	active   lipgloss.Style
	overlay  lipgloss.Style
}

func newStyles(theme models.Theme) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[models.ThemeLight]
	}

	pane := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1)

	return styles{
		app:      lipgloss.NewStyle().Padding(1, 2).Foreground(p.text),
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		help:     lipgloss.NewStyle().Faint(true).Foreground(p.muted),
		err:      lipgloss.NewStyle().Bold(true).Foreground(p.danger),
		status:   lipgloss.NewStyle().Foreground(p.success),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		muted:    lipgloss.NewStyle().Foreground(p.muted),
		pane:     pane,
		active:   pane.BorderForeground(p.accent),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(1, 2),
	}
}
