// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	refresh   key.Binding
	theme     key.Binding
	autoSync  key.Binding
	copy      key.Binding
	reports   key.Binding
	allTasks  key.Binding
	ideaInfo  key.Binding
	syncNow   key.Binding
	note      key.Binding
	status    key.Binding
	delete    key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev page")),
	right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next page")),
	enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	esc:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	logout:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logout")),
	refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	autoSync:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto-sync")),
	copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy title")),
	reports:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "reports")),
	allTasks:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "all tasks")),
	ideaInfo:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "idea details")),
	syncNow:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync reports")),
	note:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add note")),
	status:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "next status")),
	delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	buildInfo: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}

// helpLine renders the short help of bindings separated by " │ ".
func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " │ "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
