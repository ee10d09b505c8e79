// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View(st styles) string {
	content := "Delete \"" + m.message + "\"?\n\n"
	content += "y: yes    n: no"
	return st.overlay.Render(content)
}
