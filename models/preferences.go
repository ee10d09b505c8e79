// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Keys of the client preferences store. They mirror the keys the web
// dashboard keeps in browser local storage.
const (
	PrefAccessToken     = "access_token"
	PrefOwnerEmail      = "owner_email"
	PrefOwnerPassword   = "owner_password"
	PrefTheme           = "theme"
	PrefAutoSyncReports = "auto_sync_reports"
)

// Theme is the colour scheme of the terminal UI.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a stored preference value to a [Theme], falling back to
// [ThemeLight] for unknown values.
func ParseTheme(v string) Theme {
	if Theme(v) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
