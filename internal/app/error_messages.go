// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the research-os
// client. Keeping them in one place keeps the wording consistent between
// screens.
package app

const (
	// MsgInvalidCredentials is shown on the login screen for any failed
	// login, whether the API rejected the credentials or could not be reached.
	MsgInvalidCredentials = "Invalid credentials or backend unreachable."

	// MsgCredentialsRequired is shown when the login form is submitted with
	// an empty e-mail or password.
	MsgCredentialsRequired = "E-mail and password are required."

	// MsgLoading is shown while the session is restored at startup.
	MsgLoading = "Loading..."

	// MsgSessionExpired is shown after the API rejected the session token.
	MsgSessionExpired = "Session expired, please sign in again."

	// MsgBackendUnreachable replaces transport errors in status lines.
	MsgBackendUnreachable = "Backend unreachable, retries exhausted."

	// MsgBackendDown is shown on the login form when the health check fails.
	MsgBackendDown = "Backend is unreachable."

	// MsgBackendUnavailable replaces 503 errors in status lines.
	MsgBackendUnavailable = "Backend temporarily unavailable."

	// MsgNoIdeaSelected is shown when an idea-scoped action has no idea to act on.
	MsgNoIdeaSelected = "Select an idea first."

	// MsgNothingToCopy is shown when the copy key is pressed without a selection.
	MsgNothingToCopy = "Nothing to copy."

	// MsgCopied is shown after the idea title was put on the clipboard.
	MsgCopied = "Copied to clipboard."
)
