// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserProfile is the identity of the signed-in user as reported by GET /me.
// The client never builds a profile on its own: a profile only exists after
// the API has accepted a bearer token.
type UserProfile struct {
	// ID is the API-side user identifier.
	ID string `json:"id"`

	// Email is the login e-mail of the user.
	Email string `json:"email"`

	// Role is the workspace membership role (e.g. "owner", "viewer").
	Role string `json:"role"`

	// WorkspaceID identifies the workspace all resource calls are scoped to.
	WorkspaceID string `json:"workspace_id"`
}

// Credentials is the e-mail/password pair sent to POST /auth/login.
// Values are transient: the client keeps them only for the duration of a
// login call, or sealed in the preferences store for auto-login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
