// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is the body returned by POST /auth/login.
type LoginResponse struct {
	// AccessToken is the opaque bearer token (a JWT on the reference API).
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer" on the reference API.
	TokenType string `json:"token_type"`
}
