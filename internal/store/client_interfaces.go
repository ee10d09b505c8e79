// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalPreferencesRepository is a key/value store for client preferences
// (access token, stored credentials, theme, auto-sync toggle).
type LocalPreferencesRepository interface {
	// Get returns the value stored under key or ErrPreferenceNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
