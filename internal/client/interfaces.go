// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the part of the terminal interface the app drives.
type UI interface {
	// LoginFlow returns once a session is established, restoring it first
	// when boot is set. Returns tui.ErrUserQuit when the user quits.
	LoginFlow(ctx context.Context, boot bool) error

	// MainLoop blocks until the user quits or the session ends.
	MainLoop(ctx context.Context) (logout bool, err error)
}

var _ Client = (*App)(nil)
