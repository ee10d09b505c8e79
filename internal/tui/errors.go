// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-research-os/internal/adapter"
	"github.com/MKhiriev/go-research-os/internal/app"
	"github.com/MKhiriev/go-research-os/internal/service"
)

// ErrUserQuit is returned by the flows when the user closed the program.
var ErrUserQuit = errors.New("user quit")

func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrNetworkExhausted):
		return app.MsgBackendUnreachable
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return app.MsgBackendUnavailable
	case errors.Is(err, service.ErrNoIdeaSelected):
		return app.MsgNoIdeaSelected
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgBackendUnreachable
	}

	return err.Error()
}

// backendDownMessage is the login warning for a failed health check. Only a
// 503 gets its own wording.
func backendDownMessage(err error) string {
	if msg := humanizeError(err); msg == app.MsgBackendUnavailable {
		return msg
	}
	return app.MsgBackendDown
}
