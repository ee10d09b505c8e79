// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState is the coarse lifecycle state of the client session.
type SessionState int

const (
	// SessionBooting is the state before the startup restore/auto-login
	// sequence has finished.
	SessionBooting SessionState = iota
	// SessionUnauthenticated means no usable token/profile pair is held.
	SessionUnauthenticated
	// SessionAuthenticated means both a token and a fetched profile are held.
	SessionAuthenticated
)

// String implements [fmt.Stringer].
func (s SessionState) String() string {
	switch s {
	case SessionBooting:
		return "booting"
	case SessionUnauthenticated:
		return "unauthenticated"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is a read-only snapshot of the authentication state.
type Session struct {
	// Token is the bearer token, empty when signed out.
	Token string

	// User is the profile fetched with Token, nil when signed out.
	User *UserProfile

	// IsLoading is true until the boot sequence completes.
	IsLoading bool
}

// IsAuthenticated reports whether the snapshot holds both a non-empty token
// and a resolved profile. A token without a profile is not a session.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// State derives the lifecycle state from the snapshot.
func (s Session) State() SessionState {
	switch {
	case s.IsLoading:
		return SessionBooting
	case s.IsAuthenticated():
		return SessionAuthenticated
	default:
		return SessionUnauthenticated
	}
}
