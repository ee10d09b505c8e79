// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [APIAdapter] implementations. HTTP status codes
// are mapped onto them by mapHTTPError so callers can branch with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrEmptyToken is returned by Login when the API answered 2xx without an
	// access token.
	ErrEmptyToken = errors.New("empty access token in login response")

	// ErrNetworkExhausted is matched by every [NetworkExhaustedError].
	ErrNetworkExhausted = errors.New("network request failed after all retries")
)

// NetworkExhaustedError is returned by [Fetcher.FetchWithRetry] when the final
// attempt failed at the transport level (no HTTP response at all).
type NetworkExhaustedError struct {
	// Target is the request that could not be delivered.
	Target Target
	// Attempts is the number of attempts that were made.
	Attempts int
	// Err is the transport error of the last attempt.
	Err error
}

func (e *NetworkExhaustedError) Error() string {
	return fmt.Sprintf("%s %s: %s (%d attempts): %v",
		e.Target.method(), e.Target.Path, ErrNetworkExhausted, e.Attempts, e.Err)
}

func (e *NetworkExhaustedError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrNetworkExhausted) hold for any exhausted request.
func (e *NetworkExhaustedError) Is(target error) bool {
	return target == ErrNetworkExhausted
}
