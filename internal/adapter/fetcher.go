// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/MKhiriev/go-research-os/internal/utils"
	"github.com/go-resty/resty/v2"
	"github.com/jonboulle/clockwork"
)

// Default retry budget of resource calls.
const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 2 * time.Second
)

// RequestIDHeader carries the correlation id of one logical request. Every
// attempt of the same request reuses it.
const RequestIDHeader = "X-Request-ID"

// Target describes one HTTP request to the API. Path is resolved against the
// client's base URL.
type Target struct {
	Method string
	Path   string
	Query  url.Values
	Header map[string]string
	Body   any
}

func (t Target) method() string {
	if t.Method == "" {
		return http.MethodGet
	}
	return t.Method
}

// RetryPolicy bounds how often and how patiently a request is retried.
// After the failed attempt i (1-indexed) the fetcher waits BaseDelay*i.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy returns 3 attempts with a 2s linear backoff unit.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: DefaultMaxAttempts, BaseDelay: DefaultBaseDelay}
}

func (p RetryPolicy) attempts() int {
	return max(p.MaxAttempts, 1)
}

// Fetcher executes requests with linear backoff. It retries transport errors
// and 503 Service Unavailable responses; every other response, success or
// not, is handed back to the caller on the first try.
type Fetcher struct {
	client *utils.HTTPClient
	clock  clockwork.Clock
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewFetcher builds a Fetcher on top of client. Backoff waits are measured on
// clock so tests can drive them with a fake clock.
func NewFetcher(client *utils.HTTPClient, clock clockwork.Clock, logger *logger.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		clock:  clock,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// FetchWithRetry runs target up to policy.MaxAttempts times.
//
// Outcomes:
//   - a non-503 response: returned immediately with a nil error;
//   - 503 on the last attempt: that response is returned with a nil error;
//   - a transport error on the last attempt: *NetworkExhaustedError;
//   - ctx cancelled while waiting or sending: the wrapped ctx error.
func (f *Fetcher) FetchWithRetry(ctx context.Context, target Target, policy RetryPolicy) (*resty.Response, error) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = f.ids.Generate()
	}

	attempts := policy.attempts()
	for attempt := 1; ; attempt++ {
		resp, err := f.send(ctx, target, requestID)

		switch {
		case err != nil:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("%s %s: %w", target.method(), target.Path, ctxErr)
			}
			if attempt >= attempts {
				f.logger.Err(err).
					Str("func", "Fetcher.FetchWithRetry").
					Str("request_id", requestID).
					Str("path", target.Path).
					Int("attempts", attempt).
					Msg("network error, retries exhausted")
				return nil, &NetworkExhaustedError{Target: target, Attempts: attempt, Err: err}
			}
			f.logger.Warn().
				Err(err).
				Str("func", "Fetcher.FetchWithRetry").
				Str("request_id", requestID).
				Str("path", target.Path).
				Int("attempt", attempt).
				Msg("network error, retrying")
		case resp.StatusCode() == http.StatusServiceUnavailable && attempt < attempts:
			f.logger.Warn().
				Str("func", "Fetcher.FetchWithRetry").
				Str("request_id", requestID).
				Str("path", target.Path).
				Int("attempt", attempt).
				Msg("service unavailable, retrying")
		default:
			return resp, nil
		}

		if err := f.wait(ctx, policy.BaseDelay*time.Duration(attempt)); err != nil {
			return nil, fmt.Errorf("%s %s: %w", target.method(), target.Path, err)
		}
	}
}

func (f *Fetcher) send(ctx context.Context, target Target, requestID string) (*resty.Response, error) {
	req := f.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)

	for name, value := range target.Header {
		req.SetHeader(name, value)
	}
	if len(target.Query) > 0 {
		req.SetQueryParamsFromValues(target.Query)
	}
	if target.Body != nil {
		req.SetBody(target.Body)
	}

	return req.Execute(target.method(), target.Path)
}

func (f *Fetcher) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := f.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}
