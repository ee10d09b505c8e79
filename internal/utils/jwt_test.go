// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestParseTokenClaims_RoundTrip(t *testing.T) {
	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}).SignedString([]byte("secret-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := ParseTokenClaims(token)
	if err != nil {
		t.Fatalf("expected no error parsing claims, got: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("expected subject user-1, got %s", claims.Subject)
	}
	if claims.ExpiresAt.IsZero() {
		t.Fatal("expected exp claim to be set")
	}
	if claims.Expired(now) {
		t.Error("fresh token must not be expired")
	}
	if !claims.Expired(now.Add(2 * time.Hour)) {
		t.Error("token must be expired two hours later")
	}
}

func TestParseTokenClaims_NoExpiry(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u"}).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := ParseTokenClaims(token)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !claims.ExpiresAt.IsZero() {
		t.Errorf("expected zero expiry, got %v", claims.ExpiresAt)
	}
	if claims.Expired(time.Now().Add(100 * 365 * 24 * time.Hour)) {
		t.Error("token without exp must never be expired")
	}
}

func TestParseTokenClaims_Malformed(t *testing.T) {
	if _, err := ParseTokenClaims("not-a-jwt"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestTokenClaims_ExpiredBoundary(t *testing.T) {
	now := time.Now()
	c := TokenClaims{ExpiresAt: now}
	if !c.Expired(now) {
		t.Error("token expiring exactly now must count as expired")
	}
}

func TestBearerHeader(t *testing.T) {
	if got := BearerHeader("t"); got != "Bearer t" {
		t.Errorf("expected 'Bearer t', got %q", got)
	}
}
