// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of access token claims the client inspects.
// The client never holds the signing key, so the values are read without
// signature verification and are only used for local decisions.
type TokenClaims struct {
	// Subject is the user identifier (sub).
	Subject string
	// ExpiresAt is the expiry instant (exp). Zero when the claim is absent.
	ExpiresAt time.Time
}

// Expired reports whether the token carries an exp claim that lies at or
// before now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ParseTokenClaims decodes the claims of tokenString without verifying its
// signature.
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("error parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("error reading subject: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("error reading expiration: %w", err)
	}

	result := TokenClaims{Subject: sub}
	if exp != nil {
		result.ExpiresAt = exp.Time
	}
	return result, nil
}

// BearerHeader formats token as an Authorization header value.
func BearerHeader(token string) string {
	return "Bearer " + token
}
