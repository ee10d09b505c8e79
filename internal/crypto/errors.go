// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrEmptyKey is returned when the sealer is built without a secret.
	ErrEmptyKey = errors.New("credentials key is empty")
	// ErrMalformedSealedValue means the input is not base64 or is shorter
	// than a nonce.
	ErrMalformedSealedValue = errors.New("malformed sealed value")
	// ErrSealedValueRejected means GCM authentication failed.
	ErrSealedValueRejected = errors.New("sealed value rejected")
)
