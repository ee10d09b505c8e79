// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto protects the secrets the client keeps on disk.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_sealer_mock.go -package=mock

// CredentialSealer encrypts short secrets (the auto-login password) before
// they are written to the local preferences store.
//
// Схема работы:
//
//	Key    = Argon2id(APP_CREDENTIALS_KEY, appSalt)   (once, at construction)
//	Sealed = base64(nonce ‖ AES-GCM(Key, plain))      (Seal)
//	Plain  = AES-GCM-Open(Key, nonce, ciphertext)     (Open)
type CredentialSealer interface {
	// Seal encrypts plain and returns a base64 string safe to store as text.
	// Every call uses a fresh random nonce, so sealing the same value twice
	// yields different outputs.
	Seal(plain string) (string, error)

	// Open reverses Seal. It returns ErrMalformedSealedValue if the input is
	// not a sealed value and ErrSealedValueRejected if authentication fails
	// (wrong key or tampered ciphertext).
	Open(sealed string) (string, error)
}
