// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// credentialsSalt domain-separates the derived key. It is not secret; the
// secret is the configured credentials key.
var credentialsSalt = []byte("research-os/credentials/v1")

// aesGCMSealer is the private implementation of [CredentialSealer].
type aesGCMSealer struct {
	aead cipher.AEAD
}

// argonParams holds Argon2id tuning parameters.
type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// defaultArgonParams are the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits, AES-256)
var defaultArgonParams = argonParams{
	time:    1,
	memory:  64 * 1024,
	threads: 4,
	keyLen:  32,
}

// NewCredentialSealer derives an AES-256 key from secret with Argon2id and
// returns a [CredentialSealer] bound to it. The derivation runs once here;
// Seal and Open are cheap afterwards.
func NewCredentialSealer(secret string) (CredentialSealer, error) {
	return newSealer(secret, defaultArgonParams)
}

func newSealer(secret string, p argonParams) (*aesGCMSealer, error) {
	if secret == "" {
		return nil, ErrEmptyKey
	}

	key := argon2.IDKey([]byte(secret), credentialsSalt, p.time, p.memory, p.threads, p.keyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("error creating cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("error creating gcm: %w", err)
	}

	return &aesGCMSealer{aead: aead}, nil
}

// Seal implements [CredentialSealer]. A random nonce is prepended to the
// ciphertext: blob = nonce ‖ ciphertext.
func (s *aesGCMSealer) Seal(plain string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("error generating nonce: %w", err)
	}

	blob := s.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [CredentialSealer].
func (s *aesGCMSealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedSealedValue, err)
	}

	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: too short", ErrMalformedSealedValue)
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plain, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSealedValueRejected, err)
	}

	return string(plain), nil
}
