// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-research-os/internal/adapter"
	"github.com/MKhiriev/go-research-os/internal/crypto"
	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/MKhiriev/go-research-os/internal/store"
	"github.com/MKhiriev/go-research-os/internal/utils"
	"github.com/MKhiriev/go-research-os/models"
	"github.com/jonboulle/clockwork"
)

type clientSessionService struct {
	adapter  adapter.APIAdapter
	prefs    store.LocalPreferencesRepository
	sealer   crypto.CredentialSealer
	defaults models.Credentials
	clock    clockwork.Clock
	logger   *logger.Logger

	// flight serializes Boot, Login and Logout.
	flight sync.Mutex

	mu      sync.RWMutex
	session models.Session
}

// NewClientSessionService builds the session manager. defaults are the
// auto-login credentials used when none were stored yet; clock is used to
// skip persisted tokens whose exp claim has passed.
func NewClientSessionService(
	api adapter.APIAdapter,
	prefs store.LocalPreferencesRepository,
	sealer crypto.CredentialSealer,
	defaults models.Credentials,
	clock clockwork.Clock,
	logger *logger.Logger,
) ClientSessionService {
	return &clientSessionService{
		adapter:  api,
		prefs:    prefs,
		sealer:   sealer,
		defaults: defaults,
		clock:    clock,
		logger:   logger,
		session:  models.Session{IsLoading: true},
	}
}

// Boot implements [ClientSessionService].
func (s *clientSessionService) Boot(ctx context.Context) {
	s.flight.Lock()
	defer s.flight.Unlock()
	defer s.finishLoading()

	log := s.logger.With().Str("func", "clientSessionService.Boot").Logger()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Msg("boot aborted")
		}
	}()

	// 1. persisted token
	if token := s.usableStoredToken(ctx); token != "" {
		profile, err := s.adapter.Me(ctx, token)
		if err == nil {
			s.adopt(token, profile)
			log.Info().Str("user_id", profile.ID).Msg("session restored from stored token")
			return
		}
		log.Warn().Err(err).Msg("stored token rejected, falling back to auto-login")
	}

	// 2. exactly one auto-login with stored or default credentials, even
	// when a half is blank; the API decides whether they are acceptable
	creds := s.StoredCredentials(ctx)
	token, profile, err := s.authenticate(ctx, creds)
	if err != nil {
		log.Warn().Err(err).Str("email", creds.Email).Msg("auto-login failed")
		return
	}

	s.adopt(token, profile)
	s.persist(ctx, models.PrefAccessToken, token)
	log.Info().Str("user_id", profile.ID).Msg("session established by auto-login")
}

// Login implements [ClientSessionService].
func (s *clientSessionService) Login(ctx context.Context, email, password string) bool {
	s.flight.Lock()
	defer s.flight.Unlock()

	log := s.logger.With().Str("func", "clientSessionService.Login").Str("email", email).Logger()

	token, profile, err := s.authenticate(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		log.Warn().Err(err).Msg("login failed")
		return false
	}

	s.persist(ctx, models.PrefAccessToken, token)
	s.persist(ctx, models.PrefOwnerEmail, email)
	if sealed, sealErr := s.sealer.Seal(password); sealErr != nil {
		log.Err(sealErr).Msg("failed to seal password, it will not be remembered")
	} else {
		s.persist(ctx, models.PrefOwnerPassword, sealed)
	}

	s.adopt(token, profile)
	log.Info().Str("user_id", profile.ID).Msg("logged in")
	return true
}

// Logout implements [ClientSessionService].
func (s *clientSessionService) Logout(ctx context.Context) {
	s.flight.Lock()
	defer s.flight.Unlock()

	s.mu.Lock()
	s.session.Token = ""
	s.session.User = nil
	s.mu.Unlock()

	if err := s.prefs.Delete(ctx, models.PrefAccessToken); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Logout").Msg("failed to remove stored token")
	}
}

// Headers implements [ClientSessionService].
func (s *clientSessionService) Headers() map[string]string {
	s.mu.RLock()
	token := s.session.Token
	s.mu.RUnlock()

	return map[string]string{
		"Content-Type":  "application/json",
		"Authorization": utils.BearerHeader(token),
	}
}

// Session implements [ClientSessionService].
func (s *clientSessionService) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.session
	if snapshot.User != nil {
		user := *snapshot.User
		snapshot.User = &user
	}
	return snapshot
}

// State implements [ClientSessionService].
func (s *clientSessionService) State() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.State()
}

// StoredCredentials implements [ClientSessionService]. Each half falls back
// to its default independently; a stored password that cannot be unsealed is
// treated as absent.
func (s *clientSessionService) StoredCredentials(ctx context.Context) models.Credentials {
	creds := s.defaults

	if email := s.lookup(ctx, models.PrefOwnerEmail); email != "" {
		creds.Email = email
	}

	if sealed := s.lookup(ctx, models.PrefOwnerPassword); sealed != "" {
		password, err := s.sealer.Open(sealed)
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "clientSessionService.StoredCredentials").Msg("stored password unreadable, using default")
		} else {
			creds.Password = password
		}
	}

	return creds
}

// Health implements [ClientSessionService].
func (s *clientSessionService) Health(ctx context.Context) error {
	if err := s.adapter.Health(ctx); err != nil {
		return fmt.Errorf("backend health: %w", err)
	}
	return nil
}

// authenticate performs exactly one login call followed by one profile call.
func (s *clientSessionService) authenticate(ctx context.Context, creds models.Credentials) (string, models.UserProfile, error) {
	loginResponse, err := s.adapter.Login(ctx, creds)
	if err != nil {
		return "", models.UserProfile{}, err
	}

	profile, err := s.adapter.Me(ctx, loginResponse.AccessToken)
	if err != nil {
		return "", models.UserProfile{}, err
	}

	return loginResponse.AccessToken, profile, nil
}

// usableStoredToken returns the persisted token unless its exp claim is
// already in the past. Tokens whose claims cannot be read are returned as is
// and left for the API to judge.
func (s *clientSessionService) usableStoredToken(ctx context.Context) string {
	token := s.lookup(ctx, models.PrefAccessToken)
	if token == "" {
		return ""
	}

	claims, err := utils.ParseTokenClaims(token)
	if err == nil && claims.Expired(s.clock.Now()) {
		s.logger.Info().
			Str("func", "clientSessionService.usableStoredToken").
			Time("expired_at", claims.ExpiresAt).
			Msg("stored token expired, skipping")
		return ""
	}

	return token
}

func (s *clientSessionService) lookup(ctx context.Context, key string) string {
	value, err := s.prefs.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrPreferenceNotFound) {
			s.logger.Err(err).Str("func", "clientSessionService.lookup").Str("key", key).Msg("failed to read preference")
		}
		return ""
	}
	return value
}

func (s *clientSessionService) persist(ctx context.Context, key, value string) {
	if err := s.prefs.Set(ctx, key, value); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.persist").Str("key", key).Msg("failed to store preference")
	}
}

func (s *clientSessionService) adopt(token string, profile models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = models.Session{Token: token, User: &profile, IsLoading: false}
}

func (s *clientSessionService) finishLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.IsLoading = false
}
