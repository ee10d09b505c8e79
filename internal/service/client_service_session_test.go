// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-research-os/internal/adapter"
	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/MKhiriev/go-research-os/internal/mock"
	"github.com/MKhiriev/go-research-os/internal/store"
	"github.com/MKhiriev/go-research-os/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testDefaults = models.Credentials{Email: "owner@example.com", Password: "default-pass"}
	testProfile  = models.UserProfile{ID: "u-1", Email: "owner@example.com", Role: "owner", WorkspaceID: "ws-1"}
)

// prefsMap backs a MockLocalPreferencesRepository with a map, so tests can
// assert on the resulting state instead of on individual calls.
type prefsMap struct {
	mu     sync.Mutex
	values map[string]string
}

func stubPrefs(m *mock.MockLocalPreferencesRepository, initial map[string]string) *prefsMap {
	p := &prefsMap{values: map[string]string{}}
	for k, v := range initial {
		p.values[k] = v
	}

	m.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) (string, error) {
		p.mu.Lock()
		defer p.mu.Unlock()
		v, ok := p.values[key]
		if !ok {
			return "", store.ErrPreferenceNotFound
		}
		return v, nil
	}).AnyTimes()
	m.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key, value string) error {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.values[key] = value
		return nil
	}).AnyTimes()
	m.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) error {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.values, key)
		return nil
	}).AnyTimes()

	return p
}

func (p *prefsMap) get(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.values[key]
	return v, ok
}

type sessionFixture struct {
	svc    *clientSessionService
	api    *mock.MockAPIAdapter
	sealer *mock.MockCredentialSealer
	prefs  *prefsMap
	clock  *clockwork.FakeClock
}

// newTestSessionSvc builds a session service whose sealer prefixes values
// with "sealed:" so stored passwords are easy to read back in assertions.
func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller, stored map[string]string, defaults models.Credentials) sessionFixture {
	t.Helper()

	api := mock.NewMockAPIAdapter(ctrl)
	prefsMock := mock.NewMockLocalPreferencesRepository(ctrl)
	sealer := mock.NewMockCredentialSealer(ctrl)
	clock := clockwork.NewFakeClockAt(time.Now())

	sealer.EXPECT().Seal(gomock.Any()).DoAndReturn(func(plain string) (string, error) {
		return "sealed:" + plain, nil
	}).AnyTimes()
	sealer.EXPECT().Open(gomock.Any()).DoAndReturn(func(sealed string) (string, error) {
		if len(sealed) < 7 || sealed[:7] != "sealed:" {
			return "", errors.New("bad seal")
		}
		return sealed[7:], nil
	}).AnyTimes()

	prefs := stubPrefs(prefsMock, stored)
	svc := NewClientSessionService(api, prefsMock, sealer, defaults, clock, logger.Nop()).(*clientSessionService)

	return sessionFixture{svc: svc, api: api, sealer: sealer, prefs: prefs, clock: clock}
}

// newTestToken signs an HS256 token shaped like the ones the API issues.
func newTestToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

// ── Boot ─────────────────────────────────────────────────────────────────────

func TestClientSessionService_New_IsLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSessionSvc(t, ctrl, nil, testDefaults)

	s := f.svc.Session()
	assert.True(t, s.IsLoading)
	assert.Equal(t, models.SessionBooting, f.svc.State())
}

func TestClientSessionService_Boot_StoredTokenAccepted_NoLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	token := newTestToken(t, time.Hour)
	f := newTestSessionSvc(t, ctrl, map[string]string{models.PrefAccessToken: token}, testDefaults)
	ctx := context.Background()

	f.api.EXPECT().Me(ctx, token).Return(testProfile, nil).Times(1)
	f.api.EXPECT().Login(gomock.Any(), gomock.Any()).Times(0)

	f.svc.Boot(ctx)

	s := f.svc.Session()
	assert.False(t, s.IsLoading)
	assert.Equal(t, token, s.Token)
	require.NotNil(t, s.User)
	assert.Equal(t, testProfile, *s.User)
	assert.Equal(t, models.SessionAuthenticated, f.svc.State())
}

func TestClientSessionService_Boot_StoredTokenRejected_AutoLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	stale := newTestToken(t, time.Hour)
	f := newTestSessionSvc(t, ctrl, map[string]string{
		models.PrefAccessToken:   stale,
		models.PrefOwnerEmail:    "me@example.com",
		models.PrefOwnerPassword: "sealed:stored-pass",
	}, testDefaults)
	ctx := context.Background()

	gomock.InOrder(
		f.api.EXPECT().Me(ctx, stale).Return(models.UserProfile{}, adapter.ErrUnauthorized),
		f.api.EXPECT().Login(ctx, models.Credentials{Email: "me@example.com", Password: "stored-pass"}).
			Return(models.LoginResponse{AccessToken: "fresh", TokenType: "bearer"}, nil),
		f.api.EXPECT().Me(ctx, "fresh").Return(testProfile, nil),
	)

	f.svc.Boot(ctx)

	assert.Equal(t, models.SessionAuthenticated, f.svc.State())
	assert.Equal(t, "fresh", f.svc.Session().Token)
	stored, ok := f.prefs.get(models.PrefAccessToken)
	require.True(t, ok)
	assert.Equal(t, "fresh", stored)
}

func TestClientSessionService_Boot_ExpiredTokenSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	expired := newTestToken(t, time.Minute)
	f := newTestSessionSvc(t, ctrl, map[string]string{models.PrefAccessToken: expired}, testDefaults)
	ctx := context.Background()
	f.clock.Advance(time.Hour)

	gomock.InOrder(
		f.api.EXPECT().Login(ctx, testDefaults).Return(models.LoginResponse{AccessToken: "fresh"}, nil),
		f.api.EXPECT().Me(ctx, "fresh").Return(testProfile, nil),
	)

	f.svc.Boot(ctx)

	assert.Equal(t, "fresh", f.svc.Session().Token)
}

func TestClientSessionService_Boot_OpaqueTokenIsTried(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSessionSvc(t, ctrl, map[string]string{models.PrefAccessToken: "opaque-token"}, models.Credentials{})
	ctx := context.Background()

	f.api.EXPECT().Me(ctx, "opaque-token").Return(testProfile, nil)

	f.svc.Boot(ctx)

	assert.Equal(t, models.SessionAuthenticated, f.svc.State())
}

func TestClientSessionService_Boot_BlankCredentials_StillOneLoginAttempt(t *testing.T) {
	tests := []struct {
		name   string
		stored map[string]string
		want   models.Credentials
	}{
		{name: "fresh install without defaults", want: models.Credentials{}},
		{
			name:   "stored email without password",
			stored: map[string]string{models.PrefOwnerEmail: "me@example.com"},
			want:   models.Credentials{Email: "me@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTestSessionSvc(t, ctrl, tt.stored, models.Credentials{})
			ctx := context.Background()

			f.api.EXPECT().Login(ctx, tt.want).Return(models.LoginResponse{}, adapter.ErrUnauthorized).Times(1)

			f.svc.Boot(ctx)

			s := f.svc.Session()
			assert.False(t, s.IsLoading)
			assert.Empty(t, s.Token)
			assert.Nil(t, s.User)
			assert.Equal(t, models.SessionUnauthenticated, f.svc.State())
		})
	}
}

func TestClientSessionService_Boot_AutoLoginFails_SingleAttempt(t *testing.T) {
	tests := []struct {
		name     string
		loginErr error
		meErr    error
	}{
		{name: "login rejected", loginErr: adapter.ErrUnauthorized},
		{name: "backend unreachable", loginErr: &adapter.NetworkExhaustedError{Target: adapter.Target{Path: "/auth/login"}, Attempts: 1, Err: errors.New("refused")}},
		{name: "profile fetch fails", meErr: adapter.ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTestSessionSvc(t, ctrl, nil, testDefaults)
			ctx := context.Background()

			if tt.loginErr != nil {
				f.api.EXPECT().Login(ctx, testDefaults).Return(models.LoginResponse{}, tt.loginErr).Times(1)
			} else {
				f.api.EXPECT().Login(ctx, testDefaults).Return(models.LoginResponse{AccessToken: "t"}, nil).Times(1)
				f.api.EXPECT().Me(ctx, "t").Return(models.UserProfile{}, tt.meErr).Times(1)
			}

			f.svc.Boot(ctx)

			s := f.svc.Session()
			assert.False(t, s.IsLoading)
			assert.False(t, s.IsAuthenticated())
			_, ok := f.prefs.get(models.PrefAccessToken)
			assert.False(t, ok)
		})
	}
}

func TestClientSessionService_Boot_CredentialHalvesFallBackIndependently(t *testing.T) {
	tests := []struct {
		name   string
		stored map[string]string
		want   models.Credentials
	}{
		{
			name:   "only email stored",
			stored: map[string]string{models.PrefOwnerEmail: "me@example.com"},
			want:   models.Credentials{Email: "me@example.com", Password: testDefaults.Password},
		},
		{
			name:   "only password stored",
			stored: map[string]string{models.PrefOwnerPassword: "sealed:mine"},
			want:   models.Credentials{Email: testDefaults.Email, Password: "mine"},
		},
		{
			name: "unreadable password",
			stored: map[string]string{
				models.PrefOwnerEmail:    "me@example.com",
				models.PrefOwnerPassword: "garbage",
			},
			want: models.Credentials{Email: "me@example.com", Password: testDefaults.Password},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTestSessionSvc(t, ctrl, tt.stored, testDefaults)
			ctx := context.Background()

			f.api.EXPECT().Login(ctx, tt.want).Return(models.LoginResponse{}, adapter.ErrUnauthorized)

			f.svc.Boot(ctx)

			assert.Equal(t, tt.want, f.svc.StoredCredentials(ctx))
		})
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientSessionService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSessionSvc(t, ctrl, nil, models.Credentials{})
	ctx := context.Background()

	gomock.InOrder(
		f.api.EXPECT().Login(ctx, models.Credentials{Email: "me@example.com", Password: "pw"}).
			Return(models.LoginResponse{AccessToken: "tok"}, nil),
		f.api.EXPECT().Me(ctx, "tok").Return(testProfile, nil),
	)

	require.True(t, f.svc.Login(ctx, "me@example.com", "pw"))

	assert.Equal(t, models.SessionAuthenticated, f.svc.State())
	token, _ := f.prefs.get(models.PrefAccessToken)
	email, _ := f.prefs.get(models.PrefOwnerEmail)
	password, _ := f.prefs.get(models.PrefOwnerPassword)
	assert.Equal(t, "tok", token)
	assert.Equal(t, "me@example.com", email)
	assert.Equal(t, "sealed:pw", password)
}

func TestClientSessionService_Login_Failure_KeepsPreviousSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSessionSvc(t, ctrl, nil, models.Credentials{})
	ctx := context.Background()

	f.api.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{AccessToken: "first"}, nil)
	f.api.EXPECT().Me(ctx, "first").Return(testProfile, nil)
	require.True(t, f.svc.Login(ctx, "me@example.com", "pw"))

	f.api.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{}, adapter.ErrUnauthorized)
	assert.False(t, f.svc.Login(ctx, "me@example.com", "wrong"))

	assert.Equal(t, "first", f.svc.Session().Token)
	password, _ := f.prefs.get(models.PrefOwnerPassword)
	assert.Equal(t, "sealed:pw", password)
}

func TestClientSessionService_Login_ProfileFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSessionSvc(t, ctrl, nil, models.Credentials{})
	ctx := context.Background()
	f.svc.finishLoading()

	f.api.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{AccessToken: "tok"}, nil)
	f.api.EXPECT().Me(ctx, "tok").Return(models.UserProfile{}, adapter.ErrServiceUnavailable)

	assert.False(t, f.svc.Login(ctx, "me@example.com", "pw"))
	assert.Equal(t, models.SessionUnauthenticated, f.svc.State())
	_, ok := f.prefs.get(models.PrefAccessToken)
	assert.False(t, ok)
}

func TestClientSessionService_Login_SealFailure_SkipsPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIAdapter(ctrl)
	prefsMock := mock.NewMockLocalPreferencesRepository(ctrl)
	sealer := mock.NewMockCredentialSealer(ctrl)
	prefs := stubPrefs(prefsMock, nil)
	ctx := context.Background()

	svc := NewClientSessionService(api, prefsMock, sealer, models.Credentials{}, clockwork.NewFakeClockAt(time.Now()), logger.Nop())

	api.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{AccessToken: "tok"}, nil)
	api.EXPECT().Me(ctx, "tok").Return(testProfile, nil)
	sealer.EXPECT().Seal("pw").Return("", errors.New("boom"))

	assert.True(t, svc.Login(ctx, "me@example.com", "pw"))
	_, ok := prefs.get(models.PrefOwnerPassword)
	assert.False(t, ok)
}

// ── Logout / Headers ─────────────────────────────────────────────────────────

func TestClientSessionService_Logout_KeepsCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSessionSvc(t, ctrl, nil, models.Credentials{})
	ctx := context.Background()

	f.api.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{AccessToken: "tok"}, nil)
	f.api.EXPECT().Me(ctx, "tok").Return(testProfile, nil)
	require.True(t, f.svc.Login(ctx, "me@example.com", "pw"))

	f.svc.Logout(ctx)

	s := f.svc.Session()
	assert.Empty(t, s.Token)
	assert.Nil(t, s.User)
	_, hasToken := f.prefs.get(models.PrefAccessToken)
	assert.False(t, hasToken)
	assert.Equal(t, models.Credentials{Email: "me@example.com", Password: "pw"}, f.svc.StoredCredentials(ctx))
}

func TestClientSessionService_Headers(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSessionSvc(t, ctrl, nil, models.Credentials{})

	assert.Equal(t, map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer ",
	}, f.svc.Headers())

	f.svc.adopt("tok", testProfile)
	assert.Equal(t, "Bearer tok", f.svc.Headers()["Authorization"])
}

func TestClientSessionService_Session_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSessionSvc(t, ctrl, nil, models.Credentials{})
	f.svc.adopt("tok", testProfile)

	s := f.svc.Session()
	s.User.Email = "changed@example.com"

	assert.Equal(t, testProfile.Email, f.svc.Session().User.Email)
}

func TestClientSessionService_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSessionSvc(t, ctrl, nil, models.Credentials{})
	ctx := context.Background()

	f.api.EXPECT().Health(ctx).Return(nil)
	assert.NoError(t, f.svc.Health(ctx))

	f.api.EXPECT().Health(ctx).Return(adapter.ErrServiceUnavailable)
	assert.ErrorIs(t, f.svc.Health(ctx), adapter.ErrServiceUnavailable)
}
