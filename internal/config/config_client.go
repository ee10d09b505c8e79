// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// CredentialsKey seals the stored auto-login password.
	CredentialsKey string
	// DefaultEmail and DefaultPassword are the fallback auto-login pair.
	DefaultEmail    string
	DefaultPassword string
	// LogFile is the JSON log destination.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the Research OS API base URL.
	HTTPAddress string
	// RequestTimeout is the timeout of a single outbound attempt.
	RequestTimeout time.Duration
	// RetryAttempts is the attempt budget of FetchWithRetry.
	RetryAttempts int
	// RetryBaseDelay is the linear backoff unit of FetchWithRetry.
	RetryBaseDelay time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// ReportSyncInterval defines how often the report auto-sync job runs.
	ReportSyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			CredentialsKey:  cfg.App.CredentialsKey,
			DefaultEmail:    cfg.App.DefaultEmail,
			DefaultPassword: cfg.App.DefaultPassword,
			LogFile:         cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryAttempts:  cfg.Adapter.RetryAttempts,
			RetryBaseDelay: cfg.Adapter.RetryBaseDelay,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{ReportSyncInterval: cfg.Workers.ReportSyncInterval},
	}
}
