// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// research-os client. It aggregates all sub-configurations and is populated
// by merging values from command-line flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the credential sealing key,
	// default auto-login credentials and the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local preferences database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the Research OS API address, timeouts and the retry
	// budget of the resilient request client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// CredentialsKey is the secret the auto-login password is sealed with
	// before it is written to the preferences store.
	// Env: APP_CREDENTIALS_KEY
	CredentialsKey string `env:"CREDENTIALS_KEY"`

	// DefaultEmail is used for auto-login when no credentials were stored yet.
	// Env: APP_DEFAULT_EMAIL
	DefaultEmail string `env:"DEFAULT_EMAIL"`

	// DefaultPassword pairs with DefaultEmail.
	// Env: APP_DEFAULT_PASSWORD
	DefaultPassword string `env:"DEFAULT_PASSWORD"`

	// LogFile is the path of the JSON log file. Empty means "logs" next to
	// the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the client storage backends.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "research-os.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the outbound transport to the Research OS API.
type Adapter struct {
	// HTTPAddress is the API base URL (e.g. "http://127.0.0.1:8000").
	// A bare host:port is accepted and prefixed with http://.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single HTTP attempt (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryAttempts is the attempt budget of the resilient request client.
	// Env: ADAPTER_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`

	// RetryBaseDelay is multiplied by the 1-indexed attempt number to get the
	// wait before the next attempt.
	// Env: ADAPTER_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// ReportSyncInterval is the period of the daily report auto-sync job.
	// Env: WORKERS_REPORT_SYNC_INTERVAL
	ReportSyncInterval time.Duration `env:"REPORT_SYNC_INTERVAL"`
}

// Defaults applied to every field left empty by the other sources.
const (
	DefaultHTTPAddress        = "http://127.0.0.1:8000"
	DefaultRequestTimeout     = 15 * time.Second
	DefaultRetryAttempts      = 3
	DefaultRetryBaseDelay     = 2 * time.Second
	DefaultDSN                = "research-os.db"
	DefaultReportSyncInterval = time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			RetryAttempts:  DefaultRetryAttempts,
			RetryBaseDelay: DefaultRetryBaseDelay,
		},
		Workers: Workers{ReportSyncInterval: DefaultReportSyncInterval},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. For every field the first non-zero value wins, in this order:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
