// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client command line.
//
// Flags:
//
//	-a API base URL (or host:port)
//	-request-timeout per-attempt timeout (e.g., "15s")
//	-retry-attempts resilient client attempt budget
//	-retry-base-delay linear backoff unit (e.g., "2s")
//	-d SQLite database file
//	-credentials-key key used to seal stored credentials
//	-log-file log file path
//	-report-sync-interval report auto-sync period (e.g., "1m")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		address            string
		requestTimeout     time.Duration
		retryAttempts      int
		retryBaseDelay     time.Duration
		databaseDSN        string
		credentialsKey     string
		logFile            string
		reportSyncInterval time.Duration
		jsonConfigPath     string
	)

	fs := flag.NewFlagSet("research-os-client", flag.ContinueOnError)
	fs.StringVar(&address, "a", "", "Research OS API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.IntVar(&retryAttempts, "retry-attempts", 0, "Attempt budget for retried requests")
	fs.DurationVar(&retryBaseDelay, "retry-base-delay", 0, "Linear backoff unit (e.g., 2s)")
	fs.StringVar(&databaseDSN, "d", "", "Local SQLite database file")
	fs.StringVar(&credentialsKey, "credentials-key", "", "Key used to seal stored credentials")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.DurationVar(&reportSyncInterval, "report-sync-interval", 0, "Report auto-sync interval (e.g., 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			CredentialsKey: credentialsKey,
			LogFile:        logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
			RetryAttempts:  retryAttempts,
			RetryBaseDelay: retryBaseDelay,
		},
		Workers:      Workers{ReportSyncInterval: reportSyncInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}
