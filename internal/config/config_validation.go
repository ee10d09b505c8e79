// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks source-independent invariants of the merged config.
// Requirements that only matter to the client runtime live in
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RetryAttempts < 0 || cfg.Adapter.RetryBaseDelay < 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryAttempts < 1 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ReportSyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.CredentialsKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
