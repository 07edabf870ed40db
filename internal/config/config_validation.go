// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultScrapeBudget bounds one scrape when no budget is configured.
const defaultScrapeBudget = 20 * time.Second

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills defaults
// for optional durations.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.MasterKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Vault.BaseURL == "" {
		return ErrInvalidVaultConfigs
	}

	if cfg.Scraper.Budget <= 0 {
		cfg.Scraper.Budget = defaultScrapeBudget
	}

	return nil
}
