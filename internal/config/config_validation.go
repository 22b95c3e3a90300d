// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Johan Ferguson

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// registrar invariants before it is used at startup. With defaults applied
// last, a failure here means a source explicitly set an unusable value.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
