// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// applyDefaults fills fields that stay unset after merging all sources.
// Only lifecycle defaults live here; secrets are never defaulted.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = 15 * time.Second
	}
	if cfg.Client.WatchInterval == 0 {
		cfg.Client.WatchInterval = time.Minute
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by both binaries. Binary-specific requirements (DSN for
// the server, session path for the client) are checked in the narrowed
// views, because each binary only needs its own slice of the config.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidClientConfigs
	}

	if cfg.Storage.SessionPath == "" {
		return ErrInvalidClientConfigs
	}

	if cfg.Workers.WatchInterval == 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
