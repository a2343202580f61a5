// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/resto-reviews/internal/crypto"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be in range %d..%d",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if len(cfg.App.Admin.Password) > crypto.MaxPasswordBytes {
		return fmt.Errorf("%w: admin password must be at most %d bytes",
			ErrInvalidAppConfigs, crypto.MaxPasswordBytes)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	return nil
}

// AdminEnabled reports whether administrator credentials are configured.
func (a Admin) AdminEnabled() bool {
	return a.Username != "" && a.Password != ""
}

// Redacted returns a copy of cfg that is safe to log.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	if cfg.App.TokenSignKey != "" {
		cfg.App.TokenSignKey = redactedValue
	}
	if cfg.App.Admin.Password != "" {
		cfg.App.Admin.Password = redactedValue
	}
	if cfg.Storage.DB.DSN != "" {
		cfg.Storage.DB.DSN = redactedValue
	}
	cfg.Server.CORSAllowedOrigins = append([]string(nil), cfg.Server.CORSAllowedOrigins...)
	return cfg
}

const redactedValue = "[REDACTED]"
