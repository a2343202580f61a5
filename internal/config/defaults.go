// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress      = ":8080"
	DefaultTokenIssuer      = "resto-reviews"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultPasswordHashCost = 10
	DefaultRequestTimeout   = 30 * time.Second
	DefaultLogLevel         = "debug"
	DefaultVersion          = "1.0.0"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			Version:          DefaultVersion,
			LogLevel:         DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			RequestTimeout:     DefaultRequestTimeout,
			CORSAllowedOrigins: []string{"*"},
		},
	}
}
