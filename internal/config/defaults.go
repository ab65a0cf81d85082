// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress          = "0.0.0.0:3001"
	DefaultTokenIssuer          = "tax-jurisdictions"
	DefaultAccessTokenDuration  = time.Hour
	DefaultRefreshTokenDuration = 7 * 24 * time.Hour
	DefaultSessionDuration      = 7 * 24 * time.Hour
	DefaultRequestTimeout       = 30 * time.Second
	DefaultShutdownTimeout      = 10 * time.Second
	DefaultAuthRateLimit        = 5
	DefaultAuthRateBurst        = 10
	DefaultMaxOpenConns         = 10
	DefaultSessionSweepInterval = 15 * time.Minute
	DefaultLogLevel             = "info"
	DefaultVersion              = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          DefaultTokenIssuer,
			AccessTokenDuration:  DefaultAccessTokenDuration,
			RefreshTokenDuration: DefaultRefreshTokenDuration,
			SessionDuration:      DefaultSessionDuration,
			Version:              DefaultVersion,
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: DefaultMaxOpenConns},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			AuthRateLimit:   DefaultAuthRateLimit,
			AuthRateBurst:   DefaultAuthRateBurst,
		},
		Workers: Workers{SessionSweepInterval: DefaultSessionSweepInterval},
		Log:     Log{Level: DefaultLogLevel},
	}
}
