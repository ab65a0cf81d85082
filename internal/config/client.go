// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

const (
	DefaultClientServerURL      = "http://localhost:3001"
	DefaultClientRequestTimeout = 60 * time.Second
	DefaultClientLogLevel       = "warn"
)

// Client configures the taxctl command line client.
type Client struct {
	// ServerURL is the base URL of the API.
	// Env: TAXCTL_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// MachineToken authenticates the client as the machine identity.
	// Env: TAXCTL_MACHINE_TOKEN
	MachineToken string `env:"MACHINE_TOKEN"`

	// RequestTimeout bounds a single API call, exports included.
	// Env: TAXCTL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogLevel is a zerolog level name.
	// Env: TAXCTL_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

type clientEnv struct {
	Client Client `envPrefix:"TAXCTL_"`
}

// GetClientConfig merges defaults, a .env file, TAXCTL_* environment
// variables and the non-zero fields of overrides, in that order.
func GetClientConfig(overrides Client) (*Client, error) {
	cfg := &Client{
		ServerURL:      DefaultClientServerURL,
		RequestTimeout: DefaultClientRequestTimeout,
		LogLevel:       DefaultClientLogLevel,
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	var fromEnv clientEnv
	if err := parseEnv(&fromEnv); err != nil {
		return nil, err
	}

	for _, src := range []Client{fromEnv.Client, overrides} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.ServerURL == "" || cfg.RequestTimeout <= 0 {
		return nil, ErrInvalidClientConfigs
	}

	return cfg, nil
}
