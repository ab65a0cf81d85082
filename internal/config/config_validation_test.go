// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "empty sign key is allowed", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero rate burst", mutate: func(c *StructuredConfig) { c.Server.AuthRateBurst = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "zero access lifetime", mutate: func(c *StructuredConfig) { c.App.AccessTokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "zero sweep interval", mutate: func(c *StructuredConfig) { c.Workers.SessionSweepInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "unknown log level", mutate: func(c *StructuredConfig) { c.Log.Level = "loud" }, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
