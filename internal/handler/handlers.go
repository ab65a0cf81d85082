// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-tax-jurisdictions/internal/config"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/handler/http"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/service"
)

// Handlers groups the inbound transport handlers of the API.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler. It fails when no listen address is
// configured, since the process would then serve nothing.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
