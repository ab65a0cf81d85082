package http

import (
	"github.com/MKhiriev/go-tax-jurisdictions/internal/config"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/service"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/utils"
)

type Handler struct {
	services *service.Services

	// machineToken grants the machine identity. Empty disables it.
	machineToken string

	// trustProxyHeaders enables chi's RealIP in front of the router.
	trustProxyHeaders bool

	authLimiter *ipRateLimiter
	metrics     *httpMetrics
	traceIDs    *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		machineToken:      cfg.App.MachineToken,
		trustProxyHeaders: cfg.Server.TrustProxyHeaders,
		authLimiter:       newIPRateLimiter(cfg.Server.AuthRateLimit, cfg.Server.AuthRateBurst),
		metrics:           newHTTPMetrics(),
		traceIDs:          utils.NewUUIDGenerator(),
		logger:            logger,
	}
}
