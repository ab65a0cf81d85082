package service

import (
	"fmt"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/config"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/store"
)

type Services struct {
	TokenService       TokenService
	AuthService        AuthService
	AuditService       AuditService
	ResearchService    ResearchService
	InstallmentService InstallmentService
	AdminService       AdminService
	SessionService     SessionService
	AppInfoService     AppInfoService
	HealthService      HealthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokens, err := NewTokenService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	audit := NewAuditService(storages.AuditRepository, logger)

	return &Services{
		TokenService:       tokens,
		AuthService:        NewAuthValidationService().Wrap(NewAuthService(storages, tokens, cfg.App, logger)),
		AuditService:       audit,
		ResearchService:    NewResearchValidationService().Wrap(NewResearchService(storages, audit, logger)),
		InstallmentService: NewInstallmentValidationService().Wrap(NewInstallmentService(storages.InstallmentRepository, logger)),
		AdminService:       NewAdminValidationService().Wrap(NewAdminService(storages, logger)),
		SessionService:     NewSessionService(storages.SessionRepository, logger),
		AppInfoService:     appInfo,
		HealthService:      NewHealthService(storages.HealthChecker, logger),
	}, nil
}
