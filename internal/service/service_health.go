package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/store"
)

type healthService struct {
	db     store.HealthChecker
	logger *logger.Logger
}

func NewHealthService(db store.HealthChecker, log *logger.Logger) HealthService {
	return &healthService{db: db, logger: log}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return nil
}
