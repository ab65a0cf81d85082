package service

import (
	"context"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/store"
)

type sessionService struct {
	sessions store.SessionRepository
	logger   *logger.Logger
}

func NewSessionService(sessions store.SessionRepository, log *logger.Logger) SessionService {
	return &sessionService{sessions: sessions, logger: log}
}

// SweepExpired marks sessions past their expiry inactive. Rows are kept.
func (s *sessionService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeactivateExpiredSessions(ctx)
	if err != nil {
		s.logger.Err(err).Msg("deactivating expired sessions failed")
		return 0, err
	}
	if n > 0 {
		s.logger.Info().Int64("sessions", n).Msg("expired sessions deactivated")
	}
	return n, nil
}
