// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/service"
)

// SessionSweeper periodically deactivates refresh sessions whose expiry has
// passed.
type SessionSweeper struct {
	sessions service.SessionService
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionSweeper(sessions service.SessionService, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{sessions: sessions, interval: interval, logger: logger}
}

// Run sweeps once immediately and then on every tick until ctx is done.
// A failed sweep is retried on the next tick; the service logs the error.
func (s *SessionSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	_, _ = s.sessions.SweepExpired(s.logger.WithContext(ctx))
}
