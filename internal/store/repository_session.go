package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

// sessionRepository is the PostgreSQL-backed session registry. Sessions are
// never deleted; revocation and expiry flip is_active to false.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] over db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession stores a new active session. ExpiresAt must be set by the
// caller.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	var created models.Session
	err := r.db.conn(ctx).QueryRowContext(ctx, createSession,
		session.UserID, session.RefreshToken, session.IPAddress, session.UserAgent, session.ExpiresAt,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.RefreshToken,
		&created.IPAddress,
		&created.UserAgent,
		&created.ExpiresAt,
		&created.LastActivity,
		&created.IsActive,
		&created.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.CreateSession").
			Int64("user_id", session.UserID).
			Msg("error creating session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindActiveSession returns the active, unexpired session holding
// refreshToken together with the current state of its owner.
func (r *sessionRepository) FindActiveSession(ctx context.Context, refreshToken string) (models.SessionUser, error) {
	log := logger.FromContext(ctx)

	var su models.SessionUser
	err := r.db.conn(ctx).QueryRowContext(ctx, findActiveSession, refreshToken).Scan(
		&su.Session.ID,
		&su.Session.UserID,
		&su.Session.RefreshToken,
		&su.Session.IPAddress,
		&su.Session.UserAgent,
		&su.Session.ExpiresAt,
		&su.Session.LastActivity,
		&su.Session.IsActive,
		&su.Session.CreatedAt,
		&su.Username,
		&su.Role,
		&su.UserIsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SessionUser{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindActiveSession").Msg("error finding session")
		return models.SessionUser{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return su, nil
}

// TouchSession updates last_activity of the session.
func (r *sessionRepository) TouchSession(ctx context.Context, sessionID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.conn(ctx).ExecContext(ctx, touchSession, sessionID); err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.TouchSession").
			Int64("session_id", sessionID).
			Msg("error touching session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) RevokeSession(ctx context.Context, refreshToken string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.conn(ctx).ExecContext(ctx, revokeSession, refreshToken); err != nil {
		log.Err(err).Str("func", "*sessionRepository.RevokeSession").Msg("error revoking session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// RevokeUserSessions deactivates every active session of the user and
// returns how many were revoked.
func (r *sessionRepository) RevokeUserSessions(ctx context.Context, userID int64) (int64, error) {
	return r.execCount(ctx, "*sessionRepository.RevokeUserSessions", revokeUserSessions, userID)
}

// DeactivateExpiredSessions flips is_active on sessions past expires_at.
func (r *sessionRepository) DeactivateExpiredSessions(ctx context.Context) (int64, error) {
	return r.execCount(ctx, "*sessionRepository.DeactivateExpiredSessions", deactivateExpiredSessions)
}

func (r *sessionRepository) execCount(ctx context.Context, funcName, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing session update")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}
