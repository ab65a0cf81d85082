package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
	"github.com/jackc/pgerrcode"
)

type inviteCodeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInviteCodeRepository constructs an [InviteCodeRepository] over db.
func NewInviteCodeRepository(db *DB, logger *logger.Logger) InviteCodeRepository {
	logger.Debug().Msg("creating invite code repository")
	return &inviteCodeRepository{
		db:     db,
		logger: logger,
	}
}

func scanInviteCode(row rowScanner) (models.InviteCode, error) {
	var invite models.InviteCode
	err := row.Scan(
		&invite.ID,
		&invite.Code,
		&invite.Email,
		&invite.MaxUses,
		&invite.UsesCount,
		&invite.ExpiresAt,
		&invite.IsActive,
		&invite.CreatedBy,
		&invite.CreatedAt,
	)
	return invite, err
}

// LockUsableInviteCode selects the code with FOR UPDATE, so it must run
// inside [DB.WithinTransaction] to serialize concurrent registrations.
func (r *inviteCodeRepository) LockUsableInviteCode(ctx context.Context, code string) (models.InviteCode, error) {
	log := logger.FromContext(ctx)

	invite, err := scanInviteCode(r.db.conn(ctx).QueryRowContext(ctx, lockUsableInviteCode, code))
	if errors.Is(err, sql.ErrNoRows) {
		return models.InviteCode{}, ErrInviteCodeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*inviteCodeRepository.LockUsableInviteCode").Msg("error selecting invite code")
		return models.InviteCode{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return invite, nil
}

func (r *inviteCodeRepository) IncrementInviteCodeUsage(ctx context.Context, inviteID, usedBy int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.conn(ctx).ExecContext(ctx, incrementInviteCodeUsage, inviteID, usedBy); err != nil {
		log.Err(err).
			Str("func", "*inviteCodeRepository.IncrementInviteCodeUsage").
			Int64("invite_id", inviteID).
			Msg("error incrementing invite code usage")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *inviteCodeRepository) CreateInviteCode(ctx context.Context, invite models.InviteCode) (models.InviteCode, error) {
	log := logger.FromContext(ctx)

	row := r.db.conn(ctx).QueryRowContext(ctx, createInviteCode,
		invite.Code, invite.Email, invite.MaxUses, invite.ExpiresAt, invite.CreatedBy)

	created, err := scanInviteCode(row)
	if err != nil {
		log.Err(err).Str("func", "*inviteCodeRepository.CreateInviteCode").Msg("error creating invite code")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.InviteCode{}, ErrInviteCodeAlreadyExists
		default:
			return models.InviteCode{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}
