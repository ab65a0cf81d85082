package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/store"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/utils"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

type adminService struct {
	transactor store.Transactor
	users      store.UserRepository
	invites    store.InviteCodeRepository
	sessions   store.SessionRepository
	codes      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewAdminService(storages *store.Storages, log *logger.Logger) AdminService {
	return &adminService{
		transactor: storages.Transactor,
		users:      storages.UserRepository,
		invites:    storages.InviteCodeRepository,
		sessions:   storages.SessionRepository,
		codes:      utils.NewUUIDGenerator(),
		logger:     log,
	}
}

// CreateInviteCode stores a new active invite code. A code is generated
// when none is given. Codes created by the machine identity have no creator.
func (s *adminService) CreateInviteCode(ctx context.Context, actor models.Identity, req models.CreateInviteRequest) (models.InviteCode, error) {
	invite := models.InviteCode{
		Code:      req.Code,
		Email:     req.Email,
		MaxUses:   req.MaxUses,
		ExpiresAt: req.ExpiresAt,
		IsActive:  true,
	}
	if invite.Code == "" {
		invite.Code = s.codes.InviteCode()
	}
	if !actor.IsMachine() {
		createdBy := actor.UserID
		invite.CreatedBy = &createdBy
	}

	created, err := s.invites.CreateInviteCode(ctx, invite)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("code", invite.Code).Msg("creating invite code failed")
		return models.InviteCode{}, err
	}

	logger.FromContext(ctx).Info().Int64("invite_id", created.ID).Str("created_by", actor.Username).Msg("invite code created")
	return created, nil
}

// DeactivateUser disables the account and revokes all its sessions in one
// transaction. Outstanding access tokens stay valid until they expire.
func (s *adminService) DeactivateUser(ctx context.Context, userID int64) (int64, error) {
	var revoked int64
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.users.DeactivateUser(ctx, userID); err != nil {
			return err
		}
		var err error
		revoked, err = s.sessions.RevokeUserSessions(ctx, userID)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("deactivating user failed")
		return 0, fmt.Errorf("deactivating user failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", userID).Int64("revoked_sessions", revoked).Msg("user deactivated")
	return revoked, nil
}
