package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/config"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/store"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/utils"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

// authService is the concrete implementation of AuthService.
// It handles invite-gated registration, password login, refresh-token
// sessions and profile lookup.
type authService struct {
	transactor store.Transactor
	users      store.UserRepository
	invites    store.InviteCodeRepository
	sessions   store.SessionRepository
	tokens     TokenService

	// sessionDuration is how long a session created by Login stays usable.
	sessionDuration time.Duration

	// now is replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the given storages.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(storages *store.Storages, tokens TokenService, cfg config.App, log *logger.Logger) AuthService {
	return &authService{
		transactor:      storages.Transactor,
		users:           storages.UserRepository,
		invites:         storages.InviteCodeRepository,
		sessions:        storages.SessionRepository,
		tokens:          tokens,
		sessionDuration: cfg.SessionDuration,
		now:             time.Now,
		logger:          log,
	}
}

// Register creates a user account with role user.
//
// The invite code is locked, the duplicate check runs, the user is inserted
// and the invite usage is incremented in one transaction, so a code with
// one remaining use admits exactly one registration.
//
// Returns the created user or:
//   - ErrInvalidInviteCode if the code is unknown, inactive, expired or used up.
//   - ErrInviteEmailMismatch if the code is bound to another e-mail.
//   - store.ErrUserAlreadyExists if the username or e-mail is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("password hashing failed")
		return models.User{}, err
	}

	var created models.User
	err = a.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		invite, err := a.invites.LockUsableInviteCode(ctx, req.InviteCode)
		if err != nil {
			if errors.Is(err, store.ErrInviteCodeNotFound) {
				return ErrInvalidInviteCode
			}
			return err
		}

		if invite.Email != nil && !strings.EqualFold(*invite.Email, req.Email) {
			return ErrInviteEmailMismatch
		}

		exists, err := a.users.UserExists(ctx, req.Username, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return store.ErrUserAlreadyExists
		}

		created, err = a.users.CreateUser(ctx, models.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Role:         models.RoleUser,
			IsActive:     true,
		})
		if err != nil {
			return err
		}

		return a.invites.IncrementInviteCodeUsage(ctx, invite.ID, created.UserID)
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("registration failed")
		return models.User{}, fmt.Errorf("registration failed: %w", err)
	}

	log.Info().Int64("user_id", created.UserID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login authenticates by username or e-mail.
//
// The password is checked before the active flag, so a disabled account is
// only revealed to a caller who knows its password. Unknown users cost one
// bcrypt comparison like a wrong password.
func (a *authService) Login(ctx context.Context, req models.LoginRequest, client models.ClientInfo) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindUserByLogin(ctx, req.Username)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("login", req.Username).Msg("user search by login failed")
		return models.LoginResult{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		log.Info().Str("login", req.Username).Msg("invalid credentials")
		return models.LoginResult{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Info().Int64("user_id", user.UserID).Msg("login to disabled account")
		return models.LoginResult{}, ErrAccountDisabled
	}

	tokens, err := a.tokens.IssueTokenPair(ctx, user.Identity())
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("issuing token pair failed")
		return models.LoginResult{}, err
	}

	session := models.Session{
		UserID:       user.UserID,
		RefreshToken: tokens.RefreshToken,
		IPAddress:    optional(client.IPAddress),
		UserAgent:    optional(client.UserAgent),
		ExpiresAt:    a.now().Add(a.sessionDuration),
	}

	err = a.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := a.users.UpdateLastLogin(ctx, user.UserID); err != nil {
			return err
		}
		_, err := a.sessions.CreateSession(ctx, session)
		return err
	})
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("creating session failed")
		return models.LoginResult{}, fmt.Errorf("creating session failed: %w", err)
	}

	return models.LoginResult{
		User: models.LoginUser{
			ID:       user.UserID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
		Tokens: tokens,
	}, nil
}

// Refresh exchanges a refresh token bound to an active session for a new
// access token. The role is read from the user row, not from the token.
func (a *authService) Refresh(ctx context.Context, req models.RefreshRequest) (models.RefreshResult, error) {
	log := logger.FromContext(ctx)

	claims, err := a.tokens.Verify(ctx, req.RefreshToken)
	if err != nil || !claims.IsRefresh() {
		return models.RefreshResult{}, ErrInvalidRefreshToken
	}

	su, err := a.sessions.FindActiveSession(ctx, req.RefreshToken)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			log.Err(err).Msg("session lookup failed")
		}
		return models.RefreshResult{}, err
	}

	if !su.UserIsActive {
		return models.RefreshResult{}, ErrAccountDisabled
	}

	identity := models.Identity{UserID: su.Session.UserID, Username: su.Username, Role: su.Role}
	access, err := a.tokens.IssueAccessToken(ctx, identity)
	if err != nil {
		log.Err(err).Int64("user_id", identity.UserID).Msg("issuing access token failed")
		return models.RefreshResult{}, err
	}

	if err = a.sessions.TouchSession(ctx, su.Session.ID); err != nil {
		log.Err(err).Int64("session_id", su.Session.ID).Msg("touching session failed")
		return models.RefreshResult{}, err
	}

	return models.RefreshResult{
		AccessToken: access,
		User:        models.RefreshUser{ID: identity.UserID, Username: identity.Username, Role: identity.Role},
	}, nil
}

// Logout revokes the session holding the refresh token. Unknown tokens are
// not an error.
func (a *authService) Logout(ctx context.Context, req models.RefreshRequest) error {
	if err := a.sessions.RevokeSession(ctx, req.RefreshToken); err != nil {
		logger.FromContext(ctx).Err(err).Msg("revoking session failed")
		return err
	}
	return nil
}

// Me returns the profile of the authenticated user. The machine identity
// has no user row and yields store.ErrUserNotFound.
func (a *authService) Me(ctx context.Context, identity models.Identity) (models.Profile, error) {
	if identity.IsMachine() {
		return models.Profile{}, store.ErrUserNotFound
	}

	user, err := a.users.FindUserByID(ctx, identity.UserID)
	if err != nil {
		return models.Profile{}, err
	}

	return models.Profile{
		ID:        user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
