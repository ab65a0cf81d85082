package store

import (
	"context"

	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a database error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Transactor runs a unit of work in one database transaction. Repository
// calls made with the ctx handed to fn take part in it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository is the credential store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByLogin matches either username or e-mail.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UserExists(ctx context.Context, username, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
	DeactivateUser(ctx context.Context, userID int64) error
}

// InviteCodeRepository manages registration invite codes.
type InviteCodeRepository interface {
	// LockUsableInviteCode returns the code row locked until the surrounding
	// transaction ends, or ErrInviteCodeNotFound.
	LockUsableInviteCode(ctx context.Context, code string) (models.InviteCode, error)
	IncrementInviteCodeUsage(ctx context.Context, inviteID, usedBy int64) error
	CreateInviteCode(ctx context.Context, invite models.InviteCode) (models.InviteCode, error)
}

// SessionRepository is the session registry.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	FindActiveSession(ctx context.Context, refreshToken string) (models.SessionUser, error)
	TouchSession(ctx context.Context, sessionID int64) error
	// RevokeSession is a silent no-op for unknown or inactive tokens.
	RevokeSession(ctx context.Context, refreshToken string) error
	RevokeUserSessions(ctx context.Context, userID int64) (int64, error)
	DeactivateExpiredSessions(ctx context.Context) (int64, error)
}

// AuditRepository is the append-only field edit trail.
type AuditRepository interface {
	InsertAuditEntry(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error)
	// ListAuditEntries returns entries newest first.
	ListAuditEntries(ctx context.Context, researchID int64) ([]models.AuditEntry, error)
}

// ResearchRepository reads jurisdictions and edits research results.
type ResearchRepository interface {
	ListStates(ctx context.Context) ([]models.State, error)
	ListJurisdictions(ctx context.Context, filter models.JurisdictionFilter) ([]models.Jurisdiction, error)
	GetResearch(ctx context.Context, researchID int64) (models.Jurisdiction, error)
	GetCountyIDByResearchID(ctx context.Context, researchID int64) (int64, error)
	ListResearchVersions(ctx context.Context, countyID int64) ([]models.ResearchVersion, error)
	// LockFieldValue reads the current value of field as text and locks
	// the row until the surrounding transaction ends.
	LockFieldValue(ctx context.Context, researchID int64, field models.FieldSpec) (*string, error)
	UpdateField(ctx context.Context, researchID int64, field models.FieldSpec, value *string) error
}

// InstallmentRepository manages per-installment collection settings.
type InstallmentRepository interface {
	ListInstallments(ctx context.Context, researchID int64) ([]models.Installment, error)
	UpsertInstallment(ctx context.Context, researchID int64, number int, data models.InstallmentData) (models.Installment, error)
	DeleteInstallment(ctx context.Context, researchID int64, number int) error
}

// HealthChecker reports database reachability.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
