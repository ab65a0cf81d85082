package service

import (
	"context"

	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

// TokenService issues and verifies signed access and refresh tokens.
type TokenService interface {
	IssueTokenPair(ctx context.Context, identity models.Identity) (models.TokenPair, error)
	IssueAccessToken(ctx context.Context, identity models.Identity) (string, error)
	// Verify reports every failure as ErrTokenIsExpiredOrInvalid.
	Verify(ctx context.Context, token string) (models.Claims, error)
}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest, client models.ClientInfo) (models.LoginResult, error)
	Refresh(ctx context.Context, req models.RefreshRequest) (models.RefreshResult, error)
	Logout(ctx context.Context, req models.RefreshRequest) error
	Me(ctx context.Context, identity models.Identity) (models.Profile, error)
}

type AuditService interface {
	RecordEdit(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error)
	History(ctx context.Context, researchID int64) ([]models.AuditEntry, error)
}

type ResearchService interface {
	ListStates(ctx context.Context) ([]models.State, error)
	ListJurisdictions(ctx context.Context, filter models.JurisdictionFilter) ([]models.Jurisdiction, error)
	PageJurisdictions(ctx context.Context, filter models.JurisdictionFilter, page models.PageRequest) (models.JurisdictionPage, error)
	GetResearch(ctx context.Context, researchID int64) (models.Jurisdiction, error)
	ListVersions(ctx context.Context, researchID int64) (models.VersionHistory, error)
	UpdateField(ctx context.Context, edit models.FieldEdit) (models.AuditEntry, error)
	ExportTable(ctx context.Context, filter models.JurisdictionFilter) (models.ExportTable, error)
}

type InstallmentService interface {
	List(ctx context.Context, researchID int64) ([]models.Installment, error)
	Upsert(ctx context.Context, ref models.InstallmentRef, data models.InstallmentData) (models.Installment, error)
	Delete(ctx context.Context, ref models.InstallmentRef) error
}

type AdminService interface {
	CreateInviteCode(ctx context.Context, actor models.Identity, req models.CreateInviteRequest) (models.InviteCode, error)
	// DeactivateUser returns the number of sessions revoked.
	DeactivateUser(ctx context.Context, userID int64) (int64, error)
}

type SessionService interface {
	SweepExpired(ctx context.Context) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type HealthService interface {
	Check(ctx context.Context) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type ResearchServiceWrapper interface {
	Wrap(ResearchService) ResearchService
}

type InstallmentServiceWrapper interface {
	Wrap(InstallmentService) InstallmentService
}

type AdminServiceWrapper interface {
	Wrap(AdminService) AdminService
}
