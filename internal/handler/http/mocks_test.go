package http

import (
	"context"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/service"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockTokenService struct {
	verifyFn func(ctx context.Context, token string) (models.Claims, error)
}

func (m *mockTokenService) IssueTokenPair(ctx context.Context, identity models.Identity) (models.TokenPair, error) {
	return models.TokenPair{}, nil
}

func (m *mockTokenService) IssueAccessToken(ctx context.Context, identity models.Identity) (string, error) {
	return "", nil
}

func (m *mockTokenService) Verify(ctx context.Context, token string) (models.Claims, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, token)
	}
	return models.Claims{}, service.ErrTokenIsExpiredOrInvalid
}

type mockAuthService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn    func(ctx context.Context, req models.LoginRequest, client models.ClientInfo) (models.LoginResult, error)
	refreshFn  func(ctx context.Context, req models.RefreshRequest) (models.RefreshResult, error)
	logoutFn   func(ctx context.Context, req models.RefreshRequest) error
	meFn       func(ctx context.Context, identity models.Identity) (models.Profile, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest, client models.ClientInfo) (models.LoginResult, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req, client)
	}
	return models.LoginResult{}, nil
}

func (m *mockAuthService) Refresh(ctx context.Context, req models.RefreshRequest) (models.RefreshResult, error) {
	if m.refreshFn != nil {
		return m.refreshFn(ctx, req)
	}
	return models.RefreshResult{}, nil
}

func (m *mockAuthService) Logout(ctx context.Context, req models.RefreshRequest) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, req)
	}
	return nil
}

func (m *mockAuthService) Me(ctx context.Context, identity models.Identity) (models.Profile, error) {
	if m.meFn != nil {
		return m.meFn(ctx, identity)
	}
	return models.Profile{}, nil
}

type mockAuditService struct {
	historyFn func(ctx context.Context, researchID int64) ([]models.AuditEntry, error)
}

func (m *mockAuditService) RecordEdit(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error) {
	return entry, nil
}

func (m *mockAuditService) History(ctx context.Context, researchID int64) ([]models.AuditEntry, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, researchID)
	}
	return []models.AuditEntry{}, nil
}

type mockResearchService struct {
	listStatesFn func(ctx context.Context) ([]models.State, error)
	listFn       func(ctx context.Context, filter models.JurisdictionFilter) ([]models.Jurisdiction, error)
	pageFn       func(ctx context.Context, filter models.JurisdictionFilter, page models.PageRequest) (models.JurisdictionPage, error)
	getFn        func(ctx context.Context, researchID int64) (models.Jurisdiction, error)
	versionsFn   func(ctx context.Context, researchID int64) (models.VersionHistory, error)
	updateFn     func(ctx context.Context, edit models.FieldEdit) (models.AuditEntry, error)
	exportFn     func(ctx context.Context, filter models.JurisdictionFilter) (models.ExportTable, error)
}

func (m *mockResearchService) ListStates(ctx context.Context) ([]models.State, error) {
	if m.listStatesFn != nil {
		return m.listStatesFn(ctx)
	}
	return []models.State{}, nil
}

func (m *mockResearchService) ListJurisdictions(ctx context.Context, filter models.JurisdictionFilter) ([]models.Jurisdiction, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []models.Jurisdiction{}, nil
}

func (m *mockResearchService) PageJurisdictions(ctx context.Context, filter models.JurisdictionFilter, page models.PageRequest) (models.JurisdictionPage, error) {
	if m.pageFn != nil {
		return m.pageFn(ctx, filter, page)
	}
	return models.JurisdictionPage{}, nil
}

func (m *mockResearchService) GetResearch(ctx context.Context, researchID int64) (models.Jurisdiction, error) {
	if m.getFn != nil {
		return m.getFn(ctx, researchID)
	}
	return models.Jurisdiction{}, nil
}

func (m *mockResearchService) ListVersions(ctx context.Context, researchID int64) (models.VersionHistory, error) {
	if m.versionsFn != nil {
		return m.versionsFn(ctx, researchID)
	}
	return models.VersionHistory{}, nil
}

func (m *mockResearchService) UpdateField(ctx context.Context, edit models.FieldEdit) (models.AuditEntry, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, edit)
	}
	return models.AuditEntry{}, nil
}

func (m *mockResearchService) ExportTable(ctx context.Context, filter models.JurisdictionFilter) (models.ExportTable, error) {
	if m.exportFn != nil {
		return m.exportFn(ctx, filter)
	}
	return models.ExportTable{Header: models.ExportHeader}, nil
}

type mockInstallmentService struct {
	listFn   func(ctx context.Context, researchID int64) ([]models.Installment, error)
	upsertFn func(ctx context.Context, ref models.InstallmentRef, data models.InstallmentData) (models.Installment, error)
	deleteFn func(ctx context.Context, ref models.InstallmentRef) error
}

func (m *mockInstallmentService) List(ctx context.Context, researchID int64) ([]models.Installment, error) {
	if m.listFn != nil {
		return m.listFn(ctx, researchID)
	}
	return []models.Installment{}, nil
}

func (m *mockInstallmentService) Upsert(ctx context.Context, ref models.InstallmentRef, data models.InstallmentData) (models.Installment, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, ref, data)
	}
	return models.Installment{}, nil
}

func (m *mockInstallmentService) Delete(ctx context.Context, ref models.InstallmentRef) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ref)
	}
	return nil
}

type mockAdminService struct {
	createInviteFn func(ctx context.Context, actor models.Identity, req models.CreateInviteRequest) (models.InviteCode, error)
	deactivateFn   func(ctx context.Context, userID int64) (int64, error)
}

func (m *mockAdminService) CreateInviteCode(ctx context.Context, actor models.Identity, req models.CreateInviteRequest) (models.InviteCode, error) {
	if m.createInviteFn != nil {
		return m.createInviteFn(ctx, actor, req)
	}
	return models.InviteCode{}, nil
}

func (m *mockAdminService) DeactivateUser(ctx context.Context, userID int64) (int64, error) {
	if m.deactivateFn != nil {
		return m.deactivateFn(ctx, userID)
	}
	return 0, nil
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(ctx context.Context) error {
	return m.err
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}
