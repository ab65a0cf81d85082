package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/validators"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

// AuthValidationService validates auth requests before delegating.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{validator: validators.NewRequestValidator()}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during register request validation: %w", err)
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest, client models.ClientInfo) (models.LoginResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.LoginResult{}, fmt.Errorf("error during login request validation: %w", err)
	}
	return v.inner.Login(ctx, req, client)
}

func (v *AuthValidationService) Refresh(ctx context.Context, req models.RefreshRequest) (models.RefreshResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.RefreshResult{}, fmt.Errorf("error during refresh request validation: %w", err)
	}
	return v.inner.Refresh(ctx, req)
}

func (v *AuthValidationService) Logout(ctx context.Context, req models.RefreshRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during logout request validation: %w", err)
	}
	return v.inner.Logout(ctx, req)
}

func (v *AuthValidationService) Me(ctx context.Context, identity models.Identity) (models.Profile, error) {
	return v.inner.Me(ctx, identity)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// ResearchValidationService validates field edits before delegating.
type ResearchValidationService struct {
	inner     ResearchService
	validator validators.Validator
}

func NewResearchValidationService() ResearchServiceWrapper {
	return &ResearchValidationService{validator: validators.NewRequestValidator()}
}

func (v *ResearchValidationService) ListStates(ctx context.Context) ([]models.State, error) {
	return v.inner.ListStates(ctx)
}

func (v *ResearchValidationService) ListJurisdictions(ctx context.Context, filter models.JurisdictionFilter) ([]models.Jurisdiction, error) {
	return v.inner.ListJurisdictions(ctx, filter)
}

func (v *ResearchValidationService) PageJurisdictions(ctx context.Context, filter models.JurisdictionFilter, page models.PageRequest) (models.JurisdictionPage, error) {
	return v.inner.PageJurisdictions(ctx, filter, page)
}

func (v *ResearchValidationService) GetResearch(ctx context.Context, researchID int64) (models.Jurisdiction, error) {
	return v.inner.GetResearch(ctx, researchID)
}

func (v *ResearchValidationService) ListVersions(ctx context.Context, researchID int64) (models.VersionHistory, error) {
	return v.inner.ListVersions(ctx, researchID)
}

// UpdateField checks presence first and the allow-list second, so a
// missing value on an unknown field reports the missing value.
func (v *ResearchValidationService) UpdateField(ctx context.Context, edit models.FieldEdit) (models.AuditEntry, error) {
	if err := v.validator.Validate(ctx, edit,
		validators.FieldValuePresent, validators.FieldFieldName, validators.FieldResearchID); err != nil {
		return models.AuditEntry{}, fmt.Errorf("error during field edit validation: %w", err)
	}
	return v.inner.UpdateField(ctx, edit)
}

func (v *ResearchValidationService) ExportTable(ctx context.Context, filter models.JurisdictionFilter) (models.ExportTable, error) {
	return v.inner.ExportTable(ctx, filter)
}

func (v *ResearchValidationService) Wrap(inner ResearchService) ResearchService {
	v.inner = inner
	return v
}

// InstallmentValidationService validates installment numbers and dates.
type InstallmentValidationService struct {
	inner     InstallmentService
	validator validators.Validator
}

func NewInstallmentValidationService() InstallmentServiceWrapper {
	return &InstallmentValidationService{validator: validators.NewRequestValidator()}
}

func (v *InstallmentValidationService) List(ctx context.Context, researchID int64) ([]models.Installment, error) {
	return v.inner.List(ctx, researchID)
}

func (v *InstallmentValidationService) Upsert(ctx context.Context, ref models.InstallmentRef, data models.InstallmentData) (models.Installment, error) {
	if err := v.validator.Validate(ctx, ref); err != nil {
		return models.Installment{}, fmt.Errorf("error during installment validation: %w", err)
	}
	if err := v.validator.Validate(ctx, data); err != nil {
		return models.Installment{}, fmt.Errorf("error during installment validation: %w", err)
	}
	return v.inner.Upsert(ctx, ref, data)
}

func (v *InstallmentValidationService) Delete(ctx context.Context, ref models.InstallmentRef) error {
	if err := v.validator.Validate(ctx, ref); err != nil {
		return fmt.Errorf("error during installment validation: %w", err)
	}
	return v.inner.Delete(ctx, ref)
}

func (v *InstallmentValidationService) Wrap(inner InstallmentService) InstallmentService {
	v.inner = inner
	return v
}

// AdminValidationService validates invite code requests.
type AdminValidationService struct {
	inner     AdminService
	validator validators.Validator
}

func NewAdminValidationService() AdminServiceWrapper {
	return &AdminValidationService{validator: validators.NewRequestValidator()}
}

func (v *AdminValidationService) CreateInviteCode(ctx context.Context, actor models.Identity, req models.CreateInviteRequest) (models.InviteCode, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.InviteCode{}, fmt.Errorf("error during invite code validation: %w", err)
	}
	return v.inner.CreateInviteCode(ctx, actor, req)
}

func (v *AdminValidationService) DeactivateUser(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, validators.ErrInvalidUserID
	}
	return v.inner.DeactivateUser(ctx, userID)
}

func (v *AdminValidationService) Wrap(inner AdminService) AdminService {
	v.inner = inner
	return v
}
