package validators

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

// Field name constants restrict validation to a subset of checks.
const (
	FieldResearchID        = "research_id"
	FieldFieldName         = "field"
	FieldValuePresent      = "value"
	FieldInstallmentNumber = "installment_number"
	FieldInstallmentDates  = "installment_dates"
)

var (
	inviteCodePattern = regexp.MustCompile(`^[A-Za-z0-9-]{4,64}$`)
	isoDatePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	shortDatePattern  = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2}$`)
)

// RequestValidator checks the shape of inbound API requests before they
// reach the services.
type RequestValidator struct {
	now func() time.Time
}

func NewRequestValidator() Validator {
	return &RequestValidator{now: time.Now}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value)

	case models.LoginRequest:
		return v.validateLoginRequest(value)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value)

	case models.RefreshRequest:
		return v.validateRefreshRequest(value)
	case *models.RefreshRequest:
		return v.validateRefreshRequest(*value)

	case models.FieldEdit:
		return v.validateFieldEdit(value, fields...)
	case *models.FieldEdit:
		return v.validateFieldEdit(*value, fields...)

	case models.InstallmentRef:
		return v.validateInstallmentRef(value, fields...)

	case models.InstallmentData:
		return v.validateInstallmentData(value)
	case *models.InstallmentData:
		return v.validateInstallmentData(*value)

	case models.CreateInviteRequest:
		return v.validateCreateInviteRequest(value)
	case *models.CreateInviteRequest:
		return v.validateCreateInviteRequest(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegisterRequest(req models.RegisterRequest) error {
	if req.Username == "" || req.Email == "" || req.Password == "" || req.InviteCode == "" {
		return ErrRegisterFieldsRequired
	}
	if !strings.Contains(req.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

func (v *RequestValidator) validateLoginRequest(req models.LoginRequest) error {
	if req.Username == "" || req.Password == "" {
		return ErrLoginFieldsRequired
	}
	return nil
}

func (v *RequestValidator) validateRefreshRequest(req models.RefreshRequest) error {
	if req.RefreshToken == "" {
		return ErrRefreshTokenRequired
	}
	return nil
}

func (v *RequestValidator) validateFieldEdit(edit models.FieldEdit, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldResearchID, FieldValuePresent, FieldFieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldResearchID:
			if edit.ResearchID <= 0 {
				return ErrInvalidResearchID
			}
		case FieldValuePresent:
			if edit.Field == "" || !edit.Value.Present {
				return ErrFieldAndValueRequired
			}
		case FieldFieldName:
			if _, ok := models.LookupField(edit.Field); !ok {
				return ErrInvalidFieldName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateInstallmentRef(ref models.InstallmentRef, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldResearchID, FieldInstallmentNumber}
	}

	for _, f := range fields {
		switch f {
		case FieldResearchID:
			if ref.ResearchID <= 0 {
				return ErrInvalidResearchID
			}
		case FieldInstallmentNumber:
			if !ref.ValidNumber() {
				return ErrInvalidInstallmentNumber
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateInstallmentData(data models.InstallmentData) error {
	for _, d := range []*string{data.EscrowSearchStartDate, data.TaxBillingDate} {
		if d == nil || *d == "" {
			continue
		}
		if !IsDate(*d) {
			return ErrInvalidDate
		}
	}
	return nil
}

func (v *RequestValidator) validateCreateInviteRequest(req models.CreateInviteRequest) error {
	if req.Code != "" && !inviteCodePattern.MatchString(req.Code) {
		return ErrInvalidInviteCode
	}
	if req.Email != nil && !strings.Contains(*req.Email, "@") {
		return ErrInvalidEmail
	}
	if req.MaxUses != nil && *req.MaxUses <= 0 {
		return ErrInvalidMaxUses
	}
	if req.ExpiresAt != nil && !req.ExpiresAt.After(v.now()) {
		return ErrInvalidExpiry
	}
	return nil
}

// IsDate reports whether s is an ISO date or a MM/DD/YY date.
func IsDate(s string) bool {
	if shortDatePattern.MatchString(s) {
		return true
	}
	if !isoDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
