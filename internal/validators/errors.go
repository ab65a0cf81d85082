package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRegisterFieldsRequired   = errors.New("username, email, password and invite code are required")
	ErrLoginFieldsRequired      = errors.New("username and password are required")
	ErrRefreshTokenRequired     = errors.New("refresh token is required")
	ErrFieldAndValueRequired    = errors.New("field and value are required")
	ErrInvalidFieldName         = errors.New("invalid field name")
	ErrInvalidResearchID        = errors.New("invalid research id")
	ErrInvalidInstallmentNumber = errors.New("installment number must be between 1 and 10")
	ErrInvalidDate              = errors.New("invalid date, expected YYYY-MM-DD or MM/DD/YY")
	ErrInvalidInviteCode        = errors.New("invite code must be 4 to 64 letters, digits or dashes")
	ErrInvalidMaxUses           = errors.New("maxUses must be positive")
	ErrInvalidExpiry            = errors.New("expiresAt must be in the future")
	ErrInvalidEmail             = errors.New("invalid email")
	ErrInvalidUserID            = errors.New("invalid user id")
)
