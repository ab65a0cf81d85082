package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("invalid or expired token")
	ErrInvalidRefreshToken     = errors.New("invalid refresh token")

	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrAccountDisabled     = errors.New("account is disabled")
	ErrInvalidInviteCode   = errors.New("invalid or expired invite code")
	ErrInviteEmailMismatch = errors.New("invite code is for a different email")

	ErrInvalidFieldValue = errors.New("invalid value for field")

	ErrDatabaseUnavailable = errors.New("database is unavailable")
)
