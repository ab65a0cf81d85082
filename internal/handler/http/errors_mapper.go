package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/service"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/store"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/utils"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/validators"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is matched in order; the first target found in the error
// chain wins.
var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON"},
	{ErrInvalidPathParam, http.StatusBadRequest, "Invalid path parameter"},

	{validators.ErrRegisterFieldsRequired, http.StatusBadRequest, "Username, email, password, and invite code are required"},
	{validators.ErrLoginFieldsRequired, http.StatusBadRequest, "Username and password are required"},
	{validators.ErrRefreshTokenRequired, http.StatusBadRequest, "Refresh token is required"},
	{validators.ErrFieldAndValueRequired, http.StatusBadRequest, "Field and value are required"},
	{validators.ErrInvalidFieldName, http.StatusBadRequest, "Invalid field name"},
	{store.ErrInvalidField, http.StatusBadRequest, "Invalid field name"},
	{validators.ErrInvalidResearchID, http.StatusBadRequest, "Invalid research id"},
	{validators.ErrInvalidInstallmentNumber, http.StatusBadRequest, "Installment number must be between 1 and 10"},
	{validators.ErrInvalidDate, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD or MM/DD/YY"},
	{service.ErrInvalidFieldValue, http.StatusBadRequest, "Invalid value for field"},
	{validators.ErrInvalidEmail, http.StatusBadRequest, "Invalid email"},
	{validators.ErrInvalidInviteCode, http.StatusBadRequest, "Invite code must be 4 to 64 letters, digits or dashes"},
	{validators.ErrInvalidMaxUses, http.StatusBadRequest, "maxUses must be positive"},
	{validators.ErrInvalidExpiry, http.StatusBadRequest, "expiresAt must be in the future"},
	{validators.ErrInvalidUserID, http.StatusBadRequest, "Invalid user id"},

	{service.ErrInvalidInviteCode, http.StatusBadRequest, "Invalid or expired invite code"},
	{service.ErrInviteEmailMismatch, http.StatusBadRequest, "This invite code is for a different email"},
	{store.ErrUserAlreadyExists, http.StatusBadRequest, "Username or email already exists"},
	{store.ErrInviteCodeAlreadyExists, http.StatusConflict, "Invite code already exists"},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
	{service.ErrAccountDisabled, http.StatusUnauthorized, "Account is disabled"},
	{service.ErrInvalidRefreshToken, http.StatusUnauthorized, "Invalid refresh token"},
	{store.ErrSessionNotFound, http.StatusUnauthorized, "Session not found or expired"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, msgInvalidToken},
	{ErrNoIdentity, http.StatusUnauthorized, msgAuthRequired},

	{store.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{store.ErrResearchNotFound, http.StatusNotFound, "Research result not found"},

	{service.ErrDatabaseUnavailable, http.StatusServiceUnavailable, "Database unavailable"},
}

// statusFromError returns the HTTP status and client message for err.
// Unknown errors map to 500 with a generic message.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, msgInternal
}

// writeError answers with the mapped status. Internal failures are logged
// in full; the client only sees the generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
