// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the HTTP client side of the tax jurisdiction API, used
// by the taxctl command line tool.
//
// Failed responses are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401)
// and still see the server's message.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

// APIClient talks to the API over HTTP. Authenticated calls carry the token
// set with SetToken, either a machine token or an access token from Login.
type APIClient interface {
	// SetToken stores the bearer token used by all authenticated calls.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Login authenticates with username and password and stores the
	// returned access token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Health reports the server and database status. A 503 answer is
	// returned as a value together with ErrServiceUnavailable.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Export streams the jurisdictions export in format ("csv" or "xlsx")
	// into w and returns the number of bytes written.
	Export(ctx context.Context, format string, filter models.JurisdictionFilter, w io.Writer) (int64, error)

	// EditHistory returns the audit entries of a research result, newest first.
	EditHistory(ctx context.Context, researchID int64) (models.EditHistoryResponse, error)

	// CreateInviteCode creates an invite code. Requires the admin role.
	CreateInviteCode(ctx context.Context, req models.CreateInviteRequest) (models.InviteCode, error)

	// DeactivateUser disables an account and revokes its sessions.
	// Requires the admin role.
	DeactivateUser(ctx context.Context, userID int64) (models.DeactivateUserResponse, error)
}
