// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is a stored refresh-token session. A user may hold any number of
// concurrent sessions. Sessions are deactivated, never deleted.
type Session struct {
	ID           int64
	UserID       int64
	RefreshToken string
	IPAddress    *string
	UserAgent    *string
	ExpiresAt    time.Time
	LastActivity time.Time
	IsActive     bool
	CreatedAt    time.Time
}

// SessionUser is an active session joined with the current state of its
// owner, as needed by the refresh flow.
type SessionUser struct {
	Session Session

	Username     string
	Role         string
	UserIsActive bool
}

// ClientInfo is request metadata captured for sessions and audit entries.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}
