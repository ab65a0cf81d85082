// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuditEntry is one immutable record of a field edit on a research result.
// OldValue is the value read immediately before the update.
type AuditEntry struct {
	ID         int64     `json:"id"`
	ResearchID int64     `json:"research_id"`
	UserID     int64     `json:"user_id"`
	Username   string    `json:"username"`
	FieldName  string    `json:"field_name"`
	OldValue   *string   `json:"old_value"`
	NewValue   *string   `json:"new_value"`
	IPAddress  *string   `json:"ip_address"`
	UserAgent  *string   `json:"user_agent,omitempty"`
	EditReason *string   `json:"edit_reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// FieldEdit is a request to change one editable research field. A present
// nil Value clears the field.
type FieldEdit struct {
	ResearchID int64
	Field      string
	Value      FieldValue
	EditReason *string
	Actor      Identity
	Client     ClientInfo
}
