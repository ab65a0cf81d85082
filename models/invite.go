// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InviteCode gates registration. A code is usable while it is active,
// unexpired and below MaxUses (nil means unlimited). When Email is set only
// that address may register with it.
type InviteCode struct {
	ID        int64      `json:"id"`
	Code      string     `json:"code"`
	Email     *string    `json:"email,omitempty"`
	MaxUses   *int       `json:"max_uses,omitempty"`
	UsesCount int        `json:"uses_count"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedBy *int64     `json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitzero"`
}
