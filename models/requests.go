// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	InviteCode string  `json:"inviteCode"`
}

// LoginRequest is the body of POST /api/auth/login. Username may also hold
// the account e-mail.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /api/auth/refresh and /api/auth/logout.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// FieldUpdateRequest is the body of PATCH /api/counties/{researchId}.
type FieldUpdateRequest struct {
	Field      string     `json:"field"`
	Value      FieldValue `json:"value"`
	EditReason *string    `json:"editReason"`
}

// FieldValue is a JSON scalar that remembers whether it was present in the
// request at all. Strings are kept as is, numbers and booleans keep their
// literal text, null becomes a nil Value.
type FieldValue struct {
	Present bool
	Value   *string
}

func (v *FieldValue) UnmarshalJSON(b []byte) error {
	v.Present = true
	if bytes.Equal(b, []byte("null")) {
		v.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v.Value = &s
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		str := n.String()
		v.Value = &str
		return nil
	}

	var flag bool
	if err := json.Unmarshal(b, &flag); err != nil {
		return err
	}
	str := strconv.FormatBool(flag)
	v.Value = &str
	return nil
}

// CreateInviteRequest is the body of POST /api/admin/invite-codes.
type CreateInviteRequest struct {
	Code      string     `json:"code"`
	Email     *string    `json:"email"`
	MaxUses   *int       `json:"maxUses"`
	ExpiresAt *time.Time `json:"expiresAt"`
}
