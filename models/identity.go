// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MachineUsername is the username of the built-in machine identity.
const MachineUsername = "machine"

// Identity is the authenticated principal attached to a request.
type Identity struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// MachineIdentity is granted to callers presenting the configured machine
// token. It has no backing user row.
func MachineIdentity() Identity {
	return Identity{UserID: 0, Username: MachineUsername, Role: RoleAdmin}
}

// IsMachine reports whether the identity is the built-in machine identity.
func (i Identity) IsMachine() bool {
	return i.UserID == 0 && i.Username == MachineUsername
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
