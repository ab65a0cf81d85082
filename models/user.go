package models

import "time"

// Roles known to the API. New accounts always receive RoleUser.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is unique and may be used instead of Email to log in.
	Username string `json:"username"`

	// Email is unique.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`

	// Role is either RoleAdmin or RoleUser.
	Role string `json:"role"`

	// IsActive is false for soft-deactivated accounts, which cannot log in
	// or refresh.
	IsActive bool `json:"-"`

	CreatedAt time.Time  `json:"created_at,omitzero"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the token identity of the user.
func (u User) Identity() Identity {
	return Identity{UserID: u.UserID, Username: u.Username, Role: u.Role}
}
