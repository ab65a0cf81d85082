package models

import "time"

// LoginUser is the account summary returned by a successful login.
type LoginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResult is the outcome of a successful login: the account and a
// freshly issued token pair bound to a new session.
type LoginResult struct {
	User   LoginUser
	Tokens TokenPair
}

// LoginResponse is the body of a successful POST /api/auth/login.
type LoginResponse struct {
	Success      bool      `json:"success"`
	User         LoginUser `json:"user"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

// RefreshUser is the identity echoed back by a successful refresh.
type RefreshUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RefreshResult is the outcome of a successful refresh.
type RefreshResult struct {
	AccessToken string
	User        RefreshUser
}

// RefreshResponse is the body of a successful POST /api/auth/refresh.
type RefreshResponse struct {
	Success     bool        `json:"success"`
	AccessToken string      `json:"accessToken"`
	User        RefreshUser `json:"user"`
}

// RegisteredUser is the account summary returned by registration.
type RegisteredUser struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      string  `json:"role"`
}

// RegisterResponse is the body of a successful POST /api/auth/register.
type RegisterResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	User    RegisteredUser `json:"user"`
}

// Profile is the body of GET /api/auth/me.
type Profile struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

// SuccessResponse is the body of operations that only report success,
// optionally with a message.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// FieldUpdateResponse is the body of a successful field edit.
type FieldUpdateResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	AuditLogged bool   `json:"auditLogged"`
}

// EditHistoryResponse is the body of GET /api/counties/{researchId}/edit-history.
type EditHistoryResponse struct {
	Success     bool         `json:"success"`
	ResearchID  int64        `json:"researchId"`
	EditHistory []AuditEntry `json:"editHistory"`
	TotalEdits  int          `json:"totalEdits"`
}

// InstallmentsResponse lists the installments of a research result.
type InstallmentsResponse struct {
	Success      bool          `json:"success"`
	ResearchID   int64         `json:"researchId"`
	Installments []Installment `json:"installments"`
}

// InstallmentResponse is the body of a successful installment upsert.
type InstallmentResponse struct {
	Success     bool        `json:"success"`
	Installment Installment `json:"installment"`
}

// VersionsResponse is the body of GET /api/counties/{researchId}/versions.
type VersionsResponse struct {
	Success           bool              `json:"success"`
	CurrentResearchID int64             `json:"currentResearchId"`
	CountyID          int64             `json:"countyId"`
	Versions          []ResearchVersion `json:"versions"`
	TotalVersions     int               `json:"totalVersions"`
}

// ResearchResponse is the body of GET /api/research/{researchId}.
type ResearchResponse struct {
	Success  bool         `json:"success"`
	Research Jurisdiction `json:"research"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// DeactivateUserResponse reports an admin deactivation.
type DeactivateUserResponse struct {
	Success         bool  `json:"success"`
	UserID          int64 `json:"userId"`
	RevokedSessions int64 `json:"revokedSessions"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}
