package domain

import "time"

// Roles assignable to an account. The role is copied into the session
// principal at login and enforced by the admin gate.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account is the root identity record. Accounts are never deleted; the
// password hash is the only mutable credential field.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated identity attached to a request once the
// session gate succeeds. It is a snapshot of the account taken at login
// and does not track later account changes.
type Principal struct {
	AccountID string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// IsAdmin reports whether the principal passes the admin gate.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }
