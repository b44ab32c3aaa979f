package domain

import "time"

// Session is one authenticated login. The token is an opaque random value
// transported as a cookie; the principal fields are copied from the
// account at creation time. Sessions have a fixed TTL from creation and
// are never refreshed on use.
type Session struct {
	Token     string
	Principal Principal
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its TTL at the given time.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
