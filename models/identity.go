package models

import "time"

// Identity is the information decoded from a stored credential.
// It is derived from the credential every time and never cached.
type Identity struct {
	UserID     int64
	Name       string
	Email      string
	ProfileURL string
	ExpiresAt  time.Time
}

// Expired reports whether the identity's expiry is before now.
// An identity without an expiry never expires.
func (i Identity) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}
