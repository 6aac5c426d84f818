package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccessToken is an opaque bearer token issued at login. Only the SHA-256
// hash of the secret part is ever stored.
type AccessToken struct {
	ID         string
	UserID     string
	Name       string
	Hash       string
	Abilities  []string
	ExpiresAt  time.Time
	LastUsedAt *time.Time
	CreatedAt  time.Time
}

func (t AccessToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}
