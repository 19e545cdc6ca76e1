package models

import "time"

// IssuedToken выданный сервером токен доступа. Хранится только идентификатор (jti), не сам JWT.
type IssuedToken struct {
	ID        string     `json:"id"`      // jti
	Subject   string     `json:"subject"` // устройство или пользователь
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// IsActive reports whether the token is neither revoked nor expired at now.
func (t *IssuedToken) IsActive(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
