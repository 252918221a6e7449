package models

import "time"

// RefreshToken is one entry of a user's session registry. A refresh token
// string is only honored while a matching row exists; the row, not the
// token's own claims, decides validity.
type RefreshToken struct {
	ID        int64
	UserID    string
	Token     string
	CreatedAt time.Time
}
