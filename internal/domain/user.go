package domain

import "time"

// User is a login account. PasswordHash is a bcrypt hash, never the
// plaintext password.
type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate applies business validation rules
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrValidation
	}
	if u.Email == "" {
		return ErrValidation
	}
	if u.Role == "" {
		return ErrValidation
	}
	return nil
}

// MinPasswordLength is enforced on account creation and password change.
const MinPasswordLength = 6
