package service

import "github.com/google/uuid"

// Caller is the identity on whose behalf a service operation runs.
// A zero UserID means the request is unauthenticated.
type Caller struct {
	UserID uuid.UUID
	Email  string
}

// IsAuthenticated reports whether the caller carries an identity
func (c Caller) IsAuthenticated() bool {
	return c.UserID != uuid.Nil
}
