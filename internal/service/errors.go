package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"kanban-board-api/internal/response"
)

// Details values of CONFLICT errors returned by invitation redemption
const (
	DetailInvitationInvalid = "INVITATION_INVALID"
	DetailInvitationRevoked = "INVITATION_REVOKED"
	DetailInvitationExpired = "INVITATION_EXPIRED"
)

var errUnauthenticated = response.NewUnauthorizedError("Authentication required")

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// lookupError converts a repository lookup error into NOT_FOUND or STORE_FAILURE
func lookupError(err error, what string) error {
	if isNotFound(err) {
		return response.NewNotFoundError(what+" not found", "")
	}
	return response.NewStoreError("Failed to load "+strings.ToLower(what), err)
}
