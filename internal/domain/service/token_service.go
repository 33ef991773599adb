package service

import (
	"github.com/google/uuid"
)

// TokenService issues and validates the bearer tokens that bind a client to its wizard session.
type TokenService interface {
	IssueSessionToken(sessionID uuid.UUID) (string, error)

	// ParseSessionToken returns the session id carried by a valid token.
	ParseSessionToken(token string) (uuid.UUID, error)
}
