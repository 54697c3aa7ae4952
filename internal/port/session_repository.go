package port

import (
	"context"
	"errors"

	"storefront/internal/core/domain"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Save(ctx context.Context, session domain.Session) error

	// Load returns the session for a token, or ErrSessionNotFound if the
	// token is unknown or expired.
	Load(ctx context.Context, token string) (*domain.Session, error)

	Delete(ctx context.Context, token string) error
}
