package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"storefront/internal/core/domain"
	"storefront/internal/port"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService checks credentials against the remote user list and keeps the
// resulting session in the session repository. The remote store is the only
// credential source; no local user state is kept.
type AuthService struct {
	users    port.UserBackend
	sessions port.SessionRepository
}

func NewAuthService(users port.UserBackend, sessions port.SessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Login matches the trimmed username and password against the remote user
// list. On success it persists a session holding the user's public fields
// only and returns it together with the user, password stripped.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, *domain.User, error) {
	all, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load users: %w", err)
	}

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	for _, u := range all {
		if strings.TrimSpace(u.Username) != username {
			continue
		}
		if u.Password == "" || strings.TrimSpace(u.Password) != password {
			return nil, nil, ErrInvalidCredentials
		}

		session := domain.Session{
			Token:    uuid.NewString(),
			UserID:   u.ID,
			Username: u.Username,
			Role:     u.Role,
		}
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, nil, fmt.Errorf("save session: %w", err)
		}

		u.Password = ""
		return &session, &u, nil
	}

	return nil, nil, ErrInvalidCredentials
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Authenticate resolves a bearer token into the caller's identity. An
// unknown or expired token surfaces as port.ErrSessionNotFound.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	session, err := s.sessions.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	return &domain.Identity{
		UserID:   session.UserID,
		Username: session.Username,
		Role:     session.Role,
	}, nil
}
