package service

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain"
	"storefront/internal/port"
	"storefront/internal/validator"
)

var ErrInvalidUser = errors.New("invalid user")

// UserService passes user CRUD through to the remote store. A supplied CPF
// is validated client-side but never forwarded; the backend does not store
// it.
type UserService struct {
	backend port.UserBackend
}

func NewUserService(backend port.UserBackend) *UserService {
	return &UserService{backend: backend}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.backend.ListUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.backend.GetUser(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	user.CPF = ""
	return s.backend.CreateUser(ctx, user)
}

func (s *UserService) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	user.CPF = ""
	return s.backend.UpdateUser(ctx, user)
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.backend.DeleteUser(ctx, id)
}

func validateUser(user domain.User) error {
	if user.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidUser)
	}
	if err := validator.CPF(user.CPF); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	return nil
}
