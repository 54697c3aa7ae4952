package service

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/core/domain"
)

func TestCreateUser_DropsCPFFromPayload(t *testing.T) {
	backend := &mockUserBackend{}
	svc := NewUserService(backend)

	_, err := svc.CreateUser(context.Background(), domain.User{
		Username: "carol",
		Password: "pw",
		Role:     domain.RoleUser,
		CPF:      "529.982.247-25",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(backend.created) != 1 {
		t.Fatalf("expected one create call, got %d", len(backend.created))
	}
	if backend.created[0].CPF != "" {
		t.Error("cpf must not be forwarded to the backend")
	}
	if backend.created[0].Password != "pw" {
		t.Error("password must be forwarded on create")
	}
}

func TestCreateUser_RejectsInvalidCPF(t *testing.T) {
	backend := &mockUserBackend{}
	svc := NewUserService(backend)

	_, err := svc.CreateUser(context.Background(), domain.User{
		Username: "carol",
		CPF:      "11111111111",
	})
	if !errors.Is(err, ErrInvalidUser) {
		t.Errorf("expected ErrInvalidUser, got: %v", err)
	}
	if len(backend.created) != 0 {
		t.Error("invalid user must not reach the backend")
	}
}

func TestCreateUser_RequiresUsername(t *testing.T) {
	svc := NewUserService(&mockUserBackend{})

	if _, err := svc.CreateUser(context.Background(), domain.User{}); !errors.Is(err, ErrInvalidUser) {
		t.Errorf("expected ErrInvalidUser, got: %v", err)
	}
}

func TestUpdateUser_ValidatesCPF(t *testing.T) {
	backend := &mockUserBackend{}
	svc := NewUserService(backend)

	_, err := svc.UpdateUser(context.Background(), domain.User{
		ID:       3,
		Username: "carol",
		CPF:      "1234567890",
	})
	if !errors.Is(err, ErrInvalidUser) {
		t.Errorf("expected ErrInvalidUser, got: %v", err)
	}

	if _, err := svc.UpdateUser(context.Background(), domain.User{ID: 3, Username: "carol"}); err != nil {
		t.Errorf("missing cpf is allowed on update, got: %v", err)
	}
}
