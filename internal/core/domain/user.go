package domain

import "strings"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
	RoleGuest = "GUEST"
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	CPF      string `json:"cpf,omitempty"`
}

// Session is the persisted record of an authenticated user. It carries public
// fields only; the password is stripped before a session is saved.
type Session struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Identity is the resolved caller identity handed to request handlers. It is
// passed explicitly rather than read from a process-wide singleton.
type Identity struct {
	UserID   int64
	Username string
	Role     string
}

func (i Identity) IsAdmin() bool {
	return strings.EqualFold(i.Role, RoleAdmin)
}
