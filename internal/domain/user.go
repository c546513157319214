package domain

import (
	"context"
	"time"
)

// User representa um funcionário da oficina com acesso à API.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Oculta o hash da senha no JSON de resposta
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRole é o papel do funcionário no sistema.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleMechanic UserRole = "mechanic"
)

var userRoles = []UserRole{RoleAdmin, RoleManager, RoleMechanic}

// ParseUserRole valida o papel informado no cadastro.
func ParseUserRole(s string) (UserRole, error) {
	return parseEnum("user_role", s, userRoles)
}

// UserRegistration representa o payload de entrada para o registro.
type UserRegistration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserRepository define o contrato de persistência para a entidade User.
// FindByEmail devolve (nil, nil) quando o e-mail não existe.
type UserRepository interface {
	Save(ctx context.Context, user User) (User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
