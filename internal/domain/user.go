package domain

import "github.com/golang-jwt/jwt/v5"

// Roles de acesso à API
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

// APIUser é uma credencial de cliente da API definida por configuração.
// Não há cadastro de usuários: as credenciais do orquestrador e do dashboard
// são provisionadas via ambiente com hash bcrypt.
type APIUser struct {
	Email        string
	PasswordHash string
	RoleID       int
}

// Claims são as claims do token JWT emitido no login
type Claims struct {
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
