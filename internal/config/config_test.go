package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retailbot-api/internal/domain"
)

func TestParseAPIUsers(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []domain.APIUser
	}{
		{
			name: "Duas credenciais válidas",
			raw:  "a@b.com:$2a$10$abc:1;c@d.com:$2a$10$def:3",
			expected: []domain.APIUser{
				{Email: "a@b.com", PasswordHash: "$2a$10$abc", RoleID: domain.RoleAdmin},
				{Email: "c@d.com", PasswordHash: "$2a$10$def", RoleID: domain.RoleClient},
			},
		},
		{
			name: "Email normalizado para minúsculas",
			raw:  " Admin@Retailbot.COM :$2a$10$abc:2",
			expected: []domain.APIUser{
				{Email: "admin@retailbot.com", PasswordHash: "$2a$10$abc", RoleID: domain.RoleSupervisor},
			},
		},
		{
			name: "Entrada com formato inválido é descartada",
			raw:  "a@b.com:$2a$10$abc:1;semformato",
			expected: []domain.APIUser{
				{Email: "a@b.com", PasswordHash: "$2a$10$abc", RoleID: domain.RoleAdmin},
			},
		},
		{
			name:     "Role fora do intervalo é descartada",
			raw:      "a@b.com:$2a$10$abc:9",
			expected: []domain.APIUser{},
		},
		{
			name:     "Vazio produz lista vazia",
			raw:      "",
			expected: []domain.APIUser{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := ParseAPIUsers(tt.raw)
			assert.Equal(t, tt.expected, users)
		})
	}
}
