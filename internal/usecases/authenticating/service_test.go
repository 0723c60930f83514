package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/retailbot-api/internal/config"
	"github.com/vfg2006/retailbot-api/internal/domain"
)

func fixtureConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte-123"), bcrypt.MinCost)
	assert.NoError(t, err)

	return &config.Config{
		SecretKey: "segredo-de-teste",
		Auth: config.Auth{
			TokenTTLHours: 1,
			Users: []domain.APIUser{
				{Email: "orquestrador@retailbot.com", PasswordHash: string(hash), RoleID: domain.RoleAdmin},
			},
		},
	}
}

func TestService_LoginUser(t *testing.T) {
	cfg := fixtureConfig(t)
	service := NewService(cfg)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Credenciais válidas - deve emitir token",
			email:    "orquestrador@retailbot.com",
			password: "senha-forte-123",
		},
		{
			name:     "Email com caixa e espaços - deve normalizar antes de comparar",
			email:    "  Orquestrador@RetailBot.com ",
			password: "senha-forte-123",
		},
		{
			name:     "Senha incorreta - deve devolver credenciais inválidas",
			email:    "orquestrador@retailbot.com",
			password: "senha-errada",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Usuário desconhecido - deve devolver usuário não encontrado",
			email:    "alguem@retailbot.com",
			password: "senha-forte-123",
			wantErr:  ErrUserNotFound,
		},
		{
			name:    "Campos vazios - deve devolver dados obrigatórios ausentes",
			email:   "",
			wantErr: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.LoginUser(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := service.ValidateToken(token)
			assert.NoError(t, err)
			assert.Equal(t, "orquestrador@retailbot.com", claims.UserEmail)
			assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	cfg := fixtureConfig(t)
	service := NewService(cfg)

	t.Run("Token adulterado - deve ser rejeitado", func(t *testing.T) {
		token, err := service.LoginUser("orquestrador@retailbot.com", "senha-forte-123")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token + "x")

		assert.Nil(t, claims)
		assert.Error(t, err)
	})

	t.Run("Token expirado - deve devolver ErrExpiredToken", func(t *testing.T) {
		expired := domain.Claims{
			UserEmail:  "orquestrador@retailbot.com",
			UserRoleID: domain.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(cfg.SecretKey))
		assert.NoError(t, err)

		claims, err := service.ValidateToken(signed)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token assinado com outro segredo - deve ser rejeitado", func(t *testing.T) {
		other := domain.Claims{
			UserEmail: "orquestrador@retailbot.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, other).SignedString([]byte("outro-segredo"))
		assert.NoError(t, err)

		claims, err := service.ValidateToken(signed)

		assert.Nil(t, claims)
		assert.Error(t, err)
	})
}
