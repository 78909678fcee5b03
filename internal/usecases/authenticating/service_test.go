package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/qixdigital/ad-intelligence-api/internal/config"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, secret string, claims *domain.Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)

	return signed
}

func newAuthService() Authenticator {
	return NewService(&config.Config{
		Auth: config.Auth{Secret: testSecret},
	})
}

func TestService_ValidateToken(t *testing.T) {
	service := newAuthService()

	tests := []struct {
		name     string
		token    func(t *testing.T) string
		validate func(t *testing.T, claims *domain.Claims, err error)
	}{
		{
			name: "Token válido - devolve as claims do usuário",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, &domain.Claims{
					UserID:     "user-1",
					UserName:   "Maria",
					UserRoleID: 1,
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				})
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "user-1", claims.UserID)
				assert.Equal(t, 1, claims.UserRoleID)
			},
		},
		{
			name: "Token expirado - erro específico de expiração",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, &domain.Claims{
					UserID: "user-1",
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
					},
				})
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.Nil(t, claims)
				assert.ErrorIs(t, err, ErrExpiredToken)
			},
		},
		{
			name: "Token assinado com outro segredo - rejeitado",
			token: func(t *testing.T) string {
				return signToken(t, "outro-segredo", &domain.Claims{
					UserID: "user-1",
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				})
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.Nil(t, claims)
				assert.Error(t, err)
			},
		},
		{
			name: "String que não é um JWT - rejeitada",
			token: func(t *testing.T) string {
				return "nao-e-um-token"
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.Nil(t, claims)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token(t))
			tt.validate(t, claims, err)
		})
	}
}
