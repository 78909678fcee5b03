package domain

import (
	"time"
)

type Platform string

const (
	PlatformMeta Platform = "META"
)

type TokenState string

const (
	TokenStateValid        TokenState = "VALID"
	TokenStateExpiringSoon TokenState = "EXPIRING_SOON"
	TokenStateExpired      TokenState = "EXPIRED"
)

// TokenRenewalWindow é a janela antes da expiração em que o token deve ser
// renovado proativamente, antes de iniciar uma sincronização.
const TokenRenewalWindow = 24 * time.Hour

// PlatformToken é a credencial OAuth de um usuário para uma plataforma de
// anúncios. Existe no máximo um token por (usuário, plataforma).
type PlatformToken struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Platform    Platform   `json:"platform"`
	AccessToken string     `json:"-"`
	ExpiresAt   *time.Time `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// State classifica o token em relação à expiração. Plataformas que não
// informam expiração produzem tokens sempre válidos.
func (t *PlatformToken) State(now time.Time) TokenState {
	if t.ExpiresAt == nil {
		return TokenStateValid
	}

	if !t.ExpiresAt.After(now) {
		return TokenStateExpired
	}

	if t.ExpiresAt.Sub(now) < TokenRenewalWindow {
		return TokenStateExpiringSoon
	}

	return TokenStateValid
}
