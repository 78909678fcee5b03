package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são as claims extraídas do bearer token emitido pelo portal interno.
// Este serviço apenas valida o token; emissão e gestão de usuários ficam no
// portal.
type Claims struct {
	UserID         string  `json:"user_id"`
	UserName       string  `json:"user_name"`
	UserRoleID     int     `json:"user_role_id"`
	LinkedClientID *string `json:"linked_client_id,omitempty"`
	jwt.RegisteredClaims
}
