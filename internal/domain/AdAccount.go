package domain

import (
	"time"
)

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount é a conta de anúncios de um cliente vinculada pela equipe.
// O engine de sincronização a consome, mas nunca a altera estruturalmente.
type AdAccount struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"client_id"`
	Platform   Platform        `json:"platform"`
	ExternalID string          `json:"external_id"`
	Name       string          `json:"name"`
	Status     AdAccountStatus `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// RemoteAdAccount é uma conta de anúncios como a plataforma a devolve,
// antes de ser vinculada a um cliente.
type RemoteAdAccount struct {
	ExternalID   string `json:"external_id"`
	Name         string `json:"name"`
	Currency     string `json:"currency"`
	Status       int    `json:"status"`
	BusinessName string `json:"business_name"`
}

type LinkAdAccountRequest struct {
	ClientID   string   `json:"client_id"`
	Platform   Platform `json:"platform"`
	ExternalID string   `json:"external_id"`
	Name       string   `json:"name"`
}
