package domain

import (
	"encoding/json"
	"time"
)

// Campaign é uma campanha da plataforma persistida localmente. O external_id
// atribuído pela plataforma é a chave de idempotência dos upserts; o ID local
// existe apenas como chave estrangeira para os níveis inferiores.
type Campaign struct {
	ID             string           `json:"id"`
	AdAccountID    string           `json:"ad_account_id"`
	ExternalID     string           `json:"external_id"`
	Name           string           `json:"name"`
	Status         string           `json:"status"`
	Objective      string           `json:"objective"`
	BuyingType     string           `json:"buying_type"`
	StartTime      *time.Time       `json:"start_time"`
	EndTime        *time.Time       `json:"end_time"`
	DailyBudget    *DecimalCurrency `json:"daily_budget"`
	LifetimeBudget *DecimalCurrency `json:"lifetime_budget"`
	SpendCap       *DecimalCurrency `json:"spend_cap"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// AdSet é a unidade de segmentação e orçamento abaixo de uma campanha.
// Targeting é persistido como payload opaco.
type AdSet struct {
	ID             string           `json:"id"`
	CampaignID     string           `json:"campaign_id"`
	ExternalID     string           `json:"external_id"`
	Name           string           `json:"name"`
	Status         string           `json:"status"`
	StartTime      *time.Time       `json:"start_time"`
	EndTime        *time.Time       `json:"end_time"`
	DailyBudget    *DecimalCurrency `json:"daily_budget"`
	LifetimeBudget *DecimalCurrency `json:"lifetime_budget"`
	BillingEvent   *string          `json:"billing_event"`
	Targeting      json.RawMessage  `json:"targeting"`
}

// Ad é um anúncio com os campos do criativo achatados no próprio registro.
type Ad struct {
	ID                 string  `json:"id"`
	AdSetID            string  `json:"ad_set_id"`
	ExternalID         string  `json:"external_id"`
	Name               string  `json:"name"`
	Status             string  `json:"status"`
	CreativeExternalID *string `json:"creative_external_id"`
	ThumbnailURL       *string `json:"thumbnail_url"`
	BodyText           *string `json:"body_text"`
	Headline           *string `json:"headline"`
	CallToAction       *string `json:"call_to_action"`
}
