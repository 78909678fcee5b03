package domain

import (
	"time"
)

// SpendSnapshot é o resumo diário de performance de uma campanha, a unidade
// de granularidade da agregação. A chave composta (date, campaign_id) garante
// que correções da plataforma sobrescrevam em vez de duplicar.
type SpendSnapshot struct {
	Date          time.Time   `json:"date"`
	CampaignID    string      `json:"campaign_id"`
	AdAccountID   string      `json:"ad_account_id"`
	SpendMicros   MicroAmount `json:"spend_micros"`
	Impressions   int64       `json:"impressions"`
	Clicks        int64       `json:"clicks"`
	Conversions   int64       `json:"conversions"`
	RevenueMicros MicroAmount `json:"revenue_micros"`
	Currency      string      `json:"currency"`
}

// AggregatedStat é uma linha agregada por (campanha, dia) com nomes legíveis,
// já convertida para unidades de moeda na fronteira do relatório.
type AggregatedStat struct {
	Date         time.Time `json:"date"`
	CampaignID   string    `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	ClientName   string    `json:"client_name"`
	Spend        float64   `json:"spend"`
	Revenue      float64   `json:"revenue"`
	ROAS         float64   `json:"roas"`
	Impressions  int64     `json:"impressions"`
	Clicks       int64     `json:"clicks"`
	Conversions  int64     `json:"conversions"`
}

type IngestResult struct {
	Processed int `json:"processed"`
}
