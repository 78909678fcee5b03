package domain

// Insight é uma linha de /insights. A Graph API devolve métricas numéricas
// como strings.
type Insight struct {
	DateStart    string        `json:"date_start"`
	DateStop     string        `json:"date_stop"`
	Spend        string        `json:"spend"`
	Impressions  string        `json:"impressions"`
	Clicks       string        `json:"clicks"`
	Conversions  string        `json:"conversions"`
	ActionValues []ActionValue `json:"action_values"`
}

// ActionValue carrega o valor monetário atribuído a um tipo de ação
// (ex.: purchase), usado para derivar receita.
type ActionValue struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightLevel define o nível de agregação pedido à API de insights.
type InsightLevel string

const (
	InsightLevelCampaign InsightLevel = "campaign"
	InsightLevelAdSet    InsightLevel = "adset"
	InsightLevelAd       InsightLevel = "ad"
)
