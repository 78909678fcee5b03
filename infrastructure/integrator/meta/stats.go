package meta

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/domain"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// TokenSource entrega um token válido no momento da chamada. A renovação
// fica a cargo de quem fornece a função, não do provedor de métricas.
type TokenSource func() (string, error)

// StatsProvider busca as métricas de entrega do dia corrente de uma campanha
// direto da plataforma e as converte para o snapshot canônico em micros.
type StatsProvider struct {
	integrator *MetaIntegrator
	tokens     TokenSource
	currency   string
}

func NewStatsProvider(integrator *MetaIntegrator, tokens TokenSource, currency string) *StatsProvider {
	return &StatsProvider{
		integrator: integrator,
		tokens:     tokens,
		currency:   currency,
	}
}

func (p *StatsProvider) FetchDailyStats(campaign *domain.Campaign) (*domain.SpendSnapshot, error) {
	accessToken, err := p.tokens()
	if err != nil {
		return nil, err
	}

	insights, err := p.integrator.Client.ListInsights(campaign.ExternalID, accessToken, metadomain.InsightLevelCampaign, "today")
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_external_id": campaign.ExternalID,
			"error":                err.Error(),
		}).Error("ingest: failed to get campaign insights from API")
		return nil, err
	}

	// Campanha sem entrega no dia não produz linha de insight.
	if len(insights) == 0 {
		return nil, nil
	}

	insight := insights[0]

	// Gasto ilegível invalida o insight inteiro. Persistir zero no lugar
	// sobrescreveria a linha do dia com um valor fabricado.
	spend, err := strconv.ParseFloat(insight.Spend, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_external_id": campaign.ExternalID,
			"spend_value":          insight.Spend,
			"error":                err.Error(),
		}).Warn("ingest: error converting spend to float")
		return nil, errors.Wrapf(err, "gasto inválido %q", insight.Spend)
	}

	date, err := time.Parse(time.DateOnly, insight.DateStart)
	if err != nil {
		date = time.Now().UTC().Truncate(24 * time.Hour)
	}

	return &domain.SpendSnapshot{
		Date:          date,
		CampaignID:    campaign.ID,
		AdAccountID:   campaign.AdAccountID,
		SpendMicros:   domain.MicrosFromUnits(spend),
		Impressions:   p.parseMetric(campaign.ExternalID, "impressions", insight.Impressions),
		Clicks:        p.parseMetric(campaign.ExternalID, "clicks", insight.Clicks),
		Conversions:   p.parseMetric(campaign.ExternalID, "conversions", insight.Conversions),
		RevenueMicros: p.purchaseRevenue(campaign.ExternalID, insight.ActionValues),
		Currency:      p.currency,
	}, nil
}

func (p *StatsProvider) parseMetric(externalID, field, value string) int64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_external_id": externalID,
			"field":                field,
			"value":                value,
			"error":                err.Error(),
		}).Warn("ingest: error converting metric to integer")
		return 0
	}

	return parsed
}

// purchaseRevenue soma o valor monetário das ações de compra, a definição de
// receita atribuída usada no cálculo de ROAS.
func (p *StatsProvider) purchaseRevenue(externalID string, actionValues []metadomain.ActionValue) domain.MicroAmount {
	var revenue domain.MicroAmount

	for _, action := range actionValues {
		if action.ActionType != "purchase" && action.ActionType != "omni_purchase" {
			continue
		}

		value, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_external_id": externalID,
				"action_type":          action.ActionType,
				"action_value":         action.Value,
				"error":                err.Error(),
			}).Warn("ingest: error converting action value to float")
			continue
		}

		revenue += domain.MicrosFromUnits(value)
	}

	return revenue
}
