package meta

import (
	"time"

	"github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/metaclient"
	"github.com/qixdigital/ad-intelligence-api/internal/config"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// metaTimeLayout é o formato de timestamp da Graph API (offset sem dois pontos).
const metaTimeLayout = "2006-01-02T15:04:05-0700"

// MetaIntegrator traduz os objetos brutos da Graph API para o domínio
// canônico. Nenhum campo com nome da plataforma atravessa esta camada.
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) ListRemoteAdAccounts(accessToken string) ([]*domain.RemoteAdAccount, error) {
	adAccounts, err := s.Client.ListAdAccounts(accessToken)
	if err != nil {
		logrus.WithError(err).Error("sync: failed to get ad accounts from API")
		return nil, err
	}

	remote := make([]*domain.RemoteAdAccount, 0, len(adAccounts))
	for _, adAccount := range adAccounts {
		remote = append(remote, &domain.RemoteAdAccount{
			ExternalID:   adAccount.AccountID,
			Name:         adAccount.Name,
			Currency:     adAccount.Currency,
			Status:       adAccount.AccountStatus,
			BusinessName: adAccount.BusinessName,
		})
	}

	logrus.WithField("total_accounts", len(remote)).Debug("sync: successfully retrieved ad accounts")

	return remote, nil
}

func (s *MetaIntegrator) ListCampaigns(accountExternalID, accessToken string) ([]*domain.Campaign, error) {
	campaigns, err := s.Client.ListCampaigns(accountExternalID, accessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_external_id": accountExternalID,
			"error":               err.Error(),
		}).Error("sync: failed to get campaigns from API")
		return nil, err
	}

	result := make([]*domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		result = append(result, &domain.Campaign{
			ExternalID:     c.ID,
			Name:           c.Name,
			Status:         c.Status,
			Objective:      c.Objective,
			BuyingType:     c.BuyingType,
			StartTime:      s.parseTime(c.StartTime),
			EndTime:        s.parseTime(c.StopTime),
			DailyBudget:    s.parseBudget(c.ID, "daily_budget", c.DailyBudget),
			LifetimeBudget: s.parseBudget(c.ID, "lifetime_budget", c.LifetimeBudget),
			SpendCap:       s.parseBudget(c.ID, "spend_cap", c.SpendCap),
		})
	}

	return result, nil
}

func (s *MetaIntegrator) ListAdSets(campaignExternalID, accessToken string) ([]*domain.AdSet, error) {
	adSets, err := s.Client.ListAdSets(campaignExternalID, accessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_external_id": campaignExternalID,
			"error":                err.Error(),
		}).Error("sync: failed to get ad sets from API")
		return nil, err
	}

	result := make([]*domain.AdSet, 0, len(adSets))
	for _, a := range adSets {
		result = append(result, &domain.AdSet{
			ExternalID:     a.ID,
			Name:           a.Name,
			Status:         a.Status,
			StartTime:      s.parseTime(a.StartTime),
			EndTime:        s.parseTime(a.EndTime),
			DailyBudget:    s.parseBudget(a.ID, "daily_budget", a.DailyBudget),
			LifetimeBudget: s.parseBudget(a.ID, "lifetime_budget", a.LifetimeBudget),
			BillingEvent:   a.BillingEvent,
			Targeting:      a.Targeting,
		})
	}

	return result, nil
}

func (s *MetaIntegrator) ListAds(adSetExternalID, accessToken string) ([]*domain.Ad, error) {
	ads, err := s.Client.ListAds(adSetExternalID, accessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_set_external_id": adSetExternalID,
			"error":              err.Error(),
		}).Error("sync: failed to get ads from API")
		return nil, err
	}

	result := make([]*domain.Ad, 0, len(ads))
	for _, a := range ads {
		ad := &domain.Ad{
			ExternalID: a.ID,
			Name:       a.Name,
			Status:     a.Status,
		}

		if a.Creative != nil {
			ad.CreativeExternalID = &a.Creative.ID
			ad.ThumbnailURL = a.Creative.ThumbnailURL
			ad.BodyText = a.Creative.Body
			ad.Headline = a.Creative.Title
			ad.CallToAction = a.Creative.CallToActionType
		}

		result = append(result, ad)
	}

	return result, nil
}

func (s *MetaIntegrator) parseTime(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}

	parsed, err := time.Parse(metaTimeLayout, *value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"time_value": *value,
			"error":      err.Error(),
		}).Warn("sync: error converting platform timestamp")
		return nil
	}

	return &parsed
}

func (s *MetaIntegrator) parseBudget(externalID, field string, cents *string) *domain.DecimalCurrency {
	budget, err := domain.CentsToDecimal(cents)
	if err != nil {
		// Orçamento ilegível não derruba a sincronização do objeto inteiro.
		logrus.WithFields(logrus.Fields{
			"external_id": externalID,
			"field":       field,
			"value":       *cents,
			"error":       err.Error(),
		}).Warn("sync: error converting budget value")
		return nil
	}

	return budget
}
