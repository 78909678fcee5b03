package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/qixdigital/ad-intelligence-api/infrastructure/database/postgres"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	campaignsTable = "campaigns"
	adSetsTable    = "ad_sets"
	adsTable       = "ads"
)

type CampaignRepository interface {
	UpsertCampaign(campaign *domain.Campaign) (string, error)
	UpsertAdSet(adSet *domain.AdSet) (string, error)
	UpsertAd(ad *domain.Ad) (string, error)
	ListByAccountID(accountID string) ([]*domain.Campaign, error)
	ListActiveCampaigns() ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// UpsertCampaign insere ou atualiza a campanha pela chave (ad_account_id,
// external_id) e devolve o ID local, que os níveis inferiores usam como chave
// estrangeira. Rodar duas vezes com o mesmo payload não duplica nada.
func (r *campaignRepository) UpsertCampaign(campaign *domain.Campaign) (string, error) {
	query := squirrel.StatementBuilder.
		Insert(campaignsTable).
		Columns(
			"id", "ad_account_id", "external_id", "name", "status", "objective",
			"buying_type", "start_time", "end_time", "daily_budget",
			"lifetime_budget", "spend_cap",
		).
		Values(
			campaign.ID,
			campaign.AdAccountID,
			campaign.ExternalID,
			campaign.Name,
			campaign.Status,
			campaign.Objective,
			campaign.BuyingType,
			campaign.StartTime,
			campaign.EndTime,
			nullableBudget(campaign.DailyBudget),
			nullableBudget(campaign.LifetimeBudget),
			nullableBudget(campaign.SpendCap),
		).
		Suffix(`
			ON CONFLICT (ad_account_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				objective = EXCLUDED.objective,
				buying_type = EXCLUDED.buying_type,
				start_time = EXCLUDED.start_time,
				end_time = EXCLUDED.end_time,
				daily_budget = EXCLUDED.daily_budget,
				lifetime_budget = EXCLUDED.lifetime_budget,
				spend_cap = EXCLUDED.spend_cap,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	return r.upsert(query)
}

// UpsertAdSet insere ou atualiza o conjunto pela chave (campaign_id,
// external_id) e devolve o ID local.
func (r *campaignRepository) UpsertAdSet(adSet *domain.AdSet) (string, error) {
	query := squirrel.StatementBuilder.
		Insert(adSetsTable).
		Columns(
			"id", "campaign_id", "external_id", "name", "status", "start_time",
			"end_time", "daily_budget", "lifetime_budget", "billing_event",
			"targeting",
		).
		Values(
			adSet.ID,
			adSet.CampaignID,
			adSet.ExternalID,
			adSet.Name,
			adSet.Status,
			adSet.StartTime,
			adSet.EndTime,
			nullableBudget(adSet.DailyBudget),
			nullableBudget(adSet.LifetimeBudget),
			adSet.BillingEvent,
			nullableJSON(adSet.Targeting),
		).
		Suffix(`
			ON CONFLICT (campaign_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				start_time = EXCLUDED.start_time,
				end_time = EXCLUDED.end_time,
				daily_budget = EXCLUDED.daily_budget,
				lifetime_budget = EXCLUDED.lifetime_budget,
				billing_event = EXCLUDED.billing_event,
				targeting = EXCLUDED.targeting,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	return r.upsert(query)
}

// UpsertAd insere ou atualiza o anúncio pela chave (ad_set_id, external_id).
func (r *campaignRepository) UpsertAd(ad *domain.Ad) (string, error) {
	query := squirrel.StatementBuilder.
		Insert(adsTable).
		Columns(
			"id", "ad_set_id", "external_id", "name", "status",
			"creative_external_id", "thumbnail_url", "body_text", "headline",
			"call_to_action",
		).
		Values(
			ad.ID,
			ad.AdSetID,
			ad.ExternalID,
			ad.Name,
			ad.Status,
			ad.CreativeExternalID,
			ad.ThumbnailURL,
			ad.BodyText,
			ad.Headline,
			ad.CallToAction,
		).
		Suffix(`
			ON CONFLICT (ad_set_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				creative_external_id = EXCLUDED.creative_external_id,
				thumbnail_url = EXCLUDED.thumbnail_url,
				body_text = EXCLUDED.body_text,
				headline = EXCLUDED.headline,
				call_to_action = EXCLUDED.call_to_action,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	return r.upsert(query)
}

func (r *campaignRepository) upsert(query squirrel.InsertBuilder) (string, error) {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	var id string
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&id); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return "", fmt.Errorf("failed to execute query: %w", err)
	}

	return id, nil
}

func (r *campaignRepository) ListByAccountID(accountID string) ([]*domain.Campaign, error) {
	campaignsSQL, campaignsArgs, err := squirrel.
		Select(
			"id, ad_account_id, external_id, name, status, objective, " +
				"buying_type, start_time, end_time, daily_budget, " +
				"lifetime_budget, spend_cap, created_at, updated_at",
		).
		From(campaignsTable).
		Where(squirrel.Eq{"ad_account_id": accountID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.listCampaigns(campaignsSQL, campaignsArgs)
}

// ListActiveCampaigns devolve as campanhas ACTIVE de contas ACTIVE, o
// universo percorrido pela ingestão diária de gasto.
func (r *campaignRepository) ListActiveCampaigns() ([]*domain.Campaign, error) {
	campaignsSQL, campaignsArgs, err := squirrel.
		Select(
			"c.id, c.ad_account_id, c.external_id, c.name, c.status, " +
				"c.objective, c.buying_type, c.start_time, c.end_time, " +
				"c.daily_budget, c.lifetime_budget, c.spend_cap, " +
				"c.created_at, c.updated_at",
		).
		From(campaignsTable + " c").
		Join(adAccountsTable + " a ON c.ad_account_id = a.id").
		Where(squirrel.Eq{"c.status": "ACTIVE", "a.status": domain.AdAccountStatusActive}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.listCampaigns(campaignsSQL, campaignsArgs)
}

func (r *campaignRepository) listCampaigns(campaignsSQL string, campaignsArgs []interface{}) ([]*domain.Campaign, error) {
	rows, err := r.conn.Query(campaignsSQL, campaignsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)

	for rows.Next() {
		campaign := &domain.Campaign{}
		var dailyBudget, lifetimeBudget, spendCap decimal.NullDecimal

		if err := rows.Scan(
			&campaign.ID,
			&campaign.AdAccountID,
			&campaign.ExternalID,
			&campaign.Name,
			&campaign.Status,
			&campaign.Objective,
			&campaign.BuyingType,
			&campaign.StartTime,
			&campaign.EndTime,
			&dailyBudget,
			&lifetimeBudget,
			&spendCap,
			&campaign.CreatedAt,
			&campaign.UpdatedAt,
		); err != nil {
			return nil, err
		}

		campaign.DailyBudget = budgetFromNull(dailyBudget)
		campaign.LifetimeBudget = budgetFromNull(lifetimeBudget)
		campaign.SpendCap = budgetFromNull(spendCap)

		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

// nullableBudget entrega ao driver um NULL de verdade quando o orçamento não
// existe, preservando a distinção entre "sem orçamento" e "orçamento zero".
func nullableBudget(budget *domain.DecimalCurrency) interface{} {
	if budget == nil {
		return nil
	}
	return budget.Decimal
}

func budgetFromNull(value decimal.NullDecimal) *domain.DecimalCurrency {
	if !value.Valid {
		return nil
	}
	return &domain.DecimalCurrency{Decimal: value.Decimal}
}

func nullableJSON(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
