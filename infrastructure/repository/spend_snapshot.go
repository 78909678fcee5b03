package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/qixdigital/ad-intelligence-api/infrastructure/database/postgres"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
)

const spendSnapshotsTable = "spend_snapshots"

type SpendSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.SpendSnapshot) error
	Aggregate(startDate, endDate time.Time, clientID *string) ([]*domain.AggregatedStat, error)
}

type spendSnapshotRepository struct {
	conn *postgres.Connection
}

func NewSpendSnapshotRepository(conn *postgres.Connection) SpendSnapshotRepository {
	return &spendSnapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava o snapshot do par (date, campaign_id). Uma correção
// retroativa da plataforma sobrescreve a linha do dia em vez de duplicá-la.
func (r *spendSnapshotRepository) SaveOrUpdate(snapshot *domain.SpendSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert(spendSnapshotsTable).
		Columns(
			"date", "campaign_id", "ad_account_id", "spend_micros",
			"impressions", "clicks", "conversions", "revenue_micros", "currency",
		).
		Values(
			snapshot.Date,
			snapshot.CampaignID,
			snapshot.AdAccountID,
			int64(snapshot.SpendMicros),
			snapshot.Impressions,
			snapshot.Clicks,
			snapshot.Conversions,
			int64(snapshot.RevenueMicros),
			snapshot.Currency,
		).
		Suffix(`
			ON CONFLICT (date, campaign_id) DO UPDATE SET
				ad_account_id = EXCLUDED.ad_account_id,
				spend_micros = EXCLUDED.spend_micros,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				conversions = EXCLUDED.conversions,
				revenue_micros = EXCLUDED.revenue_micros,
				currency = EXCLUDED.currency,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// Aggregate soma os snapshots por (campanha, dia) no intervalo pedido. Os
// joins são LEFT para que snapshot órfão apareça com nomes 'Unknown' em vez
// de sumir do relatório. As somas saem em micros; a conversão para unidades
// de moeda acontece na camada de cima.
func (r *spendSnapshotRepository) Aggregate(startDate, endDate time.Time, clientID *string) ([]*domain.AggregatedStat, error) {
	queryBuilder := squirrel.
		Select(
			"s.date",
			"s.campaign_id",
			"COALESCE(c.name, 'Unknown') AS campaign_name",
			"COALESCE(cl.name, 'Unknown') AS client_name",
			"SUM(s.spend_micros)",
			"SUM(s.revenue_micros)",
			"SUM(s.impressions)",
			"SUM(s.clicks)",
			"SUM(s.conversions)",
		).
		From(spendSnapshotsTable+" s").
		LeftJoin(campaignsTable+" c ON s.campaign_id = c.id").
		LeftJoin(adAccountsTable+" a ON s.ad_account_id = a.id").
		LeftJoin("clients cl ON a.client_id = cl.id").
		Where(squirrel.GtOrEq{"s.date": startDate}).
		Where(squirrel.LtOrEq{"s.date": endDate}).
		GroupBy("s.date", "s.campaign_id", "c.name", "cl.name").
		OrderBy("s.date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if clientID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.client_id": *clientID})
	}

	statsSQL, statsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(statsSQL, statsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.AggregatedStat, 0)

	for rows.Next() {
		stat := &domain.AggregatedStat{}
		var spendMicros, revenueMicros int64

		if err := rows.Scan(
			&stat.Date,
			&stat.CampaignID,
			&stat.CampaignName,
			&stat.ClientName,
			&spendMicros,
			&revenueMicros,
			&stat.Impressions,
			&stat.Clicks,
			&stat.Conversions,
		); err != nil {
			return nil, err
		}

		stat.Spend = domain.MicroAmount(spendMicros).ToUnits()
		stat.Revenue = domain.MicroAmount(revenueMicros).ToUnits()

		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
