package aggregating

import (
	"context"
	"time"

	"github.com/qixdigital/ad-intelligence-api/infrastructure/repository"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	"github.com/qixdigital/ad-intelligence-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type Aggregator interface {
	Ingest(snapshots []*domain.SpendSnapshot) (*domain.IngestResult, error)
	IngestDaily(ctx context.Context) (*domain.IngestResult, error)
	Aggregate(startDate, endDate time.Time, clientID *string) ([]*domain.AggregatedStat, error)
}

type Service struct {
	provider     StatsProvider
	campaignRepo repository.CampaignRepository
	snapshotRepo repository.SpendSnapshotRepository
}

func NewService(
	provider StatsProvider,
	campaignRepo repository.CampaignRepository,
	snapshotRepo repository.SpendSnapshotRepository,
) Aggregator {
	return &Service{
		provider:     provider,
		campaignRepo: campaignRepo,
		snapshotRepo: snapshotRepo,
	}
}

// Ingest grava os snapshots recebidos. É o único caminho de escrita da tabela
// de gasto: o par (date, campaign_id) é sobrescrito, nunca duplicado.
func (s *Service) Ingest(snapshots []*domain.SpendSnapshot) (*domain.IngestResult, error) {
	processed := 0

	for _, snapshot := range snapshots {
		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": snapshot.CampaignID,
				"date":        snapshot.Date.Format(time.DateOnly),
				"error":       err.Error(),
			}).Error("ingest: failed to persist snapshot")
			return nil, err
		}

		processed++
	}

	return &domain.IngestResult{Processed: processed}, nil
}

// IngestDaily percorre as campanhas ativas, busca as métricas do dia no
// provedor configurado e as grava. Campanha cuja busca falhar é pulada; a
// próxima execução sobrescreve o dia de qualquer forma.
func (s *Service) IngestDaily(ctx context.Context) (*domain.IngestResult, error) {
	campaigns, err := s.campaignRepo.ListActiveCampaigns()
	if err != nil {
		return nil, err
	}

	snapshots := make([]*domain.SpendSnapshot, 0, len(campaigns))

	for _, campaign := range campaigns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		snapshot, err := s.provider.FetchDailyStats(campaign)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Warn("ingest: failed to fetch daily stats, skipping campaign")
			continue
		}

		if snapshot == nil {
			continue
		}

		snapshots = append(snapshots, snapshot)
	}

	result, err := s.Ingest(snapshots)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"campaigns": len(campaigns),
		"processed": result.Processed,
	}).Info("ingest: daily run completed")

	return result, nil
}

// Aggregate devolve as linhas somadas por (campanha, dia) no intervalo, já em
// unidades de moeda. ROAS de campanha sem gasto é zero, não divisão por zero:
// receita sem gasto atribuído não é retorno infinito.
func (s *Service) Aggregate(startDate, endDate time.Time, clientID *string) ([]*domain.AggregatedStat, error) {
	stats, err := s.snapshotRepo.Aggregate(startDate, endDate, clientID)
	if err != nil {
		return nil, err
	}

	for _, stat := range stats {
		stat.Spend = utils.RoundWithTwoDecimalPlace(stat.Spend)
		stat.Revenue = utils.RoundWithTwoDecimalPlace(stat.Revenue)

		if stat.Spend > 0 {
			stat.ROAS = utils.RoundWithTwoDecimalPlace(stat.Revenue / stat.Spend)
		}
	}

	return stats, nil
}
