package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/qixdigital/ad-intelligence-api/internal/config"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/aggregating"
	"github.com/sirupsen/logrus"
)

// SpendIngestionService gerencia o agendamento da ingestão diária de gasto
// das campanhas ativas
type SpendIngestionService struct {
	scheduler          *gocron.Scheduler
	cfg                *config.Config
	aggregator         aggregating.Aggregator
	baseCtx            context.Context
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewSpendIngestionService cria uma nova instância do serviço de ingestão de gasto
func NewSpendIngestionService(aggregator aggregating.Aggregator, cfg *config.Config) *SpendIngestionService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":     cfg.SpendIngestion.CronSchedule,
		"ingestion_enabled": cfg.SpendIngestion.Enabled,
		"provider":          cfg.SpendIngestion.Provider,
		"currency":          cfg.SpendIngestion.Currency,
	}).Info("Configuração do agendador de ingestão de gasto carregada")

	return &SpendIngestionService{
		scheduler:  scheduler,
		cfg:        cfg,
		aggregator: aggregator,
		baseCtx:    context.Background(),
		runRunning: false,
	}
}

// Start inicia o agendador
func (s *SpendIngestionService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.cfg.SpendIngestion.Enabled {
		logrus.Info("Ingestão de gasto desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.SpendIngestion.CronSchedule).Info("Iniciando agendador de ingestão de gasto")

	_, err := s.scheduler.Cron(s.cfg.SpendIngestion.CronSchedule).Do(func() {
		s.runIngestion()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ingestão de gasto: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de ingestão de gasto")
		s.scheduler.Stop()
	}()

	return nil
}

// runIngestion executa a ingestão das campanhas ativas
func (s *SpendIngestionService) runIngestion() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Ingestão de gasto já em andamento, ignorando")
		return
	}
	s.runRunning = true
	s.runMutex.Unlock()

	s.lastRunStartedAt = time.Now()

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.runMutex.Unlock()
	}()

	logrus.Info("Iniciando ingestão de gasto das campanhas ativas")

	result, err := s.aggregator.IngestDaily(s.baseCtx)
	if err != nil {
		logrus.WithError(err).Error("Erro na ingestão de gasto")
		return
	}

	s.lastRunCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"processed": result.Processed,
		"duration":  s.lastRunCompletedAt.Sub(s.lastRunStartedAt).String(),
	}).Info("Ingestão de gasto concluída")
}

// TriggerManualRun inicia manualmente uma ingestão de gasto
func (s *SpendIngestionService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Ingestão de gasto já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando ingestão de gasto manual")
	go s.runIngestion()
}

// GetStatus retorna o status atual do agendador
func (s *SpendIngestionService) GetStatus() map[string]any {
	return map[string]any{
		"ingestion_enabled":     s.cfg.SpendIngestion.Enabled,
		"ingestion_cron":        s.cfg.SpendIngestion.CronSchedule,
		"ingestion_provider":    s.cfg.SpendIngestion.Provider,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
