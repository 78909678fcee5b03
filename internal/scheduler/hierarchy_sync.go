package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/qixdigital/ad-intelligence-api/internal/config"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/syncing"
	"github.com/sirupsen/logrus"
)

// HierarchySyncService gerencia o agendamento da sincronização hierárquica
// (campanhas, conjuntos e anúncios) de todas as contas ativas
type HierarchySyncService struct {
	scheduler           *gocron.Scheduler
	cfg                 *config.Config
	syncer              syncing.Syncer
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewHierarchySyncService cria uma nova instância do serviço de sincronização hierárquica
func NewHierarchySyncService(syncer syncing.Syncer, cfg *config.Config) *HierarchySyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   cfg.HierarchySync.CronSchedule,
		"max_concurrent":  cfg.HierarchySync.MaxConcurrentAccounts,
		"sync_enabled":    cfg.HierarchySync.Enabled,
		"sync_user_id":    cfg.HierarchySync.SyncUserID,
	}).Info("Configuração do agendador de sincronização hierárquica carregada")

	return &HierarchySyncService{
		scheduler:   scheduler,
		cfg:         cfg,
		syncer:      syncer,
		baseCtx:     context.Background(),
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *HierarchySyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.cfg.HierarchySync.Enabled {
		logrus.Info("Sincronização hierárquica desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.HierarchySync.CronSchedule).Info("Iniciando agendador de sincronização hierárquica")

	_, err := s.scheduler.Cron(s.cfg.HierarchySync.CronSchedule).Do(func() {
		s.runFullSync()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização hierárquica: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização hierárquica")
		s.scheduler.Stop()
	}()

	return nil
}

// runFullSync executa a sincronização de todas as contas ativas
func (s *HierarchySyncService) runFullSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização hierárquica já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização hierárquica de todas as contas ativas")

	result, err := s.syncer.SyncAll(s.baseCtx)
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização hierárquica")
		return
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"accounts":         result.Accounts,
		"campaigns_synced": result.CampaignsSynced,
		"failures":         len(result.Failures),
		"duration":         s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
	}).Info("Sincronização hierárquica concluída")
}

// TriggerManualSync inicia manualmente uma sincronização hierárquica
func (s *HierarchySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização hierárquica já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização hierárquica manual")
	go s.runFullSync()
}

// GetStatus retorna o status atual do agendador
func (s *HierarchySyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.cfg.HierarchySync.Enabled,
		"sync_cron":              s.cfg.HierarchySync.CronSchedule,
		"sync_max_concurrent":    s.cfg.HierarchySync.MaxConcurrentAccounts,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
