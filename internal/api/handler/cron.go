package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/qixdigital/ad-intelligence-api/internal/scheduler"
	"github.com/qixdigital/ad-intelligence-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeHierarchy = "hierarchy"
	CronJobTypeIngestion = "ingestion"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	HierarchySyncService  *scheduler.HierarchySyncService
	SpendIngestionService *scheduler.SpendIngestionService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeHierarchy:
			if services.HierarchySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização hierárquica não disponível", nil)
				return
			}
			services.HierarchySyncService.TriggerManualSync()

		case CronJobTypeIngestion:
			if services.SpendIngestionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de ingestão de gasto não disponível", nil)
				return
			}
			services.SpendIngestionService.TriggerManualRun()

		case CronJobTypeAll:
			if services.HierarchySyncService != nil {
				services.HierarchySyncService.TriggerManualSync()
			}
			if services.SpendIngestionService != nil {
				services.SpendIngestionService.TriggerManualRun()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Tipo de cron job inválido. Valores aceitos: hierarchy, ingestion, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}

		if services.HierarchySyncService != nil {
			status["hierarchy"] = services.HierarchySyncService.GetStatus()
		}

		if services.SpendIngestionService != nil {
			status["ingestion"] = services.SpendIngestionService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(status); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}
