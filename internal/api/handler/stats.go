package handler

import (
	"net/http"
	"time"

	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/aggregating"
	"github.com/qixdigital/ad-intelligence-api/pkg/apiErrors"
	"github.com/qixdigital/ad-intelligence-api/pkg/middleware"
	"github.com/qixdigital/ad-intelligence-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// GetStats devolve as linhas agregadas por (campanha, dia) no período pedido.
// Usuário com role CLIENT só enxerga o próprio cliente, seja qual for o
// client_id pedido na query.
func GetStats(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		startDate, endDate, err := parseStatsPeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var clientID *string
		if param := r.URL.Query().Get("client_id"); param != "" {
			clientID = &param
		}

		if userClaims.UserRoleID == middleware.RoleClient {
			clientID = userClaims.LinkedClientID
			if clientID == nil {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Usuário não está vinculado a um cliente", nil)
				return
			}
		}

		stats, err := service.Aggregate(startDate, endDate, clientID)
		if err != nil {
			logrus.Error("Error aggregating stats:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao agregar métricas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(stats); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// parseStatsPeriod lê start_date/end_date da query. Sem parâmetros, o período
// é o dos últimos 30 dias.
func parseStatsPeriod(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now()
	startDate := now.AddDate(0, 0, -30)
	endDate := now

	if param := r.URL.Query().Get("start_date"); param != "" {
		parsed, err := utils.ParseDate(param)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		startDate = *parsed
	}

	if param := r.URL.Query().Get("end_date"); param != "" {
		parsed, err := utils.ParseDate(param)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		endDate = *parsed
	}

	return startDate, endDate, nil
}
