package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/connecting"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/syncing"
	"github.com/qixdigital/ad-intelligence-api/pkg/apiErrors"
	"github.com/qixdigital/ad-intelligence-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// LinkAdAccount vincula uma conta de anúncios externa a um cliente
func LinkAdAccount(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - LinkAdAccount")

		var linkRequest domain.LinkAdAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&linkRequest); err != nil {
			err = errors.Wrap(err, "erro ao decodificar corpo da requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		account, err := service.LinkAdAccount(&linkRequest)
		if err != nil {
			logrus.Error("Error linking account:", err)
			writeConnectError(w, err, "Erro ao vincular conta")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(account); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListClientAccounts lista as contas vinculadas de um cliente
func ListClientAccounts(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		accounts, err := service.ListAccountsByClientID(clientID)
		if err != nil {
			logrus.Error("Error listing client accounts:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar contas no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// SyncAdAccount dispara a sincronização hierárquica de uma conta usando o
// token do usuário que disparou
func SyncAdAccount(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncAdAccount")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		result, err := service.SyncAccountByID(r.Context(), accountID, userClaims.UserID)
		if err != nil {
			logrus.Error("Error syncing account:", err)
			writeSyncError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListAccountCampaigns lista as campanhas persistidas de uma conta
func ListAccountCampaigns(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		campaigns, err := service.ListCampaigns(accountID)
		if err != nil {
			logrus.Error("Error listing campaigns:", err)
			writeSyncError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeSyncError traduz os erros de sincronização para a resposta da API
func writeSyncError(w http.ResponseWriter, err error) {
	var syncErr *syncing.AccountSyncError
	if stderrors.As(err, &syncErr) {
		apiErrors.WriteError(w, syncErr.Code, syncErr.Error(), nil)
		return
	}

	var connectErr *connecting.ConnectError
	if stderrors.As(err, &connectErr) {
		apiErrors.WriteError(w, connectErr.Code, connectErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar conta", nil)
}
