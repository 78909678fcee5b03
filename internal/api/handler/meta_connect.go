package handler

import (
	"errors"
	"net/http"

	metadomain "github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/domain"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/connecting"
	"github.com/qixdigital/ad-intelligence-api/pkg/apiErrors"
	"github.com/qixdigital/ad-intelligence-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// GetAuthURL devolve a URL de consentimento da plataforma com um state novo
func GetAuthURL(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAuthURL")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		url, err := service.AuthorizationURL(userClaims.UserID)
		if err != nil {
			logrus.Error("Error building authorization url:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar URL de autorização", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(map[string]string{"url": url}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// MetaCallback troca o código de autorização por um token e o armazena
func MetaCallback(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - MetaCallback")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var callbackRequest struct {
			Code  string `json:"code"`
			State string `json:"state"`
		}
		if err := json.NewDecoder(r.Body).Decode(&callbackRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		token, err := service.HandleCallback(userClaims.UserID, callbackRequest.Code, callbackRequest.State)
		if err != nil {
			logrus.Error("Error handling callback:", err)
			writeConnectError(w, err, "Erro ao conectar com a plataforma")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(token); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListRemoteAdAccounts lista as contas de anúncios visíveis pelo token do usuário
func ListRemoteAdAccounts(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListRemoteAdAccounts")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		adAccounts, err := service.ListRemoteAdAccounts(userClaims.UserID)
		if err != nil {
			logrus.Error("Error listing remote accounts:", err)
			writeConnectError(w, err, "Erro ao listar contas da plataforma")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(adAccounts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeConnectError traduz os erros do fluxo de conexão para a resposta da API
func writeConnectError(w http.ResponseWriter, err error, fallback string) {
	var connectErr *connecting.ConnectError
	if errors.As(err, &connectErr) {
		apiErrors.WriteError(w, connectErr.Code, connectErr.Error(), nil)
		return
	}

	var exchangeErr *metadomain.AuthExchangeError
	if errors.As(err, &exchangeErr) {
		apiErrors.WriteError(w, apiErrors.ErrAuthExchange, exchangeErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
