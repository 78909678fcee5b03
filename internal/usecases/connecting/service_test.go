package connecting

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/metaclient"
	metaclientmocks "github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/metaclient/mocks"
	repomocks "github.com/qixdigital/ad-intelligence-api/infrastructure/repository/mocks"
	"github.com/qixdigital/ad-intelligence-api/internal/config"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	"github.com/qixdigital/ad-intelligence-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(client metaclient.Client, tokenRepo *repomocks.MockPlatformTokenRepository, accountRepo *repomocks.MockAdAccountRepository) *Service {
	return &Service{
		cfg: &config.Config{
			Meta: config.Meta{
				RedirectURI: "https://app.example.com/callback",
			},
		},
		client:       client,
		tokenRepo:    tokenRepo,
		accountRepo:  accountRepo,
		states:       make(map[string]time.Time),
		refreshLocks: make(map[string]*sync.Mutex),
	}
}

func TestService_HandleCallback(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		setup    func(service *Service, client *metaclientmocks.MockClient, tokenRepo *repomocks.MockPlatformTokenRepository) string
		validate func(t *testing.T, token *domain.PlatformToken, err error)
	}{
		{
			name: "Fluxo completo - state válido troca o código e armazena o token",
			code: "auth-code-1",
			setup: func(service *Service, client *metaclientmocks.MockClient, tokenRepo *repomocks.MockPlatformTokenRepository) string {
				state, err := service.mintState()
				assert.NoError(t, err)

				client.EXPECT().
					ExchangeCode("auth-code-1", "https://app.example.com/callback").
					Return(&metaclient.TokenResponse{
						AccessToken: "long-lived-token",
						ExpiresIn:   5184000,
					}, nil)

				tokenRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

				return state
			},
			validate: func(t *testing.T, token *domain.PlatformToken, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "long-lived-token", token.AccessToken)
				assert.Equal(t, domain.PlatformMeta, token.Platform)
				assert.NotNil(t, token.ExpiresAt)
				assert.True(t, token.ExpiresAt.After(time.Now().Add(24*time.Hour)))
			},
		},
		{
			name: "State desconhecido - rejeita o callback",
			code: "auth-code-1",
			setup: func(service *Service, client *metaclientmocks.MockClient, tokenRepo *repomocks.MockPlatformTokenRepository) string {
				return "state-nunca-emitido"
			},
			validate: func(t *testing.T, token *domain.PlatformToken, err error) {
				assert.Nil(t, token)

				var connectErr *ConnectError
				assert.ErrorAs(t, err, &connectErr)
				assert.Equal(t, apiErrors.ErrInvalidOAuthState, connectErr.Code)
				assert.ErrorIs(t, err, ErrInvalidState)
			},
		},
		{
			name: "Código ausente - rejeita antes de consumir o state",
			code: "",
			setup: func(service *Service, client *metaclientmocks.MockClient, tokenRepo *repomocks.MockPlatformTokenRepository) string {
				state, err := service.mintState()
				assert.NoError(t, err)
				return state
			},
			validate: func(t *testing.T, token *domain.PlatformToken, err error) {
				assert.Nil(t, token)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
		{
			name: "Troca recusada pela plataforma - erro propagado, nada gravado",
			code: "auth-code-1",
			setup: func(service *Service, client *metaclientmocks.MockClient, tokenRepo *repomocks.MockPlatformTokenRepository) string {
				state, err := service.mintState()
				assert.NoError(t, err)

				client.EXPECT().
					ExchangeCode("auth-code-1", "https://app.example.com/callback").
					Return(nil, errors.New("invalid authorization code"))

				return state
			},
			validate: func(t *testing.T, token *domain.PlatformToken, err error) {
				assert.Nil(t, token)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := metaclientmocks.NewMockClient(ctrl)
			tokenRepo := repomocks.NewMockPlatformTokenRepository(ctrl)

			service := newTestService(client, tokenRepo, nil)

			state := tt.setup(service, client, tokenRepo)

			token, err := service.HandleCallback("user-1", tt.code, state)
			tt.validate(t, token, err)
		})
	}
}

func TestService_HandleCallback_StateSingleUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := metaclientmocks.NewMockClient(ctrl)
	tokenRepo := repomocks.NewMockPlatformTokenRepository(ctrl)

	service := newTestService(client, tokenRepo, nil)

	state, err := service.mintState()
	assert.NoError(t, err)

	client.EXPECT().
		ExchangeCode("auth-code-1", "https://app.example.com/callback").
		Return(&metaclient.TokenResponse{AccessToken: "token"}, nil)

	tokenRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	_, err = service.HandleCallback("user-1", "auth-code-1", state)
	assert.NoError(t, err)

	// Segundo uso do mesmo state é rejeitado
	_, err = service.HandleCallback("user-1", "auth-code-2", state)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestService_ConsumeState_Expired(t *testing.T) {
	service := newTestService(nil, nil, nil)

	state, err := service.mintState()
	assert.NoError(t, err)

	// Recua a emissão para além da validade
	service.statesMu.Lock()
	service.states[state] = time.Now().Add(-stateTTL - time.Minute)
	service.statesMu.Unlock()

	assert.False(t, service.consumeState(state))
}

func TestService_GetValidToken(t *testing.T) {
	futureExpiry := time.Now().Add(30 * 24 * time.Hour)
	soonExpiry := time.Now().Add(6 * time.Hour)
	pastExpiry := time.Now().Add(-time.Hour)

	tests := []struct {
		name     string
		setup    func(client *metaclientmocks.MockClient, tokenRepo *repomocks.MockPlatformTokenRepository)
		validate func(t *testing.T, token *domain.PlatformToken, err error)
	}{
		{
			name: "Token válido longe da expiração - devolvido sem renovação",
			setup: func(client *metaclientmocks.MockClient, tokenRepo *repomocks.MockPlatformTokenRepository) {
				tokenRepo.EXPECT().
					GetByUserAndPlatform("user-1", domain.PlatformMeta).
					Return(&domain.PlatformToken{
						UserID:      "user-1",
						Platform:    domain.PlatformMeta,
						AccessToken: "current-token",
						ExpiresAt:   &futureExpiry,
					}, nil)
			},
			validate: func(t *testing.T, token *domain.PlatformToken, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "current-token", token.AccessToken)
			},
		},
		{
			name: "Token na janela de renovação - renovado e persistido",
			setup: func(client *metaclientmocks.MockClient, tokenRepo *repomocks.MockPlatformTokenRepository) {
				tokenRepo.EXPECT().
					GetByUserAndPlatform("user-1", domain.PlatformMeta).
					Return(&domain.PlatformToken{
						UserID:      "user-1",
						Platform:    domain.PlatformMeta,
						AccessToken: "current-token",
						ExpiresAt:   &soonExpiry,
					}, nil)

				client.EXPECT().
					ExtendToken("current-token").
					Return(&metaclient.TokenResponse{
						AccessToken: "extended-token",
						ExpiresIn:   5184000,
					}, nil)

				tokenRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, token *domain.PlatformToken, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "extended-token", token.AccessToken)
			},
		},
		{
			name: "Renovação recusada - token atual continua em uso",
			setup: func(client *metaclientmocks.MockClient, tokenRepo *repomocks.MockPlatformTokenRepository) {
				tokenRepo.EXPECT().
					GetByUserAndPlatform("user-1", domain.PlatformMeta).
					Return(&domain.PlatformToken{
						UserID:      "user-1",
						Platform:    domain.PlatformMeta,
						AccessToken: "current-token",
						ExpiresAt:   &soonExpiry,
					}, nil)

				client.EXPECT().
					ExtendToken("current-token").
					Return(nil, errors.New("platform unavailable"))
			},
			validate: func(t *testing.T, token *domain.PlatformToken, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "current-token", token.AccessToken)
			},
		},
		{
			name: "Token expirado - exige reconexão, sem tentativa de renovação",
			setup: func(client *metaclientmocks.MockClient, tokenRepo *repomocks.MockPlatformTokenRepository) {
				tokenRepo.EXPECT().
					GetByUserAndPlatform("user-1", domain.PlatformMeta).
					Return(&domain.PlatformToken{
						UserID:      "user-1",
						Platform:    domain.PlatformMeta,
						AccessToken: "stale-token",
						ExpiresAt:   &pastExpiry,
					}, nil)
			},
			validate: func(t *testing.T, token *domain.PlatformToken, err error) {
				assert.Nil(t, token)

				var connectErr *ConnectError
				assert.ErrorAs(t, err, &connectErr)
				assert.Equal(t, apiErrors.ErrPlatformTokenExpired, connectErr.Code)
				assert.ErrorIs(t, err, ErrTokenExpired)
			},
		},
		{
			name: "Usuário sem token armazenado - exige conexão",
			setup: func(client *metaclientmocks.MockClient, tokenRepo *repomocks.MockPlatformTokenRepository) {
				tokenRepo.EXPECT().
					GetByUserAndPlatform("user-1", domain.PlatformMeta).
					Return(nil, nil)
			},
			validate: func(t *testing.T, token *domain.PlatformToken, err error) {
				assert.Nil(t, token)
				assert.ErrorIs(t, err, ErrTokenNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := metaclientmocks.NewMockClient(ctrl)
			tokenRepo := repomocks.NewMockPlatformTokenRepository(ctrl)

			service := newTestService(client, tokenRepo, nil)

			tt.setup(client, tokenRepo)

			token, err := service.GetValidToken("user-1", domain.PlatformMeta)
			tt.validate(t, token, err)
		})
	}
}

func TestService_LinkAdAccount(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.LinkAdAccountRequest
		setup    func(accountRepo *repomocks.MockAdAccountRepository)
		validate func(t *testing.T, account *domain.AdAccount, err error)
	}{
		{
			name: "Vínculo válido - conta gravada como ativa com plataforma padrão",
			req: &domain.LinkAdAccountRequest{
				ClientID:   "client-1",
				ExternalID: "act_123",
				Name:       "Conta Principal",
			},
			setup: func(accountRepo *repomocks.MockAdAccountRepository) {
				accountRepo.EXPECT().
					Save(gomock.Any()).
					DoAndReturn(func(account *domain.AdAccount) error {
						assert.Equal(t, domain.PlatformMeta, account.Platform)
						assert.Equal(t, domain.AdAccountStatusActive, account.Status)
						assert.NotEmpty(t, account.ID)
						return nil
					})
			},
			validate: func(t *testing.T, account *domain.AdAccount, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "client-1", account.ClientID)
			},
		},
		{
			name: "Campos obrigatórios ausentes - rejeitado sem tocar o banco",
			req: &domain.LinkAdAccountRequest{
				ClientID: "client-1",
			},
			setup: func(accountRepo *repomocks.MockAdAccountRepository) {},
			validate: func(t *testing.T, account *domain.AdAccount, err error) {
				assert.Nil(t, account)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountRepo := repomocks.NewMockAdAccountRepository(ctrl)

			service := newTestService(nil, nil, accountRepo)

			tt.setup(accountRepo)

			account, err := service.LinkAdAccount(tt.req)
			tt.validate(t, account, err)
		})
	}
}
