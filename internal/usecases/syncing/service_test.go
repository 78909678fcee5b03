package syncing

import (
	"context"
	"errors"
	"testing"

	repomocks "github.com/qixdigital/ad-intelligence-api/infrastructure/repository/mocks"
	"github.com/qixdigital/ad-intelligence-api/internal/config"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	connectingmocks "github.com/qixdigital/ad-intelligence-api/internal/usecases/connecting/mocks"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/syncing/mocks"
	"github.com/qixdigital/ad-intelligence-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		HierarchySync: config.HierarchySync{
			SyncUserID:            "user-admin",
			MaxConcurrentAccounts: 2,
		},
	}
}

func TestService_SyncAccount(t *testing.T) {
	account := &domain.AdAccount{
		ID:         "acc-local-1",
		ExternalID: "act_123",
		Platform:   domain.PlatformMeta,
		Name:       "Conta Principal",
	}

	dailyBudget := domain.NewDecimalCurrency(50.00)

	tests := []struct {
		name     string
		setup    func(fetcher *mocks.MockPlatformFetcher, campaignRepo *repomocks.MockCampaignRepository)
		validate func(t *testing.T, result *domain.AccountSyncResult, err error)
	}{
		{
			name: "Hierarquia completa - campanha Summer com conjunto e anúncio sincronizados",
			setup: func(fetcher *mocks.MockPlatformFetcher, campaignRepo *repomocks.MockCampaignRepository) {
				fetcher.EXPECT().
					ListCampaigns("act_123", "token-abc").
					Return([]*domain.Campaign{
						{
							ExternalID:  "c-100",
							Name:        "Summer",
							Status:      "ACTIVE",
							DailyBudget: &dailyBudget,
						},
					}, nil)

				// O upsert devolve o ID local, que vira a FK dos conjuntos
				campaignRepo.EXPECT().
					UpsertCampaign(gomock.Any()).
					DoAndReturn(func(campaign *domain.Campaign) (string, error) {
						assert.Equal(t, "acc-local-1", campaign.AdAccountID)
						assert.Equal(t, "c-100", campaign.ExternalID)
						assert.True(t, campaign.DailyBudget.Equal(dailyBudget.Decimal))
						return "camp-db-1", nil
					})

				fetcher.EXPECT().
					ListAdSets("c-100", "token-abc").
					Return([]*domain.AdSet{
						{ExternalID: "as-200", Name: "Conjunto A", Status: "ACTIVE"},
					}, nil)

				campaignRepo.EXPECT().
					UpsertAdSet(gomock.Any()).
					DoAndReturn(func(adSet *domain.AdSet) (string, error) {
						assert.Equal(t, "camp-db-1", adSet.CampaignID)
						return "adset-db-1", nil
					})

				fetcher.EXPECT().
					ListAds("as-200", "token-abc").
					Return([]*domain.Ad{
						{ExternalID: "ad-300", Name: "Anúncio A", Status: "ACTIVE"},
					}, nil)

				campaignRepo.EXPECT().
					UpsertAd(gomock.Any()).
					DoAndReturn(func(ad *domain.Ad) (string, error) {
						assert.Equal(t, "adset-db-1", ad.AdSetID)
						return "ad-db-1", nil
					})
			},
			validate: func(t *testing.T, result *domain.AccountSyncResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.CampaignsSynced)
				assert.Equal(t, "acc-local-1", result.AccountID)
			},
		},
		{
			name: "Falha ao listar campanhas - aborta a conta inteira com erro tipado",
			setup: func(fetcher *mocks.MockPlatformFetcher, campaignRepo *repomocks.MockCampaignRepository) {
				fetcher.EXPECT().
					ListCampaigns("act_123", "token-abc").
					Return(nil, errors.New("rate limit"))
			},
			validate: func(t *testing.T, result *domain.AccountSyncResult, err error) {
				assert.Nil(t, result)

				var syncErr *AccountSyncError
				assert.ErrorAs(t, err, &syncErr)
				assert.Equal(t, apiErrors.ErrAccountSync, syncErr.Code)
				assert.ErrorIs(t, err, ErrCampaignListFailed)
			},
		},
		{
			name: "Falha ao listar conjuntos - campanha fica gravada e a subárvore é pulada",
			setup: func(fetcher *mocks.MockPlatformFetcher, campaignRepo *repomocks.MockCampaignRepository) {
				fetcher.EXPECT().
					ListCampaigns("act_123", "token-abc").
					Return([]*domain.Campaign{{ExternalID: "c-100", Name: "Summer"}}, nil)

				campaignRepo.EXPECT().
					UpsertCampaign(gomock.Any()).
					Return("camp-db-1", nil)

				fetcher.EXPECT().
					ListAdSets("c-100", "token-abc").
					Return(nil, errors.New("timeout"))

				// Nenhum UpsertAdSet: a degradação não derruba a execução
			},
			validate: func(t *testing.T, result *domain.AccountSyncResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.CampaignsSynced)
			},
		},
		{
			name: "Degradação isolada - subárvore de uma campanha falha e a outra sincroniza inteira",
			setup: func(fetcher *mocks.MockPlatformFetcher, campaignRepo *repomocks.MockCampaignRepository) {
				fetcher.EXPECT().
					ListCampaigns("act_123", "token-abc").
					Return([]*domain.Campaign{
						{ExternalID: "c-100", Name: "Summer"},
						{ExternalID: "c-200", Name: "Winter"},
					}, nil)

				campaignRepo.EXPECT().
					UpsertCampaign(gomock.Any()).
					DoAndReturn(func(campaign *domain.Campaign) (string, error) {
						if campaign.ExternalID == "c-100" {
							return "camp-db-1", nil
						}
						return "camp-db-2", nil
					}).
					Times(2)

				// A primeira campanha perde a subárvore, mas fica gravada
				fetcher.EXPECT().
					ListAdSets("c-100", "token-abc").
					Return(nil, errors.New("timeout"))

				// A segunda não é afetada e desce até os anúncios
				fetcher.EXPECT().
					ListAdSets("c-200", "token-abc").
					Return([]*domain.AdSet{
						{ExternalID: "as-210", Name: "Conjunto B", Status: "ACTIVE"},
					}, nil)

				campaignRepo.EXPECT().
					UpsertAdSet(gomock.Any()).
					DoAndReturn(func(adSet *domain.AdSet) (string, error) {
						assert.Equal(t, "camp-db-2", adSet.CampaignID)
						return "adset-db-2", nil
					})

				fetcher.EXPECT().
					ListAds("as-210", "token-abc").
					Return([]*domain.Ad{
						{ExternalID: "ad-310", Name: "Anúncio B", Status: "ACTIVE"},
					}, nil)

				campaignRepo.EXPECT().
					UpsertAd(gomock.Any()).
					DoAndReturn(func(ad *domain.Ad) (string, error) {
						assert.Equal(t, "adset-db-2", ad.AdSetID)
						return "ad-db-2", nil
					})
			},
			validate: func(t *testing.T, result *domain.AccountSyncResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2, result.CampaignsSynced)
			},
		},
		{
			name: "Falha ao listar anúncios - conjunto fica gravado e a subárvore é pulada",
			setup: func(fetcher *mocks.MockPlatformFetcher, campaignRepo *repomocks.MockCampaignRepository) {
				fetcher.EXPECT().
					ListCampaigns("act_123", "token-abc").
					Return([]*domain.Campaign{{ExternalID: "c-100", Name: "Summer"}}, nil)

				campaignRepo.EXPECT().
					UpsertCampaign(gomock.Any()).
					Return("camp-db-1", nil)

				fetcher.EXPECT().
					ListAdSets("c-100", "token-abc").
					Return([]*domain.AdSet{{ExternalID: "as-200", Name: "Conjunto A"}}, nil)

				campaignRepo.EXPECT().
					UpsertAdSet(gomock.Any()).
					Return("adset-db-1", nil)

				fetcher.EXPECT().
					ListAds("as-200", "token-abc").
					Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, result *domain.AccountSyncResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.CampaignsSynced)
			},
		},
		{
			name: "Falha de persistência da campanha - aborta com erro de banco",
			setup: func(fetcher *mocks.MockPlatformFetcher, campaignRepo *repomocks.MockCampaignRepository) {
				fetcher.EXPECT().
					ListCampaigns("act_123", "token-abc").
					Return([]*domain.Campaign{{ExternalID: "c-100", Name: "Summer"}}, nil)

				campaignRepo.EXPECT().
					UpsertCampaign(gomock.Any()).
					Return("", errors.New("connection refused"))
			},
			validate: func(t *testing.T, result *domain.AccountSyncResult, err error) {
				assert.Nil(t, result)

				var syncErr *AccountSyncError
				assert.ErrorAs(t, err, &syncErr)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, syncErr.Code)
				assert.ErrorIs(t, err, ErrPersistence)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			fetcher := mocks.NewMockPlatformFetcher(ctrl)
			campaignRepo := repomocks.NewMockCampaignRepository(ctrl)

			service := &Service{
				cfg:          newTestConfig(),
				fetcher:      fetcher,
				campaignRepo: campaignRepo,
			}

			tt.setup(fetcher, campaignRepo)

			result, err := service.SyncAccount(context.Background(), account, "token-abc")
			tt.validate(t, result, err)
		})
	}
}

func TestService_SyncAccount_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockPlatformFetcher(ctrl)
	campaignRepo := repomocks.NewMockCampaignRepository(ctrl)

	service := &Service{
		cfg:          newTestConfig(),
		fetcher:      fetcher,
		campaignRepo: campaignRepo,
	}

	fetcher.EXPECT().
		ListCampaigns("act_123", "token-abc").
		Return([]*domain.Campaign{{ExternalID: "c-100"}}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	account := &domain.AdAccount{ID: "acc-local-1", ExternalID: "act_123"}

	result, err := service.SyncAccount(ctx, account, "token-abc")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_SyncAccountByID(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
		setup     func(fetcher *mocks.MockPlatformFetcher, connector *connectingmocks.MockConnector, accountRepo *repomocks.MockAdAccountRepository, campaignRepo *repomocks.MockCampaignRepository)
		validate  func(t *testing.T, result *domain.AccountSyncResult, err error)
	}{
		{
			name:      "Conta existente - resolve token do usuário e sincroniza",
			accountID: "acc-local-1",
			setup: func(fetcher *mocks.MockPlatformFetcher, connector *connectingmocks.MockConnector, accountRepo *repomocks.MockAdAccountRepository, campaignRepo *repomocks.MockCampaignRepository) {
				accountRepo.EXPECT().
					GetAccountByID("acc-local-1").
					Return(&domain.AdAccount{
						ID:         "acc-local-1",
						ExternalID: "act_123",
						Platform:   domain.PlatformMeta,
					}, nil)

				connector.EXPECT().
					GetValidToken("user-1", domain.PlatformMeta).
					Return(&domain.PlatformToken{AccessToken: "token-abc"}, nil)

				fetcher.EXPECT().
					ListCampaigns("act_123", "token-abc").
					Return([]*domain.Campaign{}, nil)
			},
			validate: func(t *testing.T, result *domain.AccountSyncResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, result.CampaignsSynced)
			},
		},
		{
			name:      "Conta inexistente - devolve erro tipado de conta não encontrada",
			accountID: "acc-missing",
			setup: func(fetcher *mocks.MockPlatformFetcher, connector *connectingmocks.MockConnector, accountRepo *repomocks.MockAdAccountRepository, campaignRepo *repomocks.MockCampaignRepository) {
				accountRepo.EXPECT().
					GetAccountByID("acc-missing").
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.AccountSyncResult, err error) {
				assert.Nil(t, result)

				var syncErr *AccountSyncError
				assert.ErrorAs(t, err, &syncErr)
				assert.Equal(t, apiErrors.ErrAccountNotFound, syncErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			fetcher := mocks.NewMockPlatformFetcher(ctrl)
			connector := connectingmocks.NewMockConnector(ctrl)
			accountRepo := repomocks.NewMockAdAccountRepository(ctrl)
			campaignRepo := repomocks.NewMockCampaignRepository(ctrl)

			service := &Service{
				cfg:          newTestConfig(),
				fetcher:      fetcher,
				connector:    connector,
				accountRepo:  accountRepo,
				campaignRepo: campaignRepo,
			}

			tt.setup(fetcher, connector, accountRepo, campaignRepo)

			result, err := service.SyncAccountByID(context.Background(), tt.accountID, "user-1")
			tt.validate(t, result, err)
		})
	}
}

func TestService_SyncAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockPlatformFetcher(ctrl)
	connector := connectingmocks.NewMockConnector(ctrl)
	accountRepo := repomocks.NewMockAdAccountRepository(ctrl)
	campaignRepo := repomocks.NewMockCampaignRepository(ctrl)

	service := &Service{
		cfg:          newTestConfig(),
		fetcher:      fetcher,
		connector:    connector,
		accountRepo:  accountRepo,
		campaignRepo: campaignRepo,
	}

	connector.EXPECT().
		GetValidToken("user-admin", domain.PlatformMeta).
		Return(&domain.PlatformToken{AccessToken: "token-abc"}, nil)

	accountRepo.EXPECT().
		ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
		Return([]*domain.AdAccount{
			{ID: "acc-1", ExternalID: "act_1", Platform: domain.PlatformMeta},
			{ID: "acc-2", ExternalID: "act_2", Platform: domain.PlatformMeta},
		}, nil)

	// acc-1 sincroniza uma campanha sem filhos
	fetcher.EXPECT().
		ListCampaigns("act_1", "token-abc").
		Return([]*domain.Campaign{{ExternalID: "c-1", Name: "Campanha 1"}}, nil)

	campaignRepo.EXPECT().
		UpsertCampaign(gomock.Any()).
		Return("camp-db-1", nil)

	fetcher.EXPECT().
		ListAdSets("c-1", "token-abc").
		Return([]*domain.AdSet{}, nil)

	// acc-2 falha na listagem: vira Failure, não interrompe a execução
	fetcher.EXPECT().
		ListCampaigns("act_2", "token-abc").
		Return(nil, errors.New("rate limit"))

	result, err := service.SyncAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Accounts)
	assert.Equal(t, 1, result.CampaignsSynced)
	assert.Len(t, result.Failures, 1)
	assert.Equal(t, "acc-2", result.Failures[0].AccountID)
	assert.False(t, result.CompletedAt.IsZero())
}

func TestService_ListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := repomocks.NewMockAdAccountRepository(ctrl)
	campaignRepo := repomocks.NewMockCampaignRepository(ctrl)

	service := &Service{
		cfg:          newTestConfig(),
		accountRepo:  accountRepo,
		campaignRepo: campaignRepo,
	}

	accountRepo.EXPECT().
		GetAccountByID("acc-local-1").
		Return(&domain.AdAccount{ID: "acc-local-1"}, nil)

	campaignRepo.EXPECT().
		ListByAccountID("acc-local-1").
		Return([]*domain.Campaign{{ID: "camp-db-1", Name: "Summer"}}, nil)

	campaigns, err := service.ListCampaigns("acc-local-1")

	assert.NoError(t, err)
	assert.Len(t, campaigns, 1)
	assert.Equal(t, "Summer", campaigns[0].Name)
}
