package syncing

import (
	"context"
	"sync"
	"time"

	"github.com/qixdigital/ad-intelligence-api/infrastructure/repository"
	"github.com/qixdigital/ad-intelligence-api/internal/config"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/connecting"
	"github.com/qixdigital/ad-intelligence-api/pkg/apiErrors"
	"github.com/qixdigital/ad-intelligence-api/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Syncer interface {
	SyncAccount(ctx context.Context, account *domain.AdAccount, accessToken string) (*domain.AccountSyncResult, error)
	SyncAccountByID(ctx context.Context, accountID, userID string) (*domain.AccountSyncResult, error)
	SyncAll(ctx context.Context) (*domain.SyncRunResult, error)
	ListCampaigns(accountID string) ([]*domain.Campaign, error)
}

type Service struct {
	cfg          *config.Config
	fetcher      PlatformFetcher
	connector    connecting.Connector
	accountRepo  repository.AdAccountRepository
	campaignRepo repository.CampaignRepository
}

func NewService(
	cfg *config.Config,
	fetcher PlatformFetcher,
	connector connecting.Connector,
	accountRepo repository.AdAccountRepository,
	campaignRepo repository.CampaignRepository,
) Syncer {
	return &Service{
		cfg:          cfg,
		fetcher:      fetcher,
		connector:    connector,
		accountRepo:  accountRepo,
		campaignRepo: campaignRepo,
	}
}

// SyncAccount sincroniza a hierarquia completa de uma conta, de cima para
// baixo. Falha ao listar campanhas aborta a conta inteira; falha ao buscar
// conjuntos ou anúncios degrada apenas aquela subárvore. Rodar duas vezes
// seguidas produz o mesmo estado: todos os níveis são upserts por external_id.
func (s *Service) SyncAccount(ctx context.Context, account *domain.AdAccount, accessToken string) (*domain.AccountSyncResult, error) {
	campaigns, err := s.fetcher.ListCampaigns(account.ExternalID, accessToken)
	if err != nil {
		return nil, NewAccountSyncError(ErrCampaignListFailed, apiErrors.ErrAccountSync, account.ID, account.ExternalID, err.Error())
	}

	campaignsSynced := 0

	for _, campaign := range campaigns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		campaign.AdAccountID = account.ID

		if campaign.ID, err = utils.GenerateID(); err != nil {
			return nil, err
		}

		// O ID local que volta do upsert é a chave estrangeira dos conjuntos:
		// em re-sincronização ele é o ID de um registro já existente.
		campaignID, err := s.campaignRepo.UpsertCampaign(campaign)
		if err != nil {
			return nil, NewAccountSyncError(ErrPersistence, apiErrors.ErrDatabaseOperation, account.ID, account.ExternalID, err.Error())
		}

		if err := s.syncAdSets(campaign.ExternalID, campaignID, accessToken, account); err != nil {
			return nil, err
		}

		campaignsSynced++
	}

	logrus.WithFields(logrus.Fields{
		"account_id":       account.ID,
		"external_id":      account.ExternalID,
		"campaigns_synced": campaignsSynced,
	}).Info("sync: account hierarchy synchronized")

	return &domain.AccountSyncResult{
		AccountID:       account.ID,
		ExternalID:      account.ExternalID,
		CampaignsSynced: campaignsSynced,
	}, nil
}

func (s *Service) syncAdSets(campaignExternalID, campaignID, accessToken string, account *domain.AdAccount) error {
	adSets, err := s.fetcher.ListAdSets(campaignExternalID, accessToken)
	if err != nil {
		// Degradação controlada: a campanha já foi gravada e permanece; os
		// conjuntos desta campanha ficam para a próxima execução.
		logrus.WithFields(logrus.Fields{
			"account_id":           account.ID,
			"campaign_external_id": campaignExternalID,
			"error":                err.Error(),
		}).Warn("sync: failed to fetch ad sets, skipping subtree")
		return nil
	}

	for _, adSet := range adSets {
		adSet.CampaignID = campaignID

		if adSet.ID, err = utils.GenerateID(); err != nil {
			return err
		}

		adSetID, err := s.campaignRepo.UpsertAdSet(adSet)
		if err != nil {
			return NewAccountSyncError(ErrPersistence, apiErrors.ErrDatabaseOperation, account.ID, account.ExternalID, err.Error())
		}

		if err := s.syncAds(adSet.ExternalID, adSetID, accessToken, account); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) syncAds(adSetExternalID, adSetID, accessToken string, account *domain.AdAccount) error {
	ads, err := s.fetcher.ListAds(adSetExternalID, accessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":         account.ID,
			"ad_set_external_id": adSetExternalID,
			"error":              err.Error(),
		}).Warn("sync: failed to fetch ads, skipping subtree")
		return nil
	}

	for _, ad := range ads {
		ad.AdSetID = adSetID

		if ad.ID, err = utils.GenerateID(); err != nil {
			return err
		}

		if _, err := s.campaignRepo.UpsertAd(ad); err != nil {
			return NewAccountSyncError(ErrPersistence, apiErrors.ErrDatabaseOperation, account.ID, account.ExternalID, err.Error())
		}
	}

	return nil
}

// SyncAccountByID resolve a conta e o token do usuário que disparou e então
// sincroniza. É o caminho do gatilho manual por conta.
func (s *Service) SyncAccountByID(ctx context.Context, accountID, userID string) (*domain.AccountSyncResult, error) {
	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}

	if account == nil {
		return nil, NewAccountSyncError(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "", "")
	}

	token, err := s.connector.GetValidToken(userID, account.Platform)
	if err != nil {
		return nil, err
	}

	return s.SyncAccount(ctx, account, token.AccessToken)
}

// ListCampaigns devolve as campanhas persistidas de uma conta, para navegação
func (s *Service) ListCampaigns(accountID string) ([]*domain.Campaign, error) {
	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}

	if account == nil {
		return nil, NewAccountSyncError(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "", "")
	}

	return s.campaignRepo.ListByAccountID(accountID)
}

// SyncAll sincroniza todas as contas ativas com paralelismo limitado. A falha
// de uma conta não interrompe as demais: entra no resultado como Failure. O
// cancelamento do contexto interrompe a execução entre contas.
func (s *Service) SyncAll(ctx context.Context) (*domain.SyncRunResult, error) {
	startedAt := time.Now()

	token, err := s.connector.GetValidToken(s.cfg.HierarchySync.SyncUserID, domain.PlatformMeta)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return nil, err
	}

	result := &domain.SyncRunResult{
		Accounts:  len(accounts),
		Failures:  make([]domain.AccountSyncFailure, 0),
		StartedAt: startedAt,
	}

	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.cfg.HierarchySync.MaxConcurrentAccounts)

	for _, account := range accounts {
		account := account
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			syncResult, err := s.SyncAccount(groupCtx, account, token.AccessToken)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if groupCtx.Err() != nil {
					return groupCtx.Err()
				}

				result.Failures = append(result.Failures, domain.AccountSyncFailure{
					AccountID:  account.ID,
					ExternalID: account.ExternalID,
					Reason:     err.Error(),
				})

				return nil
			}

			result.CampaignsSynced += syncResult.CampaignsSynced

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	result.CompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"accounts":         result.Accounts,
		"campaigns_synced": result.CampaignsSynced,
		"failures":         len(result.Failures),
		"duration":         result.CompletedAt.Sub(result.StartedAt).String(),
	}).Info("sync: full run completed")

	return result, nil
}
