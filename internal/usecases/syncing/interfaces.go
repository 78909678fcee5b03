package syncing

import (
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
)

// PlatformFetcher define a interface para buscar a hierarquia de anúncios já
// traduzida para o domínio canônico
type PlatformFetcher interface {
	// ListCampaigns busca as campanhas de uma conta de anúncios
	ListCampaigns(accountExternalID, accessToken string) ([]*domain.Campaign, error)

	// ListAdSets busca os conjuntos de anúncios de uma campanha
	ListAdSets(campaignExternalID, accessToken string) ([]*domain.AdSet, error)

	// ListAds busca os anúncios de um conjunto
	ListAds(adSetExternalID, accessToken string) ([]*domain.Ad, error)
}
