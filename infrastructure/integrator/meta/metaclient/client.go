package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"time"

	metadomain "github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/domain"
	"github.com/qixdigital/ad-intelligence-api/internal/config"
)

// Client é o wrapper puro de requisição/resposta da Graph API. Não persiste
// nada: tokens entram por parâmetro e objetos saem com os nomes de campo da
// plataforma, traduzidos uma camada acima.
type Client interface {
	AuthorizationURL(redirectURI, state string, scopes []string) string
	ExchangeCode(code, redirectURI string) (*TokenResponse, error)
	ExtendToken(accessToken string) (*TokenResponse, error)
	ListAdAccounts(accessToken string) ([]metadomain.AdAccount, error)
	ListCampaigns(accountExternalID, accessToken string) ([]metadomain.Campaign, error)
	ListAdSets(campaignExternalID, accessToken string) ([]metadomain.AdSet, error)
	ListAds(adSetExternalID, accessToken string) ([]metadomain.Ad, error)
	ListInsights(objectExternalID, accessToken string, level metadomain.InsightLevel, datePreset string) ([]metadomain.Insight, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		// Toda chamada à plataforma carrega timeout limitado: uma requisição
		// pendurada não pode bloquear a sincronização da conta inteira.
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// get executa um GET e devolve o corpo quando o status for 200.
func (c *MetaClient) get(requestURL string) ([]byte, error) {
	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
