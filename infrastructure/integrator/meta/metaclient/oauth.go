package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	metadomain "github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthorizationURL monta a URL de consentimento OAuth. O state deve ser um
// nonce imprevisível por fluxo, validado no callback.
func (c *MetaClient) AuthorizationURL(redirectURI, state string, scopes []string) string {
	params := url.Values{}
	params.Add("client_id", c.Cfg.Meta.AppID)
	params.Add("redirect_uri", redirectURI)
	params.Add("state", state)
	params.Add("scope", strings.Join(scopes, ","))

	return fmt.Sprintf("https://www.facebook.com/%s/dialog/oauth?%s", c.Cfg.Meta.Version, params.Encode())
}

// ExchangeCode troca o código de autorização por um token de acesso.
// Qualquer resposta não-2xx vira AuthExchangeError e sobe ao chamador:
// uma troca malformada nunca pode produzir silenciosamente um token nulo.
func (c *MetaClient) ExchangeCode(code, redirectURI string) (*TokenResponse, error) {
	endpoint := fmt.Sprintf("%s/oauth/access_token", c.Cfg.Meta.URL)

	params := url.Values{}
	params.Add("client_id", c.Cfg.Meta.AppID)
	params.Add("client_secret", c.Cfg.Meta.AppSecret)
	params.Add("redirect_uri", redirectURI)
	params.Add("code", code)

	return c.requestToken(endpoint + "?" + params.Encode())
}

// ExtendToken troca um token de curta duração por um de longa duração
// (grant fb_exchange_token), usado na renovação proativa.
func (c *MetaClient) ExtendToken(accessToken string) (*TokenResponse, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("token de acesso não pode ser vazio")
	}

	endpoint := fmt.Sprintf("%s/oauth/access_token", c.Cfg.Meta.URL)

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", c.Cfg.Meta.AppID)
	params.Add("client_secret", c.Cfg.Meta.AppSecret)
	params.Add("fb_exchange_token", accessToken)

	return c.requestToken(endpoint + "?" + params.Encode())
}

func (c *MetaClient) requestToken(requestURL string) (*TokenResponse, error) {
	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao solicitar token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro obtendo token. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, metadomain.NewAuthExchangeError(resp.StatusCode, string(body))
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, metadomain.NewAuthExchangeError(resp.StatusCode, "token retornado pela API é vazio")
	}

	return &tokenResp, nil
}
