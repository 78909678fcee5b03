package metaclient

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	metadomain "github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/domain"
	"github.com/qixdigital/ad-intelligence-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func newTestClient(serverURL string) *MetaClient {
	return &MetaClient{
		Cfg: &config.Config{
			Meta: config.Meta{
				URL:       serverURL,
				Version:   "v21.0",
				AppID:     "app-id",
				AppSecret: "app-secret",
				PageLimit: 50,
			},
		},
		httpClient: http.DefaultClient,
	}
}

func TestMetaClient_AuthorizationURL(t *testing.T) {
	client := newTestClient("https://graph.example.com/v21.0")

	authURL := client.AuthorizationURL("https://app.example.com/callback", "nonce-123", []string{"ads_read", "business_management"})

	assert.Contains(t, authURL, "https://www.facebook.com/v21.0/dialog/oauth?")
	assert.Contains(t, authURL, "client_id=app-id")
	assert.Contains(t, authURL, "state=nonce-123")
	assert.Contains(t, authURL, "scope=ads_read%2Cbusiness_management")
}

func TestMetaClient_ExchangeCode(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		validate func(t *testing.T, token *TokenResponse, err error)
	}{
		{
			name: "Troca bem-sucedida - devolve o token decodificado",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/oauth/access_token", r.URL.Path)
				assert.Equal(t, "app-id", r.URL.Query().Get("client_id"))
				assert.Equal(t, "auth-code-1", r.URL.Query().Get("code"))

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"access_token":"long-lived","token_type":"bearer","expires_in":5184000}`))
			},
			validate: func(t *testing.T, token *TokenResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "long-lived", token.AccessToken)
				assert.Equal(t, int64(5184000), token.ExpiresIn)
			},
		},
		{
			name: "Código inválido - resposta 400 vira erro de troca com status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":{"message":"Invalid verification code","code":100}}`))
			},
			validate: func(t *testing.T, token *TokenResponse, err error) {
				assert.Nil(t, token)

				var exchangeErr *metadomain.AuthExchangeError
				assert.ErrorAs(t, err, &exchangeErr)
				assert.Equal(t, http.StatusBadRequest, exchangeErr.StatusCode)
			},
		},
		{
			name: "Resposta 200 sem token - rejeitada, nunca devolve token vazio",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"token_type":"bearer"}`))
			},
			validate: func(t *testing.T, token *TokenResponse, err error) {
				assert.Nil(t, token)

				var exchangeErr *metadomain.AuthExchangeError
				assert.ErrorAs(t, err, &exchangeErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := newTestClient(server.URL)

			token, err := client.ExchangeCode("auth-code-1", "https://app.example.com/callback")
			tt.validate(t, token, err)
		})
	}
}

func TestMetaClient_ExtendToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fb_exchange_token", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "short-lived", r.URL.Query().Get("fb_exchange_token"))

		w.Write([]byte(`{"access_token":"long-lived","expires_in":5184000}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	token, err := client.ExtendToken("short-lived")

	assert.NoError(t, err)
	assert.Equal(t, "long-lived", token.AccessToken)
}

func TestMetaClient_ExtendToken_EmptyToken(t *testing.T) {
	client := newTestClient("https://graph.example.com/v21.0")

	token, err := client.ExtendToken("")

	assert.Nil(t, token)
	assert.Error(t, err)
}

func TestMetaClient_ListCampaigns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123/campaigns", r.URL.Path)
		assert.Equal(t, "token-abc", r.URL.Query().Get("access_token"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.True(t, strings.Contains(r.URL.Query().Get("fields"), "daily_budget"))

		w.Write([]byte(`{
			"data": [
				{"id": "c-100", "name": "Summer", "status": "ACTIVE", "objective": "OUTCOME_SALES", "daily_budget": "5000"},
				{"id": "c-200", "name": "Winter", "status": "PAUSED"}
			],
			"paging": {"cursors": {"before": "a", "after": "b"}}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	campaigns, err := client.ListCampaigns("123", "token-abc")

	assert.NoError(t, err)
	assert.Len(t, campaigns, 2)
	assert.Equal(t, "c-100", campaigns[0].ID)
	assert.Equal(t, "5000", *campaigns[0].DailyBudget)
	assert.Nil(t, campaigns[1].DailyBudget)
}

func TestMetaClient_ListCampaigns_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Error validating access token","code":190}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	campaigns, err := client.ListCampaigns("123", "stale-token")

	assert.Nil(t, campaigns)
	assert.Error(t, err)
}

func TestMetaClient_ListInsights(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/c-100/insights", r.URL.Path)
		assert.Equal(t, "campaign", r.URL.Query().Get("level"))
		assert.Equal(t, "today", r.URL.Query().Get("date_preset"))

		w.Write([]byte(`{
			"data": [
				{
					"date_start": "2024-06-10",
					"date_stop": "2024-06-10",
					"spend": "123.45",
					"impressions": "1000",
					"clicks": "50",
					"action_values": [
						{"action_type": "purchase", "value": "300.00"}
					]
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	insights, err := client.ListInsights("c-100", "token-abc", metadomain.InsightLevelCampaign, "today")

	assert.NoError(t, err)
	assert.Len(t, insights, 1)
	assert.Equal(t, "123.45", insights[0].Spend)
	assert.Len(t, insights[0].ActionValues, 1)
}
