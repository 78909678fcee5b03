package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

type ResponseAdAccounts struct {
	Data   []metadomain.AdAccount `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// ListAdAccounts lista as contas de anúncios às quais o token tem acesso.
func (c *MetaClient) ListAdAccounts(accessToken string) ([]metadomain.AdAccount, error) {
	baseURL := fmt.Sprintf("%s/me/adaccounts", c.Cfg.Meta.URL)

	params := url.Values{}
	params.Add("fields", "name,account_id,currency,account_status,business_name")
	params.Add("limit", fmt.Sprintf("%d", c.Cfg.Meta.PageLimit))
	params.Add("access_token", accessToken)

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAdAccounts
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
