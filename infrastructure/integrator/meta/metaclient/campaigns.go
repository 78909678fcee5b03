package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

type ResponseCampaigns struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// TODO seguir os cursores de paginação até esgotar em vez de uma página fixa
func (c *MetaClient) ListCampaigns(accountExternalID, accessToken string) ([]metadomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, accountExternalID)

	params := url.Values{}
	params.Add("fields", "id,name,status,objective,buying_type,start_time,stop_time,daily_budget,lifetime_budget,spend_cap")
	params.Add("limit", fmt.Sprintf("%d", c.Cfg.Meta.PageLimit))
	params.Add("access_token", accessToken)

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseCampaigns
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
