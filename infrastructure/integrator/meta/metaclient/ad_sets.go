package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

type ResponseAdSets struct {
	Data   []metadomain.AdSet `json:"data"`
	Paging metadomain.Paging  `json:"paging"`
}

func (c *MetaClient) ListAdSets(campaignExternalID, accessToken string) ([]metadomain.AdSet, error) {
	baseURL := fmt.Sprintf("%s/%s/adsets", c.Cfg.Meta.URL, campaignExternalID)

	params := url.Values{}
	params.Add("fields", "id,name,status,start_time,end_time,daily_budget,lifetime_budget,billing_event,targeting")
	params.Add("limit", fmt.Sprintf("%d", c.Cfg.Meta.PageLimit))
	params.Add("access_token", accessToken)

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAdSets
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
