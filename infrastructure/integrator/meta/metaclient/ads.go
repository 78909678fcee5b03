package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

type ResponseAds struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

func (c *MetaClient) ListAds(adSetExternalID, accessToken string) ([]metadomain.Ad, error) {
	baseURL := fmt.Sprintf("%s/%s/ads", c.Cfg.Meta.URL, adSetExternalID)

	params := url.Values{}
	params.Add("fields", "id,name,status,creative{id,thumbnail_url,body,title,call_to_action_type}")
	params.Add("limit", fmt.Sprintf("%d", c.Cfg.Meta.PageLimit))
	params.Add("access_token", accessToken)

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAds
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
