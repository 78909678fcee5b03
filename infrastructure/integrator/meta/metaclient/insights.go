package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

type ResponseInsights struct {
	Data   []metadomain.Insight `json:"data"`
	Paging metadomain.Paging    `json:"paging"`
}

// ListInsights busca as métricas de entrega do objeto informado no nível
// pedido (campaign, adset ou ad) dentro do período do date_preset.
func (c *MetaClient) ListInsights(objectExternalID, accessToken string, level metadomain.InsightLevel, datePreset string) ([]metadomain.Insight, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, objectExternalID)

	params := url.Values{}
	params.Add("fields", "date_start,date_stop,spend,impressions,clicks,conversions,action_values")
	params.Add("level", string(level))
	params.Add("date_preset", datePreset)
	params.Add("limit", fmt.Sprintf("%d", c.Cfg.Meta.PageLimit))
	params.Add("access_token", accessToken)

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
