package googleclient

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/marketpulse-api/infrastructure/integrator/google/domain"
)

// ListAccountSummaries busca as contas de Analytics visíveis para o token
func (c *GoogleClient) ListAccountSummaries(accessToken string) ([]googledomain.AccountSummary, error) {
	req, err := http.NewRequest(http.MethodGet, c.Cfg.Google.ManagementURL+"/accountSummaries", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("google: erro ao buscar contas do Analytics")
		return nil, err
	}

	body, err := c.handleResponse("account_summaries", resp)
	if err != nil {
		return nil, err
	}

	var response googledomain.AccountSummariesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("google: erro ao decodificar contas do Analytics")
		return nil, err
	}

	if response.Items == nil {
		return []googledomain.AccountSummary{}, nil
	}

	return response.Items, nil
}
