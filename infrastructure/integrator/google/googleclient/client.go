package googleclient

import (
	"io"
	"net/http"
	"time"

	googledomain "github.com/vfg2006/marketpulse-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/marketpulse-api/internal/config"
)

type Client interface {
	BuildAuthURL(state string) (string, error)
	ExchangeCode(code string) (*googledomain.TokenResponse, error)
	ListAccountSummaries(accessToken string) ([]googledomain.AccountSummary, error)
	GetCampaignReport(accessToken, viewID, startDate, endDate string) (*googledomain.ReportResponse, error)
}

type GoogleClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GoogleClient{
		Cfg: cfg,
		// Limite para nenhuma chamada upstream ficar pendurada indefinidamente
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// handleResponse lê o corpo e converte status não-2xx em UpstreamError
func (c *GoogleClient) handleResponse(operation string, resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &UpstreamError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
