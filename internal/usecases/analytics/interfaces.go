package analytics

import (
	googledomain "github.com/vfg2006/marketpulse-api/infrastructure/integrator/google/domain"
)

// GoogleIntegrator é o contrato consumido pelo serviço de analytics,
// implementado pelo integrador do Google e mockado nos testes
type GoogleIntegrator interface {
	BuildAuthURL(state string) (string, error)
	ExchangeCode(code string) (*googledomain.TokenResponse, error)
	ListAccountSummaries(accessToken string) ([]googledomain.AccountSummary, error)
	GetCampaignReport(accessToken, viewID, startDate, endDate string) (*googledomain.CampaignReport, error)
}
