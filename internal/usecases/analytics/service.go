package analytics

import (
	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/marketpulse-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/marketpulse-api/internal/config"
)

// AnalyticsService cobre o fluxo OAuth do Google e as consultas de
// relatório repassadas ao integrador
type AnalyticsService interface {
	AuthURL(state string) (string, error)
	ExchangeCode(code string) (*googledomain.TokenResponse, error)
	AccountSummaries(accessToken string) ([]googledomain.AccountSummary, error)
	CampaignReport(accessToken, viewID, startDate, endDate string) (*googledomain.CampaignReport, error)
	Configured() bool
}

type Service struct {
	cfg        *config.Config
	integrator GoogleIntegrator
}

func NewService(cfg *config.Config, integrator GoogleIntegrator) AnalyticsService {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
	}
}

// Configured indica se o cliente OAuth foi definido no ambiente. A ausência
// vira um aviso estruturado de setup para o frontend, não uma falha dura.
func (s *Service) Configured() bool {
	return s.cfg.Google.ClientID != ""
}

func (s *Service) AuthURL(state string) (string, error) {
	return s.integrator.BuildAuthURL(state)
}

func (s *Service) ExchangeCode(code string) (*googledomain.TokenResponse, error) {
	tokens, err := s.integrator.ExchangeCode(code)
	if err != nil {
		logrus.WithError(err).Error("analytics: falha na troca do código por tokens")
		return nil, err
	}

	// Os tokens não são persistidos: o chamador os carrega de volta e os
	// fornece nas consultas de relatório
	return tokens, nil
}

func (s *Service) AccountSummaries(accessToken string) ([]googledomain.AccountSummary, error) {
	return s.integrator.ListAccountSummaries(accessToken)
}

func (s *Service) CampaignReport(accessToken, viewID, startDate, endDate string) (*googledomain.CampaignReport, error) {
	return s.integrator.GetCampaignReport(accessToken, viewID, startDate, endDate)
}
